package domain

// domain package contains the Domain Models and Interfaces for the Matkb
// application, the admin backend of a materials knowledge base.
//
// `domain/matkb` exposes the root object for the application. Entrypoints
// should instantiate the Matkb object and use it to interact with the domain.
//
// `domain/ENTITY.go` has high-level entities (Domain Model types) and
// functions. For example, `domain/category.go` contains the `Category`
// entity.
//
// `domain/ENTITY` directories contain the "physical" representation of
// the entities, in the RDB or Kubernetes (k8s), behind a client interface.
//
// # Entities
//
// - `category`: the classification forest materials are filed under.
// Stored in Postgres; subtrees are moved and deleted as a unit of admin work.
//
// - `field`: metadata field definitions describing which attributes a
// material document carries (kind, options, ordering). Stored in Postgres.
//
// - `gallery`: visual-property reference entries (lustre, fracture, ...)
// pointing at example images. Stored in Postgres.
//
// - `feedback`: active-learning feedback items queued for expert review.
// Stored in Postgres; hand-off to a reviewer is exactly-once.
//
// - `training`: ML training sessions and their live telemetry.
// The session registry is in Postgres; telemetry is a websocket
// connection to the training backend (see `domain/training/telemetry`).
//
// - `cluster`: read/operate view over the Kubernetes namespace the
// knowledge-base services run in (pods, events, restarts).
//
// - `flux`: sync status of Flux-managed Deployments in that namespace.
