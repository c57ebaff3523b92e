package domain

import (
	"time"

	"github.com/matkb/matkb/pkg/utils/cmp"
)

// FluxSyncState is the derived state of one Flux-managed Deployment.
type FluxSyncState string

const (
	// All desired replicas are available.
	FluxReady FluxSyncState = "ready"

	// A rollout is underway.
	FluxProgressing FluxSyncState = "progressing"

	// The Deployment reports it cannot make progress.
	FluxFailed FluxSyncState = "failed"
)

// FluxDeployment is the sync status of one Deployment reconciled by Flux.
type FluxDeployment struct {
	Name string

	// Kustomization is the Flux Kustomization that owns the Deployment.
	Kustomization string

	// Revision is the source revision Flux stamped on the Deployment.
	Revision string

	ReadyReplicas   int
	DesiredReplicas int

	State FluxSyncState

	// Message is the condition message when not ready.
	Message string
}

func (d FluxDeployment) Equal(o FluxDeployment) bool {
	return d.Name == o.Name &&
		d.Kustomization == o.Kustomization &&
		d.Revision == o.Revision &&
		d.ReadyReplicas == o.ReadyReplicas &&
		d.DesiredReplicas == o.DesiredReplicas &&
		d.State == o.State &&
		d.Message == o.Message
}

// FluxReport is one observation of the whole namespace, as cached by the
// flux monitor between polls.
type FluxReport struct {
	PolledAt    time.Time
	Deployments []FluxDeployment

	// Err is the reason the last poll failed, if it did. The Deployments
	// then carry the last successful observation.
	Err string
}

func (r FluxReport) Equal(o FluxReport) bool {
	return r.PolledAt.Equal(o.PolledAt) &&
		r.Err == o.Err &&
		cmp.SliceEqWith(r.Deployments, o.Deployments, FluxDeployment.Equal)
}
