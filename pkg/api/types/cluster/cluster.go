package cluster

import (
	"github.com/matkb/matkb/pkg/utils/rfctime"
)

// Pod is one row of the admin pod table.
type Pod struct {
	Name            string           `json:"name"`
	Phase           string           `json:"phase"`
	ReadyContainers int              `json:"readyContainers"`
	TotalContainers int              `json:"totalContainers"`
	Restarts        int              `json:"restarts"`
	Node            string           `json:"node,omitempty"`
	StartedAt       *rfctime.RFC3339 `json:"startedAt,omitempty"`
}

// Event is one row of the admin event table.
type Event struct {
	Type     string          `json:"type"`
	Reason   string          `json:"reason"`
	Message  string          `json:"message"`
	Object   string          `json:"object"`
	Count    int             `json:"count"`
	LastSeen rfctime.RFC3339 `json:"lastSeen"`
}

// FluxDeployment is the sync status of one GitOps-managed Deployment.
type FluxDeployment struct {
	Name            string `json:"name"`
	Kustomization   string `json:"kustomization"`
	Revision        string `json:"revision,omitempty"`
	ReadyReplicas   int    `json:"readyReplicas"`
	DesiredReplicas int    `json:"desiredReplicas"`
	State           string `json:"state"`
	Message         string `json:"message,omitempty"`
}

// FluxReport is the cached GitOps observation.
type FluxReport struct {
	PolledAt    *rfctime.RFC3339 `json:"polledAt,omitempty"`
	Deployments []FluxDeployment `json:"deployments"`
	Error       string           `json:"error,omitempty"`
}
