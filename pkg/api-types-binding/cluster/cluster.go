package cluster

import (
	apicluster "github.com/matkb/matkb/pkg/api/types/cluster"
	types "github.com/matkb/matkb/pkg/domain"
	"github.com/matkb/matkb/pkg/utils/pointer"
	"github.com/matkb/matkb/pkg/utils/rfctime"
	"github.com/matkb/matkb/pkg/utils/slices"
)

func ComposePod(p types.PodSummary) apicluster.Pod {
	pod := apicluster.Pod{
		Name:            p.Name,
		Phase:           p.Phase,
		ReadyContainers: p.ReadyContainers,
		TotalContainers: p.TotalContainers,
		Restarts:        p.Restarts,
		Node:            p.Node,
	}
	if p.StartedAt != nil {
		pod.StartedAt = pointer.Ref(rfctime.New(*p.StartedAt))
	}
	return pod
}

func ComposePods(ps []types.PodSummary) []apicluster.Pod {
	if ps == nil {
		return []apicluster.Pod{}
	}
	return slices.Map(ps, ComposePod)
}

func ComposeEvent(e types.EventSummary) apicluster.Event {
	return apicluster.Event{
		Type:     e.Type,
		Reason:   e.Reason,
		Message:  e.Message,
		Object:   e.Object,
		Count:    e.Count,
		LastSeen: rfctime.New(e.LastSeen),
	}
}

func ComposeEvents(es []types.EventSummary) []apicluster.Event {
	if es == nil {
		return []apicluster.Event{}
	}
	return slices.Map(es, ComposeEvent)
}

func ComposeFluxDeployment(d types.FluxDeployment) apicluster.FluxDeployment {
	return apicluster.FluxDeployment{
		Name:            d.Name,
		Kustomization:   d.Kustomization,
		Revision:        d.Revision,
		ReadyReplicas:   d.ReadyReplicas,
		DesiredReplicas: d.DesiredReplicas,
		State:           string(d.State),
		Message:         d.Message,
	}
}

func ComposeFluxReport(r types.FluxReport) apicluster.FluxReport {
	report := apicluster.FluxReport{
		Deployments: []apicluster.FluxDeployment{},
		Error:       r.Err,
	}
	if !r.PolledAt.IsZero() {
		report.PolledAt = pointer.Ref(rfctime.New(r.PolledAt))
	}
	if r.Deployments != nil {
		report.Deployments = slices.Map(r.Deployments, ComposeFluxDeployment)
	}
	return report
}
