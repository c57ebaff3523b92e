// Package k8s derives the sync status of Flux-managed Deployments from
// the Kubernetes API.
//
// Only the core apps/v1 surface is read; the Flux CRDs stamp their
// ownership onto the Deployments they reconcile via labels and
// annotations, and that is enough for a status panel.
package k8s

import (
	"context"
	"sort"

	types "github.com/matkb/matkb/pkg/domain"
	xe "github.com/matkb/matkb/pkg/errors"
	kubeapps "k8s.io/api/apps/v1"
	kubecore "k8s.io/api/core/v1"
	kubeapimeta "k8s.io/apimachinery/pkg/apis/meta/v1"
	k8s "k8s.io/client-go/kubernetes"
)

const (
	labelKustomization = "kustomize.toolkit.fluxcd.io/name"
	annoRevision       = "kustomize.toolkit.fluxcd.io/revision"
)

// subset of k8s.Clientset
type K8sClient interface {
	ListDeployments(ctx context.Context, namespace string) ([]kubeapps.Deployment, error)
}

type k8sClient struct {
	client k8s.Interface
}

var _ K8sClient = &k8sClient{}

func WrapK8sClient(client k8s.Interface) K8sClient {
	return &k8sClient{client: client}
}

func (k *k8sClient) ListDeployments(ctx context.Context, namespace string) ([]kubeapps.Deployment, error) {
	list, err := k.client.AppsV1().Deployments(namespace).List(ctx, kubeapimeta.ListOptions{})
	if err != nil {
		return nil, err
	}
	return list.Items, nil
}

type Interface interface {
	// Observe reads the namespace's Flux-managed Deployments, sorted by
	// name. Deployments without a Flux ownership label are skipped.
	Observe(ctx context.Context) ([]types.FluxDeployment, error)
}

type impl struct {
	client    K8sClient
	namespace string
}

func New(client K8sClient, namespace string) Interface {
	return &impl{client: client, namespace: namespace}
}

func (i *impl) Observe(ctx context.Context) ([]types.FluxDeployment, error) {
	depls, err := i.client.ListDeployments(ctx, i.namespace)
	if err != nil {
		return nil, xe.Wrap(err)
	}

	observed := []types.FluxDeployment{}
	for _, depl := range depls {
		kustomization, ok := depl.Labels[labelKustomization]
		if !ok {
			continue
		}
		observed = append(observed, fluxDeploymentOf(depl, kustomization))
	}
	sort.Slice(observed, func(a, b int) bool {
		return observed[a].Name < observed[b].Name
	})
	return observed, nil
}

func fluxDeploymentOf(depl kubeapps.Deployment, kustomization string) types.FluxDeployment {
	desired := 1
	if depl.Spec.Replicas != nil {
		desired = int(*depl.Spec.Replicas)
	}

	fd := types.FluxDeployment{
		Name:            depl.Name,
		Kustomization:   kustomization,
		Revision:        depl.Annotations[annoRevision],
		ReadyReplicas:   int(depl.Status.ReadyReplicas),
		DesiredReplicas: desired,
	}
	fd.State, fd.Message = deriveState(depl, desired)
	return fd
}

// deriveState folds the Deployment conditions down to one sync state.
//
// A Progressing condition with reason ProgressDeadlineExceeded means the
// rollout is stuck; otherwise ready replicas decide between ready and
// progressing.
func deriveState(depl kubeapps.Deployment, desired int) (types.FluxSyncState, string) {
	for _, cond := range depl.Status.Conditions {
		if cond.Type == kubeapps.DeploymentProgressing &&
			cond.Status == kubecore.ConditionFalse &&
			cond.Reason == "ProgressDeadlineExceeded" {
			return types.FluxFailed, cond.Message
		}
	}

	if int(depl.Status.ReadyReplicas) >= desired {
		return types.FluxReady, ""
	}

	for _, cond := range depl.Status.Conditions {
		if cond.Type == kubeapps.DeploymentAvailable &&
			cond.Status != kubecore.ConditionTrue {
			return types.FluxProgressing, cond.Message
		}
	}
	return types.FluxProgressing, ""
}
