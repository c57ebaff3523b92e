package k8s

import (
	"context"
	"fmt"
	"sort"
	"time"

	types "github.com/matkb/matkb/pkg/domain"
	xe "github.com/matkb/matkb/pkg/errors"
	kubecore "k8s.io/api/core/v1"
	kubeerr "k8s.io/apimachinery/pkg/api/errors"
	kubeapimeta "k8s.io/apimachinery/pkg/apis/meta/v1"
	kubetypes "k8s.io/apimachinery/pkg/types"
	k8s "k8s.io/client-go/kubernetes"
)

// subset of k8s.Clientset
type K8sClient interface {
	ListPods(ctx context.Context, namespace string) ([]kubecore.Pod, error)
	ListEvents(ctx context.Context, namespace string) ([]kubecore.Event, error)
	DeletePod(ctx context.Context, namespace string, name string) error
	PatchDeployment(ctx context.Context, namespace string, name string, patch []byte) error
}

type k8sClient struct {
	client k8s.Interface
}

var _ K8sClient = &k8sClient{}

func WrapK8sClient(client k8s.Interface) K8sClient {
	return &k8sClient{client: client}
}

func (k *k8sClient) ListPods(ctx context.Context, namespace string) ([]kubecore.Pod, error) {
	list, err := k.client.CoreV1().Pods(namespace).List(ctx, kubeapimeta.ListOptions{})
	if err != nil {
		return nil, err
	}
	return list.Items, nil
}

func (k *k8sClient) ListEvents(ctx context.Context, namespace string) ([]kubecore.Event, error) {
	list, err := k.client.CoreV1().Events(namespace).List(ctx, kubeapimeta.ListOptions{})
	if err != nil {
		return nil, err
	}
	return list.Items, nil
}

func (k *k8sClient) DeletePod(ctx context.Context, namespace string, name string) error {
	return k.client.CoreV1().Pods(namespace).Delete(ctx, name, kubeapimeta.DeleteOptions{})
}

func (k *k8sClient) PatchDeployment(ctx context.Context, namespace string, name string, patch []byte) error {
	_, err := k.client.AppsV1().Deployments(namespace).Patch(
		ctx, name, kubetypes.StrategicMergePatchType, patch, kubeapimeta.PatchOptions{},
	)
	return err
}

// Interface is the cluster view the admin dashboard works with.
type Interface interface {
	// ListPods summarises the pods of the namespace, sorted by name.
	ListPods(ctx context.Context) ([]types.PodSummary, error)

	// ListEvents summarises recent events, newest first.
	ListEvents(ctx context.Context) ([]types.EventSummary, error)

	// KillPod deletes a pod so its controller replaces it.
	//
	// Return: error: ErrPodNotFound.
	KillPod(ctx context.Context, name string) error

	// RestartDeployment triggers a rolling restart, the way
	// `kubectl rollout restart` does.
	//
	// Return: error: ErrDeploymentNotFound.
	RestartDeployment(ctx context.Context, name string) error
}

type impl struct {
	client    K8sClient
	namespace string
	now       func() time.Time
}

func New(client K8sClient, namespace string) Interface {
	return &impl{client: client, namespace: namespace, now: time.Now}
}

func (i *impl) ListPods(ctx context.Context) ([]types.PodSummary, error) {
	pods, err := i.client.ListPods(ctx, i.namespace)
	if err != nil {
		return nil, xe.Wrap(err)
	}

	summaries := make([]types.PodSummary, 0, len(pods))
	for _, pod := range pods {
		summaries = append(summaries, podSummaryOf(pod))
	}
	sort.Slice(summaries, func(a, b int) bool {
		return summaries[a].Name < summaries[b].Name
	})
	return summaries, nil
}

func (i *impl) ListEvents(ctx context.Context) ([]types.EventSummary, error) {
	events, err := i.client.ListEvents(ctx, i.namespace)
	if err != nil {
		return nil, xe.Wrap(err)
	}

	summaries := make([]types.EventSummary, 0, len(events))
	for _, ev := range events {
		summaries = append(summaries, eventSummaryOf(ev))
	}
	sort.SliceStable(summaries, func(a, b int) bool {
		return summaries[b].LastSeen.Before(summaries[a].LastSeen)
	})
	return summaries, nil
}

func (i *impl) KillPod(ctx context.Context, name string) error {
	if err := i.client.DeletePod(ctx, i.namespace, name); err != nil {
		if kubeerr.IsNotFound(err) {
			return xe.Wrap(types.ErrPodNotFound)
		}
		return xe.Wrap(err)
	}
	return nil
}

func (i *impl) RestartDeployment(ctx context.Context, name string) error {
	patch := []byte(fmt.Sprintf(
		`{"spec":{"template":{"metadata":{"annotations":{"kubectl.kubernetes.io/restartedAt":%q}}}}}`,
		i.now().Format(time.RFC3339),
	))
	if err := i.client.PatchDeployment(ctx, i.namespace, name, patch); err != nil {
		if kubeerr.IsNotFound(err) {
			return xe.Wrap(types.ErrDeploymentNotFound)
		}
		return xe.Wrap(err)
	}
	return nil
}

func podSummaryOf(pod kubecore.Pod) types.PodSummary {
	summary := types.PodSummary{
		Name:            pod.Name,
		Phase:           string(pod.Status.Phase),
		TotalContainers: len(pod.Spec.Containers),
		Node:            pod.Spec.NodeName,
	}
	for _, cs := range pod.Status.ContainerStatuses {
		if cs.Ready {
			summary.ReadyContainers += 1
		}
		summary.Restarts += int(cs.RestartCount)
	}
	if start := pod.Status.StartTime; start != nil {
		t := start.Time
		summary.StartedAt = &t
	}
	return summary
}

func eventSummaryOf(ev kubecore.Event) types.EventSummary {
	lastSeen := ev.LastTimestamp.Time
	if lastSeen.IsZero() {
		lastSeen = ev.EventTime.Time
	}
	count := int(ev.Count)
	if count == 0 {
		count = 1
	}
	return types.EventSummary{
		Type:     ev.Type,
		Reason:   ev.Reason,
		Message:  ev.Message,
		Object:   fmt.Sprintf("%s/%s", ev.InvolvedObject.Kind, ev.InvolvedObject.Name),
		Count:    count,
		LastSeen: lastSeen,
	}
}
