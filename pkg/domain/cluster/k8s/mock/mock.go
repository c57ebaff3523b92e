package mock

import (
	"context"
	"testing"

	kubecore "k8s.io/api/core/v1"
)

type MockK8sClient struct {
	t    *testing.T
	Impl struct {
		ListPods        func(ctx context.Context, namespace string) ([]kubecore.Pod, error)
		ListEvents      func(ctx context.Context, namespace string) ([]kubecore.Event, error)
		DeletePod       func(ctx context.Context, namespace string, name string) error
		PatchDeployment func(ctx context.Context, namespace string, name string, patch []byte) error
	}
}

func New(t *testing.T) *MockK8sClient {
	return &MockK8sClient{t: t}
}

func (m *MockK8sClient) ListPods(ctx context.Context, namespace string) ([]kubecore.Pod, error) {
	if m.Impl.ListPods == nil {
		m.t.Fatal("ListPods is not implemented")
	}
	return m.Impl.ListPods(ctx, namespace)
}

func (m *MockK8sClient) ListEvents(ctx context.Context, namespace string) ([]kubecore.Event, error) {
	if m.Impl.ListEvents == nil {
		m.t.Fatal("ListEvents is not implemented")
	}
	return m.Impl.ListEvents(ctx, namespace)
}

func (m *MockK8sClient) DeletePod(ctx context.Context, namespace string, name string) error {
	if m.Impl.DeletePod == nil {
		m.t.Fatal("DeletePod is not implemented")
	}
	return m.Impl.DeletePod(ctx, namespace, name)
}

func (m *MockK8sClient) PatchDeployment(ctx context.Context, namespace string, name string, patch []byte) error {
	if m.Impl.PatchDeployment == nil {
		m.t.Fatal("PatchDeployment is not implemented")
	}
	return m.Impl.PatchDeployment(ctx, namespace, name, patch)
}
