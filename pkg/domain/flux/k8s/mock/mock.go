package mock

import (
	"context"
	"testing"

	kubeapps "k8s.io/api/apps/v1"
)

type MockK8sClient struct {
	t    *testing.T
	Impl struct {
		ListDeployments func(ctx context.Context, namespace string) ([]kubeapps.Deployment, error)
	}
}

func New(t *testing.T) *MockK8sClient {
	return &MockK8sClient{t: t}
}

func (m *MockK8sClient) ListDeployments(ctx context.Context, namespace string) ([]kubeapps.Deployment, error) {
	if m.Impl.ListDeployments == nil {
		m.t.Fatal("ListDeployments is not implemented")
	}
	return m.Impl.ListDeployments(ctx, namespace)
}
