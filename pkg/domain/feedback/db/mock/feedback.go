package mocks

import (
	"context"
	"errors"

	types "github.com/matkb/matkb/pkg/domain"
)

type MockFeedbackInterface struct {
	Impl struct {
		Enqueue func(context.Context, types.FeedbackParam) (int, error)
		Find    func(ctx context.Context, limit int) ([]types.Feedback, error)
		Count   func(ctx context.Context) (int, error)
		Pop     func(ctx context.Context, callback func(types.Feedback) error) (bool, error)
	}
}

func NewMockFeedbackInterface() *MockFeedbackInterface {
	return &MockFeedbackInterface{}
}

func (m *MockFeedbackInterface) Enqueue(ctx context.Context, param types.FeedbackParam) (int, error) {
	if m.Impl.Enqueue == nil {
		return 0, errors.New("[MOCK] not implemented")
	}
	return m.Impl.Enqueue(ctx, param)
}

func (m *MockFeedbackInterface) Find(ctx context.Context, limit int) ([]types.Feedback, error) {
	if m.Impl.Find == nil {
		return nil, errors.New("[MOCK] not implemented")
	}
	return m.Impl.Find(ctx, limit)
}

func (m *MockFeedbackInterface) Count(ctx context.Context) (int, error) {
	if m.Impl.Count == nil {
		return 0, errors.New("[MOCK] not implemented")
	}
	return m.Impl.Count(ctx)
}

func (m *MockFeedbackInterface) Pop(ctx context.Context, callback func(types.Feedback) error) (bool, error) {
	if m.Impl.Pop == nil {
		return false, errors.New("[MOCK] not implemented")
	}
	return m.Impl.Pop(ctx, callback)
}
