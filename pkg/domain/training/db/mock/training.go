package mocks

import (
	"context"
	"errors"

	types "github.com/matkb/matkb/pkg/domain"
)

type MockTrainingInterface struct {
	Impl struct {
		Register     func(context.Context, types.TrainingSessionParam) (int, error)
		Get          func(ctx context.Context, id int) (types.TrainingSession, error)
		Find         func(context.Context) ([]types.TrainingSession, error)
		UpdateStatus func(ctx context.Context, id int, status types.SessionStatus) error
		Delete       func(ctx context.Context, id int) error
	}
}

func NewMockTrainingInterface() *MockTrainingInterface {
	return &MockTrainingInterface{}
}

func (m *MockTrainingInterface) Register(ctx context.Context, param types.TrainingSessionParam) (int, error) {
	if m.Impl.Register == nil {
		return 0, errors.New("[MOCK] not implemented")
	}
	return m.Impl.Register(ctx, param)
}

func (m *MockTrainingInterface) Get(ctx context.Context, id int) (types.TrainingSession, error) {
	if m.Impl.Get == nil {
		return types.TrainingSession{}, errors.New("[MOCK] not implemented")
	}
	return m.Impl.Get(ctx, id)
}

func (m *MockTrainingInterface) Find(ctx context.Context) ([]types.TrainingSession, error) {
	if m.Impl.Find == nil {
		return nil, errors.New("[MOCK] not implemented")
	}
	return m.Impl.Find(ctx)
}

func (m *MockTrainingInterface) UpdateStatus(ctx context.Context, id int, status types.SessionStatus) error {
	if m.Impl.UpdateStatus == nil {
		return errors.New("[MOCK] not implemented")
	}
	return m.Impl.UpdateStatus(ctx, id, status)
}

func (m *MockTrainingInterface) Delete(ctx context.Context, id int) error {
	if m.Impl.Delete == nil {
		return errors.New("[MOCK] not implemented")
	}
	return m.Impl.Delete(ctx, id)
}
