package mocks

import (
	"context"
	"errors"

	types "github.com/matkb/matkb/pkg/domain"
)

type MockFieldInterface struct {
	Impl struct {
		Register func(context.Context, types.FieldParam) (int, error)
		Update   func(ctx context.Context, id int, param types.FieldParam) error
		Find     func(context.Context) ([]types.FieldDefinition, error)
		Reorder  func(ctx context.Context, ids []int) error
		Delete   func(ctx context.Context, id int) error
	}
}

func NewMockFieldInterface() *MockFieldInterface {
	return &MockFieldInterface{}
}

func (m *MockFieldInterface) Register(ctx context.Context, param types.FieldParam) (int, error) {
	if m.Impl.Register == nil {
		return 0, errors.New("[MOCK] not implemented")
	}
	return m.Impl.Register(ctx, param)
}

func (m *MockFieldInterface) Update(ctx context.Context, id int, param types.FieldParam) error {
	if m.Impl.Update == nil {
		return errors.New("[MOCK] not implemented")
	}
	return m.Impl.Update(ctx, id, param)
}

func (m *MockFieldInterface) Find(ctx context.Context) ([]types.FieldDefinition, error) {
	if m.Impl.Find == nil {
		return nil, errors.New("[MOCK] not implemented")
	}
	return m.Impl.Find(ctx)
}

func (m *MockFieldInterface) Reorder(ctx context.Context, ids []int) error {
	if m.Impl.Reorder == nil {
		return errors.New("[MOCK] not implemented")
	}
	return m.Impl.Reorder(ctx, ids)
}

func (m *MockFieldInterface) Delete(ctx context.Context, id int) error {
	if m.Impl.Delete == nil {
		return errors.New("[MOCK] not implemented")
	}
	return m.Impl.Delete(ctx, id)
}
