// this package provides a "mock" implementation of the category store for testing.
package mocks

import (
	"context"
	"errors"

	types "github.com/matkb/matkb/pkg/domain"
)

type MockCategoryInterface struct {
	Impl struct {
		Register func(context.Context, types.CategoryParam) (int, error)
		Rename   func(ctx context.Context, id int, name string) error
		Move     func(ctx context.Context, id int, parentId *int) error
		Find     func(context.Context) ([]types.CategoryNode, error)
		Delete   func(ctx context.Context, id int) error
	}
}

func NewMockCategoryInterface() *MockCategoryInterface {
	return &MockCategoryInterface{}
}

func (m *MockCategoryInterface) Register(ctx context.Context, param types.CategoryParam) (int, error) {
	if m.Impl.Register == nil {
		return 0, errors.New("[MOCK] not implemented")
	}
	return m.Impl.Register(ctx, param)
}

func (m *MockCategoryInterface) Rename(ctx context.Context, id int, name string) error {
	if m.Impl.Rename == nil {
		return errors.New("[MOCK] not implemented")
	}
	return m.Impl.Rename(ctx, id, name)
}

func (m *MockCategoryInterface) Move(ctx context.Context, id int, parentId *int) error {
	if m.Impl.Move == nil {
		return errors.New("[MOCK] not implemented")
	}
	return m.Impl.Move(ctx, id, parentId)
}

func (m *MockCategoryInterface) Find(ctx context.Context) ([]types.CategoryNode, error) {
	if m.Impl.Find == nil {
		return nil, errors.New("[MOCK] not implemented")
	}
	return m.Impl.Find(ctx)
}

func (m *MockCategoryInterface) Delete(ctx context.Context, id int) error {
	if m.Impl.Delete == nil {
		return errors.New("[MOCK] not implemented")
	}
	return m.Impl.Delete(ctx, id)
}
