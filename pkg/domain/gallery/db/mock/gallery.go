package mocks

import (
	"context"
	"errors"

	types "github.com/matkb/matkb/pkg/domain"
)

type MockGalleryInterface struct {
	Impl struct {
		Register func(context.Context, types.ReferenceEntryParam) (int, error)
		Update   func(ctx context.Context, id int, param types.ReferenceEntryParam) error
		Find     func(ctx context.Context, property string) ([]types.ReferenceEntry, error)
		Delete   func(ctx context.Context, id int) error
	}
}

func NewMockGalleryInterface() *MockGalleryInterface {
	return &MockGalleryInterface{}
}

func (m *MockGalleryInterface) Register(ctx context.Context, param types.ReferenceEntryParam) (int, error) {
	if m.Impl.Register == nil {
		return 0, errors.New("[MOCK] not implemented")
	}
	return m.Impl.Register(ctx, param)
}

func (m *MockGalleryInterface) Update(ctx context.Context, id int, param types.ReferenceEntryParam) error {
	if m.Impl.Update == nil {
		return errors.New("[MOCK] not implemented")
	}
	return m.Impl.Update(ctx, id, param)
}

func (m *MockGalleryInterface) Find(ctx context.Context, property string) ([]types.ReferenceEntry, error) {
	if m.Impl.Find == nil {
		return nil, errors.New("[MOCK] not implemented")
	}
	return m.Impl.Find(ctx, property)
}

func (m *MockGalleryInterface) Delete(ctx context.Context, id int) error {
	if m.Impl.Delete == nil {
		return errors.New("[MOCK] not implemented")
	}
	return m.Impl.Delete(ctx, id)
}
