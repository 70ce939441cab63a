package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"catalogapi/internal/model"
)

type MockCategoryProvider struct {
	mock.Mock
}

func (m *MockCategoryProvider) List(ctx context.Context, pageSize int, startAfter string) ([]model.Category, error) {
	args := m.Called(ctx, pageSize, startAfter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *MockCategoryProvider) Get(ctx context.Context, id string) (*model.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryProvider) Create(ctx context.Context, name, description, iconRef string) (*model.Category, error) {
	args := m.Called(ctx, name, description, iconRef)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryProvider) Update(ctx context.Context, c *model.Category) (*model.Category, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryProvider) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
