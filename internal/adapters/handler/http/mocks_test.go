package http_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/comitanigiacomo/strivefit-engine/internal/core/domain"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Get(ctx context.Context, collection, key string) (*domain.Record, error) {
	args := m.Called(ctx, collection, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Record), args.Error(1)
}

func (m *MockStore) Put(ctx context.Context, collection, key string, doc domain.Document) error {
	return m.Called(ctx, collection, key, doc).Error(0)
}

func (m *MockStore) PutIfVersion(ctx context.Context, collection, key string, doc domain.Document, version int) error {
	return m.Called(ctx, collection, key, doc, version).Error(0)
}

func (m *MockStore) Merge(ctx context.Context, collection, key string, partial domain.Document) error {
	return m.Called(ctx, collection, key, partial).Error(0)
}

func (m *MockStore) Append(ctx context.Context, collection string, doc domain.Document) (string, error) {
	args := m.Called(ctx, collection, doc)
	return args.String(0), args.Error(1)
}

func (m *MockStore) Delete(ctx context.Context, collection, key string) error {
	return m.Called(ctx, collection, key).Error(0)
}

func (m *MockStore) QueryOrdered(ctx context.Context, collection, orderField string, dir domain.SortDirection) ([]*domain.Record, error) {
	args := m.Called(ctx, collection, orderField, dir)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Record), args.Error(1)
}
