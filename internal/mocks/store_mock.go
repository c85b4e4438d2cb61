package mocks

import (
	"context"

	"story-rag/internal/models"
	"story-rag/internal/vectorstore"

	"github.com/stretchr/testify/mock"
)

// MockStore is a mock type for the Store type
type MockStore struct {
	mock.Mock
}

// Upsert provides a mock function with given fields: ctx, texts, metadata
func (_m *MockStore) Upsert(ctx context.Context, texts []string, metadata []models.ChunkMetadata) error {
	ret := _m.Called(ctx, texts, metadata)

	if rf, ok := ret.Get(0).(func(context.Context, []string, []models.ChunkMetadata) error); ok {
		return rf(ctx, texts, metadata)
	}
	return ret.Error(0)
}

// Search provides a mock function with given fields: ctx, query, limit
func (_m *MockStore) Search(ctx context.Context, query string, limit int) ([]models.SearchResult, error) {
	ret := _m.Called(ctx, query, limit)

	var r0 []models.SearchResult
	if rf, ok := ret.Get(0).(func(context.Context, string, int) []models.SearchResult); ok {
		r0 = rf(ctx, query, limit)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.SearchResult)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, int) error); ok {
		r1 = rf(ctx, query, limit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockStore creates a new instance of MockStore. It also registers a cleanup function to assert the mocks expectations.
func NewMockStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockStore {
	m := &MockStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

var _ vectorstore.Store = (*MockStore)(nil)
