package mocks

import (
	"context"

	"story-rag/internal/imagegen"

	"github.com/stretchr/testify/mock"
)

// MockImageClient is a mock type for the ImageClient type
type MockImageClient struct {
	mock.Mock
}

// Generate provides a mock function with given fields: ctx, prompt, size, quality, n
func (_m *MockImageClient) Generate(ctx context.Context, prompt string, size string, quality string, n int) ([]string, error) {
	ret := _m.Called(ctx, prompt, size, quality, n)

	var r0 []string
	if rf, ok := ret.Get(0).(func(context.Context, string, string, string, int) []string); ok {
		r0 = rf(ctx, prompt, size, quality, n)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]string)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, string, string, int) error); ok {
		r1 = rf(ctx, prompt, size, quality, n)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockImageClient creates a new instance of MockImageClient. It also registers a cleanup function to assert the mocks expectations.
func NewMockImageClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockImageClient {
	m := &MockImageClient{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

var _ imagegen.ImageClient = (*MockImageClient)(nil)
