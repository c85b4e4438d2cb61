package mocks

import (
	"context"

	"story-rag/internal/llmservice"

	"github.com/stretchr/testify/mock"
)

// MockChatClient is a mock type for the ChatClient type
type MockChatClient struct {
	mock.Mock
}

// Complete provides a mock function with given fields: ctx, messages, temperature
func (_m *MockChatClient) Complete(ctx context.Context, messages []llmservice.Message, temperature float64) (string, error) {
	ret := _m.Called(ctx, messages, temperature)

	var r0 string
	if rf, ok := ret.Get(0).(func(context.Context, []llmservice.Message, float64) string); ok {
		r0 = rf(ctx, messages, temperature)
	} else {
		r0 = ret.String(0)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, []llmservice.Message, float64) error); ok {
		r1 = rf(ctx, messages, temperature)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockChatClient creates a new instance of MockChatClient. It also registers a cleanup function to assert the mocks expectations.
func NewMockChatClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockChatClient {
	m := &MockChatClient{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

var _ llmservice.ChatClient = (*MockChatClient)(nil)
