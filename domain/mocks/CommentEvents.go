package mocks

import (
	context "context"

	domain "github.com/Guyuepp/blog-comments/domain"
	mock "github.com/stretchr/testify/mock"
)

// CommentEventWorker is a mock type for the CommentEventWorker type
type CommentEventWorker struct {
	mock.Mock
}

// Start provides a mock function with given fields: ctx
func (_m *CommentEventWorker) Start(ctx context.Context) {
	_m.Called(ctx)
}

// Send provides a mock function with given fields: ev
func (_m *CommentEventWorker) Send(ev domain.CommentEvent) {
	_m.Called(ev)
}

// CommentEventPublisher is a mock type for the CommentEventPublisher type
type CommentEventPublisher struct {
	mock.Mock
}

// Publish provides a mock function with given fields: ctx, events
func (_m *CommentEventPublisher) Publish(ctx context.Context, events []domain.CommentEvent) error {
	ret := _m.Called(ctx, events)
	return ret.Error(0)
}
