package mocks

import (
	context "context"

	domain "github.com/Guyuepp/blog-comments/domain"
	mock "github.com/stretchr/testify/mock"
)

// CommentRepository is a mock type for the CommentRepository type
type CommentRepository struct {
	mock.Mock
}

// GetByUUID provides a mock function with given fields: ctx, uuid
func (_m *CommentRepository) GetByUUID(ctx context.Context, uuid string) (domain.Comment, error) {
	ret := _m.Called(ctx, uuid)
	return ret.Get(0).(domain.Comment), ret.Error(1)
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *CommentRepository) GetByID(ctx context.Context, id int64) (domain.Comment, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(domain.Comment), ret.Error(1)
}

// FetchRoots provides a mock function with given fields: ctx, articleID, q
func (_m *CommentRepository) FetchRoots(ctx context.Context, articleID int64, q domain.ListQuery) ([]domain.Comment, error) {
	ret := _m.Called(ctx, articleID, q)
	var r0 []domain.Comment
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Comment)
	}
	return r0, ret.Error(1)
}

// CountRoots provides a mock function with given fields: ctx, articleID
func (_m *CommentRepository) CountRoots(ctx context.Context, articleID int64) (int64, error) {
	ret := _m.Called(ctx, articleID)
	return ret.Get(0).(int64), ret.Error(1)
}

// FetchReplies provides a mock function with given fields: ctx, parentID, q
func (_m *CommentRepository) FetchReplies(ctx context.Context, parentID int64, q domain.ListQuery) ([]domain.Comment, error) {
	ret := _m.Called(ctx, parentID, q)
	var r0 []domain.Comment
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Comment)
	}
	return r0, ret.Error(1)
}

// CountReplies provides a mock function with given fields: ctx, parentID
func (_m *CommentRepository) CountReplies(ctx context.Context, parentID int64) (int64, error) {
	ret := _m.Called(ctx, parentID)
	return ret.Get(0).(int64), ret.Error(1)
}

// Store provides a mock function with given fields: ctx, c
func (_m *CommentRepository) Store(ctx context.Context, c *domain.Comment) error {
	ret := _m.Called(ctx, c)
	return ret.Error(0)
}

// UpdateContent provides a mock function with given fields: ctx, id, authorID, content
func (_m *CommentRepository) UpdateContent(ctx context.Context, id int64, authorID int64, content string) error {
	ret := _m.Called(ctx, id, authorID, content)
	return ret.Error(0)
}

// Delete provides a mock function with given fields: ctx, id, authorID
func (_m *CommentRepository) Delete(ctx context.Context, id int64, authorID int64) (domain.Comment, error) {
	ret := _m.Called(ctx, id, authorID)
	return ret.Get(0).(domain.Comment), ret.Error(1)
}
