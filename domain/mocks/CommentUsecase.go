package mocks

import (
	context "context"

	domain "github.com/Guyuepp/blog-comments/domain"
	mock "github.com/stretchr/testify/mock"
)

// CommentUsecase is a mock type for the CommentUsecase type
type CommentUsecase struct {
	mock.Mock
}

// FetchByArticle provides a mock function with given fields: ctx, articleUUID, q
func (_m *CommentUsecase) FetchByArticle(ctx context.Context, articleUUID string, q domain.ListQuery) (domain.CommentPage, error) {
	ret := _m.Called(ctx, articleUUID, q)
	return ret.Get(0).(domain.CommentPage), ret.Error(1)
}

// FetchReplies provides a mock function with given fields: ctx, commentUUID, q
func (_m *CommentUsecase) FetchReplies(ctx context.Context, commentUUID string, q domain.ListQuery) (domain.CommentPage, error) {
	ret := _m.Called(ctx, commentUUID, q)
	return ret.Get(0).(domain.CommentPage), ret.Error(1)
}

// Create provides a mock function with given fields: ctx, requester, articleUUID, content
func (_m *CommentUsecase) Create(ctx context.Context, requester int64, articleUUID string, content string) (domain.Comment, error) {
	ret := _m.Called(ctx, requester, articleUUID, content)
	return ret.Get(0).(domain.Comment), ret.Error(1)
}

// Edit provides a mock function with given fields: ctx, requester, commentUUID, content
func (_m *CommentUsecase) Edit(ctx context.Context, requester int64, commentUUID string, content string) (domain.Comment, error) {
	ret := _m.Called(ctx, requester, commentUUID, content)
	return ret.Get(0).(domain.Comment), ret.Error(1)
}

// Reply provides a mock function with given fields: ctx, requester, commentUUID, articleUUID, content
func (_m *CommentUsecase) Reply(ctx context.Context, requester int64, commentUUID string, articleUUID string, content string) (domain.Comment, error) {
	ret := _m.Called(ctx, requester, commentUUID, articleUUID, content)
	return ret.Get(0).(domain.Comment), ret.Error(1)
}

// Delete provides a mock function with given fields: ctx, requester, commentUUID
func (_m *CommentUsecase) Delete(ctx context.Context, requester int64, commentUUID string) (domain.Comment, error) {
	ret := _m.Called(ctx, requester, commentUUID)
	return ret.Get(0).(domain.Comment), ret.Error(1)
}
