package mocks

import (
	context "context"
	time "time"

	domain "github.com/Guyuepp/blog-comments/domain"
	mock "github.com/stretchr/testify/mock"
)

// ArticleRepository is a mock type for the ArticleRepository type
type ArticleRepository struct {
	mock.Mock
}

// GetByUUID provides a mock function with given fields: ctx, uuid
func (_m *ArticleRepository) GetByUUID(ctx context.Context, uuid string) (domain.Article, error) {
	ret := _m.Called(ctx, uuid)
	return ret.Get(0).(domain.Article), ret.Error(1)
}

// GetByIDs provides a mock function with given fields: ctx, ids
func (_m *ArticleRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Article, error) {
	ret := _m.Called(ctx, ids)
	var r0 []domain.Article
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Article)
	}
	return r0, ret.Error(1)
}

// ArticleDBRepository is a mock type for the ArticleDBRepository type
type ArticleDBRepository struct {
	mock.Mock
}

// GetByUUID provides a mock function with given fields: ctx, uuid
func (_m *ArticleDBRepository) GetByUUID(ctx context.Context, uuid string) (domain.Article, error) {
	ret := _m.Called(ctx, uuid)
	return ret.Get(0).(domain.Article), ret.Error(1)
}

// GetByIDs provides a mock function with given fields: ctx, ids
func (_m *ArticleDBRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Article, error) {
	ret := _m.Called(ctx, ids)
	var r0 []domain.Article
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Article)
	}
	return r0, ret.Error(1)
}

// FetchUUIDs provides a mock function with given fields: ctx, cursor, limit
func (_m *ArticleDBRepository) FetchUUIDs(ctx context.Context, cursor int64, limit int64) ([]string, int64, error) {
	ret := _m.Called(ctx, cursor, limit)
	var r0 []string
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]string)
	}
	return r0, ret.Get(1).(int64), ret.Error(2)
}

// ArticleCache is a mock type for the ArticleCache type
type ArticleCache struct {
	mock.Mock
}

// GetArticleWithLogicalExpire provides a mock function with given fields: ctx, uuid
func (_m *ArticleCache) GetArticleWithLogicalExpire(ctx context.Context, uuid string) (domain.Article, bool, error) {
	ret := _m.Called(ctx, uuid)
	return ret.Get(0).(domain.Article), ret.Bool(1), ret.Error(2)
}

// SetArticleWithLogicalExpire provides a mock function with given fields: ctx, ar, ttl
func (_m *ArticleCache) SetArticleWithLogicalExpire(ctx context.Context, ar *domain.Article, ttl time.Duration) error {
	ret := _m.Called(ctx, ar, ttl)
	return ret.Error(0)
}

// DeleteArticle provides a mock function with given fields: ctx, uuid
func (_m *ArticleCache) DeleteArticle(ctx context.Context, uuid string) error {
	ret := _m.Called(ctx, uuid)
	return ret.Error(0)
}
