package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/blog-comments/domain"
	"github.com/Guyuepp/blog-comments/domain/mocks"
	"github.com/Guyuepp/blog-comments/internal/repository"
)

func TestCommentRepository_FetchRoots(t *testing.T) {
	db := new(mocks.CommentRepository)
	users := new(mocks.UserRepository)
	articles := new(mocks.ArticleRepository)
	repo := repository.NewCommentRepository(db, users, articles)

	q := domain.ListQuery{Limit: 10}
	db.On("FetchRoots", mock.Anything, int64(1), q).Return([]domain.Comment{
		{ID: 1, AuthorID: 7, ArticleID: 1},
		{ID: 2, AuthorID: 8, ArticleID: 1},
		{ID: 3, AuthorID: 7, ArticleID: 1},
	}, nil).Once()
	users.On("GetByIDs", mock.Anything, []int64{7, 8}).Return([]domain.User{
		{ID: 7, UUID: "u7", Name: "Seven", Profile: domain.Profile{Email: "seven@example.com"}},
		{ID: 8, UUID: "u8", Name: "Eight"},
	}, nil).Once()
	articles.On("GetByIDs", mock.Anything, []int64{1}).Return([]domain.Article{
		{ID: 1, UUID: "a1", Title: "First", AuthorID: 7},
	}, nil).Once()

	res, err := repo.FetchRoots(context.TODO(), 1, q)
	require.NoError(t, err)
	require.Len(t, res, 3)
	assert.Equal(t, domain.AuthorSummary{UUID: "u7", Name: "Seven"}, res[0].Author)
	assert.Equal(t, "u8", res[1].Author.UUID)
	assert.Equal(t, "u7", res[2].Author.UUID)
	for _, c := range res {
		assert.Equal(t, "a1", c.Article.UUID)
		assert.Equal(t, []string{}, c.Article.Tags)
	}

	db.AssertExpectations(t)
	users.AssertExpectations(t)
	articles.AssertExpectations(t)
}

func TestCommentRepository_EmptyPageSkipsLookups(t *testing.T) {
	db := new(mocks.CommentRepository)
	users := new(mocks.UserRepository)
	articles := new(mocks.ArticleRepository)
	repo := repository.NewCommentRepository(db, users, articles)

	q := domain.ListQuery{Limit: 10}
	db.On("FetchReplies", mock.Anything, int64(4), q).Return([]domain.Comment{}, nil).Once()

	res, err := repo.FetchReplies(context.TODO(), 4, q)
	require.NoError(t, err)
	assert.Empty(t, res)
	users.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything)
	articles.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything)
}

func TestCommentRepository_GetByUUID(t *testing.T) {
	t.Run("attaches summaries", func(t *testing.T) {
		db := new(mocks.CommentRepository)
		users := new(mocks.UserRepository)
		articles := new(mocks.ArticleRepository)
		repo := repository.NewCommentRepository(db, users, articles)

		db.On("GetByUUID", mock.Anything, "c1").
			Return(domain.Comment{ID: 1, UUID: "c1", AuthorID: 7, ArticleID: 2, VotedUsers: []int64{8}}, nil).Once()
		users.On("GetByIDs", mock.Anything, []int64{7}).Return([]domain.User{{ID: 7, UUID: "u7"}}, nil).Once()
		articles.On("GetByIDs", mock.Anything, []int64{2}).Return([]domain.Article{{ID: 2, UUID: "a2"}}, nil).Once()

		res, err := repo.GetByUUID(context.TODO(), "c1")
		require.NoError(t, err)
		assert.Equal(t, "u7", res.Author.UUID)
		assert.Equal(t, "a2", res.Article.UUID)
		assert.Equal(t, []int64{8}, res.VotedUsers)
	})

	t.Run("not found", func(t *testing.T) {
		db := new(mocks.CommentRepository)
		repo := repository.NewCommentRepository(db, new(mocks.UserRepository), new(mocks.ArticleRepository))

		db.On("GetByUUID", mock.Anything, "nope").Return(domain.Comment{}, domain.ErrNotFound).Once()

		_, err := repo.GetByUUID(context.TODO(), "nope")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("summary lookup fails", func(t *testing.T) {
		db := new(mocks.CommentRepository)
		users := new(mocks.UserRepository)
		repo := repository.NewCommentRepository(db, users, new(mocks.ArticleRepository))

		db.On("GetByUUID", mock.Anything, "c1").Return(domain.Comment{ID: 1, AuthorID: 7, ArticleID: 2}, nil).Once()
		users.On("GetByIDs", mock.Anything, []int64{7}).Return(nil, domain.ErrStoreUnavailable).Once()

		_, err := repo.GetByUUID(context.TODO(), "c1")
		assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	})
}
