package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/blog-comments/domain"
	"github.com/Guyuepp/blog-comments/internal/repository/cache"
)

func TestGetArticleWithLogicalExpire(t *testing.T) {
	article := domain.Article{ID: 1, UUID: "a1", Title: "Go", Tags: []string{"go"}}

	t.Run("miss", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		c := NewArticleCache(client)
		mock.ExpectGet(fmt.Sprintf(KeyArticles, "a1")).RedisNil()

		_, _, err := c.GetArticleWithLogicalExpire(context.TODO(), "a1")
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("fresh", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		c := NewArticleCache(client)
		data, err := json.Marshal(cache.NewDataWithLogicalExpire(article, time.Minute))
		require.NoError(t, err)
		mock.ExpectGet(fmt.Sprintf(KeyArticles, "a1")).SetVal(string(data))

		res, expired, err := c.GetArticleWithLogicalExpire(context.TODO(), "a1")
		require.NoError(t, err)
		assert.False(t, expired)
		assert.Equal(t, "Go", res.Title)
		assert.Equal(t, []string{"go"}, res.Tags)
	})

	t.Run("logically expired", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		c := NewArticleCache(client)
		data, err := json.Marshal(cache.NewDataWithLogicalExpire(article, -time.Minute))
		require.NoError(t, err)
		mock.ExpectGet(fmt.Sprintf(KeyArticles, "a1")).SetVal(string(data))

		res, expired, err := c.GetArticleWithLogicalExpire(context.TODO(), "a1")
		require.NoError(t, err)
		assert.True(t, expired)
		assert.Equal(t, "a1", res.UUID)
	})

	t.Run("redis error", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		c := NewArticleCache(client)
		mock.ExpectGet(fmt.Sprintf(KeyArticles, "a1")).SetErr(errors.New("connection refused"))

		_, _, err := c.GetArticleWithLogicalExpire(context.TODO(), "a1")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrCacheMiss)
	})
}

func TestSetArticleWithLogicalExpire(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewArticleCache(client)
	key := fmt.Sprintf(KeyArticles, "a1")

	mock.CustomMatch(func(expected, actual []interface{}) error {
		if len(actual) < 2 || actual[0] != "set" || actual[1] != key {
			return fmt.Errorf("unexpected command %v", actual)
		}
		return nil
	}).ExpectSet(key, "", 10*time.Minute+physicalGrace).SetVal("OK")

	err := c.SetArticleWithLogicalExpire(context.TODO(), &domain.Article{UUID: "a1"}, 10*time.Minute)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteArticle(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewArticleCache(client)
	mock.ExpectDel(fmt.Sprintf(KeyArticles, "a1")).SetVal(1)

	assert.NoError(t, c.DeleteArticle(context.TODO(), "a1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
