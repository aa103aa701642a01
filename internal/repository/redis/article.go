package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/blog-comments/domain"
	"github.com/Guyuepp/blog-comments/internal/repository/cache"
)

const (
	KeyArticles = "comment:article:%s"

	// physicalGrace keeps a logically expired entry around long enough to be served
	// while it is rebuilt in the background.
	physicalGrace = time.Hour
)

type articleCache struct {
	client *redis.Client
}

var _ domain.ArticleCache = (*articleCache)(nil)

func NewArticleCache(client *redis.Client) *articleCache {
	return &articleCache{
		client,
	}
}

func (c *articleCache) GetArticleWithLogicalExpire(ctx context.Context, uuid string) (domain.Article, bool, error) {
	data, err := c.client.Get(ctx, fmt.Sprintf(KeyArticles, uuid)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Article{}, false, domain.ErrCacheMiss
	} else if err != nil {
		return domain.Article{}, false, err
	}

	var entry cache.DataWithLogicalExpire[domain.Article]
	if err = json.Unmarshal(data, &entry); err != nil {
		return domain.Article{}, false, err
	}
	return entry.Data, entry.IsLogicalExpired(), nil
}

func (c *articleCache) SetArticleWithLogicalExpire(ctx context.Context, ar *domain.Article, ttl time.Duration) error {
	data, err := json.Marshal(cache.NewDataWithLogicalExpire(*ar, ttl))
	if err != nil {
		return err
	}
	return c.client.Set(ctx, fmt.Sprintf(KeyArticles, ar.UUID), data, ttl+physicalGrace).Err()
}

func (c *articleCache) DeleteArticle(ctx context.Context, uuid string) error {
	return c.client.Del(ctx, fmt.Sprintf(KeyArticles, uuid)).Err()
}
