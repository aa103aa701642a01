package repository

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/Guyuepp/blog-comments/domain"
)

const articleCacheTTL = 10 * time.Minute

// articleRepository 协调层，协调缓存和数据库
type articleRepository struct {
	db           domain.ArticleDBRepository
	cache        domain.ArticleCache
	rebuildGroup singleflight.Group
}

var _ domain.ArticleRepository = (*articleRepository)(nil)

// NewArticleRepository 创建协调层repository
func NewArticleRepository(db domain.ArticleDBRepository, cache domain.ArticleCache) *articleRepository {
	return &articleRepository{
		db:    db,
		cache: cache,
	}
}

// GetByUUID 使用逻辑过期策略避免缓存击穿
func (r *articleRepository) GetByUUID(ctx context.Context, uuid string) (domain.Article, error) {
	article, expired, err := r.cache.GetArticleWithLogicalExpire(ctx, uuid)
	if err == nil {
		if expired {
			go r.rebuildArticleCache(context.Background(), uuid)
		}
		return article, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("article cache unavailable, falling back to db: %v", err)
	}

	// 缓存未命中，使用singleflight避免缓存击穿
	result, err, _ := r.rebuildGroup.Do("article:"+uuid, func() (any, error) {
		return r.load(ctx, uuid)
	})
	if err != nil {
		return domain.Article{}, err
	}
	return result.(domain.Article), nil
}

// GetByIDs 批量获取文章, used to attach summaries so it always reads the db
func (r *articleRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Article, error) {
	return r.db.GetByIDs(ctx, ids)
}

func (r *articleRepository) load(ctx context.Context, uuid string) (domain.Article, error) {
	art, err := r.db.GetByUUID(ctx, uuid)
	if err != nil {
		return domain.Article{}, err
	}
	if err := r.cache.SetArticleWithLogicalExpire(ctx, &art, articleCacheTTL); err != nil {
		logrus.Warnf("failed to set article cache for %s: %v", uuid, err)
	}
	return art, nil
}

// rebuildArticleCache 异步重建文章缓存
func (r *articleRepository) rebuildArticleCache(ctx context.Context, uuid string) {
	_, err, _ := r.rebuildGroup.Do("rebuild:"+uuid, func() (any, error) {
		art, err := r.load(ctx, uuid)
		if errors.Is(err, domain.ErrNotFound) {
			// 文章不存在，删除缓存
			_ = r.cache.DeleteArticle(ctx, uuid)
		}
		return art, err
	})
	if err != nil {
		logrus.Errorf("rebuildArticleCache failed for %s: %v", uuid, err)
	}
}
