package domain

import (
	"context"
	"time"
)

// Article is representing the Article data struct.
// Articles are owned by the publishing service; comments only reference them.
type Article struct {
	ID        int64     // Internal identifier
	UUID      string    // Public identifier
	Title     string    // Article title
	Content   string    // Article body content
	Tags      []string  // Free-form tags
	AuthorID  int64     // Author of the article
	Hidden    bool      // Moderation flag
	Vote      int64     // Vote aggregate
	CreatedAt time.Time // Creation timestamp
	UpdatedAt time.Time // Last update timestamp
}

// ArticleSummary is the projection of an article embedded in a comment.
// It carries neither the internal id nor the author back-reference.
type ArticleSummary struct {
	UUID      string    `json:"uuid"`
	Title     string    `json:"title"`
	Tags      []string  `json:"tags"`
	Hidden    bool      `json:"hidden"`
	Vote      int64     `json:"vote"`
	CreatedAt time.Time `json:"created"`
	UpdatedAt time.Time `json:"updated"`
}

// Summary strips the internal id, the author and the body from a.
func (a *Article) Summary() ArticleSummary {
	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}
	return ArticleSummary{
		UUID:      a.UUID,
		Title:     a.Title,
		Tags:      tags,
		Hidden:    a.Hidden,
		Vote:      a.Vote,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// ArticleDBRepository is the database side of article lookups.
type ArticleDBRepository interface {
	// GetByUUID retrieves a single article by its public identifier.
	// Returns ErrNotFound if the article doesn't exist.
	GetByUUID(ctx context.Context, uuid string) (Article, error)

	// GetByIDs retrieves articles by given internal IDs. Missing articles are skipped.
	GetByIDs(ctx context.Context, ids []int64) ([]Article, error)

	// FetchUUIDs pages through article UUIDs ordered by internal id.
	// cursor is the last internal id of the previous page (0 for the first page).
	FetchUUIDs(ctx context.Context, cursor int64, limit int64) (uuids []string, next int64, err error)
}

// ArticleCache caches article lookups by public identifier.
type ArticleCache interface {
	// GetArticleWithLogicalExpire returns ErrCacheMiss when the key is absent.
	GetArticleWithLogicalExpire(ctx context.Context, uuid string) (res Article, expired bool, err error)
	SetArticleWithLogicalExpire(ctx context.Context, ar *Article, ttl time.Duration) error
	DeleteArticle(ctx context.Context, uuid string) error
}

// ArticleRepository resolves articles referenced by comments.
type ArticleRepository interface {
	// GetByUUID resolves an article by its public identifier.
	// Returns ErrNotFound if the article doesn't exist.
	GetByUUID(ctx context.Context, uuid string) (Article, error)

	// GetByIDs retrieves articles by given internal IDs.
	GetByIDs(ctx context.Context, ids []int64) ([]Article, error)
}
