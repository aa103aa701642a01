package domain

import (
	"context"
	"time"
)

// Comment domain model
type Comment struct {
	ID         int64
	UUID       string
	Content    string
	AuthorID   int64
	ArticleID  int64
	ReplyID    *int64 // nil for a root comment
	Hidden     bool
	VoteCount  int64
	VotedUsers []int64
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Author and Article are attached by CommentRepository after the primary read
	Author  AuthorSummary
	Article ArticleSummary
}

// IsReply reports whether c answers another comment.
func (c *Comment) IsReply() bool {
	return c.ReplyID != nil
}

// CanMutate is the authorization guard for edit and delete.
func CanMutate(requester int64, c *Comment) bool {
	return requester != 0 && c != nil && c.AuthorID == requester
}

// CommentUsecase 业务逻辑接口
type CommentUsecase interface {
	FetchByArticle(ctx context.Context, articleUUID string, q ListQuery) (CommentPage, error)
	FetchReplies(ctx context.Context, commentUUID string, q ListQuery) (CommentPage, error)
	Create(ctx context.Context, requester int64, articleUUID string, content string) (Comment, error)
	Edit(ctx context.Context, requester int64, commentUUID string, content string) (Comment, error)
	Reply(ctx context.Context, requester int64, commentUUID string, articleUUID string, content string) (Comment, error)
	Delete(ctx context.Context, requester int64, commentUUID string) (Comment, error)
}

// CommentDBRepository 数据存取接口
type CommentDBRepository interface {
	GetByUUID(ctx context.Context, uuid string) (Comment, error)
	GetByID(ctx context.Context, id int64) (Comment, error)
	// FetchRoots 获取一级评论, hidden comments excluded
	FetchRoots(ctx context.Context, articleID int64, q ListQuery) ([]Comment, error)
	CountRoots(ctx context.Context, articleID int64) (int64, error)
	// FetchReplies 获取直接回复
	FetchReplies(ctx context.Context, parentID int64, q ListQuery) ([]Comment, error)
	CountReplies(ctx context.Context, parentID int64) (int64, error)
	// Store backfills ID, UUID, CreatedAt and UpdatedAt
	Store(ctx context.Context, c *Comment) error
	// UpdateContent only touches the row owned by authorID. Returns ErrNotFound otherwise.
	UpdateContent(ctx context.Context, id int64, authorID int64, content string) error
	// Delete only removes the row owned by authorID and returns its prior state.
	Delete(ctx context.Context, id int64, authorID int64) (Comment, error)
}

// CommentRepository is CommentDBRepository with author and article summaries
// attached to every returned comment.
type CommentRepository interface {
	CommentDBRepository
}
