package model

import (
	"time"

	"github.com/Guyuepp/blog-comments/domain"
)

type Comment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UUID      string    `gorm:"column:uuid;type:char(36);uniqueIndex;not null"`
	Content   string    `gorm:"type:text;not null"`
	AuthorID  int64     `gorm:"column:author_id;not null;index"`
	ArticleID int64     `gorm:"column:article_id;not null;index"`
	ReplyID   *int64    `gorm:"column:reply_id;index"`
	Hidden    bool      `gorm:"default:false"`
	VoteCount int64     `gorm:"column:vote;default:0"`
	UpdatedAt time.Time `gorm:"type:datetime"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (Comment) TableName() string {
	return "comment"
}

func NewCommentFromDomain(c *domain.Comment) *Comment {
	return &Comment{
		ID:        c.ID,
		UUID:      c.UUID,
		Content:   c.Content,
		AuthorID:  c.AuthorID,
		ArticleID: c.ArticleID,
		ReplyID:   c.ReplyID,
		Hidden:    c.Hidden,
		VoteCount: c.VoteCount,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (m *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		ID:        m.ID,
		UUID:      m.UUID,
		Content:   m.Content,
		AuthorID:  m.AuthorID,
		ArticleID: m.ArticleID,
		ReplyID:   m.ReplyID,
		Hidden:    m.Hidden,
		VoteCount: m.VoteCount,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// CommentVote is one member of a comment's voter set.
type CommentVote struct {
	CommentID int64     `gorm:"column:comment_id;primaryKey"`
	UserID    int64     `gorm:"column:user_id;primaryKey"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (CommentVote) TableName() string {
	return "comment_votes"
}
