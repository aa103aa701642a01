package model

import (
	"strings"
	"time"

	"github.com/Guyuepp/blog-comments/domain"
)

// Article is read-only here; the table is owned by the article service.
type Article struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UUID      string    `gorm:"column:uuid;type:char(36);uniqueIndex;not null"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Content   string    `gorm:"type:longtext;not null"`
	Tags      string    `gorm:"type:varchar(1024);default:''"` // comma separated
	UserID    int64     `gorm:"column:user_id;not null"`
	Hidden    bool      `gorm:"default:false"`
	Vote      int64     `gorm:"default:0"`
	UpdatedAt time.Time `gorm:"type:datetime"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (Article) TableName() string {
	return "article"
}

func (m *Article) ToDomain() domain.Article {
	tags := []string{}
	for _, t := range strings.Split(m.Tags, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return domain.Article{
		ID:        m.ID,
		UUID:      m.UUID,
		Title:     m.Title,
		Content:   m.Content,
		Tags:      tags,
		AuthorID:  m.UserID,
		Hidden:    m.Hidden,
		Vote:      m.Vote,
		UpdatedAt: m.UpdatedAt,
		CreatedAt: m.CreatedAt,
	}
}
