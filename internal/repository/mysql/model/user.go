package model

import (
	"time"

	"github.com/Guyuepp/blog-comments/domain"
)

type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UUID      string    `gorm:"column:uuid;type:char(36);uniqueIndex;not null"`
	Name      string    `gorm:"type:varchar(64);not null"`
	Username  string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	Email     string    `gorm:"type:varchar(255)"`
	Avatar    string    `gorm:"type:varchar(255)"`
	Bio       string    `gorm:"type:text"`
	Location  string    `gorm:"type:varchar(128)"`
	UpdatedAt time.Time `gorm:"type:datetime"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (User) TableName() string {
	return "user"
}

func (m *User) ToDomain() domain.User {
	return domain.User{
		ID:       m.ID,
		UUID:     m.UUID,
		Name:     m.Name,
		Username: m.Username,
		Profile: domain.Profile{
			Email:    m.Email,
			Avatar:   m.Avatar,
			Bio:      m.Bio,
			Location: m.Location,
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
