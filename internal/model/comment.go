package model

import (
	"time"
)

type Comment struct {
	ID        uint64 `gorm:"primaryKey"`
	PostID    uint64 `gorm:"not null;index:idx_comments_post_id"`
	UserID    uint64 `gorm:"not null;index:idx_comments_user_id"`
	Text      string `gorm:"type:varchar(2000);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User *User `gorm:"foreignKey:UserID;references:ID"`
}

func (Comment) TableName() string {
	return "comments"
}
