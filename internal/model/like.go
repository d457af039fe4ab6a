package model

import (
	"time"
)

// Like (user_id, post_id) 复合主键保证同一用户对同一帖子至多一条
type Like struct {
	UserID    uint64 `gorm:"primaryKey"`
	PostID    uint64 `gorm:"primaryKey;index:idx_likes_post_id"`
	CreatedAt time.Time

	User *User `gorm:"foreignKey:UserID;references:ID"`
}

func (Like) TableName() string {
	return "likes"
}
