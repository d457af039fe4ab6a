package model

import (
	"time"
)

type Post struct {
	ID                uint64    `gorm:"primaryKey"`
	UserID            uint64    `gorm:"not null;index:idx_posts_user_id"`
	CollegeID         uint64    `gorm:"not null;index:idx_posts_college_scope,priority:1"`
	Content           string    `gorm:"type:text;not null"`
	Image             *string   `gorm:"type:varchar(512)"`
	IsCollegeSpecific bool      `gorm:"not null;default:false;index:idx_posts_college_scope,priority:2"`
	TelegramLink      *string   `gorm:"type:varchar(512)"`
	CreatedAt         time.Time `gorm:"index:idx_posts_created_at"`
	UpdatedAt         time.Time

	// 关联关系
	User     *User     `gorm:"foreignKey:UserID;references:ID"`
	College  *College  `gorm:"foreignKey:CollegeID;references:ID"`
	Likes    []Like    `gorm:"foreignKey:PostID;references:ID"`
	Comments []Comment `gorm:"foreignKey:PostID;references:ID"`
}

func (Post) TableName() string {
	return "posts"
}
