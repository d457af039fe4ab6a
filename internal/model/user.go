package model

import (
	"time"
)

type User struct {
	ID                  uint64  `gorm:"primaryKey"`
	Username            string  `gorm:"type:varchar(50);not null;uniqueIndex:idx_users_username"`
	Email               string  `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_email"`
	Password            string  `gorm:"type:varchar(255);not null"`
	FirstName           string  `gorm:"type:varchar(100)"`
	LastName            string  `gorm:"type:varchar(100)"`
	PhoneNumber         string  `gorm:"type:varchar(30)"`
	CollegeName         string  `gorm:"type:varchar(255)"`
	YearOfGraduation    int     `gorm:"not null;default:0"`
	CurrentCareerStatus string  `gorm:"type:varchar(255)"`
	LinkedinProfileURL  string  `gorm:"type:varchar(512);column:linkedin_profile_url"`
	StudentMailID       string  `gorm:"type:varchar(255);column:student_mail_id"`
	Bio                 *string `gorm:"type:text"`
	ProfilePicture      string  `gorm:"type:varchar(512);default:'uploads/default.jpg'"`
	CollegeID           uint64  `gorm:"not null;index:idx_users_college_id"`
	Status              string  `gorm:"type:varchar(16);not null;default:'pending';index:idx_users_status"`
	Role                string  `gorm:"type:varchar(16);not null;default:'user'"`
	CreatedAt           time.Time
	UpdatedAt           time.Time

	College *College `gorm:"foreignKey:CollegeID;references:ID"`
}

func (User) TableName() string {
	return "users"
}
