package model

import (
	"time"
)

type College struct {
	ID        uint64 `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(255);not null;uniqueIndex:idx_college_name"`
	Location  string `gorm:"type:varchar(255)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (College) TableName() string {
	return "colleges"
}
