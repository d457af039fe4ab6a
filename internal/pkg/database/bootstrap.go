package database

import (
	"Reunite/internal/model"
	"Reunite/internal/pkg/security"
	"context"
	"errors"
	"fmt"
	log "log/slog"

	"gorm.io/gorm"
)

// DefaultColleges 首次启动写入的学院
var DefaultColleges = []model.College{
	{Name: "MIT", Location: "Cambridge, MA"},
	{Name: "Harvard", Location: "Cambridge, MA"},
	{Name: "Stanford", Location: "Stanford, CA"},
	{Name: "IIT Delhi", Location: "New Delhi, India"},
	{Name: "IIT Bombay", Location: "Mumbai, India"},
	{Name: "IIT Madras", Location: "Chennai, India"},
	{Name: "BITS Pilani", Location: "Pilani, India"},
	{Name: "NIT Trichy", Location: "Tiruchirappalli, India"},
}

// AdminSeed 默认管理员
type AdminSeed struct {
	Username string
	Email    string
	Password string
}

// Bootstrap 幂等地写入默认学院与管理员，已存在的记录不做修改
func Bootstrap(ctx context.Context, db *gorm.DB, admin AdminSeed) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, c := range DefaultColleges {
			college := c
			if err := tx.Where("name = ?", college.Name).FirstOrCreate(&college).Error; err != nil {
				return fmt.Errorf("seed college %s: %w", college.Name, err)
			}
		}

		if admin.Email == "" || admin.Password == "" {
			return nil
		}

		var existing model.User
		err := tx.Where("email = ? OR username = ?", admin.Email, admin.Username).First(&existing).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var first model.College
		if err = tx.Order("id ASC").First(&first).Error; err != nil {
			return err
		}

		hashed, err := security.HashPassword(admin.Password)
		if err != nil {
			return err
		}
		user := &model.User{
			Username:    admin.Username,
			Email:       admin.Email,
			Password:    hashed,
			FirstName:   "Admin",
			LastName:    "User",
			CollegeID:   first.ID,
			CollegeName: first.Name,
			Status:      model.StatusActive,
			Role:        model.RoleAdmin,
		}
		if err = tx.Create(user).Error; err != nil {
			return err
		}
		log.InfoContext(ctx, "default admin created", "email", admin.Email)
		return nil
	})
}
