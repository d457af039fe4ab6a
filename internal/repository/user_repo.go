package repository

import (
	"Reunite/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type UserRepo interface {
	GetUserById(ctx context.Context, id uint64) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)
	CreateUser(ctx context.Context, user *model.User) error
	UpdateUser(ctx context.Context, id uint64, fields map[string]interface{}) error
	UpdateStatusIfPending(ctx context.Context, id uint64, status string) (int64, error)
	ListPendingUsers(ctx context.Context) ([]*model.User, error)
	CountPendingOlderThan(ctx context.Context, before time.Time) (int64, error)
	DeleteUserCascade(ctx context.Context, id uint64) error
}

type UserRepoImpl struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepo {
	return &UserRepoImpl{db: db}
}

func (s *UserRepoImpl) GetUserById(ctx context.Context, id uint64) (*model.User, error) {
	return s.first(ctx, "id = ?", id)
}

func (s *UserRepoImpl) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.first(ctx, "email = ?", email)
}

func (s *UserRepoImpl) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return s.first(ctx, "username = ?", username)
}

func (s *UserRepoImpl) first(ctx context.Context, query string, args ...interface{}) (*model.User, error) {
	user := &model.User{}
	result := s.db.WithContext(ctx).
		Where(query, args...).
		First(user)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return user, nil
}

func (s *UserRepoImpl) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.User{}).
		Where("email = ? OR username = ?", email, username).
		Count(&count).Error
	return count > 0, err
}

func (s *UserRepoImpl) CreateUser(ctx context.Context, user *model.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

// UpdateUser 按字段名更新，零值也会写入
func (s *UserRepoImpl) UpdateUser(ctx context.Context, id uint64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// UpdateStatusIfPending 条件更新，仅当前状态为 pending 时生效，返回受影响行数
func (s *UserRepoImpl) UpdateStatusIfPending(ctx context.Context, id uint64, status string) (int64, error) {
	result := s.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ? AND status = ?", id, model.StatusPending).
		Update("status", status)
	return result.RowsAffected, result.Error
}

func (s *UserRepoImpl) ListPendingUsers(ctx context.Context) ([]*model.User, error) {
	users := make([]*model.User, 0)
	err := s.db.WithContext(ctx).
		Preload("College").
		Where("status = ?", model.StatusPending).
		Order("created_at ASC").
		Find(&users).Error
	return users, err
}

func (s *UserRepoImpl) CountPendingOlderThan(ctx context.Context, before time.Time) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.User{}).
		Where("status = ? AND created_at < ?", model.StatusPending, before).
		Count(&count).Error
	return count, err
}

// DeleteUserCascade 删除用户及其帖子、评论、点赞，以及他人在其帖子下的评论与点赞
func (s *UserRepoImpl) DeleteUserCascade(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var postIDs []uint64
		if err := tx.Model(&model.Post{}).Where("user_id = ?", id).Pluck("id", &postIDs).Error; err != nil {
			return err
		}

		likes := tx.Where("user_id = ?", id)
		comments := tx.Where("user_id = ?", id)
		if len(postIDs) > 0 {
			likes = tx.Where("user_id = ? OR post_id IN ?", id, postIDs)
			comments = tx.Where("user_id = ? OR post_id IN ?", id, postIDs)
		}
		if err := likes.Delete(&model.Like{}).Error; err != nil {
			return err
		}
		if err := comments.Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.Post{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.User{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
