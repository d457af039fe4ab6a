package repository

import (
	"Reunite/internal/model"
	"context"

	"gorm.io/gorm"
)

type PostActionRepo interface {
	ToggleLike(ctx context.Context, userID, postID uint64) (bool, error)
	GetLikeCountByPostID(ctx context.Context, postID uint64) (int64, error)
	CreateComment(ctx context.Context, comment *model.Comment) error
	GetCommentCountByPostID(ctx context.Context, postID uint64) (int64, error)
}

type PostActionRepoImpl struct {
	db *gorm.DB
}

func NewPostActionRepo(db *gorm.DB) PostActionRepo {
	return &PostActionRepoImpl{db}
}

// ToggleLike 先删后插，插入撞上唯一键说明并发请求已点赞，返回切换后的状态
func (s *PostActionRepoImpl) ToggleLike(ctx context.Context, userID, postID uint64) (bool, error) {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&model.Like{})
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected > 0 {
		return false, nil
	}

	err := s.db.WithContext(ctx).Create(&model.Like{UserID: userID, PostID: postID}).Error
	if err != nil {
		if IsDuplicateKey(err) {
			return true, nil
		}
		return false, err
	}
	return true, nil
}

func (s *PostActionRepoImpl) GetLikeCountByPostID(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Like{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

func (s *PostActionRepoImpl) CreateComment(ctx context.Context, comment *model.Comment) error {
	return s.db.WithContext(ctx).Create(comment).Error
}

func (s *PostActionRepoImpl) GetCommentCountByPostID(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Comment{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}
