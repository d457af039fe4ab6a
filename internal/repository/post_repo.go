package repository

import (
	"Reunite/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post) error
	GetPost(ctx context.Context, id uint64) (*model.Post, error)
	GetPostById(ctx context.Context, id uint64) (*model.Post, error)
	UpdatePost(ctx context.Context, id uint64, fields map[string]interface{}) error
	DeletePost(ctx context.Context, id uint64) error
	ListGeneral(ctx context.Context) ([]*model.Post, error)
	ListCollegeSpecific(ctx context.Context, collegeID uint64) ([]*model.Post, error)
	ListByUser(ctx context.Context, userID uint64, collegeSpecific bool, limit, offset int) ([]*model.Post, int64, error)
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &PostRepoImpl{
		db: db,
	}
}

// withAggregate 预加载作者、学院、点赞人与评论人
func withAggregate(db *gorm.DB) *gorm.DB {
	return db.
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "username", "profile_picture", "college_name", "current_career_status", "year_of_graduation", "bio")
		}).
		Preload("College", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name")
		}).
		Preload("Likes").
		Preload("Likes.User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "username")
		}).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		Preload("Comments.User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "username", "profile_picture")
		})
}

func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Create(post).Error
}

// GetPost 返回完整聚合，不存在时返回 nil
func (s *PostRepoImpl) GetPost(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := withAggregate(s.db.WithContext(ctx)).First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (s *PostRepoImpl) GetPostById(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (s *PostRepoImpl) UpdatePost(ctx context.Context, id uint64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", id).Updates(fields).Error
}

// DeletePost 连同点赞与评论一并删除
func (s *PostRepoImpl) DeletePost(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Post{}, id).Error
	})
}

func (s *PostRepoImpl) ListGeneral(ctx context.Context) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	err := withAggregate(s.db.WithContext(ctx)).
		Where("is_college_specific = ?", false).
		Order("created_at DESC, id DESC").
		Find(&posts).Error
	return posts, err
}

func (s *PostRepoImpl) ListCollegeSpecific(ctx context.Context, collegeID uint64) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	err := withAggregate(s.db.WithContext(ctx)).
		Where("is_college_specific = ? AND college_id = ?", true, collegeID).
		Order("created_at DESC, id DESC").
		Find(&posts).Error
	return posts, err
}

// ListByUser 作者本人的帖子，分页并返回总数
func (s *PostRepoImpl) ListByUser(ctx context.Context, userID uint64, collegeSpecific bool, limit, offset int) ([]*model.Post, int64, error) {
	var total int64
	base := s.db.WithContext(ctx).Model(&model.Post{}).
		Where("user_id = ? AND is_college_specific = ?", userID, collegeSpecific)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	posts := make([]*model.Post, 0)
	err := withAggregate(s.db.WithContext(ctx)).
		Where("user_id = ? AND is_college_specific = ?", userID, collegeSpecific).
		Order("created_at DESC, id DESC").
		Limit(limit).Offset(offset).
		Find(&posts).Error
	return posts, total, err
}
