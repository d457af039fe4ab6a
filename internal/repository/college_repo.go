package repository

import (
	"Reunite/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type CollegeRepo interface {
	List(ctx context.Context) ([]*model.College, error)
	GetById(ctx context.Context, id uint64) (*model.College, error)
	Create(ctx context.Context, college *model.College) error
	Update(ctx context.Context, id uint64, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint64) (int64, error)
	CountReferences(ctx context.Context, id uint64) (int64, error)
}

type CollegeRepoImpl struct {
	db *gorm.DB
}

func NewCollegeRepo(db *gorm.DB) CollegeRepo {
	return &CollegeRepoImpl{db: db}
}

func (s *CollegeRepoImpl) List(ctx context.Context) ([]*model.College, error) {
	colleges := make([]*model.College, 0)
	err := s.db.WithContext(ctx).Order("name ASC").Find(&colleges).Error
	return colleges, err
}

func (s *CollegeRepoImpl) GetById(ctx context.Context, id uint64) (*model.College, error) {
	college := &model.College{}
	if err := s.db.WithContext(ctx).First(college, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return college, nil
}

func (s *CollegeRepoImpl) Create(ctx context.Context, college *model.College) error {
	return s.db.WithContext(ctx).Create(college).Error
}

func (s *CollegeRepoImpl) Update(ctx context.Context, id uint64, fields map[string]interface{}) error {
	return s.db.WithContext(ctx).Model(&model.College{}).Where("id = ?", id).Updates(fields).Error
}

func (s *CollegeRepoImpl) Delete(ctx context.Context, id uint64) (int64, error) {
	result := s.db.WithContext(ctx).Delete(&model.College{}, id)
	return result.RowsAffected, result.Error
}

// CountReferences 引用该学院的用户与帖子数
func (s *CollegeRepoImpl) CountReferences(ctx context.Context, id uint64) (int64, error) {
	var users, posts int64
	if err := s.db.WithContext(ctx).Model(&model.User{}).Where("college_id = ?", id).Count(&users).Error; err != nil {
		return 0, err
	}
	if err := s.db.WithContext(ctx).Model(&model.Post{}).Where("college_id = ?", id).Count(&posts).Error; err != nil {
		return 0, err
	}
	return users + posts, nil
}
