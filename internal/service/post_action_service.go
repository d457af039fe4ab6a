package service

import (
	"Reunite/internal/api/dto"
	"Reunite/internal/model"
	"Reunite/internal/repository"
	"context"
	"strings"
)

type PostActionService interface {
	ToggleLike(ctx context.Context, viewer Viewer, postID uint64) (*dto.LikeResultDTO, error)
	AddComment(ctx context.Context, viewer Viewer, postID uint64, text string) (*dto.PostDTO, error)
}

type PostActionServiceImpl struct {
	postRepo       repository.PostRepo
	postActionRepo repository.PostActionRepo
}

func NewPostActionService(postRepo repository.PostRepo, postActionRepo repository.PostActionRepo) PostActionService {
	return &PostActionServiceImpl{
		postRepo:       postRepo,
		postActionRepo: postActionRepo,
	}
}

func (s *PostActionServiceImpl) ToggleLike(ctx context.Context, viewer Viewer, postID uint64) (*dto.LikeResultDTO, error) {
	if err := CheckUserStatus(viewer.Status); err != nil {
		return nil, err
	}
	if _, err := s.visiblePost(ctx, viewer, postID); err != nil {
		return nil, err
	}

	liked, err := s.postActionRepo.ToggleLike(ctx, viewer.UserID, postID)
	if err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return &dto.LikeResultDTO{Liked: liked, Post: toPostDTO(post)}, nil
}

func (s *PostActionServiceImpl) AddComment(ctx context.Context, viewer Viewer, postID uint64, text string) (*dto.PostDTO, error) {
	if err := CheckUserStatus(viewer.Status); err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrCommentEmpty
	}
	if _, err := s.visiblePost(ctx, viewer, postID); err != nil {
		return nil, err
	}

	comment := &model.Comment{PostID: postID, UserID: viewer.UserID, Text: text}
	if err := s.postActionRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return toPostDTO(post), nil
}

// visiblePost 其他学院的学院内帖子对调用者不可见，按不存在处理
func (s *PostActionServiceImpl) visiblePost(ctx context.Context, viewer Viewer, postID uint64) (*model.Post, error) {
	post, err := s.postRepo.GetPostById(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if post.IsCollegeSpecific && post.CollegeID != viewer.CollegeID {
		return nil, ErrPostNotFound
	}
	return post, nil
}
