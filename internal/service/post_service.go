package service

import (
	"Reunite/internal/api/dto"
	"Reunite/internal/model"
	"Reunite/internal/repository"
	"context"
	log "log/slog"
	"strings"
)

// FeedPolicy 信息流的状态门禁开关
type FeedPolicy struct {
	GateGeneralFeed bool
	GateCollegeFeed bool
}

type PostService interface {
	GeneralFeed(ctx context.Context, viewer Viewer) ([]*dto.PostDTO, error)
	CollegeFeed(ctx context.Context, viewer Viewer) ([]*dto.PostDTO, error)
	CreatePost(ctx context.Context, viewer Viewer, dto *dto.CreatePostDTO, image *dto.Upload) (*dto.PostDTO, error)
	UpdatePost(ctx context.Context, viewer Viewer, id uint64, dto *dto.UpdatePostDTO) (*dto.PostDTO, error)
	DeletePost(ctx context.Context, viewer Viewer, id uint64) error
}

type PostServiceImpl struct {
	postRepo repository.PostRepo
	media    MediaStorage
	feed     FeedPolicy
	policy   MediaPolicy
}

func NewPostService(postRepo repository.PostRepo, media MediaStorage, feed FeedPolicy, policy MediaPolicy) PostService {
	return &PostServiceImpl{
		postRepo: postRepo,
		media:    media,
		feed:     feed,
		policy:   policy,
	}
}

func (s *PostServiceImpl) GeneralFeed(ctx context.Context, viewer Viewer) ([]*dto.PostDTO, error) {
	if s.feed.GateGeneralFeed {
		if err := CheckUserStatus(viewer.Status); err != nil {
			return nil, err
		}
	}
	posts, err := s.postRepo.ListGeneral(ctx)
	if err != nil {
		return nil, err
	}
	return toPostDTOList(posts), nil
}

// CollegeFeed 仅返回调用者所属学院的学院内帖子
func (s *PostServiceImpl) CollegeFeed(ctx context.Context, viewer Viewer) ([]*dto.PostDTO, error) {
	if s.feed.GateCollegeFeed {
		if err := CheckUserStatus(viewer.Status); err != nil {
			return nil, err
		}
	}
	posts, err := s.postRepo.ListCollegeSpecific(ctx, viewer.CollegeID)
	if err != nil {
		return nil, err
	}
	return toPostDTOList(posts), nil
}

func (s *PostServiceImpl) CreatePost(ctx context.Context, viewer Viewer, postDTO *dto.CreatePostDTO, image *dto.Upload) (*dto.PostDTO, error) {
	if err := CheckUserStatus(viewer.Status); err != nil {
		return nil, err
	}
	content := strings.TrimSpace(postDTO.Content)
	if content == "" {
		return nil, ErrPostContentEmpty
	}

	post := &model.Post{
		UserID:            viewer.UserID,
		CollegeID:         viewer.CollegeID,
		Content:           content,
		IsCollegeSpecific: postDTO.IsCollegeSpecific,
		TelegramLink:      nonEmpty(postDTO.TelegramLink),
	}

	if image != nil && len(image.Data) > 0 {
		url, err := storePostImage(ctx, s.media, image, s.policy)
		if err != nil {
			return nil, err
		}
		post.Image = &url
	}

	if err := s.postRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}
	log.InfoContext(ctx, "post created", "post_id", post.ID, "college_specific", post.IsCollegeSpecific)

	return s.aggregate(ctx, post.ID)
}

func (s *PostServiceImpl) UpdatePost(ctx context.Context, viewer Viewer, id uint64, postDTO *dto.UpdatePostDTO) (*dto.PostDTO, error) {
	if _, err := s.ownedPost(ctx, viewer, id); err != nil {
		return nil, err
	}

	fields := make(map[string]interface{})
	if postDTO.Content != nil {
		content := strings.TrimSpace(*postDTO.Content)
		if content == "" {
			return nil, ErrPostContentEmpty
		}
		fields["content"] = content
	}
	if postDTO.IsCollegeSpecific != nil {
		fields["is_college_specific"] = *postDTO.IsCollegeSpecific
	}
	if postDTO.TelegramLink != nil {
		fields["telegram_link"] = nonEmpty(postDTO.TelegramLink)
	}

	if err := s.postRepo.UpdatePost(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.aggregate(ctx, id)
}

func (s *PostServiceImpl) DeletePost(ctx context.Context, viewer Viewer, id uint64) error {
	post, err := s.ownedPost(ctx, viewer, id)
	if err != nil {
		return err
	}
	if err = s.postRepo.DeletePost(ctx, id); err != nil {
		return err
	}
	if post.Image != nil && *post.Image != "" {
		if err = s.media.Delete(ctx, *post.Image); err != nil {
			log.WarnContext(ctx, "failed to delete post image", "post_id", id, "err", err)
		}
	}
	return nil
}

// ownedPost 帖子不存在返回 404，非作者返回 403
func (s *PostServiceImpl) ownedPost(ctx context.Context, viewer Viewer, id uint64) (*model.Post, error) {
	post, err := s.postRepo.GetPostById(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if post.UserID != viewer.UserID {
		return nil, ErrPostForbidden
	}
	return post, nil
}

func (s *PostServiceImpl) aggregate(ctx context.Context, id uint64) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return toPostDTO(post), nil
}

func nonEmpty(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
