package handler

import (
	"Reunite/internal/api/dto"
	"Reunite/internal/api/middleware"
	"Reunite/internal/pkg/response"
	"Reunite/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc     service.PostService
	uploadLimit int64
}

func NewPostHandler(postSvc service.PostService, uploadLimit int64) *PostHandler {
	return &PostHandler{
		postSvc:     postSvc,
		uploadLimit: uploadLimit,
	}
}

// GeneralFeed 公共帖子流
func (s *PostHandler) GeneralFeed(c *gin.Context) {
	posts, err := s.postSvc.GeneralFeed(c.Request.Context(), middleware.CurrentViewer(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

// CollegeFeed 本校帖子流，需账号已激活
func (s *PostHandler) CollegeFeed(c *gin.Context) {
	posts, err := s.postSvc.CollegeFeed(c.Request.Context(), middleware.CurrentViewer(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

// CreatePost 支持 multipart，图片字段名 image
func (s *PostHandler) CreatePost(c *gin.Context) {
	var req dto.CreatePostDTO
	if !bind(c, &req) {
		return
	}
	image, err := readUpload(c, "image", s.uploadLimit)
	if err != nil {
		response.Error(c, err)
		return
	}

	post, err := s.postSvc.CreatePost(c.Request.Context(), middleware.CurrentViewer(c), &req, image)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.CreatedWith(c, post)
}

func (s *PostHandler) UpdatePost(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdatePostDTO
	if !bind(c, &req) {
		return
	}

	post, err := s.postSvc.UpdatePost(c.Request.Context(), middleware.CurrentViewer(c), postID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) DeletePost(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := s.postSvc.DeletePost(c.Request.Context(), middleware.CurrentViewer(c), postID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.MessageDTO{Message: "Post deleted"})
}
