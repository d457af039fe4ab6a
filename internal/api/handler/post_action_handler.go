package handler

import (
	"Reunite/internal/api/dto"
	"Reunite/internal/api/middleware"
	"Reunite/internal/pkg/response"
	"Reunite/internal/service"

	"github.com/gin-gonic/gin"
)

type PostActionHandler struct {
	actionSvc service.PostActionService
}

func NewPostActionHandler(actionSvc service.PostActionService) *PostActionHandler {
	return &PostActionHandler{
		actionSvc: actionSvc,
	}
}

// LikePost 点赞/取消点赞，返回最新的帖子聚合
func (s *PostActionHandler) LikePost(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	result, err := s.actionSvc.ToggleLike(c.Request.Context(), middleware.CurrentViewer(c), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *PostActionHandler) AddComment(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.CreateCommentDTO
	if !bind(c, &req) {
		return
	}
	post, err := s.actionSvc.AddComment(c.Request.Context(), middleware.CurrentViewer(c), postID, req.Text)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.CreatedWith(c, post)
}
