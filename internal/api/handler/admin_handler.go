package handler

import (
	"Reunite/internal/api/dto"
	"Reunite/internal/api/middleware"
	"Reunite/internal/pkg/response"
	"Reunite/internal/service"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminSvc service.AdminService
}

func NewAdminHandler(adminSvc service.AdminService) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc}
}

// ListPendingUsers 待审核用户，按注册时间升序
func (s *AdminHandler) ListPendingUsers(c *gin.Context) {
	users, err := s.adminSvc.ListPendingUsers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, users)
}

// UpdateUserStatus 审核用户，仅 pending 可以变更
func (s *AdminHandler) UpdateUserStatus(c *gin.Context) {
	targetID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateStatusDTO
	if !bind(c, &req) {
		return
	}
	result, err := s.adminSvc.UpdateUserStatus(c.Request.Context(), middleware.CurrentViewer(c).Role, targetID, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
