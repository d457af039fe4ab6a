package handler

import (
	"Reunite/internal/api/dto"
	"Reunite/internal/api/middleware"
	"Reunite/internal/pkg/consts"
	"Reunite/internal/pkg/response"
	"Reunite/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc     service.UserService
	uploadLimit int64
}

func NewUserHandler(userSvc service.UserService, uploadLimit int64) *UserHandler {
	return &UserHandler{
		userSvc:     userSvc,
		uploadLimit: uploadLimit,
	}
}

func (s *UserHandler) Register(c *gin.Context) {
	var registerDTO dto.RegisterDTO
	if !bind(c, &registerDTO) {
		return
	}
	auth, err := s.userSvc.Register(c.Request.Context(), &registerDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.CreatedWith(c, auth)
}

func (s *UserHandler) Login(c *gin.Context) {
	var loginDTO dto.CredentialDTO
	if !bind(c, &loginDTO) {
		return
	}
	auth, err := s.userSvc.Login(c.Request.Context(), &loginDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, auth)
}

func (s *UserHandler) Logout(c *gin.Context) {
	if err := s.userSvc.Logout(c.Request.Context(), c.GetString(consts.CtxToken)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.MessageDTO{Message: "Logged out"})
}

func (s *UserHandler) GetMe(c *gin.Context) {
	user, err := s.userSvc.GetMe(c.Request.Context(), c.GetUint64(consts.CtxUserID))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

func (s *UserHandler) GetProfile(c *gin.Context) {
	profile, err := s.userSvc.GetProfile(c.Request.Context(), c.GetUint64(consts.CtxUserID))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, profile)
}

// UpdateProfile 支持 multipart，头像字段名 profile_picture
func (s *UserHandler) UpdateProfile(c *gin.Context) {
	var profileDTO dto.UpdateProfileDTO
	if !bind(c, &profileDTO) {
		return
	}
	avatar, err := readUpload(c, "profile_picture", s.uploadLimit)
	if err != nil {
		response.Error(c, err)
		return
	}
	profile, err := s.userSvc.UpdateProfile(c.Request.Context(), c.GetUint64(consts.CtxUserID), &profileDTO, avatar)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, profile)
}

func (s *UserHandler) ChangePassword(c *gin.Context) {
	var pwdDTO dto.ChangePasswordDTO
	if !bind(c, &pwdDTO) {
		return
	}
	if err := s.userSvc.ChangePassword(c.Request.Context(), c.GetUint64(consts.CtxUserID), &pwdDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.MessageDTO{Message: "Password updated successfully"})
}

func (s *UserHandler) DeleteAccount(c *gin.Context) {
	var delDTO dto.DeleteAccountDTO
	if !bind(c, &delDTO) {
		return
	}
	if err := s.userSvc.DeleteAccount(c.Request.Context(), c.GetUint64(consts.CtxUserID), &delDTO); err != nil {
		response.Error(c, err)
		return
	}
	_ = s.userSvc.Logout(c.Request.Context(), c.GetString(consts.CtxToken))
	response.Success(c, dto.MessageDTO{Message: "Account deleted successfully"})
}

func (s *UserHandler) ListOwnGeneralPosts(c *gin.Context) {
	s.listOwnPosts(c, false)
}

func (s *UserHandler) ListOwnCollegePosts(c *gin.Context) {
	s.listOwnPosts(c, true)
}

func (s *UserHandler) listOwnPosts(c *gin.Context, collegeSpecific bool) {
	var query dto.PageQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	viewer := middleware.CurrentViewer(c)
	page, err := s.userSvc.ListOwnPosts(c.Request.Context(), viewer.UserID, collegeSpecific, query.Page, query.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}
