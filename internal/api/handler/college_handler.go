package handler

import (
	"Reunite/internal/api/dto"
	"Reunite/internal/pkg/response"
	"Reunite/internal/service"

	"github.com/gin-gonic/gin"
)

type CollegeHandler struct {
	collegeSvc service.CollegeService
}

func NewCollegeHandler(collegeSvc service.CollegeService) *CollegeHandler {
	return &CollegeHandler{collegeSvc: collegeSvc}
}

func (s *CollegeHandler) List(c *gin.Context) {
	colleges, err := s.collegeSvc.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, colleges)
}

func (s *CollegeHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	college, err := s.collegeSvc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, college)
}

func (s *CollegeHandler) Create(c *gin.Context) {
	var req dto.UpsertCollegeDTO
	if !bind(c, &req) {
		return
	}
	college, err := s.collegeSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.CreatedWith(c, college)
}

func (s *CollegeHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpsertCollegeDTO
	if !bind(c, &req) {
		return
	}
	college, err := s.collegeSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, college)
}

func (s *CollegeHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := s.collegeSvc.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.MessageDTO{Message: "College deleted"})
}
