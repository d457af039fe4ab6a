package handler

import (
	"Reunite/internal/pkg/response"
	"Reunite/internal/service"

	"github.com/gin-gonic/gin"
)

type AlumniHandler struct {
	alumniSvc service.AlumniService
}

func NewAlumniHandler(alumniSvc service.AlumniService) *AlumniHandler {
	return &AlumniHandler{alumniSvc: alumniSvc}
}

func (s *AlumniHandler) Colleges(c *gin.Context) {
	colleges, err := s.alumniSvc.Colleges(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, colleges)
}

func (s *AlumniHandler) Branches(c *gin.Context) {
	branches, err := s.alumniSvc.Branches(c.Request.Context(), c.Param("college"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, branches)
}

func (s *AlumniHandler) Alumni(c *gin.Context) {
	alumni, err := s.alumniSvc.Alumni(c.Request.Context(), c.Param("college"), c.Param("branch"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, alumni)
}
