package handler

import (
	"Reunite/internal/api/dto"
	"Reunite/internal/pkg/consts"
	"Reunite/internal/pkg/response"
	"Reunite/internal/pkg/util"
	"Reunite/internal/service"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// bind 绑定请求体并执行 validate 标签校验，失败时已写回响应
func bind(c *gin.Context, obj any) bool {
	if err := c.ShouldBind(obj); err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return false
	}
	if err := util.ValidateDTO(obj); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return false
	}
	return true
}

// pathID 解析路径中的数字 ID
func pathID(c *gin.Context, name string) (uint64, bool) {
	id, ok := util.ParseID(c.Param(name))
	if !ok {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return 0, false
	}
	return id, true
}

// readUpload 读取 multipart 中的单个文件，字段缺省时返回 nil
func readUpload(c *gin.Context, field string, limit int64) (*dto.Upload, error) {
	file, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, service.ErrParamInvalid
	}
	if limit > 0 && file.Size > limit {
		return nil, service.ErrFileTooLarge
	}

	reader, err := file.Open()
	if err != nil {
		return nil, service.ErrParamInvalid
	}
	defer func() { _ = reader.Close() }()

	contentType, err := util.GetSafeContentType(reader)
	if err != nil {
		return nil, service.ErrParamInvalid
	}
	if !strings.HasPrefix(contentType, consts.MimePrefixImage) {
		return nil, service.ErrFileNotSupported
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, service.ErrParamInvalid
	}
	return &dto.Upload{Filename: file.Filename, Size: file.Size, Data: data}, nil
}
