package middleware

import (
	"Reunite/internal/pkg/consts"
	"Reunite/internal/pkg/response"
	"Reunite/internal/service"
	"context"
	"strings"

	"github.com/gin-gonic/gin"
)

// Authenticator 由 UserService 实现
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*service.Viewer, error)
}

// AuthMiddleware 负责验证 JWT，并将数据库中的用户身份与状态注入 Context
func AuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c.GetHeader("Authorization"))
		if tokenString == "" {
			response.Abort(c, service.ErrNoToken)
			return
		}

		viewer, err := auth.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			response.Abort(c, err)
			return
		}

		c.Set(consts.CtxUserID, viewer.UserID)
		c.Set(consts.CtxRole, viewer.Role)
		c.Set(consts.CtxStatus, viewer.Status)
		c.Set(consts.CtxCollegeID, viewer.CollegeID)
		c.Set(consts.CtxToken, tokenString)

		c.Next()
	}
}

func bearerToken(header string) string {
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// CurrentViewer 从 Context 取出 AuthMiddleware 注入的调用者
func CurrentViewer(c *gin.Context) service.Viewer {
	return service.Viewer{
		UserID:    c.GetUint64(consts.CtxUserID),
		CollegeID: c.GetUint64(consts.CtxCollegeID),
		Status:    c.GetString(consts.CtxStatus),
		Role:      c.GetString(consts.CtxRole),
	}
}
