package middleware

import (
	"Reunite/internal/pkg/consts"
	"Reunite/internal/pkg/response"
	"Reunite/internal/service"

	"github.com/gin-gonic/gin"
)

// CheckActiveStatus 账号未激活时拒绝写操作，须挂在 AuthMiddleware 之后
func CheckActiveStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := service.CheckUserStatus(c.GetString(consts.CtxStatus)); err != nil {
			response.Abort(c, err)
			return
		}
		c.Next()
	}
}
