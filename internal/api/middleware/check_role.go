package middleware

import (
	"Reunite/internal/pkg/consts"
	"Reunite/internal/pkg/response"
	"Reunite/internal/service"
	"slices"

	"github.com/gin-gonic/gin"
)

// CheckRoles 检查当前用户的角色是否在允许列表中
func CheckRoles(requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(consts.CtxRole)
		if !slices.Contains(requiredRoles, role) {
			response.Abort(c, service.ErrAdminRequired)
			return
		}
		c.Next()
	}
}
