package api

import (
	"Reunite/internal/api/handler"
	"Reunite/internal/api/middleware"
)

// HandlersGroup 封装了主站所有已初始化的 Handler 实例
type HandlersGroup struct {
	Auth              middleware.Authenticator
	UserHandler       *handler.UserHandler
	PostHandler       *handler.PostHandler
	PostActionHandler *handler.PostActionHandler
	CollegeHandler    *handler.CollegeHandler
	AdminHandler      *handler.AdminHandler
}

// DirectoryHandlers 校友名录服务的 Handler
type DirectoryHandlers struct {
	AlumniHandler *handler.AlumniHandler
}
