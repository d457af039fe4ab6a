package api

import (
	"Reunite/internal/api/middleware"
	"Reunite/internal/model"
	"Reunite/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func newEngine(service string, maxMultipartMemory int64) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})
	if maxMultipartMemory > 0 {
		r.MaxMultipartMemory = maxMultipartMemory
	}

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r, service)
	return r
}

func ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": "pong",
		"data":    nil,
	})
}

func SetupRouter(group *HandlersGroup, maxMultipartMemory int64) *gin.Engine {
	r := newEngine("reunite-api", maxMultipartMemory)
	auth := middleware.AuthMiddleware(group.Auth)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", ping)

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/register", group.UserHandler.Register)
			authGroup.POST("/login", group.UserHandler.Login)

			authedGroup := authGroup.Group("")
			authedGroup.Use(auth)
			{
				authedGroup.GET("/me", group.UserHandler.GetMe)
				authedGroup.POST("/logout", group.UserHandler.Logout)
			}
		}

		userGroup := apiGroup.Group("/users")
		userGroup.Use(auth)
		{
			userGroup.GET("/profile", group.UserHandler.GetProfile)
			userGroup.PUT("/profile", group.UserHandler.UpdateProfile)
			userGroup.PUT("/password", group.UserHandler.ChangePassword)
			userGroup.DELETE("/account", group.UserHandler.DeleteAccount)
			userGroup.GET("/posts/general", group.UserHandler.ListOwnGeneralPosts)
			userGroup.GET("/posts/college-specific", group.UserHandler.ListOwnCollegePosts)
		}

		postGroup := apiGroup.Group("/posts")
		postGroup.Use(auth)
		{
			postGroup.GET("/general", group.PostHandler.GeneralFeed)
			postGroup.GET("/college-specific", group.PostHandler.CollegeFeed)
			postGroup.PUT("/:id", group.PostHandler.UpdatePost)
			postGroup.DELETE("/:id", group.PostHandler.DeletePost)

			// 写操作需要账号已激活
			activeGroup := postGroup.Group("")
			activeGroup.Use(middleware.CheckActiveStatus())
			{
				activeGroup.POST("", group.PostHandler.CreatePost)
				activeGroup.POST("/like/:id", group.PostActionHandler.LikePost)
				activeGroup.POST("/:id/comments", group.PostActionHandler.AddComment)
			}
		}

		collegeGroup := apiGroup.Group("/colleges")
		{
			collegeGroup.GET("", group.CollegeHandler.List)
			collegeGroup.GET("/:id", group.CollegeHandler.Get)

			adminGroup := collegeGroup.Group("")
			adminGroup.Use(auth, middleware.CheckRoles(model.RoleAdmin))
			{
				adminGroup.POST("", group.CollegeHandler.Create)
				adminGroup.PUT("/:id", group.CollegeHandler.Update)
				adminGroup.DELETE("/:id", group.CollegeHandler.Delete)
			}
		}

		adminGroup := apiGroup.Group("/admin")
		adminGroup.Use(auth, middleware.CheckRoles(model.RoleAdmin))
		{
			adminGroup.GET("/users/pending", group.AdminHandler.ListPendingUsers)
			adminGroup.PUT("/users/:id/status", group.AdminHandler.UpdateUserStatus)
		}
	}

	return r
}

// SetupDirectoryRouter 校友名录服务，无需登录
func SetupDirectoryRouter(group *DirectoryHandlers) *gin.Engine {
	r := newEngine("reunite-directory", 0)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", ping)
		apiGroup.GET("/colleges", group.AlumniHandler.Colleges)
		apiGroup.GET("/branches/:college", group.AlumniHandler.Branches)
		apiGroup.GET("/alumni/:college/:branch", group.AlumniHandler.Alumni)
	}

	return r
}
