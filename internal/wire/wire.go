package wire

import (
	"Reunite/internal/api"
	"Reunite/internal/api/config"
	"Reunite/internal/api/handler"
	"Reunite/internal/job"
	"Reunite/internal/pkg/cron"
	"Reunite/internal/pkg/kafka"
	"Reunite/internal/pkg/mongo"
	"Reunite/internal/repository"
	"Reunite/internal/service"
	"time"

	"github.com/gin-gonic/gin"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// Infra 外部基础设施的实现，由 main 注入 Redis/MinIO，测试时注入替身
type Infra struct {
	Tokens  service.TokenStore
	Cache   service.Cache
	Storage service.MediaStorage
	Locker  job.Locker
}

// ApplicationContainer 封装了主站运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

// DirectoryContainer 校友名录服务的顶级组件
type DirectoryContainer struct {
	Router       *gin.Engine
	KafkaManager *kafka.ConsumerManager
}

func BuildApplication(db *gorm.DB, cfg *config.Config, infra Infra) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	collegeRepo := repository.NewCollegeRepo(db)
	postRepo := repository.NewPostRepository(db)
	postActionRepo := repository.NewPostActionRepo(db)

	uploadLimit := int64(cfg.Upload.MaxImageMB) << 20
	mediaPolicy := service.MediaPolicy{
		MaxBytes:   uploadLimit,
		AvatarSize: cfg.Upload.AvatarSize,
	}
	feedPolicy := service.FeedPolicy{
		GateGeneralFeed: cfg.Policy.GateGeneralFeed,
		GateCollegeFeed: cfg.Policy.GateCollegeFeed,
	}

	userService := service.NewUserService(userRepo, collegeRepo, postRepo, infra.Tokens, infra.Storage, mediaPolicy)
	adminService := service.NewAdminService(userRepo)
	postService := service.NewPostService(postRepo, infra.Storage, feedPolicy, mediaPolicy)
	postActionService := service.NewPostActionService(postRepo, postActionRepo)
	collegeService := service.NewCollegeService(collegeRepo, infra.Cache)

	handlers := &api.HandlersGroup{
		Auth:              userService,
		UserHandler:       handler.NewUserHandler(userService, uploadLimit),
		PostHandler:       handler.NewPostHandler(postService, uploadLimit),
		PostActionHandler: handler.NewPostActionHandler(postActionService),
		CollegeHandler:    handler.NewCollegeHandler(collegeService),
		AdminHandler:      handler.NewAdminHandler(adminService),
	}
	router := api.SetupRouter(handlers, uploadLimit+(1<<20))

	pendingJob := job.NewPendingReviewJob(
		adminService,
		infra.Locker,
		time.Duration(cfg.Policy.PendingReviewHours)*time.Hour,
	)
	cronMgr := cron.NewCronManager(pendingJob, cfg.Cron.PendingReview)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}

func BuildDirectory(db *mongodrv.Database, cfg *config.Config) (*DirectoryContainer, error) {
	alumniRepo := mongo.NewAlumniRepo(db, cfg.Mongo.AlumniCollection)
	alumniService := service.NewAlumniService(alumniRepo)
	return buildDirectory(alumniService, cfg)
}

func buildDirectory(alumniService service.AlumniService, cfg *config.Config) (*DirectoryContainer, error) {
	router := api.SetupDirectoryRouter(&api.DirectoryHandlers{
		AlumniHandler: handler.NewAlumniHandler(alumniService),
	})

	kafkaMgr, err := kafka.NewConsumerManager(cfg, alumniService)
	if err != nil {
		return nil, err
	}

	return &DirectoryContainer{
		Router:       router,
		KafkaManager: kafkaMgr,
	}, nil
}
