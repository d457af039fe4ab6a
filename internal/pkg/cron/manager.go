package cron

import (
	"Reunite/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine           *cron.Cron
	pendingReviewJob *job.PendingReviewJob
	pendingSpec      string
}

func NewCronManager(pendingReviewJob *job.PendingReviewJob, pendingSpec string) *Manager {
	return &Manager{
		engine:           cron.New(cron.WithSeconds()),
		pendingReviewJob: pendingReviewJob,
		pendingSpec:      pendingSpec,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob(s.pendingSpec, s.pendingReviewJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	<-s.engine.Stop().Done()
}
