package job

import (
	"Reunite/internal/pkg/consts"
	"Reunite/internal/pkg/logger"
	"Reunite/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

type Locker interface {
	TryLock(ctx context.Context, key, value string, expiration time.Duration) (bool, error)
	Unlock(ctx context.Context, key, value string)
}

// PendingReviewJob 统计超过审核时限仍为 pending 的注册，提醒管理员处理
type PendingReviewJob struct {
	adminSvc  service.AdminService
	locker    Locker
	olderThan time.Duration
}

func NewPendingReviewJob(adminSvc service.AdminService, locker Locker, olderThan time.Duration) *PendingReviewJob {
	return &PendingReviewJob{
		adminSvc:  adminSvc,
		locker:    locker,
		olderThan: olderThan,
	}
}

func (s *PendingReviewJob) Run() {
	_, _ = s.run(context.Background())
}

// run 返回积压数量，未拿到锁时 ran 为 false
func (s *PendingReviewJob) run(ctx context.Context) (stale int64, ran bool) {
	traceID := "job-pending-review-" + uuid.NewString()
	ctx = logger.WithTraceID(ctx, traceID)

	ok, err := s.locker.TryLock(ctx, consts.PendingReviewLock, traceID, time.Minute)
	if err != nil {
		log.ErrorContext(ctx, "acquire pending review lock error", "err", err)
		return 0, false
	}
	if !ok {
		log.InfoContext(ctx, "pending review job is running elsewhere, skip")
		return 0, false
	}
	defer s.locker.Unlock(ctx, consts.PendingReviewLock, traceID)

	stale, err = s.adminSvc.CountStalePending(ctx, s.olderThan)
	if err != nil {
		log.ErrorContext(ctx, "count stale pending users error", "err", err)
		return 0, true
	}
	if stale > 0 {
		log.WarnContext(ctx, "pending registrations exceed review window",
			"count", stale,
			"older_than", s.olderThan.String(),
		)
		return stale, true
	}
	log.InfoContext(ctx, "no stale pending registrations")
	return 0, true
}
