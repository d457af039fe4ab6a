package job

import (
	"Reunite/internal/api/dto"
	"context"
	"errors"
	"testing"
	"time"
)

type stubAdmin struct {
	count     int64
	err       error
	olderThan time.Duration
}

func (s *stubAdmin) ListPendingUsers(context.Context) ([]*dto.PendingUserDTO, error) {
	return nil, nil
}

func (s *stubAdmin) UpdateUserStatus(context.Context, string, uint64, string) (*dto.StatusUpdateResultDTO, error) {
	return nil, nil
}

func (s *stubAdmin) CountStalePending(_ context.Context, olderThan time.Duration) (int64, error) {
	s.olderThan = olderThan
	return s.count, s.err
}

type stubLocker struct {
	held     bool
	unlocked bool
}

func (l *stubLocker) TryLock(context.Context, string, string, time.Duration) (bool, error) {
	return !l.held, nil
}

func (l *stubLocker) Unlock(context.Context, string, string) {
	l.unlocked = true
}

func TestPendingReviewJob(t *testing.T) {
	tests := []struct {
		name    string
		admin   *stubAdmin
		held    bool
		want    int64
		wantRan bool
	}{
		{"backlog", &stubAdmin{count: 3}, false, 3, true},
		{"empty", &stubAdmin{}, false, 0, true},
		{"count error", &stubAdmin{err: errors.New("db down")}, false, 0, true},
		{"lock held", &stubAdmin{count: 3}, true, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			locker := &stubLocker{held: tt.held}
			j := NewPendingReviewJob(tt.admin, locker, 72*time.Hour)
			got, ran := j.run(context.Background())
			if got != tt.want || ran != tt.wantRan {
				t.Fatalf("run() = (%d, %v), want (%d, %v)", got, ran, tt.want, tt.wantRan)
			}
			if ran && !locker.unlocked {
				t.Fatal("lock not released")
			}
			if ran && tt.admin.olderThan != 72*time.Hour {
				t.Fatalf("olderThan = %v", tt.admin.olderThan)
			}
		})
	}
}
