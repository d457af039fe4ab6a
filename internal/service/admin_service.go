package service

import (
	"Reunite/internal/api/dto"
	"Reunite/internal/model"
	"Reunite/internal/repository"
	"context"
	log "log/slog"
	"time"
)

type AdminService interface {
	ListPendingUsers(ctx context.Context) ([]*dto.PendingUserDTO, error)
	UpdateUserStatus(ctx context.Context, callerRole string, targetID uint64, status string) (*dto.StatusUpdateResultDTO, error)
	CountStalePending(ctx context.Context, olderThan time.Duration) (int64, error)
}

type AdminServiceImpl struct {
	userRepo repository.UserRepo
}

func NewAdminService(userRepo repository.UserRepo) AdminService {
	return &AdminServiceImpl{userRepo: userRepo}
}

func (s *AdminServiceImpl) ListPendingUsers(ctx context.Context) ([]*dto.PendingUserDTO, error) {
	users, err := s.userRepo.ListPendingUsers(ctx)
	if err != nil {
		return nil, err
	}
	list := make([]*dto.PendingUserDTO, 0, len(users))
	for _, u := range users {
		list = append(list, &dto.PendingUserDTO{
			ID:                  u.ID,
			Username:            u.Username,
			Email:               u.Email,
			FirstName:           u.FirstName,
			LastName:            u.LastName,
			YearOfGraduation:    u.YearOfGraduation,
			CurrentCareerStatus: u.CurrentCareerStatus,
			LinkedinProfileURL:  u.LinkedinProfileURL,
			StudentMailID:       u.StudentMailID,
			Status:              u.Status,
			College:             toCollegeDTO(u.College),
			CreatedAt:           u.CreatedAt,
		})
	}
	return list, nil
}

// UpdateUserStatus 审核 pending 用户，条件更新保证并发审核只有一次生效
func (s *AdminServiceImpl) UpdateUserStatus(ctx context.Context, callerRole string, targetID uint64, status string) (*dto.StatusUpdateResultDTO, error) {
	if callerRole != model.RoleAdmin {
		return nil, ErrAdminRequired
	}
	if !model.CanTransition(model.StatusPending, status) {
		return nil, ErrInvalidStatus
	}

	affected, err := s.userRepo.UpdateStatusIfPending(ctx, targetID, status)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		user, err := s.userRepo.GetUserById(ctx, targetID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, ErrUserNotFound
		}
		return nil, ErrStatusNotPending
	}

	log.InfoContext(ctx, "user status updated", "user_id", targetID, "status", status)
	return &dto.StatusUpdateResultDTO{
		Message: "Status updated successfully",
		User:    &dto.UserStatusDTO{ID: targetID, Status: status},
	}, nil
}

func (s *AdminServiceImpl) CountStalePending(ctx context.Context, olderThan time.Duration) (int64, error) {
	return s.userRepo.CountPendingOlderThan(ctx, time.Now().Add(-olderThan))
}
