package service

import "Reunite/internal/model"

// CheckUserStatus 账号状态门禁，status 必须来自数据库而非 Token
func CheckUserStatus(status string) error {
	switch status {
	case model.StatusActive:
		return nil
	case model.StatusPending:
		return ErrAccountPending
	case model.StatusDeactive:
		return ErrAccountDeactivated
	default:
		return ErrAccountStatusInvalid
	}
}

// Viewer 当前请求的调用者，字段均由中间件从数据库加载
type Viewer struct {
	UserID    uint64
	CollegeID uint64
	Status    string
	Role      string
}
