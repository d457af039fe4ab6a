package model

// 账号状态
const (
	StatusPending  = "pending"
	StatusActive   = "active"
	StatusDeactive = "deactive"
)

// 角色
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// IsValidStatus 是否为合法的状态值
func IsValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusActive, StatusDeactive:
		return true
	}
	return false
}

// CanTransition 仅允许 pending -> active 与 pending -> deactive，其余状态为终态
func CanTransition(from, to string) bool {
	if from != StatusPending {
		return false
	}
	return to == StatusActive || to == StatusDeactive
}
