package consts

const (
	TokenBlacklistKey = "auth:token:blacklist:"
	CollegeListKey    = "college:list"
	PendingReviewLock = "lock:job:pending_review"
)
