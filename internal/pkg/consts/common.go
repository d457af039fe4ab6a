package consts

const (
	MimePrefixImage = "image"
)

const (
	// DefaultProfilePicture 未上传头像时的占位路径
	DefaultProfilePicture = "uploads/default.jpg"
	DefaultPageLimit      = 5
	MaxPageLimit          = 50
)

// gin.Context 中的键
const (
	CtxUserID    = "user_id"
	CtxRole      = "role"
	CtxStatus    = "status"
	CtxCollegeID = "college_id"
	CtxToken     = "token"
)
