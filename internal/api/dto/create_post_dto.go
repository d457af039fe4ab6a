package dto

// CreatePostDTO multipart 表单，图片字段名 image
type CreatePostDTO struct {
	Content           string  `form:"content" json:"content" binding:"required" validate:"max=5000"`
	IsCollegeSpecific bool    `form:"is_college_specific" json:"is_college_specific"`
	TelegramLink      *string `form:"telegram_link" json:"telegram_link" validate:"omitempty,url,max=512"`
}

type UpdatePostDTO struct {
	Content           *string `form:"content" json:"content" validate:"omitempty,min=1,max=5000"`
	IsCollegeSpecific *bool   `form:"is_college_specific" json:"is_college_specific"`
	TelegramLink      *string `form:"telegram_link" json:"telegram_link" validate:"omitempty,url,max=512"`
}

type CreateCommentDTO struct {
	Text string `json:"text" validate:"max=2000"`
}

type PageQueryDTO struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}
