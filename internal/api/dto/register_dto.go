package dto

type RegisterDTO struct {
	Username            string  `json:"username" binding:"required" validate:"min=3,max=50"`
	Email               string  `json:"email" binding:"required" validate:"email,max=255"`
	Password            string  `json:"password" binding:"required" validate:"min=6,max=72"`
	CollegeID           uint64  `json:"college_id" binding:"required"`
	FirstName           string  `json:"first_name" validate:"max=100"`
	LastName            string  `json:"last_name" validate:"max=100"`
	PhoneNumber         string  `json:"phone_number" validate:"max=30"`
	YearOfGraduation    int     `json:"year_of_graduation" validate:"omitempty,min=1900,max=2100"`
	CurrentCareerStatus string  `json:"current_career_status" validate:"max=255"`
	LinkedinProfileURL  string  `json:"linkedin_profile_url" validate:"omitempty,url,max=512"`
	StudentMailID       string  `json:"student_mail_id" validate:"omitempty,email,max=255"`
	Bio                 *string `json:"bio,omitempty"`
}

// CredentialDTO 邮箱 + 密码登录
type CredentialDTO struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthDTO 注册/登录返回
type AuthDTO struct {
	Token string   `json:"token"`
	User  *UserDTO `json:"user"`
}
