package dto

import "time"

type UserDTO struct {
	ID                  uint64    `json:"id"`
	Username            string    `json:"username"`
	Email               string    `json:"email"`
	FirstName           string    `json:"first_name"`
	LastName            string    `json:"last_name"`
	PhoneNumber         string    `json:"phone_number,omitempty"`
	CollegeID           uint64    `json:"college_id"`
	CollegeName         string    `json:"college_name"`
	YearOfGraduation    int       `json:"year_of_graduation,omitempty"`
	CurrentCareerStatus string    `json:"current_career_status,omitempty"`
	LinkedinProfileURL  string    `json:"linkedin_profile_url,omitempty"`
	StudentMailID       string    `json:"student_mail_id,omitempty"`
	Bio                 *string   `json:"bio"`
	ProfilePicture      string    `json:"profile_picture"`
	Status              string    `json:"status"`
	Role                string    `json:"role"`
	CreatedAt           time.Time `json:"created_at"`
}

// ProfileDTO 个人资料页
type ProfileDTO struct {
	ID             uint64  `json:"id"`
	Username       string  `json:"username"`
	Email          string  `json:"email"`
	ProfilePicture string  `json:"profile_picture"`
	CollegeID      uint64  `json:"college_id"`
	Bio            *string `json:"bio"`
}

// UpdateProfileDTO multipart 表单，头像字段名 profile_picture
type UpdateProfileDTO struct {
	Username *string `form:"username" json:"username" validate:"omitempty,min=3,max=50"`
	Bio      *string `form:"bio" json:"bio" validate:"omitempty,max=1000"`
}

// Upload 已读取的上传文件
type Upload struct {
	Filename string
	Size     int64
	Data     []byte
}
