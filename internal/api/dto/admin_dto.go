package dto

import "time"

type UpdateStatusDTO struct {
	Status string `json:"status" binding:"required"`
}

type PendingUserDTO struct {
	ID                  uint64      `json:"id"`
	Username            string      `json:"username"`
	Email               string      `json:"email"`
	FirstName           string      `json:"first_name"`
	LastName            string      `json:"last_name"`
	YearOfGraduation    int         `json:"year_of_graduation"`
	CurrentCareerStatus string      `json:"current_career_status"`
	LinkedinProfileURL  string      `json:"linkedin_profile_url"`
	StudentMailID       string      `json:"student_mail_id"`
	Status              string      `json:"status"`
	College             *CollegeDTO `json:"college"`
	CreatedAt           time.Time   `json:"created_at"`
}

type UserStatusDTO struct {
	ID     uint64 `json:"id"`
	Status string `json:"status"`
}

type StatusUpdateResultDTO struct {
	Message string         `json:"message"`
	User    *UserStatusDTO `json:"user"`
}
