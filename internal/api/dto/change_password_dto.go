package dto

type ChangePasswordDTO struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required" validate:"min=6,max=72"`
}

type DeleteAccountDTO struct {
	Password string `json:"password" binding:"required"`
}

type MessageDTO struct {
	Message string `json:"message"`
}
