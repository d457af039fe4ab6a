package dto

type CollegeDTO struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
}

type UpsertCollegeDTO struct {
	Name     string `json:"name" binding:"required" validate:"max=255"`
	Location string `json:"location" validate:"max=255"`
}
