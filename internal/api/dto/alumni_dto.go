package dto

type AlumniDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Bio      string `json:"bio,omitempty"`
	College  string `json:"college"`
	Branch   string `json:"branch"`
	Year     int    `json:"year,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// AlumniRecordDTO 导入文件与消息中的单条记录，键名与导出文件一致
type AlumniRecordDTO struct {
	Name     string `json:"Name"`
	Bio      string `json:"Bio"`
	College  string `json:"College"`
	Branch   string `json:"Branch"`
	Year     int    `json:"Year"`
	LinkedIn string `json:"LinkedIn"`
}

type ImportResultDTO struct {
	Received int `json:"received"`
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
}
