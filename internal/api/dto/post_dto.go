package dto

import "time"

type PostDTO struct {
	ID                uint64       `json:"id"`
	Content           string       `json:"content"`
	Image             *string      `json:"image"`
	IsCollegeSpecific bool         `json:"is_college_specific"`
	TelegramLink      *string      `json:"telegram_link"`
	UserID            uint64       `json:"user_id"`
	CollegeID         uint64       `json:"college_id"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
	User              *AuthorDTO   `json:"user"`
	College           *CollegeDTO  `json:"college"`
	Likes             []LikeDTO    `json:"likes"`
	Comments          []CommentDTO `json:"comments"`
	LikeCount         int          `json:"like_count"`
	CommentCount      int          `json:"comment_count"`
}

type AuthorDTO struct {
	ID                  uint64  `json:"id"`
	Username            string  `json:"username"`
	ProfilePicture      string  `json:"profile_picture"`
	CollegeName         string  `json:"college_name,omitempty"`
	CurrentCareerStatus string  `json:"current_career_status,omitempty"`
	YearOfGraduation    int     `json:"year_of_graduation,omitempty"`
	Bio                 *string `json:"bio,omitempty"`
}

type LikeDTO struct {
	UserID    uint64     `json:"user_id"`
	PostID    uint64     `json:"post_id"`
	CreatedAt time.Time  `json:"created_at"`
	User      *AuthorDTO `json:"user"`
}

type CommentDTO struct {
	ID        uint64     `json:"id"`
	Text      string     `json:"text"`
	UserID    uint64     `json:"user_id"`
	PostID    uint64     `json:"post_id"`
	CreatedAt time.Time  `json:"created_at"`
	User      *AuthorDTO `json:"user"`
}

// PostPageDTO 个人帖子分页
type PostPageDTO struct {
	Posts       []*PostDTO `json:"posts"`
	CurrentPage int        `json:"current_page"`
	TotalPages  int        `json:"total_pages"`
	TotalPosts  int64      `json:"total_posts"`
}

// LikeResultDTO 点赞切换结果
type LikeResultDTO struct {
	Liked bool     `json:"liked"`
	Post  *PostDTO `json:"post"`
}
