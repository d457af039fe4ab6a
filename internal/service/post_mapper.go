package service

import (
	"Reunite/internal/api/dto"
	"Reunite/internal/model"
)

func toAuthorDTO(u *model.User) *dto.AuthorDTO {
	if u == nil {
		return nil
	}
	return &dto.AuthorDTO{
		ID:                  u.ID,
		Username:            u.Username,
		ProfilePicture:      u.ProfilePicture,
		CollegeName:         u.CollegeName,
		CurrentCareerStatus: u.CurrentCareerStatus,
		YearOfGraduation:    u.YearOfGraduation,
		Bio:                 u.Bio,
	}
}

func toCollegeDTO(c *model.College) *dto.CollegeDTO {
	if c == nil {
		return nil
	}
	return &dto.CollegeDTO{ID: c.ID, Name: c.Name, Location: c.Location}
}

// toPostDTO Likes 与 Comments 始终为数组
func toPostDTO(p *model.Post) *dto.PostDTO {
	if p == nil {
		return nil
	}
	out := &dto.PostDTO{
		ID:                p.ID,
		Content:           p.Content,
		Image:             p.Image,
		IsCollegeSpecific: p.IsCollegeSpecific,
		TelegramLink:      p.TelegramLink,
		UserID:            p.UserID,
		CollegeID:         p.CollegeID,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
		User:              toAuthorDTO(p.User),
		College:           toCollegeDTO(p.College),
		Likes:             make([]dto.LikeDTO, 0, len(p.Likes)),
		Comments:          make([]dto.CommentDTO, 0, len(p.Comments)),
	}
	for _, l := range p.Likes {
		out.Likes = append(out.Likes, dto.LikeDTO{
			UserID:    l.UserID,
			PostID:    l.PostID,
			CreatedAt: l.CreatedAt,
			User:      toAuthorDTO(l.User),
		})
	}
	for _, c := range p.Comments {
		out.Comments = append(out.Comments, dto.CommentDTO{
			ID:        c.ID,
			Text:      c.Text,
			UserID:    c.UserID,
			PostID:    c.PostID,
			CreatedAt: c.CreatedAt,
			User:      toAuthorDTO(c.User),
		})
	}
	out.LikeCount = len(out.Likes)
	out.CommentCount = len(out.Comments)
	return out
}

func toPostDTOList(posts []*model.Post) []*dto.PostDTO {
	list := make([]*dto.PostDTO, 0, len(posts))
	for _, p := range posts {
		list = append(list, toPostDTO(p))
	}
	return list
}
