package service

import (
	"Reunite/internal/api/dto"
	"Reunite/internal/model"
	"Reunite/internal/pkg/consts"
	"Reunite/internal/pkg/security"
	"Reunite/internal/pkg/util"
	"Reunite/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"strings"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

type UserService interface {
	Register(ctx context.Context, dto *dto.RegisterDTO) (*dto.AuthDTO, error)
	Login(ctx context.Context, dto *dto.CredentialDTO) (*dto.AuthDTO, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*Viewer, error)
	GetMe(ctx context.Context, id uint64) (*dto.UserDTO, error)
	GetProfile(ctx context.Context, id uint64) (*dto.ProfileDTO, error)
	UpdateProfile(ctx context.Context, id uint64, dto *dto.UpdateProfileDTO, avatar *dto.Upload) (*dto.ProfileDTO, error)
	ChangePassword(ctx context.Context, id uint64, dto *dto.ChangePasswordDTO) error
	DeleteAccount(ctx context.Context, id uint64, dto *dto.DeleteAccountDTO) error
	ListOwnPosts(ctx context.Context, id uint64, collegeSpecific bool, page, limit int) (*dto.PostPageDTO, error)
}

type UserServiceImpl struct {
	userRepo    repository.UserRepo
	collegeRepo repository.CollegeRepo
	postRepo    repository.PostRepo
	tokens      TokenStore
	media       MediaStorage
	policy      MediaPolicy
}

func NewUserService(
	userRepo repository.UserRepo,
	collegeRepo repository.CollegeRepo,
	postRepo repository.PostRepo,
	tokens TokenStore,
	media MediaStorage,
	policy MediaPolicy,
) UserService {
	return &UserServiceImpl{
		userRepo:    userRepo,
		collegeRepo: collegeRepo,
		postRepo:    postRepo,
		tokens:      tokens,
		media:       media,
		policy:      policy,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, regDTO *dto.RegisterDTO) (*dto.AuthDTO, error) {
	regDTO.Email = strings.ToLower(strings.TrimSpace(regDTO.Email))
	regDTO.Username = strings.TrimSpace(regDTO.Username)
	if regDTO.CollegeID == 0 {
		return nil, ErrCollegeRequired
	}

	exists, err := s.userRepo.ExistsByEmailOrUsername(ctx, regDTO.Email, regDTO.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserExist
	}

	college, err := s.collegeRepo.GetById(ctx, regDTO.CollegeID)
	if err != nil {
		return nil, err
	}
	if college == nil {
		return nil, ErrCollegeInvalid
	}

	user := &model.User{}
	if err = copier.Copy(user, regDTO); err != nil {
		return nil, err
	}
	passwordHash, err := security.HashPassword(regDTO.Password)
	if err != nil {
		return nil, err
	}
	user.Password = passwordHash
	user.CollegeName = college.Name
	user.ProfilePicture = consts.DefaultProfilePicture
	// 新用户一律 pending/user，不接受调用方指定
	user.Status = model.StatusPending
	user.Role = model.RoleUser

	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, ErrUserExist
		}
		return nil, err
	}
	log.InfoContext(ctx, "user registered", "user_id", user.ID, "college_id", user.CollegeID)

	return s.issue(user)
}

func (s *UserServiceImpl) Login(ctx context.Context, credDTO *dto.CredentialDTO) (*dto.AuthDTO, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(credDTO.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err = security.CheckPasswordHash(credDTO.Password, user.Password); err != nil {
		if errors.Is(err, security.ErrInvalidCredentials) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return s.issue(user)
}

func (s *UserServiceImpl) issue(user *model.User) (*dto.AuthDTO, error) {
	token, err := security.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &dto.AuthDTO{Token: token, User: toUserDTO(user)}, nil
}

// Logout 将 Token 签名写入黑名单直至其自然过期
func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	claims, err := security.ValidateToken(token)
	if err != nil {
		return ErrTokenInvalid
	}
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return ErrTokenInvalid
	}
	return s.tokens.Revoke(ctx, signature, security.RemainingTTL(claims))
}

// Authenticate 校验 Token 并从数据库加载调用者，状态与角色以数据库为准
func (s *UserServiceImpl) Authenticate(ctx context.Context, token string) (*Viewer, error) {
	if token == "" {
		return nil, ErrNoToken
	}
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return nil, ErrTokenInvalid
	}
	revoked, err := s.tokens.IsRevoked(ctx, signature)
	if err != nil {
		log.ErrorContext(ctx, "check token blacklist failed", "err", err)
		return nil, UnExpectedError
	}
	if revoked {
		return nil, ErrTokenInvalid
	}
	claims, err := security.ValidateToken(token)
	if err != nil {
		return nil, ErrTokenInvalid
	}
	user, err := s.userRepo.GetUserById(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrTokenInvalid
	}
	return &Viewer{
		UserID:    user.ID,
		CollegeID: user.CollegeID,
		Status:    user.Status,
		Role:      user.Role,
	}, nil
}

func (s *UserServiceImpl) GetMe(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.mustGetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return toUserDTO(user), nil
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, id uint64) (*dto.ProfileDTO, error) {
	user, err := s.mustGetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProfileDTO(user), nil
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, id uint64, profileDTO *dto.UpdateProfileDTO, avatar *dto.Upload) (*dto.ProfileDTO, error) {
	user, err := s.mustGetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]interface{})
	if profileDTO.Username != nil {
		username := strings.TrimSpace(*profileDTO.Username)
		if username != "" && username != user.Username {
			other, err := s.userRepo.GetUserByUsername(ctx, username)
			if err != nil {
				return nil, err
			}
			if other != nil {
				return nil, ErrUsernameExist
			}
			fields["username"] = username
		}
	}
	if profileDTO.Bio != nil {
		fields["bio"] = *profileDTO.Bio
	}

	oldPicture := user.ProfilePicture
	if avatar != nil && len(avatar.Data) > 0 {
		url, err := storeAvatar(ctx, s.media, avatar, s.policy)
		if err != nil {
			return nil, err
		}
		fields["profile_picture"] = url
	}

	if err = s.userRepo.UpdateUser(ctx, id, fields); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, ErrUsernameExist
		}
		return nil, err
	}

	if _, ok := fields["profile_picture"]; ok && oldPicture != "" && oldPicture != consts.DefaultProfilePicture {
		if err = s.media.Delete(ctx, oldPicture); err != nil {
			log.WarnContext(ctx, "failed to delete old profile picture", "url", oldPicture, "err", err)
		}
	}

	return s.GetProfile(ctx, id)
}

func (s *UserServiceImpl) ChangePassword(ctx context.Context, id uint64, pwdDTO *dto.ChangePasswordDTO) error {
	user, err := s.mustGetUser(ctx, id)
	if err != nil {
		return err
	}
	if err = security.CheckPasswordHash(pwdDTO.CurrentPassword, user.Password); err != nil {
		return ErrPasswordIncorrect
	}
	hashed, err := security.HashPassword(pwdDTO.NewPassword)
	if err != nil {
		return err
	}
	return s.userRepo.UpdateUser(ctx, id, map[string]interface{}{"password": hashed})
}

func (s *UserServiceImpl) DeleteAccount(ctx context.Context, id uint64, delDTO *dto.DeleteAccountDTO) error {
	user, err := s.mustGetUser(ctx, id)
	if err != nil {
		return err
	}
	if err = security.CheckPasswordHash(delDTO.Password, user.Password); err != nil {
		return ErrAccountPasswordIncorrect
	}
	if err = s.userRepo.DeleteUserCascade(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	log.InfoContext(ctx, "account deleted", "user_id", id)
	return nil
}

func (s *UserServiceImpl) ListOwnPosts(ctx context.Context, id uint64, collegeSpecific bool, page, limit int) (*dto.PostPageDTO, error) {
	page, limit, offset := util.Paginate(page, limit, consts.DefaultPageLimit, consts.MaxPageLimit)
	posts, total, err := s.postRepo.ListByUser(ctx, id, collegeSpecific, limit, offset)
	if err != nil {
		return nil, err
	}
	return &dto.PostPageDTO{
		Posts:       toPostDTOList(posts),
		CurrentPage: page,
		TotalPages:  util.TotalPages(total, limit),
		TotalPosts:  total,
	}, nil
}

func (s *UserServiceImpl) mustGetUser(ctx context.Context, id uint64) (*model.User, error) {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func toUserDTO(user *model.User) *dto.UserDTO {
	out := &dto.UserDTO{}
	_ = copier.Copy(out, user)
	return out
}

func toProfileDTO(user *model.User) *dto.ProfileDTO {
	return &dto.ProfileDTO{
		ID:             user.ID,
		Username:       user.Username,
		Email:          user.Email,
		ProfilePicture: user.ProfilePicture,
		CollegeID:      user.CollegeID,
		Bio:            user.Bio,
	}
}
