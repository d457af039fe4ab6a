package service

import (
	"Reunite/internal/api/dto"
	"Reunite/internal/model"
	"Reunite/internal/pkg/consts"
	"Reunite/internal/repository"
	"context"
	log "log/slog"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

const collegeListTTL = 10 * time.Minute

type CollegeService interface {
	List(ctx context.Context) ([]*dto.CollegeDTO, error)
	Get(ctx context.Context, id uint64) (*dto.CollegeDTO, error)
	Create(ctx context.Context, dto *dto.UpsertCollegeDTO) (*dto.CollegeDTO, error)
	Update(ctx context.Context, id uint64, dto *dto.UpsertCollegeDTO) (*dto.CollegeDTO, error)
	Delete(ctx context.Context, id uint64) error
}

type CollegeServiceImpl struct {
	collegeRepo repository.CollegeRepo
	cache       Cache
}

func NewCollegeService(collegeRepo repository.CollegeRepo, cache Cache) CollegeService {
	return &CollegeServiceImpl{
		collegeRepo: collegeRepo,
		cache:       cache,
	}
}

// List 优先读缓存，缓存故障时直接回源
func (s *CollegeServiceImpl) List(ctx context.Context) ([]*dto.CollegeDTO, error) {
	if cached, err := s.cache.Get(ctx, consts.CollegeListKey); err != nil {
		log.WarnContext(ctx, "college cache read failed", "err", err)
	} else if cached != "" {
		var list []*dto.CollegeDTO
		if err = json.Unmarshal([]byte(cached), &list); err == nil {
			return list, nil
		}
	}

	colleges, err := s.collegeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	list := make([]*dto.CollegeDTO, 0, len(colleges))
	for _, c := range colleges {
		list = append(list, toCollegeDTO(c))
	}

	if raw, err := json.Marshal(list); err == nil {
		if err = s.cache.Set(ctx, consts.CollegeListKey, string(raw), collegeListTTL); err != nil {
			log.WarnContext(ctx, "college cache write failed", "err", err)
		}
	}
	return list, nil
}

func (s *CollegeServiceImpl) Get(ctx context.Context, id uint64) (*dto.CollegeDTO, error) {
	college, err := s.collegeRepo.GetById(ctx, id)
	if err != nil {
		return nil, err
	}
	if college == nil {
		return nil, ErrCollegeNotFound
	}
	return toCollegeDTO(college), nil
}

func (s *CollegeServiceImpl) Create(ctx context.Context, upsert *dto.UpsertCollegeDTO) (*dto.CollegeDTO, error) {
	name := strings.TrimSpace(upsert.Name)
	if name == "" {
		return nil, ErrParamInvalid
	}
	college := &model.College{Name: name, Location: strings.TrimSpace(upsert.Location)}
	if err := s.collegeRepo.Create(ctx, college); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, ErrCollegeExist
		}
		return nil, err
	}
	s.invalidate(ctx)
	return toCollegeDTO(college), nil
}

func (s *CollegeServiceImpl) Update(ctx context.Context, id uint64, upsert *dto.UpsertCollegeDTO) (*dto.CollegeDTO, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(upsert.Name)
	if name == "" {
		return nil, ErrParamInvalid
	}
	fields := map[string]interface{}{
		"name":     name,
		"location": strings.TrimSpace(upsert.Location),
	}
	if err := s.collegeRepo.Update(ctx, id, fields); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, ErrCollegeExist
		}
		return nil, err
	}
	s.invalidate(ctx)
	return s.Get(ctx, id)
}

// Delete 仍被用户或帖子引用的学院不可删除
func (s *CollegeServiceImpl) Delete(ctx context.Context, id uint64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	refs, err := s.collegeRepo.CountReferences(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return ErrCollegeInUse
	}
	affected, err := s.collegeRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCollegeNotFound
	}
	s.invalidate(ctx)
	return nil
}

func (s *CollegeServiceImpl) invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, consts.CollegeListKey); err != nil {
		log.WarnContext(ctx, "college cache invalidate failed", "err", err)
	}
}
