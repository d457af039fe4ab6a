package service

import (
	"Reunite/internal/api/dto"
	"Reunite/internal/pkg/mongo"
	"context"
	log "log/slog"
	"strings"
)

type AlumniService interface {
	Colleges(ctx context.Context) ([]string, error)
	Branches(ctx context.Context, college string) ([]string, error)
	Alumni(ctx context.Context, college, branch string) ([]*dto.AlumniDTO, error)
	Import(ctx context.Context, records []dto.AlumniRecordDTO, replace bool) (*dto.ImportResultDTO, error)
}

type AlumniServiceImpl struct {
	alumniRepo mongo.AlumniRepo
}

func NewAlumniService(alumniRepo mongo.AlumniRepo) AlumniService {
	return &AlumniServiceImpl{alumniRepo: alumniRepo}
}

func (s *AlumniServiceImpl) Colleges(ctx context.Context) ([]string, error) {
	return s.alumniRepo.DistinctColleges(ctx)
}

func (s *AlumniServiceImpl) Branches(ctx context.Context, college string) ([]string, error) {
	college = strings.TrimSpace(college)
	if college == "" {
		return nil, ErrAlumniQueryInvalid
	}
	return s.alumniRepo.DistinctBranches(ctx, college)
}

func (s *AlumniServiceImpl) Alumni(ctx context.Context, college, branch string) ([]*dto.AlumniDTO, error) {
	college, branch = strings.TrimSpace(college), strings.TrimSpace(branch)
	if college == "" || branch == "" {
		return nil, ErrAlumniQueryInvalid
	}
	list, err := s.alumniRepo.FindByCollegeAndBranch(ctx, college, branch)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AlumniDTO, 0, len(list))
	for _, a := range list {
		out = append(out, &dto.AlumniDTO{
			ID:       a.ID.Hex(),
			Name:     a.Name,
			Bio:      a.Bio,
			College:  a.College,
			Branch:   a.Branch,
			Year:     a.Year,
			LinkedIn: a.LinkedIn,
		})
	}
	return out, nil
}

// Import 过滤掉缺少 name/college/branch 的记录，replace 为 true 时先清空集合
func (s *AlumniServiceImpl) Import(ctx context.Context, records []dto.AlumniRecordDTO, replace bool) (*dto.ImportResultDTO, error) {
	docs := make([]*mongo.AlumniModel, 0, len(records))
	for _, r := range records {
		doc := &mongo.AlumniModel{
			Name:     strings.TrimSpace(r.Name),
			Bio:      r.Bio,
			College:  strings.TrimSpace(r.College),
			Branch:   strings.TrimSpace(r.Branch),
			Year:     r.Year,
			LinkedIn: r.LinkedIn,
		}
		if doc.Valid() {
			docs = append(docs, doc)
		}
	}

	if replace {
		deleted, err := s.alumniRepo.DeleteAll(ctx)
		if err != nil {
			return nil, err
		}
		log.InfoContext(ctx, "alumni collection cleared", "deleted", deleted)
	}

	inserted, err := s.alumniRepo.InsertMany(ctx, docs)
	if err != nil {
		return nil, err
	}
	return &dto.ImportResultDTO{
		Received: len(records),
		Inserted: inserted,
		Skipped:  len(records) - len(docs),
	}, nil
}
