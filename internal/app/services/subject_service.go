package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	appauth "github.com/bekzod/unilib/internal/app/auth"
	"github.com/bekzod/unilib/internal/app/models"
	"github.com/bekzod/unilib/internal/app/models/dto"
	"github.com/bekzod/unilib/internal/app/repositories"
	"github.com/bekzod/unilib/internal/db"
	"github.com/bekzod/unilib/internal/pkg/apperrors"
)

// SubjectService defines the interface for subject operations
type SubjectService interface {
	BulkCreate(ctx context.Context, actor appauth.Actor, req *dto.BulkCreateSubjectsRequest) ([]int64, error)
	GetByID(ctx context.Context, id int64) (*models.Subject, error)
	GetAll(ctx context.Context, universityID *int64) ([]*models.Subject, error)
	Update(ctx context.Context, actor appauth.Actor, id int64, req *dto.UpdateSubjectRequest) (*models.Subject, error)
	Delete(ctx context.Context, actor appauth.Actor, id int64) error
}

type subjectServiceImpl struct {
	subjectRepo    *repositories.SubjectRepository
	directionRepo  *repositories.DirectionRepository
	kafedraRepo    *repositories.KafedraRepository
	universityRepo *repositories.UniversityRepository
	database       *db.PostgresDB
}

// NewSubjectService creates a new subject service instance
func NewSubjectService(
	subjectRepo *repositories.SubjectRepository,
	directionRepo *repositories.DirectionRepository,
	kafedraRepo *repositories.KafedraRepository,
	universityRepo *repositories.UniversityRepository,
	database *db.PostgresDB,
) SubjectService {
	return &subjectServiceImpl{
		subjectRepo:    subjectRepo,
		directionRepo:  directionRepo,
		kafedraRepo:    kafedraRepo,
		universityRepo: universityRepo,
		database:       database,
	}
}

// BulkCreate creates up to dto.MaxSubjectBatchSize subjects in one
// transaction. Every referenced kafedra and direction must belong to
// the resolved target university; any failure rolls the whole batch
// back.
func (s *subjectServiceImpl) BulkCreate(ctx context.Context, actor appauth.Actor, req *dto.BulkCreateSubjectsRequest) ([]int64, error) {
	universityID, err := appauth.ResolveWriteScope(actor, req.UniversityID)
	if err != nil {
		return nil, err
	}

	if len(req.Subjects) == 0 {
		return nil, fmt.Errorf("%w: subjects cannot be empty", apperrors.ErrValidationFailed)
	}
	if len(req.Subjects) > dto.MaxSubjectBatchSize {
		return nil, apperrors.ErrBatchTooLarge
	}

	if _, err := s.universityRepo.GetByID(ctx, universityID); err != nil {
		return nil, err
	}

	for _, item := range req.Subjects {
		if strings.TrimSpace(item.Name) == "" {
			return nil, fmt.Errorf("%w: subject name cannot be empty", apperrors.ErrValidationFailed)
		}

		ok, err := s.kafedraRepo.ExistsInUniversity(ctx, item.KafedraID, universityID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("kafedra %d not found for subject %q", item.KafedraID, item.Name))
		}

		ids := dedupeIDs(item.DirectionIDs)
		count, err := s.directionRepo.CountExistingIDs(ctx, ids, universityID)
		if err != nil {
			return nil, err
		}
		if count != len(ids) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("direction not found for subject %q", item.Name))
		}
	}

	createdIDs := make([]int64, 0, len(req.Subjects))
	err = s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		for _, item := range req.Subjects {
			id, err := s.subjectRepo.CreateTx(ctx, tx, &models.Subject{
				Name:         item.Name,
				KafedraID:    item.KafedraID,
				UniversityID: universityID,
				DirectionIDs: dedupeIDs(item.DirectionIDs),
			})
			if err != nil {
				return err
			}
			createdIDs = append(createdIDs, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return createdIDs, nil
}

func dedupeIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// GetByID retrieves a subject. Reads are public.
func (s *subjectServiceImpl) GetByID(ctx context.Context, id int64) (*models.Subject, error) {
	return s.subjectRepo.GetByID(ctx, id)
}

// GetAll retrieves subjects, optionally for one university.
func (s *subjectServiceImpl) GetAll(ctx context.Context, universityID *int64) ([]*models.Subject, error) {
	return s.subjectRepo.GetAll(ctx, universityID)
}

// Update applies a partial update after the not-found and tenancy
// checks. A changed kafedra or direction set must stay within the
// subject's university.
func (s *subjectServiceImpl) Update(ctx context.Context, actor appauth.Actor, id int64, req *dto.UpdateSubjectRequest) (*models.Subject, error) {
	existing, err := s.subjectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := appauth.CanAccessUniversity(actor, existing.UniversityID); err != nil {
		return nil, err
	}

	req.Apply(existing)
	existing.DirectionIDs = dedupeIDs(existing.DirectionIDs)

	if req.KafedraID != nil {
		ok, err := s.kafedraRepo.ExistsInUniversity(ctx, existing.KafedraID, existing.UniversityID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperrors.ErrKafedraNotFound
		}
	}
	if req.DirectionIDs != nil {
		count, err := s.directionRepo.CountExistingIDs(ctx, existing.DirectionIDs, existing.UniversityID)
		if err != nil {
			return nil, err
		}
		if count != len(existing.DirectionIDs) {
			return nil, apperrors.ErrDirectionNotFound
		}
	}

	if err := s.subjectRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes a subject along with its literature.
func (s *subjectServiceImpl) Delete(ctx context.Context, actor appauth.Actor, id int64) error {
	existing, err := s.subjectRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := appauth.CanAccessUniversity(actor, existing.UniversityID); err != nil {
		return err
	}
	return s.subjectRepo.Delete(ctx, id)
}
