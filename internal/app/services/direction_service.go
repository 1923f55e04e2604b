package services

import (
	"context"
	"fmt"
	"strings"

	appauth "github.com/bekzod/unilib/internal/app/auth"
	"github.com/bekzod/unilib/internal/app/models"
	"github.com/bekzod/unilib/internal/app/models/dto"
	"github.com/bekzod/unilib/internal/app/repositories"
	"github.com/bekzod/unilib/internal/pkg/apperrors"
)

// DirectionService defines the interface for study direction operations
type DirectionService interface {
	Create(ctx context.Context, actor appauth.Actor, req *dto.CreateDirectionRequest) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Direction, error)
	GetAll(ctx context.Context, universityID *int64) ([]*models.Direction, error)
	Update(ctx context.Context, actor appauth.Actor, id int64, req *dto.UpdateDirectionRequest) (*models.Direction, error)
	Delete(ctx context.Context, actor appauth.Actor, id int64) error
}

type directionServiceImpl struct {
	directionRepo  *repositories.DirectionRepository
	universityRepo *repositories.UniversityRepository
}

// NewDirectionService creates a new direction service instance
func NewDirectionService(directionRepo *repositories.DirectionRepository, universityRepo *repositories.UniversityRepository) DirectionService {
	return &directionServiceImpl{
		directionRepo:  directionRepo,
		universityRepo: universityRepo,
	}
}

// Create creates a direction in the actor's write scope. A superadmin
// lands in its own university no matter what the request says; an
// owner must name the target.
func (s *directionServiceImpl) Create(ctx context.Context, actor appauth.Actor, req *dto.CreateDirectionRequest) (int64, error) {
	universityID, err := appauth.ResolveWriteScope(actor, req.UniversityID)
	if err != nil {
		return 0, err
	}

	if strings.TrimSpace(req.Name) == "" {
		return 0, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	if req.Course < 1 {
		return 0, fmt.Errorf("%w: course must be positive", apperrors.ErrValidationFailed)
	}

	if _, err := s.universityRepo.GetByID(ctx, universityID); err != nil {
		return 0, err
	}

	exists, err := s.directionRepo.ExistsByCourse(ctx, req.Course, universityID)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, apperrors.ErrDirectionAlreadyExists
	}

	return s.directionRepo.Create(ctx, &models.Direction{
		Number:       req.Number,
		Name:         req.Name,
		Course:       req.Course,
		StudentCount: req.StudentCount,
		UniversityID: universityID,
	})
}

// GetByID retrieves a direction. Reads are public.
func (s *directionServiceImpl) GetByID(ctx context.Context, id int64) (*models.Direction, error) {
	return s.directionRepo.GetByID(ctx, id)
}

// GetAll retrieves directions, optionally for one university.
func (s *directionServiceImpl) GetAll(ctx context.Context, universityID *int64) ([]*models.Direction, error) {
	return s.directionRepo.GetAll(ctx, universityID)
}

// Update applies a partial update after the not-found and tenancy
// checks, in that order.
func (s *directionServiceImpl) Update(ctx context.Context, actor appauth.Actor, id int64, req *dto.UpdateDirectionRequest) (*models.Direction, error) {
	existing, err := s.directionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := appauth.CanAccessUniversity(actor, existing.UniversityID); err != nil {
		return nil, err
	}

	req.Apply(existing)
	if existing.Course < 1 {
		return nil, fmt.Errorf("%w: course must be positive", apperrors.ErrValidationFailed)
	}
	if err := s.directionRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes a direction.
func (s *directionServiceImpl) Delete(ctx context.Context, actor appauth.Actor, id int64) error {
	existing, err := s.directionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := appauth.CanAccessUniversity(actor, existing.UniversityID); err != nil {
		return err
	}
	return s.directionRepo.Delete(ctx, id)
}
