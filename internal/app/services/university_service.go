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

// UniversityService defines the interface for university operations
type UniversityService interface {
	Create(ctx context.Context, actor appauth.Actor, req *dto.CreateUniversityRequest) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.University, error)
	GetAll(ctx context.Context) ([]*models.University, error)
	Update(ctx context.Context, actor appauth.Actor, id int64, req *dto.UpdateUniversityRequest) (*models.University, error)
	Delete(ctx context.Context, actor appauth.Actor, id int64) error
}

type universityServiceImpl struct {
	universityRepo *repositories.UniversityRepository
}

// NewUniversityService creates a new university service instance
func NewUniversityService(universityRepo *repositories.UniversityRepository) UniversityService {
	return &universityServiceImpl{universityRepo: universityRepo}
}

// Create creates a new university. Owner only; universities are the
// tenancy roots, so no superadmin may add one.
func (s *universityServiceImpl) Create(ctx context.Context, actor appauth.Actor, req *dto.CreateUniversityRequest) (int64, error) {
	if err := appauth.RequireRole(actor, models.RoleOwner); err != nil {
		return 0, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return 0, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	exists, err := s.universityRepo.ExistsByName(ctx, name)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, apperrors.ErrUniversityAlreadyExists
	}

	return s.universityRepo.Create(ctx, &models.University{
		Name:        name,
		Description: req.Description,
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       req.Email,
		Location:    req.Location,
	})
}

// GetByID retrieves a university. Reads are public.
func (s *universityServiceImpl) GetByID(ctx context.Context, id int64) (*models.University, error) {
	return s.universityRepo.GetByID(ctx, id)
}

// GetAll retrieves all universities.
func (s *universityServiceImpl) GetAll(ctx context.Context) ([]*models.University, error) {
	return s.universityRepo.GetAll(ctx)
}

// Update applies a partial update. The record is loaded first so a
// missing id reports not-found before any permission failure.
func (s *universityServiceImpl) Update(ctx context.Context, actor appauth.Actor, id int64, req *dto.UpdateUniversityRequest) (*models.University, error) {
	existing, err := s.universityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := appauth.CanAccessUniversity(actor, existing.ID); err != nil {
		return nil, err
	}

	req.Apply(existing)
	if err := s.universityRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes a university and everything under it. Owner only.
func (s *universityServiceImpl) Delete(ctx context.Context, actor appauth.Actor, id int64) error {
	if err := appauth.RequireRole(actor, models.RoleOwner); err != nil {
		return err
	}

	if _, err := s.universityRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.universityRepo.Delete(ctx, id)
}
