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

// KafedraService defines the interface for kafedra operations
type KafedraService interface {
	Create(ctx context.Context, actor appauth.Actor, req *dto.CreateKafedraRequest) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Kafedra, error)
	GetAll(ctx context.Context, universityID *int64) ([]*models.Kafedra, error)
	Update(ctx context.Context, actor appauth.Actor, id int64, req *dto.UpdateKafedraRequest) (*models.Kafedra, error)
	Delete(ctx context.Context, actor appauth.Actor, id int64) error
}

type kafedraServiceImpl struct {
	kafedraRepo    *repositories.KafedraRepository
	universityRepo *repositories.UniversityRepository
}

// NewKafedraService creates a new kafedra service instance
func NewKafedraService(kafedraRepo *repositories.KafedraRepository, universityRepo *repositories.UniversityRepository) KafedraService {
	return &kafedraServiceImpl{
		kafedraRepo:    kafedraRepo,
		universityRepo: universityRepo,
	}
}

// Create creates a kafedra in the actor's write scope.
func (s *kafedraServiceImpl) Create(ctx context.Context, actor appauth.Actor, req *dto.CreateKafedraRequest) (int64, error) {
	universityID, err := appauth.ResolveWriteScope(actor, req.UniversityID)
	if err != nil {
		return 0, err
	}

	if strings.TrimSpace(req.Name) == "" {
		return 0, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	if _, err := s.universityRepo.GetByID(ctx, universityID); err != nil {
		return 0, err
	}

	return s.kafedraRepo.Create(ctx, &models.Kafedra{
		Name:         req.Name,
		UniversityID: universityID,
	})
}

// GetByID retrieves a kafedra. Reads are public.
func (s *kafedraServiceImpl) GetByID(ctx context.Context, id int64) (*models.Kafedra, error) {
	return s.kafedraRepo.GetByID(ctx, id)
}

// GetAll retrieves kafedras, optionally for one university.
func (s *kafedraServiceImpl) GetAll(ctx context.Context, universityID *int64) ([]*models.Kafedra, error) {
	return s.kafedraRepo.GetAll(ctx, universityID)
}

// Update applies a partial update after the not-found and tenancy
// checks.
func (s *kafedraServiceImpl) Update(ctx context.Context, actor appauth.Actor, id int64, req *dto.UpdateKafedraRequest) (*models.Kafedra, error) {
	existing, err := s.kafedraRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := appauth.CanAccessUniversity(actor, existing.UniversityID); err != nil {
		return nil, err
	}

	req.Apply(existing)
	if err := s.kafedraRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes a kafedra.
func (s *kafedraServiceImpl) Delete(ctx context.Context, actor appauth.Actor, id int64) error {
	existing, err := s.kafedraRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := appauth.CanAccessUniversity(actor, existing.UniversityID); err != nil {
		return err
	}
	return s.kafedraRepo.Delete(ctx, id)
}
