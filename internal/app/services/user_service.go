package services

import (
	"context"
	"strings"

	appauth "github.com/bekzod/unilib/internal/app/auth"
	"github.com/bekzod/unilib/internal/app/models"
	"github.com/bekzod/unilib/internal/app/models/dto"
	"github.com/bekzod/unilib/internal/app/repositories"
)

// UserService defines the interface for user account management
type UserService interface {
	GetProfile(ctx context.Context, actor appauth.Actor) (*models.User, error)
	GetAll(ctx context.Context, actor appauth.Actor) ([]*models.User, error)
	UpdateProfile(ctx context.Context, actor appauth.Actor, req *dto.UpdateProfileRequest) (*models.User, error)
	Update(ctx context.Context, actor appauth.Actor, id int64, req *dto.UpdateUserRequest) (*models.User, error)
	Block(ctx context.Context, actor appauth.Actor, id int64) error
	Delete(ctx context.Context, actor appauth.Actor, id int64) error
}

type userServiceImpl struct {
	userRepo       *repositories.UserRepository
	universityRepo *repositories.UniversityRepository
}

// NewUserService creates a new user service instance
func NewUserService(userRepo *repositories.UserRepository, universityRepo *repositories.UniversityRepository) UserService {
	return &userServiceImpl{
		userRepo:       userRepo,
		universityRepo: universityRepo,
	}
}

// GetProfile returns the caller's own account. Admin ids live in a
// separate table and sequence, so an admin actor must never be looked
// up in the users table by its numeric id.
func (s *userServiceImpl) GetProfile(ctx context.Context, actor appauth.Actor) (*models.User, error) {
	if err := appauth.RequireRole(actor, models.RoleUser); err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(ctx, actor.ID)
}

// GetAll lists user accounts. Owner only.
func (s *userServiceImpl) GetAll(ctx context.Context, actor appauth.Actor) ([]*models.User, error) {
	if err := appauth.RequireRole(actor, models.RoleOwner); err != nil {
		return nil, err
	}
	return s.userRepo.GetAll(ctx)
}

// UpdateProfile is the self-service update. It only ever touches the
// name fields; id, role, email and account status stay as they are.
// Restricted to user actors: admin accounts change through /admins.
func (s *userServiceImpl) UpdateProfile(ctx context.Context, actor appauth.Actor, req *dto.UpdateProfileRequest) (*models.User, error) {
	if err := appauth.RequireRole(actor, models.RoleUser); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	req.Apply(existing)
	if err := s.userRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Update is the owner-side account update.
func (s *userServiceImpl) Update(ctx context.Context, actor appauth.Actor, id int64, req *dto.UpdateUserRequest) (*models.User, error) {
	if err := appauth.RequireRole(actor, models.RoleOwner); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.UniversityID != nil {
		if _, err := s.universityRepo.GetByID(ctx, *req.UniversityID); err != nil {
			return nil, err
		}
	}

	req.Apply(existing)
	existing.Email = strings.ToLower(strings.TrimSpace(existing.Email))
	if err := s.userRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Block disables an account. A blocked user cannot log in or refresh.
func (s *userServiceImpl) Block(ctx context.Context, actor appauth.Actor, id int64) error {
	if err := appauth.RequireRole(actor, models.RoleOwner); err != nil {
		return err
	}
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.userRepo.SetActive(ctx, id, false)
}

// Delete removes an account.
func (s *userServiceImpl) Delete(ctx context.Context, actor appauth.Actor, id int64) error {
	if err := appauth.RequireRole(actor, models.RoleOwner); err != nil {
		return err
	}
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, id)
}
