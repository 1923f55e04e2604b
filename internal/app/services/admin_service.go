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
	"github.com/bekzod/unilib/internal/pkg/auth"
)

// AdminService defines the interface for superadmin account management.
// Every operation is owner only.
type AdminService interface {
	Create(ctx context.Context, actor appauth.Actor, req *dto.CreateAdminRequest) (int64, error)
	GetByID(ctx context.Context, actor appauth.Actor, id int64) (*models.Admin, error)
	GetAll(ctx context.Context, actor appauth.Actor) ([]*models.Admin, error)
	Update(ctx context.Context, actor appauth.Actor, id int64, req *dto.UpdateAdminRequest) (*models.Admin, error)
	Delete(ctx context.Context, actor appauth.Actor, id int64) error
}

type adminServiceImpl struct {
	adminRepo      *repositories.AdminRepository
	universityRepo *repositories.UniversityRepository
}

// NewAdminService creates a new admin service instance
func NewAdminService(adminRepo *repositories.AdminRepository, universityRepo *repositories.UniversityRepository) AdminService {
	return &adminServiceImpl{
		adminRepo:      adminRepo,
		universityRepo: universityRepo,
	}
}

// Create adds a superadmin bound to one university.
func (s *adminServiceImpl) Create(ctx context.Context, actor appauth.Actor, req *dto.CreateAdminRequest) (int64, error) {
	if err := appauth.RequireRole(actor, models.RoleOwner); err != nil {
		return 0, err
	}

	if _, err := s.universityRepo.GetByID(ctx, req.UniversityID); err != nil {
		return 0, err
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return 0, fmt.Errorf("error hashing password: %w", err)
	}

	universityID := req.UniversityID
	return s.adminRepo.Create(ctx, &models.Admin{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Password:     hashed,
		Role:         models.RoleSuperAdmin,
		UniversityID: &universityID,
	})
}

// GetByID retrieves a superadmin account.
func (s *adminServiceImpl) GetByID(ctx context.Context, actor appauth.Actor, id int64) (*models.Admin, error) {
	if err := appauth.RequireRole(actor, models.RoleOwner); err != nil {
		return nil, err
	}
	return s.adminRepo.GetByID(ctx, id)
}

// GetAll lists all admin accounts.
func (s *adminServiceImpl) GetAll(ctx context.Context, actor appauth.Actor) ([]*models.Admin, error) {
	if err := appauth.RequireRole(actor, models.RoleOwner); err != nil {
		return nil, err
	}
	return s.adminRepo.GetAll(ctx)
}

// Update applies a partial update to a superadmin account. The owner
// account itself cannot be edited through this path.
func (s *adminServiceImpl) Update(ctx context.Context, actor appauth.Actor, id int64, req *dto.UpdateAdminRequest) (*models.Admin, error) {
	if err := appauth.RequireRole(actor, models.RoleOwner); err != nil {
		return nil, err
	}

	existing, err := s.adminRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.Role == models.RoleOwner {
		return nil, apperrors.NewForbiddenError("the owner account cannot be modified")
	}

	if req.UniversityID != nil {
		if _, err := s.universityRepo.GetByID(ctx, *req.UniversityID); err != nil {
			return nil, err
		}
	}

	hashed := ""
	if req.Password != nil {
		hashed, err = auth.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
	}

	req.Apply(existing, hashed)
	existing.Email = strings.ToLower(strings.TrimSpace(existing.Email))
	if err := s.adminRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes a superadmin account. The owner account cannot be
// deleted.
func (s *adminServiceImpl) Delete(ctx context.Context, actor appauth.Actor, id int64) error {
	if err := appauth.RequireRole(actor, models.RoleOwner); err != nil {
		return err
	}

	existing, err := s.adminRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.Role == models.RoleOwner {
		return apperrors.NewForbiddenError("the owner account cannot be deleted")
	}
	return s.adminRepo.Delete(ctx, id)
}
