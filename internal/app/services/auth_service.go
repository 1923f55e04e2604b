package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	appauth "github.com/bekzod/unilib/internal/app/auth"
	"github.com/bekzod/unilib/internal/app/models"
	"github.com/bekzod/unilib/internal/app/models/dto"
	"github.com/bekzod/unilib/internal/app/repositories"
	"github.com/bekzod/unilib/internal/pkg/apperrors"
	"github.com/bekzod/unilib/internal/pkg/auth"
	"github.com/bekzod/unilib/internal/pkg/logger"
)

// TokenPair bundles the tokens issued on login and refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int
}

// AuthService defines the interface for authentication operations
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*TokenPair, error)
	Register(ctx context.Context, req *dto.RegisterRequest) (int64, error)
	CreateAdmin(ctx context.Context, actor appauth.Actor, req *dto.CreateAdminRequest) (int64, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	ResolveIdentity(ctx context.Context, email string) (*models.Identity, error)
}

type authServiceImpl struct {
	adminRepo      *repositories.AdminRepository
	userRepo       *repositories.UserRepository
	universityRepo *repositories.UniversityRepository
	jwtService     *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(
	adminRepo *repositories.AdminRepository,
	userRepo *repositories.UserRepository,
	universityRepo *repositories.UniversityRepository,
	jwtService *auth.JWTService,
) AuthService {
	return &authServiceImpl{
		adminRepo:      adminRepo,
		userRepo:       userRepo,
		universityRepo: universityRepo,
		jwtService:     jwtService,
	}
}

// ResolveIdentity looks the email up in the admins table first, then
// in users. Admin accounts shadow user accounts with the same email.
func (s *authServiceImpl) ResolveIdentity(ctx context.Context, email string) (*models.Identity, error) {
	admin, err := s.adminRepo.GetByEmail(ctx, email)
	if err == nil {
		identity := models.AdminIdentity(admin)
		return &identity, nil
	}
	if !errors.Is(err, apperrors.ErrAdminNotFound) {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}
	identity := models.UserIdentity(user)
	return &identity, nil
}

// Login checks credentials and issues an access/refresh token pair.
// Every credential failure maps to the same error so the response
// never reveals which part was wrong.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*TokenPair, error) {
	identity, err := s.ResolveIdentity(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error resolving identity: %w", err)
	}

	if !auth.CheckPassword(identity.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !identity.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	return s.issuePair(*identity)
}

func (s *authServiceImpl) issuePair(identity models.Identity) (*TokenPair, error) {
	accessToken, err := s.jwtService.IssueAccess(identity)
	if err != nil {
		return nil, fmt.Errorf("error issuing access token: %w", err)
	}
	refreshToken, err := s.jwtService.IssueRefresh(identity)
	if err != nil {
		return nil, fmt.Errorf("error issuing refresh token: %w", err)
	}
	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    s.jwtService.AccessTokenTTL(),
	}, nil
}

// Register creates a regular user account. Registration never grants
// an elevated role.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (int64, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return 0, fmt.Errorf("%w: email cannot be empty", apperrors.ErrValidationFailed)
	}

	if req.UniversityID != nil {
		if _, err := s.universityRepo.GetByID(ctx, *req.UniversityID); err != nil {
			return 0, err
		}
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return 0, fmt.Errorf("error hashing password: %w", err)
	}

	id, err := s.userRepo.Create(ctx, &models.User{
		Email:        email,
		Password:     hashed,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		IsActive:     true,
		UniversityID: req.UniversityID,
	})
	if err != nil {
		return 0, err
	}

	logger.Info().Int64("userID", id).Str("email", email).Msg("User registered")
	return id, nil
}

// CreateAdmin creates a superadmin account bound to one university.
// Owner only; the created account always gets the superadmin role.
func (s *authServiceImpl) CreateAdmin(ctx context.Context, actor appauth.Actor, req *dto.CreateAdminRequest) (int64, error) {
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
	id, err := s.adminRepo.Create(ctx, &models.Admin{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Password:     hashed,
		Role:         models.RoleSuperAdmin,
		UniversityID: &universityID,
	})
	if err != nil {
		return 0, err
	}

	logger.Info().Int64("adminID", id).Int64("universityID", req.UniversityID).Msg("Superadmin created")
	return id, nil
}

// Refresh validates a refresh token and rotates the pair, preserving
// the email, role and account id claims.
func (s *authServiceImpl) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.jwtService.Validate(refreshToken, auth.TokenTypeRefresh)
	if err != nil {
		if errors.Is(err, auth.ErrExpiredToken) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrTokenInvalid
	}

	// Re-resolve the identity so a deleted or blocked account cannot
	// keep refreshing.
	identity, err := s.ResolveIdentity(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			return nil, apperrors.ErrTokenInvalid
		}
		return nil, err
	}
	if !identity.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	return s.issuePair(*identity)
}
