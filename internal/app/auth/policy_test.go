package auth

import (
	"errors"
	"testing"

	"github.com/bekzod/unilib/internal/app/models"
	"github.com/bekzod/unilib/internal/pkg/apperrors"
)

func int64p(v int64) *int64 { return &v }

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name    string
		actor   Actor
		roles   []models.Role
		wantErr error
	}{
		{
			name:  "owner allowed",
			actor: Actor{Role: models.RoleOwner},
			roles: []models.Role{models.RoleOwner, models.RoleSuperAdmin},
		},
		{
			name:  "superadmin allowed",
			actor: Actor{Role: models.RoleSuperAdmin},
			roles: []models.Role{models.RoleOwner, models.RoleSuperAdmin},
		},
		{
			name:    "user denied",
			actor:   Actor{Role: models.RoleUser},
			roles:   []models.Role{models.RoleOwner, models.RoleSuperAdmin},
			wantErr: apperrors.ErrPermissionDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequireRole(tt.actor, tt.roles...)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("RequireRole() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestResolveWriteScope(t *testing.T) {
	tests := []struct {
		name      string
		actor     Actor
		requested *int64
		want      int64
		wantErr   error
	}{
		{
			name:      "superadmin writes into own university regardless of request",
			actor:     Actor{Role: models.RoleSuperAdmin, UniversityID: int64p(3)},
			requested: int64p(9),
			want:      3,
		},
		{
			name:  "superadmin with no request still scoped to own university",
			actor: Actor{Role: models.RoleSuperAdmin, UniversityID: int64p(3)},
			want:  3,
		},
		{
			name:      "owner uses the requested university",
			actor:     Actor{Role: models.RoleOwner},
			requested: int64p(9),
			want:      9,
		},
		{
			name:    "owner without a target is rejected",
			actor:   Actor{Role: models.RoleOwner},
			wantErr: apperrors.ErrMissingScope,
		},
		{
			name:      "plain user cannot write",
			actor:     Actor{Role: models.RoleUser, UniversityID: int64p(3)},
			requested: int64p(3),
			wantErr:   apperrors.ErrPermissionDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveWriteScope(tt.actor, tt.requested)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ResolveWriteScope() error = %v, want %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ResolveWriteScope() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCanAccessUniversity(t *testing.T) {
	tests := []struct {
		name         string
		actor        Actor
		universityID int64
		wantErr      error
	}{
		{
			name:         "owner can touch any university",
			actor:        Actor{Role: models.RoleOwner},
			universityID: 42,
		},
		{
			name:         "superadmin can touch own university",
			actor:        Actor{Role: models.RoleSuperAdmin, UniversityID: int64p(3)},
			universityID: 3,
		},
		{
			name:         "superadmin denied on another university",
			actor:        Actor{Role: models.RoleSuperAdmin, UniversityID: int64p(3)},
			universityID: 4,
			wantErr:      apperrors.ErrPermissionDenied,
		},
		{
			name:         "superadmin without a university is denied",
			actor:        Actor{Role: models.RoleSuperAdmin},
			universityID: 3,
			wantErr:      apperrors.ErrPermissionDenied,
		},
		{
			name:         "plain user denied",
			actor:        Actor{Role: models.RoleUser, UniversityID: int64p(3)},
			universityID: 3,
			wantErr:      apperrors.ErrPermissionDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanAccessUniversity(tt.actor, tt.universityID)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CanAccessUniversity() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
