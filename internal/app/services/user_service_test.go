package services

import (
	"context"
	"errors"
	"testing"

	appauth "github.com/bekzod/unilib/internal/app/auth"
	"github.com/bekzod/unilib/internal/app/models"
	"github.com/bekzod/unilib/internal/app/models/dto"
	"github.com/bekzod/unilib/internal/pkg/apperrors"
)

// Admin and user ids come from independent sequences, so an admin
// actor must never reach the users-table lookup by its own numeric id.
// The role check runs before any repository access, which lets a
// service with nil dependencies cover it.
func TestProfileRejectsAdminActors(t *testing.T) {
	svc := NewUserService(nil, nil)

	name := "Changed"
	actors := []struct {
		name  string
		actor appauth.Actor
	}{
		{name: "owner", actor: appauth.Actor{ID: 7, Role: models.RoleOwner}},
		{name: "superadmin", actor: appauth.Actor{ID: 7, Role: models.RoleSuperAdmin, UniversityID: int64Ptr(1)}},
	}

	for _, tt := range actors {
		t.Run(tt.name+" get", func(t *testing.T) {
			_, err := svc.GetProfile(context.Background(), tt.actor)
			if !errors.Is(err, apperrors.ErrPermissionDenied) {
				t.Fatalf("GetProfile() error = %v, want %v", err, apperrors.ErrPermissionDenied)
			}
		})
		t.Run(tt.name+" update", func(t *testing.T) {
			_, err := svc.UpdateProfile(context.Background(), tt.actor, &dto.UpdateProfileRequest{FirstName: &name})
			if !errors.Is(err, apperrors.ErrPermissionDenied) {
				t.Fatalf("UpdateProfile() error = %v, want %v", err, apperrors.ErrPermissionDenied)
			}
		})
	}
}
