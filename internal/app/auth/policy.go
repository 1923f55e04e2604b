// Package auth implements the role and tenancy policy as pure
// functions. Callers pass the acting identity explicitly; the package
// keeps no state and touches no storage.
package auth

import (
	"github.com/bekzod/unilib/internal/app/models"
	"github.com/bekzod/unilib/internal/pkg/apperrors"
)

// Actor is the authenticated principal a request acts as, resolved
// from JWT claims by the auth middleware.
type Actor struct {
	ID           int64
	Email        string
	Role         models.Role
	UniversityID *int64
}

// ActorFromIdentity builds an Actor from a resolved identity.
func ActorFromIdentity(id models.Identity) Actor {
	return Actor{
		ID:           id.ID,
		Email:        id.Email,
		Role:         id.Role,
		UniversityID: id.UniversityID,
	}
}

// RequireRole checks that the actor holds one of the given roles.
func RequireRole(actor Actor, roles ...models.Role) error {
	for _, r := range roles {
		if actor.Role == r {
			return nil
		}
	}
	return apperrors.ErrPermissionDenied
}

// ResolveWriteScope decides which university a write lands in.
// A superadmin always writes into its own university; any client
// supplied value is overridden silently. An owner must name the target
// university explicitly. Plain users cannot write.
func ResolveWriteScope(actor Actor, requested *int64) (int64, error) {
	switch actor.Role {
	case models.RoleSuperAdmin:
		if actor.UniversityID == nil {
			return 0, apperrors.ErrMissingScope
		}
		return *actor.UniversityID, nil
	case models.RoleOwner:
		if requested == nil {
			return 0, apperrors.ErrMissingScope
		}
		return *requested, nil
	default:
		return 0, apperrors.ErrPermissionDenied
	}
}

// CanAccessUniversity checks whether the actor may mutate records of
// the given university. Owners may touch any university; superadmins
// only their own.
func CanAccessUniversity(actor Actor, universityID int64) error {
	switch actor.Role {
	case models.RoleOwner:
		return nil
	case models.RoleSuperAdmin:
		if actor.UniversityID != nil && *actor.UniversityID == universityID {
			return nil
		}
		return apperrors.ErrPermissionDenied
	default:
		return apperrors.ErrPermissionDenied
	}
}
