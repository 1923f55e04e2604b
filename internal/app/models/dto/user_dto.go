package dto

import "github.com/bekzod/unilib/internal/app/models"

// UpdateProfileRequest is the self-service profile update. Role, id and
// account status are never client-writable.
type UpdateProfileRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

// Apply merges the set fields into an existing user record.
func (r *UpdateProfileRequest) Apply(u *models.User) {
	if r.FirstName != nil {
		u.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		u.LastName = *r.LastName
	}
}

// UpdateUserRequest is the owner-side partial update of a user account.
type UpdateUserRequest struct {
	Email        *string `json:"email"`
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	UniversityID *int64  `json:"universityId"`
}

// Apply merges the set fields into an existing user record.
func (r *UpdateUserRequest) Apply(u *models.User) {
	if r.Email != nil {
		u.Email = *r.Email
	}
	if r.FirstName != nil {
		u.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		u.LastName = *r.LastName
	}
	if r.UniversityID != nil {
		u.UniversityID = r.UniversityID
	}
}
