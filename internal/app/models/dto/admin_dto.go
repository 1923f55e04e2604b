package dto

import "github.com/bekzod/unilib/internal/app/models"

// UpdateAdminRequest is the owner-side partial update of a superadmin
// account. Password, when set, is re-hashed by the service.
type UpdateAdminRequest struct {
	Email        *string `json:"email"`
	Password     *string `json:"password"`
	UniversityID *int64  `json:"universityId"`
}

// Apply merges the set fields into an existing admin record. The
// password field holds the already hashed value when present.
func (r *UpdateAdminRequest) Apply(a *models.Admin, hashedPassword string) {
	if r.Email != nil {
		a.Email = *r.Email
	}
	if r.Password != nil {
		a.Password = hashedPassword
	}
	if r.UniversityID != nil {
		a.UniversityID = r.UniversityID
	}
}
