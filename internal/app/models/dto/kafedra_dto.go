package dto

import "github.com/bekzod/unilib/internal/app/models"

// CreateKafedraRequest represents a request to create a kafedra
// (academic department).
type CreateKafedraRequest struct {
	Name         string `json:"name" binding:"required" example:"Kafedra of Mathematics"`
	UniversityID *int64 `json:"universityId" example:"1"`
}

// UpdateKafedraRequest is a partial update; nil fields are left
// untouched.
type UpdateKafedraRequest struct {
	Name *string `json:"name"`
}

// Apply merges the set fields into an existing kafedra record.
func (r *UpdateKafedraRequest) Apply(k *models.Kafedra) {
	if r.Name != nil {
		k.Name = *r.Name
	}
}
