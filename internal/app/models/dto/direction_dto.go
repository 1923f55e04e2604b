package dto

import "github.com/bekzod/unilib/internal/app/models"

// CreateDirectionRequest represents a request to create a study
// direction. UniversityID is required for owners and ignored for
// superadmins, whose writes are scoped to their own university.
type CreateDirectionRequest struct {
	Number       string `json:"number" binding:"required" example:"60110500"`
	Name         string `json:"name" binding:"required" example:"Applied Mathematics"`
	Course       int    `json:"course" binding:"required,min=1,max=6" example:"1"`
	StudentCount int    `json:"studentCount" binding:"min=0" example:"30"`
	UniversityID *int64 `json:"universityId" example:"1"`
}

// UpdateDirectionRequest is a partial update; nil fields are left
// untouched.
type UpdateDirectionRequest struct {
	Number       *string `json:"number"`
	Name         *string `json:"name"`
	Course       *int    `json:"course"`
	StudentCount *int    `json:"studentCount"`
}

// Apply merges the set fields into an existing direction record.
func (r *UpdateDirectionRequest) Apply(d *models.Direction) {
	if r.Number != nil {
		d.Number = *r.Number
	}
	if r.Name != nil {
		d.Name = *r.Name
	}
	if r.Course != nil {
		d.Course = *r.Course
	}
	if r.StudentCount != nil {
		d.StudentCount = *r.StudentCount
	}
}
