package dto

import "github.com/bekzod/unilib/internal/app/models"

// CreateUniversityRequest represents a request to create a university
type CreateUniversityRequest struct {
	Name        string  `json:"name" binding:"required" example:"Nukus State University"`
	Description *string `json:"description" example:"State university in Nukus"`
	Address     *string `json:"address" example:"Ch. Abdirov 1"`
	Phone       *string `json:"phone" example:"+998 61 223 60 47"`
	Email       *string `json:"email" example:"info@ndpi.uz"`
	Location    *string `json:"location" example:"42.4531,59.6103"`
}

// UpdateUniversityRequest is a partial update; nil fields are left
// untouched.
type UpdateUniversityRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	Location    *string `json:"location"`
}

// Apply merges the set fields into an existing university record.
func (r *UpdateUniversityRequest) Apply(u *models.University) {
	if r.Name != nil {
		u.Name = *r.Name
	}
	if r.Description != nil {
		u.Description = r.Description
	}
	if r.Address != nil {
		u.Address = r.Address
	}
	if r.Phone != nil {
		u.Phone = r.Phone
	}
	if r.Email != nil {
		u.Email = r.Email
	}
	if r.Location != nil {
		u.Location = r.Location
	}
}
