package dto

import (
	"time"

	"github.com/bekzod/unilib/internal/app/models"
)

// CreateNewsRequest represents the multipart form of a news post. Tags
// are free-form names, normalized and created on demand.
type CreateNewsRequest struct {
	Title        string   `form:"title" binding:"required" example:"Admission results"`
	Description  string   `form:"description" binding:"required"`
	Date         *string  `form:"date" example:"2026-08-25"`
	Tags         []string `form:"tags"`
	UniversityID *int64   `form:"universityId" example:"1"`
}

// UpdateNewsRequest is a partial multipart update; nil fields are left
// untouched. A non-nil Tags replaces the tag set.
type UpdateNewsRequest struct {
	Title       *string   `form:"title"`
	Description *string   `form:"description"`
	Date        *string   `form:"date"`
	Tags        *[]string `form:"tags"`
}

// Apply merges the set scalar fields into an existing news record. Tag
// replacement is handled by the service since it touches the join table.
func (r *UpdateNewsRequest) Apply(n *models.News) error {
	if r.Title != nil {
		n.Title = *r.Title
	}
	if r.Description != nil {
		n.Description = *r.Description
	}
	if r.Date != nil {
		d, err := time.Parse("2006-01-02", *r.Date)
		if err != nil {
			return err
		}
		n.Date = d
	}
	return nil
}
