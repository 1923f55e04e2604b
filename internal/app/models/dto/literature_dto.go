package dto

import "github.com/bekzod/unilib/internal/app/models"

// CreateLiteratureRequest represents the multipart form of a literature
// upload. The optional file and image parts are handled by the
// controller.
type CreateLiteratureRequest struct {
	Title        string  `form:"title" binding:"required" example:"Calculus I"`
	Kind         string  `form:"kind" binding:"required" example:"textbook"`
	Author       *string `form:"author" example:"J. Stewart"`
	Publisher    *string `form:"publisher"`
	Language     string  `form:"language" binding:"required" example:"uzbek"`
	FontType     string  `form:"fontType" binding:"required" example:"latin"`
	Year         int     `form:"year" binding:"required" example:"2021"`
	PrintedCount *int    `form:"printedCount"`
	Condition    string  `form:"condition" binding:"required" example:"actual"`
	UsageStatus  string  `form:"usageStatus" binding:"required" example:"use"`
	SubjectID    int64   `form:"subjectId" binding:"required" example:"1"`
}

// UpdateLiteratureRequest is a partial multipart update; nil fields are
// left untouched.
type UpdateLiteratureRequest struct {
	Title        *string `form:"title"`
	Kind         *string `form:"kind"`
	Author       *string `form:"author"`
	Publisher    *string `form:"publisher"`
	Language     *string `form:"language"`
	FontType     *string `form:"fontType"`
	Year         *int    `form:"year"`
	PrintedCount *int    `form:"printedCount"`
	Condition    *string `form:"condition"`
	UsageStatus  *string `form:"usageStatus"`
	SubjectID    *int64  `form:"subjectId"`
}

// Apply merges the set fields into an existing literature record.
func (r *UpdateLiteratureRequest) Apply(l *models.Literature) {
	if r.Title != nil {
		l.Title = *r.Title
	}
	if r.Kind != nil {
		l.Kind = *r.Kind
	}
	if r.Author != nil {
		l.Author = r.Author
	}
	if r.Publisher != nil {
		l.Publisher = r.Publisher
	}
	if r.Language != nil {
		l.Language = models.Language(*r.Language)
	}
	if r.FontType != nil {
		l.FontType = models.FontType(*r.FontType)
	}
	if r.Year != nil {
		l.Year = *r.Year
	}
	if r.PrintedCount != nil {
		l.PrintedCount = r.PrintedCount
	}
	if r.Condition != nil {
		l.Condition = models.Condition(*r.Condition)
	}
	if r.UsageStatus != nil {
		l.UsageStatus = models.UsageStatus(*r.UsageStatus)
	}
	if r.SubjectID != nil {
		l.SubjectID = *r.SubjectID
	}
}

// LiteratureResponse is a literature record enriched with its computed
// availability percentage.
type LiteratureResponse struct {
	models.Literature
	Availability int `json:"availability" example:"100"`
}
