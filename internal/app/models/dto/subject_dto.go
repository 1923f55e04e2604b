package dto

import "github.com/bekzod/unilib/internal/app/models"

// MaxSubjectBatchSize bounds the bulk subject create endpoint.
const MaxSubjectBatchSize = 10

// SubjectItem is one entry of a bulk subject create request.
type SubjectItem struct {
	Name         string  `json:"name" binding:"required" example:"Linear Algebra"`
	KafedraID    int64   `json:"kafedraId" binding:"required" example:"1"`
	DirectionIDs []int64 `json:"directionIds" binding:"required,min=1"`
}

// BulkCreateSubjectsRequest creates up to MaxSubjectBatchSize subjects
// in one transaction. UniversityID is required for owners.
type BulkCreateSubjectsRequest struct {
	Subjects     []SubjectItem `json:"subjects" binding:"required,min=1"`
	UniversityID *int64        `json:"universityId" example:"1"`
}

// UpdateSubjectRequest is a partial update; nil fields are left
// untouched. A non-nil DirectionIDs replaces the association set.
type UpdateSubjectRequest struct {
	Name         *string  `json:"name"`
	KafedraID    *int64   `json:"kafedraId"`
	DirectionIDs *[]int64 `json:"directionIds"`
}

// Apply merges the set fields into an existing subject record.
func (r *UpdateSubjectRequest) Apply(s *models.Subject) {
	if r.Name != nil {
		s.Name = *r.Name
	}
	if r.KafedraID != nil {
		s.KafedraID = *r.KafedraID
	}
	if r.DirectionIDs != nil {
		s.DirectionIDs = *r.DirectionIDs
	}
}
