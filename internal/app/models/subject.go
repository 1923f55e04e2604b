package models

// Subject is taught by a kafedra and linked to one or more directions.
// Uniqueness is on (name, kafedra_id, university_id).
type Subject struct {
	ID           int64   `json:"id" db:"id"`
	Name         string  `json:"name" db:"name"`
	KafedraID    int64   `json:"kafedraId" db:"kafedra_id"`
	UniversityID int64   `json:"universityId" db:"university_id"`
	DirectionIDs []int64 `json:"directionIds"` // subject_directions join rows
}
