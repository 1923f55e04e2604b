package models

// Kafedra is an academic department within a university
type Kafedra struct {
	ID           int64  `json:"id" db:"id"`
	Name         string `json:"name" db:"name"`
	UniversityID int64  `json:"universityId" db:"university_id"`
}
