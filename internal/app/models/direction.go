package models

// Direction is an academic program with an enrolled student count.
// Course is unique per university, not globally.
type Direction struct {
	ID           int64  `json:"id" db:"id"`
	Number       string `json:"number" db:"number"`
	Name         string `json:"name" db:"name"`
	Course       int    `json:"course" db:"course"`
	StudentCount int    `json:"studentCount" db:"student_count"`
	UniversityID int64  `json:"universityId" db:"university_id"`
}
