package models

// UniversityTotals carries raw per-university counts used by the stats
// endpoints.
type UniversityTotals struct {
	UniversityID   int64
	UniversityName string
	Students       int64
	Directions     int64
	Subjects       int64
	Literatures    int64
}

// ExportRow is one flattened (direction, subject, literature) row of
// the statistics export, in report order.
type ExportRow struct {
	DirectionID     int64
	DirectionNumber string
	DirectionName   string
	Course          int
	StudentCount    int
	SubjectID       int64
	SubjectName     string
	LiteratureID    int64
	LiteratureTitle string
	Kind            string
	Author          *string
	Publisher       *string
	Language        Language
	FontType        FontType
	Year            int
	PrintedCount    *int
	FilePath        *string
}
