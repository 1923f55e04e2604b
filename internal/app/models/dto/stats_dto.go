package dto

// GeneralStatsResponse carries the scope-wide totals.
type GeneralStatsResponse struct {
	Universities int64 `json:"universities" example:"3"`
	Students     int64 `json:"students" example:"1200"`
	Directions   int64 `json:"directions" example:"18"`
}

// UniversityStatsResponse carries per-university aggregates for the
// owner dashboard.
type UniversityStatsResponse struct {
	UniversityID      int64   `json:"universityId" example:"1"`
	UniversityName    string  `json:"universityName" example:"Nukus State University"`
	Students          int64   `json:"students" example:"430"`
	Directions        int64   `json:"directions" example:"7"`
	Subjects          int64   `json:"subjects" example:"52"`
	Literatures       int64   `json:"literatures" example:"310"`
	PercentAccessible float64 `json:"percentAccessible" example:"85.71"`
}
