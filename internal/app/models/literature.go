package models

// Language is the publication language of a literature record
type Language string

const (
	LanguageUzbek      Language = "uzbek"
	LanguageRussian    Language = "russian"
	LanguageKarakalpak Language = "karakalpak"
	LanguageEnglish    Language = "english"
)

// IsValid reports whether the language is one of the known values.
func (l Language) IsValid() bool {
	switch l {
	case LanguageUzbek, LanguageRussian, LanguageKarakalpak, LanguageEnglish:
		return true
	}
	return false
}

// FontType is the script the literature is printed in
type FontType string

const (
	FontKirill  FontType = "kirill"
	FontLatin   FontType = "latin"
	FontEnglish FontType = "english"
)

// IsValid reports whether the font type is one of the known values.
func (f FontType) IsValid() bool {
	switch f {
	case FontKirill, FontLatin, FontEnglish:
		return true
	}
	return false
}

// Condition marks whether a record is still current
type Condition string

const (
	ConditionActual   Condition = "actual"
	ConditionUnactual Condition = "unactual"
)

// IsValid reports whether the condition is one of the known values.
func (c Condition) IsValid() bool {
	return c == ConditionActual || c == ConditionUnactual
}

// UsageStatus marks whether a record is in active use
type UsageStatus string

const (
	UsageInUse  UsageStatus = "use"
	UsageUnused UsageStatus = "unused"
)

// IsValid reports whether the usage status is one of the known values.
func (u UsageStatus) IsValid() bool {
	return u == UsageInUse || u == UsageUnused
}

// Literature is a bibliographic record attached to a subject.
// A non-nil FilePath means an electronic copy is stored and the record
// counts as fully available regardless of printed copies.
type Literature struct {
	ID           int64       `json:"id" db:"id"`
	Title        string      `json:"title" db:"title"`
	Kind         string      `json:"kind" db:"kind"`
	Author       *string     `json:"author,omitempty" db:"author"`
	Publisher    *string     `json:"publisher,omitempty" db:"publisher"`
	Language     Language    `json:"language" db:"language"`
	FontType     FontType    `json:"fontType" db:"font_type"`
	Year         int         `json:"year" db:"year"`
	PrintedCount *int        `json:"printedCount,omitempty" db:"printed_count"`
	Condition    Condition   `json:"condition" db:"condition"`
	UsageStatus  UsageStatus `json:"usageStatus" db:"usage_status"`
	Image        *string     `json:"image,omitempty" db:"image"`
	FilePath     *string     `json:"filePath,omitempty" db:"file_path"`
	SubjectID    int64       `json:"subjectId" db:"subject_id"`
	UniversityID int64       `json:"universityId" db:"university_id"`
}

// HasFile reports whether an electronic copy is stored.
func (l *Literature) HasFile() bool {
	return l.FilePath != nil && *l.FilePath != ""
}
