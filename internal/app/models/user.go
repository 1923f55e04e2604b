package models

// User is an unprivileged self-service account
type User struct {
	ID           int64  `json:"id" db:"id"`
	Email        string `json:"email" db:"email"`
	Password     string `json:"-" db:"password"` // hashed, excluded from JSON
	FirstName    string `json:"firstName" db:"first_name"`
	LastName     string `json:"lastName" db:"last_name"`
	IsActive     bool   `json:"isActive" db:"is_active"`
	UniversityID *int64 `json:"universityId,omitempty" db:"university_id"`
}
