package models

// Admin represents a privileged account (superadmin or owner).
// A superadmin is bound to exactly one university; an owner has a nil
// university id and acts across all of them.
type Admin struct {
	ID           int64  `json:"id" db:"id"`
	Email        string `json:"email" db:"email"`
	Password     string `json:"-" db:"password"` // hashed, excluded from JSON
	Role         Role   `json:"role" db:"role"`
	UniversityID *int64 `json:"universityId,omitempty" db:"university_id"`
}
