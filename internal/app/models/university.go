package models

// University is the tenant root; every scoped entity carries its id
type University struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description *string `json:"description,omitempty" db:"description"`
	Address     *string `json:"address,omitempty" db:"address"`
	Phone       *string `json:"phone,omitempty" db:"phone"`
	Email       *string `json:"email,omitempty" db:"email"`
	Location    *string `json:"location,omitempty" db:"location"`
}
