package models

import "time"

// News is a university-scoped announcement with optional image and tags
type News struct {
	ID           int64     `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	Image        *string   `json:"image,omitempty" db:"image"`
	Date         time.Time `json:"date" db:"date"`
	UniversityID int64     `json:"universityId" db:"university_id"`
	Tags         []Tag     `json:"tags"` // news_tags join rows
}

// Tag is a globally unique, lower-cased label attached to news
type Tag struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
