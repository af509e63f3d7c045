package models

import "time"

// Product defines an item category based on the 'products' table.
// ForCourse == "" means the product applies to every course and
// Year == 0 means it applies to every year. Branch is informational
// and is not consulted by the applicability resolver.
type Product struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Price       float64   `json:"price" db:"price"`
	Category    Category  `json:"category" db:"category"`
	Stock       int       `json:"stock" db:"stock"`
	ImageURL    string    `json:"imageUrl,omitempty" db:"image_url"`
	ForCourse   string    `json:"forCourse" db:"for_course"`
	Branch      string    `json:"branch" db:"branch"`
	Year        int       `json:"year" db:"year"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}
