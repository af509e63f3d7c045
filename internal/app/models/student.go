package models

import "time"

// ItemMap tracks per-item fulfillment for a student. Keys are derived
// product item keys; a missing key means "not yet tracked", not false.
type ItemMap map[string]bool

// Student defines the student model based on the 'students' table
type Student struct {
	ID        int64     `json:"id" db:"id"`
	StudentID string    `json:"studentId" db:"student_id"`
	Name      string    `json:"name" db:"name"`
	Email     *string   `json:"email,omitempty" db:"email"`
	Password  *string   `json:"-" db:"password"` // bcrypt hash, never serialized
	Course    string    `json:"course" db:"course"`
	Year      int       `json:"year" db:"year"`
	Branch    string    `json:"branch" db:"branch"`
	Paid      bool      `json:"paid" db:"paid"`
	Items     ItemMap   `json:"items" db:"items"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	Orders    []*Order  `json:"orders,omitempty"` // Legacy relation, read-only, no db tag
}
