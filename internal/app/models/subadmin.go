package models

import "time"

// SubAdmin defines a delegated admin account based on the 'subadmins'
// table. Name doubles as the login identifier.
type SubAdmin struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Password  string    `json:"-" db:"password"` // bcrypt hash, never serialized
	Role      Role      `json:"role" db:"role"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
