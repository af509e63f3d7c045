package helpers

import "database/sql"

// GetContentNullString converts a string value to sql.NullString.
// Empty strings become NULL so that sparse unique indexes skip them.
func GetContentNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
