package database

import "database/sql"

// nullableString converts sql.NullString to *string.
func nullableString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}
