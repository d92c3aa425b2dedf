package controller

import "strings"

// isUniqueViolation detects Postgres code 23505 by substring so it
// stays portable between lib/pq and wrapped pgx errors.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint") ||
		strings.Contains(s, "23505")
}
