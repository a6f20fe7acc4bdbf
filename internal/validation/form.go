// Package validation holds boundary-level parsing of request fields.
package validation

import "strings"

// BoolToken parses a form boolean against the documented accepted
// token set: "true", "1" and "yes", case-insensitive. Every other
// value, including absence, is false.
func BoolToken(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true
	}
	return false
}
