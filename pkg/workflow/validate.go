package workflow

import "strings"

// ValidateEmail is a very basic syntactic check, deliberately loose: empty
// or shorter than 10 characters fails, anything without a literal "@"
// fails, everything else passes. It is not an RFC-compliant validator and
// must not be strengthened without treating that as a behavior change.
func ValidateEmail(email string) bool {
	if email == "" || len(email) < 10 {
		return false
	}
	return strings.Contains(email, "@")
}
