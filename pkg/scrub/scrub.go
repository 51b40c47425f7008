// Package scrub redacts PII-like tokens from outbound text.
//
// Every summary and every model-polished email passes through Text before
// leaving the pipeline. The patterns are intentionally minimal: email-like
// tokens and phone-like digit runs.
package scrub

import "regexp"

const (
	// RedactedEmail replaces email-like tokens.
	RedactedEmail = "[REDACTED_EMAIL]"
	// RedactedPhone replaces phone-like digit runs (7+ digits, optional separators).
	RedactedPhone = "[REDACTED_PHONE]"
)

var (
	emailPattern = regexp.MustCompile(`\b[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}\b`)
	phonePattern = regexp.MustCompile(`\+?\d[\d\-\s]{7,}\d`)
)

// Text replaces email-like and phone-like substrings with redaction markers.
func Text(s string) string {
	s = emailPattern.ReplaceAllString(s, RedactedEmail)
	s = phonePattern.ReplaceAllString(s, RedactedPhone)
	return s
}
