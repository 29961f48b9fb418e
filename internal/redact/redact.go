// Package redact masks personal data in strings before they are logged.
// Student email addresses are the only personal data rollcall stores besides
// names, and the audit log is the one place they would otherwise leak into.
package redact

import "regexp"

// EmailPlaceholder replaces every email address.
const EmailPlaceholder = "[REDACTED_EMAIL]"

var emailRegex = regexp.MustCompile(`[\w.%+-]+@[\w.-]+\.\w{2,}`)

// String replaces every email address in input with EmailPlaceholder.
func String(input string) string {
	if input == "" {
		return input
	}
	return emailRegex.ReplaceAllString(input, EmailPlaceholder)
}
