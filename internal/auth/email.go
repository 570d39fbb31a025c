package auth

import "regexp"

// emailPattern requires local@domain.tld with a TLD of at least two letters.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidEmail reports whether email has an acceptable shape.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
