package util

import "regexp"

// Signup validation predicates. These were previously inline patterns in
// the handlers; naming them keeps the character classes and length rules in
// one place and directly testable.

// usernamePattern: a letter followed by 2 to 19 alphanumerics, so usernames
// are 3-20 characters and cannot start with a digit.
var usernamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]{2,19}$`)

// passwordSymbols is the fixed set of symbols accepted (and required) in
// passwords.
const passwordSymbols = `!@#$%^&*()_+-=[]{};':"\|,.<>/?~` + "`"

// IsValidUsername reports whether username starts with a letter and
// continues with 2-19 alphanumeric characters.
func IsValidUsername(username string) bool {
	return usernamePattern.MatchString(username)
}

// IsValidPassword reports whether password is at least 8 characters long
// and contains at least one uppercase letter, one lowercase letter, one
// digit, and one symbol from the fixed set.
func IsValidPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			for _, s := range passwordSymbols {
				if r == s {
					hasSymbol = true
					break
				}
			}
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}
