package utils

import "regexp"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)

// IsValidEmail requires a dot-bearing domain, so "a@b" is rejected while
// "a@b.com" passes.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsValidPhone accepts a phone number with at least 10 digits. Spaces,
// dashes, dots, parentheses and a plus sign are permitted punctuation;
// anything else fails the check.
func IsValidPhone(phone string) bool {
	digits := 0
	for _, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ' ' || r == '-' || r == '.' || r == '(' || r == ')' || r == '+':
		default:
			return false
		}
	}
	return digits >= 10
}
