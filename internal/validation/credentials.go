package validation

import (
	"net/mail"
	"strings"
)

const MinPasswordLen = 8

func ValidateEmail(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return invalidf("email is required")
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return invalidf("'%s' is not a valid email address", s)
	}
	return nil
}

func ValidatePassword(s string) error {
	if len(s) < MinPasswordLen {
		return invalidf("password must be at least %d characters", MinPasswordLen)
	}
	return nil
}
