package domain

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	MinNameLength     = 2
	MinPasswordLength = 6
	MaxPostLength     = 500
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldRule validates a single form value and returns an error message,
// or the empty string when the value is acceptable. Rules are pure.
type FieldRule func(value string) string

// FieldRules enumerates every validated form field by name.
var FieldRules = map[string]FieldRule{
	"name":     ValidateName,
	"email":    ValidateEmail,
	"password": ValidatePassword,
}

func ValidateName(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "Name is required"
	}
	if utf8.RuneCountInString(value) < MinNameLength {
		return fmt.Sprintf("Name must be at least %d characters", MinNameLength)
	}
	return ""
}

func ValidateEmail(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "Email is required"
	}
	if !emailPattern.MatchString(value) {
		return "Please enter a valid email address"
	}
	return ""
}

// ValidatePassword checks the raw value: passwords are compared exactly,
// so surrounding whitespace is significant and never trimmed.
func ValidatePassword(value string) string {
	if value == "" {
		return "Password is required"
	}
	if utf8.RuneCountInString(value) < MinPasswordLength {
		return fmt.Sprintf("Password must be at least %d characters", MinPasswordLength)
	}
	return ""
}

// ValidatePostContent checks trimmed post content against the length bounds.
func ValidatePostContent(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "Please enter some content"
	}
	if utf8.RuneCountInString(value) > MaxPostLength {
		return "Post content is too long"
	}
	return ""
}
