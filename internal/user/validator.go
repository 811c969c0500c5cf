package user

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 72 // bcrypt ignores anything past 72 bytes
	maxNameLength     = 100
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// NewUserValidator creates a new user validator
func NewUserValidator() UserValidator {
	return &userValidator{}
}

// ValidateRegistration validates user registration parameters
func (v *userValidator) ValidateRegistration(name, email, password string) error {
	if !v.ValidateName(name) {
		return ErrInvalidName
	}

	if !v.ValidateEmail(email) {
		return ErrInvalidEmail
	}

	if !v.ValidatePassword(password) {
		return ErrWeakPassword
	}

	return nil
}

// ValidateEmail validates an email address
func (v *userValidator) ValidateEmail(email string) bool {
	// Email cannot be empty
	if email == "" {
		return false
	}

	// Normalize before validation
	email = NormalizeEmail(email)

	return emailPattern.MatchString(email)
}

// ValidateName validates a display name
func (v *userValidator) ValidateName(name string) bool {
	name = strings.TrimSpace(name)
	return name != "" && utf8.RuneCountInString(name) <= maxNameLength
}

// ValidatePassword checks the password length bounds
func (v *userValidator) ValidatePassword(password string) bool {
	return utf8.RuneCountInString(password) >= minPasswordLength && len(password) <= maxPasswordLength
}

// NormalizeEmail lower-cases and trims an email so lookups match stored records
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
