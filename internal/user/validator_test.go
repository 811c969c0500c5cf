package user

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestValidateRegistration(t *testing.T) {
	v := NewUserValidator()

	tests := []struct {
		name     string
		userName string
		email    string
		password string
		want     error
	}{
		{"valid", "Ada Lovelace", "Ada@Example.com ", "correct horse", nil},
		{"blank name", "   ", "ada@example.com", "correct horse", ErrInvalidName},
		{"long name", strings.Repeat("a", 101), "ada@example.com", "correct horse", ErrInvalidName},
		{"bad email", "Ada", "ada-at-example", "correct horse", ErrInvalidEmail},
		{"empty email", "Ada", "", "correct horse", ErrInvalidEmail},
		{"short password", "Ada", "ada@example.com", "short", ErrWeakPassword},
		{"password past bcrypt limit", "Ada", "ada@example.com", strings.Repeat("p", 73), ErrWeakPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateRegistration(tt.userName, tt.email, tt.password)
			assert.ErrorIs(t, err, tt.want)
			if tt.want == nil {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ada@example.com", NormalizeEmail("  ADA@Example.COM "))
}

func TestTranslateLookupError(t *testing.T) {
	assert.NoError(t, translateLookupError(nil))
	assert.ErrorIs(t, translateLookupError(gorm.ErrRecordNotFound), ErrUserNotFound)
	assert.ErrorIs(t, translateLookupError(fmt.Errorf("query: %w", gorm.ErrRecordNotFound)), ErrUserNotFound)

	err := translateLookupError(errors.New("connection refused"))
	assert.ErrorIs(t, err, ErrDatabaseError)
	assert.Contains(t, err.Error(), "connection refused")
}
