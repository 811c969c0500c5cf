package jwt

import (
	"strings"
	"testing"
	"time"

	"quillpost-api/internal/models"

	gojwt "github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *models.User {
	return &models.User{
		ID:     "7c1a2b3c-0000-4000-8000-000000000001",
		Name:   "Ada",
		Email:  "ada@example.com",
		Avatar: "https://cdn.example.com/ada.png",
	}
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService("", "quillpost", 0)
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestGenerateToken_RoundTrip(t *testing.T) {
	svc, err := NewJWTService("secret", "quillpost", 0)
	require.NoError(t, err)

	token, err := svc.GenerateToken(testUser())
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, "7c1a2b3c-0000-4000-8000-000000000001", claims.UserID)
	assert.Equal(t, "Ada", claims.Name)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "https://cdn.example.com/ada.png", claims.Avatar)
	assert.Equal(t, models.DefaultRole, claims.Role)
	assert.Nil(t, claims.ExpiresAt)
}

func TestGenerateToken_KeepsExplicitRole(t *testing.T) {
	svc, err := NewJWTService("secret", "", 0)
	require.NoError(t, err)

	u := testUser()
	u.Role = "admin"
	token, err := svc.GenerateToken(u)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateToken_Expired(t *testing.T) {
	svc, err := NewJWTService("secret", "quillpost", time.Hour)
	require.NoError(t, err)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := svc.GenerateToken(testUser())
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_RejectsTamperingAndForeignSecret(t *testing.T) {
	svc, err := NewJWTService("secret", "quillpost", 0)
	require.NoError(t, err)
	other, err := NewJWTService("another-secret", "quillpost", 0)
	require.NoError(t, err)

	token, err := svc.GenerateToken(testUser())
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]
	_, err = svc.ValidateToken(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_RejectsNoneAlgorithmAndWrongIssuer(t *testing.T) {
	svc, err := NewJWTService("secret", "quillpost", 0)
	require.NoError(t, err)

	unsigned := gojwt.NewWithClaims(gojwt.SigningMethodNone, Claims{UserID: "x"})
	raw, err := unsigned.SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = svc.ValidateToken(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)

	foreign, err := NewJWTService("secret", "someone-else", 0)
	require.NoError(t, err)
	token, err := foreign.GenerateToken(testUser())
	require.NoError(t, err)
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
