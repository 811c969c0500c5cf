package utils

import (
	"crypto/rand"
	"encoding/base64"
)

// randomToken returns n bytes from crypto/rand encoded as unpadded URL-safe base64
func randomToken(n int) string {
	buf := make([]byte, n)
	// crypto/rand.Read never returns an error on supported platforms
	_, _ = rand.Read(buf)
	return base64.RawURLEncoding.EncodeToString(buf)
}

// GenerateID returns a 256-bit random secret (43 characters).
// Federated accounts get one as a password nobody ever learns.
func GenerateID() string {
	return randomToken(32)
}

// GenerateShortID returns a 128-bit random identifier (22 characters) used to
// correlate log lines
func GenerateShortID() string {
	return randomToken(16)
}
