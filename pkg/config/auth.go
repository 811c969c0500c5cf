package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// AuthConfig holds session, password and federated login settings
type AuthConfig struct {
	// Token signing
	JWTSecret string        `env:"JWT_SECRET,required,notEmpty"`
	TokenTTL  time.Duration `env:"JWT_TTL" envDefault:"0s"`

	// Session cookie
	CookieName   string `env:"AUTH_COOKIE_NAME" envDefault:"access_token"`
	CookieDomain string `env:"AUTH_COOKIE_DOMAIN"`

	// Password hashing
	BcryptCost int `env:"BCRYPT_COST" envDefault:"10"`

	// Failed login throttling
	MaxFailedLogins      int           `env:"AUTH_MAX_FAILED_LOGINS" envDefault:"5"`
	MaxFailedLoginsPerIP int           `env:"AUTH_MAX_FAILED_LOGINS_PER_IP" envDefault:"20"`
	LockoutWindow        time.Duration `env:"AUTH_LOCKOUT_WINDOW" envDefault:"15m"`

	// Federated login verification, skipped when the project id is empty
	FirebaseProjectID string `env:"FIREBASE_PROJECT_ID"`

	// Service account JSON; ID token verification works without one
	FirebaseCredentialsFile string `env:"FIREBASE_CREDENTIALS_FILE"`
}

// LoadAuthConfig loads auth configuration from environment variables
func LoadAuthConfig() (*AuthConfig, error) {
	cfg, err := env.ParseAs[AuthConfig]()
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// VerifiesFederatedIdentity reports whether GoogleLogin must present a verified ID token
func (c *AuthConfig) VerifiesFederatedIdentity() bool {
	return c.FirebaseProjectID != ""
}
