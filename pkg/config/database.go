package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
)

// DatabaseConfig holds the credential store connection and pool settings
type DatabaseConfig struct {
	// DATABASE_URL, when present, replaces the discrete connection fields
	URL      string `env:"DATABASE_URL"`
	Username string `env:"DB_USERNAME" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD" envDefault:"postgres"`
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	Name     string `env:"DB_NAME" envDefault:"quillpost"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
	TimeZone string `env:"DB_TIMEZONE" envDefault:"UTC"`

	// Pool
	MaxIdleConns   int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	MaxOpenConns   int           `env:"DB_MAX_OPEN_CONNS" envDefault:"20"`
	ConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"10s"`
	MaxIdleTime    time.Duration `env:"DB_MAX_IDLE_TIME" envDefault:"30m"`
	MaxLifetime    time.Duration `env:"DB_MAX_LIFETIME" envDefault:"1h"`
	PrepareStmt    bool          `env:"DB_PREPARE_STMT" envDefault:"true"`

	// Schema
	MigrateOnBoot  bool   `env:"DB_MIGRATE_ON_BOOT" envDefault:"true"`
	MigrationsPath string `env:"DB_MIGRATIONS_PATH" envDefault:"migrations"`
}

// LoadDatabaseConfig loads database configuration from environment variables
func LoadDatabaseConfig() (*DatabaseConfig, error) {
	cfg, err := env.ParseAs[DatabaseConfig]()
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DSN returns the PostgreSQL connection string
func (c *DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.Username, c.Password),
		Host:   c.Host + ":" + c.Port,
		Path:   c.Name,
	}
	q := u.Query()
	q.Set("sslmode", c.SSLMode)
	q.Set("TimeZone", c.TimeZone)
	u.RawQuery = q.Encode()
	return u.String()
}

// Target describes the database for logs without the password
func (c *DatabaseConfig) Target() string {
	if c.URL != "" {
		if u, err := url.Parse(c.URL); err == nil {
			return u.Host + u.Path
		}
		return "DATABASE_URL"
	}
	return fmt.Sprintf("%s:%s/%s", c.Host, c.Port, c.Name)
}
