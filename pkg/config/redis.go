package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"quillpost-api/pkg/redis"

	"github.com/caarlos0/env/v11"
)

// RedisConfig backs the failed-login limiter. REDIS_URL wins over the discrete fields.
type RedisConfig struct {
	URL      string `env:"REDIS_URL"`
	Host     string `env:"REDIS_HOST" envDefault:"localhost"`
	Port     int    `env:"REDIS_PORT" envDefault:"6379"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
	Username string `env:"REDIS_USERNAME"`
	Password string `env:"REDIS_PASSWORD"`

	PoolSize            int           `env:"REDIS_POOL_SIZE" envDefault:"20"`
	DialTimeout         time.Duration `env:"REDIS_DIAL_TIMEOUT" envDefault:"2s"`
	ReadTimeout         time.Duration `env:"REDIS_READ_TIMEOUT" envDefault:"1s"`
	WriteTimeout        time.Duration `env:"REDIS_WRITE_TIMEOUT" envDefault:"1s"`
	HealthCheckInterval time.Duration `env:"REDIS_HEALTH_INTERVAL" envDefault:"30s"`
}

// LoadRedisConfig loads Redis configuration from environment variables
func LoadRedisConfig() (*RedisConfig, error) {
	cfg, err := env.ParseAs[RedisConfig]()
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ClientConfig converts the settings into the client package's options
func (c *RedisConfig) ClientConfig() *redis.Config {
	return &redis.Config{
		Addr:                net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Username:            c.Username,
		Password:            c.Password,
		DB:                  c.DB,
		PoolSize:            c.PoolSize,
		DialTimeout:         c.DialTimeout,
		ReadTimeout:         c.ReadTimeout,
		WriteTimeout:        c.WriteTimeout,
		HealthCheckInterval: c.HealthCheckInterval,
	}
}

// NewClient builds a client from REDIS_URL when set, otherwise from the discrete fields
func (c *RedisConfig) NewClient() (*redis.Client, error) {
	if c.URL == "" {
		return redis.New(c.ClientConfig()), nil
	}
	client, err := redis.NewFromURL(c.URL)
	if err != nil {
		return nil, fmt.Errorf("REDIS_URL: %w", err)
	}
	return client, nil
}
