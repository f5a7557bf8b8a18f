package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// EnvConfig lists the environment variables the server reads. It is
// pre-filled from the current Config, and cleanenv only overwrites fields
// whose variable is present, so BLOG_API_PREFIX="" does clear the prefix.
type EnvConfig struct {
	EndpointAddrHTTP      string        `env:"BLOG_ADDR" env-description:"HTTP bind address"`
	APIPrefix             string        `env:"BLOG_API_PREFIX" env-description:"path prefix of the API routes"`
	DatabaseDriver        string        `env:"BLOG_DB_DRIVER" env-description:"postgres, sqlite or memory"`
	DatabaseDSN           string        `env:"BLOG_DATABASE_DSN" env-description:"database DSN"`
	SecretKey             string        `env:"BLOG_SECRET_KEY" env-description:"JWT signing secret"`
	TokenValidityDuration time.Duration `env:"BLOG_TOKEN_VALIDITY" env-description:"token lifetime, e.g. 24h; 0 disables expiry"`
	BcryptCost            int           `env:"BLOG_BCRYPT_COST" env-description:"bcrypt work factor"`
	CORSAllowOrigins      string        `env:"BLOG_CORS_ORIGINS" env-description:"comma separated allowed origins"`
	ShutdownTimeout       time.Duration `env:"BLOG_SHUTDOWN_TIMEOUT" env-description:"graceful shutdown timeout, e.g. 10s"`
}

// parseEnv overlays the environment variables that are set onto config.
// Values that fail to parse cause a panic, like the other loaders.
func parseEnv(config *Config) {
	c := newEnvConfig(config)
	if err := cleanenv.ReadEnv(c); err != nil {
		panic(fmt.Errorf("read env: %w", err))
	}
	c.apply(config)
}

func newEnvConfig(config *Config) *EnvConfig {
	return &EnvConfig{
		EndpointAddrHTTP:      config.EndpointAddrHTTP,
		APIPrefix:             config.APIPrefix,
		DatabaseDriver:        config.DatabaseDriver,
		DatabaseDSN:           config.DatabaseDSN,
		SecretKey:             config.SecretKey,
		TokenValidityDuration: config.TokenValidityDuration,
		BcryptCost:            config.BcryptCost,
		CORSAllowOrigins:      config.CORSAllowOrigins,
		ShutdownTimeout:       config.ShutdownTimeout,
	}
}

func (c *EnvConfig) apply(config *Config) {
	config.EndpointAddrHTTP = c.EndpointAddrHTTP
	config.APIPrefix = c.APIPrefix
	config.DatabaseDriver = c.DatabaseDriver
	config.DatabaseDSN = c.DatabaseDSN
	config.SecretKey = c.SecretKey
	config.TokenValidityDuration = c.TokenValidityDuration
	config.BcryptCost = c.BcryptCost
	config.CORSAllowOrigins = c.CORSAllowOrigins
	config.ShutdownTimeout = c.ShutdownTimeout
}
