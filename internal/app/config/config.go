// Package config defines the per-service configuration read at startup.
package config

import (
	"net"
	"time"

	platformconfig "ums_backend/internal/platform/config"
	"ums_backend/internal/platform/db"
	"ums_backend/internal/platform/logger"
	"ums_backend/internal/platform/redis"
)

// AuthService is the configuration of cmd/auth-service.
type AuthService struct {
	Host            string        `env:"AUTH_HOST"             envDefault:"0.0.0.0"`
	Port            string        `env:"AUTH_PORT"             envDefault:"5000"`
	CredentialsFile string        `env:"AUTH_CREDENTIALS_FILE"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"      envDefault:"10s"`
	Log             logger.Config
}

// Addr returns the listen address.
func (c AuthService) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// UserService is the configuration of cmd/user-service and cmd/seed.
type UserService struct {
	Host            string        `env:"USER_HOST"        envDefault:"0.0.0.0"`
	Port            string        `env:"USER_PORT"        envDefault:"5001"`
	CacheTTL        time.Duration `env:"USERS_CACHE_TTL"  envDefault:"0s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	DB              db.Config
	Redis           redis.Config
	Log             logger.Config
}

// Addr returns the listen address.
func (c UserService) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// CacheEnabled reports whether the users listing should go through Redis.
func (c UserService) CacheEnabled() bool {
	return c.CacheTTL > 0 && c.Redis.Host != ""
}

// LoadAuthService reads the auth-service configuration from the environment.
func LoadAuthService() (AuthService, error) {
	var cfg AuthService
	if err := platformconfig.ParseEnv(&cfg); err != nil {
		return AuthService{}, err
	}
	return cfg, nil
}

// LoadUserService reads the user-service configuration from the environment.
func LoadUserService() (UserService, error) {
	var cfg UserService
	if err := platformconfig.ParseEnv(&cfg); err != nil {
		return UserService{}, err
	}
	return cfg, nil
}
