package auth

import (
	"time"

	"payfee/internal/config"
)

const DefaultTokenTTL = 12 * time.Hour

// Config holds the single admin account and the token signing secret.
type Config struct {
	Username     string
	PasswordHash string
	Secret       string
	TokenTTL     time.Duration
}

// LoadConfig reads the admin account and signing secret. JWT_SECRET has no
// default; NewService refuses an empty secret.
func LoadConfig() Config {
	ttl, err := time.ParseDuration(config.GetEnv("JWT_TTL", "12h"))
	if err != nil || ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return Config{
		Username:     config.GetEnv("ADMIN_USERNAME", "admin"),
		PasswordHash: config.GetEnv("ADMIN_PASSWORD_HASH", ""),
		Secret:       config.GetEnv("JWT_SECRET", ""),
		TokenTTL:     ttl,
	}
}
