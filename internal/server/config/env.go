package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays Config fields from environment variables. A variable
// that is unset or empty leaves the current value alone. Values typically
// arrive from a .env file loaded by the entrypoint.
//
//	ADDRESS                 HTTP bind address (e.g. ":3001")
//	DATABASE_DSN            PostgreSQL DSN
//	JWT_SECRET              HMAC secret for session tokens
//	TOKEN_VALIDITY_MINUTES  session token lifetime, minutes
func parseEnv(config *Config) {
	if v := os.Getenv("ADDRESS"); v != "" {
		config.EndpointAddr = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("TOKEN_VALIDITY_MINUTES"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil && minutes > 0 {
			config.TokenValidityDuration = time.Duration(minutes) * time.Minute
		}
	}
}
