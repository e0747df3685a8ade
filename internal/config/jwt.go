// Package config - jwt.go provides session token settings.
package config

import "fmt"

// DefaultJWTExpirationHours is the session token lifetime when none is configured.
const DefaultJWTExpirationHours = 24

// minSecretLength is the shortest accepted HMAC signing secret.
const minSecretLength = 16

// JWTConfig holds configuration for session token signing and validation.
type JWTConfig struct {
	Secret          string `mapstructure:"secret"`
	ExpirationHours int    `mapstructure:"expiration_hours"`
}

// Validate checks that tokens can be signed with this configuration.
func (c *JWTConfig) Validate() error {
	if c.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required but not set")
	}
	if len(c.Secret) < minSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d characters", minSecretLength)
	}
	if c.ExpirationHours < 1 {
		return fmt.Errorf("JWT_EXPIRATION_HOURS must be at least 1 hour, got: %d", c.ExpirationHours)
	}
	return nil
}
