package config

import (
	"errors"
	"fmt"
)

const minSecretLength = 32

// Validate checks invariants that cleanenv tags cannot express.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}

	if len(c.Auth.AccessSecret) < minSecretLength {
		return fmt.Errorf("auth.access_secret must be at least %d characters", minSecretLength)
	}
	if len(c.Auth.RefreshSecret) < minSecretLength {
		return fmt.Errorf("auth.refresh_secret must be at least %d characters", minSecretLength)
	}
	if c.Auth.AccessSecret == c.Auth.RefreshSecret {
		return errors.New("auth.access_secret and auth.refresh_secret must differ")
	}

	if c.Auth.AccessTokenTTL <= 0 {
		return errors.New("auth.access_token_ttl must be positive")
	}
	if c.Auth.RefreshTokenTTL <= c.Auth.AccessTokenTTL {
		return errors.New("auth.refresh_token_ttl must exceed auth.access_token_ttl")
	}

	if c.Auth.BcryptCost < 10 || c.Auth.BcryptCost > 20 {
		return fmt.Errorf("auth.bcrypt_cost %d out of range [10,20]", c.Auth.BcryptCost)
	}

	if c.Upload.MaxFileSize <= 0 {
		return errors.New("upload.max_file_size must be positive")
	}
	if c.Upload.MaxFiles < 1 {
		return errors.New("upload.max_files must be at least 1")
	}

	if c.RateLimit.Enabled && (c.RateLimit.Rate < 1 || c.RateLimit.Window <= 0) {
		return errors.New("rate_limit.rate and rate_limit.window must be positive")
	}

	return nil
}
