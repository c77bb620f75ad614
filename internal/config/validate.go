package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Server.RateLimitPerMinute < 0 {
		return fmt.Errorf("server.rate_limit_per_minute must be >= 0 (got %d)", c.Server.RateLimitPerMinute)
	}

	if err := c.Links.validate(); err != nil {
		return fmt.Errorf("links: %w", err)
	}

	return nil
}

func (l *LinksConfig) validate() error {
	if l.MaxPageSize <= 0 {
		return fmt.Errorf("max_page_size must be > 0 (got %d)", l.MaxPageSize)
	}
	if l.DefaultPageSize < 0 {
		return fmt.Errorf("default_page_size must be >= 0 (got %d)", l.DefaultPageSize)
	}
	if l.DefaultPageSize > l.MaxPageSize {
		return fmt.Errorf("default_page_size (%d) must not exceed max_page_size (%d)", l.DefaultPageSize, l.MaxPageSize)
	}
	return nil
}
