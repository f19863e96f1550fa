package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Search.validate(); err != nil {
		return fmt.Errorf("search: %w", err)
	}

	if c.RateLimit.SearchPerMinute < 0 {
		return fmt.Errorf("rate_limit.search_per_minute must be >= 0 (got %d)", c.RateLimit.SearchPerMinute)
	}

	return nil
}

func (s *SearchConfig) validate() error {
	if s.MaxLimit <= 0 {
		return fmt.Errorf("max_limit must be > 0 (got %d)", s.MaxLimit)
	}
	if s.DefaultLimit <= 0 || s.DefaultLimit > s.MaxLimit {
		return fmt.Errorf("default_limit must be in [1, %d] (got %d)", s.MaxLimit, s.DefaultLimit)
	}
	if s.ReindexBatchSize <= 0 {
		return fmt.Errorf("reindex_batch_size must be > 0 (got %d)", s.ReindexBatchSize)
	}
	if s.DeletedRetentionDays < 0 {
		return fmt.Errorf("deleted_retention_days must be >= 0 (got %d)", s.DeletedRetentionDays)
	}
	return nil
}
