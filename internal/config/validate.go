package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if strings.TrimSpace(c.SQLite.Path) == "" {
		return fmt.Errorf("sqlite.path is required")
	}

	if err := validateURL(c.Dictionary.BaseURL); err != nil {
		return fmt.Errorf("dictionary.base_url: %w", err)
	}

	if c.Translate.Enabled {
		if err := validateURL(c.Translate.BaseURL); err != nil {
			return fmt.Errorf("translate.base_url: %w", err)
		}
	}

	if err := c.Reminder.validate(); err != nil {
		return fmt.Errorf("reminder: %w", err)
	}

	if c.Review.EnrichConcurrency <= 0 {
		return fmt.Errorf("review.enrich_concurrency must be > 0 (got %d)", c.Review.EnrichConcurrency)
	}
	if c.Review.EnrichBatchSize <= 0 {
		return fmt.Errorf("review.enrich_batch_size must be > 0 (got %d)", c.Review.EnrichBatchSize)
	}

	if c.RateLimit.Enabled && (c.RateLimit.PerMinute <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("rate_limit: per_minute and burst must be > 0 (got %d, %d)", c.RateLimit.PerMinute, c.RateLimit.Burst)
	}

	return nil
}

func (r *ReminderConfig) validate() error {
	loc, err := time.LoadLocation(r.Timezone)
	if err != nil {
		return fmt.Errorf("timezone %q: %w", r.Timezone, err)
	}
	r.Location = loc
	return nil
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("must be an absolute http(s) URL (got %q)", raw)
	}
	return nil
}
