package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/heartmarshall/mnflash-backend/internal/domain"
)

// MaxDailyGoal caps the configured default goal.
const MaxDailyGoal = 500

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.SRS.validate(); err != nil {
		return fmt.Errorf("srs: %w", err)
	}

	if c.RateLimit.RequestsPerMinute < 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be >= 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}
	if c.RateLimit.CleanupInterval <= 0 {
		return fmt.Errorf("rate_limit.cleanup_interval must be > 0 (got %v)", c.RateLimit.CleanupInterval)
	}

	return nil
}

func (s *SRSConfig) validate() error {
	if s.DailyGoal <= 0 || s.DailyGoal > MaxDailyGoal {
		return fmt.Errorf("daily_goal must be in 1..%d (got %d)", MaxDailyGoal, s.DailyGoal)
	}

	scheme := domain.RewardScheme(strings.ToLower(strings.TrimSpace(s.RewardScheme)))
	if !scheme.IsValid() {
		return fmt.Errorf("reward_scheme must be %q or %q (got %q)", domain.RewardSchemeXP, domain.RewardSchemeSigned, s.RewardScheme)
	}
	s.RewardScheme = string(scheme)

	if s.StaleSessionAfter <= 0 {
		return fmt.Errorf("stale_session_after must be > 0 (got %v)", s.StaleSessionAfter)
	}

	if s.SweepInterval < 0 {
		return fmt.Errorf("sweep_interval must be >= 0 (got %v)", s.SweepInterval)
	}

	loc, err := time.LoadLocation(strings.TrimSpace(s.TimezoneRaw))
	if err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	s.Location = loc

	return nil
}

// Domain converts the settings into the planner configuration.
func (s SRSConfig) Domain() domain.SRSConfig {
	return domain.SRSConfig{
		DefaultDailyGoal: s.DailyGoal,
		Location:         s.Location,
		RewardScheme:     domain.RewardScheme(s.RewardScheme),
	}
}
