package config

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	TimeZone          string `envconfig:"ANTICOAG_TIME_ZONE" default:"UTC"`
	RecentWindowDays  int    `envconfig:"ANTICOAG_RECENT_WINDOW_DAYS" default:"7"`
	LatestMissedLimit int    `envconfig:"ANTICOAG_LATEST_MISSED_LIMIT" default:"10"`
	CalendarCacheSize int    `envconfig:"ANTICOAG_CALENDAR_CACHE_SIZE" default:"1024"`
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.RecentWindowDays < 0 {
		return fmt.Errorf("recent window days must not be negative, got %d", c.RecentWindowDays)
	}
	if c.LatestMissedLimit < 0 {
		return fmt.Errorf("latest missed limit must not be negative, got %d", c.LatestMissedLimit)
	}
	if c.CalendarCacheSize <= 0 {
		return fmt.Errorf("calendar cache size must be positive, got %d", c.CalendarCacheSize)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location is the time zone in which "today" is evaluated.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid time zone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}
