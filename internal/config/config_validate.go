// VibraGuide - Linear Guide Vibration Analysis and Bearing Health Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibraguide

package config

import (
	"fmt"
	"strings"

	"github.com/tomtom215/vibraguide/internal/logging"
)

// Validate checks that configuration values are usable.
// The API URL is deliberately not checked for well-formedness; a blank URL
// falls back to DefaultAPIURL during loading.
func (c *Config) Validate() error {
	if err := c.validateAPI(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateAPI() error {
	if c.API.RateLimit < 0 {
		return fmt.Errorf("VIBRAGUIDE_RATE_LIMIT must be >= 0, got: %v", c.API.RateLimit)
	}
	if c.API.RateLimit > 0 && c.API.RateBurst < 1 {
		return fmt.Errorf("VIBRAGUIDE_RATE_BURST must be >= 1 when rate limiting is enabled, got: %d", c.API.RateBurst)
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error, fatal, panic, disabled, got: %q", c.Logging.Level)
	}

	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
		return nil
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got: %q", c.Logging.Format)
	}
}
