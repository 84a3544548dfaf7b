// VibraGuide - Linear Guide Vibration Analysis and Bearing Health Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibraguide

package config

// DefaultAPIURL is the analytics backend used when no override is configured.
const DefaultAPIURL = "http://localhost:8081"

// Config holds all client configuration loaded from defaults, an optional
// YAML file, an optional .env file and environment variables.
//
// Configuration Loading Order (Koanf v2, later wins):
//  1. Defaults
//  2. Config file (config.yaml)
//  3. .env file (VITE_API_URL and the variables below)
//  4. Environment variables
//
// Config is immutable after LoadWithKoanf() and safe for concurrent reads.
type Config struct {
	API     APIConfig     `koanf:"api"`
	Logging LoggingConfig `koanf:"logging"`
	Metrics MetricsConfig `koanf:"metrics"`
}

// APIConfig configures the analytics backend gateway.
//
// Environment Variables:
//   - VIBRAGUIDE_API_URL: backend base URL (alias: VITE_API_URL)
//   - VIBRAGUIDE_CIRCUIT_BREAKER: wrap calls in a circuit breaker (default: false)
//   - VIBRAGUIDE_RATE_LIMIT: client-side requests per second, 0 disables (default: 0)
//   - VIBRAGUIDE_RATE_BURST: burst size when throttled (default: 5)
//
// The request timeout is fixed by the gateway and is not configurable.
type APIConfig struct {
	URL            string  `koanf:"url"`
	CircuitBreaker bool    `koanf:"circuit_breaker"`
	RateLimit      float64 `koanf:"rate_limit"`
	RateBurst      int     `koanf:"rate_burst"`
}

// LoggingConfig holds logging settings for zerolog.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// MetricsConfig controls the Prometheus textfile dump.
//
// Environment Variables:
//   - METRICS_TEXTFILE: path to write metrics to on exit (default: disabled)
type MetricsConfig struct {
	TextfilePath string `koanf:"textfile_path"`
}
