// VibraGuide - Linear Guide Vibration Analysis and Bearing Health Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibraguide

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/vibraguide/config.yaml",
	"/etc/vibraguide/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// DotEnvPathEnvVar overrides the location of the optional .env file.
const DotEnvPathEnvVar = "VIBRAGUIDE_DOTENV"

// defaultDotEnvPath is read when DotEnvPathEnvVar is unset. A frontend
// checkout's .env with VITE_API_URL works unchanged.
const defaultDotEnvPath = ".env"

// apiURLAliasEnvVar is accepted for api.url with lower priority than VIBRAGUIDE_API_URL.
const apiURLAliasEnvVar = "VITE_API_URL"

// defaultConfig returns a Config struct with all default values.
func defaultConfig() *Config {
	return &Config{
		API: APIConfig{
			URL:            DefaultAPIURL,
			CircuitBreaker: false, // Opt-in: the gateway never retries on its own
			RateLimit:      0,
			RateBurst:      5,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Metrics: MetricsConfig{
			TextfilePath: "",
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in defaults
//  2. Config File: configPath if given, else CONFIG_PATH or DefaultConfigPaths
//  3. .env File: VIBRAGUIDE_DOTENV or ./.env, if present
//  4. Environment Variables: Override any setting
//
// Blank values never override a lower layer, and a blank api.url falls back
// to DefaultAPIURL.
func LoadWithKoanf(configPath string) (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: config file (optional)
	if configPath == "" {
		configPath = findConfigFile()
	}
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: .env file (optional)
	if err := loadDotEnv(k, dotEnvPath()); err != nil {
		return nil, err
	}

	// Layer 4: environment variables (highest priority)
	if alias := os.Getenv(apiURLAliasEnvVar); strings.TrimSpace(alias) != "" {
		if err := k.Set("api.url", alias); err != nil {
			return nil, fmt.Errorf("failed to set api.url from %s: %w", apiURLAliasEnvVar, err)
		}
	}
	if err := k.Load(env.ProviderWithValue("", ".", envValueFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	cfg.API.URL = strings.TrimSpace(cfg.API.URL)
	if cfg.API.URL == "" {
		cfg.API.URL = DefaultAPIURL
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

func dotEnvPath() string {
	if p := os.Getenv(DotEnvPathEnvVar); p != "" {
		return p
	}
	return defaultDotEnvPath
}

// loadDotEnv reads a .env file without touching the process environment and
// applies the recognized keys. A missing file is not an error.
func loadDotEnv(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}

	values, err := godotenv.Read(path)
	if err != nil {
		return fmt.Errorf("failed to read env file %s: %w", path, err)
	}

	// The alias goes first so VIBRAGUIDE_API_URL in the same file wins.
	if alias := strings.TrimSpace(values[apiURLAliasEnvVar]); alias != "" {
		if err := k.Set("api.url", alias); err != nil {
			return fmt.Errorf("failed to set api.url from %s: %w", path, err)
		}
	}

	for key, value := range values {
		mapped, v := envValueFunc(key, value)
		if mapped == "" {
			continue
		}
		if err := k.Set(mapped, v); err != nil {
			return fmt.Errorf("failed to set %s from %s: %w", mapped, path, err)
		}
	}

	return nil
}

// envMappings maps lower-cased environment variable names to koanf paths.
var envMappings = map[string]string{
	"vibraguide_api_url":         "api.url",
	"vibraguide_circuit_breaker": "api.circuit_breaker",
	"vibraguide_rate_limit":      "api.rate_limit",
	"vibraguide_rate_burst":      "api.rate_burst",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	"metrics_textfile": "metrics.textfile_path",
}

// envTransformFunc transforms environment variable names to koanf config paths.
// Unmapped keys return empty string so unrelated variables are ignored.
//
// Examples:
//   - VIBRAGUIDE_API_URL -> api.url
//   - LOG_LEVEL -> logging.level
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}

// envValueFunc is envTransformFunc for providers that also see the value;
// blank values are skipped so they cannot clear a lower layer.
func envValueFunc(key, value string) (string, interface{}) {
	if strings.TrimSpace(value) == "" {
		return "", nil
	}
	return envTransformFunc(key), value
}
