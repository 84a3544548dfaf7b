// VibraGuide - Linear Guide Vibration Analysis and Bearing Health Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibraguide

/*
Package config provides layered configuration loading using Koanf v2.

Sources, lowest to highest priority:

 1. Built-in defaults (defaultConfig)
 2. YAML file: explicit path, CONFIG_PATH, ./config.yaml or /etc/vibraguide/config.yaml
 3. .env file: VIBRAGUIDE_DOTENV or ./.env (read with godotenv, process env untouched)
 4. Environment variables

Example config.yaml:

	api:
	  url: "http://analytics.local:8081"
	  circuit_breaker: false
	logging:
	  level: "info"
	  format: "console"
	metrics:
	  textfile_path: "/var/lib/node_exporter/vibraguide.prom"

Environment variables:

	VIBRAGUIDE_API_URL          backend base URL (VITE_API_URL accepted as alias)
	VIBRAGUIDE_CIRCUIT_BREAKER  opt-in circuit breaker
	VIBRAGUIDE_RATE_LIMIT       opt-in client-side requests per second
	VIBRAGUIDE_RATE_BURST       burst size for the rate limit
	LOG_LEVEL, LOG_FORMAT, LOG_CALLER
	METRICS_TEXTFILE

Usage:

	cfg, err := config.LoadWithKoanf("")
	if err != nil {
	    fmt.Fprintf(os.Stderr, "vibraguide: %v\n", err)
	    os.Exit(1)
	}
*/
package config
