// VibraGuide - Linear Guide Vibration Analysis and Bearing Health Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibraguide

// Package main is the VibraGuide command-line client.
//
// vibraguide drives every analytics backend operation from the shell and
// prints the backend payload as indented JSON on stdout. It also lists and
// resolves the client-side route table.
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest priority wins):
//   - Command-line flags (-api-url, -log-level, -log-format, -metrics-textfile)
//   - Environment variables (VIBRAGUIDE_API_URL or VITE_API_URL, LOG_LEVEL, ...)
//   - .env file in the working directory
//   - Config file (config.yaml)
//   - Built-in defaults (backend at http://localhost:8081)
//
// # Example Usage
//
//	vibraguide specs
//	vibraguide -api-url http://analytics:8081 spec 3
//	vibraguide upload-csv run1.csv 3 25600 1.2
//	vibraguide results -guide 3 -limit 10
//	vibraguide predict-rul Bearing1_3 baseline
//	vibraguide resolve /phm-testing
//
// # Exit Codes
//
//	0  success
//	1  the operation failed (the error kind is printed on stderr)
//	2  usage error or rejected input
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/vibraguide/internal/config"
	"github.com/tomtom215/vibraguide/internal/gateway"
	"github.com/tomtom215/vibraguide/internal/logging"
	"github.com/tomtom215/vibraguide/internal/metrics"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one CLI invocation and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cli, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	cfg, err := config.LoadWithKoanf(cli.ConfigPath)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "vibraguide: %v\n", err)
		return exitError
	}
	cli.applyTo(cfg)
	if err := cfg.Validate(); err != nil {
		_, _ = fmt.Fprintf(stderr, "vibraguide: %v\n", err)
		return exitUsage
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    stderr,
	})

	var opts []gateway.Option
	if cfg.API.CircuitBreaker {
		opts = append(opts, gateway.WithCircuitBreaker(gateway.DefaultBreakerSettings()))
	}
	if cfg.API.RateLimit > 0 {
		opts = append(opts, gateway.WithRateLimit(cfg.API.RateLimit, cfg.API.RateBurst))
	}
	client := gateway.New(gateway.Config{BaseURL: cfg.API.URL}, opts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logging.ContextWithNewCorrelationID(ctx)

	logging.Ctx(ctx).Debug().
		Str("api_url", client.BaseURL()).
		Bool("circuit_breaker", cfg.API.CircuitBreaker).
		Float64("rate_limit", cfg.API.RateLimit).
		Msg("Gateway configured")

	code := dispatch(ctx, client, cli.Args, stdout, stderr)

	if cfg.Metrics.TextfilePath != "" {
		if err := metrics.WriteTextfile(cfg.Metrics.TextfilePath); err != nil {
			logging.Ctx(ctx).Error().Err(err).Str("path", cfg.Metrics.TextfilePath).Msg("Failed to write metrics textfile")
		}
	}

	return code
}
