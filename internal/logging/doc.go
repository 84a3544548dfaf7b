// VibraGuide - Linear Guide Vibration Analysis and Bearing Health Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibraguide

// Package logging provides centralized zerolog-based structured logging for VibraGuide.
//
// The package provides:
//   - A global zerolog logger configured via Init
//   - JSON output for machines, console output for terminals
//   - Request and correlation ID propagation through context.Context
//   - Component loggers (WithComponent) for the gateway and CLI
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	ctx = logging.ContextWithNewCorrelationID(ctx)
//	logging.Ctx(ctx).Debug().Str("api_url", cfg.API.URL).Msg("Gateway configured")
//	gwLogger := logging.WithComponent("gateway")
//
// # Configuration
//
// Environment Variables (read by internal/config):
//
//	LOG_LEVEL   - trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - json, console (default: json)
//	LOG_CALLER  - true, false (default: false)
//
// Always terminate log chains with .Msg() or .Send(), otherwise nothing is emitted.
package logging
