// VibraGuide - Linear Guide Vibration Analysis and Bearing Health Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibraguide

package main

import (
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/tomtom215/vibraguide/internal/config"
)

// CLIConfig holds command-line configuration
type CLIConfig struct {
	ConfigPath  string
	APIURL      string
	LogLevel    string
	LogFormat   string
	MetricsFile string

	// Args is the command and its arguments.
	Args []string
}

func parseFlags(args []string, stderr io.Writer) (*CLIConfig, error) {
	cfg := &CLIConfig{}

	fs := flag.NewFlagSet("vibraguide", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&cfg.ConfigPath, "config", "",
		"Path to YAML config file (env: CONFIG_PATH)")
	fs.StringVar(&cfg.APIURL, "api-url", "",
		"Analytics backend URL (env: VIBRAGUIDE_API_URL, VITE_API_URL)")
	fs.StringVar(&cfg.LogLevel, "log-level", "",
		"Log level: trace, debug, info, warn, error (env: LOG_LEVEL)")
	fs.StringVar(&cfg.LogFormat, "log-format", "",
		"Log format: json, console (env: LOG_FORMAT)")
	fs.StringVar(&cfg.MetricsFile, "metrics-textfile", "",
		"Write Prometheus metrics to this file on exit (env: METRICS_TEXTFILE)")

	fs.Usage = func() {
		printUsage(stderr, fs)
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Args = fs.Args()
	if len(cfg.Args) == 0 {
		_, _ = fmt.Fprintln(stderr, "vibraguide: missing command")
		printUsage(stderr, fs)
		return nil, errMissingCommand
	}

	return cfg, nil
}

// applyTo overrides loaded configuration with explicitly set flags.
func (c *CLIConfig) applyTo(cfg *config.Config) {
	if c.APIURL != "" {
		cfg.API.URL = c.APIURL
	}
	if c.LogLevel != "" {
		cfg.Logging.Level = c.LogLevel
	}
	if c.LogFormat != "" {
		cfg.Logging.Format = c.LogFormat
	}
	if c.MetricsFile != "" {
		cfg.Metrics.TextfilePath = c.MetricsFile
	}
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	_, _ = fmt.Fprintf(w, "Usage: vibraguide [flags] <command> [args]\n\nCommands:\n")

	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		cmd := commands[name]
		_, _ = fmt.Fprintf(w, "  %-42s %s\n", strings.TrimSpace(name+" "+cmd.usage), cmd.summary)
	}

	_, _ = fmt.Fprintf(w, "\nFlags:\n")
	fs.PrintDefaults()
}
