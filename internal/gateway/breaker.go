// VibraGuide - Linear Guide Vibration Analysis and Bearing Health Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibraguide

package gateway

import (
	"errors"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/vibraguide/internal/metrics"
)

// BreakerSettings tunes the optional circuit breaker.
//
// The breaker only counts network failures, timeouts and 5xx answers. It
// never retries: an open breaker fails calls with KindUnavailable until
// Timeout has passed, then lets MaxRequests trial requests through.
type BreakerSettings struct {
	Name         string
	MaxRequests  uint32        // Probes allowed in half-open state
	Interval     time.Duration // Closed-state count reset period
	Timeout      time.Duration // Open-state duration before half-open
	MinRequests  uint32        // Requests needed before the ratio is considered
	FailureRatio float64       // Failure ratio that opens the breaker
}

// DefaultBreakerSettings returns the breaker configuration used when
// circuit breaking is enabled from config.
func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		Name:         "analytics-api",
		MaxRequests:  3,
		Interval:     time.Minute,
		Timeout:      2 * time.Minute,
		MinRequests:  10,
		FailureRatio: 0.6,
	}
}

func (s BreakerSettings) withDefaults() BreakerSettings {
	d := DefaultBreakerSettings()
	if s.Name == "" {
		s.Name = d.Name
	}
	if s.MaxRequests == 0 {
		s.MaxRequests = d.MaxRequests
	}
	if s.Interval <= 0 {
		s.Interval = d.Interval
	}
	if s.Timeout <= 0 {
		s.Timeout = d.Timeout
	}
	if s.MinRequests == 0 {
		s.MinRequests = d.MinRequests
	}
	if s.FailureRatio <= 0 || s.FailureRatio > 1 {
		s.FailureRatio = d.FailureRatio
	}
	return s
}

type breaker struct {
	cb   *gobreaker.CircuitBreaker[struct{}]
	name string
}

//nolint:gocritic // zerolog.Logger is designed to be passed by value
func newBreaker(s BreakerSettings, logger zerolog.Logger) *breaker {
	s = s.withDefaults()

	metrics.CircuitBreakerState.WithLabelValues(s.Name).Set(0) // 0 = closed

	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        s.Name,
		MaxRequests: s.MaxRequests,
		Interval:    s.Interval,
		Timeout:     s.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < s.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= s.FailureRatio
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logger.Debug().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("Circuit breaker state transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},

		IsSuccessful: func(err error) bool {
			return !countsAsBreakerFailure(err)
		},
	})

	return &breaker{cb: cb, name: s.Name}
}

// execute runs fn under the breaker. Rejections become KindUnavailable.
func (b *breaker) execute(fn func() error) error {
	_, err := b.cb.Execute(func() (struct{}, error) {
		return struct{}{}, fn()
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return &Error{
			Kind:    KindUnavailable,
			Message: "circuit breaker " + b.name + " rejected the request",
			Err:     err,
		}
	}
	return err
}

func (b *breaker) state() string {
	return stateToString(b.cb.State())
}

// stateToString converts gobreaker state to string
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// stateToFloat converts gobreaker state to float for Prometheus metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// BreakerState reports the circuit breaker state ("closed", "half-open",
// "open"), or "" when no breaker is configured.
func (c *Client) BreakerState() string {
	if c.breaker == nil {
		return ""
	}
	return c.breaker.state()
}
