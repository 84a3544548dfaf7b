// VibraGuide - Linear Guide Vibration Analysis and Bearing Health Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibraguide

package gateway

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/vibraguide/internal/metrics"
)

func TestBreakerSettings_WithDefaults(t *testing.T) {
	t.Parallel()

	got := BreakerSettings{Name: "custom", MinRequests: 2}.withDefaults()
	def := DefaultBreakerSettings()

	checkStringEqual(t, "Name", got.Name, "custom")
	if got.MinRequests != 2 {
		t.Errorf("MinRequests: expected 2, got %d", got.MinRequests)
	}
	if got.MaxRequests != def.MaxRequests || got.Timeout != def.Timeout || got.FailureRatio != def.FailureRatio {
		t.Errorf("defaults not applied: %+v", got)
	}
}

func TestBreaker_OpensOnServerErrors(t *testing.T) {
	t.Parallel()

	fb := newFakeBackend(t, http.StatusInternalServerError, `{"detail":"boom"}`)
	client, logs := newTestClient(fb.server.URL, WithCircuitBreaker(BreakerSettings{
		Name:         "test-opens",
		MinRequests:  2,
		FailureRatio: 0.5,
		Timeout:      time.Minute,
	}))
	ctx := context.Background()

	checkStringEqual(t, "initial state", client.BreakerState(), "closed")

	for i := 0; i < 2; i++ {
		_, err := client.GetGuideSpecs(ctx)
		checkKind(t, err, KindStatus)
	}
	checkStringEqual(t, "state after failures", client.BreakerState(), "open")

	fb.respond(http.StatusOK, `[]`)
	_, err := client.GetGuideSpecs(ctx)
	checkKind(t, err, KindUnavailable)
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("expected ErrOpenState through Unwrap, got %v", err)
	}

	checkIntEqual(t, "requests", len(fb.recorded()), 2)

	// Two failures and one rejection; the transition adds no event at info.
	for _, line := range checkLogLines(t, logs, 3) {
		if !strings.Contains(line, "Gateway request failed") {
			t.Errorf("unexpected log event: %s", line)
		}
	}

	if got := testutil.ToFloat64(metrics.CircuitBreakerState.WithLabelValues("test-opens")); got != 2 {
		t.Errorf("breaker state metric: expected 2, got %v", got)
	}
	if got := testutil.ToFloat64(metrics.CircuitBreakerTransitions.WithLabelValues("test-opens", "closed", "open")); got != 1 {
		t.Errorf("transition metric: expected 1, got %v", got)
	}
}

func TestBreaker_IgnoresClientErrors(t *testing.T) {
	t.Parallel()

	fb := newFakeBackend(t, http.StatusNotFound, `{"detail":"Guide spec not found"}`)
	client, _ := newTestClient(fb.server.URL, WithCircuitBreaker(BreakerSettings{
		Name:         "test-ignores",
		MinRequests:  2,
		FailureRatio: 0.5,
	}))

	for i := 0; i < 5; i++ {
		_, err := client.GetGuideSpec(context.Background(), "1")
		if !IsNotFound(err) {
			t.Fatalf("call %d: expected not found, got %v", i, err)
		}
	}
	checkStringEqual(t, "state", client.BreakerState(), "closed")
	checkIntEqual(t, "requests", len(fb.recorded()), 5)
}

func TestBreaker_Disabled(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient("http://localhost:1")
	checkStringEqual(t, "state", client.BreakerState(), "")
}

func TestCountsAsBreakerFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"network", &Error{Kind: KindNetwork}, true},
		{"timeout", &Error{Kind: KindTimeout}, true},
		{"500", &Error{Kind: KindStatus, StatusCode: 500}, true},
		{"503", &Error{Kind: KindStatus, StatusCode: 503}, true},
		{"404", &Error{Kind: KindStatus, StatusCode: 404}, false},
		{"422", &Error{Kind: KindStatus, StatusCode: 422}, false},
		{"parse", &Error{Kind: KindParse}, false},
		{"canceled", &Error{Kind: KindCanceled}, false},
		{"foreign", errors.New("boom"), true},
	}

	for _, tt := range tests {
		if got := countsAsBreakerFailure(tt.err); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestStateConversions(t *testing.T) {
	t.Parallel()

	checkStringEqual(t, "closed", stateToString(gobreaker.StateClosed), "closed")
	checkStringEqual(t, "half-open", stateToString(gobreaker.StateHalfOpen), "half-open")
	checkStringEqual(t, "open", stateToString(gobreaker.StateOpen), "open")
	if stateToFloat(gobreaker.StateOpen) != 2 || stateToFloat(gobreaker.StateHalfOpen) != 1 {
		t.Error("unexpected float mapping")
	}
}
