// VibraGuide - Linear Guide Vibration Analysis and Bearing Health Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibraguide

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for GatewayRequestsTotal.
const (
	OutcomeSuccess = "success"
)

var (
	// Gateway Metrics
	GatewayRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vibraguide_gateway_requests_total",
			Help: "Total number of analytics backend requests by operation and outcome",
		},
		[]string{"operation", "outcome"}, // outcome: success or the error kind
	)

	GatewayRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vibraguide_gateway_request_duration_seconds",
			Help:    "Analytics backend request duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30}, // Upper bucket matches the 30s timeout
		},
		[]string{"operation"},
	)

	GatewayUploadBytes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vibraguide_gateway_upload_bytes_total",
			Help: "Total bytes of multipart payload sent to the analytics backend",
		},
		[]string{"operation"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "vibraguide_gateway_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vibraguide_gateway_circuit_breaker_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordGatewayRequest records the outcome and latency of one gateway operation.
func RecordGatewayRequest(operation, outcome string, duration time.Duration) {
	GatewayRequestsTotal.WithLabelValues(operation, outcome).Inc()
	GatewayRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordUpload records the size of a multipart upload body.
func RecordUpload(operation string, size int) {
	if size <= 0 {
		return
	}
	GatewayUploadBytes.WithLabelValues(operation).Add(float64(size))
}

// WriteTextfile writes all registered metrics to path in the Prometheus text
// format, for pickup by the node_exporter textfile collector.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
