// VibraGuide - Linear Guide Vibration Analysis and Bearing Health Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibraguide

/*
Package metrics provides Prometheus instrumentation for the analytics gateway.

Metrics:
  - vibraguide_gateway_requests_total{operation,outcome}
  - vibraguide_gateway_request_duration_seconds{operation}
  - vibraguide_gateway_upload_bytes_total{operation}
  - vibraguide_gateway_circuit_breaker_state{name}
  - vibraguide_gateway_circuit_breaker_transitions_total{name,from_state,to_state}

The outcome label is "success" or the gateway error kind (network, timeout,
status, parse, validation, canceled, unavailable).

The CLI is short-lived, so instead of serving /metrics it can dump the
registry with WriteTextfile for the node_exporter textfile collector.
*/
package metrics
