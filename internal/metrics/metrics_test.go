// VibraGuide - Linear Guide Vibration Analysis and Bearing Health Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibraguide

package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	io_prometheus_client "github.com/prometheus/client_model/go"
)

// getHistogramCount extracts the sample count from a Prometheus histogram
func getHistogramCount(t *testing.T, operation string) uint64 {
	t.Helper()
	observer, err := GatewayRequestDuration.GetMetricWithLabelValues(operation)
	if err != nil {
		t.Fatalf("failed to get histogram: %v", err)
	}
	var m io_prometheus_client.Metric
	if err := observer.(prometheus.Metric).Write(&m); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	return m.GetHistogram().GetSampleCount()
}

func TestRecordGatewayRequest(t *testing.T) {
	before := testutil.ToFloat64(GatewayRequestsTotal.WithLabelValues("get_guide_spec", OutcomeSuccess))
	RecordGatewayRequest("get_guide_spec", OutcomeSuccess, 15*time.Millisecond)
	after := testutil.ToFloat64(GatewayRequestsTotal.WithLabelValues("get_guide_spec", OutcomeSuccess))

	if after != before+1 {
		t.Errorf("expected counter to increase by 1, got %v -> %v", before, after)
	}

	failBefore := testutil.ToFloat64(GatewayRequestsTotal.WithLabelValues("predict_rul", "timeout"))
	RecordGatewayRequest("predict_rul", "timeout", 30*time.Second)
	failAfter := testutil.ToFloat64(GatewayRequestsTotal.WithLabelValues("predict_rul", "timeout"))

	if failAfter != failBefore+1 {
		t.Errorf("expected failure counter to increase by 1, got %v -> %v", failBefore, failAfter)
	}
}

func TestRecordGatewayRequest_ObservesDuration(t *testing.T) {
	before := getHistogramCount(t, "get_health_trend")
	RecordGatewayRequest("get_health_trend", OutcomeSuccess, 120*time.Millisecond)
	RecordGatewayRequest("get_health_trend", "status", 40*time.Millisecond)

	if got := getHistogramCount(t, "get_health_trend"); got != before+2 {
		t.Errorf("expected 2 new duration samples, got %d", got-before)
	}
}

func TestRecordUpload(t *testing.T) {
	before := testutil.ToFloat64(GatewayUploadBytes.WithLabelValues("upload_csv"))
	RecordUpload("upload_csv", 2048)
	RecordUpload("upload_csv", 0)
	after := testutil.ToFloat64(GatewayUploadBytes.WithLabelValues("upload_csv"))

	if after != before+2048 {
		t.Errorf("expected 2048 bytes recorded, got %v", after-before)
	}
}

func TestWriteTextfile(t *testing.T) {
	RecordGatewayRequest("ping", OutcomeSuccess, time.Millisecond)

	path := filepath.Join(t.TempDir(), "vibraguide.prom")
	if err := WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read textfile: %v", err)
	}
	if !strings.Contains(string(data), "vibraguide_gateway_requests_total") {
		t.Errorf("expected gateway counter in textfile output")
	}
}

func TestCircuitBreakerTransitions_LabelNames(t *testing.T) {
	labels := prometheus.Labels{"name": "labels-test", "from_state": "closed", "to_state": "open"}

	before := testutil.ToFloat64(CircuitBreakerTransitions.With(labels))
	CircuitBreakerTransitions.With(labels).Inc()
	if got := testutil.ToFloat64(CircuitBreakerTransitions.With(labels)); got != before+1 {
		t.Errorf("expected transition counter to increase by 1, got %v -> %v", before, got)
	}

	if _, err := CircuitBreakerTransitions.GetMetricWith(prometheus.Labels{"name": "x", "from": "closed", "to": "open"}); err == nil {
		t.Error("expected from/to label names to be rejected")
	}
}
