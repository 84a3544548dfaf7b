// VibraGuide - Linear Guide Vibration Analysis and Bearing Health Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibraguide

package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/goccy/go-json"
)

// backend is a fake analytics API that records request URIs.
type backend struct {
	*httptest.Server

	mu   sync.Mutex
	uris []string
}

func newBackend(t *testing.T, status int, body string) *backend {
	t.Helper()
	b := &backend{}
	b.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		b.mu.Lock()
		b.uris = append(b.uris, r.Method+" "+r.URL.RequestURI())
		b.mu.Unlock()
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(b.Close)
	return b
}

func (b *backend) requests() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.uris...)
}

// runCLI runs the CLI against apiURL with logging kept quiet.
func runCLI(t *testing.T, apiURL string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	full := append([]string{"-api-url", apiURL, "-log-level", "disabled"}, args...)
	code = run(full, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun_SpecPrintsJSON(t *testing.T) {
	b := newBackend(t, http.StatusOK, `{"id":7,"series":"HGH","type":"flange","preload":"ZA","C0":52.3,"C100":38.7,"seal_type":"SS","speed_max":5,"stroke":800,"lubrication":null}`)

	code, stdout, stderr := runCLI(t, b.URL, "spec", "7")
	if code != exitOK {
		t.Fatalf("exit code %d, stderr: %s", code, stderr)
	}

	var got map[string]interface{}
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("stdout is not JSON: %v\n%s", err, stdout)
	}
	if got["series"] != "HGH" || got["C0"] != 52.3 {
		t.Errorf("unexpected output %v", got)
	}
	if !strings.Contains(stdout, "\n  \"") {
		t.Errorf("output should be indented:\n%s", stdout)
	}

	reqs := b.requests()
	if len(reqs) != 1 || reqs[0] != "GET /api/guide-specs/7" {
		t.Errorf("unexpected requests %v", reqs)
	}
}

func TestRun_ResultsFlags(t *testing.T) {
	b := newBackend(t, http.StatusOK, `[]`)

	code, _, stderr := runCLI(t, b.URL, "results", "-guide", "3", "-limit", "5")
	if code != exitOK {
		t.Fatalf("exit code %d, stderr: %s", code, stderr)
	}
	if reqs := b.requests(); len(reqs) != 1 || reqs[0] != "GET /api/results?guide_spec_id=3&limit=5" {
		t.Errorf("unexpected requests %v", reqs)
	}
}

func TestRun_PredictRULDefaultsToBaseline(t *testing.T) {
	b := newBackend(t, http.StatusOK, `{"id":1,"bearing_name":"Bearing1_3","predicted_RUL_min":5000,"model_type":"baseline","confidence":0.7,"features":{}}`)

	code, _, stderr := runCLI(t, b.URL, "predict-rul", "Bearing1_3")
	if code != exitOK {
		t.Fatalf("exit code %d, stderr: %s", code, stderr)
	}
	want := "POST /api/phm/predict-rul?bearing_name=Bearing1_3&model_type=baseline"
	if reqs := b.requests(); len(reqs) != 1 || reqs[0] != want {
		t.Errorf("expected %q, got %v", want, reqs)
	}
}

func TestRun_UploadCSV(t *testing.T) {
	b := newBackend(t, http.StatusOK, `{"id":3}`)

	path := filepath.Join(t.TempDir(), "run.csv")
	if err := os.WriteFile(path, []byte("0,0.1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	code, _, stderr := runCLI(t, b.URL, "upload-csv", path, "G1", "1000", "2.5")
	if code != exitOK {
		t.Fatalf("exit code %d, stderr: %s", code, stderr)
	}
	want := "POST /api/upload-csv?fs=1000&guide_spec_id=G1&velocity=2.5"
	if reqs := b.requests(); len(reqs) != 1 || reqs[0] != want {
		t.Errorf("expected %q, got %v", want, reqs)
	}
}

func TestRun_CreateSpecFromFile(t *testing.T) {
	b := newBackend(t, http.StatusOK, `{"id":12,"message":"Guide specification created successfully"}`)

	path := filepath.Join(t.TempDir(), "spec.json")
	spec := `{"series":"HGH","type":"flange","preload":"ZA","C0":52.3,"C100":38.7,"seal_type":"SS","speed_max":5,"stroke":800}`
	if err := os.WriteFile(path, []byte(spec), 0o600); err != nil {
		t.Fatal(err)
	}

	code, stdout, stderr := runCLI(t, b.URL, "create-spec", path)
	if code != exitOK {
		t.Fatalf("exit code %d, stderr: %s", code, stderr)
	}
	if !strings.Contains(stdout, `"id": 12`) {
		t.Errorf("unexpected output %s", stdout)
	}
}

func TestRun_GatewayErrorExitCode(t *testing.T) {
	b := newBackend(t, http.StatusNotFound, `{"detail":"Guide spec not found"}`)

	code, stdout, stderr := runCLI(t, b.URL, "spec", "99")
	if code != exitError {
		t.Errorf("expected exit %d, got %d", exitError, code)
	}
	if stdout != "" {
		t.Errorf("stdout should be empty on error, got %q", stdout)
	}
	if !strings.Contains(stderr, "(status)") || !strings.Contains(stderr, "Guide spec not found") {
		t.Errorf("stderr should name the kind and detail: %s", stderr)
	}
}

func TestRun_ValidationErrorExitCode(t *testing.T) {
	b := newBackend(t, http.StatusOK, `{}`)

	path := filepath.Join(t.TempDir(), "run.csv")
	if err := os.WriteFile(path, []byte("0,0.1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	code, _, stderr := runCLI(t, b.URL, "upload-csv", path, " ", "1000", "1")
	if code != exitUsage {
		t.Errorf("expected exit %d for blank guide spec id, got %d", exitUsage, code)
	}
	if !strings.Contains(stderr, "(validation)") {
		t.Errorf("stderr should name the validation kind: %s", stderr)
	}

	code, _, stderr = runCLI(t, b.URL, "trend", "3", "abc")
	if code != exitUsage {
		t.Errorf("expected exit %d for bad days, got %d (%s)", exitUsage, code, stderr)
	}
	if len(b.requests()) != 0 {
		t.Errorf("no request expected, got %v", b.requests())
	}
}

func TestRun_Usage(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"no command", nil, exitUsage},
		{"unknown command", []string{"frobnicate"}, exitUsage},
		{"missing argument", []string{"spec"}, exitUsage},
		{"extra argument", []string{"ping", "now"}, exitUsage},
		{"help", []string{"-h"}, exitOK},
		{"bad flag", []string{"-nope"}, exitUsage},
		{"bad log level", []string{"-log-level", "loud", "routes"}, exitUsage},
	}

	for _, tt := range tests {
		var out, errOut bytes.Buffer
		if code := run(tt.args, &out, &errOut); code != tt.want {
			t.Errorf("%s: expected exit %d, got %d (stderr: %s)", tt.name, tt.want, code, errOut.String())
		}
	}
}

func TestRun_Routes(t *testing.T) {
	code, stdout, stderr := runCLI(t, "http://127.0.0.1:1", "routes")
	if code != exitOK {
		t.Fatalf("exit code %d, stderr: %s", code, stderr)
	}

	var got []map[string]string
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("stdout is not JSON: %v", err)
	}
	if len(got) != 9 || got[0]["path"] != "/" || got[0]["view"] != "Dashboard" {
		t.Errorf("unexpected routes %v", got)
	}
}

func TestRun_Resolve(t *testing.T) {
	code, stdout, _ := runCLI(t, "http://127.0.0.1:1", "resolve", "/phm-testing/?bearing=Bearing1_3")
	if code != exitOK {
		t.Fatalf("exit code %d", code)
	}
	if !strings.Contains(stdout, `"view": "PHMTesting"`) {
		t.Errorf("unexpected output %s", stdout)
	}

	code, _, _ = runCLI(t, "http://127.0.0.1:1", "resolve", "/settings")
	if code != exitError {
		t.Errorf("expected exit %d for unknown path, got %d", exitError, code)
	}
}

func TestRun_MetricsTextfile(t *testing.T) {
	b := newBackend(t, http.StatusOK, `{"message":"Linear Guide Vibration Analysis API","version":"1.0.0","status":"running"}`)
	path := filepath.Join(t.TempDir(), "vibraguide.prom")

	code, _, stderr := runCLI(t, b.URL, "-metrics-textfile", path, "ping")
	if code != exitOK {
		t.Fatalf("exit code %d, stderr: %s", code, stderr)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("metrics file not written: %v", err)
	}
	if !strings.Contains(string(data), `vibraguide_gateway_requests_total{operation="Ping",outcome="success"}`) {
		t.Errorf("metrics file missing ping counter:\n%s", data)
	}
}

func TestRun_AnomalyThresholdZero(t *testing.T) {
	b := newBackend(t, http.StatusOK, `{"bearing_name":"Bearing1_1","anomaly_count":0,"anomalies":[]}`)

	code, _, stderr := runCLI(t, b.URL, "phm-anomalies", "Bearing1_1", "0", "0")
	if code != exitOK {
		t.Fatalf("exit code %d, stderr: %s", code, stderr)
	}
	want := "GET /api/phm/database/bearing/Bearing1_1/anomalies?limit=100&threshold_h=0&threshold_v=0"
	if reqs := b.requests(); len(reqs) != 1 || reqs[0] != want {
		t.Errorf("expected %q, got %v", want, reqs)
	}
}

func TestRun_MetricsTextfileFailureLogged(t *testing.T) {
	b := newBackend(t, http.StatusOK, `{"message":"ok","version":"1.0.0","status":"running"}`)
	path := filepath.Join(t.TempDir(), "missing", "vibraguide.prom")

	var out, errOut bytes.Buffer
	code := run([]string{"-api-url", b.URL, "-log-level", "error", "-metrics-textfile", path, "ping"}, &out, &errOut)
	if code != exitOK {
		t.Fatalf("exit code %d, stderr: %s", code, errOut.String())
	}
	for _, want := range []string{"Failed to write metrics textfile", `"correlation_id"`} {
		if !strings.Contains(errOut.String(), want) {
			t.Errorf("stderr should contain %s: %s", want, errOut.String())
		}
	}
}
