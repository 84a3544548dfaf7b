// VibraGuide - Linear Guide Vibration Analysis and Bearing Health Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibraguide

package gateway

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
)

// Kind classifies a gateway failure.
type Kind string

const (
	// KindNetwork is a transport failure: connection refused, DNS, reset, malformed URL.
	KindNetwork Kind = "network"

	// KindTimeout means the request exceeded the client timeout or the caller's deadline.
	KindTimeout Kind = "timeout"

	// KindStatus means the backend answered with a non-2xx status.
	KindStatus Kind = "status"

	// KindParse means the response body could not be read or decoded, or the
	// request body could not be encoded.
	KindParse Kind = "parse"

	// KindValidation means a required argument was missing or invalid; no request was sent.
	KindValidation Kind = "validation"

	// KindCanceled means the caller canceled the context.
	KindCanceled Kind = "canceled"

	// KindUnavailable means the circuit breaker rejected the call; no request was sent.
	KindUnavailable Kind = "unavailable"
)

// Error is returned by every Client operation that fails.
// Use errors.As to inspect it, or the KindOf/IsNotFound/IsTimeout helpers.
type Error struct {
	Kind       Kind
	Op         string // Client method name, e.g. "GetGuideSpec"
	Method     string
	URL        string
	StatusCode int    // Only set for KindStatus
	Message    string // Backend detail for KindStatus, otherwise a summary
	Err        error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}

	if e.Kind == KindStatus {
		if msg == "" {
			return fmt.Sprintf("gateway %s: %s %s returned status %d", e.Op, e.Method, e.URL, e.StatusCode)
		}
		return fmt.Sprintf("gateway %s: %s %s returned status %d: %s", e.Op, e.Method, e.URL, e.StatusCode, msg)
	}

	return fmt.Sprintf("gateway %s: %s: %s", e.Op, e.Kind, msg)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of a gateway error, or "" if err is not one.
func KindOf(err error) Kind {
	var gerr *Error
	if errors.As(err, &gerr) {
		return gerr.Kind
	}
	return ""
}

// StatusCodeOf returns the HTTP status carried by a gateway error, or 0.
func StatusCodeOf(err error) int {
	var gerr *Error
	if errors.As(err, &gerr) {
		return gerr.StatusCode
	}
	return 0
}

// IsNotFound reports whether the backend answered 404.
func IsNotFound(err error) bool {
	return KindOf(err) == KindStatus && StatusCodeOf(err) == http.StatusNotFound
}

// IsTimeout reports whether the call ran out of time.
func IsTimeout(err error) bool {
	return KindOf(err) == KindTimeout
}

// classifyTransport maps an http.Client or body read error to a Kind.
// reqCtx is the per-request context carrying the client timeout.
func classifyTransport(reqCtx context.Context, err error) Kind {
	switch {
	case errors.Is(err, context.Canceled):
		return KindCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return KindTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}

	switch {
	case errors.Is(reqCtx.Err(), context.Canceled):
		return KindCanceled
	case errors.Is(reqCtx.Err(), context.DeadlineExceeded):
		return KindTimeout
	}

	return KindNetwork
}

// countsAsBreakerFailure reports whether err signals an unhealthy backend.
// Client-side problems and 4xx answers leave the breaker alone.
func countsAsBreakerFailure(err error) bool {
	if err == nil {
		return false
	}
	var gerr *Error
	if !errors.As(err, &gerr) {
		return true
	}
	switch gerr.Kind {
	case KindNetwork, KindTimeout:
		return true
	case KindStatus:
		return gerr.StatusCode >= http.StatusInternalServerError
	default:
		return false
	}
}

// maxErrorBodySize limits the amount of an error response read for diagnostics.
const maxErrorBodySize = 64 * 1024 // 64KB

// readBodyForError reads at most maxErrorBodySize bytes of an error response.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}

// detailMessage extracts the FastAPI {"detail": ...} message from an error
// body. String details are returned as-is, structured ones (422 validation
// lists) as compact JSON. Other bodies fall back to their trimmed text, then
// to the status text.
func detailMessage(statusCode int, body []byte) string {
	trimmed := bytes.TrimSpace(body)

	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if len(trimmed) > 0 && json.Unmarshal(trimmed, &payload) == nil &&
		len(payload.Detail) > 0 && !bytes.Equal(payload.Detail, []byte("null")) {
		var s string
		if json.Unmarshal(payload.Detail, &s) == nil {
			return s
		}
		return string(payload.Detail)
	}

	if len(trimmed) > 0 {
		return strings.TrimSpace(string(trimmed))
	}
	return http.StatusText(statusCode)
}
