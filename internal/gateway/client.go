// VibraGuide - Linear Guide Vibration Analysis and Bearing Health Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibraguide

/*
client.go - Core analytics backend client

This file provides the Client struct and the single request path every
operation goes through:

  - One HTTP request per call, bounded by the client timeout (default 30s)
  - X-Request-ID on every request (from the context, else a new uuid)
  - 2xx bodies decoded straight into the typed result, 204/empty bodies
    leave the zero value
  - Failures classified into *Error, logged exactly once and counted in
    the gateway metrics
  - Optional circuit breaker (see breaker.go)
  - Optional client-side throttle (see ratelimit.go)

Related Files:
  - guide_specs.go: guide specification and frequency operations
  - analysis.go: signal analysis, CSV upload, results and health trend
  - phm.go: PHM-2012 training, upload, test data and RUL prediction
  - phm_database.go: PHM measurement database queries
*/

//nolint:staticcheck // File documentation, not package doc
package gateway

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/tomtom215/vibraguide/internal/logging"
	"github.com/tomtom215/vibraguide/internal/metrics"
	"github.com/tomtom215/vibraguide/internal/models"
)

const (
	// DefaultBaseURL is used when Config.BaseURL is empty.
	DefaultBaseURL = "http://localhost:8081"

	// DefaultTimeout bounds every request.
	DefaultTimeout = 30 * time.Second
)

// Config configures a Client.
type Config struct {
	// BaseURL of the analytics backend. Trailing slashes are trimmed; the
	// value is not otherwise checked, so a malformed URL fails at call time
	// with KindNetwork.
	BaseURL string

	// Timeout per request. Zero means DefaultTimeout.
	Timeout time.Duration
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
// The gateway timeout is still applied through the request context.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger replaces the component logger used for failure and debug events.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithTimeout overrides Config.Timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithCircuitBreaker wraps every request in a circuit breaker.
// Zero fields of s take their DefaultBreakerSettings value.
func WithCircuitBreaker(s BreakerSettings) Option {
	return func(c *Client) {
		c.breakerSettings = &s
	}
}

// Client is the typed facade over the analytics backend HTTP API.
//
// Thread Safety: Safe for concurrent use. Each call builds its own request
// and nothing is cached between calls.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	logger     zerolog.Logger

	breakerSettings *BreakerSettings
	breaker         *breaker
	limiter         *rate.Limiter
}

// Ensure Client implements API
var _ API = (*Client)(nil)

// New creates a Client. It never fails; configuration problems surface as
// errors from the first call.
//
//nolint:gocritic // Config is small and copied once
func New(cfg Config, opts ...Option) *Client {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := &Client{
		baseURL:    baseURL,
		timeout:    timeout,
		httpClient: &http.Client{},
		logger:     logging.WithComponent("gateway"),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.breakerSettings != nil {
		c.breaker = newBreaker(*c.breakerSettings, c.logger)
	}

	return c
}

// BaseURL returns the normalized backend URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Ping fetches the backend banner from GET /.
func (c *Client) Ping(ctx context.Context) (*models.ServiceStatus, error) {
	return call[models.ServiceStatus](ctx, c, &request{
		op:     "Ping",
		method: http.MethodGet,
		path:   "/",
	})
}

// request describes one backend call.
type request struct {
	op          string
	method      string
	path        string // Already escaped
	query       url.Values
	body        []byte
	contentType string
}

func (r *request) url(baseURL string) string {
	u := baseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}
	return u
}

// call executes req and decodes the response into a new T.
func call[T any](ctx context.Context, c *Client, req *request) (*T, error) {
	var out T
	if err := c.do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// jsonRequest encodes body as the JSON payload of req.
func (c *Client) jsonRequest(ctx context.Context, req *request, body interface{}) (*request, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, c.fail(ctx, &Error{
			Kind:    KindParse,
			Op:      req.op,
			Method:  req.method,
			URL:     req.url(c.baseURL),
			Message: "failed to encode request body",
			Err:     err,
		}, 0)
	}
	req.body = data
	req.contentType = "application/json"
	return req, nil
}

// do runs one request and records its outcome. Every failure returned from
// here has already been logged.
func (c *Client) do(ctx context.Context, req *request, out interface{}) error {
	start := time.Now()

	requestID := logging.RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = logging.GenerateRequestID()
		ctx = logging.ContextWithRequestID(ctx, requestID)
	}

	fullURL := req.url(c.baseURL)

	// The timeout covers the rate limit wait and the exchange together.
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	err := c.wait(reqCtx)
	if err == nil {
		if c.breaker != nil {
			err = c.breaker.execute(func() error {
				return c.roundTrip(reqCtx, req, fullURL, requestID, out)
			})
		} else {
			err = c.roundTrip(reqCtx, req, fullURL, requestID, out)
		}
	}

	duration := time.Since(start)

	if err != nil {
		gerr := asError(err)
		gerr.Op = req.op
		gerr.Method = req.method
		gerr.URL = fullURL
		return c.fail(ctx, gerr, duration)
	}

	metrics.RecordGatewayRequest(req.op, metrics.OutcomeSuccess, duration)
	if len(req.body) > 0 && strings.HasPrefix(req.contentType, "multipart/") {
		metrics.RecordUpload(req.op, len(req.body))
	}

	logging.FromContext(ctx, c.logger).Debug().
		Str("operation", req.op).
		Str("method", req.method).
		Str("url", fullURL).
		Dur("duration", duration).
		Msg("Gateway request succeeded")

	return nil
}

// roundTrip performs the HTTP exchange under reqCtx, which carries the
// client timeout. Failures are returned as *Error without Op/Method/URL,
// which do fills in.
func (c *Client) roundTrip(reqCtx context.Context, req *request, fullURL, requestID string, out interface{}) error {
	var body io.Reader = http.NoBody
	if req.body != nil {
		body = bytes.NewReader(req.body)
	}

	httpReq, err := http.NewRequestWithContext(reqCtx, req.method, fullURL, body)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: "failed to create request", Err: err}
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-ID", requestID)
	if req.contentType != "" {
		httpReq.Header.Set("Content-Type", req.contentType)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return &Error{Kind: classifyTransport(reqCtx, err), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errBody := readBodyForError(resp.Body)
		return &Error{
			Kind:       KindStatus,
			StatusCode: resp.StatusCode,
			Message:    detailMessage(resp.StatusCode, errBody),
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		kind := KindParse
		if reqCtx.Err() != nil {
			kind = classifyTransport(reqCtx, err)
		}
		return &Error{Kind: kind, Message: "failed to read response body", Err: err}
	}

	if resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(data)) == 0 || out == nil {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return &Error{Kind: KindParse, Message: "failed to decode response", Err: err}
	}

	return nil
}

// asError returns err as *Error, wrapping foreign errors as KindNetwork.
func asError(err error) *Error {
	if gerr, ok := err.(*Error); ok { //nolint:errorlint // roundTrip and breaker return *Error directly
		return gerr
	}
	return &Error{Kind: KindNetwork, Err: err}
}

// fail logs gerr once, counts it and returns it.
func (c *Client) fail(ctx context.Context, gerr *Error, duration time.Duration) error {
	metrics.RecordGatewayRequest(gerr.Op, string(gerr.Kind), duration)

	logger := logging.FromContext(ctx, c.logger)
	event := logger.Error()
	if gerr.Kind == KindValidation {
		event = logger.Warn()
	}

	event.Err(gerr).
		Str("operation", gerr.Op).
		Str("method", gerr.Method).
		Str("url", gerr.URL).
		Str("kind", string(gerr.Kind)).
		Int("status", gerr.StatusCode).
		Dur("duration", duration).
		Msg("Gateway request failed")

	return gerr
}

// reject fails op with KindValidation before any request is built.
func (c *Client) reject(ctx context.Context, op, method string, cause error) error {
	return c.fail(ctx, &Error{
		Kind:    KindValidation,
		Op:      op,
		Method:  method,
		Message: cause.Error(),
		Err:     cause,
	}, 0)
}
