// VibraGuide - Linear Guide Vibration Analysis and Bearing Health Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibraguide

/*
Package gateway is the typed client for the VibraGuide analytics backend.

Every view of the application reaches the backend through a single Client:
guide specification CRUD, bearing defect frequency calculation, vibration
signal analysis and CSV upload, result history and health trends, and the
PHM-2012 bearing workflows (training summary, bearing data upload, test data,
remaining useful life prediction, measurement database queries).

# Construction

	client := gateway.New(gateway.Config{BaseURL: cfg.API.URL},
		gateway.WithLogger(logging.WithComponent("gateway")),
	)

The base URL defaults to http://localhost:8081 and every request is bounded
by a 30 second timeout. The Client holds no per-call state and is safe for
concurrent use.

# Errors

Operations return *Error, classified by Kind:

	spec, err := client.GetGuideSpec(ctx, "7")
	switch {
	case gateway.IsNotFound(err):
		// 404 from the backend
	case gateway.KindOf(err) == gateway.KindValidation:
		// missing argument, nothing was sent
	case err != nil:
		// network, timeout, status, parse, canceled or unavailable
	}

Each failure is logged exactly once by the gateway (error level, warn for
validation) with the operation, method, url, kind, status, request_id and
duration fields, so callers should not log it again.

# Circuit Breaker

WithCircuitBreaker enables a sony/gobreaker breaker. Only network failures,
timeouts and 5xx answers count against it. The gateway never retries.

# Rate Limiting

WithRateLimit(perSecond, burst) makes callers wait for a token before each
request. A context that ends while waiting fails with KindCanceled or
KindTimeout and nothing is sent.

# Metrics

Requests are counted in vibraguide_gateway_requests_total by operation and
outcome, with latency in vibraguide_gateway_request_duration_seconds.
*/
package gateway
