// VibraGuide - Linear Guide Vibration Analysis and Bearing Health Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibraguide

package gateway

import (
	"context"

	"golang.org/x/time/rate"
)

// WithRateLimit throttles outgoing requests to perSecond with the given burst.
// Callers block until a token is available; the wait counts against the
// request timeout. A non-positive perSecond leaves the client unthrottled.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(c *Client) {
		if perSecond <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// wait blocks until the limiter admits one request.
func (c *Client) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	if err := c.limiter.Wait(ctx); err != nil {
		kind := classifyTransport(ctx, err)
		// Wait fails early when the token would arrive after the deadline.
		if _, ok := ctx.Deadline(); ok && kind == KindNetwork {
			kind = KindTimeout
		}
		return &Error{Kind: kind, Message: "rate limit wait failed", Err: err}
	}
	return nil
}
