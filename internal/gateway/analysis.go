// VibraGuide - Linear Guide Vibration Analysis and Bearing Health Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibraguide

package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tomtom215/vibraguide/internal/models"
)

const (
	// DefaultResultsLimit is sent when ResultsQuery.Limit is not positive.
	DefaultResultsLimit = 50

	// DefaultTrendDays is sent when GetHealthTrend is called with days <= 0.
	DefaultTrendDays = 30
)

// ResultsQuery filters GetResults.
type ResultsQuery struct {
	GuideSpecID string // Omitted from the query when empty
	Limit       int
}

// AnalyzeVibration submits signal samples for analysis.
func (c *Client) AnalyzeVibration(ctx context.Context, analysis *models.AnalysisRequest) (*models.AnalysisResult, error) {
	const op = "AnalyzeVibration"
	if err := validateBody(ctx, c, op, analysis); err != nil {
		return nil, err
	}

	req, err := c.jsonRequest(ctx, &request{
		op:     op,
		method: http.MethodPost,
		path:   "/api/analyze",
	}, analysis)
	if err != nil {
		return nil, err
	}
	return call[models.AnalysisResult](ctx, c, req)
}

// UploadCSV uploads a vibration CSV for analysis against a guide spec.
// fs is the sampling rate in Hz.
func (c *Client) UploadCSV(ctx context.Context, file File, guideSpecID string, fs, velocity float64) (*models.AnalysisResult, error) {
	const op = "UploadCSV"
	if err := c.requireArg(ctx, op, http.MethodPost, "guide_spec_id", guideSpecID); err != nil {
		return nil, err
	}
	query := url.Values{}
	query.Set("guide_spec_id", guideSpecID)
	query.Set("fs", formatFloat(fs))
	query.Set("velocity", formatFloat(velocity))

	req, err := c.multipartRequest(ctx, &request{
		op:     op,
		method: http.MethodPost,
		path:   "/api/upload-csv",
		query:  query,
	}, file)
	if err != nil {
		return nil, err
	}
	return call[models.AnalysisResult](ctx, c, req)
}

// GetResults lists analysis results, newest first as ordered by the backend.
func (c *Client) GetResults(ctx context.Context, q ResultsQuery) ([]models.Result, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = DefaultResultsLimit
	}

	query := url.Values{}
	if q.GuideSpecID != "" {
		query.Set("guide_spec_id", q.GuideSpecID)
	}
	query.Set("limit", strconv.Itoa(limit))

	results, err := call[[]models.Result](ctx, c, &request{
		op:     "GetResults",
		method: http.MethodGet,
		path:   "/api/results",
		query:  query,
	})
	if err != nil {
		return nil, err
	}
	return *results, nil
}

// GetResult fetches one analysis result with all feature groups.
func (c *Client) GetResult(ctx context.Context, id string) (*models.Result, error) {
	const op = "GetResult"
	if err := c.requireArg(ctx, op, http.MethodGet, "id", id); err != nil {
		return nil, err
	}

	return call[models.Result](ctx, c, &request{
		op:     op,
		method: http.MethodGet,
		path:   "/api/results/" + url.PathEscape(id),
	})
}

// GetHealthTrend fetches the health score series of a guide spec over the
// last days days.
func (c *Client) GetHealthTrend(ctx context.Context, guideSpecID string, days int) (*models.HealthTrend, error) {
	const op = "GetHealthTrend"
	if err := c.requireArg(ctx, op, http.MethodGet, "guide_spec_id", guideSpecID); err != nil {
		return nil, err
	}
	if days <= 0 {
		days = DefaultTrendDays
	}

	query := url.Values{}
	query.Set("days", strconv.Itoa(days))

	return call[models.HealthTrend](ctx, c, &request{
		op:     op,
		method: http.MethodGet,
		path:   "/api/health-trend/" + url.PathEscape(guideSpecID),
		query:  query,
	})
}
