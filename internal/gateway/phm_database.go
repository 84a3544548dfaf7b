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

// Page selects a window of rows. A non-positive Limit takes the endpoint default.
type Page struct {
	Offset int
	Limit  int
}

// MeasurementsQuery filters GetPHMMeasurements.
type MeasurementsQuery struct {
	FileNumber *int // Omitted when nil
	Offset     int
	Limit      int
}

// AnomalyQuery filters SearchPHMAnomalies. Nil thresholds and a non-positive
// limit take the backend defaults.
type AnomalyQuery struct {
	ThresholdH *float64 // Nil means DefaultAnomalyThreshold
	ThresholdV *float64 // Nil means DefaultAnomalyThreshold
	Limit      int
}

func bearingPath(name, suffix string) string {
	return "/api/phm/database/bearing/" + url.PathEscape(name) + suffix
}

func pageValues(offset, limit, defaultLimit int) url.Values {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	query := url.Values{}
	query.Set("offset", strconv.Itoa(offset))
	query.Set("limit", strconv.Itoa(limit))
	return query
}

// ListPHMBearings lists every bearing in the measurement database.
func (c *Client) ListPHMBearings(ctx context.Context) (*models.PHMBearingList, error) {
	return call[models.PHMBearingList](ctx, c, &request{
		op:     "ListPHMBearings",
		method: http.MethodGet,
		path:   "/api/phm/database/bearings",
	})
}

// GetPHMBearing describes one bearing.
func (c *Client) GetPHMBearing(ctx context.Context, bearingName string) (*models.PHMBearingInfo, error) {
	const op = "GetPHMBearing"
	if err := c.requireArg(ctx, op, http.MethodGet, "bearing_name", bearingName); err != nil {
		return nil, err
	}

	return call[models.PHMBearingInfo](ctx, c, &request{
		op:     op,
		method: http.MethodGet,
		path:   bearingPath(bearingName, ""),
	})
}

// GetPHMBearingFiles pages through a bearing's measurement files.
func (c *Client) GetPHMBearingFiles(ctx context.Context, bearingName string, page Page) (*models.PHMFileList, error) {
	const op = "GetPHMBearingFiles"
	if err := c.requireArg(ctx, op, http.MethodGet, "bearing_name", bearingName); err != nil {
		return nil, err
	}

	return call[models.PHMFileList](ctx, c, &request{
		op:     op,
		method: http.MethodGet,
		path:   bearingPath(bearingName, "/files"),
		query:  pageValues(page.Offset, page.Limit, models.DefaultFilesLimit),
	})
}

// GetPHMMeasurements pages through raw acceleration rows, optionally of a single file.
func (c *Client) GetPHMMeasurements(ctx context.Context, bearingName string, q MeasurementsQuery) (*models.PHMMeasurements, error) {
	const op = "GetPHMMeasurements"
	if err := c.requireArg(ctx, op, http.MethodGet, "bearing_name", bearingName); err != nil {
		return nil, err
	}

	query := pageValues(q.Offset, q.Limit, models.DefaultMeasurementsLimit)
	if q.FileNumber != nil {
		query.Set("file_number", strconv.Itoa(*q.FileNumber))
	}

	return call[models.PHMMeasurements](ctx, c, &request{
		op:     op,
		method: http.MethodGet,
		path:   bearingPath(bearingName, "/measurements"),
		query:  query,
	})
}

// GetPHMFileData fetches the complete content of one measurement file.
func (c *Client) GetPHMFileData(ctx context.Context, bearingName string, fileNumber int) (*models.PHMFileData, error) {
	const op = "GetPHMFileData"
	if err := c.requireArg(ctx, op, http.MethodGet, "bearing_name", bearingName); err != nil {
		return nil, err
	}

	return call[models.PHMFileData](ctx, c, &request{
		op:     op,
		method: http.MethodGet,
		path:   bearingPath(bearingName, "/file/"+strconv.Itoa(fileNumber)+"/data"),
	})
}

// GetPHMBearingStatistics fetches per-file statistics of a bearing.
func (c *Client) GetPHMBearingStatistics(ctx context.Context, bearingName string) (*models.PHMBearingStatistics, error) {
	const op = "GetPHMBearingStatistics"
	if err := c.requireArg(ctx, op, http.MethodGet, "bearing_name", bearingName); err != nil {
		return nil, err
	}

	return call[models.PHMBearingStatistics](ctx, c, &request{
		op:     op,
		method: http.MethodGet,
		path:   bearingPath(bearingName, "/statistics"),
	})
}

// SearchPHMAnomalies lists measurements above the acceleration thresholds.
func (c *Client) SearchPHMAnomalies(ctx context.Context, bearingName string, q AnomalyQuery) (*models.PHMAnomalies, error) {
	const op = "SearchPHMAnomalies"
	if err := c.requireArg(ctx, op, http.MethodGet, "bearing_name", bearingName); err != nil {
		return nil, err
	}

	thresholdH := models.DefaultAnomalyThreshold
	if q.ThresholdH != nil {
		thresholdH = *q.ThresholdH
	}
	thresholdV := models.DefaultAnomalyThreshold
	if q.ThresholdV != nil {
		thresholdV = *q.ThresholdV
	}
	limit := q.Limit
	if limit <= 0 {
		limit = models.DefaultAnomalyLimit
	}

	query := url.Values{}
	query.Set("threshold_h", formatFloat(thresholdH))
	query.Set("threshold_v", formatFloat(thresholdV))
	query.Set("limit", strconv.Itoa(limit))

	return call[models.PHMAnomalies](ctx, c, &request{
		op:     op,
		method: http.MethodGet,
		path:   bearingPath(bearingName, "/anomalies"),
		query:  query,
	})
}
