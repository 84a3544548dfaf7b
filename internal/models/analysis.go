// VibraGuide - Linear Guide Vibration Analysis and Bearing Health Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibraguide

package models

import (
	"time"

	"github.com/goccy/go-json"
)

// AnalysisRequest submits raw signal samples for analysis.
type AnalysisRequest struct {
	SignalData  []float64 `json:"signal_data" validate:"required"`
	Fs          float64   `json:"fs"` // Sampling rate, Hz
	Velocity    float64   `json:"velocity"`
	GuideSpecID int64     `json:"guide_spec_id"`
}

// Result is a stored analysis record. Listing endpoints return a subset of
// the fields, so absent ones stay nil.
type Result struct {
	ID                  int64           `json:"id"`
	GuideSpecID         *int64          `json:"guide_spec_id,omitempty"`
	Timestamp           string          `json:"timestamp"`
	Velocity            *float64        `json:"velocity"`
	HealthScore         *float64        `json:"health_score"`
	TimeFeatures        json.RawMessage `json:"time_features,omitempty"`
	FrequencyFeatures   json.RawMessage `json:"frequency_features,omitempty"`
	EnvelopeFeatures    json.RawMessage `json:"envelope_features,omitempty"`
	HigherOrderFeatures json.RawMessage `json:"higher_order_features,omitempty"`
	Findings            json.RawMessage `json:"findings,omitempty"`
	Recommendations     json.RawMessage `json:"recommendations,omitempty"`
}

// AnalysisResult is the payload returned by analyze and CSV upload.
type AnalysisResult = Result

// HealthTrend is the health score series of one guide spec over a day window.
type HealthTrend struct {
	GuideSpecID int64        `json:"guide_spec_id"`
	Days        int          `json:"days"`
	DataPoints  int          `json:"data_points"`
	Trend       []TrendPoint `json:"trend"`
}

// TrendPoint is one sample of a HealthTrend.
type TrendPoint struct {
	Timestamp   string   `json:"timestamp"`
	HealthScore *float64 `json:"health_score"`
	Velocity    *float64 `json:"velocity"`
}

// timestampLayouts are the forms the backend emits (Python isoformat, with or
// without microseconds and offset).
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

// ParseTimestamp parses a backend timestamp. Values without an offset are UTC.
func ParseTimestamp(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// Time returns the parsed Timestamp.
func (r *Result) Time() (time.Time, error) {
	return ParseTimestamp(r.Timestamp)
}
