// VibraGuide - Linear Guide Vibration Analysis and Bearing Health Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibraguide

package models

import "github.com/goccy/go-json"

// Defaults the backend applies to the PHM database queries.
const (
	DefaultFilesLimit        = 100
	DefaultMeasurementsLimit = 1000
	DefaultAnomalyThreshold  = 10.0
	DefaultAnomalyLimit      = 100
)

// PHMBearingList lists every bearing in the PHM measurement database.
type PHMBearingList struct {
	TotalBearings int               `json:"total_bearings"`
	Bearings      []json.RawMessage `json:"bearings"`
}

// The database views below are generated from SQL rows; their keys are
// passed through untouched.
type (
	// PHMBearingInfo describes one bearing and its operating condition.
	PHMBearingInfo map[string]json.RawMessage

	// PHMFileList is one page of a bearing's measurement files.
	PHMFileList map[string]json.RawMessage

	// PHMMeasurements is one page of raw acceleration rows.
	PHMMeasurements map[string]json.RawMessage

	// PHMFileData is the full content of one measurement file.
	PHMFileData map[string]json.RawMessage

	// PHMBearingStatistics aggregates a bearing's per-file statistics.
	PHMBearingStatistics map[string]json.RawMessage
)

// PHMAnomalies lists measurements whose acceleration exceeds a threshold.
type PHMAnomalies struct {
	BearingName         string            `json:"bearing_name"`
	ThresholdHorizontal float64           `json:"threshold_horizontal"`
	ThresholdVertical   float64           `json:"threshold_vertical"`
	AnomalyCount        int               `json:"anomaly_count"`
	Anomalies           []json.RawMessage `json:"anomalies"`
}
