// VibraGuide - Linear Guide Vibration Analysis and Bearing Health Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibraguide

package models

import "github.com/goccy/go-json"

// DefaultRULModel is used when a prediction names no model.
const DefaultRULModel = "baseline"

// PHMTrainingSummary lists the PHM-2012 training bearings with their
// operating conditions and actual RUL.
type PHMTrainingSummary struct {
	TotalBearings int               `json:"total_bearings"`
	Bearings      []json.RawMessage `json:"bearings"`
}

// PHMAnalysisData is the precomputed analysis summary and per-bearing
// vibration statistics.
type PHMAnalysisData struct {
	Summary    json.RawMessage   `json:"summary"`
	Statistics []json.RawMessage `json:"statistics"`
}

// BearingUpload acknowledges an uploaded bearing CSV and carries its analysis.
type BearingUpload struct {
	ID          int64           `json:"id"`
	BearingName string          `json:"bearing_name"`
	Analysis    BearingAnalysis `json:"analysis"`
	Message     string          `json:"message"`
}

// BearingAnalysis holds the headline features of one bearing file. The full
// per-axis feature maps are kept raw.
type BearingAnalysis struct {
	HorizRMS      float64         `json:"horiz_rms"`
	VertRMS       float64         `json:"vert_rms"`
	HorizPeak     float64         `json:"horiz_peak"`
	VertPeak      float64         `json:"vert_peak"`
	HorizKurtosis float64         `json:"horiz_kurtosis"`
	VertKurtosis  float64         `json:"vert_kurtosis"`
	HorizFeatures json.RawMessage `json:"horiz_features,omitempty"`
	VertFeatures  json.RawMessage `json:"vert_features,omitempty"`
}

// BearingTestData is the stored time series of one test bearing.
type BearingTestData struct {
	BearingName string             `json:"bearing_name"`
	DataPoints  int                `json:"data_points"`
	TimeSeries  []BearingDataPoint `json:"time_series"`
}

// BearingDataPoint is one sample of BearingTestData.
type BearingDataPoint struct {
	TimeMin       float64  `json:"time_min"`
	HorizRMS      *float64 `json:"horiz_rms"`
	VertRMS       *float64 `json:"vert_rms"`
	HorizKurtosis *float64 `json:"horiz_kurtosis"`
	VertKurtosis  *float64 `json:"vert_kurtosis"`
}

// RULPrediction is a remaining useful life estimate in minutes.
type RULPrediction struct {
	ID              int64           `json:"id"`
	BearingName     string          `json:"bearing_name"`
	PredictedRULMin float64         `json:"predicted_RUL_min"`
	ModelType       string          `json:"model_type"`
	Confidence      float64         `json:"confidence"`
	Features        json.RawMessage `json:"features"`
}
