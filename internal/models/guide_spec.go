// VibraGuide - Linear Guide Vibration Analysis and Bearing Health Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibraguide

package models

// GuideSpec is a stored linear guide specification. The seal type, speed,
// stroke and lubrication columns are nullable in the backend and stay nil
// when it returns null.
type GuideSpec struct {
	ID          int64    `json:"id"`
	Series      string   `json:"series"`
	Type        string   `json:"type"`
	Preload     string   `json:"preload"`
	C0          float64  `json:"C0"`   // Static load rating
	C100        float64  `json:"C100"` // Dynamic load rating
	SealType    *string  `json:"seal_type"`
	SpeedMax    *float64 `json:"speed_max"`
	Stroke      *float64 `json:"stroke"`
	Lubrication *string  `json:"lubrication"`
}

// GuideSpecRequest is the body of POST /api/guide-specs. Numbers are sent
// as given; the backend owns their ranges.
type GuideSpecRequest struct {
	Series      string  `json:"series" validate:"required,notblank"`
	Type        string  `json:"type" validate:"required,notblank"`
	Preload     string  `json:"preload" validate:"required,notblank"`
	C0          float64 `json:"C0"`
	C100        float64 `json:"C100"`
	SealType    string  `json:"seal_type" validate:"required,notblank"`
	SpeedMax    float64 `json:"speed_max"`
	Stroke      float64 `json:"stroke"`
	Lubrication *string `json:"lubrication,omitempty"`
}

// GuideSpecCreated acknowledges a created guide specification.
type GuideSpecCreated struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}
