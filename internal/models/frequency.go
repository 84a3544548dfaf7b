// VibraGuide - Linear Guide Vibration Analysis and Bearing Health Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibraguide

package models

// FrequencyRequest holds the geometry and speed used to derive the
// characteristic defect frequencies of a recirculating ball guide.
type FrequencyRequest struct {
	V               float64 `json:"v"` // Travel speed, m/s
	D               float64 `json:"D"` // Ball diameter, mm
	L               float64 `json:"L"` // Ball pitch, mm
	NBalls          int     `json:"n_balls"`
	ContactAngle    float64 `json:"contact_angle"` // Degrees
	RacewayDiameter float64 `json:"raceway_diameter"`
}

// FrequencyResult lists the defect frequencies in Hz.
type FrequencyResult struct {
	BPF       float64    `json:"BPF"`
	BSF       float64    `json:"BSF"`
	CageFreq  float64    `json:"Cage_Freq"`
	BPF2x     float64    `json:"2xBPF"`
	BPF3x     float64    `json:"3xBPF"`
	Harmonics []Harmonic `json:"harmonics"`
}

// Harmonic is one BPF multiple.
type Harmonic struct {
	Order     int     `json:"order"`
	Frequency float64 `json:"frequency"`
}
