// VibraGuide - Linear Guide Vibration Analysis and Bearing Health Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibraguide

// Package validation provides struct validation using go-playground/validator v10.
//
// Request schemas in internal/models carry `validate` tags; the gateway runs
// ValidateStruct on them before building an HTTP request so that malformed
// input never reaches the backend.
//
//	type FrequencyRequest struct {
//	    V      float64 `json:"v" validate:"gte=0"`
//	    NBalls int     `json:"n_balls" validate:"min=1"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    return verr // "n_balls must be at least 1"
//	}
//
// Field names in messages use the json tag of the field, matching the names
// the backend uses on the wire.
//
// Custom validators:
//   - notblank: string must contain a non-whitespace character
package validation
