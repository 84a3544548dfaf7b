// VibraGuide - Linear Guide Vibration Analysis and Bearing Health Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibraguide

package models

// ServiceStatus is the backend root banner.
type ServiceStatus struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Status  string `json:"status"`
}
