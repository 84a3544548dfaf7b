// VibraGuide - Linear Guide Vibration Analysis and Bearing Health Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibraguide

// Package routes holds the client-side route table that maps URL paths to
// views, and a chi-backed resolver over it.
//
//	resolver, err := routes.NewResolver(routes.Table())
//	route, ok := resolver.Resolve("/phm-testing/?bearing=Bearing1_3")
//	// route.View == routes.ViewPHMTesting
//
// Route paths may carry :name segments. Match reports their values:
//
//	m, ok := resolver.Match("/history/42")
//	// with a route "/history/:resultId", m.Params["resultId"] == "42"
package routes
