// VibraGuide - Linear Guide Vibration Analysis and Bearing Health Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibraguide

package routes

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
)

// View identifies the view component rendered for a route.
type View string

// Views of the application.
const (
	ViewDashboard           View = "Dashboard"
	ViewAnalysis            View = "Analysis"
	ViewFrequencyCalculator View = "FrequencyCalculator"
	ViewAlgorithms          View = "Algorithms"
	ViewGuideSpecs          View = "GuideSpecs"
	ViewHistory             View = "History"
	ViewPHMTraining         View = "PHMTraining"
	ViewPHMTesting          View = "PHMTesting"
	ViewPHMDatabase         View = "PHMDatabase"
)

// Route maps a path and a name to a view. Path segments written as :name
// match any single segment and are reported in Match.Params.
type Route struct {
	Path string `json:"path"`
	Name string `json:"name"`
	View View   `json:"view"`
}

// Table returns the application route table. Each call returns a fresh slice.
func Table() []Route {
	return []Route{
		{Path: "/", Name: "dashboard", View: ViewDashboard},
		{Path: "/analysis", Name: "analysis", View: ViewAnalysis},
		{Path: "/frequency", Name: "frequency", View: ViewFrequencyCalculator},
		{Path: "/algorithms", Name: "algorithms", View: ViewAlgorithms},
		{Path: "/guide-specs", Name: "guide-specs", View: ViewGuideSpecs},
		{Path: "/history", Name: "history", View: ViewHistory},
		{Path: "/phm-training", Name: "phm-training", View: ViewPHMTraining},
		{Path: "/phm-testing", Name: "phm-testing", View: ViewPHMTesting},
		{Path: "/phm-database", Name: "phm-database", View: ViewPHMDatabase},
	}
}

// Match is a resolved route and the values of its :param segments.
type Match struct {
	Route  Route             `json:"route"`
	Params map[string]string `json:"params,omitempty"`
}

// Resolver resolves URL paths through a chi router with one handler per
// route. It is immutable after construction and safe for concurrent use.
type Resolver struct {
	mux    *chi.Mux
	routes []Route
	byName map[string]Route
}

type matchKey struct{}

// NewResolver validates routes and builds a resolver over them.
// Paths, names and views must all be unique; two paths that differ only in
// parameter names count as the same path.
func NewResolver(routes []Route) (*Resolver, error) {
	r := &Resolver{
		mux:    chi.NewRouter(),
		routes: make([]Route, 0, len(routes)),
		byName: make(map[string]Route, len(routes)),
	}
	r.mux.NotFound(func(http.ResponseWriter, *http.Request) {})
	r.mux.MethodNotAllowed(func(http.ResponseWriter, *http.Request) {})

	shapes := make(map[string]string, len(routes))
	views := make(map[View]string, len(routes))

	for _, route := range routes {
		if err := checkRoute(route); err != nil {
			return nil, err
		}

		route.Path = normalizePath(route.Path)
		pattern, shape, err := chiPattern(route.Path)
		if err != nil {
			return nil, fmt.Errorf("route %q: %w", route.Name, err)
		}

		if prev, dup := shapes[shape]; dup {
			return nil, fmt.Errorf("duplicate route path %q (%s and %s)", route.Path, prev, route.Name)
		}
		if _, dup := r.byName[route.Name]; dup {
			return nil, fmt.Errorf("duplicate route name %q", route.Name)
		}
		if prev, dup := views[route.View]; dup {
			return nil, fmt.Errorf("duplicate route view %q (%s and %s)", route.View, prev, route.Name)
		}

		if err := r.handle(pattern, route); err != nil {
			return nil, err
		}

		r.routes = append(r.routes, route)
		r.byName[route.Name] = route
		shapes[shape] = route.Name
		views[route.View] = route.Name
	}

	return r, nil
}

// handle registers route under pattern. The handler records the route and
// chi's URL parameters into the *Match carried by the request context.
func (r *Resolver) handle(pattern string, route Route) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("route %q: %v", route.Name, p)
		}
	}()

	r.mux.Get(pattern, func(_ http.ResponseWriter, req *http.Request) {
		m, ok := req.Context().Value(matchKey{}).(*Match)
		if !ok {
			return
		}
		m.Route = route
		m.Params = urlParams(chi.RouteContext(req.Context()))
	})
	return nil
}

func urlParams(rctx *chi.Context) map[string]string {
	if rctx == nil || len(rctx.URLParams.Keys) == 0 {
		return nil
	}
	params := make(map[string]string, len(rctx.URLParams.Keys))
	for i, key := range rctx.URLParams.Keys {
		value := rctx.URLParams.Values[i]
		if unescaped, err := url.PathUnescape(value); err == nil {
			value = unescaped
		}
		params[key] = value
	}
	return params
}

func checkRoute(route Route) error {
	switch {
	case !strings.HasPrefix(route.Path, "/"):
		return fmt.Errorf("route %q: path %q must start with /", route.Name, route.Path)
	case strings.ContainsAny(route.Path, "{}*?#"):
		return fmt.Errorf("route %q: path %q may only use :param segments", route.Name, route.Path)
	case route.Name == "":
		return fmt.Errorf("route %q: name is required", route.Path)
	case route.View == "":
		return fmt.Errorf("route %q: view is required", route.Name)
	}
	return nil
}

// chiPattern turns :param segments into chi {param} patterns. shape is the
// pattern with parameter names erased, used to detect duplicate paths.
func chiPattern(path string) (pattern, shape string, err error) {
	segments := strings.Split(path, "/")
	shapeSegments := make([]string, len(segments))
	seen := map[string]bool{}

	for i, seg := range segments {
		shapeSegments[i] = seg
		if !strings.HasPrefix(seg, ":") {
			continue
		}
		name := seg[1:]
		if !validParamName(name) {
			return "", "", fmt.Errorf("invalid parameter %q in path %q", seg, path)
		}
		if seen[name] {
			return "", "", fmt.Errorf("parameter %q repeated in path %q", name, path)
		}
		seen[name] = true
		segments[i] = "{" + name + "}"
		shapeSegments[i] = "{}"
	}

	return strings.Join(segments, "/"), strings.Join(shapeSegments, "/"), nil
}

func validParamName(name string) bool {
	if name == "" {
		return false
	}
	for i, c := range name {
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// normalizePath drops the query string, fragment and trailing slashes.
func normalizePath(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if trimmed := strings.TrimRight(path, "/"); trimmed != "" {
		return trimmed
	}
	return "/"
}

// Match resolves a URL path to its route and parameter values. The query
// string, fragment and a trailing slash are ignored.
func (r *Resolver) Match(path string) (Match, bool) {
	m := &Match{}
	ctx := context.WithValue(context.Background(), matchKey{}, m)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, normalizePath(path), http.NoBody)
	if err != nil {
		return Match{}, false
	}
	r.mux.ServeHTTP(discardWriter{}, req)

	if m.Route.Name == "" {
		return Match{}, false
	}
	return *m, true
}

// Resolve returns the route for a URL path.
func (r *Resolver) Resolve(path string) (Route, bool) {
	m, ok := r.Match(path)
	return m.Route, ok
}

// ByName returns the route registered under name.
func (r *Resolver) ByName(name string) (Route, bool) {
	route, ok := r.byName[name]
	return route, ok
}

// Routes returns the routes in registration order.
func (r *Resolver) Routes() []Route {
	out := make([]Route, len(r.routes))
	copy(out, r.routes)
	return out
}

// discardWriter satisfies http.ResponseWriter for in-process resolution.
type discardWriter struct{}

func (discardWriter) Header() http.Header         { return http.Header{} }
func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }
func (discardWriter) WriteHeader(int)             {}
