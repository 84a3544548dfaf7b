// VibraGuide - Linear Guide Vibration Analysis and Bearing Health Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibraguide

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/tomtom215/vibraguide/internal/gateway"
	"github.com/tomtom215/vibraguide/internal/models"
	"github.com/tomtom215/vibraguide/internal/routes"
)

var errMissingCommand = errors.New("missing command")

// usageError marks bad command-line arguments (exit code 2).
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

func usagef(format string, args ...interface{}) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// command is one CLI subcommand. run returns the value printed as JSON.
type command struct {
	usage   string
	summary string
	minArgs int
	maxArgs int
	run     func(ctx context.Context, api gateway.API, args []string) (interface{}, error)
}

var commands = map[string]command{
	"ping": {
		summary: "Show the backend banner",
		run: func(ctx context.Context, api gateway.API, _ []string) (interface{}, error) {
			return api.Ping(ctx)
		},
	},
	"specs": {
		summary: "List guide specifications",
		run: func(ctx context.Context, api gateway.API, _ []string) (interface{}, error) {
			return api.GetGuideSpecs(ctx)
		},
	},
	"spec": {
		usage:   "<id>",
		summary: "Show one guide specification",
		minArgs: 1, maxArgs: 1,
		run: func(ctx context.Context, api gateway.API, args []string) (interface{}, error) {
			return api.GetGuideSpec(ctx, args[0])
		},
	},
	"create-spec": {
		usage:   "<json-file>",
		summary: "Create a guide specification",
		minArgs: 1, maxArgs: 1,
		run: func(ctx context.Context, api gateway.API, args []string) (interface{}, error) {
			var req models.GuideSpecRequest
			if err := readJSONFile(args[0], &req); err != nil {
				return nil, err
			}
			return api.CreateGuideSpec(ctx, &req)
		},
	},
	"frequencies": {
		usage:   "<json-file>",
		summary: "Calculate bearing defect frequencies",
		minArgs: 1, maxArgs: 1,
		run: func(ctx context.Context, api gateway.API, args []string) (interface{}, error) {
			var req models.FrequencyRequest
			if err := readJSONFile(args[0], &req); err != nil {
				return nil, err
			}
			return api.CalculateFrequencies(ctx, &req)
		},
	},
	"analyze": {
		usage:   "<json-file>",
		summary: "Analyze a vibration signal",
		minArgs: 1, maxArgs: 1,
		run: func(ctx context.Context, api gateway.API, args []string) (interface{}, error) {
			var req models.AnalysisRequest
			if err := readJSONFile(args[0], &req); err != nil {
				return nil, err
			}
			return api.AnalyzeVibration(ctx, &req)
		},
	},
	"upload-csv": {
		usage:   "<file> <guide-spec-id> <fs> <velocity>",
		summary: "Upload a vibration CSV for analysis",
		minArgs: 4, maxArgs: 4,
		run: func(ctx context.Context, api gateway.API, args []string) (interface{}, error) {
			fs, err := parseFloatArg("fs", args[2])
			if err != nil {
				return nil, err
			}
			velocity, err := parseFloatArg("velocity", args[3])
			if err != nil {
				return nil, err
			}
			file, f, err := gateway.OpenFile(args[0])
			if err != nil {
				return nil, err
			}
			defer f.Close()
			return api.UploadCSV(ctx, file, args[1], fs, velocity)
		},
	},
	"results": {
		usage:   "[-guide id] [-limit n]",
		summary: "List analysis results",
		maxArgs: -1,
		run: func(ctx context.Context, api gateway.API, args []string) (interface{}, error) {
			var q gateway.ResultsQuery
			fs := flag.NewFlagSet("results", flag.ContinueOnError)
			fs.SetOutput(io.Discard)
			fs.StringVar(&q.GuideSpecID, "guide", "", "guide spec id")
			fs.IntVar(&q.Limit, "limit", gateway.DefaultResultsLimit, "maximum results")
			if err := fs.Parse(args); err != nil {
				return nil, usagef("results: %v", err)
			}
			if fs.NArg() > 0 {
				return nil, usagef("results: unexpected argument %q", fs.Arg(0))
			}
			return api.GetResults(ctx, q)
		},
	},
	"result": {
		usage:   "<id>",
		summary: "Show one analysis result",
		minArgs: 1, maxArgs: 1,
		run: func(ctx context.Context, api gateway.API, args []string) (interface{}, error) {
			return api.GetResult(ctx, args[0])
		},
	},
	"trend": {
		usage:   "<guide-spec-id> [days]",
		summary: "Show the health trend of a guide spec",
		minArgs: 1, maxArgs: 2,
		run: func(ctx context.Context, api gateway.API, args []string) (interface{}, error) {
			days := gateway.DefaultTrendDays
			if len(args) == 2 {
				n, err := parseIntArg("days", args[1])
				if err != nil {
					return nil, err
				}
				days = n
			}
			return api.GetHealthTrend(ctx, args[0], days)
		},
	},
	"phm-summary": {
		summary: "List PHM-2012 training bearings",
		run: func(ctx context.Context, api gateway.API, _ []string) (interface{}, error) {
			return api.GetPHMTrainingSummary(ctx)
		},
	},
	"phm-analysis": {
		summary: "Show the precomputed PHM analysis",
		run: func(ctx context.Context, api gateway.API, _ []string) (interface{}, error) {
			return api.GetPHMAnalysisData(ctx)
		},
	},
	"upload-bearing": {
		usage:   "<file> <bearing>",
		summary: "Upload a bearing CSV for feature extraction",
		minArgs: 2, maxArgs: 2,
		run: func(ctx context.Context, api gateway.API, args []string) (interface{}, error) {
			file, f, err := gateway.OpenFile(args[0])
			if err != nil {
				return nil, err
			}
			defer f.Close()
			return api.UploadBearingData(ctx, file, args[1])
		},
	},
	"test-data": {
		usage:   "<bearing>",
		summary: "Show the stored time series of a test bearing",
		minArgs: 1, maxArgs: 1,
		run: func(ctx context.Context, api gateway.API, args []string) (interface{}, error) {
			return api.GetBearingTestData(ctx, args[0])
		},
	},
	"predict-rul": {
		usage:   "<bearing> [model]",
		summary: "Predict remaining useful life (model defaults to baseline)",
		minArgs: 1, maxArgs: 2,
		run: func(ctx context.Context, api gateway.API, args []string) (interface{}, error) {
			model := ""
			if len(args) == 2 {
				model = args[1]
			}
			return api.PredictRUL(ctx, args[0], model)
		},
	},
	"phm-bearings": {
		summary: "List bearings in the PHM measurement database",
		run: func(ctx context.Context, api gateway.API, _ []string) (interface{}, error) {
			return api.ListPHMBearings(ctx)
		},
	},
	"phm-bearing": {
		usage:   "<bearing>",
		summary: "Describe one bearing of the PHM database",
		minArgs: 1, maxArgs: 1,
		run: func(ctx context.Context, api gateway.API, args []string) (interface{}, error) {
			return api.GetPHMBearing(ctx, args[0])
		},
	},
	"phm-files": {
		usage:   "<bearing> [offset] [limit]",
		summary: "Page through a bearing's measurement files",
		minArgs: 1, maxArgs: 3,
		run: func(ctx context.Context, api gateway.API, args []string) (interface{}, error) {
			page, err := parsePage(args[1:])
			if err != nil {
				return nil, err
			}
			return api.GetPHMBearingFiles(ctx, args[0], page)
		},
	},
	"phm-measurements": {
		usage:   "<bearing> [offset] [limit]",
		summary: "Page through a bearing's raw measurements",
		minArgs: 1, maxArgs: 3,
		run: func(ctx context.Context, api gateway.API, args []string) (interface{}, error) {
			page, err := parsePage(args[1:])
			if err != nil {
				return nil, err
			}
			return api.GetPHMMeasurements(ctx, args[0], gateway.MeasurementsQuery{Offset: page.Offset, Limit: page.Limit})
		},
	},
	"phm-file": {
		usage:   "<bearing> <file-number>",
		summary: "Show the full data of one measurement file",
		minArgs: 2, maxArgs: 2,
		run: func(ctx context.Context, api gateway.API, args []string) (interface{}, error) {
			n, err := parseIntArg("file-number", args[1])
			if err != nil {
				return nil, err
			}
			return api.GetPHMFileData(ctx, args[0], n)
		},
	},
	"phm-stats": {
		usage:   "<bearing>",
		summary: "Show per-file statistics of a bearing",
		minArgs: 1, maxArgs: 1,
		run: func(ctx context.Context, api gateway.API, args []string) (interface{}, error) {
			return api.GetPHMBearingStatistics(ctx, args[0])
		},
	},
	"phm-anomalies": {
		usage:   "<bearing> [threshold-h] [threshold-v] [limit]",
		summary: "Search measurements above the acceleration thresholds",
		minArgs: 1, maxArgs: 4,
		run: func(ctx context.Context, api gateway.API, args []string) (interface{}, error) {
			var q gateway.AnomalyQuery
			var err error
			if len(args) > 1 {
				var h float64
				if h, err = parseFloatArg("threshold-h", args[1]); err != nil {
					return nil, err
				}
				q.ThresholdH = &h
			}
			if len(args) > 2 {
				var v float64
				if v, err = parseFloatArg("threshold-v", args[2]); err != nil {
					return nil, err
				}
				q.ThresholdV = &v
			}
			if len(args) > 3 {
				if q.Limit, err = parseIntArg("limit", args[3]); err != nil {
					return nil, err
				}
			}
			return api.SearchPHMAnomalies(ctx, args[0], q)
		},
	},
	"routes": {
		summary: "List the client route table",
		run: func(_ context.Context, _ gateway.API, _ []string) (interface{}, error) {
			resolver, err := routes.NewResolver(routes.Table())
			if err != nil {
				return nil, err
			}
			return resolver.Routes(), nil
		},
	},
	"resolve": {
		usage:   "<path>",
		summary: "Resolve a URL path to its view",
		minArgs: 1, maxArgs: 1,
		run: func(_ context.Context, _ gateway.API, args []string) (interface{}, error) {
			resolver, err := routes.NewResolver(routes.Table())
			if err != nil {
				return nil, err
			}
			route, ok := resolver.Resolve(args[0])
			if !ok {
				return nil, fmt.Errorf("no route for %q", args[0])
			}
			return route, nil
		},
	},
}

// dispatch runs the named command and prints its result or error.
func dispatch(ctx context.Context, api gateway.API, args []string, stdout, stderr io.Writer) int {
	name, rest := args[0], args[1:]

	cmd, ok := commands[name]
	if !ok {
		_, _ = fmt.Fprintf(stderr, "vibraguide: unknown command %q\n", name)
		return exitUsage
	}
	if len(rest) < cmd.minArgs || (cmd.maxArgs >= 0 && len(rest) > cmd.maxArgs) {
		_, _ = fmt.Fprintf(stderr, "usage: vibraguide %s %s\n", name, cmd.usage)
		return exitUsage
	}

	result, err := cmd.run(ctx, api, rest)
	if err != nil {
		return reportError(stderr, name, err)
	}

	if err := writeJSON(stdout, result); err != nil {
		_, _ = fmt.Fprintf(stderr, "vibraguide: %s: encode output: %v\n", name, err)
		return exitError
	}
	return exitOK
}

func reportError(stderr io.Writer, name string, err error) int {
	var uerr *usageError
	if errors.As(err, &uerr) {
		_, _ = fmt.Fprintf(stderr, "vibraguide: %s: %v\n", name, err)
		return exitUsage
	}

	if kind := gateway.KindOf(err); kind != "" {
		_, _ = fmt.Fprintf(stderr, "vibraguide: %s failed (%s): %v\n", name, kind, err)
		if kind == gateway.KindValidation {
			return exitUsage
		}
		return exitError
	}

	_, _ = fmt.Fprintf(stderr, "vibraguide: %s: %v\n", name, err)
	return exitError
}

func writeJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

func readJSONFile(path string, v interface{}) error {
	data, err := os.ReadFile(path) //nolint:gosec // Path comes from the operator
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return usagef("parse %s: %v", path, err)
	}
	return nil
}

func parseFloatArg(name, value string) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, usagef("%s must be a number, got %q", name, value)
	}
	return f, nil
}

func parseIntArg(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, usagef("%s must be an integer, got %q", name, value)
	}
	return n, nil
}

func parsePage(args []string) (gateway.Page, error) {
	var page gateway.Page
	var err error
	if len(args) > 0 {
		if page.Offset, err = parseIntArg("offset", args[0]); err != nil {
			return page, err
		}
	}
	if len(args) > 1 {
		if page.Limit, err = parseIntArg("limit", args[1]); err != nil {
			return page, err
		}
	}
	return page, nil
}
