// VibraGuide - Linear Guide Vibration Analysis and Bearing Health Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibraguide

package gateway

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/tomtom215/vibraguide/internal/models"
	"github.com/tomtom215/vibraguide/internal/validation"
)

// API defines every analytics backend operation.
//
// Client implements it for production use; views and the CLI depend on the
// interface so tests can substitute a fake.
//
// All methods follow a consistent pattern:
//   - Accept context.Context as first parameter for cancellation
//   - Issue exactly one HTTP request, or none when an argument is invalid
//   - Return the backend body decoded into a type from internal/models
//   - Return *Error on failure, already logged once
type API interface {
	Ping(ctx context.Context) (*models.ServiceStatus, error)

	// Guide specifications and frequencies
	GetGuideSpecs(ctx context.Context) ([]models.GuideSpec, error)
	GetGuideSpec(ctx context.Context, id string) (*models.GuideSpec, error)
	CreateGuideSpec(ctx context.Context, spec *models.GuideSpecRequest) (*models.GuideSpecCreated, error)
	CalculateFrequencies(ctx context.Context, req *models.FrequencyRequest) (*models.FrequencyResult, error)

	// Vibration analysis
	AnalyzeVibration(ctx context.Context, req *models.AnalysisRequest) (*models.AnalysisResult, error)
	UploadCSV(ctx context.Context, file File, guideSpecID string, fs, velocity float64) (*models.AnalysisResult, error)
	GetResults(ctx context.Context, q ResultsQuery) ([]models.Result, error)
	GetResult(ctx context.Context, id string) (*models.Result, error)
	GetHealthTrend(ctx context.Context, guideSpecID string, days int) (*models.HealthTrend, error)

	// PHM-2012 workflows
	GetPHMTrainingSummary(ctx context.Context) (*models.PHMTrainingSummary, error)
	GetPHMAnalysisData(ctx context.Context) (*models.PHMAnalysisData, error)
	UploadBearingData(ctx context.Context, file File, bearingName string) (*models.BearingUpload, error)
	GetBearingTestData(ctx context.Context, bearingName string) (*models.BearingTestData, error)
	PredictRUL(ctx context.Context, bearingName, modelType string) (*models.RULPrediction, error)

	// PHM measurement database
	ListPHMBearings(ctx context.Context) (*models.PHMBearingList, error)
	GetPHMBearing(ctx context.Context, bearingName string) (*models.PHMBearingInfo, error)
	GetPHMBearingFiles(ctx context.Context, bearingName string, page Page) (*models.PHMFileList, error)
	GetPHMMeasurements(ctx context.Context, bearingName string, q MeasurementsQuery) (*models.PHMMeasurements, error)
	GetPHMFileData(ctx context.Context, bearingName string, fileNumber int) (*models.PHMFileData, error)
	GetPHMBearingStatistics(ctx context.Context, bearingName string) (*models.PHMBearingStatistics, error)
	SearchPHMAnomalies(ctx context.Context, bearingName string, q AnomalyQuery) (*models.PHMAnomalies, error)
}

// requireArg rejects a blank path or query argument.
func (c *Client) requireArg(ctx context.Context, op, method, field, value string) error {
	if strings.TrimSpace(value) == "" {
		return c.reject(ctx, op, method, validation.Required(field))
	}
	return nil
}

// validateBody rejects a nil or invalid request body.
func validateBody[T any](ctx context.Context, c *Client, op string, body *T) error {
	if body == nil {
		return c.reject(ctx, op, http.MethodPost, validation.Required("body"))
	}
	if verr := validation.ValidateStruct(body); verr != nil {
		return c.reject(ctx, op, http.MethodPost, verr)
	}
	return nil
}

// formatFloat renders a query value without exponent or trailing zeros.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
