// VibraGuide - Linear Guide Vibration Analysis and Bearing Health Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibraguide

package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/tomtom215/vibraguide/internal/models"
)

// GetPHMTrainingSummary lists the PHM-2012 training bearings.
func (c *Client) GetPHMTrainingSummary(ctx context.Context) (*models.PHMTrainingSummary, error) {
	return call[models.PHMTrainingSummary](ctx, c, &request{
		op:     "GetPHMTrainingSummary",
		method: http.MethodGet,
		path:   "/api/phm/training-summary",
	})
}

// GetPHMAnalysisData fetches the precomputed PHM analysis summary.
func (c *Client) GetPHMAnalysisData(ctx context.Context) (*models.PHMAnalysisData, error) {
	return call[models.PHMAnalysisData](ctx, c, &request{
		op:     "GetPHMAnalysisData",
		method: http.MethodGet,
		path:   "/api/phm/analysis-data",
	})
}

// UploadBearingData uploads one bearing CSV for feature extraction.
func (c *Client) UploadBearingData(ctx context.Context, file File, bearingName string) (*models.BearingUpload, error) {
	const op = "UploadBearingData"
	if err := c.requireArg(ctx, op, http.MethodPost, "bearing_name", bearingName); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("bearing_name", bearingName)

	req, err := c.multipartRequest(ctx, &request{
		op:     op,
		method: http.MethodPost,
		path:   "/api/phm/upload-bearing-data",
		query:  query,
	}, file)
	if err != nil {
		return nil, err
	}
	return call[models.BearingUpload](ctx, c, req)
}

// GetBearingTestData fetches the stored time series of a test bearing.
func (c *Client) GetBearingTestData(ctx context.Context, bearingName string) (*models.BearingTestData, error) {
	const op = "GetBearingTestData"
	if err := c.requireArg(ctx, op, http.MethodGet, "bearing_name", bearingName); err != nil {
		return nil, err
	}

	return call[models.BearingTestData](ctx, c, &request{
		op:     op,
		method: http.MethodGet,
		path:   "/api/phm/test-data/" + url.PathEscape(bearingName),
	})
}

// PredictRUL asks the backend for a remaining useful life estimate.
// An empty modelType selects models.DefaultRULModel.
func (c *Client) PredictRUL(ctx context.Context, bearingName, modelType string) (*models.RULPrediction, error) {
	const op = "PredictRUL"
	if err := c.requireArg(ctx, op, http.MethodPost, "bearing_name", bearingName); err != nil {
		return nil, err
	}
	if modelType == "" {
		modelType = models.DefaultRULModel
	}

	query := url.Values{}
	query.Set("bearing_name", bearingName)
	query.Set("model_type", modelType)

	return call[models.RULPrediction](ctx, c, &request{
		op:     op,
		method: http.MethodPost,
		path:   "/api/phm/predict-rul",
		query:  query,
	})
}
