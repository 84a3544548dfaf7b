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

// GetGuideSpecs lists all stored guide specifications.
func (c *Client) GetGuideSpecs(ctx context.Context) ([]models.GuideSpec, error) {
	specs, err := call[[]models.GuideSpec](ctx, c, &request{
		op:     "GetGuideSpecs",
		method: http.MethodGet,
		path:   "/api/guide-specs",
	})
	if err != nil {
		return nil, err
	}
	return *specs, nil
}

// GetGuideSpec fetches one guide specification. A missing id answers 404,
// see IsNotFound.
func (c *Client) GetGuideSpec(ctx context.Context, id string) (*models.GuideSpec, error) {
	const op = "GetGuideSpec"
	if err := c.requireArg(ctx, op, http.MethodGet, "id", id); err != nil {
		return nil, err
	}

	return call[models.GuideSpec](ctx, c, &request{
		op:     op,
		method: http.MethodGet,
		path:   "/api/guide-specs/" + url.PathEscape(id),
	})
}

// CreateGuideSpec stores a new guide specification.
func (c *Client) CreateGuideSpec(ctx context.Context, spec *models.GuideSpecRequest) (*models.GuideSpecCreated, error) {
	const op = "CreateGuideSpec"
	if err := validateBody(ctx, c, op, spec); err != nil {
		return nil, err
	}

	req, err := c.jsonRequest(ctx, &request{
		op:     op,
		method: http.MethodPost,
		path:   "/api/guide-specs",
	}, spec)
	if err != nil {
		return nil, err
	}
	return call[models.GuideSpecCreated](ctx, c, req)
}

// CalculateFrequencies derives the defect frequencies for a guide geometry.
func (c *Client) CalculateFrequencies(ctx context.Context, freq *models.FrequencyRequest) (*models.FrequencyResult, error) {
	const op = "CalculateFrequencies"
	if err := validateBody(ctx, c, op, freq); err != nil {
		return nil, err
	}

	req, err := c.jsonRequest(ctx, &request{
		op:     op,
		method: http.MethodPost,
		path:   "/api/calculate-frequencies",
	}, freq)
	if err != nil {
		return nil, err
	}
	return call[models.FrequencyResult](ctx, c, req)
}
