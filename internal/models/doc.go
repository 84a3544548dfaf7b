// VibraGuide - Linear Guide Vibration Analysis and Bearing Health Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibraguide

/*
Package models defines the data structures exchanged with the VibraGuide
analytics backend.

Every type mirrors the JSON the backend produces or accepts, so the json tags
follow the backend's field names exactly (including the capitalized C0, C100,
BPF and predicted_RUL_min keys). Request types carry go-playground/validator
tags and are checked by the gateway before anything is sent.

Key Components:

  - GuideSpec, GuideSpecRequest: linear guide specifications
  - FrequencyRequest, FrequencyResult: bearing defect frequencies
  - AnalysisRequest, Result, HealthTrend: vibration analysis history
  - PHMTrainingSummary, BearingUpload, BearingTestData, RULPrediction: PHM-2012 workflows
  - PHMBearingList and friends: read-only PHM measurement database views

Nested payloads the backend computes dynamically (feature maps, findings,
database rows) are kept as json.RawMessage so callers receive them verbatim.
*/
package models
