/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"

	"github.com/intel/rsp-sw-toolkit-im-suite-occupancy-service/app/config"
	"github.com/intel/rsp-sw-toolkit-im-suite-occupancy-service/app/drawer"
	"github.com/intel/rsp-sw-toolkit-im-suite-occupancy-service/app/occupancy"
	"github.com/intel/rsp-sw-toolkit-im-suite-occupancy-service/app/routes/schemas"
	"github.com/intel/rsp-sw-toolkit-im-suite-occupancy-service/pkg/web"
)

// decodeAnalyzeRequest reads and validates the shared analysis request body.
// When schema validation fails the 400 response has already been written and
// both return values are nil.
func (occu *Occupancy) decodeAnalyzeRequest(ctx context.Context, writer http.ResponseWriter,
	request *http.Request) (*AnalyzeRequest, error) {

	// Reading request
	body := make([]byte, request.ContentLength)
	_, err := io.ReadFull(request.Body, body)
	if err != nil {
		return nil, errors.Wrap(web.ErrValidation, err.Error())
	}

	// Validate json against schema
	schemaValidatorResult, err := schemas.ValidateSchemaRequest(body, schemas.AnalyzeFrameSchema)
	if err != nil {
		return nil, err
	}
	if !schemaValidatorResult.Valid() {
		result := schemas.BuildErrorsString(schemaValidatorResult.Errors())
		web.Respond(ctx, writer, result, http.StatusBadRequest)
		return nil, nil
	}

	var analyzeRequest AnalyzeRequest
	if err = json.Unmarshal(body, &analyzeRequest); err != nil {
		return nil, errors.Wrap(web.ErrValidation, err.Error())
	}

	if occu.MaxSize > 0 && len(analyzeRequest.Detections) > occu.MaxSize {
		return nil, errors.Wrapf(web.ErrEntityTooLarge,
			"%d detections exceeds the limit of %d", len(analyzeRequest.Detections), occu.MaxSize)
	}

	return &analyzeRequest, nil
}

// scoringProfileForRequest resolves the profile for one analysis call. An id
// in the request wins over the configured default; configured coefficient
// overrides apply in both cases.
func scoringProfileForRequest(id string) (occupancy.ScoringProfile, error) {
	if id != "" {
		profile, err := occupancy.GetScoringProfile(id)
		if err != nil {
			return profile, errors.Wrap(web.ErrValidation, err.Error())
		}
		return applyProfileOverrides(profile), nil
	}

	profile, err := occupancy.GetScoringProfile(config.AppConfig.ScoringProfileId)
	if err != nil {
		profile = occupancy.GetDefaultScoringProfile()
	}
	return applyProfileOverrides(profile), nil
}

func applyProfileOverrides(profile occupancy.ScoringProfile) occupancy.ScoringProfile {
	// Only override if value isn't 0
	if config.AppConfig.FillBoost != 0 {
		profile.FillBoost = config.AppConfig.FillBoost
	}
	if config.AppConfig.SnackBoost != 0 {
		profile.SnackBoost = config.AppConfig.SnackBoost
	}
	if config.AppConfig.WeightVertical != 0 {
		profile.WeightVertical = config.AppConfig.WeightVertical
	}
	if config.AppConfig.WeightFill != 0 {
		profile.WeightFill = config.AppConfig.WeightFill
	}
	if config.AppConfig.WeightSnack != 0 {
		profile.WeightSnack = config.AppConfig.WeightSnack
	}
	if config.AppConfig.WeightFillLine != 0 {
		profile.WeightFillLine = config.AppConfig.WeightFillLine
	}
	if config.AppConfig.WeightDetection != 0 {
		profile.WeightDetection = config.AppConfig.WeightDetection
	}
	return profile
}

// frameDimensions fills unset request dimensions from the configured
// defaults. An explicit dimension in the request always wins.
func frameDimensions(frame FrameDimensions) FrameDimensions {
	if frame.Width == 0 && config.AppConfig.DefaultFrameWidth != 0 {
		frame.Width = config.AppConfig.DefaultFrameWidth
	}
	if frame.Height == 0 && config.AppConfig.DefaultFrameHeight != 0 {
		frame.Height = config.AppConfig.DefaultFrameHeight
	}
	return frame
}

// drawerLayout returns the calibrated drawer grid, with the configured band
// ratios applied when set.
func drawerLayout() drawer.Layout {
	layout := drawer.DefaultLayout()
	// Only override if value isn't 0
	if config.AppConfig.DrawerRowOffsetRatio != 0 {
		layout.RowOffsetRatio = config.AppConfig.DrawerRowOffsetRatio
	}
	if config.AppConfig.DrawerRowBandRatio != 0 {
		layout.RowBandRatio = config.AppConfig.DrawerRowBandRatio
	}
	return layout
}
