/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package handlers

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gorilla/mux"
	"github.com/intel/rsp-sw-toolkit-im-suite-utilities/go-metrics"
	"github.com/intel/rsp-sw-toolkit-im-suite-utilities/helper"
	"github.com/pkg/errors"

	"github.com/intel/rsp-sw-toolkit-im-suite-occupancy-service/app/detection"
	"github.com/intel/rsp-sw-toolkit-im-suite-occupancy-service/app/drawer"
	"github.com/intel/rsp-sw-toolkit-im-suite-occupancy-service/app/occupancy"
	"github.com/intel/rsp-sw-toolkit-im-suite-occupancy-service/pkg/web"
)

// Occupancy represents the occupancy API method handler set.
type Occupancy struct {
	MaxSize int
}

// FrameDimensions is the analyzed frame's size in pixels
type FrameDimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// AnalyzeRequest is the request body shared by the analysis endpoints
type AnalyzeRequest struct {
	Frame            FrameDimensions       `json:"frame"`
	Detections       []detection.Detection `json:"detections"`
	ScoringProfileId string                `json:"scoring_profile_id,omitempty"`
}

// AnalyzeResponse carries the score and the full detection inventory
// (normalized detections merged with inferred cookies) for one frame
type AnalyzeResponse struct {
	Score         occupancy.VisualOccupancyResult `json:"score"`
	Detections    []detection.Detection           `json:"detections"`
	InferredCount int                             `json:"inferred_count"`
	AnalyzedOn    int64                           `json:"analyzed_on"`
}

// Index is used for Docker Healthcheck commands to indicate
// whether the http server is up and running to take requests
//nolint:unparam
func (occu *Occupancy) Index(ctx context.Context, writer http.ResponseWriter, request *http.Request) error {
	web.Respond(ctx, writer, "Occupancy Service", http.StatusOK)
	return nil
}

// AnalyzeFrame runs the full pipeline for one frame: normalize labels,
// estimate occupancy, infer drawer cookies, and merge the synthetic
// detections into the normalized set.
// 200 OK, 400 Bad Request, 500 Internal Error
func (occu *Occupancy) AnalyzeFrame(ctx context.Context, writer http.ResponseWriter, request *http.Request) error {

	// Metrics
	metrics.GetOrRegisterGauge("Occupancy.AnalyzeFrame.Attempt", nil).Update(1)
	startTime := time.Now()
	defer metrics.GetOrRegisterTimer("Occupancy.AnalyzeFrame.Latency", nil).Update(time.Since(startTime))
	mSuccess := metrics.GetOrRegisterGauge("Occupancy.AnalyzeFrame.Success", nil)
	mValidationErr := metrics.GetOrRegisterGauge("Occupancy.AnalyzeFrame.Validation-Error", nil)

	analyzeRequest, err := occu.decodeAnalyzeRequest(ctx, writer, request)
	if err != nil {
		mValidationErr.Update(1)
		return err
	}
	if analyzeRequest == nil {
		// schema validation errors already written to the response
		mValidationErr.Update(1)
		return nil
	}

	profile, err := scoringProfileForRequest(analyzeRequest.ScoringProfileId)
	if err != nil {
		mValidationErr.Update(1)
		return err
	}

	frame := frameDimensions(analyzeRequest.Frame)
	normalized := detection.Normalize(analyzeRequest.Detections, frame.Width, frame.Height)
	score := occupancy.Estimate(normalized, frame.Width, frame.Height, profile)
	inferred := drawer.InferCookies(normalized, frame.Width, frame.Height, drawerLayout())

	web.Respond(ctx, writer, AnalyzeResponse{
		Score:         score,
		Detections:    append(normalized, inferred...),
		InferredCount: len(inferred),
		AnalyzedOn:    helper.UnixMilliNow(),
	}, http.StatusOK)

	mSuccess.Update(1)
	return nil
}

// NormalizeDetections resolves raw detector labels to canonical product types
// without scoring the frame.
// 200 OK, 400 Bad Request, 500 Internal Error
func (occu *Occupancy) NormalizeDetections(ctx context.Context, writer http.ResponseWriter, request *http.Request) error {

	// Metrics
	metrics.GetOrRegisterGauge("Occupancy.NormalizeDetections.Attempt", nil).Update(1)
	startTime := time.Now()
	defer metrics.GetOrRegisterTimer("Occupancy.NormalizeDetections.Latency", nil).Update(time.Since(startTime))
	mSuccess := metrics.GetOrRegisterGauge("Occupancy.NormalizeDetections.Success", nil)
	mValidationErr := metrics.GetOrRegisterGauge("Occupancy.NormalizeDetections.Validation-Error", nil)

	analyzeRequest, err := occu.decodeAnalyzeRequest(ctx, writer, request)
	if err != nil {
		mValidationErr.Update(1)
		return err
	}
	if analyzeRequest == nil {
		mValidationErr.Update(1)
		return nil
	}

	frame := frameDimensions(analyzeRequest.Frame)
	normalized := detection.Normalize(analyzeRequest.Detections, frame.Width, frame.Height)

	count := len(normalized)
	web.Respond(ctx, writer, occupancy.Response{Results: normalized, Count: &count}, http.StatusOK)

	mSuccess.Update(1)
	return nil
}

// InferDrawerCookies synthesizes cookie detections for drawer regions that no
// beverage detection overlaps.
// 200 OK, 400 Bad Request, 500 Internal Error
func (occu *Occupancy) InferDrawerCookies(ctx context.Context, writer http.ResponseWriter, request *http.Request) error {

	// Metrics
	metrics.GetOrRegisterGauge("Occupancy.InferDrawerCookies.Attempt", nil).Update(1)
	startTime := time.Now()
	defer metrics.GetOrRegisterTimer("Occupancy.InferDrawerCookies.Latency", nil).Update(time.Since(startTime))
	mSuccess := metrics.GetOrRegisterGauge("Occupancy.InferDrawerCookies.Success", nil)
	mValidationErr := metrics.GetOrRegisterGauge("Occupancy.InferDrawerCookies.Validation-Error", nil)

	analyzeRequest, err := occu.decodeAnalyzeRequest(ctx, writer, request)
	if err != nil {
		mValidationErr.Update(1)
		return err
	}
	if analyzeRequest == nil {
		mValidationErr.Update(1)
		return nil
	}

	frame := frameDimensions(analyzeRequest.Frame)
	inferred := drawer.InferCookies(analyzeRequest.Detections, frame.Width, frame.Height, drawerLayout())

	count := len(inferred)
	web.Respond(ctx, writer, occupancy.Response{Results: inferred, Count: &count}, http.StatusOK)

	mSuccess.Update(1)
	return nil
}

// GetScoringProfiles retrieves all registered scoring profiles
// 200 OK, 500 Internal Error
func (occu *Occupancy) GetScoringProfiles(ctx context.Context, writer http.ResponseWriter, request *http.Request) error {

	// Metrics
	metrics.GetOrRegisterGauge("Occupancy.GetScoringProfiles.Attempt", nil).Update(1)

	ids := occupancy.ScoringProfileIds()
	sort.Strings(ids)

	profiles := make([]occupancy.ScoringProfile, 0, len(ids))
	for _, id := range ids {
		profile, err := occupancy.GetScoringProfile(id)
		if err != nil {
			return errors.Wrap(err, "listing scoring profiles")
		}
		profiles = append(profiles, profile)
	}

	count := len(profiles)
	web.Respond(ctx, writer, occupancy.Response{Results: profiles, Count: &count}, http.StatusOK)
	return nil
}

// GetScoringProfile retrieves a single scoring profile by id
// 200 OK, 404 Not Found, 500 Internal Error
func (occu *Occupancy) GetScoringProfile(ctx context.Context, writer http.ResponseWriter, request *http.Request) error {

	// Metrics
	metrics.GetOrRegisterGauge("Occupancy.GetScoringProfile.Attempt", nil).Update(1)

	id := mux.Vars(request)["id"]

	profile, err := occupancy.GetScoringProfile(id)
	if err != nil {
		return errors.Wrapf(web.ErrNotFound, "scoring profile %s", id)
	}

	web.Respond(ctx, writer, occupancy.Response{Results: profile}, http.StatusOK)
	return nil
}
