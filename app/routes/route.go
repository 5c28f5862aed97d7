/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package routes

import (
	"github.com/gorilla/mux"

	"github.com/intel/rsp-sw-toolkit-im-suite-occupancy-service/app/config"
	"github.com/intel/rsp-sw-toolkit-im-suite-occupancy-service/app/routes/handlers"
	"github.com/intel/rsp-sw-toolkit-im-suite-occupancy-service/pkg/middlewares"
	"github.com/intel/rsp-sw-toolkit-im-suite-occupancy-service/pkg/web"
)

// Route struct holds attributes to declare routes
type Route struct {
	Name        string
	Method      string
	Pattern     string
	HandlerFunc web.Handler
}

// NewRouter creates the routes for GET and POST
func NewRouter(maxSize int) *mux.Router {

	occupancy := handlers.Occupancy{MaxSize: maxSize}

	var routes = []Route{
		//swagger:operation GET / default Healthcheck
		//
		// Healthcheck Endpoint
		//
		// Endpoint that is used to determine if the application is ready to take web requests
		//
		// ---
		// consumes:
		// - application/json
		//
		// produces:
		// - application/json
		//
		// schemes:
		// - http
		//
		// responses:
		//   '200':
		//     description: OK
		//
		{
			"Index",
			"GET",
			"/",
			occupancy.Index,
		},
		//swagger:route POST /occupancy/analyze occupancy analyzeFrame
		//
		// Analyze one camera frame
		//
		// Runs the full analysis pipeline for a single frame: resolves the raw
		// detector labels to canonical product types, scores cart occupancy, and
		// synthesizes cookie detections for drawer regions with no beverage. <br><br>
		//
		// Example Input:
		// ```
		// {
		// &#9"frame": { "width": 640, "height": 480 },
		// &#9"detections": [
		// &#9&#9{ "label": "coca-cola", "confidence": 0.91,
		// &#9&#9&#8195"bounding_box": { "x": 120, "y": 300, "width": 60, "height": 140 } }
		// &#9],
		// &#9"scoring_profile_id": "retail_cart_default"
		// }
		// ```
		//
		// + frame  - Frame dimensions in pixels
		// + detections  - Raw detections from the object detector
		// + scoring_profile_id  - Optional profile override; the configured default applies when omitted
		//
		//     Consumes:
		//     - application/json
		//
		//     Produces:
		//     - application/json
		//
		//     Schemes: http
		//
		//     Responses:
		//       200: body:resultsResponse
		//       400: schemaValidation
		//       500: internalError
		//
		{
			"AnalyzeFrame",
			"POST",
			"/occupancy/analyze",
			occupancy.AnalyzeFrame,
		},
		//swagger:route POST /detections/normalize detections normalizeDetections
		//
		// Normalize detector labels
		//
		// Resolves each detection's raw label to a canonical product type using
		// keyword rules and, for ambiguous or missing labels, box geometry. No
		// scoring is performed. <br><br>
		//
		//     Consumes:
		//     - application/json
		//
		//     Produces:
		//     - application/json
		//
		//     Schemes: http
		//
		//     Responses:
		//       200: body:resultsResponse
		//       400: schemaValidation
		//       500: internalError
		//
		{
			"NormalizeDetections",
			"POST",
			"/detections/normalize",
			occupancy.NormalizeDetections,
		},
		//swagger:route POST /drawers/infer drawers inferDrawerCookies
		//
		// Infer cookie stock in drawer regions
		//
		// Projects the calibrated drawer grid onto the frame and synthesizes a
		// cookie detection for every region that no beverage detection overlaps. <br><br>
		//
		//     Consumes:
		//     - application/json
		//
		//     Produces:
		//     - application/json
		//
		//     Schemes: http
		//
		//     Responses:
		//       200: body:resultsResponse
		//       400: schemaValidation
		//       500: internalError
		//
		{
			"InferDrawerCookies",
			"POST",
			"/drawers/infer",
			occupancy.InferDrawerCookies,
		},
		//swagger:operation GET /occupancy/profiles profiles getScoringProfiles
		//
		// Retrieves all scoring profiles
		//
		// Lists the registered scoring profiles with their calibration values.
		//
		// ---
		// consumes:
		// - application/json
		//
		// produces:
		// - application/json
		//
		// schemes:
		// - http
		//
		// responses:
		//   '200':
		//     description: OK
		//   '500':
		//     description: Internal Error
		//
		{
			"GetScoringProfiles",
			"GET",
			"/occupancy/profiles",
			occupancy.GetScoringProfiles,
		},
		//swagger:operation GET /occupancy/profiles/{id} profiles getScoringProfile
		//
		// Retrieves one scoring profile
		//
		// ---
		// consumes:
		// - application/json
		//
		// produces:
		// - application/json
		//
		// schemes:
		// - http
		//
		// responses:
		//   '200':
		//     description: OK
		//   '404':
		//     description: Not Found
		//   '500':
		//     description: Internal Error
		//
		{
			"GetScoringProfile",
			"GET",
			"/occupancy/profiles/{id}",
			occupancy.GetScoringProfile,
		},
	}

	router := mux.NewRouter().StrictSlash(true)
	for _, route := range routes {

		var handler = route.HandlerFunc
		handler = middlewares.Recover(handler)
		handler = middlewares.Logger(handler)
		handler = middlewares.Bodylimiter(handler)
		if config.AppConfig.EnableCORS {
			handler = middlewares.CORS(config.AppConfig.CORSOrigin, handler)
		}

		router.
			Methods(route.Method).
			Path(route.Pattern).
			Name(route.Name).
			Handler(handler)
	}

	return router
}
