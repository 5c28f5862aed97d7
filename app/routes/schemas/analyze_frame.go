/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package schemas

// AnalyzeFrameSchema is the json schema for the analyze, normalize and drawer
// inference request bodies. It validates shape and types only; degenerate
// numeric values (zero-sized frames or boxes) are deliberately allowed and
// handled by the scoring engine's guards.
const AnalyzeFrameSchema = `{
	"$schema": "http://json-schema.org/draft-04/schema#",
	"type": "object",
	"required": ["frame", "detections"],
	"properties": {
		"frame": {
			"type": "object",
			"required": ["width", "height"],
			"properties": {
				"width": {
					"type": "number"
				},
				"height": {
					"type": "number"
				}
			},
			"additionalProperties": false
		},
		"detections": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["label", "confidence", "bounding_box"],
				"properties": {
					"label": {
						"type": "string"
					},
					"confidence": {
						"type": "number"
					},
					"bounding_box": {
						"type": "object",
						"required": ["x", "y", "width", "height"],
						"properties": {
							"x": {
								"type": "number"
							},
							"y": {
								"type": "number"
							},
							"width": {
								"type": "number"
							},
							"height": {
								"type": "number"
							}
						},
						"additionalProperties": false
					}
				},
				"additionalProperties": false
			}
		},
		"scoring_profile_id": {
			"type": "string"
		}
	},
	"additionalProperties": false
}`
