/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package occupancy

// Category is the closed, ordered set of fullness buckets derived from the
// final score.
type Category string

const (
	Empty      Category = "empty"
	Sparse     Category = "sparse"
	Partial    Category = "partial"
	Good       Category = "good"
	NearlyFull Category = "nearly_full"
	Full       Category = "full"
)

// Score thresholds between categories. A boundary value belongs to the higher
// bracket: exactly 1.0 is Sparse, not Empty.
const (
	sparseThreshold     = 1.0
	partialThreshold    = 3.0
	goodThreshold       = 5.0
	nearlyFullThreshold = 7.0
	fullThreshold       = 9.0
)

// CategoryForScore maps a 0-10 occupancy score to its Category.
func CategoryForScore(score float64) Category {
	switch {
	case score < sparseThreshold:
		return Empty
	case score < partialThreshold:
		return Sparse
	case score < goodThreshold:
		return Partial
	case score < nearlyFullThreshold:
		return Good
	case score < fullThreshold:
		return NearlyFull
	default:
		return Full
	}
}

// VisualOccupancyResult is the scored summary of a single analyzed frame.
// All float fields are rounded to two decimal places.
type VisualOccupancyResult struct {
	// FinalScore is the weighted composite occupancy score, 0 to 10
	FinalScore float64 `json:"final_score"`
	// Category is derived from FinalScore via fixed thresholds
	Category Category `json:"category"`
	// FillPercent is the boosted area coverage of the frame, 0 to 100
	FillPercent float64 `json:"fill_percent"`
	// SnackPercent is the boosted snack-area coverage of the frame, 0 to 100
	SnackPercent float64 `json:"snack_percent"`
	// VerticalScore rewards detections packed toward the top of the frame
	VerticalScore float64 `json:"vertical_score"`
	// FillLineScore is the height-of-contents proxy, 0 to 10
	FillLineScore float64 `json:"fill_line_score"`
	// DetectionCount is the number of input detections
	DetectionCount int `json:"detection_count"`
	// TopRatio is the share of detection area in the top band, 0 to 1
	TopRatio float64 `json:"top_ratio"`
	// Detail is a deterministic human-readable summary
	Detail string `json:"detail"`
}

// Response is the model used to return query responses.
//swagger:model resultsResponse
type Response struct {
	// Array containing results of query
	Results interface{} `json:"results"`
	// Count of records for query
	Count *int `json:"count,omitempty"`
}
