/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package occupancy

import (
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"

	"github.com/intel/rsp-sw-toolkit-im-suite-occupancy-service/app/detection"
)

// Vertical band boundaries and band centers used for the weighted average
// detection height. A box belongs to the band containing its vertical center.
const (
	topBandMaxRatio    = 0.33
	middleBandMaxRatio = 0.66

	topBandCenter    = 0.17
	middleBandCenter = 0.5
	bottomBandCenter = 0.83
)

// Vertical score ladder, evaluated in order.
const (
	topHeavyRatio         = 0.5
	topHeavyScore         = 9.5
	upperPackedRatio      = 0.35
	upperPackedScore      = 8.0
	gravitySettledScore   = 2.0
	middleDominantScore   = 6.5
	verticalFallbackScore = 5.0
)

const emptyTrayDetail = "No detections - empty tray"

// Estimate aggregates a frame's detections into a single weighted occupancy
// score. It is total: empty detection lists and zero-sized frames yield fixed
// defaults rather than errors, and identical inputs always yield identical
// results.
func Estimate(dets []detection.Detection, frameWidth, frameHeight float64, profile ScoringProfile) VisualOccupancyResult {
	if len(dets) == 0 {
		return VisualOccupancyResult{
			FinalScore:     0,
			Category:       Empty,
			FillPercent:    0,
			SnackPercent:   0,
			VerticalScore:  0,
			FillLineScore:  0,
			DetectionCount: 0,
			TopRatio:       0,
			Detail:         emptyTrayDetail,
		}
	}

	var totalArea, topArea, middleArea, bottomArea float64
	var snackArea, beverageArea float64

	for _, det := range dets {
		area := det.BoundingBox.Area()
		totalArea += area

		switch centerY := det.BoundingBox.CenterY(); {
		case centerY < topBandMaxRatio*frameHeight:
			topArea += area
		case centerY < middleBandMaxRatio*frameHeight:
			middleArea += area
		default:
			bottomArea += area
		}

		// informational sums, not part of the band totals
		if detection.LabelContainsAny(det.Label, detection.SnackKeywords) {
			snackArea += area
		}
		if detection.LabelContainsAny(det.Label, detection.BeverageKeywords) {
			beverageArea += area
		}
	}

	frameArea := frameWidth * frameHeight
	var fillPercent, snackPercent float64
	if frameArea > 0 {
		fillPercent = math.Min(100, totalArea/frameArea*100*profile.FillBoost)
		if snackArea > 0 {
			snackPercent = math.Min(100, snackArea/frameArea*100*profile.SnackBoost)
		}
	}

	detectionBonus := math.Min(10, float64(len(dets)))

	bandTotal := topArea + middleArea + bottomArea
	var topRatio float64
	if bandTotal > 0 {
		topRatio = topArea / bandTotal
	}

	var verticalScore float64
	switch {
	case topRatio > topHeavyRatio:
		verticalScore = topHeavyScore
	case topRatio > upperPackedRatio:
		verticalScore = upperPackedScore
	case bottomArea > 2*topArea:
		verticalScore = gravitySettledScore
	case middleArea > topArea && middleArea > bottomArea:
		verticalScore = middleDominantScore
	default:
		verticalScore = verticalFallbackScore
	}

	avgDetectionY := 0.5
	if bandTotal > 0 {
		avgDetectionY = (topArea*topBandCenter + middleArea*middleBandCenter + bottomArea*bottomBandCenter) / bandTotal
	}
	fillLineScore := math.Min(10, (1-avgDetectionY)*10)

	fillScore := math.Min(10, fillPercent/100*10)
	snackBonus := math.Min(profile.SnackBonusCap, snackPercent/profile.SnackBonusDivisor) * 10
	detectionScore := detectionBonus / 10 * 10

	rawScore := verticalScore*profile.WeightVertical +
		fillScore*profile.WeightFill +
		snackBonus*profile.WeightSnack +
		fillLineScore*profile.WeightFillLine +
		detectionScore*profile.WeightDetection
	finalScore := clamp(rawScore, 0, 10)

	log.Debugf("occupancy estimate: fill=%.2f%% snackArea=%.0f beverageArea=%.0f topRatio=%.2f score=%.2f",
		fillPercent, snackArea, beverageArea, topRatio, finalScore)

	// The reported category must agree with the reported score, so both come
	// from the rounded value: a composite of 0.998 reports 1.0 and Sparse.
	reportedScore := roundTwoPlaces(finalScore)

	return VisualOccupancyResult{
		FinalScore:     reportedScore,
		Category:       CategoryForScore(reportedScore),
		FillPercent:    roundTwoPlaces(fillPercent),
		SnackPercent:   roundTwoPlaces(snackPercent),
		VerticalScore:  roundTwoPlaces(verticalScore),
		FillLineScore:  roundTwoPlaces(fillLineScore),
		DetectionCount: len(dets),
		TopRatio:       roundTwoPlaces(topRatio),
		Detail: fmt.Sprintf("%d items detected, %.0f%% appear to be snacks/galletas. Items packed at top: %.0f%%",
			len(dets), math.Round(snackPercent), math.Round(topRatio*100)),
	}
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func roundTwoPlaces(value float64) float64 {
	return math.Round(value*100) / 100
}
