/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package occupancy

import (
	"fmt"
	"math"
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-occupancy-service/app/detection"
)

var (
	// epsilon is used to compare floating point numbers to each other
	epsilon = math.Nextafter(1.0, 2.0) - 1.0
)

const (
	testFrameWidth  = 640.0
	testFrameHeight = 480.0
)

func makeDetection(label string, x, y, width, height float64) detection.Detection {
	return detection.Detection{
		Label:      label,
		Confidence: 0.9,
		BoundingBox: detection.BoundingBox{
			X:      x,
			Y:      y,
			Width:  width,
			Height: height,
		},
	}
}

func TestEstimateEmptyInput(t *testing.T) {
	frames := [][2]float64{
		{testFrameWidth, testFrameHeight},
		{0, 0},
		{-5, 100},
		{1920, 1080},
	}

	expected := VisualOccupancyResult{
		FinalScore:     0,
		Category:       Empty,
		FillPercent:    0,
		SnackPercent:   0,
		VerticalScore:  0,
		FillLineScore:  0,
		DetectionCount: 0,
		TopRatio:       0,
		Detail:         "No detections - empty tray",
	}

	for _, frame := range frames {
		t.Run(fmt.Sprintf("%gx%g", frame[0], frame[1]), func(t *testing.T) {
			result := Estimate(nil, frame[0], frame[1], GetDefaultScoringProfile())
			if result != expected {
				t.Errorf("expected %+v, got %+v", expected, result)
			}
		})
	}
}

func TestEstimateGravitySettledSparse(t *testing.T) {
	// three cans settled in the bottom third, 8% of the frame covered
	dets := []detection.Detection{
		makeDetection("can", 100, 350, 128, 64),
		makeDetection("can", 260, 360, 128, 64),
		makeDetection("can", 420, 370, 128, 64),
	}

	result := Estimate(dets, testFrameWidth, testFrameHeight, GetDefaultScoringProfile())

	if math.Abs(result.FillPercent-14.4) > 0.01 {
		t.Errorf("expected fillPercent 14.4, got %f", result.FillPercent)
	}
	if result.TopRatio != 0 {
		t.Errorf("expected topRatio 0, got %f", result.TopRatio)
	}
	if result.VerticalScore != 2.0 {
		t.Errorf("expected verticalScore 2.0, got %f", result.VerticalScore)
	}
	if result.Category != Sparse {
		t.Errorf("expected category %s, got %s", Sparse, result.Category)
	}
	if result.DetectionCount != 3 {
		t.Errorf("expected detectionCount 3, got %d", result.DetectionCount)
	}
}

func TestEstimateWellPackedCart(t *testing.T) {
	// fifteen equal boxes: eight in the top band, four middle, three
	// bottom, 45% of the frame covered, a third of them are snacks
	var dets []detection.Detection
	for i := 0; i < 8; i++ {
		label := "can"
		if i < 5 {
			label = "cookie"
		}
		dets = append(dets, makeDetection(label, float64(i*70), 50, 96, 96))
	}
	for i := 0; i < 4; i++ {
		dets = append(dets, makeDetection("juice", float64(i*140), 200, 96, 96))
	}
	for i := 0; i < 3; i++ {
		dets = append(dets, makeDetection("water", float64(i*180), 360, 96, 96))
	}

	result := Estimate(dets, testFrameWidth, testFrameHeight, GetDefaultScoringProfile())

	if math.Abs(result.FillPercent-81.0) > 0.01 {
		t.Errorf("expected fillPercent 81.0, got %f", result.FillPercent)
	}
	if math.Abs(result.TopRatio-0.53) > 0.01 {
		t.Errorf("expected topRatio near 0.53, got %f", result.TopRatio)
	}
	if result.VerticalScore != 9.5 {
		t.Errorf("expected verticalScore 9.5, got %f", result.VerticalScore)
	}
	if result.Category != NearlyFull && result.Category != Full {
		t.Errorf("expected category %s or %s, got %s", NearlyFull, Full, result.Category)
	}
}

func TestEstimateRangeInvariants(t *testing.T) {
	frames := [][2]float64{
		{testFrameWidth, testFrameHeight},
		{0, 0},
		{-100, -100},
		{1, 1},
		{10000, 10},
	}

	detectionSets := [][]detection.Detection{
		nil,
		{makeDetection("cookie", 0, 0, 0, 0)},
		{makeDetection("can", -50, -50, 5000, 5000)},
		{
			makeDetection("snack", 10, 10, 200, 100),
			makeDetection("bottle", 300, 400, 40, 120),
			makeDetection("mystery", 500, 250, 90, 90),
		},
	}

	for f, frame := range frames {
		for d, dets := range detectionSets {
			t.Run(fmt.Sprintf("frame%d/set%d", f, d), func(t *testing.T) {
				result := Estimate(dets, frame[0], frame[1], GetDefaultScoringProfile())

				if result.FinalScore < 0 || result.FinalScore > 10 {
					t.Errorf("finalScore out of range: %f", result.FinalScore)
				}
				if result.FillPercent < 0 || result.FillPercent > 100 {
					t.Errorf("fillPercent out of range: %f", result.FillPercent)
				}
				if result.SnackPercent < 0 || result.SnackPercent > 100 {
					t.Errorf("snackPercent out of range: %f", result.SnackPercent)
				}
				if result.TopRatio < 0 || result.TopRatio > 1 {
					t.Errorf("topRatio out of range: %f", result.TopRatio)
				}
				if result.VerticalScore < 0 || result.VerticalScore > 10 {
					t.Errorf("verticalScore out of range: %f", result.VerticalScore)
				}
				if result.FillLineScore < 0 || result.FillLineScore > 10 {
					t.Errorf("fillLineScore out of range: %f", result.FillLineScore)
				}
				if result.DetectionCount != len(dets) {
					t.Errorf("detectionCount mismatch: %d vs %d", result.DetectionCount, len(dets))
				}
			})
		}
	}
}

func TestEstimateIsPure(t *testing.T) {
	dets := []detection.Detection{
		makeDetection("cookie", 10, 10, 200, 100),
		makeDetection("can", 300, 400, 100, 90),
	}

	first := Estimate(dets, testFrameWidth, testFrameHeight, GetDefaultScoringProfile())
	for i := 0; i < 5; i++ {
		if result := Estimate(dets, testFrameWidth, testFrameHeight, GetDefaultScoringProfile()); result != first {
			t.Fatalf("estimate changed between identical calls: %+v vs %+v", first, result)
		}
	}
}

func TestEstimateDetailTemplate(t *testing.T) {
	// single cookie box in the top band, 5% of the frame
	dets := []detection.Detection{
		makeDetection("cookie", 0, 0, 160, 96),
	}

	result := Estimate(dets, testFrameWidth, testFrameHeight, GetDefaultScoringProfile())

	expected := "1 items detected, 13% appear to be snacks/galletas. Items packed at top: 100%"
	if result.Detail != expected {
		t.Errorf("expected detail %q, got %q", expected, result.Detail)
	}
}

func TestCategoryForScoreBoundaries(t *testing.T) {
	tests := []struct {
		score    float64
		expected Category
	}{
		{0, Empty},
		{0.999, Empty},
		{1.0, Sparse},
		{2.999, Sparse},
		{3.0, Partial},
		{4.999, Partial},
		{5.0, Good},
		{6.999, Good},
		{7.0, NearlyFull},
		{8.999, NearlyFull},
		{9.0, Full},
		{10.0, Full},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("%g", test.score), func(t *testing.T) {
			if category := CategoryForScore(test.score); category != test.expected {
				t.Errorf("score %g: expected %s, got %s", test.score, test.expected, category)
			}
		})
	}
}

func TestEstimateCategoryMatchesReportedScore(t *testing.T) {
	// a lone can near the bottom yields a composite just under 1.0, which
	// rounds up to a reported 1.0; the category must follow the reported
	// score into the Sparse bracket
	dets := []detection.Detection{
		makeDetection("can", 300, 390, 50, 89),
	}

	result := Estimate(dets, testFrameWidth, testFrameHeight, GetDefaultScoringProfile())

	if result.FinalScore != 1.0 {
		t.Fatalf("Expected a reported score of 1.0, got %f", result.FinalScore)
	}
	if result.Category != Sparse {
		t.Errorf("Expected category %s for a reported score of 1.0, got %s", Sparse, result.Category)
	}
	if CategoryForScore(result.FinalScore) != result.Category {
		t.Errorf("Category %s does not agree with the reported score %f", result.Category, result.FinalScore)
	}
}

func TestRoundTwoPlaces(t *testing.T) {
	tests := []struct {
		value    float64
		expected float64
	}{
		{1.234, 1.23},
		{1.236, 1.24},
		{0, 0},
		{9.999, 10.0},
	}

	for _, test := range tests {
		if rounded := roundTwoPlaces(test.value); math.Abs(rounded-test.expected) > epsilon {
			t.Errorf("roundTwoPlaces(%g): expected %g, got %g", test.value, test.expected, rounded)
		}
	}
}
