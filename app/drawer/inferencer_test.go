/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package drawer

import (
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-occupancy-service/app/detection"
)

const (
	testFrameWidth  = 640.0
	testFrameHeight = 480.0
)

func beverage(label string, x, y, width, height float64) detection.Detection {
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

func TestDefaultLayoutRegions(t *testing.T) {
	regions := DefaultLayout().Regions(testFrameWidth, testFrameHeight)

	if len(regions) != 6 {
		t.Fatalf("expected 6 regions, got %d", len(regions))
	}

	// rows start at 0.2*H = 96 and are 0.25*H = 120 tall
	expectedYs := []float64{96, 96, 216, 216, 336, 336}
	expectedXs := []float64{0, 320, 0, 320, 0, 320}

	for i, region := range regions {
		if region.Y != expectedYs[i] {
			t.Errorf("region %d: expected y %g, got %g", i, expectedYs[i], region.Y)
		}
		if region.X != expectedXs[i] {
			t.Errorf("region %d: expected x %g, got %g", i, expectedXs[i], region.X)
		}
		if region.Width != 320 || region.Height != 120 {
			t.Errorf("region %d: unexpected size %gx%g", i, region.Width, region.Height)
		}
	}

	// the grid is deliberately non-tiling: it ends at 0.95*H
	last := regions[len(regions)-1]
	if last.Y+last.Height != 456 {
		t.Errorf("expected bottom edge at 456, got %g", last.Y+last.Height)
	}
}

func TestInferCookiesEmptyFrame(t *testing.T) {
	inferred := InferCookies(nil, testFrameWidth, testFrameHeight, DefaultLayout())

	if len(inferred) != 6 {
		t.Fatalf("expected 6 inferred cookies, got %d", len(inferred))
	}

	regions := DefaultLayout().Regions(testFrameWidth, testFrameHeight)
	for i, det := range inferred {
		if det.Label != string(detection.Cookie) {
			t.Errorf("inferred %d: expected label %s, got %s", i, detection.Cookie, det.Label)
		}
		if det.Confidence != InferredConfidence {
			t.Errorf("inferred %d: expected confidence %g, got %g", i, InferredConfidence, det.Confidence)
		}
		if det.BoundingBox != regions[i] {
			t.Errorf("inferred %d: box %+v does not equal region %+v", i, det.BoundingBox, regions[i])
		}
	}
}

func TestInferCookiesBeverageSuppressesRegion(t *testing.T) {
	// a bottle squarely inside the top-left region
	dets := []detection.Detection{
		beverage("water bottle", 50, 110, 60, 80),
	}

	inferred := InferCookies(dets, testFrameWidth, testFrameHeight, DefaultLayout())

	if len(inferred) != 5 {
		t.Fatalf("expected 5 inferred cookies, got %d", len(inferred))
	}
	for _, det := range inferred {
		if det.BoundingBox.X == 0 && det.BoundingBox.Y == 96 {
			t.Error("top-left region should have been suppressed by the bottle")
		}
	}
}

func TestInferCookiesBeverageSpanningRegions(t *testing.T) {
	// a tall bottle crossing all three left-column rows
	dets := []detection.Detection{
		beverage("bottle", 100, 100, 60, 330),
	}

	inferred := InferCookies(dets, testFrameWidth, testFrameHeight, DefaultLayout())

	if len(inferred) != 3 {
		t.Fatalf("expected 3 inferred cookies, got %d", len(inferred))
	}
	for _, det := range inferred {
		if det.BoundingBox.X != 320 {
			t.Errorf("expected only right-column regions, got box at x=%g", det.BoundingBox.X)
		}
	}
}

func TestInferCookiesNonBeverageDoesNotSuppress(t *testing.T) {
	// snacks overlap every region but are not beverages
	dets := []detection.Detection{
		beverage("cookie", 0, 96, 640, 360),
		beverage("sandwich", 0, 96, 640, 360),
	}

	inferred := InferCookies(dets, testFrameWidth, testFrameHeight, DefaultLayout())

	if len(inferred) != 6 {
		t.Errorf("expected 6 inferred cookies, got %d", len(inferred))
	}
}

func TestInferCookiesKeywordVocabulary(t *testing.T) {
	// every word of the drawer beverage vocabulary suppresses
	keywords := []string{"bottle", "can", "coke", "soda", "water", "juice", "drink", "lata", "carton", "cup"}

	for _, keyword := range keywords {
		t.Run(keyword, func(t *testing.T) {
			dets := []detection.Detection{
				beverage(keyword, 0, 96, 640, 360),
			}
			if inferred := InferCookies(dets, testFrameWidth, testFrameHeight, DefaultLayout()); len(inferred) != 0 {
				t.Errorf("keyword %q: expected full suppression, got %d regions", keyword, len(inferred))
			}
		})
	}
}

func TestInferCookiesNeverExceedsRegionCount(t *testing.T) {
	layouts := []Layout{
		DefaultLayout(),
		{Rows: 2, Columns: 4, RowOffsetRatio: 0, RowBandRatio: 0.5, Confidence: 0.6},
	}

	for _, layout := range layouts {
		inferred := InferCookies(nil, testFrameWidth, testFrameHeight, layout)
		if len(inferred) > layout.Rows*layout.Columns {
			t.Errorf("inferred %d detections for a %dx%d grid", len(inferred), layout.Rows, layout.Columns)
		}
	}
}

func TestInferCookiesEdgeTouchDoesNotOverlap(t *testing.T) {
	// a can ending exactly at a region's top edge does not overlap it
	dets := []detection.Detection{
		beverage("can", 0, 0, 320, 96),
	}

	inferred := InferCookies(dets, testFrameWidth, testFrameHeight, DefaultLayout())

	if len(inferred) != 6 {
		t.Errorf("expected no suppression from edge contact, got %d regions", len(inferred))
	}
}

func TestInferCookiesZeroFrame(t *testing.T) {
	// degenerate frames still yield a value without panicking
	inferred := InferCookies(nil, 0, 0, DefaultLayout())
	if len(inferred) > 6 {
		t.Errorf("expected at most 6 regions, got %d", len(inferred))
	}
}
