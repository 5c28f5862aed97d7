/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package detection

// Geometry thresholds, hand-tuned against cart footage. The ladder below is
// order sensitive: cans are squat, bottles are tall or narrow, juice boxes are
// wide-ish and only win when neither of the first two rules fires.
const (
	canAspectRatioMin      = 0.78
	canNormalizedHeightMax = 0.22
	canShortHeightMax      = 0.14
	canShortAspectMin      = 0.7

	bottleAspectRatioMax      = 0.52
	bottleNormalizedHeightMin = 0.3

	juiceNormalizedWidthMin = 0.18
	juiceAspectRatioMin     = 0.55
	juiceAreaRatioMin       = 0.02
)

// Classify maps a detection's shape and position ratios to a ProductType using
// only geometry. It is total: degenerate box or frame dimensions fall back to
// safe ratio defaults instead of failing.
func Classify(det Detection, frameWidth, frameHeight float64) ProductType {
	box := det.BoundingBox

	aspectRatio := 1.0
	if box.Height > 0 {
		aspectRatio = box.Width / box.Height
	}

	normalizedHeight := 0.0
	if frameHeight > 0 {
		normalizedHeight = box.Height / frameHeight
	}

	normalizedWidth := 0.0
	if frameWidth > 0 {
		normalizedWidth = box.Width / frameWidth
	}

	areaRatio := 0.0
	if frameWidth > 0 && frameHeight > 0 {
		areaRatio = box.Area() / (frameWidth * frameHeight)
	}

	switch {
	case (aspectRatio >= canAspectRatioMin && normalizedHeight <= canNormalizedHeightMax) ||
		(normalizedHeight <= canShortHeightMax && aspectRatio >= canShortAspectMin):
		return Can

	case aspectRatio <= bottleAspectRatioMax || normalizedHeight >= bottleNormalizedHeightMin:
		return BottleWater

	case (normalizedWidth >= juiceNormalizedWidthMin && aspectRatio >= juiceAspectRatioMin) ||
		(areaRatio >= juiceAreaRatioMin && aspectRatio >= juiceAspectRatioMin):
		return JuiceBox
	}

	// fail-safe bias for shapes that fit nothing above, not an error state
	return BottleWater
}
