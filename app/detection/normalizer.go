/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package detection

import "strings"

// Normalize resolves each raw detection's free-form label to a canonical
// ProductType name. Geometry and confidence pass through unchanged. The input
// slice is not modified.
func Normalize(dets []Detection, frameWidth, frameHeight float64) []Detection {
	normalized := make([]Detection, len(dets))
	for i, det := range dets {
		det.Label = string(ResolveProductType(det, frameWidth, frameHeight))
		normalized[i] = det
	}
	return normalized
}

// ResolveProductType resolves a detection to a ProductType by label keyword,
// falling back to the geometry classifier when the label is ambiguous or
// uninformative. Keyword precedence is order sensitive: snacks win over juice
// cartons, cartons over cans, and brand names ("coke", "cola") force
// BottleWater regardless of shape.
func ResolveProductType(det Detection, frameWidth, frameHeight float64) ProductType {
	label := strings.ToLower(strings.TrimSpace(det.Label))

	switch {
	case LabelContainsAny(label, SnackKeywords):
		return Cookie

	case LabelContainsAny(label, juiceKeywords):
		return JuiceBox

	case LabelContainsAny(label, canKeywords):
		return Can

	case strings.Contains(label, "water"):
		return BottleWater

	case LabelContainsAny(label, colaKeywords):
		return BottleWater

	case strings.Contains(label, "bottle"):
		// "bottle" alone is ambiguous, detectors emit it for can-shaped
		// containers too; let the geometry decide
		return Classify(det, frameWidth, frameHeight)
	}

	return Classify(det, frameWidth, frameHeight)
}
