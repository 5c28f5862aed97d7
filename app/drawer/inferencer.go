/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package drawer

import (
	"github.com/intel/rsp-sw-toolkit-im-suite-occupancy-service/app/detection"
)

// InferCookies synthesizes a Cookie detection for every drawer region that no
// beverage-labeled detection overlaps. Cookies rarely survive the detector's
// vocabulary, so an undisturbed drawer region implies the cookies are still
// there. Returns zero to Rows*Columns detections, one per empty region.
func InferCookies(dets []detection.Detection, frameWidth, frameHeight float64, layout Layout) []detection.Detection {
	var inferred []detection.Detection

	for _, region := range layout.Regions(frameWidth, frameHeight) {
		if regionHasBeverage(dets, region) {
			continue
		}
		inferred = append(inferred, detection.Detection{
			Label:       string(detection.Cookie),
			Confidence:  layout.Confidence,
			BoundingBox: region,
		})
	}

	return inferred
}

func regionHasBeverage(dets []detection.Detection, region detection.BoundingBox) bool {
	for _, det := range dets {
		if !detection.LabelContainsAny(det.Label, detection.DrawerBeverageKeywords) {
			continue
		}
		if det.BoundingBox.Overlaps(region) {
			return true
		}
	}
	return false
}
