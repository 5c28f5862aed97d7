/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package drawer

import (
	"github.com/intel/rsp-sw-toolkit-im-suite-occupancy-service/app/detection"
)

// Default drawer grid. Note the row bands deliberately do not tile the frame:
// with offset 0.2 and band 0.25 the three bands cover y in [0.2H, 0.95H],
// matching the calibrated cart geometry. Change the ratios in config, not
// here.
const (
	defaultRows           = 3
	defaultColumns        = 2
	defaultRowOffsetRatio = 0.2
	defaultRowBandRatio   = 0.25

	// InferredConfidence is assigned to every synthesized detection.
	InferredConfidence = 0.8
)

// Layout describes the fixed spatial partitioning of a frame into drawer
// regions and the confidence stamped on inferred detections.
type Layout struct {
	Rows           int     `json:"rows"`
	Columns        int     `json:"columns"`
	RowOffsetRatio float64 `json:"row_offset_ratio"`
	RowBandRatio   float64 `json:"row_band_ratio"`
	Confidence     float64 `json:"confidence"`
}

// DefaultLayout returns the calibrated 3x2 drawer grid.
func DefaultLayout() Layout {
	return Layout{
		Rows:           defaultRows,
		Columns:        defaultColumns,
		RowOffsetRatio: defaultRowOffsetRatio,
		RowBandRatio:   defaultRowBandRatio,
		Confidence:     InferredConfidence,
	}
}

// Regions computes the region boxes for a frame, row major, left to right.
func (layout Layout) Regions(frameWidth, frameHeight float64) []detection.BoundingBox {
	regions := make([]detection.BoundingBox, 0, layout.Rows*layout.Columns)

	columnWidth := frameWidth / float64(layout.Columns)
	bandHeight := frameHeight * layout.RowBandRatio
	offset := frameHeight * layout.RowOffsetRatio

	for row := 0; row < layout.Rows; row++ {
		y := offset + float64(row)*bandHeight
		for column := 0; column < layout.Columns; column++ {
			regions = append(regions, detection.BoundingBox{
				X:      float64(column) * columnWidth,
				Y:      y,
				Width:  columnWidth,
				Height: bandHeight,
			})
		}
	}

	return regions
}
