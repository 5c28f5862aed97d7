/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package detection

// BoundingBox is an axis-aligned box in pixel coordinates relative to the
// analyzed frame. Boxes are not required to lie inside the frame; downstream
// math guards against degenerate dimensions instead of rejecting input.
type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Area returns the box area in square pixels.
func (box BoundingBox) Area() float64 {
	return box.Width * box.Height
}

// CenterY returns the vertical center of the box in pixels.
func (box BoundingBox) CenterY() float64 {
	return box.Y + box.Height/2
}

// Overlaps reports whether two boxes intersect (edge contact does not count).
func (box BoundingBox) Overlaps(other BoundingBox) bool {
	return box.X < other.X+other.Width &&
		box.X+box.Width > other.X &&
		box.Y < other.Y+other.Height &&
		box.Y+box.Height > other.Y
}

// Detection is a single labeled bounding box supplied by the upstream object
// detector. The label vocabulary is producer defined free-form text.
type Detection struct {
	Label       string      `json:"label"`
	Confidence  float64     `json:"confidence"`
	BoundingBox BoundingBox `json:"bounding_box"`
}

// ProductType is the closed set of product variants the classifier resolves to.
type ProductType string

const (
	Can         ProductType = "can"
	BottleWater ProductType = "bottle_water"
	JuiceBox    ProductType = "juice_box"
	Cookie      ProductType = "cookie"
	// Unknown is declared for forward compatibility (e.g. a future confidence
	// floor) but no classification path currently produces it. The geometry
	// fallback resolves to BottleWater instead.
	Unknown ProductType = "unknown"
)
