// Package images - box geometry for detection postprocessing.
package images

import "github.com/chewxy/math32"

// Epsilon pads the IoU denominator so that a zero-area union (two
// degenerate boxes stacked on the same point) never divides by zero.
const Epsilon = 1.0e-5

// Box is a lightweight axis-aligned bounding box.
//
// Coordinates are not validated: an inverted or zero-extent box
// (X1 >= X2 or Y1 >= Y2) is legal input. Such a box has non-positive
// Area and overlaps nothing, so it flows through suppression untouched.
type Box struct {
	X1 float32 `json:"x1"`
	Y1 float32 `json:"y1"`
	X2 float32 `json:"x2"`
	Y2 float32 `json:"y2"`
}

// Area returns the signed area of the box, (X2-X1)*(Y2-Y1).
//
// No clamping is applied; a degenerate box yields a zero or negative
// area, which downstream overlap tests already reject.
func (b Box) Area() float32 {
	return (b.X2 - b.X1) * (b.Y2 - b.Y1)
}

// Areas precomputes the area of every box, index-aligned with the input.
//
// Suppression runs over many score sequences against one shared box set;
// computing areas once here keeps them out of the elimination loop.
//
// Arguments:
//   - boxes: The shared box sequence.
//
// Returns:
//   - A slice where areas[i] == boxes[i].Area().
func Areas(boxes []Box) []float32 {
	areas := make([]float32, len(boxes))
	for i, b := range boxes {
		areas[i] = b.Area()
	}
	return areas
}

// CalculateIoU computes the Intersection over Union of two boxes.
//
// The intersection rectangle is found by taking the maximum of the
// top-left corners and the minimum of the bottom-right corners. When
// that rectangle has no positive extent the boxes do not overlap and
// the result is exactly 0.0 — this is also how degenerate boxes fall
// out of every comparison.
//
// The union is computed by inclusion-exclusion from the precomputed
// areas, and the denominator carries an Epsilon pad, so the result for
// two identical boxes is slightly below 1.0 rather than exactly 1.0.
// The function is symmetric in its box arguments as long as areaA and
// areaB travel with their boxes.
//
// Arguments:
//   - a, b: The two boxes to compare.
//   - areaA, areaB: Their precomputed areas (see Areas).
//
// Returns:
//   - The IoU score, 0.0 when there is no positive overlap.
func CalculateIoU(a, b Box, areaA, areaB float32) float32 {
	ix1 := math32.Max(a.X1, b.X1)
	iy1 := math32.Max(a.Y1, b.Y1)
	ix2 := math32.Min(a.X2, b.X2)
	iy2 := math32.Min(a.Y2, b.Y2)

	if ix1 >= ix2 || iy1 >= iy2 {
		return 0.0
	}
	intersection := (ix2 - ix1) * (iy2 - iy1)
	union := areaA + areaB - intersection

	return intersection / (union + Epsilon)
}
