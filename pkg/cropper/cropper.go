// Package cropper turns a pixel-space content bounding box into a crop
// rectangle in PDF points, clamped to the page.
package cropper

import (
	"fmt"
	"math"

	"github.com/menta2k/pdf-autocrop/pkg/raster"
)

// Rect is a crop rectangle in PDF points with a top-left origin.
// A valid Rect satisfies 0 <= X0 < X1 and 0 <= Y0 < Y1.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// Width returns the rectangle width in points.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height returns the rectangle height in points.
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

func (r Rect) String() string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f, %.2f)", r.X0, r.Y0, r.X1, r.Y1)
}

// Compute maps an inclusive pixel bounding box into a margin-padded crop
// rectangle on a pageW x pageH page. scale is the pixel-to-point factor
// (72/dpi) and marginPt the extra margin to keep, in points.
//
// The right and bottom pixel indices are inclusive, so they get +1 before
// scaling to become exclusive boundaries in continuous coordinates. The left
// and top indices already are the boundary and must not be shifted.
//
// The result is clamped to [0,pageW] x [0,pageH]. Compute reports false when
// the clamped rectangle collapses; such a page is left untouched.
func Compute(bbox raster.BBox, scale, marginPt, pageW, pageH float64) (Rect, bool) {
	r := Rect{
		X0: math.Max(0, float64(bbox.Left)*scale-marginPt),
		Y0: math.Max(0, float64(bbox.Top)*scale-marginPt),
		X1: math.Min(pageW, float64(bbox.Right+1)*scale+marginPt),
		Y1: math.Min(pageH, float64(bbox.Bottom+1)*scale+marginPt),
	}
	if r.X1 <= r.X0 || r.Y1 <= r.Y0 {
		return Rect{}, false
	}
	return r, true
}
