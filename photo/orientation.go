package photo

import (
	"image"
	"math"
)

// Panel describes the native geometry reported by a display driver.
type Panel interface {
	Width() int
	Height() int
}

// Dimensions is a Panel with fixed geometry, used when no device is attached.
type Dimensions struct {
	W int
	H int
}

// Width returns the native width.
func (d Dimensions) Width() int { return d.W }

// Height returns the native height.
func (d Dimensions) Height() int { return d.H }

// Candidates returns the two orientations a panel can render into.
//
// The horizontal candidate is (Height, Width) and the vertical candidate is
// (Width, Height), regardless of which dimension is larger. Drivers report
// their dimensions in controller RAM order, so the horizontal candidate is the
// one they rotate when packing.
func Candidates(p Panel) (horizontal, vertical image.Point) {
	horizontal = image.Point{X: p.Height(), Y: p.Width()}
	vertical = image.Point{X: p.Width(), Y: p.Height()}
	return
}

// ChooseTargetSize returns the orientation of p whose aspect ratio is closest
// to the aspect ratio of src. Ties go to the horizontal candidate.
//
// Both p and src must have positive dimensions.
func ChooseTargetSize(p Panel, src image.Rectangle) image.Point {
	ratio := float64(src.Dx()) / float64(src.Dy())
	horizontal, vertical := Candidates(p)
	if math.Abs(ratio-aspect(horizontal)) <= math.Abs(ratio-aspect(vertical)) {
		return horizontal
	}
	return vertical
}

func aspect(p image.Point) float64 {
	return float64(p.X) / float64(p.Y)
}
