package photo

import (
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/nfnt/resize"
	xdraw "golang.org/x/image/draw"
)

// Filter selects the resampling kernel used by Letterbox.
type Filter int

const (
	// Lanczos3 is a 3-lobed Lanczos kernel, the sharpest of the available
	// filters.
	Lanczos3 Filter = iota
	// CatmullRom is a cubic kernel, slightly softer than Lanczos3.
	CatmullRom
	// BiLinear interpolates between the four nearest pixels.
	BiLinear
	// NearestNeighbor copies the closest pixel. Useful for pixel art.
	NearestNeighbor
)

var filterNames = map[Filter]string{
	Lanczos3:        "lanczos3",
	CatmullRom:      "catmullrom",
	BiLinear:        "bilinear",
	NearestNeighbor: "nearest",
}

func (f Filter) String() string {
	if s, ok := filterNames[f]; ok {
		return s
	}
	return fmt.Sprintf("Filter(%d)", int(f))
}

// ParseFilter returns the Filter named s.
func ParseFilter(s string) (Filter, error) {
	for f, name := range filterNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("photo: unknown filter %q", s)
}

// ScaledSize returns the size src takes when scaled uniformly to fit inside
// target. Each axis is rounded to the nearest pixel and kept within [1, target].
// With noUpscale set, sources smaller than target keep their size.
func ScaledSize(src, target image.Point, noUpscale bool) image.Point {
	scale := math.Min(float64(target.X)/float64(src.X), float64(target.Y)/float64(src.Y))
	if noUpscale && scale > 1 {
		scale = 1
	}
	return image.Point{
		X: clamp(int(math.Round(float64(src.X)*scale)), 1, target.X),
		Y: clamp(int(math.Round(float64(src.Y)*scale)), 1, target.Y),
	}
}

// Letterbox scales src to fit inside target without distortion and centers it
// on a white canvas of exactly target size.
func Letterbox(src image.Image, target image.Point, f Filter, noUpscale bool) *image.RGBA {
	canvas := image.NewRGBA(image.Rectangle{Max: target})
	xdraw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, xdraw.Src)

	sb := src.Bounds()
	size := ScaledSize(sb.Size(), target, noUpscale)
	offset := image.Point{
		X: (target.X - size.X) / 2,
		Y: (target.Y - size.Y) / 2,
	}
	dr := image.Rectangle{Min: offset, Max: offset.Add(size)}

	switch f {
	case CatmullRom:
		xdraw.CatmullRom.Scale(canvas, dr, src, sb, xdraw.Over, nil)
	case BiLinear:
		xdraw.BiLinear.Scale(canvas, dr, src, sb, xdraw.Over, nil)
	case NearestNeighbor:
		xdraw.NearestNeighbor.Scale(canvas, dr, src, sb, xdraw.Over, nil)
	default:
		scaled := resize.Resize(uint(size.X), uint(size.Y), src, resize.Lanczos3)
		xdraw.Draw(canvas, dr, scaled, scaled.Bounds().Min, xdraw.Over)
	}
	return canvas
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
