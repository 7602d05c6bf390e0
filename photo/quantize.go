package photo

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/flavioheleno/epd2in15b/image1bit"
	xdraw "golang.org/x/image/draw"
)

// Palette is the set of inks a panel can show besides white.
type Palette int

const (
	// Monochrome panels have black ink only.
	Monochrome Palette = iota
	// BiColor panels have black ink and one accent ink (red).
	BiColor
)

func (p Palette) String() string {
	switch p {
	case Monochrome:
		return "monochrome"
	case BiColor:
		return "bicolor"
	default:
		return fmt.Sprintf("Palette(%d)", int(p))
	}
}

// ParsePalette returns the Palette named s.
func ParsePalette(s string) (Palette, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "monochrome", "mono", "bw":
		return Monochrome, nil
	case "bicolor", "bi-color", "bwr":
		return BiColor, nil
	}
	return 0, fmt.Errorf("photo: unknown palette %q", s)
}

// Dither selects how monochrome quantization handles intermediate tones.
type Dither int

const (
	// NoDither thresholds each pixel's luma at image1bit.Threshold.
	NoDither Dither = iota
	// FloydSteinberg diffuses the quantization error to neighboring pixels.
	FloydSteinberg
)

func (d Dither) String() string {
	switch d {
	case NoDither:
		return "none"
	case FloydSteinberg:
		return "floydsteinberg"
	default:
		return fmt.Sprintf("Dither(%d)", int(d))
	}
}

// ParseDither returns the Dither named s.
func ParseDither(s string) (Dither, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "threshold":
		return NoDither, nil
	case "floydsteinberg", "floyd-steinberg", "fs":
		return FloydSteinberg, nil
	}
	return 0, fmt.Errorf("photo: unknown dither %q", s)
}

// Ink is the classification of a single pixel.
type Ink int

const (
	// Background is left white on the panel.
	Background Ink = iota
	// Black is drawn with black ink.
	Black
	// Accent is drawn with the accent ink (red).
	Accent
)

func (i Ink) String() string {
	switch i {
	case Background:
		return "background"
	case Black:
		return "black"
	case Accent:
		return "accent"
	default:
		return fmt.Sprintf("Ink(%d)", int(i))
	}
}

// Classify returns the bi-color ink for an opaque pixel.
// The accent test runs first; a pixel that qualifies as accent is never black.
func Classify(r, g, b uint8) Ink {
	if isAccent(int(r), int(g), int(b)) {
		return Accent
	}
	if isBlack(int(r), int(g), int(b)) {
		return Black
	}
	return Background
}

func isAccent(r, g, b int) bool {
	// Bright yellow-red highlight
	if r > 180 && g > 180 && b < 120 {
		return true
	}
	// Saturated red
	if r > 160 && g < 100 && b < 100 {
		return true
	}
	// Red dominant with enough separation from the other channels
	if r > 180 && g < 140 && b < 140 && r-max(g, b) > 40 {
		return true
	}
	return false
}

func isBlack(r, g, b int) bool {
	return r+g+b < 3*100
}

// Frame holds the planes for one panel refresh.
type Frame struct {
	Black  *image1bit.Plane
	Accent *image1bit.Plane // nil for monochrome panels
}

// Bounds returns the bounds shared by the frame's planes.
func (f *Frame) Bounds() image.Rectangle {
	return f.Black.Bounds()
}

// Quantize converts an opaque canvas into ink planes. The planes have the
// canvas size with their origin at (0, 0).
func Quantize(src *image.RGBA, p Palette, d Dither) *Frame {
	sb := src.Bounds()
	rect := image.Rectangle{Max: sb.Size()}

	if p == BiColor {
		return quantizeBiColor(src, rect)
	}
	if d == FloydSteinberg {
		return quantizeDithered(src, rect)
	}

	black := image1bit.NewPlane(rect)
	for y := 0; y < rect.Dy(); y++ {
		for x := 0; x < rect.Dx(); x++ {
			c := src.RGBAAt(sb.Min.X+x, sb.Min.Y+y)
			if image1bit.Luma(c) < image1bit.Threshold {
				black.SetBit(x, y, image1bit.Set)
			}
		}
	}
	return &Frame{Black: black}
}

func quantizeBiColor(src *image.RGBA, rect image.Rectangle) *Frame {
	sb := src.Bounds()
	black := image1bit.NewPlane(rect)
	accent := image1bit.NewPlane(rect)
	for y := 0; y < rect.Dy(); y++ {
		for x := 0; x < rect.Dx(); x++ {
			c := src.RGBAAt(sb.Min.X+x, sb.Min.Y+y)
			switch Classify(c.R, c.G, c.B) {
			case Accent:
				accent.SetBit(x, y, image1bit.Set)
			case Black:
				black.SetBit(x, y, image1bit.Set)
			}
		}
	}
	return &Frame{Black: black, Accent: accent}
}

// monoPalette orders white first so index 1 is ink.
var monoPalette = color.Palette{color.White, color.Black}

func quantizeDithered(src *image.RGBA, rect image.Rectangle) *Frame {
	dithered := image.NewPaletted(rect, monoPalette)
	xdraw.FloydSteinberg.Draw(dithered, rect, src, src.Bounds().Min)

	black := image1bit.NewPlane(rect)
	for y := 0; y < rect.Dy(); y++ {
		for x := 0; x < rect.Dx(); x++ {
			if dithered.ColorIndexAt(x, y) == 1 {
				black.SetBit(x, y, image1bit.Set)
			}
		}
	}
	return &Frame{Black: black}
}
