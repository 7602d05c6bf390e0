// Package image1bit provides a packed 1-bit image format for e-paper ink planes.
//
// A Plane stores one bit per pixel with rows packed MSB first. Set pixels are
// ink, Clear pixels are background.
package image1bit

import (
	"image"
	"image/color"
)

// Bit is a single pixel of an ink plane.
type Bit bool

const (
	// Clear is the white background.
	Clear Bit = false
	// Set is ink.
	Set Bit = true
)

// RGBA converts the Bit to standard RGBA. Set is black, Clear is white.
func (c Bit) RGBA() (r, g, b, a uint32) {
	if c {
		return 0, 0, 0, 0xFFFF
	}
	return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
}

func (c Bit) String() string {
	if c {
		return "Set"
	}
	return "Clear"
}

// Threshold is the 8-bit luma below which BitModel reports ink.
const Threshold = 128

// toBit converts any color.Color to Bit.
func toBit(c color.Color) color.Color {
	if b, ok := c.(Bit); ok {
		return b
	}
	return Bit(Luma(c) < Threshold)
}

// Luma returns the ITU-R 601-2 luma of c on a 0-255 scale.
func Luma(c color.Color) uint8 {
	r, g, b, _ := c.RGBA()
	// RGBA returns 16-bit values, scale to 8 bits before weighting and round
	y := (299*(r>>8) + 587*(g>>8) + 114*(b>>8) + 500) / 1000
	return uint8(y)
}

// BitModel converts colors to Bit.
var BitModel = color.ModelFunc(toBit)

// Plane is a 1-bit image with horizontally packed rows.
// Bit 7 of the first byte of a row is its leftmost pixel.
type Plane struct {
	Pix    []byte          // Pixel data (8 pixels per byte)
	Stride int             // Bytes per row
	Rect   image.Rectangle // Image bounds
}

// NewPlane creates a new Plane with the specified bounds, all pixels Clear.
// Rows whose width is not a multiple of 8 are padded with Clear bits.
func NewPlane(r image.Rectangle) *Plane {
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return &Plane{Rect: r}
	}
	stride := (w + 7) / 8
	return &Plane{
		Pix:    make([]byte, stride*h),
		Stride: stride,
		Rect:   r,
	}
}

// ColorModel returns the color model of the plane.
func (p *Plane) ColorModel() color.Model {
	return BitModel
}

// Bounds returns the plane bounds.
func (p *Plane) Bounds() image.Rectangle {
	return p.Rect
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (p *Plane) At(x, y int) color.Color {
	return p.BitAt(x, y)
}

// BitAt returns the Bit at (x, y). Out of bounds pixels are Clear.
func (p *Plane) BitAt(x, y int) Bit {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Clear
	}
	offset, mask := p.pixOffset(x, y)
	return p.Pix[offset]&mask != 0
}

// Set sets the color of the pixel at (x, y).
func (p *Plane) Set(x, y int, c color.Color) {
	p.SetBit(x, y, BitModel.Convert(c).(Bit))
}

// SetBit sets the Bit at (x, y).
// This is faster than Set() as it doesn't require color conversion.
func (p *Plane) SetBit(x, y int, b Bit) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	offset, mask := p.pixOffset(x, y)
	if b {
		p.Pix[offset] |= mask
	} else {
		p.Pix[offset] &^= mask
	}
}

// Count returns the number of Set pixels.
func (p *Plane) Count() int {
	n := 0
	for y := p.Rect.Min.Y; y < p.Rect.Max.Y; y++ {
		for x := p.Rect.Min.X; x < p.Rect.Max.X; x++ {
			if p.BitAt(x, y) {
				n++
			}
		}
	}
	return n
}

// pixOffset returns the byte offset and bit mask for the pixel at (x, y).
func (p *Plane) pixOffset(x, y int) (offset int, mask byte) {
	dx := x - p.Rect.Min.X
	offset = (y-p.Rect.Min.Y)*p.Stride + dx/8
	mask = 0x80 >> uint(dx&7)
	return
}
