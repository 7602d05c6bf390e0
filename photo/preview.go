package photo

import (
	"image"
	"image/color"

	"github.com/flavioheleno/epd2in15b/image1bit"
)

// PreviewPalette holds the colors used by Preview, indexed white, black, red.
var PreviewPalette = color.Palette{
	color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
	color.RGBA{0x00, 0x00, 0x00, 0xFF},
	color.RGBA{0xFF, 0x00, 0x00, 0xFF},
}

// Preview renders a frame as the panel would show it.
func Preview(f *Frame) *image.Paletted {
	rect := f.Bounds()
	img := image.NewPaletted(rect, PreviewPalette)
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			switch {
			case f.Accent != nil && f.Accent.BitAt(x, y) == image1bit.Set:
				img.SetColorIndex(x, y, 2)
			case f.Black.BitAt(x, y) == image1bit.Set:
				img.SetColorIndex(x, y, 1)
			}
		}
	}
	return img
}
