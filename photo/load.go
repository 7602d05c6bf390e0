package photo

import (
	"image"
	"image/draw"
	"io"
	"os"

	// Registered decoders
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Load reads the image file at path and returns it as an opaque RGBA raster.
// See Decode.
func Load(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ImageLoadError{Path: path, Err: err}
	}
	defer f.Close()

	img, err := Decode(f)
	if le, ok := err.(*ImageLoadError); ok {
		le.Path = path
	}
	return img, err
}

// Decode decodes an image and flattens it onto opaque white.
//
// Transparent pixels become white, opaque pixels keep their color and partially
// transparent pixels are blended linearly with white. The result always has
// its origin at (0, 0) and every pixel has full alpha.
func Decode(r io.Reader) (*image.RGBA, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, &ImageLoadError{Err: err}
	}
	b := src.Bounds()
	if err := checkDimensions("image", b.Dx(), b.Dy()); err != nil {
		return nil, err
	}
	return flatten(src), nil
}

// flatten composites src over a white background.
func flatten(src image.Image) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Over)
	return dst
}
