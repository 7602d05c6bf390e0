package photo

import (
	"fmt"
	"image"

	"github.com/flavioheleno/epd2in15b/image1bit"
)

// Sink renders finished planes. accent is nil for monochrome frames.
type Sink interface {
	Display(black, accent *image1bit.Plane) error
}

// Options is the configuration of the preparation pipeline.
// The zero value quantizes to a single black plane with Lanczos3 scaling.
type Options struct {
	Palette   Palette
	Filter    Filter
	Dither    Dither // Monochrome only
	NoUpscale bool   // Keep sources smaller than the panel at their size
}

// Prepare fits src to the best orientation of p and quantizes it.
func Prepare(src image.Image, p Panel, opts Options) (*Frame, error) {
	if err := checkDimensions("panel", p.Width(), p.Height()); err != nil {
		return nil, err
	}
	sb := src.Bounds()
	if err := checkDimensions("image", sb.Dx(), sb.Dy()); err != nil {
		return nil, err
	}

	target := ChooseTargetSize(p, sb)
	canvas := Letterbox(src, target, opts.Filter, opts.NoUpscale)
	return Quantize(canvas, opts.Palette, opts.Dither), nil
}

// Show loads the image at path, prepares it for p and hands the planes to s.
// The sink is usually the same driver that describes the panel.
func Show(s Sink, p Panel, path string, opts Options) error {
	img, err := Load(path)
	if err != nil {
		return err
	}
	f, err := Prepare(img, p, opts)
	if err != nil {
		return err
	}
	if err := s.Display(f.Black, f.Accent); err != nil {
		return fmt.Errorf("photo: display: %w", err)
	}
	return nil
}
