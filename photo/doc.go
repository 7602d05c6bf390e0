// Package photo prepares photographs for limited-palette e-paper panels.
//
// The pipeline runs in one direction:
//
//	Load -> ChooseTargetSize -> Letterbox -> Quantize -> Sink.Display
//
// Load normalizes any decodable image (PNG, JPEG, GIF, BMP, TIFF, WebP) to an
// opaque RGBA raster, compositing transparency over white. ChooseTargetSize
// picks the panel orientation whose aspect ratio is closest to the source.
// Letterbox scales the raster uniformly to fit that size and centers it on a
// white canvas. Quantize splits the canvas into ink planes: a single black
// plane for monochrome panels, or a black plane and an accent plane for
// bi-color panels.
//
// # Bi-color classification
//
// Each pixel is tested for the accent ink first, then for black ink:
//
//	accent: r > 180 && g > 180 && b < 120
//	     || r > 160 && g < 100 && b < 100
//	     || r > 180 && g < 140 && b < 140 && r-max(g, b) > 40
//	black:  r+g+b < 300
//
// Pixels matching neither stay background in both planes. The thresholds
// follow the response of red ink panels and must not be replaced by a color
// distance model.
//
// # Basic Usage
//
//	dev, _ := epd2in15b.NewSPI(port, dc, rst, busy, nil)
//	_ = dev.Init()
//	err := photo.Show(dev, dev, "picture.png", photo.Options{
//		Palette: photo.BiColor,
//	})
//
// Prepare can be used on its own to obtain the planes without a device; Preview
// turns them back into an image for inspection.
package photo
