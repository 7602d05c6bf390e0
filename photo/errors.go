package photo

import "fmt"

// ImageLoadError reports a source image that is missing, unreadable or corrupt.
type ImageLoadError struct {
	Path string // Empty when decoding from a reader
	Err  error
}

func (e *ImageLoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("photo: load image: %v", e.Err)
	}
	return fmt.Sprintf("photo: load image %q: %v", e.Path, e.Err)
}

func (e *ImageLoadError) Unwrap() error {
	return e.Err
}

// InvalidDimensionError reports a panel or source image with a non-positive
// width or height.
type InvalidDimensionError struct {
	Subject string // "panel" or "image"
	Width   int
	Height  int
}

func (e *InvalidDimensionError) Error() string {
	return fmt.Sprintf("photo: invalid %s dimensions %dx%d", e.Subject, e.Width, e.Height)
}

func checkDimensions(subject string, w, h int) error {
	if w <= 0 || h <= 0 {
		return &InvalidDimensionError{Subject: subject, Width: w, Height: h}
	}
	return nil
}
