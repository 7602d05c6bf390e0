// Package image1bit provides a packed 1-bit image format for the ink planes of
// tri-color e-paper panels.
//
// Each plane stores one bit per pixel, rows packed MSB first. A set bit is ink
// and a clear bit is the white background:
//
//	Pixels: 0 1 2 3 4 5 6 7 8
//	Values: S C C S C C C C S
//	Bytes:  0x90     0x80
//	        (row stride is rounded up to a whole byte)
//
// This package provides:
//
// - Bit: A color type with two values, Set (ink) and Clear (background)
// - BitModel: A color model converting standard Go colors to Bit by luma threshold
// - Plane: An image.Image implementation that the epd2in15b driver packs into RAM
//
// Example usage:
//
//	// Create a 160x296 plane
//	p := image1bit.NewPlane(image.Rect(0, 0, 160, 296))
//
//	// Mark a pixel as ink
//	p.SetBit(10, 20, image1bit.Set)
//
//	// Use with standard Go image operations
//	draw.Draw(p, p.Bounds(), image.NewUniform(image1bit.Clear), image.Point{}, draw.Src)
package image1bit
