package photo

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/flavioheleno/epd2in15b/image1bit"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    Ink
	}{
		{"pure red (saturated rule)", 200, 30, 30, Accent},
		{"pure black", 10, 10, 10, Black},
		{"pure white", 255, 255, 255, Background},
		{"yellow highlight", 200, 200, 100, Accent},
		{"red dominant", 200, 130, 130, Accent},
		{"red dominant with green at 140", 185, 140, 100, Background},
		{"saturated boundary", 161, 99, 99, Accent},
		{"saturated below r threshold", 160, 99, 99, Background},
		{"dark red is black", 150, 20, 20, Black},
		{"highlight r boundary", 180, 200, 100, Background},
		{"sum just below 300", 100, 100, 99, Black},
		{"sum exactly 300", 100, 100, 100, Background},
		{"mid gray", 128, 128, 128, Background},
		{"dark blue", 0, 0, 200, Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("Classify(%d, %d, %d) = %v, want %v", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

// sweep returns a canvas covering the RGB cube in steps of 15.
func sweep() *image.RGBA {
	const steps = 18 // 0..255 in steps of 15
	img := image.NewRGBA(image.Rect(0, 0, steps*steps, steps))
	for r := 0; r < steps; r++ {
		for g := 0; g < steps; g++ {
			for b := 0; b < steps; b++ {
				img.SetRGBA(r*steps+g, b, color.RGBA{uint8(r * 15), uint8(g * 15), uint8(b * 15), 0xFF})
			}
		}
	}
	return img
}

func TestQuantizeBiColorMatchesClassify(t *testing.T) {
	src := sweep()
	f := Quantize(src, BiColor, NoDither)
	if f.Accent == nil {
		t.Fatal("Accent plane is nil for BiColor")
	}
	if f.Black.Bounds() != src.Bounds() || f.Accent.Bounds() != src.Bounds() {
		t.Fatalf("plane bounds = %v, %v, want %v", f.Black.Bounds(), f.Accent.Bounds(), src.Bounds())
	}

	b := src.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := src.RGBAAt(x, y)
			blk, acc := f.Black.BitAt(x, y), f.Accent.BitAt(x, y)
			if blk && acc {
				t.Fatalf("pixel %v set in both planes", c)
			}
			var got Ink
			switch {
			case acc == image1bit.Set:
				got = Accent
			case blk == image1bit.Set:
				got = Black
			}
			if want := Classify(c.R, c.G, c.B); got != want {
				t.Errorf("pixel %v quantized to %v, want %v", c, got, want)
			}
		}
	}
}

func TestQuantizeMonochrome(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 1))
	src.SetRGBA(0, 0, color.RGBA{0, 0, 0, 0xFF})
	src.SetRGBA(1, 0, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF})
	src.SetRGBA(2, 0, color.RGBA{200, 30, 30, 0xFF}) // Luma 81
	src.SetRGBA(3, 0, color.RGBA{127, 128, 129, 0xFF}) // Luma 127.8 rounds to 128

	f := Quantize(src, Monochrome, NoDither)
	if f.Accent != nil {
		t.Error("Accent plane should be nil for Monochrome")
	}
	want := []image1bit.Bit{image1bit.Set, image1bit.Clear, image1bit.Set, image1bit.Clear}
	for x, w := range want {
		if got := f.Black.BitAt(x, 0); got != w {
			t.Errorf("BitAt(%d, 0) = %v, want %v", x, got, w)
		}
	}
}

func TestQuantizeOffsetCanvas(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 20, 20)).SubImage(image.Rect(5, 5, 15, 15)).(*image.RGBA)
	for i := range src.Pix {
		src.Pix[i] = 0xFF
	}
	src.SetRGBA(5, 5, color.RGBA{0, 0, 0, 0xFF})

	f := Quantize(src, BiColor, NoDither)
	if want := image.Rect(0, 0, 10, 10); f.Bounds() != want {
		t.Fatalf("Bounds() = %v, want %v", f.Bounds(), want)
	}
	if f.Black.BitAt(0, 0) != image1bit.Set {
		t.Error("origin pixel should be black ink")
	}
	if got := f.Black.Count(); got != 1 {
		t.Errorf("Black.Count() = %d, want 1", got)
	}
}

func TestQuantizeFloydSteinberg(t *testing.T) {
	tests := []struct {
		name     string
		c        color.Color
		min, max int
	}{
		{"black", color.Black, 256, 256},
		{"white", color.White, 0, 0},
		{"mid gray", color.RGBA{0x80, 0x80, 0x80, 0xFF}, 96, 160},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Quantize(solid(16, 16, tt.c), Monochrome, FloydSteinberg)
			if f.Accent != nil {
				t.Error("Accent plane should be nil for Monochrome")
			}
			if n := f.Black.Count(); n < tt.min || n > tt.max {
				t.Errorf("Black.Count() = %d, want between %d and %d", n, tt.min, tt.max)
			}
		})
	}
}

func TestQuantizeDeterministic(t *testing.T) {
	src := sweep()
	for _, p := range []Palette{Monochrome, BiColor} {
		for _, d := range []Dither{NoDither, FloydSteinberg} {
			a := Quantize(src, p, d)
			b := Quantize(src, p, d)
			if !bytes.Equal(a.Black.Pix, b.Black.Pix) {
				t.Errorf("%v/%v: black planes differ between runs", p, d)
			}
			if a.Accent != nil && !bytes.Equal(a.Accent.Pix, b.Accent.Pix) {
				t.Errorf("%v/%v: accent planes differ between runs", p, d)
			}
		}
	}
}

func TestParsePalette(t *testing.T) {
	tests := []struct {
		in      string
		want    Palette
		wantErr bool
	}{
		{"monochrome", Monochrome, false},
		{"BW", Monochrome, false},
		{"bicolor", BiColor, false},
		{"bwr", BiColor, false},
		{"sepia", 0, true},
	}
	for _, tt := range tests {
		got, err := ParsePalette(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePalette(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParsePalette(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseDither(t *testing.T) {
	tests := []struct {
		in      string
		want    Dither
		wantErr bool
	}{
		{"", NoDither, false},
		{"none", NoDither, false},
		{"fs", FloydSteinberg, false},
		{"Floyd-Steinberg", FloydSteinberg, false},
		{"bayer", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseDither(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDither(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseDither(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInkString(t *testing.T) {
	tests := []struct {
		ink  Ink
		want string
	}{
		{Background, "background"},
		{Black, "black"},
		{Accent, "accent"},
		{Ink(7), "Ink(7)"},
	}

	for _, tt := range tests {
		if got := tt.ink.String(); got != tt.want {
			t.Errorf("Ink(%d).String() = %q, want %q", int(tt.ink), got, tt.want)
		}
	}
}
