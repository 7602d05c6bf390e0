// Package epd2in15b controls a Waveshare 2.15" tri-color (B) e-paper panel via SPI.
//
// The panel shows black and red ink over a white background at 160×296 pixels.
// This driver owns the controller lifecycle and the RAM packing of ink planes;
// package photo prepares those planes from arbitrary photographs.
//
// # Display Characteristics
//
// - Two 1-bit RAM planes: black (0 = ink) and red (1 = ink)
// - Native resolution 160×296, width a multiple of 8
// - Full refresh only, roughly 15 seconds for a tri-color update
// - Retains the image without power; deep sleep between updates
//
// # Hardware Connection
//
// Connect the panel to your system via SPI:
//
//	Panel Pin → System Pin
//	GND       → GND
//	VCC       → 3.3V
//	DIN       → SPI Data (MOSI)
//	CLK       → SPI Clock (SCLK)
//	CS        → SPI Chip Select (CE0)
//	DC        → GPIO25
//	RST       → GPIO17
//	BUSY      → GPIO24
//
// # Lifecycle
//
// The device is a small state machine:
//
//	Uninitialized --Init--> Ready --Clear/Display--> Rendering --> Ready
//	Ready --Sleep--> Asleep --Init--> Ready
//
// Calling an operation in the wrong state returns a *StateError. A transfer
// failure or busy timeout in the middle of a refresh leaves the device
// Uninitialized; Init brings it back.
//
// # Basic Usage
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/host/v3"
//
//		"github.com/flavioheleno/epd2in15b"
//		"github.com/flavioheleno/epd2in15b/photo"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open SPI bus
//		spiBus, _ := spireg.Open("")
//		defer spiBus.Close()
//
//		// Create device
//		dev, _ := epd2in15b.NewSPI(spiBus,
//			gpioreg.ByName("GPIO25"),
//			gpioreg.ByName("GPIO17"),
//			gpioreg.ByName("GPIO24"),
//			nil)
//		defer dev.Halt()
//
//		dev.Init()
//
//		// Fit, quantize and display a photo
//		photo.Show(dev, dev, "picture.png", photo.Options{Palette: photo.BiColor})
//	}
//
// # Orientation
//
// Display accepts planes in native (160×296) or transposed (296×160) size.
// Transposed planes are rotated 90° while packing, so landscape content can be
// prepared without knowing the RAM layout.
//
// # Datasheet
//
// The controller is SSD1680 compatible. For the panel wiki, see:
// https://www.waveshare.com/wiki/2.15inch_e-Paper_HAT_(B)
package epd2in15b
