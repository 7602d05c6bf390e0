// Package epd2in15b controls a Waveshare 2.15" tri-color (B) e-paper panel via SPI.
//
// The panel has 160x296 pixels with black and red inks over a white background.
// Its controller takes two 1-bit RAM planes: black (0 = ink) and red (1 = ink).
//
// See the examples for how to use this package.
package epd2in15b

import (
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/flavioheleno/epd2in15b/image1bit"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Controller commands
const (
	cmdDeepSleep       = 0x10
	cmdDataEntryMode   = 0x11
	cmdSWReset         = 0x12
	cmdTempSensor      = 0x18
	cmdMasterActivate  = 0x20
	cmdUpdateControl1  = 0x21
	cmdUpdateControl2  = 0x22
	cmdWriteBlackRAM   = 0x24
	cmdWriteRedRAM     = 0x26
	cmdBorderWaveform  = 0x3C
	cmdRAMXRange       = 0x44
	cmdRAMYRange       = 0x45
	cmdRAMXCounter     = 0x4E
	cmdRAMYCounter     = 0x4F
	maxTxSize          = 4096 // spidev default buffer size
	defaultBusyTimeout = 30 * time.Second
	busyPollInterval   = 10 * time.Millisecond
)

// ErrBusyTimeout is returned when the BUSY line stays high past Opts.BusyTimeout.
var ErrBusyTimeout = errors.New("epd2in15b: timed out waiting for busy line")

// Opts is the configuration for the panel.
type Opts struct {
	// Display dimensions in pixels, in controller RAM order
	W int // Width (default: 160, must be a multiple of 8)
	H int // Height (default: 296)

	// Longest wait for a refresh to complete (default: 30s)
	BusyTimeout time.Duration
}

// State is the lifecycle state of the panel.
type State int

const (
	// Uninitialized is the state after NewSPI and Close.
	Uninitialized State = iota
	// Ready accepts Clear, Display and Sleep.
	Ready
	// Rendering is held while RAM is written and the panel refreshes.
	Rendering
	// Asleep is deep sleep. Only Init wakes the controller.
	Asleep
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "Uninitialized"
	case Ready:
		return "Ready"
	case Rendering:
		return "Rendering"
	case Asleep:
		return "Asleep"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// StateError is returned when an operation is not allowed in the current state.
type StateError struct {
	Op    string
	State State
}

func (e *StateError) Error() string {
	return fmt.Sprintf("epd2in15b: %s not allowed while %s", e.Op, e.State)
}

// Dev is the device handle for the panel.
type Dev struct {
	// Communication
	c    conn.Conn   // SPI connection
	dc   gpio.PinOut // Data/Command pin
	rst  gpio.PinOut // Reset pin
	busy gpio.PinIn  // Busy pin, high while the controller works

	// Display geometry
	rect image.Rectangle

	busyTimeout time.Duration
	sleep       func(time.Duration)

	state State
}

// NewSPI creates a new device connected via SPI.
//
// The SPI port is configured for 4MHz, Mode0 (CPOL=0, CPHA=0), 8-bit transfers.
// The panel is not touched until Init is called.
//
// opts can be nil to use defaults (160x296 panel).
func NewSPI(p spi.Port, dc, rst gpio.PinOut, busy gpio.PinIn, opts *Opts) (*Dev, error) {
	// Apply defaults and validate options
	if opts == nil {
		opts = &Opts{W: 160, H: 296}
	}
	if opts.W <= 0 || opts.W%8 != 0 {
		return nil, errors.New("epd2in15b: width must be a positive multiple of 8")
	}
	if opts.H <= 0 {
		return nil, errors.New("epd2in15b: height must be positive")
	}
	if dc == nil || rst == nil || busy == nil {
		return nil, errors.New("epd2in15b: dc, rst and busy pins are required")
	}
	timeout := opts.BusyTimeout
	if timeout <= 0 {
		timeout = defaultBusyTimeout
	}

	c, err := p.Connect(4*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("epd2in15b: connect spi: %w", err)
	}
	if err := busy.In(gpio.PullDown, gpio.NoEdge); err != nil {
		return nil, fmt.Errorf("epd2in15b: configure busy pin: %w", err)
	}

	return &Dev{
		c:           c,
		dc:          dc,
		rst:         rst,
		busy:        busy,
		rect:        image.Rect(0, 0, opts.W, opts.H),
		busyTimeout: timeout,
		sleep:       time.Sleep,
	}, nil
}

// Init resets the controller and loads the panel configuration.
// It is valid on a new device and on a sleeping one.
func (d *Dev) Init() error {
	if d.state != Uninitialized && d.state != Asleep {
		return &StateError{Op: "init", State: d.state}
	}
	if err := d.reset(); err != nil {
		return err
	}
	if err := d.waitIdle(); err != nil {
		return err
	}
	if err := d.sendCommand(cmdSWReset); err != nil {
		return err
	}
	if err := d.waitIdle(); err != nil {
		return err
	}

	w, h := d.rect.Dx(), d.rect.Dy()
	steps := []struct {
		cmd  byte
		data []byte
	}{
		{cmdDataEntryMode, []byte{0x03}}, // X and Y increment
		{cmdRAMXRange, []byte{0x00, byte((w - 1) >> 3)}},
		{cmdRAMYRange, []byte{0x00, 0x00, byte(h - 1), byte((h - 1) >> 8)}},
		{cmdBorderWaveform, []byte{0x05}},
		{cmdTempSensor, []byte{0x80}}, // Internal sensor
		{cmdUpdateControl1, []byte{0x80, 0x80}},
	}
	for _, s := range steps {
		if err := d.sendCommand(s.cmd, s.data...); err != nil {
			return err
		}
	}
	if err := d.setCursor(); err != nil {
		return err
	}
	if err := d.waitIdle(); err != nil {
		return err
	}
	d.state = Ready
	return nil
}

// Clear blanks both RAM planes and refreshes the panel to white.
func (d *Dev) Clear() error {
	return d.render("clear", d.blank(0xFF), d.blank(0x00))
}

// Display writes the planes to the panel and refreshes it.
//
// Each plane must be W×H, or H×W in which case it is rotated 90° into RAM
// order. accent may be nil for black-only content.
func (d *Dev) Display(black, accent *image1bit.Plane) error {
	if black == nil {
		return errors.New("epd2in15b: black plane is required")
	}
	blackRAM, err := d.pack(black, true)
	if err != nil {
		return err
	}
	redRAM := d.blank(0x00)
	if accent != nil {
		if accent.Bounds().Size() != black.Bounds().Size() {
			return errors.New("epd2in15b: planes differ in size")
		}
		if redRAM, err = d.pack(accent, false); err != nil {
			return err
		}
	}
	return d.render("display", blackRAM, redRAM)
}

// Sleep puts the controller into deep sleep. Call Init to wake it.
func (d *Dev) Sleep() error {
	if d.state != Ready {
		return &StateError{Op: "sleep", State: d.state}
	}
	if err := d.sendCommand(cmdDeepSleep, 0x01); err != nil {
		return err
	}
	d.state = Asleep
	return nil
}

// Halt puts the controller into deep sleep if it is awake.
func (d *Dev) Halt() error {
	if d.state == Ready {
		return d.Sleep()
	}
	return nil
}

// Close drives the control lines low and returns the device to Uninitialized.
// Deep sleep is not entered; call Sleep first for a clean shutdown.
func (d *Dev) Close() error {
	d.state = Uninitialized
	errRST := d.rst.Out(gpio.Low)
	errDC := d.dc.Out(gpio.Low)
	return errors.Join(errRST, errDC)
}

// State returns the current lifecycle state.
func (d *Dev) State() State {
	return d.state
}

// Width returns the native width in pixels.
func (d *Dev) Width() int {
	return d.rect.Dx()
}

// Height returns the native height in pixels.
func (d *Dev) Height() int {
	return d.rect.Dy()
}

// Bounds returns the native bounds of the panel.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("epd2in15b.Dev{%dx%d, %s}", d.rect.Dx(), d.rect.Dy(), d.state)
}

// render writes both RAM planes and triggers a refresh.
func (d *Dev) render(op string, blackRAM, redRAM []byte) error {
	if d.state != Ready {
		return &StateError{Op: op, State: d.state}
	}
	d.state = Rendering
	if err := d.writeFrame(blackRAM, redRAM); err != nil {
		// The controller is left in an unknown state; Init recovers it.
		d.state = Uninitialized
		return err
	}
	d.state = Ready
	return nil
}

func (d *Dev) writeFrame(blackRAM, redRAM []byte) error {
	if err := d.setCursor(); err != nil {
		return err
	}
	if err := d.sendCommand(cmdWriteBlackRAM, blackRAM...); err != nil {
		return err
	}
	if err := d.setCursor(); err != nil {
		return err
	}
	if err := d.sendCommand(cmdWriteRedRAM, redRAM...); err != nil {
		return err
	}
	return d.turnOn()
}

// turnOn runs the display update sequence and waits for it to finish.
func (d *Dev) turnOn() error {
	if err := d.sendCommand(cmdUpdateControl2, 0xF7); err != nil {
		return err
	}
	if err := d.sendCommand(cmdMasterActivate); err != nil {
		return err
	}
	return d.waitIdle()
}

func (d *Dev) setCursor() error {
	if err := d.sendCommand(cmdRAMXCounter, 0x00); err != nil {
		return err
	}
	return d.sendCommand(cmdRAMYCounter, 0x00, 0x00)
}

// reset pulses the reset line.
func (d *Dev) reset() error {
	if err := d.rst.Out(gpio.High); err != nil {
		return fmt.Errorf("epd2in15b: failed to pull RST high: %w", err)
	}
	d.sleep(20 * time.Millisecond)
	if err := d.rst.Out(gpio.Low); err != nil {
		return fmt.Errorf("epd2in15b: failed to pull RST low: %w", err)
	}
	d.sleep(2 * time.Millisecond)
	if err := d.rst.Out(gpio.High); err != nil {
		return fmt.Errorf("epd2in15b: failed to pull RST high: %w", err)
	}
	d.sleep(20 * time.Millisecond)
	return nil
}

// waitIdle polls the busy line until it goes low.
func (d *Dev) waitIdle() error {
	for waited := time.Duration(0); d.busy.Read() == gpio.High; waited += busyPollInterval {
		if waited >= d.busyTimeout {
			return ErrBusyTimeout
		}
		d.sleep(busyPollInterval)
	}
	return nil
}

// blank returns a RAM plane filled with v.
func (d *Dev) blank(v byte) []byte {
	buf := make([]byte, d.rect.Dx()/8*d.rect.Dy())
	for i := range buf {
		buf[i] = v
	}
	return buf
}

// pack converts a plane to RAM bytes. With invert set, ink is written as 0.
func (d *Dev) pack(p *image1bit.Plane, invert bool) ([]byte, error) {
	w, h := d.rect.Dx(), d.rect.Dy()
	size := p.Bounds().Size()
	origin := p.Bounds().Min

	var at func(x, y int) image1bit.Bit
	switch size {
	case image.Point{X: w, Y: h}:
		at = func(x, y int) image1bit.Bit { return p.BitAt(origin.X+x, origin.Y+y) }
	case image.Point{X: h, Y: w}:
		// Horizontal content: RAM (x, y) shows plane pixel (h-1-y, x)
		at = func(x, y int) image1bit.Bit { return p.BitAt(origin.X+h-1-y, origin.Y+x) }
	default:
		return nil, fmt.Errorf("epd2in15b: plane is %dx%d, want %dx%d or %dx%d", size.X, size.Y, w, h, h, w)
	}

	stride := w / 8
	buf := make([]byte, stride*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if at(x, y) {
				buf[y*stride+x/8] |= 0x80 >> uint(x&7)
			}
		}
	}
	if invert {
		for i := range buf {
			buf[i] = ^buf[i]
		}
	}
	return buf, nil
}

// sendCommand sends a command byte followed by its data bytes.
func (d *Dev) sendCommand(cmd byte, data ...byte) error {
	if err := d.dc.Out(gpio.Low); err != nil {
		return err
	}
	if err := d.c.Tx([]byte{cmd}, nil); err != nil {
		return fmt.Errorf("epd2in15b: command 0x%02X: %w", cmd, err)
	}
	if len(data) == 0 {
		return nil
	}
	return d.sendData(data)
}

// sendData sends data bytes in chunks the SPI driver accepts.
func (d *Dev) sendData(data []byte) error {
	if err := d.dc.Out(gpio.High); err != nil {
		return err
	}
	for len(data) > 0 {
		n := len(data)
		if n > maxTxSize {
			n = maxTxSize
		}
		if err := d.c.Tx(data[:n], nil); err != nil {
			return fmt.Errorf("epd2in15b: data: %w", err)
		}
		data = data[n:]
	}
	return nil
}
