// Package neopixel drives a WS2812B LED strip by bit-banging a single GPIO pin.
package neopixel

import (
	"errors"

	"github.com/callebjorkell/ws2812b/internal/pixel"
	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/physic"
)

var (
	ErrClock   = errors.New("neopixel: clock frequency must be positive")
	ErrTiming  = errors.New("neopixel: timing must satisfy 0 < T0H < T1H < Period and 0 <= Reset")
	ErrTooSlow = errors.New("neopixel: clock is too slow to encode the timing")
	ErrOrder   = errors.New("neopixel: unknown channel order")
	ErrLength  = errors.New("neopixel: pixel count cannot be negative")
	ErrPin     = errors.New("neopixel: no data pin")
)

// Opts is the construction-time configuration of a strip.
type Opts struct {
	NumPixels int
	Order     Order
	// Clock is the core clock the pulse spans are quantized to.
	Clock  physic.Frequency
	Timing Timing

	// Delay and Interrupts default to Spin and ThreadLock.
	Delay      Delayer
	Interrupts Interrupts
}

// DefaultOpts is a single RGB pixel on a 16MHz core.
var DefaultOpts = Opts{
	NumPixels: 1,
	Order:     RGB,
	Clock:     16 * physic.MegaHertz,
	Timing:    WS2812B,
}

// Strip owns the pixel buffer of one LED chain and the encoder bound to its pin.
//
// Nothing is sent until Transmit is called. A Strip is not safe for concurrent use.
type Strip struct {
	pin    Pin
	pixels *pixel.Buffer
	enc    *Encoder
}

// NewStrip creates a strip of opts.NumPixels black pixels. A nil opts uses DefaultOpts.
func NewStrip(pin Pin, opts *Opts) (*Strip, error) {
	if opts == nil {
		o := DefaultOpts
		opts = &o
	}
	if opts.NumPixels < 0 {
		return nil, ErrLength
	}
	enc, err := NewEncoder(pin, opts)
	if err != nil {
		return nil, err
	}
	return &Strip{
		pin:    pin,
		pixels: pixel.NewBuffer(opts.NumPixels),
		enc:    enc,
	}, nil
}

// Setup configures the pin as an output, once, before the first Transmit.
func (s *Strip) Setup() error {
	log.Debugf("Setting up %d pixel %s strip", s.pixels.Len(), s.enc.Order())
	if c, ok := s.pin.(Configurer); ok {
		return c.Configure()
	}
	return nil
}

func (s *Strip) Len() int {
	return s.pixels.Len()
}

// Set stores c at pos. Positions outside the strip are ignored.
func (s *Strip) Set(pos int, c pixel.RGB) {
	s.pixels.Set(pos, c)
}

func (s *Strip) SetRGB(pos int, r, g, b uint8) {
	s.pixels.SetRGB(pos, r, g, b)
}

// SetHSV stores the fixed-point conversion of h, sat and v at pos. See pixel.HSV.
func (s *Strip) SetHSV(pos int, h uint16, sat, v uint8) {
	s.pixels.SetHSV(pos, h, sat, v)
}

func (s *Strip) Fill(c pixel.RGB) {
	s.pixels.Fill(c)
}

// At returns the stored pixel at pos.
func (s *Strip) At(pos int) pixel.RGB {
	return s.pixels.At(pos)
}

// Timing is the calibrated timing used on the wire.
func (s *Strip) Timing() Timing {
	return s.enc.Timing()
}

// Transmit sends the whole buffer. The buffer must not be written to until it returns.
func (s *Strip) Transmit() {
	log.Debugf("Transmitting %d pixels", s.pixels.Len())
	s.enc.Transmit(s.pixels)
}
