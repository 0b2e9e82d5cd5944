package neopixel

import (
	"time"

	"github.com/callebjorkell/ws2812b/internal/pixel"
)

// Encoder turns a pixel buffer into the WS2812B single-wire waveform.
//
// There is no acknowledgement from the chain. A frame that gets delayed mid-bit shows up as wrong colors and
// nothing here can detect it.
type Encoder struct {
	pin   Pin
	delay Delayer
	irq   Interrupts
	order Order

	timing Timing
	// Spans of one bit: high for all bits, extra high for ones, low remainder for ones.
	high, mid, tail time.Duration
}

// NewEncoder calibrates opts.Timing for opts.Clock and binds the result to pin. A nil opts uses DefaultOpts.
func NewEncoder(pin Pin, opts *Opts) (*Encoder, error) {
	if pin == nil {
		return nil, ErrPin
	}
	if opts == nil {
		o := DefaultOpts
		opts = &o
	}
	if !opts.Order.valid() {
		return nil, ErrOrder
	}
	t, err := opts.Timing.Calibrate(opts.Clock)
	if err != nil {
		return nil, err
	}

	e := &Encoder{
		pin:    pin,
		delay:  opts.Delay,
		irq:    opts.Interrupts,
		order:  opts.Order,
		timing: t,
		high:   t.T0H,
		mid:    t.T1H - t.T0H,
		tail:   t.Period - t.T1H,
	}
	if e.delay == nil {
		e.delay = Spin{}
	}
	if e.irq == nil {
		e.irq = ThreadLock{}
	}
	return e, nil
}

// Timing is the calibrated timing the encoder emits.
func (e *Encoder) Timing() Timing {
	return e.timing
}

func (e *Encoder) Order() Order {
	return e.order
}

// Transmit latches the chain, then sends every pixel of buf in index order and leaves the line low.
// It blocks for the whole frame and cannot be cancelled.
func (e *Encoder) Transmit(buf *pixel.Buffer) {
	e.pin.Low()
	e.delay.Delay(e.timing.Reset)

	for i := 0; i < buf.Len(); i++ {
		for _, b := range e.order.Channels(buf.At(i)) {
			e.sendByte(b)
		}
	}
}

func (e *Encoder) sendByte(b byte) {
	critical(e.irq, func() {
		for mask := byte(0x80); mask != 0; mask >>= 1 {
			e.sendBit(b&mask != 0)
		}
	})
}

// sendBit raises the line, drops it early for a zero, and pads both cases to the same period. Both cases
// write the pin three times.
func (e *Encoder) sendBit(one bool) {
	e.pin.High()
	e.delay.Delay(e.high)
	if one {
		e.pin.High()
	} else {
		e.pin.Low()
	}
	e.delay.Delay(e.mid)
	e.pin.Low()
	e.delay.Delay(e.tail)
}
