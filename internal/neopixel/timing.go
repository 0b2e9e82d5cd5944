package neopixel

import (
	"fmt"
	"math"
	"math/bits"
	"time"

	"periph.io/x/conn/v3/physic"
)

// Timing describes the pulse shape of one bit and the latch interval before a frame.
//
// A bit always lasts Period. A zero stays high for T0H, a one for T1H, and the line is low for the rest.
type Timing struct {
	T0H    time.Duration
	T1H    time.Duration
	Period time.Duration
	// Reset is the minimum low hold that makes the chain latch and start a new frame.
	Reset time.Duration
	// Tolerance is how far each high and low span may drift from its target.
	Tolerance time.Duration
}

// WS2812B holds the datasheet targets.
var WS2812B = Timing{
	T0H:       400 * time.Nanosecond,
	T1H:       800 * time.Nanosecond,
	Period:    1250 * time.Nanosecond,
	Reset:     50 * time.Microsecond,
	Tolerance: 150 * time.Nanosecond,
}

// Threshold is the high duration separating a zero from a one.
func (t Timing) Threshold() time.Duration {
	return (t.T0H + t.T1H) / 2
}

// Calibrate snaps every span to a whole number of cycles of clock, the resolution the pin can actually be
// toggled at. It fails when the clock is too coarse for the resulting pulses to stay within Tolerance.
func (t Timing) Calibrate(clock physic.Frequency) (Timing, error) {
	hz := int64(clock / physic.Hertz)
	if hz <= 0 {
		return Timing{}, ErrClock
	}
	if t.T0H <= 0 || t.T1H <= t.T0H || t.Period <= t.T1H || t.Reset < 0 {
		return Timing{}, ErrTiming
	}

	q := Timing{Tolerance: t.Tolerance}
	var err error
	if q.T0H, err = quantize(t.T0H, hz, false); err != nil {
		return Timing{}, err
	}
	if q.T1H, err = quantize(t.T1H, hz, false); err != nil {
		return Timing{}, err
	}
	if q.Period, err = quantize(t.Period, hz, false); err != nil {
		return Timing{}, err
	}
	// Reset is a lower bound, so it rounds up.
	if q.Reset, err = quantize(t.Reset, hz, true); err != nil {
		return Timing{}, err
	}
	if q.T0H <= 0 || q.T1H <= q.T0H || q.Period <= q.T1H {
		return Timing{}, fmt.Errorf("%w: %s", ErrTooSlow, clock)
	}

	spans := []struct {
		name      string
		got, want time.Duration
	}{
		{"T0H", q.T0H, t.T0H},
		{"T1H", q.T1H, t.T1H},
		{"T0L", q.Period - q.T0H, t.Period - t.T0H},
		{"T1L", q.Period - q.T1H, t.Period - t.T1H},
	}
	for _, s := range spans {
		diff := s.got - s.want
		if diff < 0 {
			diff = -diff
		}
		if diff > t.Tolerance {
			return Timing{}, fmt.Errorf("neopixel: %s is %s at %s, outside %s ± %s", s.name, s.got, clock, s.want, t.Tolerance)
		}
	}
	return q, nil
}

// quantize rounds d to a whole number of cycles at hz. The products are taken in 128 bits, so any span that
// still fits a time.Duration after rounding is accepted.
func quantize(d time.Duration, hz int64, up bool) (time.Duration, error) {
	round := uint64(5e8)
	if up {
		round = 1e9 - 1
	}
	cycles, ok := mulDiv(uint64(d), uint64(hz), 1e9, round)
	if !ok {
		return 0, fmt.Errorf("%w: %s does not fit at %d Hz", ErrTiming, d, hz)
	}
	ns, ok := mulDiv(cycles, 1e9, uint64(hz), uint64(hz/2))
	if !ok {
		return 0, fmt.Errorf("%w: %s does not fit at %d Hz", ErrTiming, d, hz)
	}
	return time.Duration(ns), nil
}

// mulDiv is (a*b + add) / c, false when the quotient overflows int64.
func mulDiv(a, b, c, add uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	lo, carry := bits.Add64(lo, add, 0)
	hi += carry
	if hi >= c {
		return 0, false
	}
	q, _ := bits.Div64(hi, lo, c)
	return q, q <= math.MaxInt64
}
