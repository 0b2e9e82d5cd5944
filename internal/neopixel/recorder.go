package neopixel

import (
	"time"

	"periph.io/x/conn/v3/gpio"
)

// Edge is a level change on a simulated line.
type Edge struct {
	At    time.Duration
	Level gpio.Level
}

// Pulse is one high span and the low span that follows it.
type Pulse struct {
	High time.Duration
	Low  time.Duration
}

// Recorder stands in for the pin, the clock and the interrupt controller at once. Delays advance a virtual
// clock instantly and every level change is kept with its timestamp, so a recorded frame can be measured
// and decoded back into bytes.
type Recorder struct {
	now        time.Duration
	level      gpio.Level
	masked     int
	sections   int
	unmasked   int
	configured bool
	edges      []Edge
}

func NewRecorder() *Recorder {
	return &Recorder{level: gpio.Low}
}

// Simulate builds a strip whose pin, delays and critical sections all go through a new Recorder.
func Simulate(opts *Opts) (*Strip, *Recorder, error) {
	o := DefaultOpts
	if opts != nil {
		o = *opts
	}
	r := NewRecorder()
	o.Delay = r
	o.Interrupts = r
	s, err := NewStrip(r, &o)
	if err != nil {
		return nil, nil, err
	}
	return s, r, nil
}

func (r *Recorder) Configure() error {
	r.configured = true
	r.set(gpio.Low)
	return nil
}

func (r *Recorder) High() {
	r.set(gpio.High)
}

func (r *Recorder) Low() {
	r.set(gpio.Low)
}

func (r *Recorder) set(l gpio.Level) {
	if l == r.level {
		return
	}
	r.level = l
	if r.masked == 0 {
		r.unmasked++
	}
	r.edges = append(r.edges, Edge{At: r.now, Level: l})
}

func (r *Recorder) Delay(d time.Duration) {
	r.now += d
}

func (r *Recorder) Disable() Unlocker {
	r.masked++
	r.sections++
	return func() {
		r.masked--
	}
}

// Clear forgets the recorded edges and counters. The line level and the clock keep running.
func (r *Recorder) Clear() {
	r.edges = nil
	r.sections = 0
	r.unmasked = 0
}

func (r *Recorder) Configured() bool {
	return r.configured
}

func (r *Recorder) Level() gpio.Level {
	return r.level
}

// Masked reports whether a critical section is currently held.
func (r *Recorder) Masked() bool {
	return r.masked > 0
}

// Sections is the number of critical sections entered since the last Clear.
func (r *Recorder) Sections() int {
	return r.sections
}

// Unmasked counts edges emitted outside any critical section since the last Clear.
func (r *Recorder) Unmasked() int {
	return r.unmasked
}

func (r *Recorder) Now() time.Duration {
	return r.now
}

func (r *Recorder) Edges() []Edge {
	return r.edges
}

// Pulses pairs every rising edge with its high and low spans. The low span of the last pulse runs up to
// the current time.
func (r *Recorder) Pulses() []Pulse {
	var out []Pulse
	for i, e := range r.edges {
		if e.Level != gpio.High {
			continue
		}
		fall, next := r.now, r.now
		if i+1 < len(r.edges) {
			fall = r.edges[i+1].At
		}
		if i+2 < len(r.edges) {
			next = r.edges[i+2].At
		}
		out = append(out, Pulse{High: fall - e.At, Low: next - fall})
	}
	return out
}

// Decode reads pulses as bits, MSB first, using threshold to tell a long high from a short one. A trailing
// partial byte is dropped.
func (r *Recorder) Decode(threshold time.Duration) []byte {
	pulses := r.Pulses()
	out := make([]byte, 0, len(pulses)/8)
	for i := 0; i+8 <= len(pulses); i += 8 {
		var b byte
		for _, p := range pulses[i : i+8] {
			b <<= 1
			if p.High >= threshold {
				b |= 1
			}
		}
		out = append(out, b)
	}
	return out
}
