package neopixel

import (
	"time"

	"periph.io/x/host/v3/cpu"
)

// Pin is the single output line feeding the strip. Both calls sit inside the bit loop and must return as
// fast as the platform allows.
type Pin interface {
	High()
	Low()
}

// Configurer is implemented by pins that need a one-time direction setup before use.
type Configurer interface {
	Configure() error
}

// Delayer blocks the caller for d without yielding the timing to anything else.
type Delayer interface {
	Delay(d time.Duration)
}

// spinLimit is the longest span worth burning CPU on; longer waits are lower bounds and may sleep.
const spinLimit = 10 * time.Microsecond

// Spin busy-waits bit spans and sleeps through the reset interval.
type Spin struct{}

func (Spin) Delay(d time.Duration) {
	if d <= 0 {
		return
	}
	if d > spinLimit {
		time.Sleep(d)
		return
	}
	cpu.Nanospin(d)
}
