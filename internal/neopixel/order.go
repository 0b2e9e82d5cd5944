package neopixel

import (
	"fmt"
	"strings"

	"github.com/callebjorkell/ws2812b/internal/pixel"
)

// Order is the sequence in which a chip expects the three channel bytes. It is a property of the LED
// variant and applies to every pixel of a strip.
type Order uint8

const (
	RGB Order = iota
	GRB
)

func (o Order) String() string {
	switch o {
	case RGB:
		return "RGB"
	case GRB:
		return "GRB"
	}
	return "N/A"
}

func (o Order) valid() bool {
	return o == RGB || o == GRB
}

// ParseOrder maps "RGB" or "GRB", in any case, to an Order.
func ParseOrder(s string) (Order, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "RGB":
		return RGB, nil
	case "GRB":
		return GRB, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrOrder, s)
}

// Channels returns the bytes of c in wire order. Blue is always last.
func (o Order) Channels(c pixel.RGB) [3]byte {
	if o == GRB {
		return [3]byte{c.G, c.R, c.B}
	}
	return [3]byte{c.R, c.G, c.B}
}
