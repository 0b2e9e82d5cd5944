// Package pixel holds the color triplets a strip displays and the conversions that produce them.
package pixel

import "fmt"

// RGB is one LED worth of intensities, one byte per channel.
type RGB struct {
	R, G, B uint8
}

// Black is the zero value, all channels off.
var Black = RGB{}

// FromUint32 unpacks a 0xRRGGBB value. The top byte is ignored.
func FromUint32(c uint32) RGB {
	return RGB{
		R: uint8(c >> 16),
		G: uint8(c >> 8),
		B: uint8(c),
	}
}

// Uint32 packs the triplet as 0xRRGGBB.
func (c RGB) Uint32() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// RGBA implements color.Color. The triplet is always opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

func (c RGB) String() string {
	return fmt.Sprintf("#%06x", c.Uint32())
}
