package pixel

const (
	// SextantSteps is the number of hue steps between two primaries.
	SextantSteps = 256
	// HueSteps is one full turn of the hue wheel.
	HueSteps = 6 * SextantSteps
)

// HSV converts a hue in [0, HueSteps), a saturation and a value to a triplet.
//
// The conversion is fixed point and the rounding terms are part of the output: each +1 and +x>>8
// corrects the bias of dividing by 256 instead of 255. Hues past HueSteps wrap around.
//
// See http://www.vagrearg.org/content/hsvrgb for the derivation.
func HSV(h uint16, s, v uint8) RGB {
	if v == 0 {
		return Black
	}
	if s == 0 {
		return RGB{v, v, v}
	}

	sextant := uint8((h % HueSteps) / SextantSteps)
	if sextant > 5 {
		sextant = 5
	}

	// Bottom level: v * (1 - s), same as (v*(255-s) + 1 + err) / 256.
	ww := uint16(v) * uint16(255-s)
	ww++
	ww += ww >> 8
	c := uint8(ww >> 8)

	fraction := uint16(h & 0xff)

	var slope uint16
	if sextant&1 == 0 {
		slope = uint16(s) * (256 - fraction)
	} else {
		slope = uint16(s) * fraction
	}
	d := uint32(v) * uint32(0xff00-slope)
	d += d >> 8
	d += uint32(v)
	m := uint8(d >> 16)

	switch sextant {
	case 0:
		return RGB{v, m, c}
	case 1:
		return RGB{m, v, c}
	case 2:
		return RGB{c, v, m}
	case 3:
		return RGB{c, m, v}
	case 4:
		return RGB{m, c, v}
	default:
		return RGB{v, c, m}
	}
}
