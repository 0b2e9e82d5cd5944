package main

import (
	"testing"
	"time"

	"github.com/callebjorkell/ws2812b/internal/neopixel"
	"github.com/callebjorkell/ws2812b/internal/pixel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/physic"
)

func TestConfig(t *testing.T) {
	c, err := parseConfig([]byte(`
pin: GPIO12
pixels: 30
order: grb
clock: 8MHz
timing:
  t1h: 750ns
  reset: 300us
`))
	require.NoError(t, err)
	assert.Equal(t, "GPIO12", c.Pin)
	assert.Equal(t, 30, c.Pixels)

	o, err := c.Opts()
	require.NoError(t, err)
	assert.Equal(t, 30, o.NumPixels)
	assert.Equal(t, neopixel.GRB, o.Order)
	assert.Equal(t, 8*physic.MegaHertz, o.Clock)
	assert.Equal(t, 750*time.Nanosecond, o.Timing.T1H)
	assert.Equal(t, 300*time.Microsecond, o.Timing.Reset)
	assert.Equal(t, neopixel.WS2812B.T0H, o.Timing.T0H)
}

func TestConfigDefaults(t *testing.T) {
	c, err := parseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, defaultPin, c.Pin)

	o, err := c.Opts()
	require.NoError(t, err)
	assert.Equal(t, neopixel.DefaultOpts.NumPixels, o.NumPixels)
	assert.Equal(t, neopixel.DefaultOpts.Order, o.Order)
	assert.Equal(t, neopixel.DefaultOpts.Clock, o.Clock)
	assert.Equal(t, neopixel.WS2812B, o.Timing)
}

func TestConfigErrors(t *testing.T) {
	_, err := parseConfig([]byte("pixels: -3"))
	assert.Error(t, err)

	_, err = parseConfig([]byte("pixels: [1"))
	assert.Error(t, err)

	c, err := parseConfig([]byte("order: BGR"))
	require.NoError(t, err)
	_, err = c.Opts()
	assert.ErrorIs(t, err, neopixel.ErrOrder)

	c, err = parseConfig([]byte("clock: fast"))
	require.NoError(t, err)
	_, err = c.Opts()
	assert.Error(t, err)
}

func TestConfigOverride(t *testing.T) {
	c, err := parseConfig([]byte("pin: GPIO12\npixels: 30"))
	require.NoError(t, err)

	c.override("", 0, "GRB", "")
	assert.Equal(t, "GPIO12", c.Pin)
	assert.Equal(t, 30, c.Pixels)
	assert.Equal(t, "GRB", c.Order)

	c.override("GPIO21", 5, "", "20MHz")
	assert.Equal(t, "GPIO21", c.Pin)
	assert.Equal(t, 5, c.Pixels)
	assert.Equal(t, "20MHz", c.Clock)
}

func TestParseColor(t *testing.T) {
	tt := []struct {
		input  string
		output pixel.RGB
		valid  bool
	}{
		{"0xff0000", pixel.RGB{R: 0xff}, true},
		{"#00FF00", pixel.RGB{G: 0xff}, true},
		{"0000ff", pixel.RGB{B: 0xff}, true},
		{"0x1ff0000", pixel.Black, false},
		{"red", pixel.Black, false},
		{"", pixel.Black, false},
	}

	for _, tc := range tt {
		t.Run(tc.input, func(t *testing.T) {
			c, err := parseColor(tc.input)
			if !tc.valid {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.output, c)
		})
	}
}

func TestPaint(t *testing.T) {
	opts := neopixel.DefaultOpts
	opts.NumPixels = 6
	s, r, err := neopixel.Simulate(&opts)
	require.NoError(t, err)

	paintWheel(s, 255, 255)
	assert.Equal(t, pixel.RGB{R: 255}, s.At(0))
	assert.Equal(t, pixel.RGB{R: 255, G: 255}, s.At(1))
	assert.Equal(t, pixel.RGB{B: 255}, s.At(4))

	paintHSV(s, 2, 0, 0, 10)
	assert.Equal(t, pixel.RGB{R: 10, G: 10, B: 10}, s.At(2))
	assert.Equal(t, pixel.RGB{B: 255}, s.At(4))

	paintHSV(s, -1, 0, 255, 255)
	for i := 0; i < s.Len(); i++ {
		assert.Equal(t, pixel.RGB{R: 255}, s.At(i))
	}

	s.Transmit()
	assert.Len(t, r.Decode(s.Timing().Threshold()), 6*3)
}
