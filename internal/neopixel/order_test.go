package neopixel

import (
	"testing"

	"github.com/callebjorkell/ws2812b/internal/pixel"
	"github.com/stretchr/testify/assert"
)

func TestParseOrder(t *testing.T) {
	tt := []struct {
		input  string
		output Order
		valid  bool
	}{
		{"RGB", RGB, true},
		{"grb", GRB, true},
		{" Grb ", GRB, true},
		{"BRG", 0, false},
		{"", 0, false},
	}

	for _, tc := range tt {
		t.Run(tc.input, func(t *testing.T) {
			o, err := ParseOrder(tc.input)
			if !tc.valid {
				assert.ErrorIs(t, err, ErrOrder)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.output, o)
			assert.Equal(t, tc.output, mustParse(t, o.String()))
		})
	}
}

func mustParse(t *testing.T, s string) Order {
	t.Helper()
	o, err := ParseOrder(s)
	if err != nil {
		t.Fatal(err)
	}
	return o
}

func TestChannels(t *testing.T) {
	c := pixel.RGB{R: 1, G: 2, B: 3}
	assert.Equal(t, [3]byte{1, 2, 3}, RGB.Channels(c))
	assert.Equal(t, [3]byte{2, 1, 3}, GRB.Channels(c))
	assert.Equal(t, "N/A", Order(7).String())
}
