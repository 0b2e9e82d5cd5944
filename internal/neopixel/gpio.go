package neopixel

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// GPIOPin drives the strip through a periph GPIO output.
type GPIOPin struct {
	p gpio.PinOut
}

func NewGPIOPin(p gpio.PinOut) *GPIOPin {
	return &GPIOPin{p: p}
}

// OpenGPIO initializes the periph host drivers and looks up the pin by name, e.g. "GPIO18".
func OpenGPIO(name string) (*GPIOPin, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("neopixel: unable to initialize periph: %w", err)
	}
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("neopixel: no GPIO pin named %q", name)
	}
	log.Infof("Using %s for the strip data line", p)
	return NewGPIOPin(p), nil
}

// Configure makes the pin an output and drives it low.
func (g *GPIOPin) Configure() error {
	if err := g.p.Out(gpio.Low); err != nil {
		return fmt.Errorf("neopixel: unable to configure %s: %w", g.p, err)
	}
	return nil
}

// High and Low drop write errors.
func (g *GPIOPin) High() {
	_ = g.p.Out(gpio.High)
}

func (g *GPIOPin) Low() {
	_ = g.p.Out(gpio.Low)
}

func (g *GPIOPin) String() string {
	return g.p.String()
}
