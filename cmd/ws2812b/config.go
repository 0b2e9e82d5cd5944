package main

import (
	"fmt"
	"os"
	"time"

	"github.com/callebjorkell/ws2812b/internal/neopixel"
	"gopkg.in/yaml.v3"
	"periph.io/x/conn/v3/physic"
)

const defaultPin = "GPIO18"

// Config describes one strip. Every field is optional and flags take precedence.
type Config struct {
	Pin    string `yaml:"pin"`
	Pixels int    `yaml:"pixels"`
	Order  string `yaml:"order"`
	Clock  string `yaml:"clock"`
	Timing struct {
		T0H       time.Duration `yaml:"t0h"`
		T1H       time.Duration `yaml:"t1h"`
		Period    time.Duration `yaml:"period"`
		Reset     time.Duration `yaml:"reset"`
		Tolerance time.Duration `yaml:"tolerance"`
	} `yaml:"timing"`
}

func readConfig(path string) (*Config, error) {
	if path == "" {
		return parseConfig(nil)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseConfig(content)
}

func parseConfig(content []byte) (*Config, error) {
	c := &Config{}
	err := yaml.Unmarshal(content, c)
	if err != nil {
		return nil, err
	}

	if c.Pixels < 0 {
		return nil, fmt.Errorf("pixel count cannot be negative, got %d", c.Pixels)
	}
	if c.Pin == "" {
		c.Pin = defaultPin
	}
	if c.Pixels == 0 {
		c.Pixels = neopixel.DefaultOpts.NumPixels
	}
	if c.Order == "" {
		c.Order = neopixel.DefaultOpts.Order.String()
	}
	if c.Clock == "" {
		c.Clock = neopixel.DefaultOpts.Clock.String()
	}

	return c, nil
}

// override replaces fields with the non-empty flag values.
func (c *Config) override(pin string, pixels int, order, clock string) {
	if pin != "" {
		c.Pin = pin
	}
	if pixels > 0 {
		c.Pixels = pixels
	}
	if order != "" {
		c.Order = order
	}
	if clock != "" {
		c.Clock = clock
	}
}

// Opts converts the config into strip options, keeping the WS2812B targets for any timing left unset.
func (c *Config) Opts() (*neopixel.Opts, error) {
	o := neopixel.DefaultOpts
	o.NumPixels = c.Pixels

	order, err := neopixel.ParseOrder(c.Order)
	if err != nil {
		return nil, err
	}
	o.Order = order

	var clock physic.Frequency
	if err := clock.Set(c.Clock); err != nil {
		return nil, fmt.Errorf("invalid clock %q: %w", c.Clock, err)
	}
	o.Clock = clock

	t := c.Timing
	if t.T0H > 0 {
		o.Timing.T0H = t.T0H
	}
	if t.T1H > 0 {
		o.Timing.T1H = t.T1H
	}
	if t.Period > 0 {
		o.Timing.Period = t.Period
	}
	if t.Reset > 0 {
		o.Timing.Reset = t.Reset
	}
	if t.Tolerance > 0 {
		o.Timing.Tolerance = t.Tolerance
	}
	return &o, nil
}
