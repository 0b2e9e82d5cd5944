package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/callebjorkell/ws2812b/internal/neopixel"
	"github.com/callebjorkell/ws2812b/internal/pixel"
	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app        = kingpin.New("ws2812b", "Drive a WS2812B LED strip from a single GPIO pin")
	debug      = app.Flag("debug", "Turn on debug logging.").Bool()
	configPath = app.Flag("config", "YAML file describing the strip.").String()
	pinName    = app.Flag("pin", "GPIO pin connected to the strip data line.").String()
	pixels     = app.Flag("pixels", "Number of pixels on the strip.").Int()
	order      = app.Flag("order", "Channel order of the LED chips, RGB or GRB.").String()
	clock      = app.Flag("clock", "Core clock the pulse timing is calibrated for, e.g. 16MHz.").String()
	sim        = app.Flag("sim", "Decode the frame in memory instead of driving a pin.").Bool()

	fill      = app.Command("fill", "Set every pixel to one color.")
	fillColor = fill.Arg("color", "Color as 0xRRGGBB or #RRGGBB.").Required().String()

	hsv    = app.Command("hsv", "Set pixels from hue, saturation and value.")
	hsvHue = hsv.Arg("hue", "Hue in [0, 1535].").Required().Uint16()
	hsvSat = hsv.Arg("saturation", "Saturation in [0, 255].").Required().Uint8()
	hsvVal = hsv.Arg("value", "Value in [0, 255].").Required().Uint8()
	hsvPos = hsv.Flag("pos", "Only set this pixel.").Default("-1").Int()

	wheel    = app.Command("wheel", "Spread one turn of the hue wheel over the strip.")
	wheelSat = wheel.Flag("saturation", "Saturation in [0, 255].").Default("255").Uint8()
	wheelVal = wheel.Flag("value", "Value in [0, 255].").Default("64").Uint8()

	off     = app.Command("off", "Turn every pixel off.")
	version = app.Command("version", "Show current version.")
)

// frameFormatter tints messages by level. Entries carrying a "color" field get a swatch of that color in
// front, so a simulated frame reads like the strip would look.
type frameFormatter struct{}

func (frameFormatter) Format(entry *log.Entry) ([]byte, error) {
	var b strings.Builder
	if c, ok := entry.Data["color"].(pixel.RGB); ok {
		fmt.Fprintf(&b, "\x1b[48;2;%d;%d;%dm  \x1b[0m ", c.R, c.G, c.B)
	}
	fmt.Fprintf(&b, "\x1b[%dm%s\x1b[0m\n", levelColor(entry.Level), entry.Message)
	return []byte(b.String()), nil
}

func levelColor(l log.Level) int {
	switch l {
	case log.DebugLevel, log.TraceLevel:
		return 90 // dark grey
	case log.WarnLevel:
		return 33 // yellow
	case log.ErrorLevel, log.FatalLevel, log.PanicLevel:
		return 91 // bright red
	}
	return 39
}

func main() {
	cmd, err := app.Parse(os.Args[1:])
	if err != nil {
		fmt.Printf("%v: Try --help\n", err.Error())
		os.Exit(1)
	}

	log.SetFormatter(frameFormatter{})
	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	if cmd == version.FullCommand() {
		fmt.Println(versionString())
		return
	}

	conf, err := readConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	conf.override(*pinName, *pixels, *order, *clock)

	opts, err := conf.Opts()
	if err != nil {
		log.Fatal(err)
	}

	strip, rec, err := openStrip(conf.Pin, opts, *sim)
	if err != nil {
		log.Fatal(err)
	}
	if err := strip.Setup(); err != nil {
		log.Fatal(err)
	}

	switch cmd {
	case fill.FullCommand():
		c, err := parseColor(*fillColor)
		if err != nil {
			log.Fatal(err)
		}
		strip.Fill(c)
	case hsv.FullCommand():
		paintHSV(strip, *hsvPos, *hsvHue, *hsvSat, *hsvVal)
	case wheel.FullCommand():
		paintWheel(strip, *wheelSat, *wheelVal)
	case off.FullCommand():
		strip.Fill(pixel.Black)
	default:
		kingpin.FatalUsage("Unrecognized command")
	}

	strip.Transmit()

	if rec != nil {
		printFrame(rec, strip)
	}
}

func openStrip(pin string, opts *neopixel.Opts, simulate bool) (*neopixel.Strip, *neopixel.Recorder, error) {
	if simulate {
		log.Infof("Simulating %d %s pixels at %s", opts.NumPixels, opts.Order, opts.Clock)
		return neopixel.Simulate(opts)
	}

	p, err := neopixel.OpenGPIO(pin)
	if err != nil {
		return nil, nil, err
	}
	s, err := neopixel.NewStrip(p, opts)
	return s, nil, err
}

func parseColor(s string) (pixel.RGB, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(s), "#"), "0x")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil || len(s) > 6 {
		return pixel.Black, fmt.Errorf("invalid color %q, expected RRGGBB", s)
	}
	return pixel.FromUint32(uint32(v)), nil
}

func paintHSV(s *neopixel.Strip, pos int, h uint16, sat, v uint8) {
	if pos >= 0 {
		s.SetHSV(pos, h, sat, v)
		return
	}
	for i := 0; i < s.Len(); i++ {
		s.SetHSV(i, h, sat, v)
	}
}

func paintWheel(s *neopixel.Strip, sat, v uint8) {
	n := s.Len()
	for i := 0; i < n; i++ {
		s.SetHSV(i, uint16(i*pixel.HueSteps/n), sat, v)
	}
}

func printFrame(rec *neopixel.Recorder, s *neopixel.Strip) {
	frame := rec.Decode(s.Timing().Threshold())
	for i := 0; i+3 <= len(frame); i += 3 {
		c := s.At(i / 3)
		log.WithField("color", c).Infof("pixel %3d: %s wire % x", i/3, c, frame[i:i+3])
	}
	log.Debugf("frame took %s", rec.Now())
}
