package main

import (
	"testing"

	"github.com/callebjorkell/ws2812b/internal/pixel"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameFormatter(t *testing.T) {
	entry := log.WithField("color", pixel.RGB{R: 255, B: 16})
	entry.Level = log.InfoLevel
	entry.Message = "pixel   0"

	out, err := frameFormatter{}.Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "\x1b[48;2;255;0;16m  \x1b[0m \x1b[39mpixel   0\x1b[0m\n", string(out))

	entry = log.NewEntry(log.StandardLogger())
	entry.Level = log.WarnLevel
	entry.Message = "careful"
	out, err = frameFormatter{}.Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "\x1b[33mcareful\x1b[0m\n", string(out))
}

func TestVersionString(t *testing.T) {
	assert.Equal(t, "ws2812b dev", versionString())

	buildVersion, buildTime = "v1.2.0", "2022-11-03"
	defer func() { buildVersion, buildTime = "", "" }()
	assert.Equal(t, "ws2812b v1.2.0 (built 2022-11-03)", versionString())
}
