package util

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewLoggerLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, NewLogger("debug").GetLevel())
	assert.Equal(t, zerolog.WarnLevel, NewLogger(" WARN ").GetLevel())
	assert.Equal(t, zerolog.InfoLevel, NewLogger("invalid").GetLevel())
	assert.Equal(t, zerolog.InfoLevel, NewLogger("").GetLevel())
}

func TestNewLoggerTo(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerTo(&buf, "info")
	log.Debug().Msg("hidden")
	log.Info().Int("points", 3).Msg("classified")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"points":3`)
	assert.Contains(t, out, `"message":"classified"`)
}
