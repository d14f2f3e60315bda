package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := New(zerolog.InfoLevel, Options{Console: &buf})
	require.NoError(t, err)
	defer closer.Close()

	logger.Debug().Msg("hidden")
	logger.Info().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewWritesRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "timeapp.log")
	logger, closer, err := New(zerolog.InfoLevel, Options{File: path, MaxSizeMB: 1, MaxBackups: 1})
	require.NoError(t, err)

	logger.Info().Str("component", "test").Msg("to file")
	require.NoError(t, closer.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"message":"to file"`)
	assert.Contains(t, string(raw), `"component":"test"`)
}

func TestNewWithoutSinksDiscards(t *testing.T) {
	logger, closer, err := New(zerolog.DebugLevel, Options{})
	require.NoError(t, err)
	require.NoError(t, closer.Close())
	logger.Info().Msg("nowhere")
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, level)

	level, err = ParseLevel(" WARN ")
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, level)

	_, err = ParseLevel("chatty")
	assert.Error(t, err)
}

func TestDebugfRespectsToggle(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	SetDefault(logger)
	defer SetDefault(zerolog.Nop())
	defer DisableDebug()

	Debugf("before %d", 1)
	assert.Empty(t, buf.String())

	EnableDebug()
	Debugf("after %d", 2)
	assert.Contains(t, buf.String(), "after 2")
}
