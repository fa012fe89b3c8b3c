package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringOptionDefault(t *testing.T) {
	assert.Equal(t, "fallback", StringOption(nil, "missing", "fallback"))
	assert.Equal(t, "set", StringOption(map[string]string{"k": "set"}, "k", "fallback"))
}

func TestParsePositiveIntOption(t *testing.T) {
	n, ok, err := ParsePositiveIntOption(map[string]string{"k": "42"}, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 42, n)

	_, ok, err = ParsePositiveIntOption(nil, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = ParsePositiveIntOption(map[string]string{"k": "-1"}, "k")
	assert.Error(t, err)

	_, _, err = ParsePositiveIntOption(map[string]string{"k": "not-a-number"}, "k")
	assert.Error(t, err)
}

func TestParseBoolOption(t *testing.T) {
	v, ok, err := ParseBoolOption(map[string]string{"k": "yes"}, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, v)

	v, ok, err = ParseBoolOption(map[string]string{"k": "off"}, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, v)

	_, _, err = ParseBoolOption(map[string]string{"k": "maybe"}, "k")
	assert.Error(t, err)
}

func TestParseDurationOption(t *testing.T) {
	d, ok, err := ParseDurationOption(map[string]string{"k": "30s"}, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 30*time.Second, d)

	_, _, err = ParseDurationOption(map[string]string{"k": "thirty seconds"}, "k")
	assert.Error(t, err)
}

func TestLoadPeerConfigDefaults(t *testing.T) {
	cfg, err := LoadPeerConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultPeerConfig(), cfg)
}

func TestLoadPeerConfigOverrides(t *testing.T) {
	cfg, err := LoadPeerConfig(map[string]string{
		"MCP_MAX_MESSAGE_BYTES":  "1024",
		"MCP_HANDSHAKE_TIMEOUT":  "5s",
		"MCP_LOG_LEVEL":          "DEBUG",
	})
	require.NoError(t, err)
	assert.Equal(t, 1024, cfg.MaxMessageBytes)
	assert.Equal(t, 5*time.Second, cfg.HandshakeTimeout)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoadPeerConfigInvalidLogLevel(t *testing.T) {
	_, err := LoadPeerConfig(map[string]string{"MCP_LOG_LEVEL": "not-a-level"})
	assert.Error(t, err)
}
