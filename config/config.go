// Package config loads peer/server tuning knobs from a loosely-typed
// string map, generalizing the teacher's session_options.go helpers
// (StringOption / ParsePositiveIntOption / ParseBoolOption) from
// per-session agent options to MCP peer configuration: max message size,
// handshake timeout, and log level.
package config

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// StringOption returns the value for key in opts, or defaultVal if the
// key is absent or empty.
func StringOption(opts map[string]string, key, defaultVal string) string {
	if v := opts[key]; v != "" {
		return v
	}
	return defaultVal
}

// ParsePositiveIntOption returns the integer value for key in opts. If
// the key is absent or empty, it returns (0, false, nil). If the value is
// present but not a valid positive integer, or contains null bytes, it
// returns an error.
func ParsePositiveIntOption(opts map[string]string, key string) (int, bool, error) {
	v := opts[key]
	if v == "" {
		return 0, false, nil
	}
	if strings.Contains(v, "\x00") {
		return 0, false, fmt.Errorf("option %s: value contains null bytes", key)
	}
	v = strings.TrimSpace(v)
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false, fmt.Errorf("option %s: %q is not a valid integer", key, v)
	}
	if n <= 0 {
		return 0, false, fmt.Errorf("option %s: %q must be a positive integer", key, v)
	}
	return n, true, nil
}

// ParseBoolOption returns the boolean value for key in opts. If the key
// is absent or empty, it returns (false, false, nil). Truthy values:
// "true", "on", "1", "yes" (case-insensitive). Falsy values: "false",
// "off", "0", "no" (case-insensitive). Unrecognized values return an
// error.
func ParseBoolOption(opts map[string]string, key string) (bool, bool, error) {
	v := opts[key]
	if v == "" {
		return false, false, nil
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "on", "1", "yes":
		return true, true, nil
	case "false", "off", "0", "no":
		return false, true, nil
	default:
		return false, false, fmt.Errorf("option %s: %q is not a recognized boolean value", key, v)
	}
}

// ParseDurationOption returns the duration value for key in opts, parsed
// with time.ParseDuration (e.g. "30s", "2m"). If the key is absent or
// empty, it returns (0, false, nil).
func ParseDurationOption(opts map[string]string, key string) (time.Duration, bool, error) {
	v := opts[key]
	if v == "" {
		return 0, false, nil
	}
	d, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return 0, false, fmt.Errorf("option %s: %q is not a valid duration", key, v)
	}
	return d, true, nil
}

// PeerConfig holds the tuning knobs a peer or server reads at startup.
type PeerConfig struct {
	// MaxMessageBytes bounds a single JSON-RPC frame; 0 means no limit is
	// enforced beyond the transport's own framing.
	MaxMessageBytes int
	// HandshakeTimeout bounds how long cmd/mcp-stdio-server waits for
	// Peer.Start (the transport connect) before exiting with an error; it
	// does not time the initialize round trip.
	HandshakeTimeout time.Duration
	// LogLevel controls the verbosity passed to a log/slog-backed Logger.
	LogLevel slog.Level
}

// DefaultPeerConfig returns the conservative defaults used when opts
// supplies nothing.
func DefaultPeerConfig() PeerConfig {
	return PeerConfig{
		MaxMessageBytes:  0,
		HandshakeTimeout: 30 * time.Second,
		LogLevel:         slog.LevelInfo,
	}
}

// LoadPeerConfig parses opts (an environment-style string map, e.g. keys
// like "MCP_MAX_MESSAGE_BYTES", "MCP_HANDSHAKE_TIMEOUT", "MCP_LOG_LEVEL")
// into a PeerConfig, starting from DefaultPeerConfig and overriding only
// the keys present in opts.
func LoadPeerConfig(opts map[string]string) (PeerConfig, error) {
	cfg := DefaultPeerConfig()

	if n, ok, err := ParsePositiveIntOption(opts, "MCP_MAX_MESSAGE_BYTES"); err != nil {
		return cfg, err
	} else if ok {
		cfg.MaxMessageBytes = n
	}

	if d, ok, err := ParseDurationOption(opts, "MCP_HANDSHAKE_TIMEOUT"); err != nil {
		return cfg, err
	} else if ok {
		cfg.HandshakeTimeout = d
	}

	if lvl := StringOption(opts, "MCP_LOG_LEVEL", ""); lvl != "" {
		var l slog.Level
		if err := l.UnmarshalText([]byte(lvl)); err != nil {
			return cfg, fmt.Errorf("option MCP_LOG_LEVEL: %w", err)
		}
		cfg.LogLevel = l
	}

	return cfg, nil
}
