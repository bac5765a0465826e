// Package config loads the optional launch settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	// DefaultPath is read when neither the flag nor the environment names a file.
	DefaultPath = "phantompong.toml"
	// EnvPath overrides DefaultPath.
	EnvPath = "PHANTOMPONG_CONFIG"
)

const (
	minTPS = 30
	maxTPS = 240

	minSpeedMultiplier = 0.5
	maxSpeedMultiplier = 2.0
)

// Config holds everything tunable at launch.
type Config struct {
	Title           string  `toml:"title"`
	TPS             int     `toml:"tps"`
	Fullscreen      bool    `toml:"fullscreen"`
	SpeedMultiplier float64 `toml:"speed_multiplier"`
	Volume          float64 `toml:"volume"`
	LogLevel        string  `toml:"log_level"`
	// Seed fixes the random source. Zero seeds from the clock.
	Seed int64 `toml:"seed"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		Title:           "Phantom Pong",
		TPS:             60,
		SpeedMultiplier: 1.0,
		Volume:          0.5,
		LogLevel:        "info",
	}
}

// Path picks the config file: flagValue if set, then $PHANTOMPONG_CONFIG,
// then DefaultPath.
func Path(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return DefaultPath
}

// Load reads path over the defaults. A missing file is not an error. On a
// decode error the defaults are returned alongside it.
func Load(path string, logger *slog.Logger) (Config, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c := Default()
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug("no config file, using defaults", "path", path)
			return Default(), nil
		}
		return Default(), fmt.Errorf("load config %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		logger.Warn("unknown config key", "path", path, "key", key.String())
	}
	c.Normalize()
	return c, nil
}

// Normalize clamps every field into its allowed range.
func (c *Config) Normalize() {
	d := Default()
	if strings.TrimSpace(c.Title) == "" {
		c.Title = d.Title
	}
	switch {
	case c.TPS <= 0:
		c.TPS = d.TPS
	case c.TPS < minTPS:
		c.TPS = minTPS
	case c.TPS > maxTPS:
		c.TPS = maxTPS
	}
	switch {
	case c.SpeedMultiplier == 0 || math.IsNaN(c.SpeedMultiplier):
		c.SpeedMultiplier = d.SpeedMultiplier
	case c.SpeedMultiplier < minSpeedMultiplier:
		c.SpeedMultiplier = minSpeedMultiplier
	case c.SpeedMultiplier > maxSpeedMultiplier:
		c.SpeedMultiplier = maxSpeedMultiplier
	}
	if math.IsNaN(c.Volume) {
		c.Volume = d.Volume
	}
	c.Volume = min(max(c.Volume, 0), 1)
	if _, ok := parseLevel(c.LogLevel); !ok {
		c.LogLevel = d.LogLevel
	}
}

// SlogLevel maps LogLevel onto a slog level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	l, _ := parseLevel(c.LogLevel)
	return l
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
