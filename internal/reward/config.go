package reward

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"racing-line-reward/internal/track"

	"gopkg.in/yaml.v3"
)

// Defaults for a Config.
const (
	DefaultMaxSight       = 1.0
	DefaultUpsampleFactor = 20
	// DefaultErrorScale is the steering error, in degrees, that already
	// earns the minimum reward.
	DefaultErrorScale = 60.0
	// DefaultMinReward keeps rewards strictly positive; the optimizer is
	// reported to struggle with zero or negative values.
	DefaultMinReward = 0.01
)

// Config holds the deployment-wide reward settings. It is fixed when the
// reward function is built and passed explicitly to every evaluation.
type Config struct {
	Mode           track.Mode `json:"mode" yaml:"mode"`
	MaxSight       float64    `json:"max_sight" yaml:"max_sight"`
	UpsampleFactor int        `json:"upsample_factor" yaml:"upsample_factor"`
	ErrorScale     float64    `json:"error_scale" yaml:"error_scale"`
	MinReward      float64    `json:"min_reward" yaml:"min_reward"`
}

// DefaultConfig returns center mode with a sight of one track width.
func DefaultConfig() Config {
	return Config{
		Mode:           track.ModeCenter,
		MaxSight:       DefaultMaxSight,
		UpsampleFactor: DefaultUpsampleFactor,
		ErrorScale:     DefaultErrorScale,
		MinReward:      DefaultMinReward,
	}
}

// LoadConfig reads a YAML config file. Keys missing from the file keep their
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that every setting is usable.
func (c Config) Validate() error {
	if c.Mode != track.ModeCenter && c.Mode != track.ModeShortcut {
		return invalidWrap("mode", fmt.Errorf("%w: %d", track.ErrUnknownMode, int(c.Mode)))
	}
	if !positive(c.MaxSight) {
		return invalid("max_sight", "must be positive, got %v", c.MaxSight)
	}
	if c.UpsampleFactor < 1 {
		return invalidWrap("upsample_factor", track.ErrInvalidFactor)
	}
	if !positive(c.ErrorScale) {
		return invalid("error_scale", "must be positive, got %v", c.ErrorScale)
	}
	if math.IsNaN(c.MinReward) || c.MinReward < 0 || c.MinReward > 1 {
		return invalid("min_reward", "must be within [0, 1], got %v", c.MinReward)
	}
	return nil
}

// Sight returns the look-ahead radius as a multiple of the track width.
// The racing line is followed with half the sight.
func (c Config) Sight(mode track.Mode) float64 {
	if mode == track.ModeShortcut {
		return c.MaxSight * 0.5
	}
	return c.MaxSight
}

func positive(f float64) bool {
	return f > 0 && !math.IsInf(f, 1)
}
