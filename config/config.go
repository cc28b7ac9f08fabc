// Package config resolves host and engine settings from defaults, an optional
// YAML file and SKILL_ORBIT_* environment variables, in that order
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/skill-orbit/orbit"
)

// EnvPrefix namespaces every environment override
const EnvPrefix = "SKILL_ORBIT_"

// ErrInvalid marks a configuration that loaded but failed validation
var ErrInvalid = errors.New("config: invalid")

// Config is the complete runtime configuration
type Config struct {
	// Engine tuning
	TickInterval time.Duration `yaml:"tick_interval" env:"TICK_INTERVAL"`
	Step         float64       `yaml:"step" env:"STEP"`
	Sensitivity  float64       `yaml:"sensitivity" env:"SENSITIVITY"`
	FocusScale   float64       `yaml:"focus_scale" env:"FOCUS_SCALE"`
	HubRatio     float64       `yaml:"hub_ratio" env:"HUB_RATIO"`

	// Host
	FrameInterval time.Duration `yaml:"frame_interval" env:"FRAME_INTERVAL"`
	CatalogPath   string        `yaml:"catalog" env:"CATALOG"`
	Mute          bool          `yaml:"mute" env:"MUTE"`
	Volume        float64       `yaml:"volume" env:"VOLUME"` // 0..1
}

// Default returns the reference configuration
func Default() Config {
	oc := orbit.DefaultConfig()
	return Config{
		TickInterval:  oc.TickInterval,
		Step:          oc.Step,
		Sensitivity:   oc.Sensitivity,
		FocusScale:    oc.FocusScale,
		HubRatio:      oc.HubRatio,
		FrameInterval: 16 * time.Millisecond,
		Volume:        0.3,
	}
}

// Load layers the YAML file at path (skipped when empty) and the environment over defaults
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Orbit extracts the engine tuning
func (c Config) Orbit() orbit.Config {
	return orbit.Config{
		TickInterval: c.TickInterval,
		Step:         c.Step,
		Sensitivity:  c.Sensitivity,
		FocusScale:   c.FocusScale,
		HubRatio:     c.HubRatio,
	}
}

// Validate checks host settings and the embedded engine tuning
func (c Config) Validate() error {
	if err := c.Orbit().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.FrameInterval <= 0 {
		return fmt.Errorf("%w: frame interval %v", ErrInvalid, c.FrameInterval)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("%w: volume %v outside [0,1]", ErrInvalid, c.Volume)
	}
	return nil
}
