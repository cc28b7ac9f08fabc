package orbit

import (
	"fmt"
	"time"
)

// Depth model constants
const (
	MinDepthScale = 0.5 // Scale at the far point of the cycle
	DepthRange    = 0.5 // MinDepthScale + DepthRange is the near point
	StackLevels   = 10  // Distinct stack orders across the depth range
)

// Config tunes the rotation driver, pointer tracker and focus overlay
type Config struct {
	TickInterval time.Duration // Automatic rotation cadence
	Step         float64       // Degrees added per tick
	Sensitivity  float64       // Degrees per pointer unit of drag
	FocusScale   float64       // Scale of the focused item
	HubRatio     float64       // Hub spin relative to global rotation
}

// DefaultConfig returns the reference tuning: 0.3° every 30ms, drag gain 0.3, focus 1.4x
func DefaultConfig() Config {
	return Config{
		TickInterval: 30 * time.Millisecond,
		Step:         0.3,
		Sensitivity:  0.3,
		FocusScale:   1.4,
		HubRatio:     0.5,
	}
}

// Validate rejects tunings the engine cannot run with
func (c Config) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tick interval %v", ErrInvalidConfig, c.TickInterval)
	}
	if !finite(c.Step) || !finite(c.Sensitivity) || !finite(c.HubRatio) {
		return fmt.Errorf("%w: step/sensitivity/hub ratio must be finite", ErrInvalidConfig)
	}
	if !finite(c.FocusScale) || c.FocusScale <= 0 {
		return fmt.Errorf("%w: focus scale %v", ErrInvalidConfig, c.FocusScale)
	}
	return nil
}
