package orbit

import (
	"fmt"
	"math"
)

// Item is one orbiting entry, immutable once handed to an Engine
type Item struct {
	ID        string  `yaml:"id"`
	Label     string  `yaml:"label"`
	BaseAngle float64 `yaml:"angle"`  // Degrees, any real value
	Radius    float64 `yaml:"radius"` // Distance from center in layout units
	Size      float64 `yaml:"size"`   // Visual diameter in layout units
	Color     string  `yaml:"color"`  // Opaque to the engine
}

// DisplayName returns Label, falling back to ID
func (it Item) DisplayName() string {
	if it.Label != "" {
		return it.Label
	}
	return it.ID
}

// Validate checks the per-item invariants
func (it Item) Validate() error {
	switch {
	case it.ID == "":
		return fmt.Errorf("%w: empty id", ErrInvalidItem)
	case !finite(it.BaseAngle):
		return fmt.Errorf("%w: %q angle %v", ErrInvalidItem, it.ID, it.BaseAngle)
	case !finite(it.Radius) || it.Radius <= 0:
		return fmt.Errorf("%w: %q radius %v", ErrInvalidItem, it.ID, it.Radius)
	case !finite(it.Size) || it.Size <= 0:
		return fmt.Errorf("%w: %q size %v", ErrInvalidItem, it.ID, it.Size)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
