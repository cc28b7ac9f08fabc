package orbit

import (
	"math"

	"github.com/lixenwraith/skill-orbit/vmath"
)

// Projection is the render geometry of one item at one rotation
type Projection struct {
	Angle      float64 // Effective angle in degrees, [0, 360)
	X, Y       float64 // Offset from orbit center; +Y is screen down
	DepthScale float64 // [MinDepthScale, MinDepthScale+DepthRange]
	StackOrder int     // Higher renders in front
}

// Project computes where an item sits for the given global rotation
// Pure: identical inputs give bit-identical outputs
// The sum is normalized before conversion so huge base angles stay precise
func Project(item Item, rotation float64) Projection {
	angle := vmath.NormalizeDegrees(item.BaseAngle + rotation)
	x, y := vmath.Polar(angle, item.Radius)
	depth := DepthScale(angle)
	return Projection{
		Angle:      angle,
		X:          x,
		Y:          y,
		DepthScale: depth,
		StackOrder: StackOrder(depth),
	}
}

// DepthScale maps an angle to the sine depth cue
// Lower half of the cycle (sin > 0, screen down) is near, upper half recedes
// A 2D stand-in for perspective, not a projection
func DepthScale(angle float64) float64 {
	s := vmath.SinDeg(angle)
	return vmath.Clamp(MinDepthScale+((s+1)/2)*DepthRange, MinDepthScale, MinDepthScale+DepthRange)
}

// StackOrder quantizes a depth scale into a render layer
func StackOrder(depth float64) int {
	return int(math.Floor(depth * StackLevels))
}

// Placement is the per-item render output of a frame
type Placement struct {
	Item
	Projection
	Scale        float64 // DepthScale, or FocusScale when focused
	Focused      bool
	LabelVisible bool
}

// Frame is everything a host needs to paint one render tick
type Frame struct {
	Rotation   float64
	HubAngle   float64
	Dragging   bool
	Focused    string
	Placements []Placement // Back to front
}

// Placement returns the placement for id
func (f Frame) Placement(id string) (Placement, bool) {
	for _, p := range f.Placements {
		if p.ID == id {
			return p, true
		}
	}
	return Placement{}, false
}
