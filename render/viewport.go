package render

import (
	"math"

	"github.com/lixenwraith/skill-orbit/orbit"
	"github.com/lixenwraith/skill-orbit/vmath"
)

// Screen rows reserved outside the orbit area
const (
	HeaderRows = 1
	PanelRows  = 5
	StatusRows = 1
)

// Viewport maps orbit layout units onto terminal cells
// Horizontal scale is chosen to fit; vertical scale follows the cell aspect
type Viewport struct {
	Width, Height    int // Full screen in cells
	AreaTop, AreaBot int // Orbit area rows, inclusive
	CenterX, CenterY int
	ColsPerUnit      float64
}

// Extent returns the farthest reach of any item from the center in layout units,
// including the item's radius at the given scale
func Extent(items []orbit.Item, scale float64) float64 {
	ext := 0.0
	for _, it := range items {
		ext = max(ext, it.Radius+it.Size*scale/2)
	}
	return ext
}

// NewViewport fits an orbit of the given extent into a width x height screen
func NewViewport(width, height int, extent float64) Viewport {
	vp := Viewport{
		Width:   width,
		Height:  height,
		AreaTop: HeaderRows,
		AreaBot: height - PanelRows - StatusRows - 1,
	}
	if vp.AreaBot < vp.AreaTop {
		vp.AreaBot = vp.AreaTop
	}
	vp.CenterX = width / 2
	vp.CenterY = (vp.AreaTop + vp.AreaBot) / 2

	halfW := float64(width)/2 - 1
	halfH := float64(vp.AreaBot-vp.AreaTop)/2 - 0.5
	if extent <= 0 || halfW <= 0 || halfH <= 0 {
		vp.ColsPerUnit = 0
		return vp
	}
	vp.ColsPerUnit = min(halfW/extent, halfH/(extent*vmath.TerminalAspect))
	return vp
}

// Valid reports whether the screen is large enough to draw anything
func (vp Viewport) Valid() bool {
	return vp.ColsPerUnit > 0
}

// ToCell converts a layout offset from the orbit center into a screen cell
func (vp Viewport) ToCell(x, y float64) (col, row int) {
	col = vp.CenterX + int(math.Round(x*vp.ColsPerUnit))
	row = vp.CenterY + int(math.Round(y*vp.ColsPerUnit*vmath.TerminalAspect))
	return col, row
}

// ToUnits converts a screen column into a horizontal layout coordinate
// Drag deltas are measured in these units so sensitivity is resolution independent
func (vp Viewport) ToUnits(col int) float64 {
	if vp.ColsPerUnit <= 0 {
		return float64(col)
	}
	return float64(col-vp.CenterX) / vp.ColsPerUnit
}

// Radii returns the cell semi-axes of a disc of the given layout diameter
// Never smaller than half a cell so every item stays visible
func (vp Viewport) Radii(diameter float64) (rx, ry float64) {
	rx = max(diameter/2*vp.ColsPerUnit, 0.5)
	ry = max(rx*vmath.TerminalAspect, 0.5)
	return rx, ry
}

// InArea reports whether row lies in the orbit area
func (vp Viewport) InArea(col, row int) bool {
	return col >= 0 && col < vp.Width && row >= vp.AreaTop && row <= vp.AreaBot
}
