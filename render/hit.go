package render

import (
	"github.com/lixenwraith/skill-orbit/orbit"
	"github.com/lixenwraith/skill-orbit/vmath"
)

// HitTest returns the id of the front-most item whose disc covers the cell
// Placements are back to front, so the last hit wins
func HitTest(f orbit.Frame, vp Viewport, col, row int) (string, bool) {
	if !vp.Valid() || !vp.InArea(col, row) {
		return "", false
	}
	for i := len(f.Placements) - 1; i >= 0; i-- {
		p := f.Placements[i]
		cx, cy := vp.ToCell(p.X, p.Y)
		rx, ry := vp.Radii(p.Size * p.Scale)
		if vmath.EllipseContains(float64(col-cx), float64(row-cy), rx, ry) {
			return p.ID, true
		}
	}
	return "", false
}
