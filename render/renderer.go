// Package render paints orbit frames and the portfolio panel onto a tcell screen
package render

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/skill-orbit/content"
	"github.com/lixenwraith/skill-orbit/orbit"
	"github.com/lixenwraith/skill-orbit/status"
	"github.com/lixenwraith/skill-orbit/vmath"
)

const (
	ringRune    = '·'
	hubRune     = '•'
	discRune    = '█'
	swatchRune  = '■'
	legendWidth = 16
	hubRatio    = 0.45 // Hub radius relative to the innermost orbit
	hubDashes   = 16
)

// View is everything outside the orbit engine that one frame shows
type View struct {
	Frame         orbit.Frame
	Hub           content.Hub
	Featured      []content.Project
	FeaturedIndex int
	Filter        content.Category
	Projects      []content.Project // Already filtered
	Muted         bool
}

// Renderer draws frames onto a screen
// Layout is fixed by the item set: rings and extent never change after creation
type Renderer struct {
	screen   tcell.Screen
	items    []orbit.Item // Legend order
	extent   float64
	radii    []float64
	hubUnits float64
	registry *status.Registry
}

// NewRenderer prepares a renderer for a fixed item set
// focusScale sizes the margin so focused items are never clipped
func NewRenderer(screen tcell.Screen, items []orbit.Item, focusScale float64, reg *status.Registry) *Renderer {
	radii := make([]float64, 0, len(items))
	inner := math.Inf(1)
	for _, it := range items {
		radii = append(radii, it.Radius)
		inner = min(inner, it.Radius)
	}
	slices.Sort(radii)
	radii = slices.Compact(radii)
	if math.IsInf(inner, 1) {
		inner = 0
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Renderer{
		screen:   screen,
		items:    slices.Clone(items),
		extent:   Extent(items, max(focusScale, 1)),
		radii:    radii,
		hubUnits: inner * hubRatio,
		registry: reg,
	}
}

// Viewport returns the mapping for the current screen size
func (r *Renderer) Viewport() Viewport {
	w, h := r.screen.Size()
	return NewViewport(w, h, r.extent)
}

// Draw paints one frame and shows it, returning the viewport used
func (r *Renderer) Draw(v View) Viewport {
	vp := r.Viewport()
	bg := style(RgbLabel, RgbBackground)
	r.screen.Fill(' ', bg)

	r.drawHeader(vp, v)
	if vp.Valid() {
		r.drawRings(vp)
		r.drawHub(vp, v)
		for _, p := range v.Frame.Placements {
			r.drawItem(vp, p)
		}
		// Labels last so discs in front never cover them
		for _, p := range v.Frame.Placements {
			if p.LabelVisible {
				r.drawLabel(vp, p)
			}
		}
		r.drawLegend(vp, v.Frame.Focused)
	}
	r.drawPanel(vp, v)
	r.drawStatusBar(vp, v)

	r.screen.Show()
	return vp
}

func (r *Renderer) drawHeader(vp Viewport, v View) {
	st := style(RgbStatusText, RgbBackground)
	drawText(r.screen, 1, 0, vp.Width-2, st.Bold(true), "Skills Universe")
	hint := "drag to rotate · hover to focus"
	if v.Frame.Dragging {
		hint = "rotating"
	}
	w := len([]rune(hint))
	drawText(r.screen, vp.Width-w-1, 0, w, style(RgbMuted, RgbBackground), hint)
}

func (r *Renderer) drawRings(vp Viewport) {
	st := style(RgbRing, RgbBackground)
	for _, radius := range r.radii {
		rx := radius * vp.ColsPerUnit
		ry := rx * vmath.TerminalAspect
		// Roughly one dot per two cells of circumference
		count := max(int(math.Pi*(rx+ry)/2), 12)
		for _, pt := range vmath.SampleEllipseGrid(vp.CenterX, vp.CenterY, rx, ry, count, 0) {
			if vp.InArea(pt[0], pt[1]) {
				r.screen.SetContent(pt[0], pt[1], ringRune, nil, st)
			}
		}
	}
}

// drawHub paints the dashed hub outline, turned by the frame's hub angle, and the caption
func (r *Renderer) drawHub(vp Viewport, v View) {
	rx := r.hubUnits * vp.ColsPerUnit
	if rx >= 2 {
		ry := rx * vmath.TerminalAspect
		st := style(RgbHub, RgbBackground)
		pts := vmath.SampleEllipseGrid(vp.CenterX, vp.CenterY, rx, ry, hubDashes, v.Frame.HubAngle)
		for i, pt := range pts {
			if i%2 == 0 && vp.InArea(pt[0], pt[1]) {
				r.screen.SetContent(pt[0], pt[1], hubRune, nil, st)
			}
		}
	}

	width := max(int(2*rx)-1, 1)
	st := style(RgbHubText, RgbBackground).Bold(true)
	drawCentered(r.screen, vp.CenterX, vp.CenterY, width, st, v.Hub.Title)
	if v.Hub.Subtitle != "" && vp.CenterY+1 <= vp.AreaBot {
		drawCentered(r.screen, vp.CenterX, vp.CenterY+1, width, style(RgbMuted, RgbBackground), v.Hub.Subtitle)
	}
}

func (r *Renderer) drawItem(vp Viewport, p orbit.Placement) {
	cx, cy := vp.ToCell(p.X, p.Y)
	rx, ry := vp.Radii(p.Size * p.Scale)
	c := itemColor(p.Color, p.DepthScale, p.Focused)
	st := style(c, RgbBackground)

	spanX := int(math.Ceil(rx))
	spanY := int(math.Ceil(ry))
	for row := cy - spanY; row <= cy+spanY; row++ {
		for col := cx - spanX; col <= cx+spanX; col++ {
			if !vp.InArea(col, row) {
				continue
			}
			if vmath.EllipseContains(float64(col-cx), float64(row-cy), rx, ry) {
				r.screen.SetContent(col, row, discRune, nil, st)
			}
		}
	}

	// Initial on the disc when there is room for it
	if rx >= 1 && vp.InArea(cx, cy) {
		name := []rune(p.DisplayName())
		if len(name) > 0 {
			r.screen.SetContent(cx, cy, name[0], nil, style(textOn(c), c).Bold(p.Focused))
		}
	}
}

func (r *Renderer) drawLabel(vp Viewport, p orbit.Placement) {
	cx, cy := vp.ToCell(p.X, p.Y)
	_, ry := vp.Radii(p.Size * p.Scale)
	row := cy - int(math.Ceil(ry)) - 1
	if row < vp.AreaTop {
		row = cy + int(math.Ceil(ry)) + 1
	}
	if row > vp.AreaBot {
		return
	}
	c := itemColor(p.Color, 1, true)
	text := " " + p.DisplayName() + " "
	drawCentered(r.screen, cx, row, vp.Width, style(textOn(c), c).Bold(true), text)
}

// drawLegend lists every item with its color swatch in the top-left corner of the orbit area
// Skipped when the area is too short to hold the full list
func (r *Renderer) drawLegend(vp Viewport, focused string) {
	top := vp.AreaTop + 1
	if len(r.items) == 0 || top+len(r.items) > vp.AreaBot {
		return
	}
	width := min(legendWidth, vp.Width/4)
	if width < 4 {
		return
	}
	drawText(r.screen, 1, top, width, style(RgbMuted, RgbBackground).Bold(true), "Tech Stack")
	for i, it := range r.items {
		row := top + 1 + i
		c := itemColor(it.Color, 1, true)
		r.screen.SetContent(1, row, swatchRune, nil, style(c, RgbBackground))
		st := style(RgbMuted, RgbBackground)
		if it.ID == focused {
			st = style(RgbLabel, RgbBackground).Bold(true)
		}
		drawText(r.screen, 3, row, width-2, st, it.DisplayName())
	}
}

// drawPanel paints the featured carousel and the filtered project list
func (r *Renderer) drawPanel(vp Viewport, v View) {
	top := vp.AreaBot + 1
	if top >= vp.Height-StatusRows {
		return
	}
	width := vp.Width - 2
	muted := style(RgbMuted, RgbBackground)
	plain := style(RgbLabel, RgbBackground)

	sep := strings.Repeat("─", max(vp.Width, 0))
	drawText(r.screen, 0, top, vp.Width, muted, sep)
	drawText(r.screen, 2, top, width, style(RgbAccent, RgbBackground), " Featured ")

	if n := len(v.Featured); n > 0 {
		i := min(max(v.FeaturedIndex, 0), n-1)
		p := v.Featured[i]
		head := fmt.Sprintf("◀ %d/%d ▶ ", i+1, n)
		x := 1 + drawText(r.screen, 1, top+1, width, plain, head)
		x += drawText(r.screen, x, top+1, width-x, plain.Bold(true), p.Title)
		if len(p.Tags) > 0 {
			drawText(r.screen, x+1, top+1, width-x-1, style(RgbAccent, RgbBackground), "["+strings.Join(p.Tags, ", ")+"]")
		}
		drawText(r.screen, 3, top+2, width-2, muted, p.Description)
	} else {
		drawText(r.screen, 1, top+1, width, muted, "no featured projects")
	}

	// Filter bar
	row := top + 3
	x := 1
	for _, f := range content.Filters {
		st := muted
		if f.ID == v.Filter {
			st = style(RgbFilterText, RgbFilterBg)
		}
		x += drawText(r.screen, x, row, width-x, st, " "+f.Label+" ") + 1
	}
	count := fmt.Sprintf("%s %s", humanize.Comma(int64(len(v.Projects))), plural(len(v.Projects), "project"))
	drawText(r.screen, x+1, row, width-x, muted, count)

	titles := make([]string, len(v.Projects))
	for i, p := range v.Projects {
		titles[i] = p.Title
	}
	drawText(r.screen, 1, top+4, width, plain, strings.Join(titles, " · "))
}

func (r *Renderer) drawStatusBar(vp Viewport, v View) {
	y := vp.Height - 1
	if y < 0 {
		return
	}
	st := style(RgbStatusText, RgbStatusBar)
	fillRow(r.screen, y, vp.Width, st)

	ticks := r.registry.Ints.Get("orbit.ticks").Load()
	drags := r.registry.Ints.Get("orbit.drags").Load()
	focus := v.Frame.Focused
	if focus == "" {
		focus = "-"
	}
	text := fmt.Sprintf(" ROT %5.1f°  TICKS %s  DRAGS %s  FOCUS %s",
		v.Frame.Rotation, humanize.Comma(ticks), humanize.Comma(drags), focus)
	x := drawText(r.screen, 0, y, vp.Width, st, text)

	if v.Frame.Dragging {
		x += drawText(r.screen, x+2, y, vp.Width-x-2, style(RgbFilterText, RgbDragCue), " DRAG ") + 2
	}
	if v.Muted {
		drawText(r.screen, x+2, y, vp.Width-x-2, style(RgbFilterText, RgbAccent), " MUTE ")
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
