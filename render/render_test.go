package render

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/skill-orbit/content"
	"github.com/lixenwraith/skill-orbit/orbit"
	"github.com/lixenwraith/skill-orbit/status"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func rowText(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}

func placement(id string, x, y, size float64, order int) orbit.Placement {
	return orbit.Placement{
		Item:       orbit.Item{ID: id, Radius: 100, Size: size, Color: "#ff0000"},
		Projection: orbit.Projection{X: x, Y: y, DepthScale: 1, StackOrder: order},
		Scale:      1,
	}
}

func TestViewportLayout(t *testing.T) {
	vp := NewViewport(80, 40, 100)
	require.True(t, vp.Valid())
	assert.Equal(t, 1, vp.AreaTop)
	assert.Equal(t, 33, vp.AreaBot)
	assert.Equal(t, 40, vp.CenterX)
	assert.Equal(t, 17, vp.CenterY)

	// Vertical fit is the tighter bound here
	assert.InDelta(t, 0.31, vp.ColsPerUnit, 1e-9)

	col, row := vp.ToCell(0, 0)
	assert.Equal(t, vp.CenterX, col)
	assert.Equal(t, vp.CenterY, row)

	// The full extent stays inside the orbit area
	_, bottom := vp.ToCell(0, 100)
	_, top := vp.ToCell(0, -100)
	assert.LessOrEqual(t, bottom, vp.AreaBot)
	assert.GreaterOrEqual(t, top, vp.AreaTop)
	left, _ := vp.ToCell(-100, 0)
	right, _ := vp.ToCell(100, 0)
	assert.GreaterOrEqual(t, left, 0)
	assert.Less(t, right, vp.Width)
}

func TestViewportToUnits(t *testing.T) {
	vp := NewViewport(120, 50, 300)
	assert.Zero(t, vp.ToUnits(vp.CenterX))

	// One column to the right is 1/ColsPerUnit units
	assert.InDelta(t, 1/vp.ColsPerUnit, vp.ToUnits(vp.CenterX+1), 1e-9)
	assert.InDelta(t, -10/vp.ColsPerUnit, vp.ToUnits(vp.CenterX-10), 1e-9)
}

func TestViewportTooSmall(t *testing.T) {
	vp := NewViewport(3, 4, 100)
	assert.False(t, vp.Valid())

	// Without a scale, columns pass through unchanged
	assert.Equal(t, 7.0, vp.ToUnits(7))
}

func TestViewportRadiiMinimum(t *testing.T) {
	vp := NewViewport(80, 40, 100)
	rx, ry := vp.Radii(0.01)
	assert.Equal(t, 0.5, rx)
	assert.Equal(t, 0.5, ry)
}

func TestExtent(t *testing.T) {
	items := []orbit.Item{
		{ID: "a", Radius: 100, Size: 20},
		{ID: "b", Radius: 300, Size: 80},
	}
	assert.Equal(t, 340.0, Extent(items, 1))
	assert.Equal(t, 356.0, Extent(items, 1.4))
}

func TestHitTestFrontMostWins(t *testing.T) {
	vp := NewViewport(80, 40, 100)
	f := orbit.Frame{Placements: []orbit.Placement{
		placement("back", 0, 0, 20, 5),
		placement("front", 0, 0, 20, 10),
	}}

	id, ok := HitTest(f, vp, vp.CenterX, vp.CenterY)
	require.True(t, ok)
	assert.Equal(t, "front", id)

	// Edge of the disc: rx = 10 * 0.31 = 3.1 cells
	id, ok = HitTest(f, vp, vp.CenterX+3, vp.CenterY)
	require.True(t, ok)
	assert.Equal(t, "front", id)

	_, ok = HitTest(f, vp, vp.CenterX+5, vp.CenterY)
	assert.False(t, ok)
}

func TestHitTestSeparateItems(t *testing.T) {
	vp := NewViewport(80, 40, 100)
	f := orbit.Frame{Placements: []orbit.Placement{
		placement("left", -80, 0, 20, 7),
		placement("right", 80, 0, 20, 7),
	}}

	col, row := vp.ToCell(80, 0)
	id, ok := HitTest(f, vp, col, row)
	require.True(t, ok)
	assert.Equal(t, "right", id)

	col, row = vp.ToCell(-80, 0)
	id, ok = HitTest(f, vp, col, row)
	require.True(t, ok)
	assert.Equal(t, "left", id)

	// Header row is outside the orbit area
	_, ok = HitTest(f, vp, vp.CenterX, 0)
	assert.False(t, ok)
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#61DAFB")
	require.NoError(t, err)
	assert.Equal(t, RGB{0x61, 0xDA, 0xFB}, c)

	c, err = ParseHex("#fff")
	require.NoError(t, err)
	assert.Equal(t, RGBWhite, c)

	_, err = ParseHex("#12345")
	assert.Error(t, err)
	_, err = ParseHex("#zzzzzz")
	assert.Error(t, err)
}

func TestItemColorDepth(t *testing.T) {
	near := itemColor("#ff0000", 1, false)
	far := itemColor("#ff0000", 0.5, false)
	assert.Equal(t, RGB{255, 0, 0}, near)
	assert.Less(t, far.R, near.R)

	// Focus always shows the true color
	assert.Equal(t, RGB{255, 0, 0}, itemColor("#ff0000", 0.5, true))

	// Bad colors fall back instead of failing the frame
	assert.Equal(t, RgbItemDefault, itemColor("nope", 1, false))
}

func TestDrawFrame(t *testing.T) {
	screen := newScreen(t, 100, 40)
	reg := status.NewRegistry()
	reg.Ints.Get("orbit.ticks").Store(12345)
	reg.Ints.Get("orbit.drags").Store(2)

	items := []orbit.Item{
		{ID: "MySQL", Radius: 230, Size: 50, Color: "#4479A1"},
		{ID: "React.js", Radius: 200, Size: 70, Color: "#61DAFB"},
	}
	r := NewRenderer(screen, items, 1.4, reg)

	mysql := placement("MySQL", 0, -230, 50, 5)
	react := placement("React.js", 0, 200, 70, 10)
	react.Focused = true
	react.LabelVisible = true
	react.Scale = 1.4

	featured := []content.Project{
		{ID: 1, Title: "Smart Home Hub", Description: "ESP32 dashboard", Tags: []string{"ESP32", "MQTT"}},
		{ID: 2, Title: "Portfolio"},
	}
	vp := r.Draw(View{
		Frame: orbit.Frame{
			Rotation:   42.5,
			Focused:    "React.js",
			Dragging:   true,
			Placements: []orbit.Placement{mysql, react},
		},
		Hub:           content.Hub{Title: "IoT", Subtitle: "Automation"},
		Featured:      featured,
		FeaturedIndex: 1,
		Filter:        content.CategoryWeb,
		Projects:      featured,
		Muted:         true,
	})
	require.True(t, vp.Valid())

	assert.Contains(t, rowText(screen, 0), "Skills Universe")
	assert.Contains(t, rowText(screen, 0), "rotating")

	assert.Contains(t, rowText(screen, vp.CenterY), "IoT")
	assert.Contains(t, rowText(screen, vp.CenterY+1), "Automation")

	// Focused item shows its label, right of the legend column
	found := false
	for y := vp.AreaTop; y <= vp.AreaBot; y++ {
		if strings.Contains(string([]rune(rowText(screen, y))[legendWidth+2:]), "React.js") {
			found = true
		}
	}
	assert.True(t, found, "focused label drawn")

	// Legend lists every item in configuration order
	legend := vp.AreaTop + 1
	assert.Contains(t, rowText(screen, legend), "Tech Stack")
	for i, it := range items {
		line := rowText(screen, legend+1+i)
		assert.Contains(t, line, it.DisplayName())
		ch, _, _, _ := screen.GetContent(1, legend+1+i)
		assert.Equal(t, swatchRune, ch)
	}

	// Disc initial at the item center
	col, row := vp.ToCell(0, -230)
	ch, _, _, _ := screen.GetContent(col, row)
	assert.Equal(t, 'M', ch)

	panel := vp.AreaBot + 1
	assert.Contains(t, rowText(screen, panel), "Featured")
	assert.Contains(t, rowText(screen, panel+1), "2/2")
	assert.Contains(t, rowText(screen, panel+1), "Portfolio")
	assert.Contains(t, rowText(screen, panel+3), "Web / Apps")
	assert.Contains(t, rowText(screen, panel+3), "2 projects")
	assert.Contains(t, rowText(screen, panel+4), "Smart Home Hub · Portfolio")

	bar := rowText(screen, 39)
	assert.Contains(t, bar, "ROT  42.5°")
	assert.Contains(t, bar, "TICKS 12,345")
	assert.Contains(t, bar, "DRAGS 2")
	assert.Contains(t, bar, "FOCUS React.js")
	assert.Contains(t, bar, "DRAG")
	assert.Contains(t, bar, "MUTE")
}

func TestDrawLegendSkippedWhenShort(t *testing.T) {
	screen := newScreen(t, 100, 12)
	items := make([]orbit.Item, 9)
	for i := range items {
		items[i] = orbit.Item{ID: fmt.Sprintf("skill-%d", i), Radius: 100, Size: 20}
	}
	r := NewRenderer(screen, items, 1.4, nil)
	vp := r.Draw(View{})
	require.True(t, vp.Valid())

	for y := vp.AreaTop; y <= vp.AreaBot; y++ {
		assert.NotContains(t, rowText(screen, y), "Tech Stack")
	}
}

func TestDrawTinyScreen(t *testing.T) {
	screen := newScreen(t, 4, 3)
	r := NewRenderer(screen, []orbit.Item{{ID: "a", Radius: 10, Size: 2}}, 1.4, nil)

	assert.NotPanics(t, func() {
		r.Draw(View{Frame: orbit.Frame{Placements: []orbit.Placement{placement("a", 10, 0, 2, 7)}}})
	})
}
