package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawText writes s starting at (x, y), clipped to maxWidth cells
// Returns the number of cells written
func drawText(s tcell.Screen, x, y, maxWidth int, st tcell.Style, text string) int {
	if maxWidth <= 0 {
		return 0
	}
	if runewidth.StringWidth(text) > maxWidth {
		text = runewidth.Truncate(text, maxWidth, "…")
	}
	col := 0
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		s.SetContent(x+col, y, r, nil, st)
		col += w
	}
	return col
}

// drawCentered writes text centered on column cx
func drawCentered(s tcell.Screen, cx, y, maxWidth int, st tcell.Style, text string) {
	w := min(runewidth.StringWidth(text), maxWidth)
	drawText(s, cx-w/2, y, maxWidth, st, text)
}

// fillRow paints a full row with st
func fillRow(s tcell.Screen, y, width int, st tcell.Style) {
	for x := 0; x < width; x++ {
		s.SetContent(x, y, ' ', nil, st)
	}
}
