package render

import "github.com/gdamore/tcell/v2"

// Palette
var (
	RgbBackground  = RGB{26, 27, 38}    // Tokyo Night background
	RgbRing        = RGB{70, 74, 100}   // Orbit guide dots
	RgbHub         = RGB{122, 162, 247} // Hub outline
	RgbHubText     = RGB{255, 255, 255}
	RgbLabel       = RGB{255, 255, 255}
	RgbMuted       = RGB{140, 140, 160}
	RgbAccent      = RGB{255, 165, 0}
	RgbStatusBar   = RGB{36, 40, 59}
	RgbStatusText  = RGB{192, 202, 245}
	RgbFilterBg    = RGB{135, 206, 250}
	RgbFilterText  = RGB{0, 0, 0}
	RgbDragCue     = RGB{144, 238, 144}
	RgbItemDefault = RGB{180, 180, 180}
)

// itemColor resolves an item color, dimmed toward the background by depth
// Unparseable colors fall back to RgbItemDefault
func itemColor(hex string, depth float64, focused bool) RGB {
	c, err := ParseHex(hex)
	if err != nil {
		c = RgbItemDefault
	}
	if focused {
		return c
	}
	// depth in [0.5, 1]: far items sink halfway into the background
	return Blend(RgbBackground, c, depth)
}

// textOn picks black or white text for legibility over bg
func textOn(bg RGB) RGB {
	if Luma(bg) > 150 {
		return RGBBlack
	}
	return RGBWhite
}

func style(fg, bg RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(fg.Tcell()).Background(bg.Tcell())
}
