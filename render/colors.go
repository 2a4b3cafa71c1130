package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB color definitions for the court scene and HUD
var (
	RgbBackground = tcell.NewRGBColor(16, 18, 28)   // Night court
	RgbCourtGrid  = tcell.NewRGBColor(70, 80, 100)  // Dim slate floor dots
	RgbCourtEdge  = tcell.NewRGBColor(110, 120, 145)

	RgbBall       = tcell.NewRGBColor(255, 140, 40) // Basketball orange
	RgbBallShadow = tcell.NewRGBColor(55, 45, 35)
	RgbRim        = tcell.NewRGBColor(255, 90, 60)
	RgbBackboard  = tcell.NewRGBColor(190, 200, 220)

	RgbTrajectory = tcell.NewRGBColor(90, 200, 255)  // Preview arc cyan
	RgbDragVector = tcell.NewRGBColor(255, 255, 120) // Active swipe

	RgbHudText    = tcell.NewRGBColor(230, 230, 230)
	RgbHudDim     = tcell.NewRGBColor(140, 150, 170)
	RgbHudBest    = tcell.NewRGBColor(255, 215, 0) // Gold for the record
	RgbScorePulse = tcell.NewRGBColor(80, 255, 120)
	RgbPausedBg   = tcell.NewRGBColor(255, 165, 0)
)

// fadeColor scales a color toward black. f is 1.0 for full brightness.
func fadeColor(c tcell.Color, f float64) tcell.Color {
	if f >= 1 {
		return c
	}
	if f < 0 {
		f = 0
	}
	r, g, b := c.RGB()
	return tcell.NewRGBColor(
		int32(float64(r)*f),
		int32(float64(g)*f),
		int32(float64(b)*f),
	)
}
