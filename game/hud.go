package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/golangdaddy/sunsetdrive/models"
	"github.com/golangdaddy/sunsetdrive/surface"
)

// HUD layout
const (
	hudTextSize   = 20.0
	hudMargin     = 20.0
	debugTextSize = 10.0

	gaugeX      = 120.0
	gaugeY      = 80.0
	gaugeRadius = 60.0
	gaugeWidth  = 10.0
)

var (
	hudTextColor = color.RGBA{0xFF, 0xFF, 0xFF, 255}
	gaugeBack    = color.RGBA{0x33, 0x33, 0x33, 255}
	gaugeGreen   = color.RGBA{0x00, 0xFF, 0x00, 255}
	gaugeYellow  = color.RGBA{0xFF, 0xFF, 0x00, 255}
	gaugeRed     = color.RGBA{0xFF, 0x00, 0x00, 255}
	debugColor   = color.RGBA{0xFF, 0xFF, 0x00, 255}
)

// drawHUD draws the speed readout, the speedometer and the race labels
func drawHUD(dst surface.Surface, v models.Vehicle) {
	w, _ := dst.Size()

	speedText := fmt.Sprintf("SPEED: %d km/h", v.SpeedKMH())
	dst.FillText(speedText, hudMargin, 30, hudTextSize, surface.AlignLeft, hudTextColor)

	drawSpeedometer(dst, v.SpeedFraction())

	// decorative, there is no race logic behind these
	right := float64(w) - hudMargin
	dst.FillText("1ST", right, 30, hudTextSize, surface.AlignRight, hudTextColor)
	dst.FillText("LAP 1/4", right, 60, hudTextSize, surface.AlignRight, hudTextColor)
}

// drawSpeedometer draws a half-circle gauge filled clockwise from the left
func drawSpeedometer(dst surface.Surface, pct float64) {
	dst.StrokeArc(gaugeX, gaugeY, gaugeRadius, math.Pi, 2*math.Pi, gaugeWidth, gaugeBack)

	if pct <= 0 {
		return
	}
	dst.StrokeArc(gaugeX, gaugeY, gaugeRadius, math.Pi, math.Pi+pct*math.Pi, gaugeWidth, gaugeColor(pct))
}

// gaugeColor picks the needle colour for a speed fraction
func gaugeColor(pct float64) color.RGBA {
	switch {
	case pct > 0.8:
		return gaugeRed
	case pct > 0.5:
		return gaugeYellow
	default:
		return gaugeGreen
	}
}

// drawDebugOverlay prints the frame stats along the bottom-left corner
func drawDebugOverlay(dst surface.Surface, st FrameStats) {
	_, h := dst.Size()
	line := fmt.Sprintf("frame %d  dt %.1fms  drawn %d  culled %d  degenerate %d  calls %d",
		st.Frame, float64(st.DT.Microseconds())/1000, st.Drawn, st.Culled, st.Degenerate, st.DrawCalls)
	dst.FillText(line, 4, float64(h)-4, debugTextSize, surface.AlignLeft, debugColor)
}
