// Package car draws the player's car sprite.
package car

import (
	"image/color"

	"github.com/golangdaddy/sunsetdrive/surface"
)

// Sprite dimensions
const (
	Width  = 80.0
	Height = 40.0

	// BottomMargin is the gap between the car and the bottom of the canvas
	BottomMargin = 20.0
)

var (
	BodyColor   = color.RGBA{0xFF, 0x00, 0x00, 255}
	RoofColor   = color.RGBA{0xCC, 0x00, 0x00, 255}
	WindowColor = color.RGBA{0x00, 0x00, 0x00, 255}
	WheelColor  = color.RGBA{0x00, 0x00, 0x00, 255}
	LightColor  = color.RGBA{0xFF, 0xFF, 0xFF, 255}
)

// Origin returns the top-left corner of the car body for a canvas of the given
// size. The car always sits centred near the bottom edge.
func Origin(canvasWidth, canvasHeight int) (x, y float64) {
	return float64(canvasWidth)/2 - Width/2, float64(canvasHeight) - Height - BottomMargin
}

// RenderCar renders the rear view of the car at its fixed screen position
func RenderCar(dst surface.Surface) {
	w, h := dst.Size()
	x, y := Origin(w, h)

	// Body
	dst.FillRect(x, y, Width, Height*0.5, BodyColor)

	// Roof
	dst.FillRect(x+Width*0.25, y-Height*0.2, Width*0.5, Height*0.2, RoofColor)

	// Rear window
	dst.FillRect(x+Width*0.25, y, Width*0.5, Height*0.2, WindowColor)

	// Wheels
	dst.FillRect(x-5, y+Height*0.3, 10, Height*0.2, WheelColor)
	dst.FillRect(x+Width-5, y+Height*0.3, 10, Height*0.2, WheelColor)

	// Lights
	dst.FillRect(x+5, y, 10, 5, LightColor)
	dst.FillRect(x+Width-15, y, 10, 5, LightColor)
}
