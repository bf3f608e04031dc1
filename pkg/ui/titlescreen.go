// Package ui holds the screens shown around the drive itself.
package ui

import (
	"image/color"
	"math"

	"github.com/golangdaddy/sunsetdrive/surface"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	titleBackground = color.RGBA{15, 20, 35, 255}
	subtitleColor   = color.RGBA{180, 180, 200, 255}
	pressColor      = color.RGBA{150, 200, 255, 255}
	lineColor       = color.RGBA{0xFF, 0x88, 0x44, 255}
)

// TitleScreen represents the main title screen
type TitleScreen struct {
	onStartPressed func() // Callback when user presses to start
	pressed        func(ebiten.Key) bool
}

// NewTitleScreen creates a new title screen
func NewTitleScreen(onStartPressed func()) *TitleScreen {
	return &TitleScreen{
		onStartPressed: onStartPressed,
		pressed:        inpututil.IsKeyJustPressed,
	}
}

// Update handles input for the title screen. Escape quits.
func (ts *TitleScreen) Update() error {
	if ts.pressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if ts.pressed(ebiten.KeyEnter) || ts.pressed(ebiten.KeySpace) {
		if ts.onStartPressed != nil {
			ts.onStartPressed()
		}
	}
	return nil
}

// Draw renders the title screen. elapsed drives the pulse and blink.
func (ts *TitleScreen) Draw(dst surface.Surface, elapsed float64) {
	width, height := dst.Size()
	centerX := float64(width) / 2
	centerY := float64(height) / 3

	dst.Clear(titleBackground)

	// Pulsing title (1.0 to 1.1)
	pulse := 1.0 + 0.1*math.Sin(elapsed*2.0)
	brightness := math.Min(1.0, 1.0+0.2*math.Sin(elapsed*1.5))
	titleColor := color.RGBA{
		uint8(255 * brightness),
		uint8(200 * brightness),
		uint8(50 * brightness),
		255,
	}
	dst.FillText("SUNSET DRIVE", centerX, centerY, 64*pulse, surface.AlignCenter, titleColor)
	dst.FillText("Endless Road", centerX, centerY+80, 24, surface.AlignCenter, subtitleColor)

	// Blink every 0.5 seconds
	if int(elapsed*2)%2 == 0 {
		dst.FillText("Press ENTER or SPACE to Start", centerX, float64(height)-100, 18, surface.AlignCenter, pressColor)
	}
	dst.FillText("Arrows or WASD to drive, ESC to quit", centerX, float64(height)-60, 14, surface.AlignCenter, subtitleColor)

	drawDecorativeElements(dst, width, height)
}

// drawDecorativeElements draws the sunset-coloured rules above and below the
// title
func drawDecorativeElements(dst surface.Surface, width, height int) {
	const lineThickness = 2.0
	dst.FillRect(0, float64(height)/6, float64(width), lineThickness, lineColor)
	dst.FillRect(0, float64(height)*5/6, float64(width), lineThickness, lineColor)
}
