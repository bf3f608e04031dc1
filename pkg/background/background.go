// Package background generates and draws the scenery behind the road: a
// sunset sky and a city skyline standing on the horizon.
package background

import (
	"image/color"
	"math/rand"

	"github.com/golangdaddy/sunsetdrive/surface"
)

var (
	SunsetTop    = color.RGBA{0xFF, 0x88, 0x44, 255}
	SunsetBottom = color.RGBA{0xFF, 0xCC, 0x33, 255}

	BuildingColor = color.RGBA{0x33, 0x33, 0x33, 255}
	WindowColor   = color.RGBA{0xFF, 0xCC, 0x00, 255}
)

const (
	buildingCount   = 10
	buildingSpacing = 70.0
	windowSpacing   = 15.0
	windowSize      = 8.0
	windowInset     = 5.0

	// skyBands is how many flat bands approximate the sky gradient
	skyBands = 60
)

// Window is a lit window, relative to its building's inset top-left corner
type Window struct {
	X, Y float64
}

// Building is one block of the skyline
type Building struct {
	X       float64
	Width   float64
	Height  float64
	Windows []Window
}

// Skyline is a frozen row of buildings. It is generated once and never
// changes, so it does not flicker between frames.
type Skyline struct {
	Buildings []Building
}

// Generator creates the scenery for a canvas of the given size
type Generator struct {
	Width  int
	Height int
}

// NewGenerator creates a new background generator
func NewGenerator(width, height int) *Generator {
	return &Generator{
		Width:  width,
		Height: height,
	}
}

// Horizon returns the screen y of the horizon
func (g *Generator) Horizon() float64 {
	return float64(g.Height) / 2
}

// GenerateSkyline creates the city skyline. The same seed always yields the
// same skyline.
func (g *Generator) GenerateSkyline(seed int64) *Skyline {
	rng := rand.New(rand.NewSource(seed))

	sky := &Skyline{Buildings: make([]Building, 0, buildingCount)}
	for i := 0; i < buildingCount; i++ {
		sky.Buildings = append(sky.Buildings, g.generateBuilding(i, rng))
	}
	return sky
}

// generateBuilding rolls the size, offset and lit windows of building i
func (g *Generator) generateBuilding(i int, rng *rand.Rand) Building {
	b := Building{
		Height: 40 + rng.Float64()*80,
		Width:  40 + rng.Float64()*60,
		X:      float64(i)*buildingSpacing + rng.Float64()*20,
	}

	for wy := 0.0; wy < b.Height-10; wy += windowSpacing {
		for wx := 0.0; wx < b.Width-10; wx += windowSpacing {
			if rng.Float64() > 0.5 {
				b.Windows = append(b.Windows, Window{X: wx, Y: wy})
			}
		}
	}
	return b
}

// DrawSky fills the upper half of the canvas with the sunset gradient
func (g *Generator) DrawSky(dst surface.Surface) {
	horizon := g.Horizon()
	band := horizon / skyBands
	for i := 0; i < skyBands; i++ {
		t := (float64(i) + 0.5) / skyBands
		dst.FillRect(0, float64(i)*band, float64(g.Width), band, lerp(SunsetTop, SunsetBottom, t))
	}
}

// DrawSkyline draws every building standing on the horizon
func (g *Generator) DrawSkyline(dst surface.Surface, sky *Skyline) {
	horizon := g.Horizon()
	for _, b := range sky.Buildings {
		top := horizon - b.Height
		dst.FillRect(b.X, top, b.Width, b.Height, BuildingColor)

		for _, w := range b.Windows {
			dst.FillRect(b.X+windowInset+w.X, top+windowInset+w.Y, windowSize, windowSize, WindowColor)
		}
	}
}

// DrawHorizon draws the 2px line that hides the seam between sky and road
func (g *Generator) DrawHorizon(dst surface.Surface) {
	dst.FillRect(0, g.Horizon()-1, float64(g.Width), 2, BuildingColor)
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), 255}
}
