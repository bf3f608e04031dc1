package game

import (
	"image/color"

	"github.com/golangdaddy/sunsetdrive/surface"
)

// countingSurface forwards to another surface and counts the draw calls
type countingSurface struct {
	surface.Surface
	calls int
}

func (c *countingSurface) Clear(clr color.Color) {
	c.calls++
	c.Surface.Clear(clr)
}

func (c *countingSurface) FillPolygon(points []surface.Point, clr color.Color) {
	c.calls++
	c.Surface.FillPolygon(points, clr)
}

func (c *countingSurface) FillRect(x, y, w, h float64, clr color.Color) {
	c.calls++
	c.Surface.FillRect(x, y, w, h, clr)
}

func (c *countingSurface) StrokeArc(cx, cy, radius, startAngle, endAngle, lineWidth float64, clr color.Color) {
	c.calls++
	c.Surface.StrokeArc(cx, cy, radius, startAngle, endAngle, lineWidth, clr)
}

func (c *countingSurface) FillText(str string, x, y, size float64, align surface.Align, clr color.Color) {
	c.calls++
	c.Surface.FillText(str, x, y, size, align, clr)
}
