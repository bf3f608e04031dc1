// Package surface defines the drawing contract the scene renders onto. It
// abstracts the underlying graphics backend so the road can be drawn into an
// ebiten window, an in-memory image, or a recording for tests.
package surface

import "image/color"

// Point is a screen-space vertex
type Point struct {
	X, Y float64
}

// Align controls the horizontal anchor of text
type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// Surface is the rendering surface the scene draws onto.
type Surface interface {
	// Size returns the logical size of the surface in pixels.
	Size() (width, height int)

	// Clear fills the whole surface with clr.
	Clear(clr color.Color)

	// FillPolygon fills the closed polygon through points.
	FillPolygon(points []Point, clr color.Color)

	// FillRect fills an axis-aligned rectangle.
	FillRect(x, y, w, h float64, clr color.Color)

	// StrokeArc strokes a circular arc centred on (cx, cy). Angles are in
	// radians measured clockwise from the positive x axis (screen y points down).
	StrokeArc(cx, cy, radius, startAngle, endAngle, lineWidth float64, clr color.Color)

	// FillText draws str with its baseline at y. size is the font height in pixels.
	FillText(str string, x, y, size float64, align Align, clr color.Color)
}
