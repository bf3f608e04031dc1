// Package camera implements the pursuit-camera perspective projection used to
// turn flat road geometry into screen space.
package camera

import (
	"math"

	"github.com/golangdaddy/sunsetdrive/road"
)

// Camera is the world offset of the viewer plus the depth constant that
// controls foreshortening.
type Camera struct {
	X, Y, Z float64
	Depth   float64
}

// Viewport is the screen area points are projected onto
type Viewport struct {
	Width  float64
	Height float64
	// RoadWidth is the world half-width used to size the projected road
	RoadWidth float64
}

// DefaultViewport returns the fixed 640x480 canvas used by the demo
func DefaultViewport() Viewport {
	return Viewport{
		Width:     road.CanvasWidth,
		Height:    road.CanvasHeight,
		RoadWidth: road.RoadWidth,
	}
}

// Projected is a world point after projection. CameraX/Y/Z are the
// camera-relative coordinates; X, Y and W are in whole screen pixels.
type Projected struct {
	CameraX, CameraY, CameraZ float64

	Scale float64
	X     float64
	Y     float64
	W     float64 // projected road half-width
}

// Degenerate reports whether the perspective divide was invalid, which happens
// when the point lies on the camera plane.
func (p Projected) Degenerate() bool {
	return math.IsInf(p.Scale, 0) || math.IsNaN(p.Scale)
}

// Behind reports whether the point is on or behind the camera plane
func (p Projected) Behind() bool {
	return p.CameraZ <= 0
}

// Project maps a world point to screen space. It is a pure function: the
// point and camera are passed by value and a new Projected is returned.
//
// The result is only meaningful for CameraZ > 0. Callers are expected to cull
// points that are on or behind the camera.
func Project(p road.WorldPoint, cam Camera, vp Viewport) Projected {
	out := Projected{
		CameraX: p.X - cam.X,
		CameraY: p.Y - cam.Y,
		CameraZ: p.Z - cam.Z,
	}

	halfW := vp.Width / 2
	halfH := vp.Height / 2

	out.Scale = cam.Depth / out.CameraZ
	out.X = round(halfW + offset(out.Scale, out.CameraX)*halfW)
	out.Y = round(halfH - offset(out.Scale, out.CameraY)*halfH)
	out.W = round(offset(out.Scale, vp.RoadWidth) * halfW)

	return out
}

// offset is scale*v, except that a point on the optical axis stays on it at
// every depth (including the infinite scale of the camera plane).
func offset(scale, v float64) float64 {
	if v == 0 {
		return 0
	}
	return scale * v
}

// round rounds half-up to a whole pixel
func round(v float64) float64 {
	return math.Floor(v + 0.5)
}
