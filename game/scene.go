// Package game renders the road scene and runs the drive loop.
package game

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/golangdaddy/sunsetdrive/camera"
	"github.com/golangdaddy/sunsetdrive/car"
	"github.com/golangdaddy/sunsetdrive/models"
	"github.com/golangdaddy/sunsetdrive/pkg/background"
	"github.com/golangdaddy/sunsetdrive/road"
	"github.com/golangdaddy/sunsetdrive/surface"
)

// CullReason says why a segment was not drawn
type CullReason int

const (
	Visible CullReason = iota
	CulledBehind      // both edges at or behind the camera plane
	CulledBelowScreen // far edge at or past the bottom of the canvas
	CulledDegenerate  // survived culling with a non-finite projection
)

func (c CullReason) String() string {
	switch c {
	case Visible:
		return "visible"
	case CulledBehind:
		return "behind"
	case CulledBelowScreen:
		return "below-screen"
	case CulledDegenerate:
		return "degenerate"
	}
	return "unknown"
}

// laneMarkers are the lateral offsets of the lane lines as a fraction of the
// road half-width
var laneMarkers = [...]float64{-0.25, 0.25}

const (
	rumbleFraction = 1.0 / 5
	laneFraction   = 0.05
	// lane dashes are drawn on the first half of every 8 segments
	laneDashPeriod = 8
	laneDashOn     = 4
)

// SegmentProjection is one segment of the visible window projected for a
// single frame
type SegmentProjection struct {
	N       int // unwrapped segment number, may run past the end of the lap
	Segment *road.Segment
	Near    camera.Projected
	Far     camera.Projected
	NearY   float64 // Near.Y clamped to the horizon
	Cull    CullReason
}

// Frame is everything needed to draw one picture. It is computed by
// Scene.Project without touching any surface.
type Frame struct {
	Position float64
	PlayerX  float64
	Base     int
	Vehicle  models.Vehicle

	// Segments runs near to far, DrawDistance entries
	Segments []SegmentProjection
}

// FrameStats summarises a rendered frame
type FrameStats struct {
	Frame      int64
	DT         time.Duration
	Projected  int
	Culled     int
	Drawn      int
	Degenerate int
	DrawCalls  int
}

// Scene renders the road, backdrop, car and HUD
type Scene struct {
	Viewport camera.Viewport

	// Strict panics when a segment that survived culling has a non-finite
	// projection. Otherwise the segment is skipped and counted.
	Strict bool

	backdrop *background.Generator
	skyline  *background.Skyline
}

// NewScene creates a scene for the viewport with a frozen skyline
func NewScene(vp camera.Viewport, skyline *background.Skyline) *Scene {
	return &Scene{
		Viewport: vp,
		backdrop: background.NewGenerator(int(vp.Width), int(vp.Height)),
		skyline:  skyline,
	}
}

// Project computes the projections for the DrawDistance segments ahead of
// the vehicle. It is pure: neither the track nor the vehicle is modified.
func (s *Scene) Project(track *road.Track, v models.Vehicle) Frame {
	base := road.SegmentIndexAt(v.Position)
	f := Frame{
		Position: v.Position,
		PlayerX:  v.X,
		Base:     base,
		Vehicle:  v,
		Segments: make([]SegmentProjection, 0, road.DrawDistance),
	}

	halfH := s.Viewport.Height / 2
	for n := base; n < base+road.DrawDistance; n++ {
		seg := track.At(n)

		// segments from the next lap are seen from a camera one lap back
		lap := floorDiv(n, track.Len())
		cam := camera.Camera{
			X:     v.X * road.RoadWidth,
			Y:     road.CameraHeight,
			Z:     v.Position - float64(lap)*track.Length(),
			Depth: road.CameraDepth,
		}

		sp := SegmentProjection{
			N:       n,
			Segment: seg,
			Near:    camera.Project(seg.P1, cam, s.Viewport),
			Far:     camera.Project(seg.P2, cam, s.Viewport),
		}
		sp.NearY = math.Max(sp.Near.Y, halfH)
		sp.Cull = s.classify(sp)

		f.Segments = append(f.Segments, sp)
	}
	return f
}

// classify decides whether a projected segment is drawn
func (s *Scene) classify(sp SegmentProjection) CullReason {
	switch {
	case sp.Near.Behind() && sp.Far.Behind():
		return CulledBehind
	case sp.Far.Y >= s.Viewport.Height:
		return CulledBelowScreen
	case sp.Near.Degenerate() || sp.Far.Degenerate():
		if s.Strict {
			panic(fmt.Sprintf("game: degenerate projection for segment %d", sp.N))
		}
		return CulledDegenerate
	}
	return Visible
}

// Draw renders a projected frame: backdrop, road, car and HUD. Road segments
// are emitted far to near so nearer geometry always paints over farther.
func (s *Scene) Draw(dst surface.Surface, f Frame) FrameStats {
	out := &countingSurface{Surface: dst}
	stats := FrameStats{Projected: len(f.Segments)}

	out.Clear(color.Black)
	s.backdrop.DrawSky(out)
	s.backdrop.DrawSkyline(out, s.skyline)
	s.backdrop.DrawHorizon(out)

	for i := len(f.Segments) - 1; i >= 0; i-- {
		sp := f.Segments[i]
		switch sp.Cull {
		case Visible:
			s.drawSegment(out, sp)
			stats.Drawn++
		case CulledDegenerate:
			stats.Degenerate++
		default:
			stats.Culled++
		}
	}

	car.RenderCar(out)
	drawHUD(out, f.Vehicle)

	stats.DrawCalls = out.calls
	return stats
}

// drawSegment emits the grass strip, road, rumble strips and lane dashes for
// one visible segment
func (s *Scene) drawSegment(dst surface.Surface, sp SegmentProjection) {
	pal := sp.Segment.Palette
	x1, y1, w1 := sp.Near.X, sp.NearY, sp.Near.W
	x2, y2, w2 := sp.Far.X, sp.Far.Y, sp.Far.W

	dst.FillPolygon(quad(0, y1, s.Viewport.Width, y1, s.Viewport.Width, y2, 0, y2), pal.Grass)
	dst.FillPolygon(quad(x1-w1, y1, x1+w1, y1, x2+w2, y2, x2-w2, y2), pal.Road)

	r1, r2 := w1*rumbleFraction, w2*rumbleFraction
	dst.FillPolygon(quad(x1-w1, y1, x1-w1+r1, y1, x2-w2+r2, y2, x2-w2, y2), pal.Rumble)
	dst.FillPolygon(quad(x1+w1-r1, y1, x1+w1, y1, x2+w2, y2, x2+w2-r2, y2), pal.Rumble)

	if !pal.HasLanes() || sp.Segment.Index%laneDashPeriod >= laneDashOn {
		return
	}
	l1, l2 := w1*laneFraction, w2*laneFraction
	for _, m := range laneMarkers {
		lx1 := x1 + w1*m
		lx2 := x2 + w2*m
		dst.FillPolygon(quad(lx1-l1/2, y1, lx1+l1/2, y1, lx2+l2/2, y2, lx2-l2/2, y2), pal.Lane)
	}
}

func quad(x1, y1, x2, y2, x3, y3, x4, y4 float64) []surface.Point {
	return []surface.Point{{X: x1, Y: y1}, {X: x2, Y: y2}, {X: x3, Y: y3}, {X: x4, Y: y4}}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
