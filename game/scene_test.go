package game

import (
	"image/color"
	"math"
	"testing"

	"github.com/golangdaddy/sunsetdrive/camera"
	"github.com/golangdaddy/sunsetdrive/models"
	"github.com/golangdaddy/sunsetdrive/pkg/background"
	"github.com/golangdaddy/sunsetdrive/road"
	"github.com/golangdaddy/sunsetdrive/surface"
	"github.com/google/go-cmp/cmp"
)

func newTestScene() *Scene {
	vp := camera.DefaultViewport()
	sky := background.NewGenerator(int(vp.Width), int(vp.Height)).GenerateSkyline(1)
	return NewScene(vp, sky)
}

func isGrass(c color.Color) bool {
	return c == road.Light.Grass || c == road.Dark.Grass
}

// expectedPolygons counts the road polygons a frame should emit
func expectedPolygons(f Frame) int {
	n := 0
	for _, sp := range f.Segments {
		if sp.Cull != Visible {
			continue
		}
		n += 4
		if sp.Segment.Palette.HasLanes() && sp.Segment.Index%laneDashPeriod < laneDashOn {
			n += len(laneMarkers)
		}
	}
	return n
}

func TestStartOfTrackIsCentred(t *testing.T) {
	s := newTestScene()
	track := road.ResetTrack()

	f := s.Project(track, models.Vehicle{})
	if len(f.Segments) != road.DrawDistance {
		t.Fatalf("expected %d projections, got %d", road.DrawDistance, len(f.Segments))
	}

	first := f.Segments[0]
	if first.N != 0 || first.Segment.Index != 0 {
		t.Fatalf("expected segment 0 first, got n=%d index=%d", first.N, first.Segment.Index)
	}
	if first.Near.X != road.CanvasWidth/2 {
		t.Errorf("expected segment 0 near edge at x=%v, got %v", road.CanvasWidth/2, first.Near.X)
	}

	rec := surface.NewRecorder(road.CanvasWidth, road.CanvasHeight)
	s.Draw(rec, f)
	if got := rec.Count(surface.OpPolygon); got != expectedPolygons(f) {
		t.Errorf("expected %d polygons, got %d", expectedPolygons(f), got)
	}
}

func TestNearSegmentsBelowScreenAreCulled(t *testing.T) {
	s := newTestScene()
	f := s.Project(road.ResetTrack(), models.Vehicle{})

	// at position 0 the first four segments have their far edge below the
	// bottom of the canvas
	for i, sp := range f.Segments {
		want := Visible
		if i < 4 {
			want = CulledBelowScreen
		}
		if sp.Cull != want {
			t.Errorf("segment %d: expected %v, got %v (far y %v)", i, want, sp.Cull, sp.Far.Y)
		}
	}
}

func TestCulledSegmentsAreNeverEmitted(t *testing.T) {
	s := newTestScene()
	track := road.ResetTrack()

	for _, pos := range []float64{0, 37.5, 199.9, 50000, track.Length() - 1} {
		for _, x := range []float64{-1, 0, 0.6} {
			v := models.Vehicle{Position: pos, X: x}
			f := s.Project(track, v)

			for _, sp := range f.Segments {
				if sp.Cull == Visible && sp.Far.Y >= road.CanvasHeight {
					t.Errorf("pos %v: segment %d visible with far y %v", pos, sp.N, sp.Far.Y)
				}
			}

			rec := surface.NewRecorder(road.CanvasWidth, road.CanvasHeight)
			stats := s.Draw(rec, f)
			if got := rec.Count(surface.OpPolygon); got != expectedPolygons(f) {
				t.Errorf("pos %v x %v: expected %d polygons, got %d", pos, x, expectedPolygons(f), got)
			}
			if stats.Drawn+stats.Culled+stats.Degenerate != road.DrawDistance {
				t.Errorf("pos %v: stats do not add up: %+v", pos, stats)
			}
		}
	}
}

func TestNearestGeometryIsEmittedLast(t *testing.T) {
	s := newTestScene()
	f := s.Project(road.ResetTrack(), models.Vehicle{Position: 1234})

	rec := surface.NewRecorder(road.CanvasWidth, road.CanvasHeight)
	s.Draw(rec, f)

	var ys []float64
	for _, c := range rec.Filter(surface.OpPolygon) {
		if isGrass(c.Color) {
			ys = append(ys, c.Points[0].Y)
		}
	}
	if len(ys) == 0 {
		t.Fatal("no grass strips emitted")
	}
	for i := 1; i < len(ys); i++ {
		if ys[i] < ys[i-1] {
			t.Fatalf("strip %d at y=%v emitted after a nearer strip at y=%v", i, ys[i], ys[i-1])
		}
	}

	var nearest SegmentProjection
	for _, sp := range f.Segments {
		if sp.Cull == Visible {
			nearest = sp
			break
		}
	}
	if ys[len(ys)-1] != nearest.NearY {
		t.Errorf("expected the last strip to start at the nearest segment (y=%v), got %v", nearest.NearY, ys[len(ys)-1])
	}
}

func TestNextLapSegmentsStayVisible(t *testing.T) {
	s := newTestScene()
	track := road.ResetTrack()
	v := models.Vehicle{Position: track.Length() - 10*road.SegmentLength}

	f := s.Project(track, v)

	var last, first *SegmentProjection
	for i := range f.Segments {
		switch f.Segments[i].N {
		case road.SegmentCount - 1:
			last = &f.Segments[i]
		case road.SegmentCount:
			first = &f.Segments[i]
		}
	}
	if last == nil || first == nil {
		t.Fatal("expected the window to straddle the end of the lap")
	}
	if first.Segment.Index != 0 {
		t.Errorf("expected segment %d to resolve to index 0, got %d", road.SegmentCount, first.Segment.Index)
	}
	if first.Cull != Visible {
		t.Errorf("expected the next lap to be visible, got %v", first.Cull)
	}
	if first.Near.CameraZ != 10*road.SegmentLength {
		t.Errorf("expected the next lap %v ahead, got %v", 10*road.SegmentLength, first.Near.CameraZ)
	}
	if last.Far.Y != first.Near.Y || last.Far.W != first.Near.W {
		t.Errorf("seam between laps: far %+v near %+v", last.Far, first.Near)
	}
}

func TestProjectDoesNotModifyTrack(t *testing.T) {
	s := newTestScene()
	track := road.ResetTrack()
	before := append([]road.Segment(nil), track.Segments()...)

	s.Project(track, models.Vehicle{Position: 4321, X: 0.3})

	if diff := cmp.Diff(before, track.Segments()); diff != "" {
		t.Errorf("track changed during projection (-before +after):\n%s", diff)
	}
}

func TestLaneDashes(t *testing.T) {
	s := newTestScene()
	f := s.Project(road.ResetTrack(), models.Vehicle{})

	tests := []struct {
		name     string
		sp       SegmentProjection
		polygons int
	}{
		{"dash on", f.Segments[8], 6},
		{"dash off", f.Segments[12], 4},
		{"no lanes", func() SegmentProjection {
			sp := f.Segments[8]
			seg := *sp.Segment
			seg.Palette.Lane = nil
			sp.Segment = &seg
			return sp
		}(), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := surface.NewRecorder(road.CanvasWidth, road.CanvasHeight)
			s.drawSegment(rec, tt.sp)
			if got := rec.Count(surface.OpPolygon); got != tt.polygons {
				t.Errorf("expected %d polygons, got %d", tt.polygons, got)
			}
		})
	}
}

func TestSegmentPolygons(t *testing.T) {
	s := newTestScene()
	sp := SegmentProjection{
		Segment: &road.Segment{Index: 5, Palette: road.Light},
		Near:    camera.Projected{X: 320, W: 100},
		NearY:   400,
		Far:     camera.Projected{X: 320, Y: 300, W: 50},
	}

	rec := surface.NewRecorder(road.CanvasWidth, road.CanvasHeight)
	s.drawSegment(rec, sp)

	polys := rec.Filter(surface.OpPolygon)
	if len(polys) != 4 {
		t.Fatalf("expected 4 polygons, got %d", len(polys))
	}

	want := [][]surface.Point{
		{{X: 0, Y: 400}, {X: 640, Y: 400}, {X: 640, Y: 300}, {X: 0, Y: 300}},
		{{X: 220, Y: 400}, {X: 420, Y: 400}, {X: 370, Y: 300}, {X: 270, Y: 300}},
		{{X: 220, Y: 400}, {X: 240, Y: 400}, {X: 280, Y: 300}, {X: 270, Y: 300}},
		{{X: 400, Y: 400}, {X: 420, Y: 400}, {X: 370, Y: 300}, {X: 360, Y: 300}},
	}
	for i, p := range polys {
		if diff := cmp.Diff(want[i], p.Points); diff != "" {
			t.Errorf("polygon %d (-want +got):\n%s", i, diff)
		}
	}
	if polys[0].Color != road.Light.Grass || polys[1].Color != road.Light.Road || polys[2].Color != road.Light.Rumble {
		t.Error("unexpected polygon colours")
	}
}

func TestSegmentsBehindCameraAreCulled(t *testing.T) {
	s := newTestScene()
	track := road.ResetTrack()

	// the far edge sits on the camera plane, so its projection is also
	// non-finite; behind must win over degenerate
	behind := SegmentProjection{
		N:       7,
		Segment: track.At(7),
		Near:    camera.Projected{CameraZ: -200, Scale: road.CameraDepth / -200, X: 320, Y: 1550, W: 5376},
		Far:     camera.Projected{CameraZ: 0, Scale: math.Inf(1), X: math.NaN(), Y: math.Inf(-1), W: math.Inf(1)},
		NearY:   1550,
	}

	for _, strict := range []bool{false, true} {
		s.Strict = strict
		if got := s.classify(behind); got != CulledBehind {
			t.Errorf("strict=%v: expected %v, got %v", strict, CulledBehind, got)
		}
	}

	behind.Cull = s.classify(behind)
	f := Frame{Segments: []SegmentProjection{behind}}

	rec := surface.NewRecorder(road.CanvasWidth, road.CanvasHeight)
	stats := s.Draw(rec, f)
	if got := rec.Count(surface.OpPolygon); got != 0 {
		t.Errorf("segment behind the camera emitted %d polygons", got)
	}
	if stats.Culled != 1 || stats.Drawn != 0 || stats.Degenerate != 0 {
		t.Errorf("expected one culled segment, got %+v", stats)
	}
}

func TestStrictModePanicsOnDegenerateProjection(t *testing.T) {
	s := newTestScene()
	sp := SegmentProjection{
		N:    7,
		Near: camera.Projected{CameraZ: 0, Scale: math.Inf(1), Y: math.Inf(1)},
		Far:  camera.Projected{CameraZ: 100, Scale: 0.0084, Y: 300},
	}

	if got := s.classify(sp); got != CulledDegenerate {
		t.Errorf("expected degenerate, got %v", got)
	}

	s.Strict = true
	defer func() {
		if recover() == nil {
			t.Error("expected strict mode to panic")
		}
	}()
	s.classify(sp)
}

func TestDrawStats(t *testing.T) {
	s := newTestScene()
	f := s.Project(road.ResetTrack(), models.Vehicle{})

	rec := surface.NewRecorder(road.CanvasWidth, road.CanvasHeight)
	stats := s.Draw(rec, f)

	if stats.Projected != road.DrawDistance {
		t.Errorf("expected %d projected, got %d", road.DrawDistance, stats.Projected)
	}
	if stats.Drawn != road.DrawDistance-4 || stats.Culled != 4 {
		t.Errorf("expected 296 drawn and 4 culled, got %+v", stats)
	}
	if stats.DrawCalls != len(rec.Calls) {
		t.Errorf("expected %d draw calls, got %d", len(rec.Calls), stats.DrawCalls)
	}
	if rec.Calls[0].Op != surface.OpClear {
		t.Errorf("expected the frame to start with a clear, got %v", rec.Calls[0].Op)
	}
	if last := rec.Calls[len(rec.Calls)-1]; last.Op != surface.OpText {
		t.Errorf("expected the HUD to be drawn last, got %v", last.Op)
	}
}
