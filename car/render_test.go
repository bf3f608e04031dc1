package car

import (
	"testing"

	"github.com/golangdaddy/sunsetdrive/surface"
	"github.com/google/go-cmp/cmp"
)

func TestRenderCar(t *testing.T) {
	rec := surface.NewRecorder(640, 480)
	RenderCar(rec)

	var got [][4]float64
	for _, c := range rec.Filter(surface.OpRect) {
		got = append(got, c.Rect)
	}
	want := [][4]float64{
		{280, 420, 80, 20}, // body
		{300, 412, 40, 8},  // roof
		{300, 420, 40, 8},  // window
		{275, 432, 10, 8},  // left wheel
		{355, 432, 10, 8},  // right wheel
		{285, 420, 10, 5},  // left light
		{345, 420, 10, 5},  // right light
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected car rects (-want +got):\n%s", diff)
	}
	if len(rec.Calls) != len(want) {
		t.Errorf("expected only rect calls, got %d calls", len(rec.Calls))
	}
}
