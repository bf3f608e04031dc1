package surface

import "image/color"

// Op identifies the kind of a recorded draw call
type Op int

const (
	OpClear Op = iota
	OpPolygon
	OpRect
	OpArc
	OpText
)

func (o Op) String() string {
	switch o {
	case OpClear:
		return "clear"
	case OpPolygon:
		return "polygon"
	case OpRect:
		return "rect"
	case OpArc:
		return "arc"
	case OpText:
		return "text"
	}
	return "unknown"
}

// Call is a single recorded draw call. Only the fields relevant to Op are set.
type Call struct {
	Op     Op
	Points []Point
	Rect   [4]float64 // x, y, w, h
	Arc    [6]float64 // cx, cy, radius, start, end, lineWidth
	Text   string
	Align  Align
	Color  color.Color
}

// Recorder is a Surface that keeps every draw call in order instead of
// drawing. It is used for tests and for counting draw calls per frame.
type Recorder struct {
	Width  int
	Height int
	Calls  []Call
}

// NewRecorder creates a recorder with the given logical size
func NewRecorder(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

// Reset drops all recorded calls
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

// Size implements Surface.
func (r *Recorder) Size() (int, int) {
	return r.Width, r.Height
}

// Clear implements Surface.
func (r *Recorder) Clear(clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpClear, Color: clr})
}

// FillPolygon implements Surface.
func (r *Recorder) FillPolygon(points []Point, clr color.Color) {
	pts := make([]Point, len(points))
	copy(pts, points)
	r.Calls = append(r.Calls, Call{Op: OpPolygon, Points: pts, Color: clr})
}

// FillRect implements Surface.
func (r *Recorder) FillRect(x, y, w, h float64, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpRect, Rect: [4]float64{x, y, w, h}, Color: clr})
}

// StrokeArc implements Surface.
func (r *Recorder) StrokeArc(cx, cy, radius, startAngle, endAngle, lineWidth float64, clr color.Color) {
	r.Calls = append(r.Calls, Call{
		Op:    OpArc,
		Arc:   [6]float64{cx, cy, radius, startAngle, endAngle, lineWidth},
		Color: clr,
	})
}

// FillText implements Surface.
func (r *Recorder) FillText(str string, x, y, size float64, align Align, clr color.Color) {
	r.Calls = append(r.Calls, Call{
		Op:    OpText,
		Rect:  [4]float64{x, y, 0, size},
		Text:  str,
		Align: align,
		Color: clr,
	})
}

// Count returns how many calls of kind op were recorded
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Filter returns the recorded calls of kind op, in order
func (r *Recorder) Filter(op Op) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}
