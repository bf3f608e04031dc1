// Package road holds the looped track of flat, straight road segments.
package road

// WorldPoint is a position in world space. Y is elevation and Z is the
// distance along the track.
type WorldPoint struct {
	X float64
	Y float64
	Z float64
}

// Segment represents a single slice of road between a near edge P1 and a far
// edge P2. Segments are never modified after the track is built.
type Segment struct {
	Index   int
	P1      WorldPoint // near edge
	P2      WorldPoint // far edge
	Palette Palette
}

// Track is the ordered, logically circular sequence of segments
type Track struct {
	segments []Segment
}

// ResetTrack builds a fresh track of SegmentCount segments.
// The whole sequence is rebuilt; there is no partial mutation.
func ResetTrack() *Track {
	segments := make([]Segment, SegmentCount)
	for n := range segments {
		segments[n] = Segment{
			Index:   n,
			P1:      WorldPoint{Z: float64(n) * SegmentLength},
			P2:      WorldPoint{Z: float64(n+1) * SegmentLength},
			Palette: PaletteFor(n),
		}
	}
	return &Track{segments: segments}
}

// Len returns the number of segments in one lap
func (t *Track) Len() int {
	return len(t.segments)
}

// Length returns the world-z length of one lap
func (t *Track) Length() float64 {
	return float64(len(t.segments)) * SegmentLength
}

// At resolves n modulo the track length, so n may run past the end of the lap
// (or before its start) and still hit a segment.
func (t *Track) At(n int) *Segment {
	i := n % len(t.segments)
	if i < 0 {
		i += len(t.segments)
	}
	return &t.segments[i]
}

// Segments returns the underlying segment slice. Callers must not modify it.
func (t *Track) Segments() []Segment {
	return t.segments
}

// SegmentIndexAt returns the (unwrapped) segment number containing world z
func SegmentIndexAt(z float64) int {
	n := int(z / SegmentLength)
	if z < 0 && float64(n)*SegmentLength != z {
		n--
	}
	return n
}
