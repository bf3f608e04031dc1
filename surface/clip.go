package surface

// ClipPolygon clips a polygon against the rectangle [0,w]x[0,h] using
// Sutherland-Hodgman. The result is empty when the polygon lies fully outside.
func ClipPolygon(points []Point, w, h float64) []Point {
	out := points
	edges := []struct {
		inside func(p Point) bool
		cross  func(a, b Point) Point
	}{
		{
			inside: func(p Point) bool { return p.X >= 0 },
			cross:  func(a, b Point) Point { return intersectX(a, b, 0) },
		},
		{
			inside: func(p Point) bool { return p.X <= w },
			cross:  func(a, b Point) Point { return intersectX(a, b, w) },
		},
		{
			inside: func(p Point) bool { return p.Y >= 0 },
			cross:  func(a, b Point) Point { return intersectY(a, b, 0) },
		},
		{
			inside: func(p Point) bool { return p.Y <= h },
			cross:  func(a, b Point) Point { return intersectY(a, b, h) },
		},
	}

	for _, e := range edges {
		if len(out) == 0 {
			return nil
		}
		in := out
		out = make([]Point, 0, len(in)+2)
		prev := in[len(in)-1]
		for _, cur := range in {
			switch {
			case e.inside(cur) && e.inside(prev):
				out = append(out, cur)
			case e.inside(cur):
				out = append(out, e.cross(prev, cur), cur)
			case e.inside(prev):
				out = append(out, e.cross(prev, cur))
			}
			prev = cur
		}
	}
	return out
}

func intersectX(a, b Point, x float64) Point {
	t := (x - a.X) / (b.X - a.X)
	return Point{X: x, Y: a.Y + t*(b.Y-a.Y)}
}

func intersectY(a, b Point, y float64) Point {
	t := (y - a.Y) / (b.Y - a.Y)
	return Point{X: a.X + t*(b.X-a.X), Y: y}
}
