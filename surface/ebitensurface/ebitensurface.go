// Package ebitensurface draws onto an ebiten image.
package ebitensurface

import (
	"image/color"

	"github.com/golangdaddy/sunsetdrive/surface"
	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface wraps the ebiten screen for one frame. Call Target at the start of
// each Draw before rendering.
type Surface struct {
	dst      *ebiten.Image
	whiteImg *ebiten.Image
	face     text.Face
	vertices []ebiten.Vertex
	indices  []uint16
}

// New creates a surface with no target
func New() *Surface {
	whiteImg := ebiten.NewImage(1, 1)
	whiteImg.Fill(color.White)
	return &Surface{
		whiteImg: whiteImg,
		face:     text.NewGoXFace(bitmapfont.Face),
	}
}

// Target sets the image subsequent draw calls render to
func (s *Surface) Target(dst *ebiten.Image) {
	s.dst = dst
}

// Size implements surface.Surface.
func (s *Surface) Size() (int, int) {
	b := s.dst.Bounds()
	return b.Dx(), b.Dy()
}

// Clear implements surface.Surface.
func (s *Surface) Clear(clr color.Color) {
	s.dst.Fill(clr)
}

// FillPolygon implements surface.Surface.
func (s *Surface) FillPolygon(points []surface.Point, clr color.Color) {
	if len(points) < 3 {
		return
	}

	path := vector.Path{}
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for i := 1; i < len(points); i++ {
		path.LineTo(float32(points[i].X), float32(points[i].Y))
	}
	path.Close()

	s.vertices, s.indices = path.AppendVerticesAndIndicesForFilling(s.vertices[:0], s.indices[:0])
	s.drawVertices(clr)
}

// FillRect implements surface.Surface.
func (s *Surface) FillRect(x, y, w, h float64, clr color.Color) {
	vector.FillRect(s.dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

// StrokeArc implements surface.Surface.
func (s *Surface) StrokeArc(cx, cy, radius, startAngle, endAngle, lineWidth float64, clr color.Color) {
	path := vector.Path{}
	path.Arc(float32(cx), float32(cy), float32(radius), float32(startAngle), float32(endAngle), vector.Clockwise)

	s.vertices, s.indices = path.AppendVerticesAndIndicesForStroke(s.vertices[:0], s.indices[:0], &vector.StrokeOptions{
		Width: float32(lineWidth),
	})
	s.drawVertices(clr)
}

// FillText implements surface.Surface.
func (s *Surface) FillText(str string, x, y, size float64, align surface.Align, clr color.Color) {
	m := s.face.Metrics()
	scale := size / (m.HAscent + m.HDescent)
	width := text.Advance(str, s.face) * scale

	switch align {
	case surface.AlignRight:
		x -= width
	case surface.AlignCenter:
		x -= width / 2
	}

	// text is positioned by its top edge, the caller passes the baseline
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y-m.HAscent*scale)
	op.ColorScale.ScaleWithColor(clr)

	text.Draw(s.dst, str, s.face, op)
}

// vertexColor converts clr to the straight-alpha components ebiten expects
// for vertex colours by default
func vertexColor(clr color.Color) (r, g, b, a float32) {
	c := color.NRGBA64Model.Convert(clr).(color.NRGBA64)
	return float32(c.R) / 0xffff, float32(c.G) / 0xffff, float32(c.B) / 0xffff, float32(c.A) / 0xffff
}

func (s *Surface) drawVertices(clr color.Color) {
	r, g, b, a := vertexColor(clr)
	for i := range s.vertices {
		s.vertices[i].SrcX = 0
		s.vertices[i].SrcY = 0
		s.vertices[i].ColorR = r
		s.vertices[i].ColorG = g
		s.vertices[i].ColorB = b
		s.vertices[i].ColorA = a
	}

	s.dst.DrawTriangles(s.vertices, s.indices, s.whiteImg, &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModeStraightAlpha,
		AntiAlias:      false,
	})
}
