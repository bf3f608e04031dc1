// Package raster draws into an in-memory RGBA image without a window. It backs
// the snapshot tool and any test that needs real pixels.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/golangdaddy/sunsetdrive/surface"
	"github.com/hajimehoshi/bitmapfont/v4"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// arcSteps is the number of line segments used per half turn of an arc
const arcSteps = 48

// Surface is a software surface backed by an *image.RGBA
type Surface struct {
	img  *image.RGBA
	ras  *vector.Rasterizer
	face font.Face
}

// New creates a surface of the given size, initially transparent
func New(width, height int) *Surface {
	return &Surface{
		img:  image.NewRGBA(image.Rect(0, 0, width, height)),
		ras:  vector.NewRasterizer(width, height),
		face: bitmapfont.Face,
	}
}

// Image returns the backing image
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// Size implements surface.Surface.
func (s *Surface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear implements surface.Surface.
func (s *Surface) Clear(clr color.Color) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(clr), image.Point{}, draw.Src)
}

// FillPolygon implements surface.Surface.
func (s *Surface) FillPolygon(points []surface.Point, clr color.Color) {
	w, h := s.Size()
	points = surface.ClipPolygon(points, float64(w), float64(h))
	if len(points) < 3 {
		return
	}

	s.ras.Reset(w, h)
	s.ras.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		s.ras.LineTo(float32(p.X), float32(p.Y))
	}
	s.ras.ClosePath()
	s.ras.Draw(s.img, s.img.Bounds(), image.NewUniform(clr), image.Point{})
}

// FillRect implements surface.Surface.
func (s *Surface) FillRect(x, y, w, h float64, clr color.Color) {
	r := image.Rect(
		int(math.Round(x)), int(math.Round(y)),
		int(math.Round(x+w)), int(math.Round(y+h)),
	).Intersect(s.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(s.img, r, image.NewUniform(clr), image.Point{}, draw.Over)
}

// StrokeArc implements surface.Surface. The stroke is built as a closed ring
// from the outer edge forward and the inner edge back.
func (s *Surface) StrokeArc(cx, cy, radius, startAngle, endAngle, lineWidth float64, clr color.Color) {
	sweep := endAngle - startAngle
	if sweep <= 0 {
		return
	}
	steps := int(math.Ceil(sweep / math.Pi * arcSteps))
	if steps < 1 {
		steps = 1
	}

	outer := radius + lineWidth/2
	inner := radius - lineWidth/2
	ring := make([]surface.Point, 0, 2*(steps+1))
	for i := 0; i <= steps; i++ {
		a := startAngle + sweep*float64(i)/float64(steps)
		ring = append(ring, surface.Point{X: cx + outer*math.Cos(a), Y: cy + outer*math.Sin(a)})
	}
	for i := steps; i >= 0; i-- {
		a := startAngle + sweep*float64(i)/float64(steps)
		ring = append(ring, surface.Point{X: cx + inner*math.Cos(a), Y: cy + inner*math.Sin(a)})
	}
	s.FillPolygon(ring, clr)
}

// FillText implements surface.Surface. The bitmap font is drawn at its native
// size and scaled with nearest neighbour to keep the pixel look.
func (s *Surface) FillText(str string, x, y, size float64, align surface.Align, clr color.Color) {
	if str == "" {
		return
	}
	m := s.face.Metrics()
	ascent := m.Ascent.Ceil()
	native := ascent + m.Descent.Ceil()
	width := font.MeasureString(s.face, str).Ceil()
	if width <= 0 || native <= 0 {
		return
	}

	glyphs := image.NewRGBA(image.Rect(0, 0, width, native))
	d := &font.Drawer{
		Dst:  glyphs,
		Src:  image.NewUniform(clr),
		Face: s.face,
		Dot:  fixed.P(0, ascent),
	}
	d.DrawString(str)

	scale := size / float64(native)
	dw := float64(width) * scale
	switch align {
	case surface.AlignRight:
		x -= dw
	case surface.AlignCenter:
		x -= dw / 2
	}
	top := y - float64(ascent)*scale

	dr := image.Rect(
		int(math.Round(x)), int(math.Round(top)),
		int(math.Round(x+dw)), int(math.Round(top+float64(native)*scale)),
	)
	draw.NearestNeighbor.Scale(s.img, dr, glyphs, glyphs.Bounds(), draw.Over, nil)
}

// Encode writes the image as PNG to w
func (s *Surface) Encode(w io.Writer) error {
	return png.Encode(w, s.img)
}

// WritePNG saves the image to path
func (s *Surface) WritePNG(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	if err := s.Encode(file); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
