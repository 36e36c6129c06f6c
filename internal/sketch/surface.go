package sketch

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	"github.com/fogleman/gg"
)

// Surface is the raster the tools draw on. The backing image is allocated
// once and mutated in place so a display raster can alias it for the
// lifetime of the surface.
type Surface struct {
	img *image.RGBA
	dc  *gg.Context

	strokeColor color.Color
	strokeWidth float64
}

// NewSurface allocates a transparent w by h surface.
func NewSurface(w, h int) (*Surface, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("sketch: invalid surface size %dx%d", w, h)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	return &Surface{
		img:         img,
		dc:          gg.NewContextForRGBA(img),
		strokeColor: color.NRGBA{A: 0xff},
		strokeWidth: 2,
	}, nil
}

// Image returns the backing raster. The pointer stays valid for the
// lifetime of the surface.
func (s *Surface) Image() *image.RGBA { return s.img }

// Size reports the surface dimensions in pixels.
func (s *Surface) Size() (w, h int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Surface) SetStrokeColor(c color.Color) { s.strokeColor = c }

func (s *Surface) SetStrokeWidth(w float64) {
	if w < 1 {
		w = 1
	}
	s.strokeWidth = w
}

func (s *Surface) StrokeColor() color.Color { return s.strokeColor }

func (s *Surface) StrokeWidth() float64 { return s.strokeWidth }

// Fill floods the whole surface with c, erasing everything. Filling with
// a transparent color resets the pixels to transparent.
func (s *Surface) Fill(c color.Color) {
	s.dc.SetColor(c)
	s.dc.Clear()
}

// StrokeSegment draws one freehand increment from a to b with the current
// pen. Round caps keep dense segment chains smooth.
func (s *Surface) StrokeSegment(a, b Point) {
	s.pen()
	s.dc.DrawLine(a.X, a.Y, b.X, b.Y)
	s.dc.Stroke()
}

// Draw renders a single shape from start to end with the current pen.
//
// Rectangles keep the sign of their extents, dragging up or left of the
// start corner draws in that direction. Circles are centered on start
// with the radius running out to end.
func (s *Surface) Draw(tool Tool, start, end Point) {
	s.pen()
	switch tool {
	case ToolRectangle:
		s.dc.DrawRectangle(start.X, start.Y, end.X-start.X, end.Y-start.Y)
	case ToolCircle:
		s.dc.DrawCircle(start.X, start.Y, math.Hypot(end.X-start.X, end.Y-start.Y))
	default:
		s.dc.DrawLine(start.X, start.Y, end.X, end.Y)
	}
	s.dc.Stroke()
}

func (s *Surface) pen() {
	s.dc.SetColor(s.strokeColor)
	s.dc.SetLineWidth(s.strokeWidth)
	s.dc.SetLineCap(gg.LineCapRound)
	s.dc.SetLineJoin(gg.LineJoinRound)
}

// Encode returns the current pixels as a PNG.
func (s *Surface) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, s.img); err != nil {
		return nil, fmt.Errorf("sketch: encode snapshot: %w", err)
	}
	return buf.Bytes(), nil
}

// SetImage replaces every pixel with src, clearing whatever was drawn.
// Snapshots always cover the whole surface, so src is expected to match
// its bounds.
func (s *Surface) SetImage(src image.Image) {
	draw.Draw(s.img, s.img.Bounds(), src, src.Bounds().Min, draw.Src)
}

// Clone returns an independent copy of the current pixels.
func (s *Surface) Clone() *image.RGBA {
	out := image.NewRGBA(s.img.Bounds())
	copy(out.Pix, s.img.Pix)
	return out
}
