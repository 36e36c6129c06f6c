package sketch

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSurface(t *testing.T, w, h int) *Surface {
	t.Helper()
	s, err := NewSurface(w, h)
	require.NoError(t, err)
	return s
}

func drawnAt(s *Surface, x, y int) bool {
	_, _, _, a := s.Image().At(x, y).RGBA()
	return a > 0
}

// paintedBounds is the bounding box of every pixel carrying any alpha.
func paintedBounds(s *Surface) image.Rectangle {
	var box image.Rectangle
	b := s.Image().Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if drawnAt(s, x, y) {
				px := image.Rect(x, y, x+1, y+1)
				if box.Empty() {
					box = px
				} else {
					box = box.Union(px)
				}
			}
		}
	}
	return box
}

func TestNewSurfaceRejectsBadSize(t *testing.T) {
	_, err := NewSurface(0, 100)
	assert.Error(t, err)
	_, err = NewSurface(100, -1)
	assert.Error(t, err)
}

func TestNewSurfaceStartsTransparent(t *testing.T) {
	s := newTestSurface(t, 20, 20)
	assert.False(t, drawnAt(s, 0, 0))
	assert.False(t, drawnAt(s, 10, 10))
	assert.False(t, drawnAt(s, 19, 19))
}

func TestCircleCenteredOnStart(t *testing.T) {
	s := newTestSurface(t, 100, 100)
	s.Draw(ToolCircle, Point{X: 50, Y: 50}, Point{X: 80, Y: 50})

	// A radius 30 ring around the start point.
	assert.True(t, drawnAt(s, 80, 50))
	assert.True(t, drawnAt(s, 20, 50))
	assert.True(t, drawnAt(s, 50, 80))
	assert.True(t, drawnAt(s, 50, 20))
	// The center stays hollow and points well away from the ring stay
	// clean.
	assert.False(t, drawnAt(s, 50, 50))
	assert.False(t, drawnAt(s, 90, 50))
}

func TestCircleRadiusFromDiagonal(t *testing.T) {
	s := newTestSurface(t, 100, 100)
	// Distance from (50,50) to (53,54) is 5.
	s.Draw(ToolCircle, Point{X: 50, Y: 50}, Point{X: 53, Y: 54})
	assert.True(t, drawnAt(s, 55, 50))
	assert.True(t, drawnAt(s, 45, 50))
	assert.False(t, drawnAt(s, 60, 50))
}

func TestRectangleNegativeExtents(t *testing.T) {
	neg := newTestSurface(t, 40, 40)
	neg.Draw(ToolRectangle, Point{X: 10, Y: 10}, Point{X: 5, Y: 5})

	pos := newTestSurface(t, 40, 40)
	pos.Draw(ToolRectangle, Point{X: 5, Y: 5}, Point{X: 10, Y: 10})

	// Dragging up-left of the start corner paints the same outline as
	// the normalized drag.
	assert.Equal(t, paintedBounds(pos), paintedBounds(neg))
	assert.True(t, drawnAt(neg, 7, 5))
	assert.True(t, drawnAt(neg, 7, 10))
	assert.True(t, drawnAt(neg, 5, 7))
	assert.True(t, drawnAt(neg, 10, 7))
	assert.False(t, drawnAt(neg, 20, 20))
}

func TestLineBetweenPoints(t *testing.T) {
	s := newTestSurface(t, 100, 100)
	s.Draw(ToolLine, Point{X: 10, Y: 10}, Point{X: 90, Y: 90})
	assert.True(t, drawnAt(s, 10, 10))
	assert.True(t, drawnAt(s, 50, 50))
	assert.True(t, drawnAt(s, 90, 90))
	assert.False(t, drawnAt(s, 90, 10))
}

func TestFreehandSegmentsChain(t *testing.T) {
	s := newTestSurface(t, 100, 100)
	s.StrokeSegment(Point{X: 10, Y: 50}, Point{X: 30, Y: 50})
	s.StrokeSegment(Point{X: 30, Y: 50}, Point{X: 50, Y: 50})
	assert.True(t, drawnAt(s, 20, 50))
	assert.True(t, drawnAt(s, 40, 50))
	assert.False(t, drawnAt(s, 70, 50))
}

func TestFillFloodsAndResets(t *testing.T) {
	s := newTestSurface(t, 30, 30)
	s.Fill(color.NRGBA{R: 0xff, A: 0xff})
	r, _, _, a := s.Image().At(15, 15).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), a)

	// A transparent fill zeroes the pixels instead of blending over them.
	s.Fill(color.NRGBA{})
	assert.False(t, drawnAt(s, 15, 15))
	assert.False(t, drawnAt(s, 0, 0))
}

func TestStrokeWidthFloor(t *testing.T) {
	s := newTestSurface(t, 10, 10)
	s.SetStrokeWidth(0)
	assert.Equal(t, 1.0, s.StrokeWidth())
}

func TestEncodeRoundTrip(t *testing.T) {
	// An opaque base keeps every pixel at full alpha, so the PNG round
	// trip must reproduce the buffer byte for byte.
	s := newTestSurface(t, 64, 64)
	s.Fill(color.NRGBA{R: 0xfa, G: 0xfa, B: 0xf0, A: 0xff})
	s.SetStrokeColor(color.NRGBA{R: 0x20, G: 0x90, B: 0xff, A: 0xff})
	s.Draw(ToolCircle, Point{X: 32, Y: 32}, Point{X: 52, Y: 32})
	s.StrokeSegment(Point{X: 5, Y: 5}, Point{X: 60, Y: 12})

	data, err := s.Encode()
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	restored := newTestSurface(t, 64, 64)
	restored.SetImage(img)
	assert.Equal(t, s.Image().Pix, restored.Image().Pix)
}

func TestSetImageOverwritesEverything(t *testing.T) {
	s := newTestSurface(t, 20, 20)
	s.Fill(color.NRGBA{R: 0xff, A: 0xff})

	blank := image.NewRGBA(image.Rect(0, 0, 20, 20))
	s.SetImage(blank)
	assert.False(t, drawnAt(s, 10, 10))
}
