package ui

import (
	"image"
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"github.com/Eva-Wamuyu/Pixel/internal/history"
	"github.com/Eva-Wamuyu/Pixel/internal/sketch"
)

// SketchPad is the interactive canvas. Pointer and touch input rasterize
// onto a fixed size surface and every completed gesture pushes a snapshot
// into the history log.
type SketchPad struct {
	widget.BaseWidget

	surface  *sketch.Surface
	baseline *image.RGBA // pixels of the last committed snapshot
	raster   *canvas.Raster

	hist     *history.Log
	restorer *history.Restorer

	tool       sketch.Tool
	background color.Color

	drawing bool
	start   sketch.Point
	last    sketch.Point

	// OnStatus receives one line status updates when set.
	OnStatus func(string)
}

var _ fyne.Widget = (*SketchPad)(nil)
var _ fyne.Draggable = (*SketchPad)(nil)
var _ desktop.Mouseable = (*SketchPad)(nil)
var _ desktop.Hoverable = (*SketchPad)(nil)
var _ mobile.Touchable = (*SketchPad)(nil)

// NewSketchPad builds a pad with a w by h pixel surface and records the
// blank state as the history floor.
func NewSketchPad(w, h int) (*SketchPad, error) {
	surface, err := sketch.NewSurface(w, h)
	if err != nil {
		return nil, err
	}
	p := &SketchPad{
		surface:    surface,
		hist:       history.NewLog(history.DefaultCapacity),
		tool:       sketch.ToolFreehand,
		background: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}
	p.restorer = &history.Restorer{
		Apply: p.applyRestore,
		Run:   fyne.Do,
	}
	p.raster = canvas.NewRasterFromImage(surface.Image())
	p.baseline = surface.Clone()
	p.ExtendBaseWidget(p)
	p.pushSnapshot("init")
	return p, nil
}

// toSurface maps a widget local position to surface pixels. The widget
// may be stretched by layout, so positions scale by the size ratio.
func (p *SketchPad) toSurface(pos fyne.Position) sketch.Point {
	sw, sh := p.surface.Size()
	size := p.Size()
	sx, sy := 1.0, 1.0
	if size.Width > 0 {
		sx = float64(sw) / float64(size.Width)
	}
	if size.Height > 0 {
		sy = float64(sh) / float64(size.Height)
	}
	return sketch.Point{X: float64(pos.X) * sx, Y: float64(pos.Y) * sy}
}

func (p *SketchPad) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		p.begin(p.toSurface(e.Position))
	}
}

func (p *SketchPad) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		p.commit()
	}
}

func (p *SketchPad) Dragged(e *fyne.DragEvent) {
	if p.drawing {
		p.move(p.toSurface(e.Position))
	}
}

// DragEnd carries no position. The gesture's tracked last point already
// holds the final coordinates.
func (p *SketchPad) DragEnd() {
	p.commit()
}

// MouseOut commits a gesture still in flight when the pointer leaves the
// pad, again from the tracked position.
func (p *SketchPad) MouseOut() {
	p.commit()
}

func (p *SketchPad) TouchDown(e *mobile.TouchEvent) {
	p.begin(p.toSurface(e.Position))
}

func (p *SketchPad) TouchUp(e *mobile.TouchEvent) {
	if p.drawing {
		p.move(p.toSurface(e.Position))
	}
	p.commit()
}

// TouchCancel ends the gesture like a release when the system takes the
// touch stream away.
func (p *SketchPad) TouchCancel(*mobile.TouchEvent) {
	p.commit()
}

func (p *SketchPad) begin(pt sketch.Point) {
	p.drawing = true
	p.start = pt
	p.last = pt
}

func (p *SketchPad) move(pt sketch.Point) {
	if !p.drawing {
		return
	}
	switch p.tool {
	case sketch.ToolFreehand:
		p.surface.StrokeSegment(p.last, pt)
	default:
		// Shape preview: rewind to the committed pixels, then draw the
		// candidate shape at its current extent.
		p.surface.SetImage(p.baseline)
		p.surface.Draw(p.tool, p.start, pt)
	}
	p.last = pt
	p.raster.Refresh()
}

func (p *SketchPad) commit() {
	if !p.drawing {
		return
	}
	if p.tool != sketch.ToolFreehand {
		p.surface.SetImage(p.baseline)
		p.surface.Draw(p.tool, p.start, p.last)
	}
	p.drawing = false
	p.pushSnapshot(p.tool.String())
	p.raster.Refresh()
}

func (p *SketchPad) pushSnapshot(action string) {
	// The surface just changed, any restore still decoding is stale.
	p.restorer.Invalidate()
	data, err := p.surface.Encode()
	if err != nil {
		log.Printf("[pad] snapshot after %s: %v", action, err)
		return
	}
	snap := history.NewSnapshot(data)
	p.hist.Push(snap)
	p.baseline = p.surface.Clone()
	log.Printf("[pad] %s recorded as snapshot %s, history %d", action, snap.ID, p.hist.Len())
}

func (p *SketchPad) applyRestore(img image.Image) {
	p.surface.SetImage(img)
	p.baseline = p.surface.Clone()
	p.raster.Refresh()
}

// SelectTool switches the active drawing tool.
func (p *SketchPad) SelectTool(t sketch.Tool) {
	p.tool = t
	p.setStatus("Tool: " + t.String())
}

// Tool returns the active drawing tool.
func (p *SketchPad) Tool() sketch.Tool {
	return p.tool
}

// SetStrokeColor changes the pen color for subsequent strokes. History
// stays untouched, undoing never changes the pen.
func (p *SketchPad) SetStrokeColor(c color.Color) {
	p.surface.SetStrokeColor(c)
}

// StrokeColor returns the active pen color.
func (p *SketchPad) StrokeColor() color.Color {
	return p.surface.StrokeColor()
}

// SetStrokeWidth changes the pen width for subsequent strokes.
func (p *SketchPad) SetStrokeWidth(w float64) {
	p.surface.SetStrokeWidth(w)
}

// StrokeWidth returns the active pen width.
func (p *SketchPad) StrokeWidth() float64 {
	return p.surface.StrokeWidth()
}

// SetBackgroundColor repaints the whole canvas with c and records the
// result as a new history state.
func (p *SketchPad) SetBackgroundColor(c color.Color) {
	p.background = c
	p.surface.Fill(c)
	p.drawing = false
	p.pushSnapshot("background")
	p.raster.Refresh()
	p.setStatus("Background changed")
}

// Clear wipes the canvas to the current background color and records the
// result as a new history state.
func (p *SketchPad) Clear() {
	p.surface.Fill(p.background)
	p.drawing = false
	p.pushSnapshot("clear")
	p.raster.Refresh()
	p.setStatus("Canvas cleared")
}

// Undo steps the canvas back one snapshot. With only the floor state in
// history nothing happens.
func (p *SketchPad) Undo() {
	snap, ok := p.hist.Undo()
	if !ok {
		p.setStatus("Nothing to undo")
		return
	}
	p.restorer.Restore(snap)
	p.setStatus("Undo")
}

// Redo reapplies the most recently undone snapshot, if any.
func (p *SketchPad) Redo() {
	snap, ok := p.hist.Redo()
	if !ok {
		p.setStatus("Nothing to redo")
		return
	}
	p.restorer.Restore(snap)
	p.setStatus("Redo")
}

// Image exposes the live raster for export.
func (p *SketchPad) Image() image.Image {
	return p.surface.Image()
}

func (p *SketchPad) setStatus(text string) {
	if p.OnStatus != nil {
		p.OnStatus(text)
	}
}

func (p *SketchPad) CreateRenderer() fyne.WidgetRenderer {
	r := &sketchPadRenderer{pad: p}
	r.background = canvas.NewRectangle(color.White)
	return r
}

type sketchPadRenderer struct {
	pad        *SketchPad
	background *canvas.Rectangle
}

func (r *sketchPadRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.pad.raster}
}

func (r *sketchPadRenderer) Refresh() {
	canvas.Refresh(r.pad)
}

func (p *SketchPad) MouseIn(*desktop.MouseEvent)    {}
func (p *SketchPad) MouseMoved(*desktop.MouseEvent) {}
func (r *sketchPadRenderer) Destroy()               {}
func (r *sketchPadRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.pad.raster.Resize(size)
}
func (r *sketchPadRenderer) MinSize() fyne.Size {
	return fyne.NewSize(320, 240)
}
