package ui

import (
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/Eva-Wamuyu/Pixel/internal/sketch"
)

// penColors is the stroke palette.
var penColors = []color.Color{
	color.NRGBA{A: 0xff},                            // Black
	color.NRGBA{R: 0xe5, G: 0x39, B: 0x35, A: 0xff}, // Red
	color.NRGBA{R: 0x1e, G: 0x88, B: 0xe5, A: 0xff}, // Blue
	color.NRGBA{R: 0x43, G: 0xa0, B: 0x47, A: 0xff}, // Green
	color.NRGBA{R: 0xfb, G: 0x8c, B: 0x00, A: 0xff}, // Orange
	color.NRGBA{R: 0x8e, G: 0x24, B: 0xaa, A: 0xff}, // Purple
	color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, // White
}

// backgroundColors is the fill palette applied by clear. The last entry
// resets the canvas to transparent.
var backgroundColors = []color.Color{
	color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, // White
	color.NRGBA{R: 0xff, G: 0xf9, B: 0xc4, A: 0xff}, // Paper yellow
	color.NRGBA{R: 0xe3, G: 0xf2, B: 0xfd, A: 0xff}, // Light blue
	color.NRGBA{R: 0x26, G: 0x32, B: 0x38, A: 0xff}, // Slate
	color.NRGBA{},                                   // Transparent
}

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(28, 28))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

func toolLabel(t sketch.Tool) string {
	name := t.String()
	return strings.ToUpper(name[:1]) + name[1:]
}

// --- The Main Toolbar ---
func NewToolbar(pad *SketchPad, prefs fyne.Preferences, win fyne.Window) fyne.CanvasObject {
	// Tool selector
	labels := []string{
		toolLabel(sketch.ToolFreehand),
		toolLabel(sketch.ToolLine),
		toolLabel(sketch.ToolRectangle),
		toolLabel(sketch.ToolCircle),
	}
	tools := widget.NewRadioGroup(labels, func(sel string) {
		t := sketch.ParseTool(strings.ToLower(sel))
		pad.SelectTool(t)
		prefs.SetString(prefTool, t.String())
	})
	tools.Horizontal = true
	tools.Required = true
	tools.SetSelected(toolLabel(pad.Tool()))

	// --- Stroke Width Slider ---
	widthSlider := widget.NewSlider(1.0, 24.0)
	widthSlider.SetValue(pad.StrokeWidth())
	widthSlider.OnChanged = func(val float64) {
		pad.SetStrokeWidth(val)
		prefs.SetFloat(prefStrokeWidth, val)
	}
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(130, 35)), widthSlider)

	// --- Color Palettes ---
	penBox := container.NewHBox()
	for _, c := range penColors {
		penBox.Add(newColorSwatch(c, func(c color.Color) {
			pad.SetStrokeColor(c)
			prefs.SetString(prefStrokeColor, colorToHex(c))
		}))
	}

	backgroundBox := container.NewHBox()
	for _, c := range backgroundColors {
		backgroundBox.Add(newColorSwatch(c, func(c color.Color) {
			pad.SetBackgroundColor(c)
			prefs.SetString(prefBackground, colorToHex(c))
		}))
	}

	// --- History and Export Actions ---
	actions := widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentUndoIcon(), pad.Undo),
		widget.NewToolbarAction(theme.ContentRedoIcon(), pad.Redo),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DeleteIcon(), pad.Clear),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() { savePNG(pad, win) }),
		widget.NewToolbarAction(theme.DocumentPrintIcon(), func() { savePDF(pad, win) }),
	)

	// --- Assemble everything ---
	top := container.NewHBox(
		widget.NewLabel("Tool:"),
		tools,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderContainer,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		penBox,
		layout.NewSpacer(),
	)
	bottom := container.NewHBox(
		widget.NewLabel("Background:"),
		backgroundBox,
		layout.NewSpacer(),
		actions,
	)
	return container.NewVBox(top, bottom)
}
