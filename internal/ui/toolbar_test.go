package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eva-Wamuyu/Pixel/internal/sketch"
)

func TestColorSwatchTapInvokesCallback(t *testing.T) {
	test.NewApp()
	var got color.Color
	sw := newColorSwatch(color.NRGBA{R: 0xff, A: 0xff}, func(c color.Color) { got = c })

	test.Tap(sw)

	assert.Equal(t, color.NRGBA{R: 0xff, A: 0xff}, got)
}

func TestColorSwatchNilCallback(t *testing.T) {
	test.NewApp()
	sw := newColorSwatch(color.Black, nil)
	assert.NotPanics(t, func() { test.Tap(sw) })
}

func TestToolLabel(t *testing.T) {
	assert.Equal(t, "Freehand", toolLabel(sketch.ToolFreehand))
	assert.Equal(t, "Line", toolLabel(sketch.ToolLine))
	assert.Equal(t, "Rectangle", toolLabel(sketch.ToolRectangle))
	assert.Equal(t, "Circle", toolLabel(sketch.ToolCircle))
}

func TestToolbarRadioDrivesPad(t *testing.T) {
	a := test.NewApp()
	pad, err := NewSketchPad(50, 50)
	require.NoError(t, err)
	win := test.NewWindow(nil)
	defer win.Close()

	bar := NewToolbar(pad, a.Preferences(), win).(*fyne.Container)
	top := bar.Objects[0].(*fyne.Container)
	radio := top.Objects[1].(*widget.RadioGroup)

	assert.Equal(t, "Freehand", radio.Selected)

	radio.SetSelected("Circle")
	assert.Equal(t, sketch.ToolCircle, pad.Tool())
	assert.Equal(t, "circle", a.Preferences().String(prefTool))

	radio.SetSelected("Rectangle")
	assert.Equal(t, sketch.ToolRectangle, pad.Tool())
}
