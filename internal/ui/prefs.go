package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"

	"github.com/Eva-Wamuyu/Pixel/internal/sketch"
)

// Preference keys. Values are written on every toolbar change so the next
// launch starts where the last one stopped.
const (
	prefTool        = "tool"
	prefStrokeColor = "strokeColor"
	prefStrokeWidth = "strokeWidth"
	prefBackground  = "backgroundColor"
)

// loadPrefs applies persisted settings onto a fresh pad. Missing or
// malformed values leave the pad's defaults alone.
func loadPrefs(prefs fyne.Preferences, pad *SketchPad) {
	pad.tool = sketch.ParseTool(prefs.StringWithFallback(prefTool, sketch.ToolFreehand.String()))
	if c, ok := parseHexColor(prefs.StringWithFallback(prefStrokeColor, "")); ok {
		pad.surface.SetStrokeColor(c)
	}
	if w := prefs.FloatWithFallback(prefStrokeWidth, 0); w >= 1 {
		pad.surface.SetStrokeWidth(w)
	}
	if c, ok := parseHexColor(prefs.StringWithFallback(prefBackground, "")); ok {
		pad.background = c
	}
}

// colorToHex encodes c as #rrggbbaa for preference storage. Components
// are straight alpha, parseHexColor reverses the encoding exactly.
func colorToHex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// parseHexColor decodes #rrggbb or #rrggbbaa. ok is false for anything
// else.
func parseHexColor(s string) (color.NRGBA, bool) {
	var r, g, b, a uint8
	switch len(s) {
	case 9:
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			return color.NRGBA{}, false
		}
	case 7:
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
			return color.NRGBA{}, false
		}
		a = 0xff
	default:
		return color.NRGBA{}, false
	}
	return color.NRGBA{R: r, G: g, B: b, A: a}, true
}
