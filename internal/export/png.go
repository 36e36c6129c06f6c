package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
)

// PNGName is the suggested filename for image downloads.
const PNGName = "sketchy.png"

// flatten composites img onto an opaque white sheet. Transparent canvas
// regions come out white, the output never carries alpha below 255.
func flatten(img image.Image) *image.RGBA {
	out := image.NewRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Over)
	return out
}

// WritePNG writes img to w as an opaque PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, flatten(img)); err != nil {
		return fmt.Errorf("export: png: %w", err)
	}
	return nil
}
