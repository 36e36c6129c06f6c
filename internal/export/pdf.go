package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// PDFName is the suggested filename for document downloads.
const PDFName = "sketchy.pdf"

// WritePDF lays the flattened canvas onto a landscape A4 page, scaled to
// fit inside the margins and centered.
func WritePDF(w io.Writer, img image.Image) error {
	flat := flatten(img)

	var buf bytes.Buffer
	if err := png.Encode(&buf, flat); err != nil {
		return fmt.Errorf("export: pdf raster: %w", err)
	}

	p := gofpdf.New("L", "mm", "A4", "")
	p.AddPage()

	const margin = 10.0
	pageW, pageH := p.GetPageSize()
	maxW := pageW - 2*margin
	maxH := pageH - 2*margin

	b := flat.Bounds()
	scale := maxW / float64(b.Dx())
	if s := maxH / float64(b.Dy()); s < scale {
		scale = s
	}
	drawW := float64(b.Dx()) * scale
	drawH := float64(b.Dy()) * scale

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader("canvas", opts, &buf)
	p.ImageOptions("canvas", (pageW-drawW)/2, (pageH-drawH)/2, drawW, drawH, false, opts, 0, "")

	if err := p.Output(w); err != nil {
		return fmt.Errorf("export: pdf: %w", err)
	}
	return nil
}
