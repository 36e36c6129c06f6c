package ui

import (
	"io"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/Eva-Wamuyu/Pixel/internal/export"
)

const appID = "com.github.eva-wamuyu.pixel"

// RunApp builds the main window around the pad and blocks until the
// window closes.
func RunApp(pad *SketchPad) {
	myApp := app.NewWithID(appID)
	myWindow := myApp.NewWindow("Pixel")
	myWindow.Resize(fyne.NewSize(1024, 768))

	// Apply whatever the last session left behind
	loadPrefs(myApp.Preferences(), pad)

	statusBar := widget.NewLabel("Ready")
	pad.OnStatus = statusBar.SetText

	toolbar := NewToolbar(pad, myApp.Preferences(), myWindow)

	// Set up the main layout
	content := container.NewBorder(toolbar, statusBar, nil, nil, pad)
	myWindow.SetContent(content)

	registerShortcuts(myWindow, pad)

	myWindow.ShowAndRun()
}

// saveTo streams the canvas through write and closes the target. A
// close failure is a save failure, the bytes may never have reached the
// disk.
func saveTo(wc io.WriteCloser, write func(io.Writer) error) error {
	if err := write(wc); err != nil {
		wc.Close()
		return err
	}
	return wc.Close()
}

// savePNG asks for a target file and writes the flattened canvas to it.
func savePNG(pad *SketchPad, win fyne.Window) {
	d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if wc == nil {
			return // cancelled
		}
		err = saveTo(wc, func(w io.Writer) error { return export.WritePNG(w, pad.Image()) })
		if err != nil {
			log.Printf("[export] %v", err)
			dialog.ShowError(err, win)
			return
		}
		pad.setStatus("Saved " + wc.URI().Name())
	}, win)
	d.SetFileName(export.PNGName)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".png"}))
	d.Show()
}

// savePDF asks for a target file and writes the canvas as a PDF page.
func savePDF(pad *SketchPad, win fyne.Window) {
	d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if wc == nil {
			return // cancelled
		}
		err = saveTo(wc, func(w io.Writer) error { return export.WritePDF(w, pad.Image()) })
		if err != nil {
			log.Printf("[export] %v", err)
			dialog.ShowError(err, win)
			return
		}
		pad.setStatus("Saved " + wc.URI().Name())
	}, win)
	d.SetFileName(export.PDFName)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".pdf"}))
	d.Show()
}
