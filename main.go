package main

import (
	"flag"
	"log"

	"github.com/Eva-Wamuyu/Pixel/internal/ui"
)

const (
	DefaultWidth  = 960
	DefaultHeight = 600
	MinCanvas     = 64
	MaxCanvas     = 4096
)

// clampCanvas keeps user supplied dimensions inside the supported range.
func clampCanvas(v int) int {
	if v < MinCanvas {
		return MinCanvas
	}
	if v > MaxCanvas {
		return MaxCanvas
	}
	return v
}

func main() {
	width := flag.Int("width", DefaultWidth, "canvas width in pixels")
	height := flag.Int("height", DefaultHeight, "canvas height in pixels")
	flag.Parse()

	w := clampCanvas(*width)
	h := clampCanvas(*height)
	log.Printf("Starting Pixel with a %dx%d canvas", w, h)

	pad, err := ui.NewSketchPad(w, h)
	if err != nil {
		log.Fatalf("Failed to create drawing surface: %v", err)
	}
	ui.RunApp(pad)
}
