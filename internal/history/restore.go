package history

import (
	"bytes"
	"image"
	"image/png"
	"log"
	"sync/atomic"
)

// Restorer decodes snapshots off the caller's goroutine and hands the
// pixels to Apply through Run. Requests carry a sequence token; a decode
// that completes after a newer request was issued is discarded, so the
// canvas always ends on the most recently requested state no matter how
// decode times interleave.
type Restorer struct {
	seq uint64

	// Apply receives the decoded image, invoked from the closure passed
	// to Run.
	Apply func(image.Image)

	// Run schedules the apply closure. The UI passes fyne.Do so pixels
	// are only touched on the event goroutine. Nil runs the closure
	// directly.
	Run func(func())
}

// Restore requests that snap become the visible state.
func (r *Restorer) Restore(snap Snapshot) {
	token := atomic.AddUint64(&r.seq, 1)
	go r.decode(snap, token)
}

// Invalidate marks every in-flight restoration stale without scheduling
// a new one. Call it when the canvas changes through another path, a
// decode still in flight must not overwrite the newer pixels.
func (r *Restorer) Invalidate() {
	atomic.AddUint64(&r.seq, 1)
}

func (r *Restorer) decode(snap Snapshot, token uint64) {
	img, err := png.Decode(bytes.NewReader(snap.PNG))
	if err != nil {
		log.Printf("[restore] snapshot %s: %v", snap.ID, err)
		return
	}
	run := r.Run
	if run == nil {
		run = func(f func()) { f() }
	}
	run(func() {
		if atomic.LoadUint64(&r.seq) != token {
			log.Printf("[restore] snapshot %s superseded, dropped", snap.ID)
			return
		}
		r.Apply(img)
	})
}
