package history

import (
	"log"
	"sync"

	"github.com/google/uuid"
)

// DefaultCapacity bounds how many snapshots the undo side retains. Once
// the bound is hit the oldest snapshot is evicted first.
const DefaultCapacity = 10

// Snapshot is one frozen canvas state, PNG encoded.
type Snapshot struct {
	ID  string
	PNG []byte
}

// NewSnapshot wraps encoded pixels with a fresh identifier.
func NewSnapshot(data []byte) Snapshot {
	return Snapshot{ID: uuid.NewString(), PNG: data}
}

// Log is a bounded two stack undo/redo history. The undo side always
// keeps its oldest entry, the floor every undo chain bottoms out on.
type Log struct {
	mu   sync.Mutex
	cap  int
	undo []Snapshot
	redo []Snapshot
}

// NewLog returns an empty history bounded by capacity. Values below one
// fall back to DefaultCapacity.
func NewLog(capacity int) *Log {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Log{cap: capacity}
}

// Push records a new current state and invalidates the redo chain.
func (l *Log) Push(s Snapshot) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.undo = append(l.undo, s)
	if len(l.undo) > l.cap {
		log.Printf("[history] capacity %d reached, dropping snapshot %s", l.cap, l.undo[0].ID)
		l.undo = l.undo[1:]
	}
	l.redo = nil
}

// Undo steps back one state and returns the snapshot that should become
// visible. ok is false when only the floor entry remains, in which case
// nothing changes.
func (l *Log) Undo() (Snapshot, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.undo) <= 1 {
		return Snapshot{}, false
	}
	top := l.undo[len(l.undo)-1]
	l.undo = l.undo[:len(l.undo)-1]
	l.redo = append(l.redo, top)
	return l.undo[len(l.undo)-1], true
}

// Redo reapplies the most recently undone state. ok is false when there
// is nothing to redo.
func (l *Log) Redo() (Snapshot, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.redo) == 0 {
		return Snapshot{}, false
	}
	top := l.redo[len(l.redo)-1]
	l.redo = l.redo[:len(l.redo)-1]
	l.undo = append(l.undo, top)
	return top, true
}

// Current returns the snapshot matching the visible canvas.
func (l *Log) Current() (Snapshot, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.undo) == 0 {
		return Snapshot{}, false
	}
	return l.undo[len(l.undo)-1], true
}

// CanUndo reports whether a state older than the current one exists.
func (l *Log) CanUndo() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.undo) > 1
}

// CanRedo reports whether an undone state is waiting to be reapplied.
func (l *Log) CanRedo() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.redo) > 0
}

// Len reports the number of retained undo states, floor included.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.undo)
}

// RedoLen reports the number of undone states available for redo.
func (l *Log) RedoLen() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.redo)
}
