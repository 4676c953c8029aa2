package jigsaw

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// snapFlash is the fading highlight drawn over a piece right after it snaps.
// It is purely cosmetic: the piece is already at its target when the flash
// starts.
type snapFlash struct {
	pieceID int
	tween   *gween.Tween
	value   float32
	done    bool
}

func newSnapFlash(pieceID int, duration float32) *snapFlash {
	return &snapFlash{
		pieceID: pieceID,
		tween:   gween.New(1, 0, duration, ease.OutQuad),
		value:   1,
	}
}

// update advances the flash by dt seconds.
func (f *snapFlash) update(dt float32) {
	if f.done {
		return
	}
	val, finished := f.tween.Update(dt)
	f.value = val
	f.done = finished
}

// flashSet tracks the active snap flashes of one session.
type flashSet struct {
	active []*snapFlash
	tint   []float32 // per piece ID, 0 = no highlight
}

func (fs *flashSet) reset(pieces int) {
	fs.active = fs.active[:0]
	if cap(fs.tint) < pieces {
		fs.tint = make([]float32, pieces)
	}
	fs.tint = fs.tint[:pieces]
	clear(fs.tint)
}

func (fs *flashSet) start(pieceID int, duration float32) {
	if duration <= 0 || pieceID < 0 || pieceID >= len(fs.tint) {
		return
	}
	fs.active = append(fs.active, newSnapFlash(pieceID, duration))
	fs.tint[pieceID] = 1
}

// update advances every flash and drops the finished ones.
func (fs *flashSet) update(dt float32) {
	kept := fs.active[:0]
	for _, f := range fs.active {
		f.update(dt)
		fs.tint[f.pieceID] = f.value
		if f.done {
			fs.tint[f.pieceID] = 0
			continue
		}
		kept = append(kept, f)
	}
	for i := len(kept); i < len(fs.active); i++ {
		fs.active[i] = nil
	}
	fs.active = kept
}

// highlight returns the current flash strength for a piece.
func (fs *flashSet) highlight(pieceID int) float32 {
	if pieceID < 0 || pieceID >= len(fs.tint) {
		return 0
	}
	return fs.tint[pieceID]
}
