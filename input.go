package jigsaw

import (
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
)

// InputSource supplies one pointer sample per frame in window pixels.
type InputSource interface {
	// Pointer returns whether the primary button is held and the pointer
	// position in window pixels.
	Pointer() (pressed bool, x, y float64)

	// DroppedFiles returns files dropped onto the window this frame, or nil.
	DroppedFiles() fs.FS
}

// ebitenInput reads the mouse and the first active touch. While a touch is
// down it takes precedence over the mouse; on the frame it lifts, the last
// touch position is reported with pressed = false.
type ebitenInput struct {
	touchIDs  []ebiten.TouchID
	touching  bool
	lastTouch [2]float64
}

// NewEbitenInput returns the InputSource backed by Ebitengine's mouse and
// touch state.
func NewEbitenInput() InputSource {
	return &ebitenInput{}
}

func (in *ebitenInput) Pointer() (bool, float64, float64) {
	in.touchIDs = ebiten.AppendTouchIDs(in.touchIDs[:0])
	if len(in.touchIDs) > 0 {
		tx, ty := ebiten.TouchPosition(in.touchIDs[0])
		in.touching = true
		in.lastTouch = [2]float64{float64(tx), float64(ty)}
		return true, in.lastTouch[0], in.lastTouch[1]
	}
	if in.touching {
		in.touching = false
		return false, in.lastTouch[0], in.lastTouch[1]
	}

	mx, my := ebiten.CursorPosition()
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), float64(mx), float64(my)
}

func (in *ebitenInput) DroppedFiles() fs.FS {
	return ebiten.DroppedFiles()
}
