package jigsaw

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// statusOverlay draws placed-piece progress and, optionally, FPS/TPS in the
// top-left corner. The text image is redrawn every ~0.5 seconds or when the
// placed count changes.
type statusOverlay struct {
	img     *ebiten.Image
	showFPS bool

	elapsed float64
	placed  int
	total   int
	text    string
	dirty   bool
}

func newStatusOverlay(showFPS bool) *statusOverlay {
	return &statusOverlay{showFPS: showFPS, placed: -1, dirty: true}
}

// update refreshes the text. It does not touch any ebiten image so it is safe
// to call from Update.
func (o *statusOverlay) update(dt float64, sess *Session) {
	o.elapsed += dt
	placed, total := sess.Placed(), sess.Store().Len()
	if placed == o.placed && total == o.total && o.elapsed < 0.5 {
		return
	}
	o.elapsed = 0
	o.placed, o.total = placed, total
	o.text = statusText(placed, total, sess.Complete())
	if o.showFPS {
		o.text += fmt.Sprintf("\nFPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
	}
	o.dirty = true
}

func statusText(placed, total int, complete bool) string {
	if complete {
		return fmt.Sprintf("Complete! %d/%d", placed, total)
	}
	return fmt.Sprintf("Placed: %d/%d", placed, total)
}

func (o *statusOverlay) draw(screen *ebiten.Image) {
	if o.img == nil {
		// 140x48 fits three lines of debug font.
		o.img = ebiten.NewImage(140, 48)
	}
	if o.dirty {
		o.img.Clear()
		// Semi-transparent background for readability
		o.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(o.img, o.text)
		o.dirty = false
	}
	screen.DrawImage(o.img, nil)
}
