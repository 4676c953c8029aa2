package jigsaw

import (
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// seedSource supplies the scatter seed for puzzles whose configured seed is
// 0, so every loaded image gets a new layout.
var seedSource = func() uint64 { return uint64(time.Now().UnixNano()) }

// clearColor is the table behind the pieces.
var clearColor = color.RGBA{R: 0x23, G: 0x1e, B: 0x2d, A: 0xff}

// Game adapts a Session to ebiten.Game. It reads one pointer sample per
// Update, steps the session, and draws every piece quad in z-order with a
// single DrawTriangles32 call.
//
// All puzzle logic lives in Session; Game only converts coordinates and
// issues draw calls.
type Game struct {
	cfg     Config
	sess    *Session
	texture *ebiten.Image
	input   InputSource
	runner  *TestRunner

	flashes flashSet
	overlay *statusOverlay

	width, height int

	// Per-frame buffers, reused across frames.
	verts   []Vertex
	ebVerts []ebiten.Vertex
	indices []uint32

	screenshotQueue []string
}

// NewGame creates a Game. sess and texture may be nil, in which case the
// window shows an empty table until LoadImage succeeds. input defaults to
// NewEbitenInput when nil.
func NewGame(cfg Config, sess *Session, texture *ebiten.Image, input InputSource) *Game {
	if input == nil {
		input = NewEbitenInput()
	}
	g := &Game{
		cfg:     cfg,
		texture: texture,
		input:   input,
		width:   cfg.Width,
		height:  cfg.Height,
	}
	if cfg.ShowFPS || cfg.Debug {
		g.overlay = newStatusOverlay(cfg.ShowFPS)
	}
	if sess != nil {
		g.setSession(sess)
	}
	return g
}

// Session returns the active session, or nil before an image is loaded.
func (g *Game) Session() *Session {
	return g.sess
}

// SetTestRunner attaches a scripted input runner. Its step runs at the start
// of every Update.
func (g *Game) SetTestRunner(runner *TestRunner) {
	g.runner = runner
}

// setSession replaces the active puzzle and wires the snap flash.
func (g *Game) setSession(sess *Session) {
	g.sess = sess
	sess.SetDebugMode(g.cfg.Debug)
	g.flashes.reset(sess.Store().Len())
	sess.OnSnap(func(ctx DropContext) {
		g.flashes.start(ctx.Piece.ID, g.cfg.FlashDuration)
	})
	g.indices = QuadIndices(g.indices[:0], sess.Store().Len())
}

// LoadImage replaces the texture and starts a fresh puzzle cut from img.
// The previous session is discarded. A configured seed of 0 draws a new seed
// for each call. Nothing changes when img is empty or
// generation fails.
func (g *Game) LoadImage(img image.Image) error {
	if img == nil || img.Bounds().Empty() {
		return ErrEmptyImage
	}
	pc := g.cfg.Puzzle
	pc.Origin = OriginTopLeft
	if pc.Seed == 0 {
		pc.Seed = seedSource()
	}
	sess, err := NewPuzzle(pc)
	if err != nil {
		return err
	}
	g.texture = ebiten.NewImageFromImage(img)
	g.setSession(sess)
	return nil
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	g.handleDroppedFiles(g.input.DroppedFiles())
	if g.sess == nil {
		return nil
	}
	if g.runner != nil {
		g.runner.step(g)
	}

	w, h := float64(g.width), float64(g.height)
	if !g.sess.stepInjected(w, h) {
		pressed, x, y := g.input.Pointer()
		g.sess.StepScreen(pressed, x, y, w, h)
	}

	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	dt := float32(1.0 / float64(tps))
	g.flashes.update(dt)
	if g.overlay != nil {
		g.overlay.update(float64(dt), g.sess)
	}
	return nil
}

// handleDroppedFiles loads the first decodable image among dropped files.
func (g *Game) handleDroppedFiles(files fs.FS) {
	if files == nil {
		return
	}
	entries, err := fs.ReadDir(files, ".")
	if err != nil {
		Logger().Warn("read dropped files", "error", err)
		return
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		img, err := decodeFSImage(files, e.Name())
		if err != nil {
			Logger().Warn("dropped file is not an image", "name", e.Name(), "error", err)
			continue
		}
		if err := g.LoadImage(img); err != nil {
			Logger().Warn("load dropped image", "name", e.Name(), "error", err)
			continue
		}
		Logger().Info("image dropped", "name", e.Name())
		return
	}
}

func decodeFSImage(files fs.FS, name string) (image.Image, error) {
	f, err := files.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := DecodeImage(f)
	return img, err
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(clearColor)
	if g.sess != nil && g.texture != nil {
		var t0 time.Time
		if g.cfg.Debug {
			t0 = time.Now()
		}

		b := screen.Bounds()
		g.buildVertices(float64(b.Dx()), float64(b.Dy()))
		screen.DrawTriangles32(g.ebVerts, g.indices, g.texture, &ebiten.DrawTrianglesOptions{
			Filter: ebiten.FilterLinear,
		})

		if g.cfg.Debug {
			g.sess.debugLog(debugStats{
				buildTime: time.Since(t0),
				vertices:  len(g.ebVerts),
				indices:   len(g.indices),
			})
		}
	}
	if g.overlay != nil {
		g.overlay.draw(screen)
	}
	g.flushScreenshots(screen)
}

// buildVertices converts the session's NDC quads into ebiten vertices in
// screen pixels and texture pixels. Quad k belongs to Order()[k].
func (g *Game) buildVertices(sw, sh float64) {
	store := g.sess.Store()
	g.verts = store.AppendQuads(g.verts[:0])

	tb := g.texture.Bounds()
	tw, th := float64(tb.Dx()), float64(tb.Dy())

	if cap(g.ebVerts) < len(g.verts) {
		g.ebVerts = make([]ebiten.Vertex, len(g.verts))
	}
	g.ebVerts = g.ebVerts[:len(g.verts)]

	order := store.Order()
	for i, v := range g.verts {
		hl := g.flashes.highlight(order[i/4])
		dx, dy := NDCToScreen(Vec2{X: v.X, Y: v.Y}, sw, sh)
		g.ebVerts[i] = ebiten.Vertex{
			DstX:   float32(dx),
			DstY:   float32(dy),
			SrcX:   float32(float64(tb.Min.X) + v.U*tw),
			SrcY:   float32(float64(tb.Min.Y) + v.V*th),
			ColorR: 1,
			ColorG: 1 - 0.25*hl,
			ColorB: 1 - 0.6*hl,
			ColorA: 1,
		}
	}
}

// Layout implements ebiten.Game. The logical screen tracks the window size
// so pointer pixels and draw pixels agree.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.width, g.height = outsideWidth, outsideHeight
	}
	return g.width, g.height
}

// Run loads the configured image and optional test script, opens a window,
// and blocks until it is closed.
func Run(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if l := cfg.NewLogger(); l != nil {
		SetLogger(l)
	}
	g := NewGame(cfg, nil, nil, nil)
	if cfg.ImagePath != "" {
		img, err := LoadImageFile(cfg.ImagePath)
		if err != nil {
			return err
		}
		if err := g.LoadImage(img); err != nil {
			return fmt.Errorf("start puzzle: %w", err)
		}
	}
	if cfg.ScriptPath != "" {
		runner, err := LoadTestScriptFile(cfg.ScriptPath)
		if err != nil {
			return err
		}
		g.SetTestRunner(runner)
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}
