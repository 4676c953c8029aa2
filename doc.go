// Package jigsaw is an interactive jigsaw-puzzle piece engine for [Ebitengine].
//
// A puzzle is an N×N grid of square pieces cut from one image. Each piece is
// scattered at a random position; the player picks up unplaced pieces with
// the pointer, drags them, and drops them. A drop close enough to the piece's
// target locks it in place ("snaps"). Snapped pieces can never move again.
//
// # Quick start
//
// The simplest way to play is [Run], which loads an image, creates a window
// and game loop for you:
//
//	cfg := jigsaw.DefaultConfig()
//	cfg.ImagePath = "photo.png"
//	cfg.Puzzle.Grid = 4
//	if err := jigsaw.Run(cfg); err != nil {
//		log.Fatal(err)
//	}
//
// # Core without a window
//
// The core is independent of Ebitengine. Build a [Session] and feed it one
// [FrameInput] per frame, then hand [Store.AppendQuads] output to any
// renderer:
//
//	sess, err := jigsaw.NewPuzzle(jigsaw.PuzzleConfig{Grid: 3, Seed: 7})
//	// ...
//	sess.Step(jigsaw.FrameInput{Pressed: true, Pointer: jigsaw.Vec2{X: 0.1, Y: 0.2}})
//	verts := sess.Store().AppendQuads(nil)
//	indices := jigsaw.QuadIndices(nil, sess.Store().Len())
//
// All positions are normalized device coordinates ([-1, 1], Y up). Use
// [ScreenToNDC] to convert window pixels.
//
// # Z-order
//
// The order of pieces in the [Store] is both the draw order and the pick
// priority: the last piece is drawn on top and is picked first. Picking a
// piece moves it to the end. The initial order is row-major (row 0 is the
// bottom row, column 0 the left column).
//
// [Ebitengine]: https://ebitengine.org
package jigsaw
