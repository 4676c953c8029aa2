package jigsaw

// FrameInput is one frame's pointer sample in NDC.
type FrameInput struct {
	Pressed bool // primary button currently held
	Pointer Vec2
}

// dragState is the drag controller state. active == false is Idle.
type dragState struct {
	active bool
	index  int  // z-order index of the dragged piece; always the last index
	grab   Vec2 // pointer - center at pick time
}

// Session owns one puzzle: its pieces, the drag state machine, and the
// previous frame's button state used for edge detection. Sessions are
// independent; nothing is shared between them.
//
// A Session is not safe for concurrent use. Call Step once per frame from
// the game loop.
type Session struct {
	store *Store
	grid  int

	drag        dragState
	prevPressed bool
	placed      int
	completed   bool

	handlers    handlerRegistry
	events      EventStore
	injectQueue []syntheticPointerEvent

	debug bool
}

// PuzzleConfig describes the puzzle to generate.
type PuzzleConfig struct {
	Grid   int           `yaml:"grid"`
	Seed   uint64        `yaml:"seed"`
	Origin TextureOrigin `yaml:"-"`
}

// NewPuzzle generates a cfg.Grid×cfg.Grid puzzle and wraps it in a Session.
func NewPuzzle(cfg PuzzleConfig) (*Session, error) {
	pieces, err := Generate(cfg.Grid, GenerateOptions{Origin: cfg.Origin, Seed: cfg.Seed})
	if err != nil {
		return nil, err
	}
	sess := NewSession(pieces)
	sess.grid = cfg.Grid
	Logger().Info("puzzle generated", "grid", cfg.Grid, "pieces", len(pieces), "seed", cfg.Seed)
	return sess, nil
}

// NewSession wraps an existing piece set. The slice order becomes the
// initial z-order.
func NewSession(pieces []Piece) *Session {
	s := &Session{store: NewStore(pieces)}
	s.placed = s.store.Placed()
	for i := range pieces {
		if pieces[i].Row+1 > s.grid {
			s.grid = pieces[i].Row + 1
		}
	}
	return s
}

// Store returns the session's piece store.
func (s *Session) Store() *Store {
	return s.store
}

// Grid returns the grid dimension N.
func (s *Session) Grid() int {
	return s.grid
}

// Placed returns how many pieces have snapped.
func (s *Session) Placed() int {
	return s.placed
}

// Complete reports whether every piece has snapped.
func (s *Session) Complete() bool {
	return s.store.Len() > 0 && s.placed == s.store.Len()
}

// Dragging returns the z-order index of the piece being dragged.
func (s *Session) Dragging() (int, bool) {
	if !s.drag.active {
		return -1, false
	}
	return s.drag.index, true
}

// GrabOffset returns the captured pointer-minus-center offset of the active
// drag, or the zero vector when idle.
func (s *Session) GrabOffset() Vec2 {
	return s.drag.grab
}

// SetEventStore sets the optional ECS bridge.
func (s *Session) SetEventStore(store EventStore) {
	s.events = store
}

// SetDebugMode enables or disables per-frame diagnostics on stderr.
func (s *Session) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// StepScreen maps a pointer sample in window pixels to NDC and runs Step.
func (s *Session) StepScreen(pressed bool, px, py, width, height float64) {
	s.Step(FrameInput{Pressed: pressed, Pointer: ScreenToNDC(px, py, width, height)})
}

// Step advances the drag state machine by one frame.
//
// A press edge picks the front-most unsnapped piece under the pointer and
// brings it to the front. While held, the piece follows the pointer at the
// offset captured on pick. A release edge evaluates the snap and returns to
// idle whatever the outcome.
func (s *Session) Step(in FrameInput) {
	switch {
	case in.Pressed && !s.prevPressed:
		s.beginDrag(in.Pointer)
	case in.Pressed && s.drag.active:
		s.followDrag(in.Pointer)
	case !in.Pressed && s.prevPressed && s.drag.active:
		s.endDrag(in.Pointer)
	}
	s.prevPressed = in.Pressed
}

func (s *Session) beginDrag(pointer Vec2) {
	i, ok := s.store.PickAt(pointer)
	if !ok {
		return
	}
	i = s.store.BringToFront(i)
	p := s.store.At(i)
	s.drag = dragState{active: true, index: i, grab: pointer.Sub(p.Pos)}

	Logger().Debug("piece picked", "piece", p.ID, "index", i)
	s.firePick(PickContext{Piece: p, Index: i, Pointer: pointer, GrabOffset: s.drag.grab})
}

// followDrag re-anchors the piece absolutely each frame so floating-point
// error cannot accumulate.
func (s *Session) followDrag(pointer Vec2) {
	p := s.store.At(s.drag.index)
	p.Pos = pointer.Sub(s.drag.grab)
}

func (s *Session) endDrag(pointer Vec2) {
	i := s.drag.index
	s.drag = dragState{}

	p := s.store.At(i)
	snapped := p.trySnap(pointer)
	if snapped {
		s.placed++
		Logger().Info("piece snapped", "piece", p.ID, "placed", s.placed, "total", s.store.Len())
	} else {
		Logger().Debug("piece dropped", "piece", p.ID, "x", p.Pos.X, "y", p.Pos.Y)
	}
	s.fireDrop(DropContext{Piece: p, Index: i, Pointer: pointer, Snapped: snapped})

	if s.Complete() && !s.completed {
		s.completed = true
		Logger().Info("puzzle complete", "pieces", s.store.Len())
		s.fireComplete(CompleteContext{Pieces: s.store.Len()})
	}
}
