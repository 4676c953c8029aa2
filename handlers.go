package jigsaw

// PickContext is passed to OnPick callbacks when a piece becomes the active
// drag target. Index is the piece's z-order index after it was brought to
// the front.
type PickContext struct {
	Piece      *Piece
	Index      int
	Pointer    Vec2
	GrabOffset Vec2
}

// DropContext is passed to OnDrop and OnSnap callbacks when the active piece
// is released.
type DropContext struct {
	Piece   *Piece
	Index   int
	Pointer Vec2
	Snapped bool
}

// CompleteContext is passed to OnComplete callbacks once every piece has
// snapped.
type CompleteContext struct {
	Pieces int
}

// EventStore is the interface for optional ECS integration.
// When set on a Session, puzzle events are forwarded to it.
type EventStore interface {
	EmitEvent(event PuzzleEvent)
}

// PuzzleEvent carries puzzle event data for the ECS bridge.
type PuzzleEvent struct {
	Type    EventType
	PieceID int // -1 for EventComplete
	Pointer Vec2
	Pos     Vec2
	Snapped bool
	Placed  int
	Total   int
}

type handler[C any] struct {
	id uint32
	fn func(C)
}

type handlerRegistry struct {
	pick     []handler[PickContext]
	drop     []handler[DropContext]
	snap     []handler[DropContext]
	complete []handler[CompleteContext]
	nextID   uint32
}

// CallbackHandle allows removing a registered session callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventPick:
		h.reg.pick = removeHandler(h.reg.pick, h.id)
	case EventDrop:
		h.reg.drop = removeHandler(h.reg.drop, h.id)
	case EventSnap:
		h.reg.snap = removeHandler(h.reg.snap, h.id)
	case EventComplete:
		h.reg.complete = removeHandler(h.reg.complete, h.id)
	}
}

func removeHandler[C any](s []handler[C], id uint32) []handler[C] {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = handler[C]{}
			return s[:len(s)-1]
		}
	}
	return s
}

func addHandler[C any](reg *handlerRegistry, s *[]handler[C], fn func(C), event EventType) CallbackHandle {
	reg.nextID++
	id := reg.nextID
	*s = append(*s, handler[C]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: reg, event: event}
}

// OnPick registers a callback fired when a piece is picked up.
func (s *Session) OnPick(fn func(PickContext)) CallbackHandle {
	return addHandler(&s.handlers, &s.handlers.pick, fn, EventPick)
}

// OnDrop registers a callback fired on every release of a dragged piece,
// snapped or not.
func (s *Session) OnDrop(fn func(DropContext)) CallbackHandle {
	return addHandler(&s.handlers, &s.handlers.drop, fn, EventDrop)
}

// OnSnap registers a callback fired when a released piece locks in place.
// Snap callbacks run before drop callbacks for the same release.
func (s *Session) OnSnap(fn func(DropContext)) CallbackHandle {
	return addHandler(&s.handlers, &s.handlers.snap, fn, EventSnap)
}

// OnComplete registers a callback fired once, when the last piece snaps.
func (s *Session) OnComplete(fn func(CompleteContext)) CallbackHandle {
	return addHandler(&s.handlers, &s.handlers.complete, fn, EventComplete)
}

// --- Event dispatch ---

func (s *Session) firePick(ctx PickContext) {
	for _, h := range s.handlers.pick {
		h.fn(ctx)
	}
	s.emit(EventPick, ctx.Piece, ctx.Pointer)
}

func (s *Session) fireDrop(ctx DropContext) {
	if ctx.Snapped {
		for _, h := range s.handlers.snap {
			h.fn(ctx)
		}
		s.emit(EventSnap, ctx.Piece, ctx.Pointer)
	}
	for _, h := range s.handlers.drop {
		h.fn(ctx)
	}
	s.emit(EventDrop, ctx.Piece, ctx.Pointer)
}

func (s *Session) fireComplete(ctx CompleteContext) {
	for _, h := range s.handlers.complete {
		h.fn(ctx)
	}
	s.emit(EventComplete, nil, Vec2{})
}

// --- ECS bridge ---

func (s *Session) emit(eventType EventType, p *Piece, pointer Vec2) {
	if s.events == nil {
		return
	}
	ev := PuzzleEvent{
		Type:    eventType,
		PieceID: -1,
		Pointer: pointer,
		Placed:  s.store.Placed(),
		Total:   s.store.Len(),
	}
	if p != nil {
		ev.PieceID = p.ID
		ev.Pos = p.Pos
		ev.Snapped = p.Snapped
	}
	s.events.EmitEvent(ev)
}
