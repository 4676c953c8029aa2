package ecs

import (
	"testing"

	"github.com/phanxgames/jigsaw"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

var _ jigsaw.EventStore = (*donburiStore)(nil)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	if NewDonburiStore(world) == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []jigsaw.PuzzleEvent
	PuzzleEventType.Subscribe(world, func(w donburi.World, e jigsaw.PuzzleEvent) {
		received = append(received, e)
	})

	store.EmitEvent(jigsaw.PuzzleEvent{Type: jigsaw.EventPick, PieceID: 3})
	store.EmitEvent(jigsaw.PuzzleEvent{Type: jigsaw.EventComplete, PieceID: -1, Placed: 4, Total: 4})

	// Events are queued; process them.
	PuzzleEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Type != jigsaw.EventPick || received[0].PieceID != 3 {
		t.Errorf("event 0: %+v", received[0])
	}
	if received[1].Type != jigsaw.EventComplete || received[1].Placed != 4 {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiStore_SessionBridge(t *testing.T) {
	world := donburi.NewWorld()

	pieces := []jigsaw.Piece{{
		ID:     0,
		Size:   0.5,
		Target: jigsaw.Vec2{},
		Pos:    jigsaw.Vec2{X: 0.3, Y: 0.3},
	}}
	sess := jigsaw.NewSession(pieces)
	sess.SetEventStore(NewDonburiStore(world))

	var types []jigsaw.EventType
	PuzzleEventType.Subscribe(world, func(w donburi.World, e jigsaw.PuzzleEvent) {
		types = append(types, e.Type)
	})

	p := jigsaw.Vec2{X: 0.3, Y: 0.3}
	sess.Step(jigsaw.FrameInput{Pressed: true, Pointer: p})
	sess.Step(jigsaw.FrameInput{Pressed: false, Pointer: p})
	events.ProcessAllEvents(world)

	want := []jigsaw.EventType{jigsaw.EventPick, jigsaw.EventSnap, jigsaw.EventDrop, jigsaw.EventComplete}
	if len(types) != len(want) {
		t.Fatalf("got events %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, types[i], want[i])
		}
	}
}
