package jigsaw

import (
	"reflect"
	"testing"
)

// testPieces returns n pieces sharing a size, each centered at (i*0.1, 0).
func testPieces(n int, size float64) []Piece {
	pieces := make([]Piece, n)
	for i := range pieces {
		pieces[i] = Piece{
			ID:     i,
			Col:    i,
			Size:   size,
			Pos:    Vec2{X: float64(i) * 0.1},
			Target: Vec2{X: -0.9, Y: -0.9},
		}
	}
	return pieces
}

func storeIDs(s *Store) []int {
	ids := make([]int, s.Len())
	for i := range ids {
		ids[i] = s.At(i).ID
	}
	return ids
}

func TestNewStore_KeepsOrder(t *testing.T) {
	pieces := testPieces(4, 0.1)
	pieces[0], pieces[3] = pieces[3], pieces[0]
	s := NewStore(pieces)
	if got, want := storeIDs(s), []int{3, 1, 2, 0}; !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
	if s.ByID(3).Pos != pieces[0].Pos {
		t.Error("ByID should find the piece regardless of position")
	}
}

func TestNewStore_InvalidIDPanics(t *testing.T) {
	tests := []struct {
		name   string
		pieces []Piece
	}{
		{"out of range", []Piece{{ID: 5}}},
		{"negative", []Piece{{ID: -1}}},
		{"duplicate", []Piece{{ID: 0}, {ID: 0}}},
		{"duplicate after valid", []Piece{{ID: 1}, {ID: 0}, {ID: 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("NewStore(%v) did not panic", tt.pieces)
				}
			}()
			NewStore(tt.pieces)
		})
	}
}

func TestBringToFront(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  []int
	}{
		{"first", 0, []int{1, 2, 3, 4, 0}},
		{"middle", 2, []int{0, 1, 3, 4, 2}},
		{"already front", 4, []int{0, 1, 2, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore(testPieces(5, 0.1))
			before := *s.At(tt.index)
			got := s.BringToFront(tt.index)
			if got != s.Len()-1 {
				t.Errorf("BringToFront returned %d, want %d", got, s.Len()-1)
			}
			if ids := storeIDs(s); !reflect.DeepEqual(ids, tt.want) {
				t.Errorf("order = %v, want %v", ids, tt.want)
			}
			if *s.At(got) != before {
				t.Errorf("moved piece changed: %+v != %+v", *s.At(got), before)
			}
		})
	}
}

func TestBringToFront_PreservesMultiset(t *testing.T) {
	s := NewStore(testPieces(6, 0.1))
	for _, i := range []int{3, 0, 5, 2, 2, 1} {
		s.BringToFront(i)
	}
	seen := make(map[int]bool)
	for i := 0; i < s.Len(); i++ {
		p := s.At(i)
		if seen[p.ID] {
			t.Fatalf("piece %d appears twice", p.ID)
		}
		seen[p.ID] = true
		if p.Pos.X != float64(p.ID)*0.1 {
			t.Errorf("piece %d position changed to %v", p.ID, p.Pos)
		}
	}
	if len(seen) != 6 {
		t.Errorf("store has %d distinct pieces, want 6", len(seen))
	}
}

func TestBringToFront_PointersStable(t *testing.T) {
	s := NewStore(testPieces(3, 0.1))
	p := s.At(0)
	s.BringToFront(0)
	if s.At(2) != p {
		t.Error("piece pointer should survive reordering")
	}
	if s.IndexOf(p.ID) != 2 {
		t.Errorf("IndexOf = %d, want 2", s.IndexOf(p.ID))
	}
	if s.IndexOf(99) != -1 {
		t.Error("IndexOf unknown ID should be -1")
	}
}

func TestPickAt_FrontMostWins(t *testing.T) {
	// Three overlapping pieces at (0,0), (0.1,0), (0.2,0) with size 0.3.
	s := NewStore(testPieces(3, 0.3))
	i, ok := s.PickAt(Vec2{0.1, 0})
	if !ok || s.At(i).ID != 2 {
		t.Fatalf("PickAt = (%d, %v), want front piece 2", i, ok)
	}

	s.BringToFront(0)
	i, ok = s.PickAt(Vec2{0.1, 0})
	if !ok || s.At(i).ID != 0 {
		t.Fatalf("after BringToFront(0): PickAt picked %d, want 0", s.At(i).ID)
	}
}

func TestPickAt_SkipsSnapped(t *testing.T) {
	s := NewStore(testPieces(3, 0.3))
	s.ByID(2).Snapped = true
	i, ok := s.PickAt(Vec2{0.1, 0})
	if !ok || s.At(i).ID != 1 {
		t.Fatalf("PickAt picked %d, want 1 (2 is snapped)", s.At(i).ID)
	}

	s.ByID(1).Snapped = true
	s.ByID(0).Snapped = true
	if _, ok := s.PickAt(Vec2{0.1, 0}); ok {
		t.Error("PickAt should return none when all candidates are snapped")
	}
}

func TestPickAt_Miss(t *testing.T) {
	s := NewStore(testPieces(3, 0.05))
	if i, ok := s.PickAt(Vec2{0.9, 0.9}); ok || i != -1 {
		t.Errorf("PickAt = (%d, %v), want (-1, false)", i, ok)
	}
	empty := NewStore(nil)
	if _, ok := empty.PickAt(Vec2{}); ok {
		t.Error("empty store should never pick")
	}
}

func TestAppendQuads(t *testing.T) {
	s := NewStore([]Piece{{
		ID:   0,
		Pos:  Vec2{0.5, -0.5},
		Size: 0.25,
		UV:   UVRect{U0: 0, V0: 1, U1: 0.5, V1: 0.5},
	}})
	got := s.AppendQuads(nil)
	want := []Vertex{
		{X: 0.25, Y: -0.75, U: 0, V: 1},
		{X: 0.75, Y: -0.75, U: 0.5, V: 1},
		{X: 0.75, Y: -0.25, U: 0.5, V: 0.5},
		{X: 0.25, Y: -0.25, U: 0, V: 0.5},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AppendQuads = %+v\nwant %+v", got, want)
	}
}

func TestAppendQuads_FollowsZOrder(t *testing.T) {
	s := NewStore(testPieces(3, 0.1))
	s.BringToFront(0)
	verts := s.AppendQuads(nil)
	if len(verts) != 12 {
		t.Fatalf("got %d vertices, want 12", len(verts))
	}
	// Last quad is piece 0 centered at x=0.
	if !approx(verts[8].X, -0.1) || !approx(verts[9].X, 0.1) {
		t.Errorf("last quad x = [%v, %v], want piece 0", verts[8].X, verts[9].X)
	}
}

func TestAppendQuads_Idempotent(t *testing.T) {
	pieces, _ := Generate(4, GenerateOptions{Seed: 3})
	s := NewStore(pieces)
	a := s.AppendQuads(nil)
	b := s.AppendQuads(nil)
	if !reflect.DeepEqual(a, b) {
		t.Error("two calls without state change produced different output")
	}
	// Reusing the buffer yields the same content.
	c := s.AppendQuads(a[:0])
	if !reflect.DeepEqual(c, b) {
		t.Error("reused buffer produced different output")
	}
}

func TestQuadIndices(t *testing.T) {
	got := QuadIndices(nil, 2)
	want := []uint32{0, 1, 2, 2, 3, 0, 4, 5, 6, 6, 7, 4}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("QuadIndices = %v, want %v", got, want)
	}

	// 100×100 quads need vertex indices beyond 16 bits.
	count := 100 * 100
	big := QuadIndices(nil, count)
	if len(big) != 6*count {
		t.Fatalf("len = %d, want %d", len(big), 6*count)
	}
	if last, want := big[len(big)-1], uint32(4*(count-1)); last != want {
		t.Errorf("last index = %d, want %d", last, want)
	}
	if len(QuadIndices(nil, 0)) != 0 {
		t.Error("zero quads should produce no indices")
	}
}

func TestStorePlaced(t *testing.T) {
	s := NewStore(testPieces(4, 0.1))
	s.ByID(1).Snapped = true
	s.ByID(3).Snapped = true
	if got := s.Placed(); got != 2 {
		t.Errorf("Placed = %d, want 2", got)
	}
}
