package jigsaw

import "fmt"

// Store is the ordered piece sequence. Position in the sequence is the
// z-order: index 0 is drawn first (bottom), the last index is drawn on top
// and picked first.
//
// Piece values live in a backing slice indexed by Piece.ID and never move.
// The z-order is a separate slice of IDs, so reordering only shifts ints and
// *Piece pointers obtained from ByID stay valid for the store's lifetime.
// Pointers returned by At are equally stable but the index that produced
// them is not: re-read indices after BringToFront.
type Store struct {
	pieces []Piece
	order  []int
}

// NewStore creates a store from pieces in their given order. Piece IDs must
// be the dense range 0..len(pieces)-1, as produced by Generate. It panics on
// an out-of-range or duplicate ID.
func NewStore(pieces []Piece) *Store {
	s := &Store{
		pieces: make([]Piece, len(pieces)),
		order:  make([]int, len(pieces)),
	}
	seen := make([]bool, len(pieces))
	for i, p := range pieces {
		if p.ID < 0 || p.ID >= len(pieces) {
			panic(fmt.Sprintf("jigsaw: piece ID %d out of range [0, %d)", p.ID, len(pieces)))
		}
		if seen[p.ID] {
			panic(fmt.Sprintf("jigsaw: duplicate piece ID %d at index %d", p.ID, i))
		}
		seen[p.ID] = true
		s.pieces[p.ID] = p
		s.order[i] = p.ID
	}
	return s
}

// Len returns the number of pieces.
func (s *Store) Len() int {
	return len(s.order)
}

// At returns the piece at z-order index i.
func (s *Store) At(i int) *Piece {
	return &s.pieces[s.order[i]]
}

// ByID returns the piece with the given ID.
func (s *Store) ByID(id int) *Piece {
	return &s.pieces[id]
}

// IndexOf returns the current z-order index of the piece with the given ID,
// or -1.
func (s *Store) IndexOf(id int) int {
	for i, pid := range s.order {
		if pid == id {
			return i
		}
	}
	return -1
}

// Order returns the piece IDs back to front. The returned slice MUST NOT be
// mutated and is only valid until the next BringToFront.
func (s *Store) Order() []int {
	return s.order
}

// Placed returns how many pieces are snapped.
func (s *Store) Placed() int {
	n := 0
	for i := range s.pieces {
		if s.pieces[i].Snapped {
			n++
		}
	}
	return n
}

// PickAt returns the z-order index of the front-most unsnapped piece whose
// box contains p. Snapped pieces are transparent to picking.
func (s *Store) PickAt(p Vec2) (int, bool) {
	// Iterate backward (reverse draw order): topmost piece first.
	for i := len(s.order) - 1; i >= 0; i-- {
		pc := &s.pieces[s.order[i]]
		if pc.Snapped {
			continue
		}
		if pc.Contains(p) {
			return i, true
		}
	}
	return -1, false
}

// BringToFront moves the piece at index i to the end of the z-order and
// returns its new index. The relative order of all other pieces is kept.
func (s *Store) BringToFront(i int) int {
	last := len(s.order) - 1
	if i == last {
		return last
	}
	id := s.order[i]
	copy(s.order[i:], s.order[i+1:])
	s.order[last] = id
	return last
}

// AppendQuads appends four vertices per piece to dst, back to front, and
// returns the extended slice. Corners are emitted bottom-left, bottom-right,
// top-right, top-left around center ± size. Positions are recomputed on
// every call; output depends only on the current piece state.
func (s *Store) AppendQuads(dst []Vertex) []Vertex {
	for _, id := range s.order {
		p := &s.pieces[id]
		x0, y0 := p.Pos.X-p.Size, p.Pos.Y-p.Size
		x1, y1 := p.Pos.X+p.Size, p.Pos.Y+p.Size
		uv := p.UV
		dst = append(dst,
			Vertex{X: x0, Y: y0, U: uv.U0, V: uv.V0},
			Vertex{X: x1, Y: y0, U: uv.U1, V: uv.V0},
			Vertex{X: x1, Y: y1, U: uv.U1, V: uv.V1},
			Vertex{X: x0, Y: y1, U: uv.U0, V: uv.V1},
		)
	}
	return dst
}

// quadWinding is the index pattern for one quad's two triangles.
var quadWinding = [6]uint32{0, 1, 2, 2, 3, 0}

// QuadIndices appends triangle indices for count quads to dst, using the
// winding (0,1,2),(2,3,0) offset by 4 per quad. Indices are 32-bit so grids
// past 128×128 stay addressable.
func QuadIndices(dst []uint32, count int) []uint32 {
	for q := 0; q < count; q++ {
		base := uint32(q * 4)
		for _, w := range quadWinding {
			dst = append(dst, base+w)
		}
	}
	return dst
}
