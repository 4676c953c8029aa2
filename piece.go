package jigsaw

// Snap thresholds in NDC units. A drop snaps when either the piece center or
// the release pointer lies within max(SnapBase, size*SnapFactor) of the target.
const (
	SnapBase   = 0.09
	SnapFactor = 1.6
)

// Piece is one square of the puzzle.
//
// Target, UV, Size, ID, Row, and Col are fixed at generation. Pos changes
// while the piece is dragged. Snapped only ever goes from false to true.
type Piece struct {
	ID       int // row-major cell index: Row*N + Col
	Row, Col int

	Pos    Vec2    // current center in NDC
	Size   float64 // half extent, 0.5/N
	Target Vec2    // center of the assembled position
	UV     UVRect

	Snapped bool
}

// Bounds returns the piece's current axis-aligned box.
func (p *Piece) Bounds() Box {
	return Box{Center: p.Pos, Half: p.Size}
}

// Contains reports whether pt lies within the piece's box, edges inclusive.
func (p *Piece) Contains(pt Vec2) bool {
	return p.Bounds().Contains(pt)
}

// SnapThreshold returns the snap radius for a piece of the given half extent.
func SnapThreshold(size float64) float64 {
	return max(SnapBase, size*SnapFactor)
}

// EvaluateSnap reports whether a piece released at pos, with the pointer at
// pointer, is close enough to target to lock in place.
func EvaluateSnap(pos, target, pointer Vec2, size float64) bool {
	threshold := SnapThreshold(size)
	return pos.Dist(target) <= threshold || pointer.Dist(target) <= threshold
}

// trySnap runs the snap evaluation on a released piece. On success the piece
// is moved exactly onto its target and marked snapped. Otherwise it stays
// where it was dropped.
func (p *Piece) trySnap(pointer Vec2) bool {
	if p.Snapped {
		return true
	}
	if !EvaluateSnap(p.Pos, p.Target, pointer, p.Size) {
		return false
	}
	p.Pos = p.Target
	p.Snapped = true
	return true
}
