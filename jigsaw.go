package jigsaw

import "math"

// Vec2 is a 2D vector used for positions, offsets, and pointer samples.
// Core positions are in normalized device coordinates: [-1, 1] on both axes,
// origin at the center, Y increasing upward.
type Vec2 struct {
	X, Y float64
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// Box is an axis-aligned box described by its center and half extent.
type Box struct {
	Center Vec2
	Half   float64
}

// Contains reports whether p lies inside the box.
// Points on the edge are considered inside.
func (b Box) Contains(p Vec2) bool {
	return p.X >= b.Center.X-b.Half && p.X <= b.Center.X+b.Half &&
		p.Y >= b.Center.Y-b.Half && p.Y <= b.Center.Y+b.Half
}

// UVRect is a sub-rectangle of unit texture space. (U0, V0) is the texture
// coordinate at a quad's bottom-left NDC corner and (U1, V1) at its top-right.
// Depending on the TextureOrigin, V0 may be greater than V1.
type UVRect struct {
	U0, V0, U1, V1 float64
}

// TextureOrigin selects where V = 0 lies in the decoded source image.
// The image decoder and the piece generator must agree on this, otherwise
// pieces render vertically mirrored.
type TextureOrigin uint8

const (
	OriginTopLeft    TextureOrigin = iota // V = 0 is the top row (Go image.Image, Ebitengine)
	OriginBottomLeft                      // V = 0 is the bottom row (flip-on-load decoders, GL)
)

// String returns the origin name.
func (o TextureOrigin) String() string {
	switch o {
	case OriginTopLeft:
		return "top-left"
	case OriginBottomLeft:
		return "bottom-left"
	default:
		return "unknown"
	}
}

// Vertex is one corner of a piece quad as handed to the render collaborator.
// X/Y are NDC, U/V are unit texture coordinates.
type Vertex struct {
	X, Y float64
	U, V float64
}

// EventType identifies a kind of puzzle event.
type EventType uint8

const (
	EventPick     EventType = iota // a piece became the active drag target
	EventDrop                      // the active piece was released
	EventSnap                      // a released piece locked to its target
	EventComplete                  // the last unplaced piece snapped
)

// String returns the event name.
func (e EventType) String() string {
	switch e {
	case EventPick:
		return "pick"
	case EventDrop:
		return "drop"
	case EventSnap:
		return "snap"
	case EventComplete:
		return "complete"
	default:
		return "unknown"
	}
}
