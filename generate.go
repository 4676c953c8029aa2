package jigsaw

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// scatterExtent bounds the initial random positions on each axis.
const scatterExtent = 0.85

// ErrInvalidGrid is returned when a grid dimension is out of range.
var ErrInvalidGrid = errors.New("jigsaw: invalid grid size")

// GenerateOptions controls piece generation.
type GenerateOptions struct {
	// Origin selects the vertical texture convention of the decoded image.
	Origin TextureOrigin

	// Rand is the source for initial positions. When nil, a PCG source seeded
	// from Seed is used, so equal seeds produce equal layouts.
	Rand *rand.Rand
	Seed uint64
}

// Generate builds the pieces of an n×n puzzle in row-major order. Row 0 is
// the bottom row and column 0 the left column of the assembled picture. The
// returned order is also the initial z-order.
//
// Targets tile the square [-0.5, 0.5]² centered at the origin. Initial positions
// are sampled uniformly in [-0.85, 0.85] on each axis; pieces may overlap.
func Generate(n int, opts GenerateOptions) ([]Piece, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d (want n >= 1)", ErrInvalidGrid, n)
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	}

	fn := float64(n)
	size := 0.5 / fn
	pieces := make([]Piece, 0, n*n)

	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			pieces = append(pieces, Piece{
				ID:   row*n + col,
				Row:  row,
				Col:  col,
				Size: size,
				Target: Vec2{
					X: (float64(col) + 0.5 - fn/2) * 2 * size,
					Y: (float64(row) + 0.5 - fn/2) * 2 * size,
				},
				UV: cellUV(row, col, n, opts.Origin),
				Pos: Vec2{
					X: scatter(rng),
					Y: scatter(rng),
				},
			})
		}
	}
	return pieces, nil
}

// cellUV returns the texture rectangle for cell (row, col). Rows count up
// from the bottom of the picture, so with a top-left texture origin the V
// axis is inverted.
func cellUV(row, col, n int, origin TextureOrigin) UVRect {
	fn := float64(n)
	uv := UVRect{
		U0: float64(col) / fn,
		U1: float64(col+1) / fn,
	}
	switch origin {
	case OriginBottomLeft:
		uv.V0 = float64(row) / fn
		uv.V1 = float64(row+1) / fn
	default:
		uv.V0 = 1 - float64(row)/fn
		uv.V1 = 1 - float64(row+1)/fn
	}
	return uv
}

func scatter(rng *rand.Rand) float64 {
	return -scatterExtent + rng.Float64()*2*scatterExtent
}
