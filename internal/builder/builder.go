// Package builder carves rectangular mazes with a randomized
// depth-first backtracking walk. A maze starts as solid wall; the walk
// opens single-cell-wide passages from a boundary entrance, and an
// exit is opened on a boundary cell the walk reached.
package builder

import (
	"math/rand"

	"github.com/akk228/maze/pkg/types"
)

// Builder generates mazes. All randomness (entrance side and position,
// per-step direction order, exit pick) is drawn sequentially from the
// injected source, so a seeded source reproduces the same grid.
type Builder struct {
	rng *rand.Rand
}

// New returns a Builder drawing from rng.
func New(rng *rand.Rand) *Builder {
	return &Builder{rng: rng}
}

// Generate builds a length x width maze. Every cell starts as Wall, an
// entrance is opened on the boundary, passages are carved from it, and
// an exit is opened on a boundary cell adjacent to the carved interior.
// Returns types.ErrInvalidDimensions when either side is below
// types.MinDimension, and types.ErrNoExitCandidate when the carve left
// no boundary cell eligible as an exit.
func (b *Builder) Generate(length, width int) (*types.Grid, error) {
	grid, err := types.NewGrid(length, width)
	if err != nil {
		return nil, err
	}

	entrance := b.placeEntrance(grid)
	b.carve(grid, entrance)
	if _, err := b.placeExit(grid, entrance); err != nil {
		return nil, err
	}
	return grid, nil
}
