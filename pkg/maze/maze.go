// Package maze is the public entry point for generating mazes. It
// wires the carving engine to a seeded random source and wraps the
// result in a Maze record with identity and metadata.
package maze

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/akk228/maze/internal/builder"
	"github.com/akk228/maze/pkg/types"
)

// Version is the module version, printed by the CLI.
const Version = "v0.1.0"

// Generate builds a length x width maze from the given seed. A seed of
// zero is replaced by the current time in nanoseconds, so explicit
// seeds reproduce grids and the zero value stays convenient.
func Generate(length, width int, seed int64) (*types.Maze, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	b := builder.New(rand.New(rand.NewSource(seed)))
	grid, err := b.Generate(length, width)
	if err != nil {
		return nil, fmt.Errorf("generate %dx%d maze: %w", length, width, err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("new maze id: %w", err)
	}

	return &types.Maze{
		ID:        id.String(),
		Seed:      seed,
		Length:    length,
		Width:     width,
		Grid:      grid,
		CreatedAt: time.Now(),
	}, nil
}
