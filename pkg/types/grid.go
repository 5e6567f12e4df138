package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// MinDimension is the smallest legal grid side. A 3x3 grid has a
// single interior cell, the smallest maze that can hold a passage.
const MinDimension = 3

// Grid construction and generation errors.
var (
	ErrInvalidDimensions = errors.New("maze dimensions must be at least 3x3")
	ErrNoExitCandidate   = errors.New("no boundary cell qualifies as an exit")
)

// Grid is a rectangular maze: Length rows by Width columns of cell
// markers. The zero value is not usable; construct with NewGrid.
type Grid struct {
	length int
	width  int
	cells  [][]Cell
}

// NewGrid returns a length x width grid with every cell set to Wall.
// Returns ErrInvalidDimensions when either side is below MinDimension.
func NewGrid(length, width int) (*Grid, error) {
	if length < MinDimension || width < MinDimension {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, length, width)
	}
	cells := make([][]Cell, length)
	for i := range cells {
		cells[i] = make([]Cell, width)
	}
	return &Grid{length: length, width: width, cells: cells}, nil
}

// Length returns the number of rows.
func (g *Grid) Length() int { return g.length }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// At returns the marker at p. The point must be inside the grid.
func (g *Grid) At(p Point) Cell { return g.cells[p.Row][p.Col] }

// Set writes the marker at p. The point must be inside the grid.
func (g *Grid) Set(p Point, c Cell) { g.cells[p.Row][p.Col] = c }

// Contains reports whether p lies inside the grid.
func (g *Grid) Contains(p Point) bool {
	return p.Row >= 0 && p.Row < g.length && p.Col >= 0 && p.Col < g.width
}

// OnBoundary reports whether p lies on the outer boundary.
func (g *Grid) OnBoundary(p Point) bool {
	return g.Contains(p) &&
		(p.Row == 0 || p.Row == g.length-1 || p.Col == 0 || p.Col == g.width-1)
}

// IsCorner reports whether p is one of the four corner cells. Corners
// never hold an entrance or exit.
func (g *Grid) IsCorner(p Point) bool {
	return (p.Row == 0 || p.Row == g.length-1) &&
		(p.Col == 0 || p.Col == g.width-1)
}

// Interior reports whether p is strictly inside the boundary.
func (g *Grid) Interior(p Point) bool {
	return g.Contains(p) && !g.OnBoundary(p)
}

// Find returns the position of the first cell holding marker c in
// row-major order. The second return value is false when no cell does.
func (g *Grid) Find(c Cell) (Point, bool) {
	for i, row := range g.cells {
		for j, got := range row {
			if got == c {
				return Point{Row: i, Col: j}, true
			}
		}
	}
	return Point{}, false
}

// Count returns the number of cells holding marker c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, row := range g.cells {
		for _, got := range row {
			if got == c {
				n++
			}
		}
	}
	return n
}

// Render returns the character form of the grid: one symbol per cell,
// one line per row, rows separated by newlines. No header or footer.
func (g *Grid) Render() string {
	var b strings.Builder
	b.Grow(g.length * (g.width + 1))
	for i, row := range g.cells {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, c := range row {
			b.WriteByte(c.Symbol())
		}
	}
	return b.String()
}

// Rows returns the rendered rows, one string per grid row.
func (g *Grid) Rows() []string {
	return strings.Split(g.Render(), "\n")
}

// MarshalJSON encodes the grid as an array of rendered rows.
func (g *Grid) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.Rows())
}

// UnmarshalJSON decodes a grid from an array of rendered rows. All
// rows must have the same width and use only the four legal symbols.
func (g *Grid) UnmarshalJSON(data []byte) error {
	var rows []string
	if err := json.Unmarshal(data, &rows); err != nil {
		return err
	}
	if len(rows) < MinDimension {
		return fmt.Errorf("%w: got %d rows", ErrInvalidDimensions, len(rows))
	}
	width := len(rows[0])
	if width < MinDimension {
		return fmt.Errorf("%w: got %d columns", ErrInvalidDimensions, width)
	}
	cells := make([][]Cell, len(rows))
	for i, row := range rows {
		if len(row) != width {
			return fmt.Errorf("row %d: want %d cells, got %d", i, width, len(row))
		}
		cells[i] = make([]Cell, width)
		for j := 0; j < width; j++ {
			c, ok := CellFromSymbol(row[j])
			if !ok {
				return fmt.Errorf("row %d col %d: unknown symbol %q", i, j, row[j])
			}
			cells[i][j] = c
		}
	}
	g.length = len(rows)
	g.width = width
	g.cells = cells
	return nil
}
