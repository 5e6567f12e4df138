package types

// Point is a grid coordinate. Row selects the line, Col the column;
// (0,0) is the top-left corner.
type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Add returns the point offset by d.
func (p Point) Add(d Direction) Point {
	return Point{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// Direction is a two-cell step along one axis. The cell the step skips
// over is the wall the move carves through.
type Direction struct {
	Row int
	Col int
}

// Half returns the one-cell step toward the direction: the offset of
// the wall cell a move carves through.
func (d Direction) Half() Direction {
	return Direction{Row: d.Row / 2, Col: d.Col / 2}
}

// Horizontal reports whether the step runs along a row.
func (d Direction) Horizontal() bool {
	return d.Row == 0
}

// The four carve directions.
var (
	North = Direction{Row: -2}
	South = Direction{Row: 2}
	West  = Direction{Col: -2}
	East  = Direction{Col: 2}
)

// Directions lists the four carve directions in fixed order. Callers
// that need a random order shuffle a copy.
var Directions = [4]Direction{North, South, East, West}
