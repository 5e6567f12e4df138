package builder

import "github.com/akk228/maze/pkg/types"

// placeEntrance opens the entrance on a uniformly chosen boundary
// side, at a uniformly chosen position strictly between the corners,
// and returns its position.
func (b *Builder) placeEntrance(g *types.Grid) types.Point {
	p := b.randomBoundaryPoint(g)
	g.Set(p, types.Entrance)
	return p
}

// randomBoundaryPoint picks a non-corner boundary cell with all four
// sides equally likely.
func (b *Builder) randomBoundaryPoint(g *types.Grid) types.Point {
	switch b.rng.Intn(4) {
	case 0: // top
		return types.Point{Row: 0, Col: 1 + b.rng.Intn(g.Width()-2)}
	case 1: // bottom
		return types.Point{Row: g.Length() - 1, Col: 1 + b.rng.Intn(g.Width()-2)}
	case 2: // left
		return types.Point{Row: 1 + b.rng.Intn(g.Length()-2), Col: 0}
	default: // right
		return types.Point{Row: 1 + b.rng.Intn(g.Length()-2), Col: g.Width() - 1}
	}
}

// placeExit scans the boundary for cells whose inward neighbor was
// reached by the carve, opens one of them chosen uniformly, and
// returns its position. The entrance and the four corners never
// qualify. Returns types.ErrNoExitCandidate when the scan comes up
// empty; with a completed carve that state is unreachable, but it is
// surfaced rather than returning a malformed grid.
func (b *Builder) placeExit(g *types.Grid, entrance types.Point) (types.Point, error) {
	var candidates []types.Point
	for _, p := range boundaryPoints(g) {
		if p == entrance {
			continue
		}
		if g.At(p.Add(inward(g, p))).Open() {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return types.Point{}, types.ErrNoExitCandidate
	}
	p := candidates[b.rng.Intn(len(candidates))]
	g.Set(p, types.Exit)
	return p, nil
}

// boundaryPoints lists the non-corner boundary cells in a fixed scan
// order: top row, bottom row, left column, right column.
func boundaryPoints(g *types.Grid) []types.Point {
	points := make([]types.Point, 0, 2*(g.Length()+g.Width())-8)
	for col := 1; col < g.Width()-1; col++ {
		points = append(points, types.Point{Row: 0, Col: col})
		points = append(points, types.Point{Row: g.Length() - 1, Col: col})
	}
	for row := 1; row < g.Length()-1; row++ {
		points = append(points, types.Point{Row: row, Col: 0})
		points = append(points, types.Point{Row: row, Col: g.Width() - 1})
	}
	return points
}

// inward returns the unit step from a non-corner boundary cell toward
// the interior.
func inward(g *types.Grid, p types.Point) types.Direction {
	switch {
	case p.Row == 0:
		return types.Direction{Row: 1}
	case p.Row == g.Length()-1:
		return types.Direction{Row: -1}
	case p.Col == 0:
		return types.Direction{Col: 1}
	default:
		return types.Direction{Col: -1}
	}
}
