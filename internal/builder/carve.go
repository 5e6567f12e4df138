package builder

import "github.com/akk228/maze/pkg/types"

// frame is one step of the carving walk: the cell the walk stands on,
// the direction order drawn for that cell, and the index of the next
// direction to try.
type frame struct {
	pos  types.Point
	dirs [4]types.Direction
	next int
}

// carve runs the randomized depth-first walk from the entrance. The
// walk advances one cell at a time: a move looks two cells ahead, and
// when the move is legal the intervening wall cell is opened and
// becomes the new position. The textbook recursion is replaced by an
// explicit frame stack so large grids cannot exhaust the goroutine
// stack. Branch order matches the recursive form: each frame draws its
// own direction order once, on creation, and a direction's legality is
// evaluated only when its turn comes, against the grid as carved so far.
func (b *Builder) carve(g *types.Grid, entrance types.Point) {
	visited := make([][]bool, g.Length())
	for i := range visited {
		visited[i] = make([]bool, g.Width())
	}

	visited[entrance.Row][entrance.Col] = true
	stack := []frame{{pos: entrance, dirs: b.shuffledDirections()}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		pushed := false
		for top.next < len(top.dirs) {
			dir := top.dirs[top.next]
			top.next++

			wall := top.pos.Add(dir.Half())
			next := top.pos.Add(dir)
			if !validMove(g, wall, next) {
				continue
			}
			// Never overwrite the exit; the walk may connect to it
			// but the marker stays.
			if g.At(wall) != types.Exit {
				g.Set(wall, types.Passage)
			}
			if !visited[wall.Row][wall.Col] {
				visited[wall.Row][wall.Col] = true
				stack = append(stack, frame{pos: wall, dirs: b.shuffledDirections()})
				pushed = true
				break
			}
		}
		if !pushed && top.next >= len(top.dirs) {
			stack = stack[:len(stack)-1]
		}
	}
}

// shuffledDirections returns a fresh uniform permutation of the four
// carve directions. A new order is drawn per frame so branching varies
// at every depth.
func (b *Builder) shuffledDirections() [4]types.Direction {
	dirs := types.Directions
	b.rng.Shuffle(len(dirs), func(i, j int) {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	})
	return dirs
}

// validMove reports whether carving through wall into next is legal:
// next must be in bounds, wall strictly interior (the boundary is only
// opened at the entrance and exit), and next must still be Wall — or
// the Exit, which the walk may always connect to. Finally the move
// must keep walls one cell thick, so the carve never runs two passages
// together.
func validMove(g *types.Grid, wall, next types.Point) bool {
	if !g.Contains(next) || !g.Interior(wall) {
		return false
	}
	switch g.At(next) {
	case types.Exit:
		return true
	case types.Wall:
		return wallStaysThick(g, wall, next)
	default:
		return false
	}
}

// wallStaysThick enforces the single-cell wall rule: for a horizontal
// step both vertical neighbors of the opened cell must still be solid,
// for a vertical step both horizontal neighbors. An Exit neighbor
// counts as solid; that opening is deliberate.
func wallStaysThick(g *types.Grid, wall, next types.Point) bool {
	var sides [2]types.Point
	if wall.Row == next.Row {
		sides[0] = types.Point{Row: wall.Row - 1, Col: wall.Col}
		sides[1] = types.Point{Row: wall.Row + 1, Col: wall.Col}
	} else {
		sides[0] = types.Point{Row: wall.Row, Col: wall.Col - 1}
		sides[1] = types.Point{Row: wall.Row, Col: wall.Col + 1}
	}
	for _, s := range sides {
		if c := g.At(s); c != types.Wall && c != types.Exit {
			return false
		}
	}
	return true
}
