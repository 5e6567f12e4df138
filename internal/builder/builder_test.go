package builder

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akk228/maze/pkg/types"
)

// newBuilder returns a Builder with a deterministic source.
func newBuilder(seed int64) *Builder {
	return New(rand.New(rand.NewSource(seed)))
}

// floodFill returns the set of open cells reachable from start by
// orthogonal steps over non-Wall cells.
func floodFill(g *types.Grid, start types.Point) map[types.Point]bool {
	reached := map[types.Point]bool{start: true}
	queue := []types.Point{start}
	steps := []types.Direction{{Row: -1}, {Row: 1}, {Col: -1}, {Col: 1}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range steps {
			n := cur.Add(d)
			if g.Contains(n) && !reached[n] && g.At(n).Open() {
				reached[n] = true
				queue = append(queue, n)
			}
		}
	}
	return reached
}

func TestGenerateInvalidDimensions(t *testing.T) {
	b := newBuilder(1)
	for _, dims := range [][2]int{{2, 10}, {10, 2}, {0, 0}, {-4, 8}, {3, 1}} {
		g, err := b.Generate(dims[0], dims[1])
		require.ErrorIs(t, err, types.ErrInvalidDimensions, "Generate(%d, %d)", dims[0], dims[1])
		assert.Nil(t, g)
	}
}

func TestGenerateOpenings(t *testing.T) {
	sizes := [][2]int{{3, 3}, {3, 9}, {9, 3}, {5, 5}, {10, 14}, {21, 41}}
	for _, size := range sizes {
		for seed := int64(1); seed <= 5; seed++ {
			g, err := newBuilder(seed).Generate(size[0], size[1])
			require.NoError(t, err, "Generate(%d, %d) seed %d", size[0], size[1], seed)

			assert.Equal(t, 1, g.Count(types.Entrance), "exactly one entrance")
			assert.Equal(t, 1, g.Count(types.Exit), "exactly one exit")

			entrance, ok := g.Find(types.Entrance)
			require.True(t, ok)
			exit, ok := g.Find(types.Exit)
			require.True(t, ok)

			assert.NotEqual(t, entrance, exit)
			for name, p := range map[string]types.Point{"entrance": entrance, "exit": exit} {
				assert.True(t, g.OnBoundary(p), "%s must sit on the boundary", name)
				assert.False(t, g.IsCorner(p), "%s must not sit in a corner", name)
			}
		}
	}
}

func TestGenerateBoundaryStaysClosed(t *testing.T) {
	g, err := newBuilder(7).Generate(11, 17)
	require.NoError(t, err)

	open := 0
	for row := 0; row < g.Length(); row++ {
		for col := 0; col < g.Width(); col++ {
			p := types.Point{Row: row, Col: col}
			if g.OnBoundary(p) && g.At(p) != types.Wall {
				open++
				assert.Contains(t, []types.Cell{types.Entrance, types.Exit}, g.At(p))
			}
		}
	}
	assert.Equal(t, 2, open, "only the entrance and exit open the boundary")
}

func TestGenerateConnectivity(t *testing.T) {
	sizes := [][2]int{{3, 3}, {5, 5}, {9, 13}, {25, 25}}
	for _, size := range sizes {
		for seed := int64(1); seed <= 4; seed++ {
			g, err := newBuilder(seed).Generate(size[0], size[1])
			require.NoError(t, err)

			entrance, ok := g.Find(types.Entrance)
			require.True(t, ok)
			reached := floodFill(g, entrance)

			exit, ok := g.Find(types.Exit)
			require.True(t, ok)
			assert.True(t, reached[exit], "exit must be reachable from the entrance (%dx%d seed %d)", size[0], size[1], seed)

			for row := 0; row < g.Length(); row++ {
				for col := 0; col < g.Width(); col++ {
					p := types.Point{Row: row, Col: col}
					if g.At(p) == types.Passage {
						assert.True(t, reached[p], "passage %v unreachable (%dx%d seed %d)", p, size[0], size[1], seed)
					}
				}
			}
		}
	}
}

// TestGenerateWallsStayThick checks the corridor-width invariant on
// the finished grid: no 2x2 block may consist entirely of carved
// cells, which is what a two-cell-wide corridor or a passage merge
// would produce. Exit cells are exempt, matching the carve rule that
// treats the exit as a deliberate opening.
func TestGenerateWallsStayThick(t *testing.T) {
	carved := func(c types.Cell) bool {
		return c == types.Passage || c == types.Entrance
	}
	sizes := [][2]int{{5, 5}, {8, 12}, {17, 23}, {30, 30}}
	for _, size := range sizes {
		for seed := int64(1); seed <= 4; seed++ {
			g, err := newBuilder(seed).Generate(size[0], size[1])
			require.NoError(t, err)

			for row := 0; row < g.Length()-1; row++ {
				for col := 0; col < g.Width()-1; col++ {
					wide := carved(g.At(types.Point{Row: row, Col: col})) &&
						carved(g.At(types.Point{Row: row, Col: col + 1})) &&
						carved(g.At(types.Point{Row: row + 1, Col: col})) &&
						carved(g.At(types.Point{Row: row + 1, Col: col + 1}))
					assert.False(t, wide, "carved 2x2 block at (%d,%d) (%dx%d seed %d)", row, col, size[0], size[1], seed)
				}
			}
		}
	}
}

func TestGenerateDeterminism(t *testing.T) {
	t.Run("same seed reproduces the grid", func(t *testing.T) {
		for seed := int64(1); seed <= 10; seed++ {
			a, err := newBuilder(seed).Generate(15, 21)
			require.NoError(t, err)
			b, err := newBuilder(seed).Generate(15, 21)
			require.NoError(t, err)
			assert.Equal(t, a.Render(), b.Render(), "seed %d", seed)
		}
	})

	t.Run("different seeds diverge", func(t *testing.T) {
		a, err := newBuilder(1).Generate(15, 21)
		require.NoError(t, err)
		b, err := newBuilder(2).Generate(15, 21)
		require.NoError(t, err)
		assert.NotEqual(t, a.Render(), b.Render())
	})
}

func TestGenerateSmallestMaze(t *testing.T) {
	center := types.Point{Row: 1, Col: 1}
	midpoints := []types.Point{{Row: 0, Col: 1}, {Row: 2, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 2}}

	for seed := int64(1); seed <= 20; seed++ {
		g, err := newBuilder(seed).Generate(3, 3)
		require.NoError(t, err)

		assert.Equal(t, types.Passage, g.At(center), "the only interior cell must be carved (seed %d)", seed)

		entrance, _ := g.Find(types.Entrance)
		exit, _ := g.Find(types.Exit)
		assert.Contains(t, midpoints, entrance)
		assert.Contains(t, midpoints, exit)
		assert.NotEqual(t, entrance, exit)
	}
}

func TestGenerateRenderShape(t *testing.T) {
	g, err := newBuilder(3).Generate(5, 5)
	require.NoError(t, err)

	lines := strings.Split(g.Render(), "\n")
	require.Len(t, lines, 5)

	counts := map[byte]int{}
	for _, line := range lines {
		require.Len(t, line, 5)
		for i := 0; i < len(line); i++ {
			counts[line[i]]++
		}
	}

	assert.Equal(t, 1, counts[types.SymbolEntrance])
	assert.Equal(t, 1, counts[types.SymbolExit])
	assert.Equal(t, 25, counts[types.SymbolWall]+counts[types.SymbolPassage]+2,
		"only the four legal symbols may appear")
}
