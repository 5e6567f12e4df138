package types

// Cell is a single grid cell marker. Every cell holds exactly one of
// the four values below.
type Cell uint8

// The four cell markers.
const (
	Wall Cell = iota
	Passage
	Entrance
	Exit
)

// Render symbols, one byte per marker.
const (
	SymbolWall     byte = 'X'
	SymbolPassage  byte = '.'
	SymbolEntrance byte = 'I'
	SymbolExit     byte = 'O'
)

// Symbol returns the render symbol for the cell.
func (c Cell) Symbol() byte {
	switch c {
	case Passage:
		return SymbolPassage
	case Entrance:
		return SymbolEntrance
	case Exit:
		return SymbolExit
	default:
		return SymbolWall
	}
}

// Open reports whether the cell can be traversed: anything but a wall.
func (c Cell) Open() bool {
	return c != Wall
}

// String returns the marker name for error messages and test output.
func (c Cell) String() string {
	switch c {
	case Wall:
		return "wall"
	case Passage:
		return "passage"
	case Entrance:
		return "entrance"
	case Exit:
		return "exit"
	default:
		return "unknown"
	}
}

// CellFromSymbol returns the marker for a render symbol. The second
// return value is false when the symbol is not one of the four legal
// characters.
func CellFromSymbol(b byte) (Cell, bool) {
	switch b {
	case SymbolWall:
		return Wall, true
	case SymbolPassage:
		return Passage, true
	case SymbolEntrance:
		return Entrance, true
	case SymbolExit:
		return Exit, true
	default:
		return Wall, false
	}
}
