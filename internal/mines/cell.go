package mines

import "fmt"

type Kind uint8

const (
	Empty Kind = iota
	Mine
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Mine:
		return "mine"
	default:
		return "!"
	}
}

type Position struct {
	Row, Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

/*
 * Rendered cell symbols:
 *
 *  - '*' the cell is marked as a suspected mine.
 *
 *  - '.' the cell is closed and unmarked.
 *
 *  - '/' the cell is open and has no neighbouring mines.
 *
 *  - '1' to '8' the cell is open and has that many neighbouring mines.
 *
 *  - 'X' the cell is an open mine (only after a loss).
 */
const (
	SymbolMarked = '*'
	SymbolClosed = '.'
	SymbolZero   = '/'
	SymbolMine   = 'X'
)

// Cell is a value owned by its Board. Neighbors are stored as positions and
// resolved through the board grid, never as pointers between cells.
type Cell struct {
	pos           Position
	kind          Kind
	opened        bool
	marked        bool
	mineNeighbors int
	neighbors     []Position
}

func (c Cell) Position() Position { return c.pos }
func (c Cell) Kind() Kind         { return c.kind }
func (c Cell) Opened() bool       { return c.opened }
func (c Cell) Marked() bool       { return c.marked }
func (c Cell) MineNeighbors() int { return c.mineNeighbors }

func (c Cell) Neighbors() []Position {
	return append([]Position(nil), c.neighbors...)
}

// open reports whether a set mark had to be dropped so the board can keep
// its marked counter exact.
func (c *Cell) open() (result RevealResult, unmarked bool) {
	switch {
	case c.kind == Mine:
		return Bombed, false
	case c.opened:
		return AlreadyOpened, false
	}
	c.opened = true
	if c.marked {
		c.marked = false
		unmarked = true
	}
	return Opened, unmarked
}

// expose opens a mine when the game is lost.
func (c *Cell) expose() (unmarked bool) {
	c.opened = true
	if c.marked {
		c.marked = false
		unmarked = true
	}
	return unmarked
}

func (c *Cell) toggleMark() MarkResult {
	if c.opened {
		return CellOpen
	}
	c.marked = !c.marked
	if c.marked {
		return Marked
	}
	return Unmarked
}

func (c Cell) Symbol() (rune, error) {
	switch {
	case c.marked && c.opened:
		return 0, AssertionError{fmt.Sprintf("cell %s is both open and marked", c.pos)}
	case c.marked:
		return SymbolMarked, nil
	case !c.opened:
		return SymbolClosed, nil
	case c.kind == Mine:
		return SymbolMine, nil
	case c.kind == Empty && c.mineNeighbors == 0:
		return SymbolZero, nil
	case c.kind == Empty && 0 < c.mineNeighbors && c.mineNeighbors <= 8:
		return rune('0' + c.mineNeighbors), nil
	default:
		return 0, AssertionError{fmt.Sprintf(
			"cell %s has no symbol (kind = %s, mine neighbors = %d)",
			c.pos, c.kind, c.mineNeighbors,
		)}
	}
}
