package mines

import (
	"fmt"
	"iter"
	"math/rand/v2"

	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"
)

type Board struct {
	params Params
	cells  []Cell
	mines  []int /* indices of mine cells */
	opened int
	marked int
	state  State
}

// New validates params before touching the grid, so mine placement below
// always has a free cell to land on. A nil r uses the global generator.
func New(params Params, r *rand.Rand) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	intN := rand.IntN
	if r != nil {
		intN = r.IntN
	}

	b := newBoard(params)
	b.placeMines(intN)
	b.linkCells()

	Log.WithFields(logrus.Fields{
		"size":      params.Size,
		"mineCount": params.MineCount,
	}).Debug("board generated")

	return b, nil
}

// FromLayout builds a board with mines at exactly the given positions.
func FromLayout(size int, mines []Position) (*Board, error) {
	params := Params{Size: size, MineCount: len(mines)}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	b := newBoard(params)
	for _, p := range mines {
		if !params.PointInBounds(p.Row, p.Col) {
			return nil, fmt.Errorf("%w: mine %s is outside a %dx%d board",
				ErrInvalidConfiguration, p, size, size)
		}
		i := b.index(p)
		if b.cells[i].kind == Mine {
			return nil, fmt.Errorf("%w: duplicate mine %s",
				ErrInvalidConfiguration, p)
		}
		b.layMine(i)
	}
	b.linkCells()
	return b, nil
}

func newBoard(params Params) *Board {
	b := &Board{
		params: params,
		cells:  make([]Cell, params.CellCount()),
		mines:  make([]int, 0, params.MineCount),
	}
	for i := range b.cells {
		b.cells[i].pos = Position{Row: i / params.Size, Col: i % params.Size}
	}
	return b
}

/*
 * Rejection sampling: draw until an empty cell turns up. Validate
 * guarantees at least one empty cell remains for every draw.
 */
func (b *Board) placeMines(intN func(int) int) {
	size := b.params.Size
	for range b.params.MineCount {
		for {
			i := intN(size)*size + intN(size)
			if b.cells[i].kind == Empty {
				b.layMine(i)
				break
			}
		}
	}
}

func (b *Board) layMine(i int) {
	b.cells[i].kind = Mine
	b.mines = append(b.mines, i)
}

// linkCells builds the Moore neighbourhood of every cell, clipped at the
// edges, then counts mines in it. Both are frozen afterwards.
func (b *Board) linkCells() {
	for i := range b.cells {
		c := &b.cells[i]
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				p := Position{Row: c.pos.Row + dr, Col: c.pos.Col + dc}
				if (dr != 0 || dc != 0) && b.params.PointInBounds(p.Row, p.Col) {
					c.neighbors = append(c.neighbors, p)
				}
			}
		}
	}
	for i := range b.cells {
		c := &b.cells[i]
		for _, p := range c.neighbors {
			if b.cells[b.index(p)].kind == Mine {
				c.mineNeighbors++
			}
		}
	}
}

func (b *Board) index(p Position) int {
	return p.Row*b.params.Size + p.Col
}

func (b *Board) Size() int          { return b.params.Size }
func (b *Board) MineCount() int     { return b.params.MineCount }
func (b *Board) Params() Params     { return b.params }
func (b *Board) State() State       { return b.state }
func (b *Board) OpenedCount() int   { return b.opened }
func (b *Board) MarkedCount() int   { return b.marked }
func (b *Board) SafeCellCount() int { return b.params.CellCount() - b.params.MineCount }

func (b *Board) checkPoint(row, col int) error {
	if !b.params.PointInBounds(row, col) {
		return fmt.Errorf("%w: (%d, %d) is outside a %dx%d board",
			ErrInvalidCoordinate, row, col, b.params.Size, b.params.Size)
	}
	return nil
}

func (b *Board) checkInProgress() error {
	if b.state != InProgress {
		return fmt.Errorf("%w (%s)", ErrGameOver, b.state)
	}
	return nil
}

// Cell returns a copy of the cell at row, col.
func (b *Board) Cell(row, col int) (Cell, error) {
	if err := b.checkPoint(row, col); err != nil {
		return Cell{}, err
	}
	c := b.cells[b.index(Position{row, col})]
	c.neighbors = c.Neighbors()
	return c, nil
}

func (b *Board) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for _, c := range b.cells {
			c.neighbors = c.Neighbors()
			if !yield(c) {
				return
			}
		}
	}
}

func (b *Board) Symbol(row, col int) (rune, error) {
	if err := b.checkPoint(row, col); err != nil {
		return 0, err
	}
	return b.cells[b.index(Position{row, col})].Symbol()
}

// open is the only place where the opened and marked counters change on
// behalf of a reveal.
func (b *Board) open(i int) RevealResult {
	result, unmarked := b.cells[i].open()
	if result == Opened {
		b.opened++
	}
	if unmarked {
		b.marked--
	}
	return result
}

func (b *Board) Reveal(row, col int) (RevealOutcome, error) {
	if err := b.checkInProgress(); err != nil {
		return RevealOutcome{State: b.state}, err
	}
	if err := b.checkPoint(row, col); err != nil {
		return RevealOutcome{State: b.state}, err
	}

	i := b.index(Position{row, col})
	outcome := RevealOutcome{Result: b.open(i)}

	switch outcome.Result {
	case Bombed:
		b.explode()
		outcome.State = b.state
		return outcome, nil
	case Opened:
		outcome.Opened = append(outcome.Opened, b.cells[i].pos)
		if b.cells[i].mineNeighbors == 0 {
			outcome.Opened = b.floodFill(i, outcome.Opened)
		}
	}

	b.checkWin()
	outcome.State = b.state
	return outcome, nil
}

/*
 * Breadth-first expansion over the neighbour graph starting at a freshly
 * opened cell with no neighbouring mines. Every cell is marked visited
 * before it is opened, so nothing is opened twice and the queue drains after
 * at most one pass over the grid. Neighbours of a zero cell are never mines.
 */
func (b *Board) floodFill(start int, opened []Position) []Position {
	visited := make([]bool, len(b.cells))
	visited[start] = true

	var queue deque.Deque[int]
	for _, p := range b.cells[start].neighbors {
		queue.PushBack(b.index(p))
	}

	for queue.Len() > 0 {
		i := queue.PopFront()
		if visited[i] {
			continue
		}
		visited[i] = true

		if b.open(i) != Opened {
			continue
		}
		opened = append(opened, b.cells[i].pos)
		if b.cells[i].mineNeighbors == 0 {
			for _, p := range b.cells[i].neighbors {
				if j := b.index(p); !visited[j] {
					queue.PushBack(j)
				}
			}
		}
	}

	return opened
}

// explode opens every mine, marked or not, and ends the game.
func (b *Board) explode() {
	for _, i := range b.mines {
		if b.cells[i].opened {
			continue
		}
		if b.cells[i].expose() {
			b.marked--
		}
		b.opened++
	}
	b.state = Loss

	Log.WithFields(logrus.Fields{
		"seed":   b.params.Seed(),
		"opened": b.opened,
	}).Debug("mine revealed, game lost")
}

func (b *Board) ToggleMark(row, col int) (MarkOutcome, error) {
	if err := b.checkInProgress(); err != nil {
		return MarkOutcome{State: b.state}, err
	}
	if err := b.checkPoint(row, col); err != nil {
		return MarkOutcome{State: b.state}, err
	}

	c := &b.cells[b.index(Position{row, col})]
	outcome := MarkOutcome{Result: c.toggleMark()}
	switch outcome.Result {
	case Marked:
		b.marked++
	case Unmarked:
		b.marked--
	case CellOpen:
		outcome.HasNumber = c.mineNeighbors > 0
	}

	b.checkWin()
	outcome.State = b.state
	return outcome, nil
}

func (b *Board) checkWin() {
	if b.state != InProgress {
		return
	}
	if b.opened == b.SafeCellCount() ||
		b.marked == b.params.MineCount && b.allMinesMarked() {
		b.state = Win

		Log.WithFields(logrus.Fields{
			"seed":   b.params.Seed(),
			"opened": b.opened,
			"marked": b.marked,
		}).Debug("game won")
	}
}

func (b *Board) allMinesMarked() bool {
	for _, i := range b.mines {
		if !b.cells[i].marked {
			return false
		}
	}
	return true
}
