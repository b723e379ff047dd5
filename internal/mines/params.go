package mines

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxSize keeps Size*Size far from overflow and the grid allocation small.
const MaxSize = 1000

type Params struct {
	Size, MineCount int
}

func (p Params) CellCount() int {
	return p.Size * p.Size
}

// Validate rejects any size that cannot hold at least one safe cell.
func (p Params) Validate() error {
	if p.Size < 1 || p.Size > MaxSize {
		return fmt.Errorf("%w: size must be in [1, %d] (size = %d)",
			ErrInvalidConfiguration, MaxSize, p.Size)
	}
	if p.MineCount < 0 || p.MineCount >= p.CellCount() {
		return fmt.Errorf("%w: mine count must be in [0, %d) (mine count = %d)",
			ErrInvalidConfiguration, p.CellCount(), p.MineCount)
	}
	return nil
}

func (p Params) PointInBounds(row, col int) bool {
	return 0 <= row && row < p.Size && 0 <= col && col < p.Size
}

func (p Params) Seed() string {
	return fmt.Sprintf("%d:%d", p.Size, p.MineCount)
}

// ParseSeed reads the "size:mines" form written by Seed. It checks the shape
// only; callers still Validate the result.
func ParseSeed(seed string) (*Params, error) {
	size, mineCount, ok := strings.Cut(strings.TrimSpace(seed), ":")
	if !ok {
		return nil, fmt.Errorf(`board %q is not in "size:mines" form`, seed)
	}
	p := &Params{}
	var err error
	if p.Size, err = strconv.Atoi(size); err != nil {
		return nil, fmt.Errorf("board %q has a bad size: %w", seed, err)
	}
	if p.MineCount, err = strconv.Atoi(mineCount); err != nil {
		return nil, fmt.Errorf("board %q has a bad mine count: %w", seed, err)
	}
	return p, nil
}
