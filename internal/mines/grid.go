package mines

import (
	"strings"
)

// Rows renders the board one string of symbols per row.
func (b *Board) Rows() ([]string, error) {
	size := b.params.Size
	rows := make([]string, 0, size)
	for row := range size {
		var sb strings.Builder
		for col := range size {
			s, err := b.cells[row*size+col].Symbol()
			if err != nil {
				return nil, err
			}
			sb.WriteRune(s)
		}
		rows = append(rows, sb.String())
	}
	return rows, nil
}

// ToString panics with an [AssertionError] on an inconsistent cell.
func (b *Board) ToString() string {
	rows, err := b.Rows()
	if err != nil {
		panic(err)
	}
	return strings.Join(rows, "\n") + "\n"
}
