package prompt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper-cli/internal/mines"
)

// Render writes the board framed with 1-based column and row labels:
//
//	 |123|
//	-|---|
//	1|.1/|
//	...
//
// Column labels are written top to bottom, one header line per digit, so
// column 11 on a wide board reads "1" over "1".
func Render(w io.Writer, b *mines.Board) error {
	rows, err := b.Rows()
	if err != nil {
		return err
	}

	size := b.Size()
	label := len(strconv.Itoa(size))
	pad := strings.Repeat(" ", label)
	dash := strings.Repeat("-", label)

	var sb strings.Builder
	for place := label - 1; place >= 0; place-- {
		unit := 1
		for range place {
			unit *= 10
		}
		sb.WriteString(pad + "|")
		for col := 1; col <= size; col++ {
			if col < unit {
				sb.WriteByte(' ')
			} else {
				sb.WriteString(strconv.Itoa(col / unit % 10))
			}
		}
		sb.WriteString("|\n")
	}

	separator := dash + "|" + strings.Repeat("-", size) + "|\n"
	sb.WriteString(separator)
	for i, row := range rows {
		fmt.Fprintf(&sb, "%*d|%s|\n", label, i+1, row)
	}
	sb.WriteString(separator)

	_, err = io.WriteString(w, sb.String())
	return err
}
