package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-cli/internal/mines"
)

func TestRender(t *testing.T) {
	b, err := mines.FromLayout(3, []mines.Position{{Row: 1, Col: 1}})
	require.NoError(t, err)
	_, err = b.Reveal(0, 0)
	require.NoError(t, err)
	_, err = b.ToggleMark(2, 2)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, Render(&sb, b))
	assert.Equal(t, ""+
		" |123|\n"+
		"-|---|\n"+
		"1|1..|\n"+
		"2|...|\n"+
		"3|..*|\n"+
		"-|---|\n",
		sb.String(),
	)
}

func TestRenderWideBoard(t *testing.T) {
	b, err := mines.New(mines.Params{Size: 10, MineCount: 5}, nil)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, Render(&sb, b))
	lines := strings.Split(strings.TrimSuffix(sb.String(), "\n"), "\n")
	require.Len(t, lines, 14)
	assert.Equal(t, "  |         1|", lines[0])
	assert.Equal(t, "  |1234567890|", lines[1])
	assert.Equal(t, "--|----------|", lines[2])
	assert.Equal(t, " 1|..........|", lines[3])
	assert.Equal(t, "10|..........|", lines[12])
	assert.Equal(t, lines[2], lines[13])
}

func TestRenderColumnLabelsStayDistinct(t *testing.T) {
	b, err := mines.New(mines.Params{Size: 12, MineCount: 0}, nil)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, Render(&sb, b))
	lines := strings.Split(sb.String(), "\n")
	assert.Equal(t, "  |         111|", lines[0])
	assert.Equal(t, "  |123456789012|", lines[1])

	// column 1 and column 11 differ in the tens line
	assert.NotEqual(t, lines[0][3], lines[0][3+10])
	assert.Equal(t, lines[1][3], lines[1][3+10])
}
