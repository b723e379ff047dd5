package prompt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gorilla/schema"
)

var ErrBadCommand = errors.New("expected <column> <row> free|mine")

// Move is a decoded player command with zero-based coordinates.
type Move struct {
	Action   Action
	Row, Col int
}

type command struct {
	X      int    `schema:"x,required"`
	Y      int    `schema:"y,required"`
	Action string `schema:"action,required"`
}

var commandDecoder = schema.NewDecoder()

func init() {
	commandDecoder.IgnoreUnknownKeys(true)
}

// ParseMove reads "<column> <row> <action>" with 1-based coordinates and
// checks them against a board of the given size.
func ParseMove(line string, size int) (Move, error) {
	tokens := strings.Fields(line)
	if len(tokens) != 3 {
		return Move{}, ErrBadCommand
	}

	var cmd command
	src := map[string][]string{
		"x":      {tokens[0]},
		"y":      {tokens[1]},
		"action": {tokens[2]},
	}
	if err := commandDecoder.Decode(&cmd, src); err != nil {
		return Move{}, fmt.Errorf("%w: %w", ErrBadCommand, err)
	}

	action, err := decodeAction(cmd.Action)
	if err != nil {
		return Move{}, err
	}
	if cmd.X < 1 || cmd.X > size || cmd.Y < 1 || cmd.Y > size {
		return Move{}, fmt.Errorf("coordinates must be between 1 and %d", size)
	}

	return Move{Action: action, Row: cmd.Y - 1, Col: cmd.X - 1}, nil
}
