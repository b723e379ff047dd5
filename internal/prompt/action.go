package prompt

import (
	"fmt"
	"strings"
)

type Action uint8

const (
	Reveal Action = iota + 1
	ToggleMark
	lastAction
)

// String returns the keyword the player types for the action.
func (a Action) String() string {
	switch a {
	case Reveal:
		return "free"
	case ToggleMark:
		return "mine"
	default:
		return fmt.Sprintf("Action(%d)", uint8(a))
	}
}

var ErrBadAction error

func init() {
	var allowed []string
	for i := 1; i < int(lastAction); i++ {
		allowed = append(allowed, "'"+Action(i).String()+"'")
	}
	ErrBadAction = fmt.Errorf("action must be one of %s", strings.Join(allowed, ", "))
}

func decodeAction(s string) (action Action, err error) {
	switch strings.ToLower(s) {
	case "free":
		action = Reveal
	case "mine":
		action = ToggleMark
	default:
		err = ErrBadAction
	}
	return
}
