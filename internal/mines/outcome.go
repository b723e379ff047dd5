package mines

type State uint8

const (
	InProgress State = iota
	Win
	Loss
)

func (s State) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Win:
		return "win"
	case Loss:
		return "loss"
	default:
		return "!"
	}
}

type RevealResult uint8

const (
	Opened RevealResult = iota + 1
	AlreadyOpened
	Bombed
)

func (r RevealResult) String() string {
	switch r {
	case Opened:
		return "opened"
	case AlreadyOpened:
		return "already opened"
	case Bombed:
		return "bombed"
	default:
		return "!"
	}
}

type RevealOutcome struct {
	Result RevealResult
	// Opened lists the safe cells opened by the call, the target first and
	// then the cascade in the order it was expanded.
	Opened []Position
	State  State
}

type MarkResult uint8

const (
	Marked MarkResult = iota + 1
	Unmarked
	CellOpen
)

func (r MarkResult) String() string {
	switch r {
	case Marked:
		return "marked"
	case Unmarked:
		return "unmarked"
	case CellOpen:
		return "cell open"
	default:
		return "!"
	}
}

type MarkOutcome struct {
	Result MarkResult
	// HasNumber is only meaningful for CellOpen: the open cell shows a digit.
	HasNumber bool
	State     State
}
