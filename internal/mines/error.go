package mines

import "errors"

var (
	ErrInvalidConfiguration = errors.New("invalid board configuration")
	ErrInvalidCoordinate    = errors.New("invalid cell coordinates")
	ErrGameOver             = errors.New("game is already over")
)

type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}
