package engine

import "errors"

// Error kinds raised by the engine and the state machine. A rejected call
// never mutates state, so every one of these reaching a caller indicates a
// caller bug: the driver layer is expected to consult the legality helpers
// before offering an action.
var (
	ErrIllegalAction     = errors.New("illegal action")
	ErrIllegalPlay       = errors.New("illegal play")
	ErrInvalidTrump      = errors.New("invalid trump")
	ErrInsufficientCards = errors.New("insufficient cards")
	ErrEmptyCollection   = errors.New("empty collection")
)
