package economy

import "errors"

var (
	ErrUnknownEntry      = errors.New("unknown catalog entry")
	ErrInvalidCount      = errors.New("count must be at least 1")
	ErrMaxLevelReached   = errors.New("max level reached")
	ErrInsufficientFunds = errors.New("not enough lines of code")
	ErrPrestigeTooEarly  = errors.New("not enough lines to prestige")
)
