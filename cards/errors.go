package cards

import "errors"

var (
	// ErrInvalidConfiguration is returned when a shoe is requested with an
	// unsupported number of decks.
	ErrInvalidConfiguration = errors.New("invalid shoe configuration")

	// ErrEmptyShoe is returned when drawing from a shoe with no cards left.
	ErrEmptyShoe = errors.New("shoe is empty")
)
