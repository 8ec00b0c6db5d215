package domain

import "errors"

var (
	// ErrEmptyHand is returned when reading the first card of a hand with no cards.
	ErrEmptyHand = errors.New("hand is empty")

	// ErrActionNotAllowed is returned when a round action is taken in the wrong phase.
	ErrActionNotAllowed = errors.New("action not allowed in current phase")

	// ErrRoundInProgress is returned when starting a round before the previous one ended.
	ErrRoundInProgress = errors.New("a round is already in progress")

	// ErrInvalidRules is returned when session rules cannot produce a playable round.
	ErrInvalidRules = errors.New("invalid session rules")
)
