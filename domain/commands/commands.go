package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lazharichir/blackjack/domain"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrWrongRound     = errors.New("command targets another round")
)

type Command interface {
	Name() string
}

type Hit struct {
	RoundID string
}

func (h Hit) Name() string { return "HIT" }

type Stand struct {
	RoundID string
}

func (s Stand) Name() string { return "STAND" }

type WalkAway struct {
	RoundID string
}

func (w WalkAway) Name() string { return "WALK_AWAY" }

// FromInput maps a player's typed choice to a command for the given round.
// Input is matched case-insensitively after trimming spaces.
func FromInput(roundID, input string) (Command, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "h", "hit":
		return Hit{RoundID: roundID}, nil
	case "s", "stand":
		return Stand{RoundID: roundID}, nil
	case "w", "walk":
		return WalkAway{RoundID: roundID}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, input)
}

// Execute applies cmd to round
func Execute(round *domain.Round, cmd Command) error {
	var roundID string
	switch c := cmd.(type) {
	case Hit:
		roundID = c.RoundID
	case Stand:
		roundID = c.RoundID
	case WalkAway:
		roundID = c.RoundID
	default:
		return fmt.Errorf("%w: %T", ErrUnknownCommand, cmd)
	}
	if roundID != round.ID {
		return fmt.Errorf("%w: %s", ErrWrongRound, cmd.Name())
	}

	var err error
	switch cmd.(type) {
	case Hit:
		_, err = round.Hit()
	case Stand:
		_, err = round.Stand()
	case WalkAway:
		_, err = round.WalkAway()
	}
	return err
}
