package domain

import (
	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/domain/events"
)

// Action is a decision the player can take during their turn
type Action string

const (
	ActionHit      Action = "hit"
	ActionStand    Action = "stand"
	ActionWalkAway Action = "walk_away"
)

// RoundView represents what the player is allowed to see of a round
type RoundView struct {
	RoundID string
	Number  int
	Phase   RoundPhase

	PlayerCards cards.Stack
	PlayerTotal int

	// the hole card stays face down until the dealer's turn
	DealerCards        cards.HeldStack
	DealerVisibleTotal int

	AvailableActions []Action
	Result           *Result
}

// View builds the player's view of the round
func (r *Round) View() RoundView {
	view := RoundView{
		RoundID:     r.ID,
		Number:      r.Number,
		Phase:       r.Phase,
		PlayerCards: r.Player.Cards(),
		PlayerTotal: r.Player.Total(),
		DealerCards: cards.NewHeldStack(r.Dealer.Cards(), cards.FaceUp),
	}

	if r.hidesHoleCard() && len(view.DealerCards) > 1 {
		view.DealerCards[1].Hide()
	}
	view.DealerVisibleTotal = NewHand(view.DealerCards.Visible()...).Total()

	if r.IsInPhase(RoundPhase_PlayerTurn) {
		view.AvailableActions = []Action{ActionHit, ActionStand, ActionWalkAway}
	}

	if result, ok := r.Result(); ok {
		view.Result = &result
	}

	return view
}

// UpCard returns the dealer's face-up card
func (v RoundView) UpCard() (cards.Card, error) {
	if len(v.DealerCards) == 0 {
		return cards.Card{}, ErrEmptyHand
	}
	return v.DealerCards[0].Card, nil
}

// CanAct checks if the player may take the given action
func (v RoundView) CanAct(action Action) bool {
	for _, a := range v.AvailableActions {
		if a == action {
			return true
		}
	}
	return false
}

// The hole card is revealed once the dealer plays. A round that ends before
// that (natural, bust, walk-away) keeps it hidden.
func (r *Round) hidesHoleCard() bool {
	for _, e := range r.Events {
		if _, revealed := e.(events.DealerHoleCardRevealed); revealed {
			return false
		}
	}
	return true
}
