package domain

import (
	"fmt"

	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/domain/events"
)

// DealerStandsOn is the total at which the dealer stops drawing, soft 17 included
const DealerStandsOn = 17

// Drawer is a source of cards dealt from the top. *cards.Shoe implements it.
type Drawer interface {
	Draw() (cards.Card, error)
}

// dealOrder is the order of the four opening cards
var dealOrder = []events.Participant{events.Player, events.Player, events.Dealer, events.Dealer}

// DealRound deals two cards each to a fresh player hand and a fresh dealer hand
func DealRound(shoe Drawer) (player *Hand, dealer *Hand, err error) {
	player, dealer = NewHand(), NewHand()
	for _, to := range dealOrder {
		card, err := shoe.Draw()
		if err != nil {
			return nil, nil, fmt.Errorf("deal round: %w", err)
		}
		if to == events.Player {
			player.AddCard(card)
		} else {
			dealer.AddCard(card)
		}
	}
	return player, dealer, nil
}

// PlayerHit draws one card into the player's hand and reports whether it busted
func PlayerHit(shoe Drawer, player *Hand) (bool, error) {
	card, err := shoe.Draw()
	if err != nil {
		return false, fmt.Errorf("player hit: %w", err)
	}
	player.AddCard(card)
	return player.IsBust(), nil
}

// DealerShouldHit applies the dealer policy: draw below 17, stand otherwise
func DealerShouldHit(dealer *Hand) bool {
	return dealer.Total() < DealerStandsOn
}

// DealerPlay draws for the dealer until the policy says stand
func DealerPlay(shoe Drawer, dealer *Hand) error {
	return dealerPlay(shoe, dealer, nil)
}

func dealerPlay(shoe Drawer, dealer *Hand, onDraw func(card cards.Card)) error {
	for DealerShouldHit(dealer) {
		card, err := shoe.Draw()
		if err != nil {
			return fmt.Errorf("dealer play: %w", err)
		}
		dealer.AddCard(card)
		if onDraw != nil {
			onDraw(card)
		}
	}
	return nil
}

// Settle decides the outcome of two finished hands
func Settle(player, dealer *Hand) Outcome {
	return Resolve(player, dealer).Outcome
}

// Resolve decides the outcome of two finished hands together with its reason.
// A player natural wins outright without looking at the dealer's hand.
func Resolve(player, dealer *Hand) Result {
	result := Result{
		PlayerTotal: player.Total(),
		DealerTotal: dealer.Total(),
	}

	switch {
	case player.IsBlackjack():
		result.Outcome, result.Reason = OutcomePlayerWin, ReasonBlackjack
	case player.IsBust():
		result.Outcome, result.Reason = OutcomeDealerWin, ReasonPlayerBust
	case dealer.IsBust():
		result.Outcome, result.Reason = OutcomePlayerWin, ReasonDealerBust
	case result.PlayerTotal > result.DealerTotal:
		result.Outcome, result.Reason = OutcomePlayerWin, ReasonHigherTotal
	case result.PlayerTotal < result.DealerTotal:
		result.Outcome, result.Reason = OutcomeDealerWin, ReasonHigherTotal
	default:
		result.Outcome, result.Reason = OutcomePush, ReasonEqualTotals
	}
	return result
}
