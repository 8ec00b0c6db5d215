package domain

import (
	"fmt"
	"strings"

	"github.com/lazharichir/blackjack/cards"
)

const (
	BlackjackTotal = 21
	softAceBonus   = 10 // an ace counts 11 instead of 1
)

// Hand represents the cards held by the player or the dealer during one round
type Hand struct {
	cards cards.Stack
}

// NewHand creates a hand holding the given cards in order
func NewHand(cs ...cards.Card) *Hand {
	h := &Hand{}
	h.cards.AddCards(cs...)
	return h
}

// AddCard appends a card to the hand
func (h *Hand) AddCard(card cards.Card) {
	h.cards.AddCard(card)
}

// FirstCard returns the first card dealt to the hand
func (h *Hand) FirstCard() (cards.Card, error) {
	if len(h.cards) == 0 {
		return cards.Card{}, ErrEmptyHand
	}
	return h.cards[0], nil
}

// LastCard returns the most recently added card
func (h *Hand) LastCard() (cards.Card, error) {
	if len(h.cards) == 0 {
		return cards.Card{}, ErrEmptyHand
	}
	return h.cards[len(h.cards)-1], nil
}

// Cards returns a copy of the cards in the hand
func (h *Hand) Cards() cards.Stack {
	out := make(cards.Stack, len(h.cards))
	copy(out, h.cards)
	return out
}

// Len returns the number of cards in the hand
func (h *Hand) Len() int {
	return len(h.cards)
}

// Total returns the best blackjack total of the hand: every ace counts 11 until
// that would push the total over 21, then drops to 1.
func (h *Hand) Total() int {
	total, _ := h.evaluate()
	return total
}

// IsSoft reports whether at least one ace in the total still counts 11
func (h *Hand) IsSoft() bool {
	_, softAces := h.evaluate()
	return softAces > 0
}

// IsBust reports whether the total is over 21
func (h *Hand) IsBust() bool {
	return h.Total() > BlackjackTotal
}

// IsBlackjack reports a natural: exactly two cards totalling 21
func (h *Hand) IsBlackjack() bool {
	return len(h.cards) == 2 && h.Total() == BlackjackTotal
}

// Describe renders the hand, e.g. "[Ace of Spades, 10 of Hearts] (Total: 21)"
func (h *Hand) Describe() string {
	names := make([]string, len(h.cards))
	for i, c := range h.cards {
		names[i] = c.String()
	}
	return fmt.Sprintf("[%s] (Total: %d)", strings.Join(names, ", "), h.Total())
}

func (h *Hand) String() string {
	return h.Describe()
}

// evaluate recomputes the total on every call; nothing is cached across AddCard.
func (h *Hand) evaluate() (total int, softAces int) {
	for _, c := range h.cards {
		total += c.Value()
		if c.IsAce() {
			softAces++
		}
	}

	for total > BlackjackTotal && softAces > 0 {
		total -= softAceBonus
		softAces--
	}
	return total, softAces
}
