package cards

import "strings"

// Stack represents an ordered collection of cards, top card first
type Stack []Card

// NewStack creates a new stack with the given cards
func NewStack(cards ...Card) Stack {
	return Stack(cards)
}

// AddCard appends a card to the end of the stack
func (s *Stack) AddCard(card Card) {
	*s = append(*s, card)
}

// AddCards appends cards to the end of the stack
func (s *Stack) AddCards(cards ...Card) {
	*s = append(*s, cards...)
}

// DealCard removes and returns the top card. It returns ErrEmptyShoe when the
// stack has no cards left.
func (s *Stack) DealCard() (Card, error) {
	if len(*s) == 0 {
		return Card{}, ErrEmptyShoe
	}
	card := (*s)[0]
	*s = (*s)[1:]
	return card, nil
}

// Contains checks if the stack holds at least one copy of the card
func (s Stack) Contains(card Card) bool {
	for _, c := range s {
		if c.Equals(card) {
			return true
		}
	}
	return false
}

// Count returns how many copies of the card the stack holds
func (s Stack) Count(card Card) int {
	n := 0
	for _, c := range s {
		if c.Equals(card) {
			n++
		}
	}
	return n
}

// String returns the compact form of every card separated by spaces
func (s Stack) String() string {
	parts := make([]string, len(s))
	for i, c := range s {
		parts[i] = c.Short()
	}
	return strings.Join(parts, " ")
}
