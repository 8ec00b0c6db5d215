package cards

import (
	"fmt"
	"math/rand"
	"time"
)

const (
	MinDecks = 1
	MaxDecks = 8
)

// Shoe represents one or more decks of cards dealt from the top
type Shoe struct {
	cards Stack
	decks int
	rng   *rand.Rand
}

// NewShoe creates a shuffled shoe made of numDecks standard decks. A nil rng
// makes the shoe seed itself from the clock.
func NewShoe(numDecks int, rng *rand.Rand) (*Shoe, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s := &Shoe{rng: rng}
	if err := s.Rebuild(numDecks); err != nil {
		return nil, err
	}
	return s, nil
}

// NewSeededShoe creates a shoe whose shuffles are reproducible for a given seed
func NewSeededShoe(numDecks int, seed int64) (*Shoe, error) {
	return NewShoe(numDecks, rand.New(rand.NewSource(seed)))
}

// Rebuild discards every remaining card and refills the shoe with numDecks
// fresh decks, then shuffles.
func (s *Shoe) Rebuild(numDecks int) error {
	if numDecks < MinDecks || numDecks > MaxDecks {
		return fmt.Errorf("%w: number of decks must be between %d and %d, got %d",
			ErrInvalidConfiguration, MinDecks, MaxDecks, numDecks)
	}

	cards := make(Stack, 0, numDecks*52)
	for i := 0; i < numDecks; i++ {
		cards.AddCards(NewDeck52()...)
	}

	s.cards = cards
	s.decks = numDecks
	s.Shuffle()
	return nil
}

// Shuffle randomly reorders every card left in the shoe
func (s *Shoe) Shuffle() {
	s.rng.Shuffle(len(s.cards), func(i, j int) {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	})
}

// Draw removes and returns the top card of the shoe
func (s *Shoe) Draw() (Card, error) {
	card, err := s.cards.DealCard()
	if err != nil {
		return Card{}, fmt.Errorf("draw: %w", err)
	}
	return card, nil
}

// Remaining returns the number of cards left in the shoe
func (s *Shoe) Remaining() int {
	return len(s.cards)
}

// Decks returns the number of decks the shoe was last built with
func (s *Shoe) Decks() int {
	return s.decks
}

// Cards returns a copy of the cards left in the shoe, top card first
func (s *Shoe) Cards() Stack {
	out := make(Stack, len(s.cards))
	copy(out, s.cards)
	return out
}

// StackedShoe creates an unshuffled shoe that deals the given cards in order.
// Used to script rounds in tests and replays.
func StackedShoe(stack Stack) *Shoe {
	cards := make(Stack, len(stack))
	copy(cards, stack)
	return &Shoe{
		cards: cards,
		decks: 1,
		rng:   rand.New(rand.NewSource(1)),
	}
}
