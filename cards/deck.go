package cards

// Suits returns the four suits in canonical order
func Suits() []Suit {
	return []Suit{Hearts, Diamonds, Clubs, Spades}
}

// Ranks returns the thirteen ranks in canonical order
func Ranks() []Rank {
	return []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}
}

// NewDeck52 creates a standard unshuffled deck of 52 cards in canonical order
func NewDeck52() Stack {
	deck := make(Stack, 0, 52)
	for _, suit := range Suits() {
		for _, rank := range Ranks() {
			deck.AddCard(NewCard(suit, rank))
		}
	}
	return deck
}
