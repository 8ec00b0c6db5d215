package cards

type CardVisibility string

const (
	FaceDown CardVisibility = "down" // Hidden from the player
	FaceUp   CardVisibility = "up"   // Visible to the player
)

// HeldCard represents a card in a hand with visibility information
type HeldCard struct {
	Card
	Visibility CardVisibility
}

// NewHeldCard creates a new held card with the specified visibility
func NewHeldCard(card Card, visibility CardVisibility) HeldCard {
	return HeldCard{
		Card:       card,
		Visibility: visibility,
	}
}

// IsVisible checks if the card is face up
func (c HeldCard) IsVisible() bool {
	return c.Visibility == FaceUp
}

// String returns the card's display form, or "[hidden]" when it is face down
func (c HeldCard) String() string {
	if !c.IsVisible() {
		return "[hidden]"
	}
	return c.Card.String()
}

// Reveal turns the card face up
func (c *HeldCard) Reveal() {
	c.Visibility = FaceUp
}

// Hide turns the card face down
func (c *HeldCard) Hide() {
	c.Visibility = FaceDown
}

type HeldStack []HeldCard

// NewHeldStack creates a held stack where every card has the same visibility
func NewHeldStack(stack Stack, visibility CardVisibility) HeldStack {
	held := make(HeldStack, len(stack))
	for i, c := range stack {
		held[i] = NewHeldCard(c, visibility)
	}
	return held
}

// Visible returns the face-up cards of the stack
func (s HeldStack) Visible() Stack {
	var out Stack
	for _, c := range s {
		if c.IsVisible() {
			out = append(out, c.Card)
		}
	}
	return out
}

// RevealAll turns every card face up
func (s HeldStack) RevealAll() {
	for i := range s {
		s[i].Reveal()
	}
}
