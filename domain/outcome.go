package domain

// Outcome is how a round ended for the player
type Outcome string

const (
	OutcomePlayerWin Outcome = "player_win"
	OutcomeDealerWin Outcome = "dealer_win"
	OutcomePush      Outcome = "push"
	OutcomeWalked    Outcome = "walked" // voluntary forfeit, neither win nor loss
)

// IsDecided reports whether the outcome names a winner
func (o Outcome) IsDecided() bool {
	return o == OutcomePlayerWin || o == OutcomeDealerWin
}

func (o Outcome) String() string {
	return string(o)
}

// Reason explains why a round ended the way it did
type Reason string

const (
	ReasonBlackjack   Reason = "blackjack"
	ReasonPlayerBust  Reason = "player_bust"
	ReasonDealerBust  Reason = "dealer_bust"
	ReasonHigherTotal Reason = "higher_total"
	ReasonEqualTotals Reason = "equal_totals"
	ReasonWalkedAway  Reason = "walked_away"
)

// Result is the final state of a round
type Result struct {
	Outcome     Outcome
	Reason      Reason
	PlayerTotal int
	DealerTotal int
}
