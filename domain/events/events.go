package events

import (
	"time"

	"github.com/lazharichir/blackjack/cards"
)

// Participant identifies who a card was dealt to
type Participant string

const (
	Player Participant = "player"
	Dealer Participant = "dealer"
)

// Session events
type ShoeRebuilt struct {
	SessionID string
	Decks     int
	Remaining int // cards left before the rebuild
	At        time.Time
}

func (e ShoeRebuilt) Name() string { return "SHOE_REBUILT" }

// Round structure events
type RoundStarted struct {
	SessionID     string
	RoundID       string
	Number        int
	ShoeRemaining int
	At            time.Time
}

func (e RoundStarted) Name() string { return "ROUND_STARTED" }

type PhaseChanged struct {
	SessionID     string
	RoundID       string
	PreviousPhase string
	NewPhase      string
	At            time.Time
}

func (e PhaseChanged) Name() string { return "PHASE_CHANGED" }

// Dealing events
type CardDealt struct {
	SessionID string
	RoundID   string
	To        Participant
	Card      cards.Card
	FaceUp    bool
	At        time.Time
}

func (e CardDealt) Name() string { return "CARD_DEALT" }

type DealerHoleCardRevealed struct {
	SessionID string
	RoundID   string
	Card      cards.Card
	Total     int
	At        time.Time
}

func (e DealerHoleCardRevealed) Name() string { return "DEALER_HOLE_CARD_REVEALED" }

// Player action events
type PlayerHit struct {
	SessionID string
	RoundID   string
	Card      cards.Card
	Total     int
	Bust      bool
	At        time.Time
}

func (e PlayerHit) Name() string { return "PLAYER_HIT" }

type PlayerStood struct {
	SessionID string
	RoundID   string
	Total     int
	At        time.Time
}

func (e PlayerStood) Name() string { return "PLAYER_STOOD" }

type PlayerWalkedAway struct {
	SessionID string
	RoundID   string
	Total     int
	At        time.Time
}

func (e PlayerWalkedAway) Name() string { return "PLAYER_WALKED_AWAY" }

// Dealer policy events
type DealerHit struct {
	SessionID string
	RoundID   string
	Card      cards.Card
	Total     int
	At        time.Time
}

func (e DealerHit) Name() string { return "DEALER_HIT" }

type DealerStood struct {
	SessionID string
	RoundID   string
	Total     int
	Bust      bool
	At        time.Time
}

func (e DealerStood) Name() string { return "DEALER_STOOD" }

// Resolution events
type RoundSettled struct {
	SessionID   string
	RoundID     string
	Outcome     string
	Reason      string
	PlayerTotal int
	DealerTotal int
	At          time.Time
}

func (e RoundSettled) Name() string { return "ROUND_SETTLED" }

type RoundAborted struct {
	SessionID string
	RoundID   string
	Phase     string
	Error     string
	At        time.Time
}

func (e RoundAborted) Name() string { return "ROUND_ABORTED" }
