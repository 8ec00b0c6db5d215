package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/domain/events"
)

const (
	// DefaultReshuffleThreshold is the shoe size under which a new round rebuilds the shoe
	DefaultReshuffleThreshold = 15
	// MinReshuffleThreshold is the smallest threshold that still guarantees an opening deal
	MinReshuffleThreshold = 4
)

// SessionRules holds the shoe management rules of a session
type SessionRules struct {
	ReshuffleThreshold int
	RebuildDecks       int // decks used when the shoe is rebuilt
}

// DefaultSessionRules rebuild a single 52-card deck once fewer than 15 cards remain
func DefaultSessionRules() SessionRules {
	return SessionRules{
		ReshuffleThreshold: DefaultReshuffleThreshold,
		RebuildDecks:       1,
	}
}

// Validate checks that the rules can always deal a round
func (r SessionRules) Validate() error {
	if r.ReshuffleThreshold < MinReshuffleThreshold {
		return fmt.Errorf("%w: reshuffle threshold must be at least %d, got %d",
			ErrInvalidRules, MinReshuffleThreshold, r.ReshuffleThreshold)
	}
	if r.RebuildDecks < cards.MinDecks || r.RebuildDecks > cards.MaxDecks {
		return fmt.Errorf("%w: rebuild decks must be between %d and %d, got %d",
			ErrInvalidRules, cards.MinDecks, cards.MaxDecks, r.RebuildDecks)
	}
	return nil
}

// Stats tallies the rounds played in a session
type Stats struct {
	Rounds     int
	PlayerWins int
	DealerWins int
	Pushes     int
	Walks      int
	Blackjacks int
	Aborted    int
}

// Session owns the shoe across consecutive rounds for one player
type Session struct {
	ID        string
	Rules     SessionRules
	StartedAt time.Time

	shoe    *cards.Shoe
	store   events.EventStore
	current *Round
	rounds  int
	stats   Stats

	eventHandlers []events.EventHandler
	storeErr      error
}

// NewSession creates a session playing from shoe. Events are appended to store
// when it is not nil.
func NewSession(rules SessionRules, shoe *cards.Shoe, store events.EventStore) (*Session, error) {
	if shoe == nil {
		return nil, errors.New("session needs a shoe")
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	return &Session{
		ID:        uuid.NewString(),
		Rules:     rules,
		StartedAt: time.Now(),
		shoe:      shoe,
		store:     store,
	}, nil
}

// RegisterEventHandler registers a callback for every session and round event
func (s *Session) RegisterEventHandler(handler events.EventHandler) {
	s.eventHandlers = append(s.eventHandlers, handler)
}

// StartRound rebuilds the shoe if it has run low, then deals a new round.
// The returned round may already be over when the player was dealt a natural.
func (s *Session) StartRound() (*Round, error) {
	if s.storeErr != nil {
		return nil, fmt.Errorf("event store: %w", s.storeErr)
	}
	if s.current != nil && !s.current.IsOver() {
		return nil, ErrRoundInProgress
	}

	if s.ShouldReshuffle() {
		remaining := s.shoe.Remaining()
		if err := s.shoe.Rebuild(s.Rules.RebuildDecks); err != nil {
			return nil, fmt.Errorf("rebuild shoe: %w", err)
		}
		s.emitEvent(events.ShoeRebuilt{
			SessionID: s.ID,
			Decks:     s.Rules.RebuildDecks,
			Remaining: remaining,
			At:        time.Now(),
		})
	}

	s.rounds++
	round := NewRound(s.ID, s.rounds, s.shoe)
	round.RegisterEventHandler(s.handleRoundEvent)
	s.current = round

	err := round.Deal()
	return round, err
}

// ShouldReshuffle reports whether the next round will rebuild the shoe first
func (s *Session) ShouldReshuffle() bool {
	return s.shoe.Remaining() < s.Rules.ReshuffleThreshold
}

// CurrentRound returns the latest round, or nil before the first one
func (s *Session) CurrentRound() *Round {
	return s.current
}

// Shoe returns the shoe the session deals from
func (s *Session) Shoe() *cards.Shoe {
	return s.shoe
}

// Stats returns the tally of the rounds played so far
func (s *Session) Stats() Stats {
	return s.stats
}

// Events returns the session's event log from the store
func (s *Session) Events() ([]events.Event, error) {
	if s.store == nil {
		return []events.Event{}, nil
	}
	return s.store.LoadEvents(s.ID)
}

// Err returns the first error raised while recording events, if any
func (s *Session) Err() error {
	return s.storeErr
}

func (s *Session) handleRoundEvent(event events.Event) {
	switch ev := event.(type) {
	case events.RoundSettled:
		s.record(Outcome(ev.Outcome), Reason(ev.Reason))
	case events.RoundAborted:
		s.stats.Rounds++
		s.stats.Aborted++
	}

	s.emitEvent(event)
}

func (s *Session) record(outcome Outcome, reason Reason) {
	s.stats.Rounds++
	switch outcome {
	case OutcomePlayerWin:
		s.stats.PlayerWins++
		if reason == ReasonBlackjack {
			s.stats.Blackjacks++
		}
	case OutcomeDealerWin:
		s.stats.DealerWins++
	case OutcomePush:
		s.stats.Pushes++
	case OutcomeWalked:
		s.stats.Walks++
	}
}

// emitEvent stores the event and notifies all registered handlers
func (s *Session) emitEvent(event events.Event) {
	if s.store != nil {
		if err := s.store.Append(event); err != nil && s.storeErr == nil {
			s.storeErr = err
		}
	}

	for _, handler := range s.eventHandlers {
		handler(event)
	}
}
