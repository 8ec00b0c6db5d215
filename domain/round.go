package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/domain/events"
)

type RoundPhase string

const (
	RoundPhase_Deal         RoundPhase = "deal"
	RoundPhase_NaturalCheck RoundPhase = "natural.check"
	RoundPhase_PlayerTurn   RoundPhase = "player.turn"
	RoundPhase_DealerTurn   RoundPhase = "dealer.turn"
	RoundPhase_Settle       RoundPhase = "settle"
	RoundPhase_Ended        RoundPhase = "ended"
)

// Round represents one round of blackjack between the player and the dealer
type Round struct {
	ID        string
	SessionID string
	Number    int
	Phase     RoundPhase
	StartedAt time.Time

	Player *Hand
	Dealer *Hand

	// events
	Events        []events.Event
	eventHandlers []events.EventHandler

	shoe   Drawer
	result *Result
}

// NewRound creates a round that will deal from shoe. Call Deal to start it.
func NewRound(sessionID string, number int, shoe Drawer) *Round {
	return &Round{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Number:    number,
		Phase:     RoundPhase_Deal,
		Player:    NewHand(),
		Dealer:    NewHand(),
		shoe:      shoe,
	}
}

// RegisterEventHandler registers a callback function that will be called when events occur
func (r *Round) RegisterEventHandler(handler events.EventHandler) {
	r.eventHandlers = append(r.eventHandlers, handler)
}

// emitEvent notifies all registered handlers of a new event
func (r *Round) emitEvent(event events.Event) {
	r.Events = append(r.Events, event)

	for _, handler := range r.eventHandlers {
		handler(event)
	}
}

// IsInPhase checks if the round is in the given phase
func (r *Round) IsInPhase(phase RoundPhase) bool {
	return r.Phase == phase
}

// IsOver reports whether the round has ended, with or without a result
func (r *Round) IsOver() bool {
	return r.IsInPhase(RoundPhase_Ended)
}

// Result returns the result of the round once it is settled
func (r *Round) Result() (Result, bool) {
	if r.result == nil {
		return Result{}, false
	}
	return *r.result, true
}

// Deal deals the opening cards and checks for a player natural. The round then
// either waits for the player or is already over.
func (r *Round) Deal() error {
	if !r.IsInPhase(RoundPhase_Deal) {
		return fmt.Errorf("deal: %w", ErrActionNotAllowed)
	}

	r.StartedAt = time.Now()
	r.emitEvent(events.RoundStarted{
		SessionID:     r.SessionID,
		RoundID:       r.ID,
		Number:        r.Number,
		ShoeRemaining: r.remaining(),
		At:            r.StartedAt,
	})

	dealerCards := 0
	for _, to := range dealOrder {
		card, err := r.shoe.Draw()
		if err != nil {
			return r.abort(fmt.Errorf("deal: %w", err))
		}

		// only the dealer's first card is dealt face up
		faceUp := true
		if to == events.Player {
			r.Player.AddCard(card)
		} else {
			r.Dealer.AddCard(card)
			dealerCards++
			faceUp = dealerCards == 1
		}

		r.emitEvent(events.CardDealt{
			SessionID: r.SessionID,
			RoundID:   r.ID,
			To:        to,
			Card:      card,
			FaceUp:    faceUp,
			At:        time.Now(),
		})
	}

	r.transitionTo(RoundPhase_NaturalCheck)

	if r.Player.IsBlackjack() {
		// the dealer hand is not developed and a dealer natural is not checked
		return r.settle(Result{
			Outcome:     OutcomePlayerWin,
			Reason:      ReasonBlackjack,
			PlayerTotal: r.Player.Total(),
			DealerTotal: r.Dealer.Total(),
		})
	}

	r.transitionTo(RoundPhase_PlayerTurn)
	return nil
}

// Hit draws a card for the player. A bust ends the round as a dealer win.
func (r *Round) Hit() (bool, error) {
	if !r.IsInPhase(RoundPhase_PlayerTurn) {
		return false, fmt.Errorf("hit: %w", ErrActionNotAllowed)
	}

	bust, err := PlayerHit(r.shoe, r.Player)
	if err != nil {
		return false, r.abort(err)
	}

	card, _ := r.Player.LastCard()
	r.emitEvent(events.PlayerHit{
		SessionID: r.SessionID,
		RoundID:   r.ID,
		Card:      card,
		Total:     r.Player.Total(),
		Bust:      bust,
		At:        time.Now(),
	})

	if bust {
		return true, r.settle(Result{
			Outcome:     OutcomeDealerWin,
			Reason:      ReasonPlayerBust,
			PlayerTotal: r.Player.Total(),
			DealerTotal: r.Dealer.Total(),
		})
	}

	return false, nil
}

// Stand ends the player's turn, plays the dealer's hand and settles the round
func (r *Round) Stand() (Result, error) {
	if !r.IsInPhase(RoundPhase_PlayerTurn) {
		return Result{}, fmt.Errorf("stand: %w", ErrActionNotAllowed)
	}

	r.emitEvent(events.PlayerStood{
		SessionID: r.SessionID,
		RoundID:   r.ID,
		Total:     r.Player.Total(),
		At:        time.Now(),
	})

	if err := r.playDealer(); err != nil {
		return Result{}, err
	}

	r.transitionTo(RoundPhase_Settle)
	result := Resolve(r.Player, r.Dealer)
	if err := r.settle(result); err != nil {
		return Result{}, err
	}
	return result, nil
}

// WalkAway ends the round without a winner or a loser
func (r *Round) WalkAway() (Result, error) {
	if !r.IsInPhase(RoundPhase_PlayerTurn) {
		return Result{}, fmt.Errorf("walk away: %w", ErrActionNotAllowed)
	}

	r.emitEvent(events.PlayerWalkedAway{
		SessionID: r.SessionID,
		RoundID:   r.ID,
		Total:     r.Player.Total(),
		At:        time.Now(),
	})

	result := Result{
		Outcome:     OutcomeWalked,
		Reason:      ReasonWalkedAway,
		PlayerTotal: r.Player.Total(),
		DealerTotal: r.Dealer.Total(),
	}
	if err := r.settle(result); err != nil {
		return Result{}, err
	}
	return result, nil
}

func (r *Round) playDealer() error {
	r.transitionTo(RoundPhase_DealerTurn)

	if hole, err := r.holeCard(); err == nil {
		r.emitEvent(events.DealerHoleCardRevealed{
			SessionID: r.SessionID,
			RoundID:   r.ID,
			Card:      hole,
			Total:     r.Dealer.Total(),
			At:        time.Now(),
		})
	}

	err := dealerPlay(r.shoe, r.Dealer, func(card cards.Card) {
		r.emitEvent(events.DealerHit{
			SessionID: r.SessionID,
			RoundID:   r.ID,
			Card:      card,
			Total:     r.Dealer.Total(),
			At:        time.Now(),
		})
	})
	if err != nil {
		return r.abort(err)
	}

	r.emitEvent(events.DealerStood{
		SessionID: r.SessionID,
		RoundID:   r.ID,
		Total:     r.Dealer.Total(),
		Bust:      r.Dealer.IsBust(),
		At:        time.Now(),
	})
	return nil
}

func (r *Round) holeCard() (cards.Card, error) {
	dealt := r.Dealer.Cards()
	if len(dealt) < 2 {
		return cards.Card{}, ErrEmptyHand
	}
	return dealt[1], nil
}

func (r *Round) settle(result Result) error {
	if r.result != nil {
		return fmt.Errorf("settle: %w", ErrActionNotAllowed)
	}
	r.result = &result

	r.emitEvent(events.RoundSettled{
		SessionID:   r.SessionID,
		RoundID:     r.ID,
		Outcome:     string(result.Outcome),
		Reason:      string(result.Reason),
		PlayerTotal: result.PlayerTotal,
		DealerTotal: result.DealerTotal,
		At:          time.Now(),
	})

	r.transitionTo(RoundPhase_Ended)
	return nil
}

// abort ends the round without a result after a failed draw and returns err
func (r *Round) abort(err error) error {
	phase := r.Phase
	r.emitEvent(events.RoundAborted{
		SessionID: r.SessionID,
		RoundID:   r.ID,
		Phase:     string(phase),
		Error:     err.Error(),
		At:        time.Now(),
	})
	r.transitionTo(RoundPhase_Ended)
	return err
}

func (r *Round) transitionTo(phase RoundPhase) {
	if r.Phase == phase {
		return
	}

	previousPhase := r.Phase
	r.Phase = phase

	r.emitEvent(events.PhaseChanged{
		SessionID:     r.SessionID,
		RoundID:       r.ID,
		PreviousPhase: string(previousPhase),
		NewPhase:      string(phase),
		At:            time.Now(),
	})
}

func (r *Round) remaining() int {
	if counter, ok := r.shoe.(interface{ Remaining() int }); ok {
		return counter.Remaining()
	}
	return -1
}
