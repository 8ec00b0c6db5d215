package domain

import (
	"testing"

	"github.com/lazharichir/blackjack/cards"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stackedShoe(shorthands ...string) *cards.Shoe {
	return cards.StackedShoe(cards.MustCardsFromStrings(shorthands...))
}

func TestDealRound(t *testing.T) {
	shoe := stackedShoe("2s", "3h", "4c", "5d", "6s")

	player, dealer, err := DealRound(shoe)
	require.NoError(t, err)

	assert.Equal(t, cards.MustCardsFromStrings("2s", "3h"), player.Cards())
	assert.Equal(t, cards.MustCardsFromStrings("4c", "5d"), dealer.Cards())
	assert.Equal(t, 1, shoe.Remaining())
}

func TestDealRound_EmptyShoe(t *testing.T) {
	_, _, err := DealRound(stackedShoe("2s", "3h", "4c"))
	assert.ErrorIs(t, err, cards.ErrEmptyShoe)
}

func TestPlayerHit(t *testing.T) {
	shoe := stackedShoe("5c", "Kd")
	player := handOf("10s", "9h")

	bust, err := PlayerHit(shoe, player)
	require.NoError(t, err)
	assert.True(t, bust)
	assert.Equal(t, 24, player.Total())
	assert.Equal(t, 1, shoe.Remaining())

	_, err = PlayerHit(stackedShoe(), player)
	assert.ErrorIs(t, err, cards.ErrEmptyShoe)
}

func TestDealerPlay(t *testing.T) {
	tests := []struct {
		name      string
		dealer    []string
		shoe      []string
		wantTotal int
		wantCards int
	}{
		{"stands on hard 17", []string{"10s", "7h"}, []string{"5c"}, 17, 2},
		{"stands on soft 17", []string{"As", "6h"}, []string{"5c"}, 17, 2},
		{"hits 16 to soft-ace 17", []string{"10s", "6h"}, []string{"Ac", "5d"}, 17, 3},
		{"hits several times", []string{"2s", "3h"}, []string{"4c", "5d", "6s", "Kd"}, 20, 5},
		{"busts", []string{"10s", "6h"}, []string{"Kc"}, 26, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dealer := handOf(tt.dealer...)
			require.NoError(t, DealerPlay(stackedShoe(tt.shoe...), dealer))
			assert.Equal(t, tt.wantTotal, dealer.Total())
			assert.Equal(t, tt.wantCards, dealer.Len())
		})
	}
}

func TestDealerPlay_EmptyShoe(t *testing.T) {
	err := DealerPlay(stackedShoe("2c"), handOf("2s", "3h"))
	assert.ErrorIs(t, err, cards.ErrEmptyShoe)
}

func TestSettle(t *testing.T) {
	tests := []struct {
		name    string
		player  []string
		dealer  []string
		outcome Outcome
		reason  Reason
	}{
		{"higher player total", []string{"10s", "Kh"}, []string{"10c", "6d", "Ah"}, OutcomePlayerWin, ReasonHigherTotal},
		{"higher dealer total", []string{"10s", "8h"}, []string{"10c", "9d"}, OutcomeDealerWin, ReasonHigherTotal},
		{"push", []string{"10s", "8h"}, []string{"9c", "9d"}, OutcomePush, ReasonEqualTotals},
		{"dealer bust", []string{"10s", "2h"}, []string{"10c", "6d", "Kh"}, OutcomePlayerWin, ReasonDealerBust},
		{"player bust beats dealer bust", []string{"10s", "9h", "5c"}, []string{"10c", "6d", "Kh"}, OutcomeDealerWin, ReasonPlayerBust},
		{"player natural", []string{"As", "Kh"}, []string{"10c", "Ad", "Qh"}, OutcomePlayerWin, ReasonBlackjack},
		{"player natural against dealer natural", []string{"As", "Kh"}, []string{"Ac", "Qd"}, OutcomePlayerWin, ReasonBlackjack},
		{"three-card 21 against 21 is a push", []string{"7s", "7h", "7c"}, []string{"10c", "5d", "6h"}, OutcomePush, ReasonEqualTotals},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player, dealer := handOf(tt.player...), handOf(tt.dealer...)

			result := Resolve(player, dealer)
			assert.Equal(t, tt.outcome, result.Outcome)
			assert.Equal(t, tt.reason, result.Reason)
			assert.Equal(t, player.Total(), result.PlayerTotal)
			assert.Equal(t, dealer.Total(), result.DealerTotal)
			assert.Equal(t, tt.outcome, Settle(player, dealer))
		})
	}
}

func TestOutcome_IsDecided(t *testing.T) {
	assert.True(t, OutcomePlayerWin.IsDecided())
	assert.True(t, OutcomeDealerWin.IsDecided())
	assert.False(t, OutcomePush.IsDecided())
	assert.False(t, OutcomeWalked.IsDecided())
}
