package commands

import (
	"testing"

	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dealtRound(t *testing.T, shorthands ...string) *domain.Round {
	t.Helper()
	shoe := cards.StackedShoe(cards.MustCardsFromStrings(shorthands...))
	round := domain.NewRound("session-test", 1, shoe)
	require.NoError(t, round.Deal())
	return round
}

func TestFromInput(t *testing.T) {
	tests := []struct {
		input    string
		expected Command
	}{
		{"h", Hit{RoundID: "r1"}},
		{" H ", Hit{RoundID: "r1"}},
		{"hit", Hit{RoundID: "r1"}},
		{"s", Stand{RoundID: "r1"}},
		{"STAND", Stand{RoundID: "r1"}},
		{"w", WalkAway{RoundID: "r1"}},
		{"walk", WalkAway{RoundID: "r1"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cmd, err := FromInput("r1", tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cmd)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		for _, input := range []string{"", "x", "double", "hh"} {
			_, err := FromInput("r1", input)
			assert.ErrorIs(t, err, ErrUnknownCommand, input)
		}
	})
}

func TestCommandNames(t *testing.T) {
	assert.Equal(t, "HIT", Hit{}.Name())
	assert.Equal(t, "STAND", Stand{}.Name())
	assert.Equal(t, "WALK_AWAY", WalkAway{}.Name())
}

func TestExecute(t *testing.T) {
	t.Run("hit", func(t *testing.T) {
		round := dealtRound(t, "10s", "9h", "7c", "8d", "5c")

		require.NoError(t, Execute(round, Hit{RoundID: round.ID}))
		assert.Equal(t, 24, round.Player.Total())
		assert.True(t, round.IsOver())
	})

	t.Run("stand", func(t *testing.T) {
		round := dealtRound(t, "10s", "8h", "10c", "8d")

		require.NoError(t, Execute(round, Stand{RoundID: round.ID}))
		result, ok := round.Result()
		require.True(t, ok)
		assert.Equal(t, domain.OutcomePush, result.Outcome)
	})

	t.Run("walk away", func(t *testing.T) {
		round := dealtRound(t, "10s", "6h", "10c", "8d")

		require.NoError(t, Execute(round, WalkAway{RoundID: round.ID}))
		result, ok := round.Result()
		require.True(t, ok)
		assert.Equal(t, domain.OutcomeWalked, result.Outcome)
	})

	t.Run("other round", func(t *testing.T) {
		round := dealtRound(t, "10s", "6h", "10c", "8d")

		err := Execute(round, Stand{RoundID: "another"})
		assert.ErrorIs(t, err, ErrWrongRound)
		assert.Equal(t, domain.RoundPhase_PlayerTurn, round.Phase)
	})

	t.Run("round already over", func(t *testing.T) {
		round := dealtRound(t, "As", "Kh", "10c", "8d")

		err := Execute(round, Hit{RoundID: round.ID})
		assert.ErrorIs(t, err, domain.ErrActionNotAllowed)
	})
}
