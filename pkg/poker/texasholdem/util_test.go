package texasholdem

import (
	"errors"
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holdem-tournament/internal/rng"
	"holdem-tournament/pkg/poker/action"
	"holdem-tournament/pkg/poker/strategy"
)

func setupSeats(chips ...int) []SeatConfig {
	seats := make([]SeatConfig, len(chips))
	for i, c := range chips {
		seats[i] = SeatConfig{
			ID:      fmt.Sprintf("p%d", i),
			Name:    fmt.Sprintf("Player %d", i),
			Profile: strategy.Balanced,
			Chips:   c,
		}
	}

	return seats
}

func setupNewGame(t *testing.T, opts Options, chips ...int) *GameState {
	t.Helper()
	g, err := InitializeGame(logrus.StandardLogger(), opts, setupSeats(chips...), rng.New(42))
	require.NoError(t, err)
	return g
}

func startHand(t *testing.T, g *GameState) (*GameState, []Event) {
	t.Helper()
	ng, events, err := StartNewHand(g)
	require.NoError(t, err)
	return ng, events
}

func assertAction(t *testing.T, g *GameState, seat int, a action.Action, amount int, msgAndArgs ...interface{}) (*GameState, []Event) {
	t.Helper()
	ng, events, err := ApplyAction(g, seat, a, amount)
	require.NoError(t, err, msgAndArgs...)
	require.NotEmpty(t, events, msgAndArgs...)
	return ng, events
}

func assertActionFailed(t *testing.T, g *GameState, seat int, a action.Action, amount int, expectedErr string, msgAndArgs ...interface{}) {
	t.Helper()
	ng, events, err := ApplyAction(g, seat, a, amount)
	assert.EqualError(t, err, expectedErr, msgAndArgs...)
	assert.True(t, errors.Is(err, ErrIllegalAction), msgAndArgs...)
	assert.Nil(t, events, msgAndArgs...)
	assert.Same(t, g, ng, msgAndArgs...)
}

func eventTypes(events []Event) []EventType {
	types := make([]EventType, len(events))
	for i, e := range events {
		types[i] = e.Type()
	}

	return types
}

func chipTotal(g *GameState) int {
	total := 0
	for _, p := range g.Players {
		total += p.Chips + p.TotalContribution
	}

	if g.Hand != nil && g.Hand.IsComplete() {
		// contributions were paid out
		total = 0
		for _, p := range g.Players {
			total += p.Chips
		}
	}

	return total
}
