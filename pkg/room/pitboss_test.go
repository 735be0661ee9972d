package room

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holdem-tournament/internal/rng"
	"holdem-tournament/pkg/poker/action"
	"holdem-tournament/pkg/poker/ai"
	"holdem-tournament/pkg/poker/texasholdem"
)

// scriptedPlayer tries a check first and folds when it is rejected
type scriptedPlayer struct {
	asked    int
	rejected []error
	views    []*texasholdem.GameState
}

func (s *scriptedPlayer) ChooseAction(ctx context.Context, view *texasholdem.GameState, seat int) (action.Action, int, error) {
	s.asked++
	s.views = append(s.views, view)
	if view.ToCall(seat) > 0 && len(s.rejected) > 0 {
		return action.Fold, 0, nil
	}

	return action.Check, 0, nil
}

func (s *scriptedPlayer) Rejected(seat int, err error) {
	s.rejected = append(s.rejected, err)
}

type failingPlayer struct{}

func (failingPlayer) ChooseAction(context.Context, *texasholdem.GameState, int) (action.Action, int, error) {
	return "", 0, errors.New("the player left")
}

func (failingPlayer) Rejected(int, error) {}

func TestPitBoss_Run_AutoPilot(t *testing.T) {
	g := setupGame(t, 2000, 0)
	d := setupDealer(t, g, nil)
	logger, _ := test.NewNullLogger()
	engine := ai.NewEngine(logger, nil, rng.New(8), ai.DefaultOptions())

	var events []texasholdem.Event
	handler := func(g *texasholdem.GameState, e texasholdem.Event) {
		events = append(events, e)
	}

	final, err := NewPitBoss(logger, d, AutoPilot{Engine: engine}, 300, handler).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6000, final.TotalChips())
	assert.True(t, final.Over || final.HandNumber == 300)
	require.NotEmpty(t, events)

	// hands never overlap
	inHand := false
	for _, e := range events {
		switch {
		case e.Type() == texasholdem.EventHandInitialized:
			assert.False(t, inHand)
			inHand = true
		case texasholdem.IsTerminal(e):
			assert.True(t, inHand)
			inHand = false
		}
	}

	assert.False(t, inHand)
	if final.Over {
		assert.Equal(t, texasholdem.EventGameOver, events[len(events)-1].Type())
		assert.Equal(t, 6000, final.Players[final.Winner].Chips)
	}
}

func TestPitBoss_Run_RejectedActions(t *testing.T) {
	g := setupGame(t, 60000, 0)
	d := setupDealer(t, g, nil)
	logger, _ := test.NewNullLogger()
	human := &scriptedPlayer{}

	final, err := NewPitBoss(logger, d, human, 1, nil).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, final.HandNumber)
	assert.True(t, final.Hand.IsComplete())

	// seat 0 faced the big blind, its check was rejected and it folded instead
	require.NotEmpty(t, human.rejected)
	assert.True(t, errors.Is(human.rejected[0], texasholdem.ErrIllegalAction))

	// the human only ever saw its own cards
	for _, view := range human.views {
		assert.Len(t, view.Players[0].HoleCards, 2)
		assert.Empty(t, view.Players[1].HoleCards)
		assert.Empty(t, view.Players[2].HoleCards)
		assert.Nil(t, view.Hand.Deck)
	}
}

func TestPitBoss_Run_Errors(t *testing.T) {
	logger, _ := test.NewNullLogger()

	d := setupDealer(t, setupGame(t, 60000, 0), nil)
	_, err := NewPitBoss(logger, d, nil, 1, nil).Run(context.Background())
	assert.Equal(t, ErrNoHumanPlayer, err)

	d = setupDealer(t, setupGame(t, 60000, 0), nil)
	final, err := NewPitBoss(logger, d, failingPlayer{}, 1, nil).Run(context.Background())
	assert.EqualError(t, err, "the player left")
	assert.Equal(t, 0, d.WaitingOn())
	assert.Equal(t, 180000, final.TotalChips())
}
