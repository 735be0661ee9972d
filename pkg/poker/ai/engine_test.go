package ai

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holdem-tournament/internal/rng"
	"holdem-tournament/pkg/poker/action"
	"holdem-tournament/pkg/poker/strategy"
	"holdem-tournament/pkg/poker/texasholdem"
)

func setupGame(t *testing.T, humans ...int) *texasholdem.GameState {
	t.Helper()

	seats := make([]texasholdem.SeatConfig, 3)
	for i := range seats {
		seats[i] = texasholdem.SeatConfig{
			ID:      fmt.Sprintf("p%d", i),
			Name:    fmt.Sprintf("Player %d", i),
			Profile: strategy.Balanced,
		}
	}

	for _, h := range humans {
		seats[h].IsHuman = true
	}

	logger, _ := test.NewNullLogger()
	g, err := texasholdem.InitializeGame(logger, texasholdem.DefaultOptions(), seats, rng.New(7))
	require.NoError(t, err)

	g, _, err = texasholdem.StartNewHand(g)
	require.NoError(t, err)
	return g
}

func setupEngine(provider Provider, opts Options) (*Engine, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return NewEngine(logger, provider, rng.Fixed{Float: 1}, opts), hook
}

func hasWarning(hook *test.Hook, message string) bool {
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel && entry.Message == message {
			return true
		}
	}

	return false
}

func TestNewEngine_Options(t *testing.T) {
	e, _ := setupEngine(nil, Options{Retries: 5})
	assert.Equal(t, DefaultTimeout, e.opts.Timeout)
	assert.Equal(t, 1, e.opts.Retries)

	e, _ = setupEngine(nil, Options{Retries: -1, Timeout: time.Second})
	assert.Equal(t, time.Second, e.opts.Timeout)
	assert.Equal(t, 0, e.opts.Retries)
	assert.Equal(t, DefaultMemorySize, e.Memory("p1").Size())
}

func TestEngine_Decide_RuleBased(t *testing.T) {
	g := setupGame(t)
	e, _ := setupEngine(nil, DefaultOptions())
	seat := g.Hand.ToAct

	d, err := e.Decide(context.Background(), g, seat)
	require.NoError(t, err)
	assert.Equal(t, SourceRuleBased, d.Source)
	assert.NoError(t, g.ValidateAction(seat, d.Action, d.Amount))
	assert.NotEmpty(t, d.Reasoning)

	_, err = e.Decide(context.Background(), g, (seat+1)%3)
	assert.Equal(t, ErrNoDecision, err)
}

func TestEngine_Decide_Provider(t *testing.T) {
	g := setupGame(t)
	var prompt PromptContext
	provider := ProviderFunc(func(ctx context.Context, p PromptContext) (ProviderDecision, error) {
		prompt = p
		return ProviderDecision{Action: "call", Reasoning: "priced in"}, nil
	})

	e, _ := setupEngine(provider, DefaultOptions())
	seat := g.Hand.ToAct

	d, err := e.Decide(context.Background(), g, seat)
	require.NoError(t, err)
	assert.Equal(t, Decision{Action: action.Call, Amount: 200, Reasoning: "priced in", Source: SourceProvider}, d)

	assert.Equal(t, seat, prompt.Seat)
	assert.Equal(t, "pre-flop", prompt.Street)
	assert.Len(t, prompt.HoleCards, 2)
	assert.Empty(t, prompt.Board)
	assert.Equal(t, 300, prompt.Pot)
	assert.Equal(t, 200, prompt.ToCall)
	assert.Equal(t, 200, prompt.BigBlind)
	assert.Equal(t, []string{"fold", "call", "raise", "allin"}, prompt.LegalActions)
	assert.Equal(t, 400, prompt.MinRaiseTo)
	assert.Equal(t, 60000, prompt.MaxRaiseTo)
	assert.Len(t, prompt.Opponents, 2)
	assert.NotEmpty(t, prompt.HandDescription)
	assert.Equal(t, strategy.Balanced.Describe(), prompt.Strategy)
}

func TestEngine_Decide_ProviderTimeout(t *testing.T) {
	g := setupGame(t)
	release := make(chan struct{})
	defer close(release)

	var calls int32
	provider := ProviderFunc(func(ctx context.Context, p PromptContext) (ProviderDecision, error) {
		atomic.AddInt32(&calls, 1)
		// ignores the context on purpose
		<-release
		return ProviderDecision{Action: "fold"}, nil
	})

	e, hook := setupEngine(provider, Options{Timeout: 20 * time.Millisecond, Retries: 1})
	seat := g.Hand.ToAct

	start := time.Now()
	d, err := e.Decide(context.Background(), g, seat)
	require.NoError(t, err)
	assert.Less(t, int64(time.Since(start)), int64(2*time.Second))

	assert.Equal(t, SourceFallback, d.Source)
	assert.NoError(t, g.ValidateAction(seat, d.Action, d.Amount))
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	assert.True(t, hasWarning(hook, "provider failed, using the rule-based model"))

	// the fallback decision can be played
	ng, events, err := texasholdem.ApplyAction(g, seat, d.Action, d.Amount)
	require.NoError(t, err)
	assert.NotEmpty(t, events)
	assert.Equal(t, g.TotalChips(), ng.TotalChips())
}

func TestEngine_Decide_ProviderErrors(t *testing.T) {
	tests := []struct {
		name     string
		decision ProviderDecision
		err      error
	}{
		{"error", ProviderDecision{}, errors.New("connection refused")},
		{"unknown action", ProviderDecision{Action: "dance"}, nil},
		{"illegal check", ProviderDecision{Action: "check"}, nil},
		{"raise without amount", ProviderDecision{Action: "raise"}, nil},
		{"raise too small", ProviderDecision{Action: "raise", Amount: intPtr(250)}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := setupGame(t)
			var calls int32
			provider := ProviderFunc(func(ctx context.Context, p PromptContext) (ProviderDecision, error) {
				atomic.AddInt32(&calls, 1)
				return tt.decision, tt.err
			})

			e, hook := setupEngine(provider, DefaultOptions())
			seat := g.Hand.ToAct

			d, err := e.Decide(context.Background(), g, seat)
			require.NoError(t, err)
			assert.Equal(t, SourceFallback, d.Source)
			assert.NoError(t, g.ValidateAction(seat, d.Action, d.Amount))
			assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
			assert.True(t, hasWarning(hook, "provider failed, using the rule-based model"))
		})
	}
}

func TestEngine_Decide_ProviderRecoversOnRetry(t *testing.T) {
	g := setupGame(t)
	var calls int32
	provider := ProviderFunc(func(ctx context.Context, p PromptContext) (ProviderDecision, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			return ProviderDecision{}, errors.New("rate limited")
		}

		return ProviderDecision{Action: "fold"}, nil
	})

	e, _ := setupEngine(provider, DefaultOptions())
	d, err := e.Decide(context.Background(), g, g.Hand.ToAct)
	require.NoError(t, err)
	assert.Equal(t, action.Fold, d.Action)
	assert.Equal(t, SourceProvider, d.Source)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestEngine_Decide_CanceledContext(t *testing.T) {
	g := setupGame(t)
	var calls int32
	provider := ProviderFunc(func(ctx context.Context, p PromptContext) (ProviderDecision, error) {
		atomic.AddInt32(&calls, 1)
		return ProviderDecision{Action: "fold"}, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e, _ := setupEngine(provider, DefaultOptions())
	d, err := e.Decide(ctx, g, g.Hand.ToAct)
	require.NoError(t, err)
	assert.Equal(t, SourceFallback, d.Source)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestLegalize(t *testing.T) {
	g := setupGame(t)
	seat := g.Hand.ToAct
	logger, hook := test.NewNullLogger()

	// facing the big blind, a check becomes a fold
	d := legalize(g, seat, Decision{Action: action.Check, Reasoning: "free card", Source: SourceProvider}, logger)
	assert.Equal(t, action.Fold, d.Action)
	assert.Equal(t, SourceProvider, d.Source)
	assert.Equal(t, "free card (replaced an illegal decision: you cannot check with an active bet)", d.Reasoning)
	assert.True(t, hasWarning(hook, "decision was illegal"))

	d = legalize(g, seat, Decision{Action: action.Call, Amount: 200}, logger)
	assert.Equal(t, action.Call, d.Action)

	// everybody calls, then the big blind may check
	g, _, err := texasholdem.ApplyAction(g, seat, action.Call, 0)
	require.NoError(t, err)
	g, _, err = texasholdem.ApplyAction(g, g.Hand.ToAct, action.Call, 0)
	require.NoError(t, err)
	require.Equal(t, g.Hand.BigBlindSeat, g.Hand.ToAct)

	d = legalize(g, g.Hand.ToAct, Decision{Action: action.Call, Amount: 200}, logger)
	assert.Equal(t, action.Check, d.Action)
	assert.Equal(t, 0, d.Amount)
}

func TestEngine_Observe(t *testing.T) {
	g := setupGame(t, 1)
	e, _ := setupEngine(nil, Options{MemorySize: 2})

	for i := 0; i < 3 && g.InBettingRound(); i++ {
		seat := g.Hand.ToAct
		if g.Players[seat].IsHuman {
			var events []texasholdem.Event
			var err error
			g, events, err = texasholdem.ApplyAction(g, seat, action.Call, 0)
			require.NoError(t, err)
			e.Observe(g, events)
			continue
		}

		d, err := e.Decide(context.Background(), g, seat)
		require.NoError(t, err)
		ng, events, err := texasholdem.ApplyAction(g, seat, d.Action, d.Amount)
		require.NoError(t, err)
		e.Observe(ng, events)
		g = ng
	}

	// the human seat has no memory
	e.mutex.Lock()
	_, ok := e.memories["p1"]
	e.mutex.Unlock()
	assert.False(t, ok)

	// an AI seat never remembers itself
	assert.Empty(t, e.Memory("p0").Recent("p0"))
	assert.NotEmpty(t, e.Memory("p0").Recent("p1"))
	assert.LessOrEqual(t, len(e.Memory("p2").Recent("p0")), 2)

	// and the memory shows up in the prompt
	if g.InBettingRound() && !g.Players[g.Hand.ToAct].IsHuman {
		prompt := BuildPromptContext(g, g.Hand.ToAct, e.Memory(g.Players[g.Hand.ToAct].ID))
		found := false
		for _, o := range prompt.Opponents {
			if len(o.RecentActions) > 0 {
				found = true
			}
		}

		assert.True(t, found)
	}
}

func TestPosition(t *testing.T) {
	g := setupGame(t)
	button := g.Hand.Button
	assert.Equal(t, 1.0, position(g, button))
	assert.Equal(t, 0.0, position(g, (button+1)%3))
	assert.Equal(t, 0.5, position(g, (button+2)%3))

	assert.Equal(t, "button", positionName(g, button, 1))
	assert.Equal(t, "small blind", positionName(g, g.Hand.SmallBlindSeat, 0))
	assert.Equal(t, "big blind", positionName(g, g.Hand.BigBlindSeat, 0.5))
}

func TestBuildPromptContext_PublicView(t *testing.T) {
	g := setupGame(t)
	m := NewMemory(0)
	m.Record("p1", OpponentAction{HandNumber: 1, Action: action.Call, Amount: 200})

	// fold one seat so a dealt-in seat without chips in the pot is covered
	seat := g.Hand.ToAct
	g, _, err := texasholdem.ApplyAction(g, seat, action.Fold, 0)
	require.NoError(t, err)
	seat = g.Hand.ToAct

	full := BuildPromptContext(g, seat, m)
	view := BuildPromptContext(g.PublicView(seat), seat, m)

	assert.Equal(t, full.PositionRank, view.PositionRank)
	assert.Equal(t, full.Position, view.Position)
	require.Len(t, view.Opponents, 2)
	assert.Equal(t, full.Opponents, view.Opponents)
	assert.Len(t, view.HoleCards, 2)

	e, _ := setupEngine(nil, DefaultOptions())
	assert.Equal(t, e.Situation(g, seat).Position, e.Situation(g.PublicView(seat), seat).Position)
}

func TestEngine_PlaysFullHands(t *testing.T) {
	g := setupGame(t)
	e, _ := setupEngine(nil, DefaultOptions())
	e.rules = NewRuleBased(rng.New(3))
	total := g.TotalChips()

	for hand := 0; hand < 20 && !g.Over; hand++ {
		if hand > 0 {
			var err error
			g, _, err = texasholdem.StartNewHand(g)
			require.NoError(t, err)
		}

		for g.InBettingRound() {
			seat := g.Hand.ToAct
			d, err := e.Decide(context.Background(), g, seat)
			require.NoError(t, err)

			ng, events, err := texasholdem.ApplyAction(g, seat, d.Action, d.Amount)
			require.NoError(t, err, "%s %d", d.Action, d.Amount)
			e.Observe(ng, events)
			g = ng
		}

		assert.Equal(t, total, g.TotalChips())
	}
}
