package ai

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"holdem-tournament/internal/rng"
	"holdem-tournament/pkg/poker/action"
	"holdem-tournament/pkg/poker/handanalyzer"
	"holdem-tournament/pkg/poker/texasholdem"
)

// ErrNoDecision is returned when the seat has nothing to decide
var ErrNoDecision = errors.New("the seat is not waiting on a decision")

// DefaultTimeout is how long a provider has to answer
const DefaultTimeout = 5 * time.Second

// Options configures an Engine
type Options struct {
	// Timeout bounds each provider request
	Timeout time.Duration
	// Retries is how many times a failed provider request is retried, at most one
	Retries int
	// MemorySize is how many actions are remembered per opponent
	MemorySize int
}

// DefaultOptions returns the engine defaults
func DefaultOptions() Options {
	return Options{
		Timeout:    DefaultTimeout,
		Retries:    1,
		MemorySize: DefaultMemorySize,
	}
}

// Engine decides for AI seats. It asks the provider when one is configured and falls
// back to the rule-based model when the provider fails
type Engine struct {
	log      logrus.FieldLogger
	provider Provider
	rules    *RuleBased
	opts     Options

	mutex    sync.Mutex
	memories map[string]*Memory
}

// NewEngine returns a new engine. provider may be nil
func NewEngine(logger logrus.FieldLogger, provider Provider, r rng.Generator, opts Options) *Engine {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	if opts.Retries < 0 {
		opts.Retries = 0
	} else if opts.Retries > 1 {
		opts.Retries = 1
	}

	return &Engine{
		log:      logger.WithField("component", "ai"),
		provider: provider,
		rules:    NewRuleBased(r),
		opts:     opts,
		memories: make(map[string]*Memory),
	}
}

// Memory returns what the seat with the player id remembers about its opponents
func (e *Engine) Memory(playerID string) *Memory {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	m, ok := e.memories[playerID]
	if !ok {
		m = NewMemory(e.opts.MemorySize)
		e.memories[playerID] = m
	}

	return m
}

// Observe records every applied action in the memory of each AI seat that saw it
func (e *Engine) Observe(g *texasholdem.GameState, events []texasholdem.Event) {
	for _, event := range events {
		applied, ok := event.(texasholdem.ActionApplied)
		if !ok {
			continue
		}

		seen := OpponentAction{
			HandNumber: applied.Metadata().HandNumber,
			Round:      applied.Round.String(),
			Action:     applied.Action,
			Amount:     applied.Amount,
		}

		for _, p := range g.Players {
			if p.IsHuman || p.ID == applied.PlayerID {
				continue
			}

			e.Memory(p.ID).Record(applied.PlayerID, seen)
		}
	}
}

// Decide returns a legal action for the seat to act
// Provider failures are logged and never returned
func (e *Engine) Decide(ctx context.Context, g *texasholdem.GameState, seat int) (Decision, error) {
	if len(g.LegalActions(seat)) == 0 {
		return Decision{}, ErrNoDecision
	}

	p := g.Players[seat]
	log := e.log.WithFields(logrus.Fields{
		"hand":   g.Hand.Number,
		"round":  g.Hand.Round.String(),
		"seat":   seat,
		"player": p.ID,
	})

	var d Decision
	if e.provider != nil {
		prompt := BuildPromptContext(g, seat, e.Memory(p.ID))
		pd, err := e.askProvider(ctx, log, g, seat, prompt)
		if err == nil {
			d = pd
		} else {
			log.WithError(err).Warn("provider failed, using the rule-based model")
			d = e.rules.Decide(e.Situation(g, seat))
			d.Source = SourceFallback
		}
	} else {
		d = e.rules.Decide(e.Situation(g, seat))
	}

	d = legalize(g, seat, d, log)
	log.WithFields(logrus.Fields{
		"action": string(d.Action),
		"amount": d.Amount,
		"source": string(d.Source),
	}).Debug("decided")

	return d, nil
}

// askProvider requests a decision, retrying once on failure
func (e *Engine) askProvider(ctx context.Context, log logrus.FieldLogger, g *texasholdem.GameState, seat int, prompt PromptContext) (Decision, error) {
	var err error
	for attempt := 0; attempt <= e.opts.Retries; attempt++ {
		if ctx.Err() != nil {
			return Decision{}, ctx.Err()
		}

		var pd ProviderDecision
		pd, err = e.request(ctx, prompt)
		if err == nil {
			var d Decision
			d, err = pd.toDecision(prompt)
			if err == nil {
				err = g.ValidateAction(seat, d.Action, d.Amount)
			}

			if err == nil {
				return d, nil
			}
		}

		log.WithError(err).WithField("attempt", attempt+1).Debug("provider request failed")
	}

	return Decision{}, err
}

// request runs the provider in its own goroutine so a provider that ignores its context
// cannot hold up the turn
func (e *Engine) request(ctx context.Context, prompt PromptContext) (ProviderDecision, error) {
	ctx, cancel := context.WithTimeout(ctx, e.opts.Timeout)
	defer cancel()

	type result struct {
		decision ProviderDecision
		err      error
	}

	ch := make(chan result, 1)
	go func() {
		d, err := e.provider.RequestDecision(ctx, prompt)
		ch <- result{d, err}
	}()

	select {
	case r := <-ch:
		return r.decision, r.err
	case <-ctx.Done():
		return ProviderDecision{}, fmt.Errorf("%w after %s: %v", ErrProviderTimeout, e.opts.Timeout, ctx.Err())
	}
}

// Situation summarizes the state for the rule-based model
func (e *Engine) Situation(g *texasholdem.GameState, seat int) Situation {
	h := g.Hand
	p := g.Players[seat]
	s := Situation{
		Profile:    p.Profile,
		Position:   position(g, seat),
		Pot:        h.Pot,
		ToCall:     g.ToCall(seat),
		CurrentBet: h.CurrentBet,
		Chips:      p.Chips,
		BigBlind:   h.BigBlind,
		Legal:      g.LegalActions(seat),
	}

	s.MinRaiseTo, s.MaxRaiseTo, _ = g.RaiseBounds(seat)

	if eval, err := handanalyzer.Evaluate(p.HoleCards, h.Community); err == nil {
		s.Strength = eval.Normalized()
		s.Draw = eval.FlushDraw || eval.StraightDraw
	} else {
		e.log.WithError(err).Warn("could not evaluate hand")
	}

	return s
}

// legalize replaces an illegal decision with a check, or a fold if checking is not allowed
func legalize(g *texasholdem.GameState, seat int, d Decision, log logrus.FieldLogger) Decision {
	err := g.ValidateAction(seat, d.Action, d.Amount)
	if err == nil {
		return d
	}

	log.WithError(err).WithField("action", string(d.Action)).Warn("decision was illegal")
	a := action.Fold
	if g.IsLegal(seat, action.Check) {
		a = action.Check
	}

	d.Action = a
	d.Amount = 0
	d.Reasoning = fmt.Sprintf("%s (replaced an illegal decision: %v)", d.Reasoning, err)
	return d
}
