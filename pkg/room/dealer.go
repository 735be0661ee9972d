package room

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"holdem-tournament/pkg/poker/action"
	"holdem-tournament/pkg/poker/ai"
	"holdem-tournament/pkg/poker/texasholdem"
)

// ErrBusy is returned when the dealer is already resolving a turn
var ErrBusy = errors.New("the dealer is busy")

// ErrAborted is returned after the dealer was aborted
var ErrAborted = errors.New("the game was aborted")

// ErrClosed is returned after the dealer ended its shift
var ErrClosed = errors.New("the dealer has ended its shift")

// ErrNotHumanTurn is returned when an action is submitted for a seat that is not waiting on a human
var ErrNotHumanTurn = errors.New("it is not a human seat's turn")

// ErrEventsPending is returned when a new hand is requested before the last one's events were read
var ErrEventsPending = errors.New("the previous hand's events have not been read")

// Options configures a Dealer
type Options struct {
	// TurnTimeout bounds each AI decision
	TurnTimeout time.Duration
	// EventBuffer is the size of the event channel
	EventBuffer int
}

// DefaultOptions returns the dealer defaults
func DefaultOptions() Options {
	return Options{
		TurnTimeout: 10 * time.Second,
		EventBuffer: 1024,
	}
}

// Dealer runs a game. It is the only writer of the game state: one turn is resolved at a time
// and a submission that arrives while a turn is in flight is rejected with ErrBusy
type Dealer struct {
	log    logrus.FieldLogger
	engine *ai.Engine
	opts   Options

	processing int32
	aborted    int32
	closed     bool

	lock        sync.RWMutex
	game        *texasholdem.GameState
	logMessages []string

	events chan texasholdem.Event
}

// NewDealer returns a dealer for the game. AI seats decide through engine
func NewDealer(logger logrus.FieldLogger, game *texasholdem.GameState, engine *ai.Engine, opts Options) *Dealer {
	if opts.TurnTimeout <= 0 {
		opts.TurnTimeout = DefaultOptions().TurnTimeout
	}

	if opts.EventBuffer <= 0 {
		opts.EventBuffer = DefaultOptions().EventBuffer
	}

	return &Dealer{
		log:    logger.WithField("component", "dealer"),
		engine: engine,
		opts:   opts,
		game:   game,
		events: make(chan texasholdem.Event, opts.EventBuffer),
	}
}

// Events returns the channel every game event is delivered on, in order
func (d *Dealer) Events() <-chan texasholdem.Event {
	return d.events
}

// State returns the latest consistent game state
func (d *Dealer) State() *texasholdem.GameState {
	d.lock.RLock()
	defer d.lock.RUnlock()

	return d.game
}

// WaitingOn returns the human seat the dealer is waiting on, or -1
func (d *Dealer) WaitingOn() int {
	g := d.State()
	if g.Over || !g.InBettingRound() || atomic.LoadInt32(&d.aborted) == 1 {
		return -1
	}

	seat := g.Hand.ToAct
	if seat < 0 || !g.Players[seat].IsHuman {
		return -1
	}

	return seat
}

// Abort stops the dealer from requesting any more turns
// Chips already moved stay where they are
func (d *Dealer) Abort() {
	if atomic.CompareAndSwapInt32(&d.aborted, 0, 1) {
		d.log.Warn("game aborted")
	}
}

// IsAborted returns true after Abort was called or the dealer halted on an invariant violation
func (d *Dealer) IsAborted() bool {
	return atomic.LoadInt32(&d.aborted) == 1
}

// EndShift closes the event channel. The dealer cannot be used afterwards
func (d *Dealer) EndShift() error {
	if !atomic.CompareAndSwapInt32(&d.processing, 0, 1) {
		return ErrBusy
	}
	defer d.end()

	if d.closed {
		return ErrClosed
	}

	d.closed = true
	close(d.events)
	return nil
}

// begin claims the processing flag
func (d *Dealer) begin() error {
	if !atomic.CompareAndSwapInt32(&d.processing, 0, 1) {
		return ErrBusy
	}

	if d.closed {
		d.end()
		return ErrClosed
	}

	if atomic.LoadInt32(&d.aborted) == 1 {
		d.end()
		return ErrAborted
	}

	return nil
}

func (d *Dealer) end() {
	atomic.StoreInt32(&d.processing, 0)
}

// StartHand deals the next hand and plays AI seats until a human seat must act or the hand ends
func (d *Dealer) StartHand(ctx context.Context) error {
	if err := d.begin(); err != nil {
		return err
	}
	defer d.end()

	if len(d.events) > 0 {
		return ErrEventsPending
	}

	game, events, err := texasholdem.StartNewHand(d.State())
	if err != nil {
		return err
	}

	if err := d.commit(ctx, game, events); err != nil {
		return err
	}

	return d.playAI(ctx)
}

// SubmitAction applies a human seat's action. Illegal actions are returned and nothing changes
func (d *Dealer) SubmitAction(ctx context.Context, seat int, a action.Action, amount int) error {
	if err := d.begin(); err != nil {
		return err
	}
	defer d.end()

	g := d.State()
	if !g.InBettingRound() || seat != g.Hand.ToAct || seat < 0 || !g.Players[seat].IsHuman {
		return ErrNotHumanTurn
	}

	game, events, err := texasholdem.ApplyAction(g, seat, a, amount)
	if err != nil {
		return d.halt(err)
	}

	if err := d.commit(ctx, game, events); err != nil {
		return err
	}

	return d.playAI(ctx)
}

// playAI asks the engine for every AI turn until a human must act, the hand ends, or the
// dealer is aborted
func (d *Dealer) playAI(ctx context.Context) error {
	for {
		if atomic.LoadInt32(&d.aborted) == 1 {
			return ErrAborted
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		g := d.State()
		if g.Over || !g.InBettingRound() {
			return nil
		}

		seat := g.Hand.ToAct
		if seat < 0 {
			return d.halt(fmt.Errorf("%w: nobody to act in %s", texasholdem.ErrInvariantViolation, g.Hand.Round))
		}

		if g.Players[seat].IsHuman {
			return nil
		}

		if d.engine == nil {
			return d.halt(fmt.Errorf("seat %d is an AI seat but there is no decision engine", seat))
		}

		turnCtx, cancel := context.WithTimeout(ctx, d.opts.TurnTimeout)
		decision, err := d.engine.Decide(turnCtx, g, seat)
		cancel()
		if err != nil {
			return d.halt(err)
		}

		d.log.WithFields(logrus.Fields{
			"seat":      seat,
			"action":    string(decision.Action),
			"amount":    decision.Amount,
			"source":    string(decision.Source),
			"reasoning": decision.Reasoning,
		}).Debug("AI decision")

		game, events, err := texasholdem.ApplyAction(g, seat, decision.Action, decision.Amount)
		if err != nil {
			return d.halt(err)
		}

		if err := d.commit(ctx, game, events); err != nil {
			return err
		}
	}
}

// commit stores the new state and delivers its events
func (d *Dealer) commit(ctx context.Context, game *texasholdem.GameState, events []texasholdem.Event) error {
	d.lock.Lock()
	d.game = game
	d.addLogMessages(events)
	d.lock.Unlock()

	if d.engine != nil {
		d.engine.Observe(game, events)
	}

	for _, event := range events {
		select {
		case d.events <- event:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return nil
}

// halt stops the dealer on errors the game cannot recover from, leaving the last
// consistent state in place. Illegal actions are returned as is
func (d *Dealer) halt(err error) error {
	if errors.Is(err, texasholdem.ErrIllegalAction) {
		return err
	}

	atomic.StoreInt32(&d.aborted, 1)
	d.log.WithError(err).Error("halting the game")
	return err
}
