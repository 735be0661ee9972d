package room

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"holdem-tournament/pkg/poker/action"
	"holdem-tournament/pkg/poker/ai"
	"holdem-tournament/pkg/poker/texasholdem"
)

// ErrNoHumanPlayer is returned when a human seat must act but nobody is there to ask
var ErrNoHumanPlayer = errors.New("a human seat must act but there is no player for it")

// HumanPlayer chooses actions for human seats
type HumanPlayer interface {
	// ChooseAction returns the seat's action. view only shows what the seat may see
	ChooseAction(ctx context.Context, view *texasholdem.GameState, seat int) (action.Action, int, error)
	// Rejected is called when the chosen action was illegal. The seat is asked again
	Rejected(seat int, err error)
}

// EventHandler receives every event along with the latest state
type EventHandler func(g *texasholdem.GameState, e texasholdem.Event)

// PitBoss runs a tournament: it deals hands, dispatches human turns to the player,
// and hands every event to the handler
type PitBoss struct {
	log      logrus.FieldLogger
	dealer   *Dealer
	human    HumanPlayer
	maxHands int
	handler  EventHandler
}

// NewPitBoss returns a new tournament runner. maxHands of zero plays until somebody wins
func NewPitBoss(logger logrus.FieldLogger, dealer *Dealer, human HumanPlayer, maxHands int, handler EventHandler) *PitBoss {
	if handler == nil {
		handler = func(*texasholdem.GameState, texasholdem.Event) {}
	}

	return &PitBoss{
		log:      logger.WithField("component", "pitboss"),
		dealer:   dealer,
		human:    human,
		maxHands: maxHands,
		handler:  handler,
	}
}

// Run plays hands until the game is over, maxHands were played, or ctx is done
// The final state is returned even on error
func (p *PitBoss) Run(ctx context.Context) (*texasholdem.GameState, error) {
	for hands := 0; p.maxHands == 0 || hands < p.maxHands; hands++ {
		if p.dealer.State().Over {
			break
		}

		if err := p.dealer.StartHand(ctx); err != nil {
			p.drain()
			if errors.Is(err, texasholdem.ErrGameOver) {
				break
			}

			return p.dealer.State(), err
		}

		p.drain()
		if err := p.playHumans(ctx); err != nil {
			p.drain()
			return p.dealer.State(), err
		}
	}

	g := p.dealer.State()
	p.log.WithFields(logrus.Fields{
		"hands":  g.HandNumber,
		"over":   g.Over,
		"winner": g.Winner,
	}).Info("tournament finished")

	return g, nil
}

func (p *PitBoss) playHumans(ctx context.Context) error {
	for seat := p.dealer.WaitingOn(); seat >= 0; seat = p.dealer.WaitingOn() {
		if p.human == nil {
			return ErrNoHumanPlayer
		}

		a, amount, err := p.human.ChooseAction(ctx, p.dealer.State().PublicView(seat), seat)
		if err != nil {
			return err
		}

		if err := p.dealer.SubmitAction(ctx, seat, a, amount); err != nil {
			if errors.Is(err, texasholdem.ErrIllegalAction) {
				p.human.Rejected(seat, err)
				continue
			}

			return err
		}

		p.drain()
	}

	return nil
}

// drain hands every delivered event to the handler
func (p *PitBoss) drain() {
	for {
		select {
		case e, ok := <-p.dealer.Events():
			if !ok {
				return
			}

			p.handler(p.dealer.State(), e)
		default:
			return
		}
	}
}

// AutoPilot plays human seats with the decision engine
type AutoPilot struct {
	Engine *ai.Engine
}

// ChooseAction asks the engine
func (a AutoPilot) ChooseAction(ctx context.Context, view *texasholdem.GameState, seat int) (action.Action, int, error) {
	d, err := a.Engine.Decide(ctx, view, seat)
	if err != nil {
		return "", 0, err
	}

	return d.Action, d.Amount, nil
}

// Rejected does nothing, the engine only returns legal actions
func (AutoPilot) Rejected(int, error) {}
