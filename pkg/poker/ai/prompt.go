package ai

import (
	"holdem-tournament/pkg/deck"
	"holdem-tournament/pkg/poker/action"
	"holdem-tournament/pkg/poker/handanalyzer"
	"holdem-tournament/pkg/poker/texasholdem"
)

// OpponentSummary is what a seat can see about another seat
type OpponentSummary struct {
	Seat          int      `json:"seat"`
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Stack         int      `json:"stack"`
	Bet           int      `json:"bet"`
	Folded        bool     `json:"folded"`
	AllIn         bool     `json:"all_in"`
	RecentActions []string `json:"recent_actions,omitempty"`
}

// PromptContext is everything a provider is told about a decision
type PromptContext struct {
	HandID     string `json:"hand_id"`
	HandNumber int    `json:"hand_number"`
	Seat       int    `json:"seat"`
	Name       string `json:"name"`
	Street     string `json:"street"`

	HoleCards       []string `json:"hole_cards"`
	Board           []string `json:"board"`
	HandDescription string   `json:"hand_description"`
	HandStrength    float64  `json:"hand_strength"`

	Stack      int `json:"stack"`
	CurrentBet int `json:"current_bet"`
	Pot        int `json:"pot"`
	ToCall     int `json:"to_call"`
	SmallBlind int `json:"small_blind"`
	BigBlind   int `json:"big_blind"`

	Position     string  `json:"position"`
	PositionRank float64 `json:"position_rank"`

	Strategy     string            `json:"strategy"`
	LegalActions []string          `json:"legal_actions"`
	MinRaiseTo   int               `json:"min_raise_to"`
	MaxRaiseTo   int               `json:"max_raise_to"`
	Opponents    []OpponentSummary `json:"opponents"`
	HistoryLen   int               `json:"history_len"`
}

func (p PromptContext) allows(a action.Action) bool {
	for _, legal := range p.LegalActions {
		if legal == string(a) {
			return true
		}
	}

	return false
}

// BuildPromptContext describes the decision in front of the seat
// Only what the seat is allowed to see is included. memory may be nil
func BuildPromptContext(g *texasholdem.GameState, seat int, memory *Memory) PromptContext {
	h := g.Hand
	p := g.Players[seat]

	pc := PromptContext{
		HandID:     h.ID.String(),
		HandNumber: h.Number,
		Seat:       seat,
		Name:       p.Name,
		Street:     h.Round.String(),
		HoleCards:  cardStrings(p.HoleCards),
		Board:      cardStrings(h.Community),
		Stack:      p.Chips,
		CurrentBet: p.CurrentBet,
		Pot:        h.Pot,
		ToCall:     g.ToCall(seat),
		SmallBlind: h.SmallBlind,
		BigBlind:   h.BigBlind,
		Strategy:   p.Profile.Describe(),
		HistoryLen: len(h.Log),
	}

	if eval, err := handanalyzer.Evaluate(p.HoleCards, h.Community); err == nil {
		pc.HandDescription = eval.Description
		pc.HandStrength = eval.Normalized()
	}

	pc.PositionRank = position(g, seat)
	pc.Position = positionName(g, seat, pc.PositionRank)

	for _, a := range g.LegalActions(seat) {
		pc.LegalActions = append(pc.LegalActions, string(a))
	}

	pc.MinRaiseTo, pc.MaxRaiseTo, _ = g.RaiseBounds(seat)

	for i, o := range g.Players {
		if i == seat || !o.DealtIn {
			continue
		}

		summary := OpponentSummary{
			Seat:   i,
			ID:     o.ID,
			Name:   o.Name,
			Stack:  o.Chips,
			Bet:    o.CurrentBet,
			Folded: !o.IsActive,
			AllIn:  o.IsAllIn,
		}

		if memory != nil {
			for _, recent := range memory.Recent(o.ID) {
				summary.RecentActions = append(summary.RecentActions, recent.String())
			}
		}

		pc.Opponents = append(pc.Opponents, summary)
	}

	return pc
}

// position returns 0 for the first seat dealt in left of the button and 1 for the button
func position(g *texasholdem.GameState, seat int) float64 {
	n := len(g.Players)
	dealt := 0
	index := -1
	for i := 1; i <= n; i++ {
		s := (g.Hand.Button + i) % n
		if !g.Players[s].DealtIn {
			continue
		}

		if s == seat {
			index = dealt
		}

		dealt++
	}

	if index < 0 || dealt < 2 {
		return 0
	}

	return float64(index) / float64(dealt-1)
}

func positionName(g *texasholdem.GameState, seat int, rank float64) string {
	switch {
	case seat == g.Hand.Button:
		return "button"
	case seat == g.Hand.SmallBlindSeat:
		return "small blind"
	case seat == g.Hand.BigBlindSeat:
		return "big blind"
	case rank < 0.5:
		return "early"
	case rank < 0.8:
		return "middle"
	}

	return "late"
}

func cardStrings(cards deck.Hand) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.String()
	}

	return out
}
