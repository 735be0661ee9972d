package ai

import (
	"strings"

	"holdem-tournament/pkg/poker/action"
)

// Source is where a decision came from
type Source string

// decision sources
const (
	SourceProvider  Source = "provider"
	SourceRuleBased Source = "rule-based"
	// SourceFallback means the provider was asked and failed, so the rule-based model decided
	SourceFallback Source = "fallback"
)

// Decision is an action for a seat. For a raise, Amount is the total bet
type Decision struct {
	Action    action.Action `json:"action"`
	Amount    int           `json:"amount"`
	Reasoning string        `json:"reasoning"`
	Source    Source        `json:"source"`
}

// thinking accumulates the reasons behind a decision
type thinking struct {
	thoughts []string
}

func (t *thinking) add(thought string) {
	t.thoughts = append(t.thoughts, thought)
}

func (t *thinking) String() string {
	if len(t.thoughts) == 0 {
		return "no clear reasoning"
	}

	return strings.Join(t.thoughts, ". ")
}
