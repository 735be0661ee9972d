package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"holdem-tournament/pkg/poker/action"
)

// ErrProviderTimeout is returned when the provider did not answer in time
var ErrProviderTimeout = errors.New("provider timed out")

// ErrInvalidDecision is returned when the provider's answer cannot be played
var ErrInvalidDecision = errors.New("invalid provider decision")

// ProviderDecision is the answer from an external decision provider
// Amount is the total bet for a raise and is ignored otherwise
type ProviderDecision struct {
	Action    string `json:"action"`
	Amount    *int   `json:"amount,omitempty"`
	Reasoning string `json:"reasoning,omitempty"`
}

// Provider is an external source of decisions, i.e., a language model behind an API
// RequestDecision should return when ctx is done, but the engine does not rely on it
type Provider interface {
	RequestDecision(ctx context.Context, prompt PromptContext) (ProviderDecision, error)
}

// ProviderFunc adapts a function to the Provider interface
type ProviderFunc func(ctx context.Context, prompt PromptContext) (ProviderDecision, error)

// RequestDecision calls f
func (f ProviderFunc) RequestDecision(ctx context.Context, prompt PromptContext) (ProviderDecision, error) {
	return f(ctx, prompt)
}

// DecodeProviderDecision parses a JSON answer. Text around the JSON object is ignored,
// since models like to explain themselves
func DecodeProviderDecision(raw string) (ProviderDecision, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end < start {
		return ProviderDecision{}, fmt.Errorf("%w: no JSON object in response", ErrInvalidDecision)
	}

	var d ProviderDecision
	if err := json.Unmarshal([]byte(raw[start:end+1]), &d); err != nil {
		return ProviderDecision{}, fmt.Errorf("%w: %v", ErrInvalidDecision, err)
	}

	return d, nil
}

// toDecision checks the provider's answer against what the prompt allowed
func (d ProviderDecision) toDecision(prompt PromptContext) (Decision, error) {
	a, err := action.FromString(d.Action)
	if err != nil {
		return Decision{}, fmt.Errorf("%w: %v", ErrInvalidDecision, err)
	}

	// calling nothing is a check
	if a == action.Call && prompt.ToCall == 0 {
		a = action.Check
	}

	if !prompt.allows(a) {
		return Decision{}, fmt.Errorf("%w: illegal action %q (legal: %s)", ErrInvalidDecision, string(a), strings.Join(prompt.LegalActions, ", "))
	}

	amount := 0
	switch a {
	case action.Raise:
		if d.Amount == nil {
			return Decision{}, fmt.Errorf("%w: raise requires an amount", ErrInvalidDecision)
		}

		amount = *d.Amount
		if amount < prompt.MinRaiseTo || amount > prompt.MaxRaiseTo {
			return Decision{}, fmt.Errorf("%w: raise amount %d out of bounds [%d, %d]", ErrInvalidDecision, amount, prompt.MinRaiseTo, prompt.MaxRaiseTo)
		}
	case action.Call:
		amount = prompt.ToCall
	case action.AllIn:
		amount = prompt.Stack + prompt.CurrentBet
	}

	reasoning := d.Reasoning
	if r := []rune(reasoning); len(r) > maxReasoningLength {
		reasoning = string(r[:maxReasoningLength])
	}

	return Decision{
		Action:    a,
		Amount:    amount,
		Reasoning: reasoning,
		Source:    SourceProvider,
	}, nil
}

const maxReasoningLength = 280
