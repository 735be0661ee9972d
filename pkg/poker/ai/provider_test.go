package ai

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holdem-tournament/pkg/poker/action"
)

func intPtr(i int) *int {
	return &i
}

func TestDecodeProviderDecision(t *testing.T) {
	d, err := DecodeProviderDecision(`Sure! {"action": "raise", "amount": 800, "reasoning": "top pair"} Good luck.`)
	require.NoError(t, err)
	assert.Equal(t, "raise", d.Action)
	require.NotNil(t, d.Amount)
	assert.Equal(t, 800, *d.Amount)
	assert.Equal(t, "top pair", d.Reasoning)

	d, err = DecodeProviderDecision(`{"action":"fold"}`)
	require.NoError(t, err)
	assert.Equal(t, "fold", d.Action)
	assert.Nil(t, d.Amount)

	_, err = DecodeProviderDecision("I fold")
	assert.EqualError(t, err, "invalid provider decision: no JSON object in response")
	assert.True(t, errors.Is(err, ErrInvalidDecision))

	_, err = DecodeProviderDecision(`{"action": }`)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDecision))
}

func TestProviderDecision_toDecision(t *testing.T) {
	prompt := PromptContext{
		Stack:        5000,
		CurrentBet:   100,
		ToCall:       100,
		LegalActions: []string{"fold", "call", "raise", "allin"},
		MinRaiseTo:   400,
		MaxRaiseTo:   5100,
	}

	d, err := ProviderDecision{Action: "Call", Reasoning: "cheap"}.toDecision(prompt)
	require.NoError(t, err)
	assert.Equal(t, Decision{Action: action.Call, Amount: 100, Reasoning: "cheap", Source: SourceProvider}, d)

	d, err = ProviderDecision{Action: "bet", Amount: intPtr(600)}.toDecision(prompt)
	require.NoError(t, err)
	assert.Equal(t, action.Raise, d.Action)
	assert.Equal(t, 600, d.Amount)

	d, err = ProviderDecision{Action: "shove"}.toDecision(prompt)
	require.NoError(t, err)
	assert.Equal(t, action.AllIn, d.Action)
	assert.Equal(t, 5100, d.Amount)

	_, err = ProviderDecision{Action: "check"}.toDecision(prompt)
	assert.EqualError(t, err, `invalid provider decision: illegal action "check" (legal: fold, call, raise, allin)`)

	_, err = ProviderDecision{Action: "raise"}.toDecision(prompt)
	assert.EqualError(t, err, "invalid provider decision: raise requires an amount")

	_, err = ProviderDecision{Action: "raise", Amount: intPtr(300)}.toDecision(prompt)
	assert.EqualError(t, err, "invalid provider decision: raise amount 300 out of bounds [400, 5100]")

	_, err = ProviderDecision{Action: "dance"}.toDecision(prompt)
	assert.EqualError(t, err, "invalid provider decision: unknown action for identifier: dance")

	d, err = ProviderDecision{Action: "fold", Reasoning: strings.Repeat("é", 400)}.toDecision(prompt)
	require.NoError(t, err)
	assert.Len(t, []rune(d.Reasoning), maxReasoningLength)
}

func TestProviderDecision_CallWithNothingToCall(t *testing.T) {
	prompt := PromptContext{
		LegalActions: []string{"fold", "check", "raise"},
		MinRaiseTo:   200,
		MaxRaiseTo:   5000,
	}

	d, err := ProviderDecision{Action: "call"}.toDecision(prompt)
	require.NoError(t, err)
	assert.Equal(t, action.Check, d.Action)
	assert.Equal(t, 0, d.Amount)
}
