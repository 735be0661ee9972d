package ai

import (
	"fmt"
	"sync"

	"holdem-tournament/pkg/poker/action"
)

// DefaultMemorySize is how many actions are remembered per opponent
const DefaultMemorySize = 20

// OpponentAction is an action an AI seat saw an opponent take
type OpponentAction struct {
	HandNumber int           `json:"hand"`
	Round      string        `json:"round"`
	Action     action.Action `json:"action"`
	Amount     int           `json:"amount"`
}

// String returns i.e., "hand 3 flop: raise 800"
func (o OpponentAction) String() string {
	if o.Amount > 0 {
		return fmt.Sprintf("hand %d %s: %s %d", o.HandNumber, o.Round, string(o.Action), o.Amount)
	}

	return fmt.Sprintf("hand %d %s: %s", o.HandNumber, o.Round, string(o.Action))
}

// Memory is what one AI seat remembers about its opponents
// Only the most recent actions are kept for each opponent
type Memory struct {
	size      int
	mutex     sync.RWMutex
	opponents map[string][]OpponentAction
}

// NewMemory returns a memory that keeps size actions per opponent
func NewMemory(size int) *Memory {
	if size <= 0 {
		size = DefaultMemorySize
	}

	return &Memory{
		size:      size,
		opponents: make(map[string][]OpponentAction),
	}
}

// Record remembers an action, forgetting the oldest one if the opponent's memory is full
func (m *Memory) Record(opponentID string, a OpponentAction) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	actions := append(m.opponents[opponentID], a)
	if len(actions) > m.size {
		actions = append([]OpponentAction(nil), actions[len(actions)-m.size:]...)
	}

	m.opponents[opponentID] = actions
}

// Recent returns the remembered actions for the opponent, oldest first
func (m *Memory) Recent(opponentID string) []OpponentAction {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return append([]OpponentAction(nil), m.opponents[opponentID]...)
}

// Size returns how many actions are kept per opponent
func (m *Memory) Size() int {
	return m.size
}
