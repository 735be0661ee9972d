package potmanager

import "sort"

// WinManager ranks the seats contesting a pot by hand strength
// Seats with equal strength share a tier and split whatever that tier wins
type WinManager struct {
	strengths map[int][]string
}

// NewWinManager returns an empty WinManager
func NewWinManager() *WinManager {
	return &WinManager{strengths: make(map[int][]string)}
}

// AddSeat adds a seat with its hand strength
func (w *WinManager) AddSeat(id string, handStrength int) {
	w.strengths[handStrength] = append(w.strengths[handStrength], id)
}

// GetSortedTiers returns the seats grouped by strength, strongest tier first
// Within a tier seats keep the order they were added in. Award re-sorts a winning tier from the
// button before handing out odd chips
func (w *WinManager) GetSortedTiers() [][]string {
	strengths := make([]int, 0, len(w.strengths))
	for strength := range w.strengths {
		strengths = append(strengths, strength)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(strengths)))

	tiers := make([][]string, len(strengths))
	for i, strength := range strengths {
		tiers[i] = w.strengths[strength]
	}

	return tiers
}
