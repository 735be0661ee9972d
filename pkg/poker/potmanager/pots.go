package potmanager

import "encoding/json"

// Pot is a pot and the seats that can win it
type Pot struct {
	Amount   int
	Eligible []string
}

type potJSON struct {
	Amount   int      `json:"amount"`
	Eligible []string `json:"eligible"`
}

// MarshalJSON provides custom marshalling
func (p Pot) MarshalJSON() ([]byte, error) {
	eligible := p.Eligible
	if eligible == nil {
		eligible = []string{}
	}

	return json.Marshal(potJSON{
		Amount:   p.Amount,
		Eligible: eligible,
	})
}

// IsEligible returns true if the seat can win the pot
func (p Pot) IsEligible(id string) bool {
	for _, e := range p.Eligible {
		if e == id {
			return true
		}
	}

	return false
}

// Pots is an ordered collection of pots, main pot first
type Pots []Pot

// Total returns the combined total of all pots
func (p Pots) Total() int {
	total := 0
	for _, pot := range p {
		total += pot.Amount
	}

	return total
}

// Clone returns a deep copy
func (p Pots) Clone() Pots {
	if p == nil {
		return nil
	}

	pots := make(Pots, len(p))
	for i, pot := range p {
		pots[i] = Pot{
			Amount:   pot.Amount,
			Eligible: append([]string(nil), pot.Eligible...),
		}
	}

	return pots
}
