package strategy

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownStyle is returned when a legacy style name has no profile
var ErrUnknownStyle = errors.New("unknown playing style")

// Profile describes how an AI seat plays. Every trait is in [0, 1]
type Profile struct {
	// Tightness is how selective the seat is about the hands it plays
	Tightness float64 `json:"tightness" yaml:"tightness"`
	// Aggression is how much the seat prefers betting and raising over calling
	Aggression float64 `json:"aggression" yaml:"aggression"`
	// Adaptability is how much the seat adjusts to position
	Adaptability float64 `json:"adaptability" yaml:"adaptability"`
	// RiskTolerance is how willing the seat is to commit a short stack
	RiskTolerance float64 `json:"riskTolerance" yaml:"riskTolerance"`
}

// Balanced is the profile used when nothing else is given
var Balanced = Profile{Tightness: 0.5, Aggression: 0.5, Adaptability: 0.5, RiskTolerance: 0.5}

var legacyStyles = map[string]Profile{
	"balanced":         Balanced,
	"tight-aggressive": {Tightness: 0.75, Aggression: 0.75, Adaptability: 0.6, RiskTolerance: 0.5},
	"tight-passive":    {Tightness: 0.75, Aggression: 0.25, Adaptability: 0.4, RiskTolerance: 0.3},
	"loose-aggressive": {Tightness: 0.25, Aggression: 0.8, Adaptability: 0.6, RiskTolerance: 0.7},
	"loose-passive":    {Tightness: 0.25, Aggression: 0.25, Adaptability: 0.3, RiskTolerance: 0.5},
	"maniac":           {Tightness: 0.1, Aggression: 0.95, Adaptability: 0.2, RiskTolerance: 0.95},
	"rock":             {Tightness: 0.95, Aggression: 0.2, Adaptability: 0.2, RiskTolerance: 0.1},
	"conservative":     {Tightness: 0.8, Aggression: 0.3, Adaptability: 0.5, RiskTolerance: 0.2},
	"aggressive":       {Tightness: 0.4, Aggression: 0.85, Adaptability: 0.5, RiskTolerance: 0.7},
}

// New returns a profile from its four traits
func New(tightness, aggression, adaptability, riskTolerance float64) (Profile, error) {
	p := Profile{
		Tightness:     tightness,
		Aggression:    aggression,
		Adaptability:  adaptability,
		RiskTolerance: riskTolerance,
	}

	if err := p.Validate(); err != nil {
		return Profile{}, err
	}

	return p, nil
}

// FromLegacy converts a named playing style, i.e., "tight-aggressive"
// Spaces and underscores are accepted in place of hyphens
func FromLegacy(style string) (Profile, error) {
	key := strings.ToLower(strings.TrimSpace(style))
	key = strings.NewReplacer(" ", "-", "_", "-").Replace(key)
	if p, ok := legacyStyles[key]; ok {
		return p, nil
	}

	return Profile{}, fmt.Errorf("%w: %s", ErrUnknownStyle, style)
}

// Styles returns the known legacy style names in alphabetical order
func Styles() []string {
	styles := make([]string, 0, len(legacyStyles))
	for style := range legacyStyles {
		styles = append(styles, style)
	}

	sort.Strings(styles)
	return styles
}

// Validate ensures every trait is within [0, 1]
func (p Profile) Validate() error {
	traits := []struct {
		name  string
		value float64
	}{
		{"tightness", p.Tightness},
		{"aggression", p.Aggression},
		{"adaptability", p.Adaptability},
		{"riskTolerance", p.RiskTolerance},
	}

	for _, trait := range traits {
		if trait.value < 0 || trait.value > 1 {
			return fmt.Errorf("%s must be between 0 and 1, got %g", trait.name, trait.value)
		}
	}

	return nil
}

// Describe returns a short plain-English description of the profile
func (p Profile) Describe() string {
	return fmt.Sprintf(
		"%s and %s; %s; %s (tightness %.2f, aggression %.2f, adaptability %.2f, risk tolerance %.2f)",
		level(p.Tightness, "loose", "selective", "tight"),
		level(p.Aggression, "passive", "measured", "aggressive"),
		level(p.Adaptability, "ignores position", "somewhat position aware", "plays position heavily"),
		level(p.RiskTolerance, "avoids big risks", "takes some risks", "happy to gamble"),
		p.Tightness, p.Aggression, p.Adaptability, p.RiskTolerance,
	)
}

func level(value float64, low, mid, high string) string {
	switch {
	case value < 0.35:
		return low
	case value > 0.65:
		return high
	}

	return mid
}
