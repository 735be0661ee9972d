package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"holdem-tournament/internal/util"
	"holdem-tournament/pkg/poker/ai"
	"holdem-tournament/pkg/poker/strategy"
	"holdem-tournament/pkg/poker/texasholdem"
	"holdem-tournament/pkg/room"
)

const defaultConfigFile = "config.yaml"

// Seat is a seat at the table
// Style is a named playing style, Profile overrides it with explicit traits
type Seat struct {
	Name    string            `yaml:"name"`
	Human   bool              `yaml:"human,omitempty"`
	Style   string            `yaml:"style,omitempty"`
	Profile *strategy.Profile `yaml:"profile,omitempty"`
}

// Config provides configuration for the tournament
type Config struct {
	loaded bool
	Log    struct {
		Level  string `yaml:"level" envconfig:"level"`
		Format string `yaml:"format" envconfig:"format"`
	} `yaml:"log"`
	Tournament struct {
		StartingStack   int   `yaml:"startingStack" envconfig:"starting_stack"`
		SmallBlind      int   `yaml:"smallBlind" envconfig:"small_blind"`
		BigBlind        int   `yaml:"bigBlind" envconfig:"big_blind"`
		MaxRoundActions int   `yaml:"maxRoundActions" envconfig:"max_round_actions"`
		MaxHands        int   `yaml:"maxHands" envconfig:"max_hands"`
		Seed            int64 `yaml:"seed" envconfig:"seed"`
		// Seats cannot be set from the environment
		Seats []Seat `yaml:"seats" ignored:"true"`
	} `yaml:"tournament"`
	AI struct {
		DecisionTimeoutMillis int `yaml:"decisionTimeoutMillis" envconfig:"decision_timeout_millis"`
		TurnTimeoutMillis     int `yaml:"turnTimeoutMillis" envconfig:"turn_timeout_millis"`
		Retries               int `yaml:"retries" envconfig:"retries"`
		MemorySize            int `yaml:"memorySize" envconfig:"memory_size"`
	} `yaml:"ai"`
}

var config Config

// DefaultConfig returns the configuration used when nothing else is set
func DefaultConfig() Config {
	var cfg Config
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"

	opts := texasholdem.DefaultOptions()
	cfg.Tournament.StartingStack = opts.StartingStack
	cfg.Tournament.SmallBlind = opts.SmallBlind
	cfg.Tournament.BigBlind = opts.BigBlind
	cfg.Tournament.MaxRoundActions = opts.MaxRoundActions
	cfg.Tournament.Seats = []Seat{
		{Name: "You", Human: true},
		{Name: "Alice", Style: "tight-aggressive"},
		{Name: "Bob", Style: "loose-passive"},
		{Name: "Carol", Style: "balanced"},
		{Name: "Dave", Style: "maniac"},
		{Name: "Erin", Style: "rock"},
	}

	aiOpts := ai.DefaultOptions()
	cfg.AI.DecisionTimeoutMillis = int(aiOpts.Timeout / time.Millisecond)
	cfg.AI.TurnTimeoutMillis = int(room.DefaultOptions().TurnTimeout / time.Millisecond)
	cfg.AI.Retries = aiOpts.Retries
	cfg.AI.MemorySize = aiOpts.MemorySize

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// The file named by HOLDEM_CONFIG_FILE is read over the defaults, then HOLDEM_* environment
// variables are applied. The default config.yaml does not need to exist
func Load() error {
	configFile := util.Getenv("HOLDEM_CONFIG_FILE", defaultConfigFile)

	cfg := DefaultConfig()
	file, err := os.Open(configFile)
	switch {
	case err == nil:
		defer file.Close()

		// a file with seats replaces the default table
		cfg.Tournament.Seats = nil
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return fmt.Errorf("could not decode %s: %w", configFile, err)
		}
	case errors.Is(err, os.ErrNotExist) && configFile == defaultConfigFile:
	default:
		return err
	}

	if len(cfg.Tournament.Seats) == 0 {
		cfg.Tournament.Seats = DefaultConfig().Tournament.Seats
	}

	if err := envconfig.Process("holdem", &cfg); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

// Validate ensures the configuration can run a tournament
func (c Config) Validate() error {
	if _, err := c.SeatConfigs(); err != nil {
		return err
	}

	if c.AI.Retries < 0 || c.AI.Retries > 1 {
		return fmt.Errorf("ai retries must be 0 or 1, got %d", c.AI.Retries)
	}

	opts := c.GameOptions()
	if opts.SmallBlind <= 0 || opts.BigBlind < opts.SmallBlind || opts.StartingStack <= 0 || opts.MaxRoundActions <= 0 {
		return fmt.Errorf("invalid blinds or stacks: %+v", opts)
	}

	return nil
}

// GameOptions returns the options for the game
func (c Config) GameOptions() texasholdem.Options {
	return texasholdem.Options{
		SmallBlind:      c.Tournament.SmallBlind,
		BigBlind:        c.Tournament.BigBlind,
		StartingStack:   c.Tournament.StartingStack,
		MaxRoundActions: c.Tournament.MaxRoundActions,
	}
}

// EngineOptions returns the options for the decision engine
func (c Config) EngineOptions() ai.Options {
	return ai.Options{
		Timeout:    time.Duration(c.AI.DecisionTimeoutMillis) * time.Millisecond,
		Retries:    c.AI.Retries,
		MemorySize: c.AI.MemorySize,
	}
}

// DealerOptions returns the options for the dealer
func (c Config) DealerOptions() room.Options {
	opts := room.DefaultOptions()
	opts.TurnTimeout = time.Duration(c.AI.TurnTimeoutMillis) * time.Millisecond
	return opts
}

// SeatConfigs converts the configured seats, resolving playing styles into profiles
func (c Config) SeatConfigs() ([]texasholdem.SeatConfig, error) {
	seats := c.Tournament.Seats
	if len(seats) < 2 {
		return nil, fmt.Errorf("at least two seats are required, got %d", len(seats))
	}

	if len(seats) > texasholdem.MaxSeats {
		return nil, fmt.Errorf("at most %d seats are allowed, got %d", texasholdem.MaxSeats, len(seats))
	}

	configs := make([]texasholdem.SeatConfig, len(seats))
	for i, seat := range seats {
		profile := strategy.Balanced
		switch {
		case seat.Profile != nil:
			if err := seat.Profile.Validate(); err != nil {
				return nil, fmt.Errorf("seat %d: %w", i+1, err)
			}

			profile = *seat.Profile
		case seat.Style != "":
			var err error
			if profile, err = strategy.FromLegacy(seat.Style); err != nil {
				return nil, fmt.Errorf("seat %d: %w", i+1, err)
			}
		}

		name := seat.Name
		if name == "" {
			name = util.GetRandomName()
		}

		configs[i] = texasholdem.SeatConfig{
			ID:      fmt.Sprintf("seat-%d", i+1),
			Name:    name,
			IsHuman: seat.Human,
			Profile: profile,
		}
	}

	return configs, nil
}
