package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"holdem-tournament/internal/config"
	"holdem-tournament/internal/rng"
	"holdem-tournament/pkg/poker/ai"
	"holdem-tournament/pkg/poker/texasholdem"
	"holdem-tournament/pkg/room"
)

var autopilot = flag.Bool("autopilot", false, "let the decision engine play the human seat")

func main() {
	flag.Parse()

	// a missing .env is fine
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).Fatal("could not load .env")
	}

	setupLogger()
	cfg := config.Instance()

	seats, err := cfg.SeatConfigs()
	if err != nil {
		logrus.WithError(err).Fatal("invalid seats")
	}

	r := rng.New(cfg.Tournament.Seed)
	game, err := texasholdem.InitializeGame(logrus.StandardLogger(), cfg.GameOptions(), seats, r)
	if err != nil {
		logrus.WithError(err).Fatal("could not start the tournament")
	}

	engine := ai.NewEngine(logrus.StandardLogger(), nil, r, cfg.EngineOptions())
	dealer := room.NewDealer(logrus.StandardLogger(), game, engine, cfg.DealerOptions())

	var human room.HumanPlayer = room.AutoPilot{Engine: engine}
	if !*autopilot && term.IsTerminal(int(os.Stdin.Fd())) {
		human = newTerminalPlayer(os.Stdin, os.Stdout)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	final, err := room.NewPitBoss(logrus.StandardLogger(), dealer, human, cfg.Tournament.MaxHands, printEvent).Run(ctx)
	if err != nil {
		logrus.WithError(err).Error("the tournament stopped")
	}

	fmt.Println()
	for _, p := range final.Players {
		fmt.Printf("%-12s %d\n", p.Name, p.Chips)
	}

	endShift(logrus.StandardLogger(), dealer)
	if err != nil {
		os.Exit(1)
	}
}

func endShift(logger logrus.FieldLogger, dealer *room.Dealer) {
	if err := dealer.EndShift(); err != nil {
		logger.WithError(err).Warn("could not end the dealer's shift")
	}
}

func printEvent(g *texasholdem.GameState, e texasholdem.Event) {
	if msg := room.Describe(g, e); msg != "" {
		fmt.Println(msg)
	}
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(config.Instance().Log.Format) == "json" || strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
