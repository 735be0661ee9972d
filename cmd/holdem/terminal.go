package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"holdem-tournament/pkg/poker/action"
	"holdem-tournament/pkg/poker/texasholdem"
)

// terminalPlayer asks for the human seat's actions on a terminal
type terminalPlayer struct {
	in  *bufio.Reader
	out io.Writer
}

func newTerminalPlayer(in io.Reader, out io.Writer) *terminalPlayer {
	return &terminalPlayer{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (t *terminalPlayer) ChooseAction(ctx context.Context, view *texasholdem.GameState, seat int) (action.Action, int, error) {
	p := view.Players[seat]
	_, _ = fmt.Fprintf(t.out, "\n%s: %s | board: %s | pot: %d | to call: %d | chips: %d\n",
		p.Name, p.HoleCards.Pretty(), view.Hand.Community.Pretty(), view.Hand.Pot, view.ToCall(seat), p.Chips)

	legal := view.LegalActions(seat)
	names := make([]string, len(legal))
	for i, a := range legal {
		names[i] = string(a)
	}

	prompt := strings.Join(names, ", ")
	if minTotal, maxTotal, ok := view.RaiseBounds(seat); ok {
		prompt += fmt.Sprintf(" (raise %d to %d)", minTotal, maxTotal)
	}

	for {
		if err := ctx.Err(); err != nil {
			return "", 0, err
		}

		_, _ = fmt.Fprintf(t.out, "%s> ", prompt)
		line, err := t.in.ReadString('\n')
		if err != nil {
			return "", 0, err
		}

		a, amount, err := parseCommand(line)
		if err != nil {
			_, _ = fmt.Fprintln(t.out, err)
			continue
		}

		return a, amount, nil
	}
}

func (t *terminalPlayer) Rejected(seat int, err error) {
	_, _ = fmt.Fprintln(t.out, err)
}

// parseCommand reads lines like "call" or "raise 800"
func parseCommand(line string) (action.Action, int, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", 0, fmt.Errorf("enter an action")
	}

	a, err := action.FromString(fields[0])
	if err != nil {
		return "", 0, err
	}

	if a != action.Raise {
		return a, 0, nil
	}

	if len(fields) < 2 {
		return "", 0, fmt.Errorf("raise needs a total, i.e., raise 800")
	}

	amount, err := strconv.Atoi(fields[1])
	if err != nil {
		return "", 0, fmt.Errorf("invalid amount: %s", fields[1])
	}

	return a, amount, nil
}
