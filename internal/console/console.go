// Package console is the terminal front end: it prompts the user for a die
// and prints each disclosure as the game publishes it.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"fairdice/internal/game"
)

// ErrNoInput indicates input ended before the user made a choice.
var ErrNoInput = errors.New("no die choice entered")

// Prompt asks for a die index on out and reads the answer from in. It asks
// again on unparsable or out-of-range answers until input ends.
type Prompt struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompt returns a Prompt reading from in and writing to out.
func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{in: bufio.NewScanner(in), out: out}
}

func (p *Prompt) RequestDieChoice(min, max int) (int, error) {
	for {
		fmt.Fprintf(p.out, "Select your die (%d-%d): ", min, max)
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return 0, fmt.Errorf("read die choice: %w", err)
			}
			return 0, ErrNoInput
		}
		v, err := strconv.Atoi(strings.TrimSpace(p.in.Text()))
		if err != nil || v < min || v > max {
			fmt.Fprintf(p.out, "Please enter a number from %d to %d.\n", min, max)
			continue
		}
		return v, nil
	}
}

// Printer writes each protocol step to an io.Writer.
type Printer struct {
	Out io.Writer
}

func (p Printer) FirstMoveCommitted(fm game.FirstMove) {
	fmt.Fprintf(p.Out, "First move HMAC: %s\n", fm.Digest)
	fmt.Fprintf(p.Out, "First mover (0=user, 1=computer): %d (%s)\n", int(fm.Mover), fm.Mover)
}

func (p Printer) DiceAssigned(a game.Assignment) {
	fmt.Fprintf(p.Out, "User selects die %d, computer selects die %d\n", a.User, a.Computer)
}

func (p Printer) RollsCommitted(rc game.RollCommitments) {
	fmt.Fprintf(p.Out, "User roll HMAC: %s\n", rc.User)
	fmt.Fprintf(p.Out, "Computer roll HMAC: %s\n", rc.Computer)
}

func (p Printer) RollsRevealed(r game.Rolls) {
	fmt.Fprintf(p.Out, "User roll: %d (face %d)\n", r.UserFace, r.UserIndex)
	fmt.Fprintf(p.Out, "Computer roll: %d (face %d)\n", r.ComputerFace, r.ComputerIndex)
}

func (p Printer) KeysRevealed(k game.Keys) {
	fmt.Fprintln(p.Out, Verdict(k.Outcome))
	fmt.Fprintln(p.Out, "\nRevealing keys:")
	fmt.Fprintf(p.Out, "First move key: %s\n", k.FirstMove)
	fmt.Fprintf(p.Out, "User roll key: %s\n", k.User)
	fmt.Fprintf(p.Out, "Computer roll key: %s\n", k.Computer)
}

// Verdict is the one-line announcement for an outcome.
func Verdict(o game.Outcome) string {
	switch o {
	case game.UserWins:
		return "User wins!"
	case game.ComputerWins:
		return "Computer wins!"
	case game.Tie:
		return "It's a tie!"
	default:
		return "No result."
	}
}
