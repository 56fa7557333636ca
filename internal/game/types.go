package game

import (
	"errors"
	"fmt"
	"strings"

	"fairdice/internal/commit"
)

// Party identifies one side of the game. The numeric value is what the
// first-move commitment binds: 0 for the user, 1 for the computer.
type Party int

const (
	User Party = iota
	Computer
)

func (p Party) String() string {
	switch p {
	case User:
		return "user"
	case Computer:
		return "computer"
	default:
		return fmt.Sprintf("party(%d)", int(p))
	}
}

func (p Party) MarshalText() ([]byte, error) {
	if p != User && p != Computer {
		return nil, fmt.Errorf("unknown party %d", int(p))
	}
	return []byte(p.String()), nil
}

func (p *Party) UnmarshalText(text []byte) error {
	switch string(text) {
	case "user":
		*p = User
	case "computer":
		*p = Computer
	default:
		return fmt.Errorf("unknown party %q", text)
	}
	return nil
}

// Outcome is the result of comparing the two rolls.
type Outcome int

const (
	OutcomeUnspecified Outcome = iota
	UserWins
	ComputerWins
	Tie
)

var outcomeNames = map[Outcome]string{
	OutcomeUnspecified: "unspecified",
	UserWins:           "user_wins",
	ComputerWins:       "computer_wins",
	Tie:                "tie",
}

func (o Outcome) String() string {
	if s, ok := outcomeNames[o]; ok {
		return s
	}
	return "unknown"
}

func (o Outcome) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

func (o *Outcome) UnmarshalText(text []byte) error {
	for k, v := range outcomeNames {
		if v == string(text) {
			*o = k
			return nil
		}
	}
	return fmt.Errorf("unknown outcome %q", text)
}

// DecideWinner compares the rolled faces. Higher wins; equal faces tie.
func DecideWinner(userRoll, computerRoll int) Outcome {
	switch {
	case userRoll > computerRoll:
		return UserWins
	case userRoll < computerRoll:
		return ComputerWins
	default:
		return Tie
	}
}

// State is a step of the commit-reveal protocol.
type State int

const (
	StateInit State = iota
	StateFirstMoveCommitted
	StateDiceAssigned
	StateRollsCommitted
	StateRevealed
	StateComplete
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateFirstMoveCommitted:
		return "first_move_committed"
	case StateDiceAssigned:
		return "dice_assigned"
	case StateRollsCommitted:
		return "rolls_committed"
	case StateRevealed:
		return "revealed"
	case StateComplete:
		return "complete"
	case StateAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Policy selects how the second die is assigned.
type Policy string

const (
	// PolicyFixed gives the second party the next die after the first
	// party's. When the computer moves first it always takes die 0.
	PolicyFixed Policy = "fixed"
	// PolicyRandom has the computer pick its die uniformly at random.
	PolicyRandom Policy = "random"
)

// ErrUnknownPolicy indicates an unsupported assignment policy name.
var ErrUnknownPolicy = errors.New("unknown assignment policy")

// ParsePolicy accepts "fixed" or "random". Empty text means PolicyFixed.
func ParsePolicy(text string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(text))); p {
	case "":
		return PolicyFixed, nil
	case PolicyFixed, PolicyRandom:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, text)
	}
}

// FirstMove is disclosed when the first mover is committed. The key stays
// private until the game completes.
type FirstMove struct {
	Mover  Party
	Digest commit.Digest
}

// Assignment is the plaintext die choice for each party.
type Assignment struct {
	FirstMover Party
	User       int
	Computer   int
}

// RollCommitments carries the digests published before the rolls are shown.
type RollCommitments struct {
	User     commit.Digest
	Computer commit.Digest
}

// Rolls discloses each party's face and the index it sits at on the die.
type Rolls struct {
	UserIndex     int
	UserFace      int
	ComputerIndex int
	ComputerFace  int
}

// Keys reveals every commitment key along with the outcome.
type Keys struct {
	FirstMove commit.Secret
	User      commit.Secret
	Computer  commit.Secret
	Outcome   Outcome
}

// Roll is one party's published roll in a Transcript.
type Roll struct {
	Die       int           `json:"die" yaml:"die"`
	FaceIndex int           `json:"face_index" yaml:"face_index"`
	Face      int           `json:"face" yaml:"face"`
	Digest    commit.Digest `json:"digest" yaml:"digest"`
	Key       commit.Secret `json:"key" yaml:"key"`
}

// Transcript is everything a verifier needs to check a finished game.
type Transcript struct {
	Policy          Policy        `json:"policy" yaml:"policy"`
	Dice            [][]int       `json:"dice" yaml:"dice"`
	FirstMover      Party         `json:"first_mover" yaml:"first_mover"`
	FirstMoveDigest commit.Digest `json:"first_move_digest" yaml:"first_move_digest"`
	FirstMoveKey    commit.Secret `json:"first_move_key" yaml:"first_move_key"`
	User            Roll          `json:"user" yaml:"user"`
	Computer        Roll          `json:"computer" yaml:"computer"`
	Outcome         Outcome       `json:"outcome" yaml:"outcome"`
}
