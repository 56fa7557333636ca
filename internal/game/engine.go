package game

import (
	"errors"
	"fmt"
	"io"

	"fairdice/internal/commit"
	"fairdice/internal/dice"
	"fairdice/internal/random"
)

// ErrWrongState indicates a protocol step was called out of order.
var ErrWrongState = errors.New("game is not in the required state")

// DieChooser asks the user for a die index in [min, max].
type DieChooser interface {
	RequestDieChoice(min, max int) (int, error)
}

// ChooserFunc adapts a function to DieChooser.
type ChooserFunc func(min, max int) (int, error)

func (f ChooserFunc) RequestDieChoice(min, max int) (int, error) { return f(min, max) }

// Choice returns a DieChooser that always picks index.
func Choice(index int) DieChooser {
	return ChooserFunc(func(int, int) (int, error) { return index, nil })
}

// Engine holds the settings shared by every game it starts. The zero value
// plays with PolicyFixed, crypto/rand rolls and crypto/rand keys.
type Engine struct {
	Policy  Policy
	Source  random.Source
	Entropy io.Reader
}

// NewGame validates set and returns a game ready for CommitFirstMove.
func (e *Engine) NewGame(set dice.Set) (*Game, error) {
	if set.Len() < dice.MinDice {
		return nil, fmt.Errorf("%w: need at least %d, got %d", dice.ErrInsufficientDice, dice.MinDice, set.Len())
	}
	policy, err := ParsePolicy(string(e.Policy))
	if err != nil {
		return nil, err
	}
	src := e.Source
	if src == nil {
		src = random.Crypto{}
	}
	return &Game{
		set:     set,
		policy:  policy,
		arbiter: Arbiter{Policy: policy, Source: src},
		src:     src,
		entropy: e.Entropy,
	}, nil
}

// Game runs one commit-reveal round between the user and the computer.
// It is single use and not safe for concurrent use.
type Game struct {
	set     dice.Set
	policy  Policy
	arbiter Arbiter
	src     random.Source
	entropy io.Reader
	state   State

	firstMover  Party
	firstMove   *commit.Commitment
	userDie     int
	computerDie int

	userIndex     int
	computerIndex int
	userRoll      *commit.Commitment
	computerRoll  *commit.Commitment

	outcome Outcome
}

// State returns the current protocol step.
func (g *Game) State() State { return g.state }

func (g *Game) expect(s State) error {
	if g.state != s {
		return fmt.Errorf("%w: in %s, need %s", ErrWrongState, g.state, s)
	}
	return nil
}

func (g *Game) abort(err error) error {
	g.state = StateAborted
	return err
}

// CommitFirstMove flips for the first mover and commits to the result.
func (g *Game) CommitFirstMove() (FirstMove, error) {
	if err := g.expect(StateInit); err != nil {
		return FirstMove{}, err
	}
	mover := g.arbiter.DecideFirstMover()
	c, err := commit.New(g.entropy, int(mover))
	if err != nil {
		return FirstMove{}, g.abort(fmt.Errorf("commit first move: %w", err))
	}
	g.firstMover = mover
	g.firstMove = c
	g.state = StateFirstMoveCommitted
	return FirstMove{Mover: mover, Digest: c.Digest()}, nil
}

// AssignDice resolves which die each party rolls. chooser is asked for the
// user's die only when the user moves first. Any failure aborts the game
// before the rolls are committed.
func (g *Game) AssignDice(chooser DieChooser) (Assignment, error) {
	if err := g.expect(StateFirstMoveCommitted); err != nil {
		return Assignment{}, err
	}
	var requested *int
	if g.firstMover == User {
		if chooser == nil {
			return Assignment{}, g.abort(fmt.Errorf("%w: no chooser for the user", ErrInvalidSelection))
		}
		choice, err := chooser.RequestDieChoice(0, g.set.Len()-1)
		if err != nil {
			return Assignment{}, g.abort(fmt.Errorf("request die choice: %w", err))
		}
		requested = &choice
	}
	user, computer, err := g.arbiter.Assign(g.firstMover, requested, g.set.Len())
	if err != nil {
		return Assignment{}, g.abort(err)
	}
	g.userDie, g.computerDie = user, computer
	g.state = StateDiceAssigned
	return Assignment{FirstMover: g.firstMover, User: user, Computer: computer}, nil
}

// CommitRolls rolls both assigned dice and commits to each face under its
// own key.
func (g *Game) CommitRolls() (RollCommitments, error) {
	if err := g.expect(StateDiceAssigned); err != nil {
		return RollCommitments{}, err
	}
	userDie, _ := g.set.Die(g.userDie)
	computerDie, _ := g.set.Die(g.computerDie)

	userIndex, userFace := userDie.Roll(g.src)
	computerIndex, computerFace := computerDie.Roll(g.src)

	userRoll, err := commit.New(g.entropy, userFace)
	if err != nil {
		return RollCommitments{}, g.abort(fmt.Errorf("commit user roll: %w", err))
	}
	computerRoll, err := commit.New(g.entropy, computerFace)
	if err != nil {
		return RollCommitments{}, g.abort(fmt.Errorf("commit computer roll: %w", err))
	}
	g.userIndex, g.computerIndex = userIndex, computerIndex
	g.userRoll, g.computerRoll = userRoll, computerRoll
	g.state = StateRollsCommitted
	return RollCommitments{User: userRoll.Digest(), Computer: computerRoll.Digest()}, nil
}

// RevealRolls discloses both faces in plaintext.
func (g *Game) RevealRolls() (Rolls, error) {
	if err := g.expect(StateRollsCommitted); err != nil {
		return Rolls{}, err
	}
	g.state = StateRevealed
	return Rolls{
		UserIndex:     g.userIndex,
		UserFace:      g.userRoll.Value(),
		ComputerIndex: g.computerIndex,
		ComputerFace:  g.computerRoll.Value(),
	}, nil
}

// RevealKeys discloses every key and settles the winner. The game is
// complete afterwards.
func (g *Game) RevealKeys() (Keys, error) {
	if err := g.expect(StateRevealed); err != nil {
		return Keys{}, err
	}
	g.outcome = DecideWinner(g.userRoll.Value(), g.computerRoll.Value())
	g.state = StateComplete
	return Keys{
		FirstMove: g.firstMove.Reveal(),
		User:      g.userRoll.Reveal(),
		Computer:  g.computerRoll.Reveal(),
		Outcome:   g.outcome,
	}, nil
}

// Transcript returns the published record of a completed game.
func (g *Game) Transcript() (Transcript, error) {
	if err := g.expect(StateComplete); err != nil {
		return Transcript{}, err
	}
	return Transcript{
		Policy:          g.policy,
		Dice:            g.set.Faces(),
		FirstMover:      g.firstMover,
		FirstMoveDigest: g.firstMove.Digest(),
		FirstMoveKey:    g.firstMove.Reveal(),
		User: Roll{
			Die:       g.userDie,
			FaceIndex: g.userIndex,
			Face:      g.userRoll.Value(),
			Digest:    g.userRoll.Digest(),
			Key:       g.userRoll.Reveal(),
		},
		Computer: Roll{
			Die:       g.computerDie,
			FaceIndex: g.computerIndex,
			Face:      g.computerRoll.Value(),
			Digest:    g.computerRoll.Digest(),
			Key:       g.computerRoll.Reveal(),
		},
		Outcome: g.outcome,
	}, nil
}
