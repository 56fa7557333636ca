package game

import (
	"errors"
	"fmt"

	"fairdice/internal/commit"
	"fairdice/internal/dice"
)

// ErrVerification indicates a transcript does not check out.
var ErrVerification = errors.New("transcript verification failed")

// VerifyTranscript recomputes every digest from the revealed keys and
// checks the published dice, faces and outcome against each other. It
// returns nil only when every check passes; otherwise the error wraps
// ErrVerification and lists each failure.
func VerifyTranscript(t Transcript) error {
	set, err := dice.FromFaces(t.Dice)
	if err != nil {
		return fmt.Errorf("%w: dice: %w", ErrVerification, err)
	}
	policy, err := ParsePolicy(string(t.Policy))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrVerification, err)
	}

	var problems []error
	fail := func(format string, args ...any) {
		problems = append(problems, fmt.Errorf(format, args...))
	}

	if t.FirstMover != User && t.FirstMover != Computer {
		fail("first mover %d is not a party", int(t.FirstMover))
	}
	if !commit.Verify(t.FirstMoveDigest, t.FirstMoveKey, int(t.FirstMover)) {
		fail("first move digest does not match %s", t.FirstMover)
	}

	userDie, userOK := set.Die(t.User.Die)
	computerDie, computerOK := set.Die(t.Computer.Die)
	if !userOK {
		fail("user die %d out of range", t.User.Die)
	}
	if !computerOK {
		fail("computer die %d out of range", t.Computer.Die)
	}
	if t.User.Die == t.Computer.Die {
		fail("both parties rolled die %d", t.User.Die)
	} else if userOK && computerOK && !consistent(policy, t.FirstMover, t.User.Die, t.Computer.Die, set.Len()) {
		fail("assignment user=%d computer=%d does not follow the %s policy", t.User.Die, t.Computer.Die, policy)
	}

	if userOK {
		checkRoll(userDie, t.User, "user", fail)
	}
	if computerOK {
		checkRoll(computerDie, t.Computer, "computer", fail)
	}

	if want := DecideWinner(t.User.Face, t.Computer.Face); t.Outcome != want {
		fail("outcome %s, faces give %s", t.Outcome, want)
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %w", ErrVerification, errors.Join(problems...))
	}
	return nil
}

func checkRoll(d dice.Die, r Roll, who string, fail func(string, ...any)) {
	face, err := d.FaceAt(r.FaceIndex)
	if err != nil {
		fail("%s roll: %v", who, err)
	} else if face != r.Face {
		fail("%s face %d is not at index %d of die %d", who, r.Face, r.FaceIndex, r.Die)
	}
	if !commit.Verify(r.Digest, r.Key, r.Face) {
		fail("%s roll digest does not match face %d", who, r.Face)
	}
}
