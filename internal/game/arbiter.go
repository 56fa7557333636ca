package game

import (
	"errors"
	"fmt"

	"fairdice/internal/dice"
	"fairdice/internal/random"
)

// ErrInvalidSelection indicates a requested die index is missing or out of
// range.
var ErrInvalidSelection = errors.New("invalid die selection")

// Arbiter decides who picks a die first and resolves the assignment.
type Arbiter struct {
	Policy Policy
	Source random.Source
}

// DecideFirstMover flips a fair coin between the two parties.
func (a Arbiter) DecideFirstMover() Party {
	return Party(a.Source.IntN(2))
}

// Assign returns the user's and computer's die indices for a set of
// diceCount dice. requested is the user's pick and is only consulted when
// the user moves first. The two indices always differ.
func (a Arbiter) Assign(firstMover Party, requested *int, diceCount int) (user, computer int, err error) {
	if diceCount < 2 {
		return 0, 0, fmt.Errorf("%w: need at least 2 to assign, got %d", dice.ErrInsufficientDice, diceCount)
	}
	switch firstMover {
	case User:
		if requested == nil {
			return 0, 0, fmt.Errorf("%w: user moves first and made no choice", ErrInvalidSelection)
		}
		user = *requested
		if user < 0 || user >= diceCount {
			return 0, 0, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidSelection, user, diceCount)
		}
		if a.Policy == PolicyRandom {
			computer = a.Source.IntN(diceCount - 1)
			if computer >= user {
				computer++
			}
		} else {
			computer = next(user, diceCount)
		}
		return user, computer, nil
	case Computer:
		if a.Policy == PolicyRandom {
			computer = a.Source.IntN(diceCount)
		}
		return next(computer, diceCount), computer, nil
	default:
		return 0, 0, fmt.Errorf("unknown first mover %d", int(firstMover))
	}
}

func next(index, diceCount int) int {
	return (index + 1) % diceCount
}

// consistent reports whether an assignment could have come from policy.
// Random picks cannot be rechecked, only the deterministic half.
func consistent(policy Policy, firstMover Party, user, computer, diceCount int) bool {
	switch {
	case firstMover == User && policy == PolicyFixed:
		return computer == next(user, diceCount)
	case firstMover == Computer && policy == PolicyFixed:
		return computer == 0 && user == next(0, diceCount)
	case firstMover == Computer:
		return user == next(computer, diceCount)
	default:
		return user != computer
	}
}
