package dice

import "fmt"

// Set is the shared collection of dice both parties pick from. Parties
// refer to dice by index.
type Set struct {
	dice []Die
}

// NewSet returns a Set of at least MinDice dice.
func NewSet(dice []Die) (Set, error) {
	if len(dice) < MinDice {
		return Set{}, fmt.Errorf("%w: need at least %d, got %d", ErrInsufficientDice, MinDice, len(dice))
	}
	out := make([]Die, len(dice))
	copy(out, dice)
	return Set{dice: out}, nil
}

// FromFaces validates each row of faces as a die and builds a Set.
func FromFaces(rows [][]int) (Set, error) {
	dice := make([]Die, 0, len(rows))
	for i, row := range rows {
		d, err := New(row)
		if err != nil {
			return Set{}, fmt.Errorf("die %d: %w", i, err)
		}
		dice = append(dice, d)
	}
	return NewSet(dice)
}

// ParseSet parses one comma-separated die per argument.
func ParseSet(args []string) (Set, error) {
	dice := make([]Die, 0, len(args))
	for i, a := range args {
		d, err := ParseDie(a)
		if err != nil {
			return Set{}, fmt.Errorf("die %d: %w", i, err)
		}
		dice = append(dice, d)
	}
	return NewSet(dice)
}

// Len returns the number of dice.
func (s Set) Len() int { return len(s.dice) }

// Die returns the die at index.
func (s Set) Die(index int) (Die, bool) {
	if index < 0 || index >= len(s.dice) {
		return Die{}, false
	}
	return s.dice[index], true
}

// Faces returns every die's faces, one row per die.
func (s Set) Faces() [][]int {
	out := make([][]int, len(s.dice))
	for i, d := range s.dice {
		out[i] = d.Faces()
	}
	return out
}
