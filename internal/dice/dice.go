// Package dice models the six-faced dice the two parties roll.
package dice

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fairdice/internal/random"
)

// Faces is the number of faces on every die.
const Faces = 6

// MinDice is the smallest set a game may be played with.
const MinDice = 3

// ErrInvalidDieSpec indicates a die does not have exactly six non-negative
// integer faces.
var ErrInvalidDieSpec = errors.New("die must have exactly 6 non-negative integer faces")

// ErrInsufficientDice indicates too few dice were supplied.
var ErrInsufficientDice = errors.New("not enough dice")

// ErrInvalidFaceIndex indicates a face index outside 0..5.
var ErrInvalidFaceIndex = errors.New("face index must be between 0 and 5")

// Die is an immutable six-faced die. The zero value is not valid; build
// one with New or ParseDie.
type Die struct {
	faces [Faces]int
}

// New validates faces and returns a Die.
func New(faces []int) (Die, error) {
	if len(faces) != Faces {
		return Die{}, fmt.Errorf("%w: got %d faces", ErrInvalidDieSpec, len(faces))
	}
	var d Die
	for i, f := range faces {
		if f < 0 {
			return Die{}, fmt.Errorf("%w: face %d is %d", ErrInvalidDieSpec, i, f)
		}
		d.faces[i] = f
	}
	return d, nil
}

// ParseDie parses a comma-separated list such as "2,2,4,4,9,9".
func ParseDie(text string) (Die, error) {
	parts := strings.Split(text, ",")
	faces := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Die{}, fmt.Errorf("%w: %q is not an integer", ErrInvalidDieSpec, p)
		}
		faces = append(faces, v)
	}
	return New(faces)
}

// Faces returns a copy of the die's faces in order.
func (d Die) Faces() []int {
	out := make([]int, Faces)
	copy(out, d.faces[:])
	return out
}

// FaceAt returns the face at index.
func (d Die) FaceAt(index int) (int, error) {
	if index < 0 || index >= Faces {
		return 0, fmt.Errorf("%w: %d", ErrInvalidFaceIndex, index)
	}
	return d.faces[index], nil
}

// Roll picks one face uniformly and returns its index and value.
func (d Die) Roll(src random.Source) (index, face int) {
	index = src.IntN(Faces)
	return index, d.faces[index]
}

func (d Die) String() string {
	parts := make([]string, Faces)
	for i, f := range d.faces {
		parts[i] = strconv.Itoa(f)
	}
	return strings.Join(parts, ",")
}
