// Package random provides the randomness behind coin flips and die rolls.
//
// Production code draws from crypto/rand. Tests substitute a Sequence so a
// game can be replayed with known first movers, picks and faces.
package random

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// Source returns integers uniformly distributed in [0, n).
type Source interface {
	IntN(n int) int
}

// Crypto is a Source backed by crypto/rand.
type Crypto struct{}

// IntN returns a uniform integer in [0, n). It panics if n <= 0.
func (Crypto) IntN(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("random: invalid bound %d", n))
	}
	un := uint64(n)
	// 2^64 mod n; values below it would skew the low residues.
	threshold := -un % un
	for {
		v := readUint64()
		if v >= threshold {
			return int(v % un)
		}
	}
}

// Coin flips a fair coin.
func Coin(src Source) bool {
	return src.IntN(2) == 1
}

func readUint64() uint64 {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return binary.LittleEndian.Uint64(b[:])
}

// Sequence replays a fixed list of draws. Each call to IntN consumes the
// next value; it panics when the list runs out or a value is out of range.
type Sequence struct {
	values []int
	pos    int
}

// NewSequence returns a Sequence that yields values in order.
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

func (s *Sequence) IntN(n int) int {
	if s.pos >= len(s.values) {
		panic("random: sequence exhausted")
	}
	v := s.values[s.pos]
	if v < 0 || v >= n {
		panic(fmt.Sprintf("random: sequence value %d out of range [0,%d)", v, n))
	}
	s.pos++
	return v
}

// Remaining reports how many draws are left.
func (s *Sequence) Remaining() int {
	return len(s.values) - s.pos
}
