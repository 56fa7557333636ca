// Package commit implements the keyed commitments that make a game
// verifiable.
//
// A party commits to a value by publishing HMAC-SHA3-256(key, value) while
// keeping the key secret. Revealing the key later lets anyone recompute the
// digest and confirm the value was fixed before it was disclosed.
package commit

import (
	"crypto/hmac"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/crypto/sha3"
)

// KeySize is the length in bytes of every commitment key.
const KeySize = 32

// ErrInvalidInput indicates a committed value is not a finite integer.
var ErrInvalidInput = errors.New("value must be an integer")

// ErrMalformed indicates hex-encoded key or digest text could not be decoded.
var ErrMalformed = errors.New("malformed commitment encoding")

// Secret is a commitment key. It stays private until revealed.
type Secret []byte

// Digest is the published MAC over a committed value.
type Digest []byte

// NewSecret reads KeySize bytes from entropy. A nil reader means crypto/rand.
func NewSecret(entropy io.Reader) (Secret, error) {
	if entropy == nil {
		entropy = rand.Reader
	}
	key := make(Secret, KeySize)
	if _, err := io.ReadFull(entropy, key); err != nil {
		return nil, fmt.Errorf("generate commitment key: %w", err)
	}
	return key, nil
}

// Sum returns the digest of value under key. It is deterministic.
func Sum(key Secret, value int) Digest {
	mac := hmac.New(sha3.New256, key)
	_, _ = mac.Write([]byte(strconv.Itoa(value)))
	return mac.Sum(nil)
}

// Verify reports whether digest commits to value under key.
func Verify(digest Digest, key Secret, value int) bool {
	if len(key) == 0 || len(digest) == 0 {
		return false
	}
	return hmac.Equal(digest, Sum(key, value))
}

// ParseValue parses the decimal text of a committed value.
func ParseValue(text string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInput, text)
	}
	return v, nil
}

func (s Secret) String() string { return hex.EncodeToString(s) }

func (s Secret) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Secret) UnmarshalText(text []byte) error {
	v, err := ParseSecret(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseSecret decodes a hex-encoded key.
func ParseSecret(text string) (Secret, error) {
	b, err := hex.DecodeString(strings.TrimSpace(text))
	if err != nil {
		return nil, fmt.Errorf("%w: key: %v", ErrMalformed, err)
	}
	return b, nil
}

func (d Digest) String() string { return hex.EncodeToString(d) }

func (d Digest) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d *Digest) UnmarshalText(text []byte) error {
	v, err := ParseDigest(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Equal compares digests in constant time.
func (d Digest) Equal(other Digest) bool {
	return hmac.Equal(d, other)
}

// ParseDigest decodes a hex-encoded digest.
func ParseDigest(text string) (Digest, error) {
	b, err := hex.DecodeString(strings.TrimSpace(text))
	if err != nil {
		return nil, fmt.Errorf("%w: digest: %v", ErrMalformed, err)
	}
	return b, nil
}
