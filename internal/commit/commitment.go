package commit

import "io"

// Commitment binds one value under its own fresh key. Create one per
// committed value; keys are never shared between commitments.
type Commitment struct {
	key      Secret
	value    int
	digest   Digest
	revealed bool
}

// New commits to value under a key drawn from entropy.
func New(entropy io.Reader, value int) (*Commitment, error) {
	key, err := NewSecret(entropy)
	if err != nil {
		return nil, err
	}
	return &Commitment{key: key, value: value, digest: Sum(key, value)}, nil
}

// Digest returns the value that may be published before the reveal.
func (c *Commitment) Digest() Digest { return c.digest }

// Value returns the committed value. Only the committing party calls this.
func (c *Commitment) Value() int { return c.value }

// Reveal discloses the key so others can check the digest.
func (c *Commitment) Reveal() Secret {
	c.revealed = true
	return c.key
}

// Revealed reports whether Reveal has been called.
func (c *Commitment) Revealed() bool { return c.revealed }
