package ecelgamal

import (
	"fmt"
	"math/big"
)

// DerivePublicKey returns the public point Q = d*G for the private scalar d.
func (c *Curve) DerivePublicKey(g Point, d *big.Int) (Point, error) {
	if err := c.checkPoint(g); err != nil {
		return nil, fmt.Errorf("invalid generator: %w", err)
	}
	return c.ScalarMult(d, g)
}

// Encrypt encrypts the message point m for the public point q with the ephemeral
// scalar k: C1 = k*G, C2 = m + k*q.
//
// The generator and the public point are validated, the message is not; callers
// should check it with IsOnCurve or build it with NewPoint. A k with k*G = O
// (zero or a multiple of the generator order) leaves the message unmasked and
// is rejected with ErrInvalidScalar. k must never be reused with the same
// public key, see Ephemeral for a guarded variant.
func (c *Curve) Encrypt(m Point, k *big.Int, g, q Point) (*Ciphertext, error) {
	if err := c.checkPoint(g); err != nil {
		return nil, fmt.Errorf("invalid generator: %w", err)
	}
	if err := c.checkPoint(q); err != nil {
		return nil, fmt.Errorf("invalid public key: %w", err)
	}
	c1, err := c.ScalarMult(k, g)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt: %w", err)
	}
	if c1.IsIdentity() {
		return nil, fmt.Errorf("%w: %v*G is the point at infinity", ErrInvalidScalar, k)
	}
	mask, err := c.ScalarMult(k, q)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt: %w", err)
	}
	c2, err := c.Add(m, mask)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt: %w", err)
	}
	return &Ciphertext{curve: c, C1: c1, C2: c2}, nil
}

// Decrypt recovers the message point M = C2 - d*C1.
func (c *Curve) Decrypt(c1, c2 Point, d *big.Int) (Point, error) {
	shared, err := c.ScalarMult(d, c1)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt: %w", err)
	}
	m, err := c.Sub(c2, shared)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt: %w", err)
	}
	return m, nil
}
