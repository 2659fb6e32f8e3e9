package ecelgamal

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"sync/atomic"
)

// Ephemeral holds the per-encryption scalar k. It can be used for one encryption
// only: the first PublicKey.Encrypt call consumes it and later calls fail with
// ErrEphemeralReused.
type Ephemeral struct {
	k    *big.Int
	used atomic.Bool
}

// NewEphemeral wraps a caller-chosen scalar. Zero is rejected here; multiples of
// the generator order are rejected by the encryption, which knows the curve.
func NewEphemeral(k *big.Int) (*Ephemeral, error) {
	if k == nil || k.Sign() == 0 {
		return nil, ErrInvalidScalar
	}
	return &Ephemeral{k: new(big.Int).Set(k)}, nil
}

// GenerateEphemeral draws a scalar in [1, n) (or [1, p) when the generator order
// is unknown) from random. If random is nil, crypto/rand is used.
func GenerateEphemeral(random io.Reader, curve *Curve) (*Ephemeral, error) {
	k, err := randomScalar(random, curve)
	if err != nil {
		return nil, err
	}
	return &Ephemeral{k: k}, nil
}

// Used reports whether the scalar was already consumed by an encryption.
func (e *Ephemeral) Used() bool {
	return e.used.Load()
}

func (e *Ephemeral) take() (*big.Int, error) {
	if e == nil || e.k == nil {
		return nil, ErrInvalidScalar
	}
	if !e.used.CompareAndSwap(false, true) {
		return nil, ErrEphemeralReused
	}
	return e.k, nil
}

// scalarBound returns the generator order, or the field modulus when the order
// is unknown.
func scalarBound(curve *Curve) *big.Int {
	if curve.n != nil {
		return curve.n
	}
	return curve.p
}

// randomScalar returns a uniformly random scalar in [1, bound).
func randomScalar(random io.Reader, curve *Curve) (*big.Int, error) {
	if random == nil {
		random = rand.Reader
	}
	bound := scalarBound(curve)
	if bound.Cmp(two) < 0 {
		return nil, ErrInvalidScalar
	}
	k, err := rand.Int(random, new(big.Int).Sub(bound, one))
	if err != nil {
		return nil, fmt.Errorf("failed to generate scalar: %v", err)
	}
	return k.Add(k, one), nil
}
