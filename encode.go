package ecelgamal

import (
	"encoding/binary"
	"fmt"
	"math/big"
)

const (
	// DefaultEmbedFactor is the Koblitz factor used by EmbedMessage callers which
	// don't need a specific one. Each candidate x has about a 1/2 chance of being
	// on the curve, so 30 candidates fail with probability around 2^-30.
	DefaultEmbedFactor = 30

	hashToPointTries = 256
)

// HashToPoint maps data to a curve point: x = SHA-256(data || counter) mod p, where
// the counter is incremented until x^3 + a*x + b is a square; y is the smaller root.
// The mapping is one-way, use EmbedMessage for messages which must be recovered.
func (c *Curve) HashToPoint(data []byte) (Point, error) {
	buf := make([]byte, len(data)+4)
	copy(buf, data)
	for counter := uint32(0); counter < hashToPointTries; counter++ {
		binary.BigEndian.PutUint32(buf[len(data):], counter)
		x := Mod(new(big.Int).SetBytes(Hash(buf)), c.p)
		y, err := modSqrt(c.rhs(x), c.p)
		if err != nil {
			continue
		}
		return Affine{x: x, y: y}, nil
	}
	return nil, fmt.Errorf("failed to hash to a point after %d attempts", hashToPointTries)
}

// EmbedMessage encodes msg, read as a big-endian integer m, into a point whose x
// coordinate is m*k + j for the first j in [0, k) that lies on the curve (Koblitz
// encoding). Leading zero bytes of msg are not preserved.
func (c *Curve) EmbedMessage(msg []byte, k int) (Point, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: embed factor must be positive", ErrInvalidScalar)
	}
	kk := big.NewInt(int64(k))
	base := new(big.Int).Mul(new(big.Int).SetBytes(msg), kk)
	if new(big.Int).Add(base, kk).Cmp(c.p) > 0 {
		return nil, ErrMessageTooLong
	}
	for j := int64(0); j < int64(k); j++ {
		x := new(big.Int).Add(base, big.NewInt(j))
		y, err := modSqrt(c.rhs(x), c.p)
		if err != nil {
			continue
		}
		return Affine{x: x, y: y}, nil
	}
	return nil, fmt.Errorf("no point found for message, try a larger embed factor: %w", ErrNoSquareRoot)
}

// ExtractMessage reverses EmbedMessage with the same factor k.
func (c *Curve) ExtractMessage(p Point, k int) ([]byte, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: embed factor must be positive", ErrInvalidScalar)
	}
	ap, ok := asAffine(p)
	if !ok {
		return nil, fmt.Errorf("cannot extract a message from the point at infinity")
	}
	m := new(big.Int).Quo(ap.xv(), big.NewInt(int64(k)))
	return m.Bytes(), nil
}

// MaxEmbedLength returns the longest message, in bytes, which EmbedMessage always
// accepts with factor k.
func (c *Curve) MaxEmbedLength(k int) int {
	if k < 1 {
		return 0
	}
	limit := new(big.Int).Quo(c.p, big.NewInt(int64(k)))
	return (limit.BitLen() - 1) / 8
}
