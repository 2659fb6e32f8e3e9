package ecelgamal

import (
	"fmt"
	"math/big"
)

// ScalarMult returns k*p using the double-and-add method, scanning the bits of |k|
// from the least significant one. Negative k yields -(|k|*p).
func (c *Curve) ScalarMult(k *big.Int, p Point) (Point, error) {
	if k == nil {
		return nil, ErrInvalidScalar
	}
	if isIdentity(p) || k.Sign() == 0 {
		return Infinity, nil
	}
	kAbs := new(big.Int).Abs(k)
	n := kAbs.BitLen()

	var err error
	r := Infinity
	q := p
	for i := 0; i < n; i++ {
		if kAbs.Bit(i) == 1 {
			if r, err = c.Add(r, q); err != nil {
				return nil, fmt.Errorf("scalar multiplication failed: %w", err)
			}
		}
		if i == n-1 {
			break
		}
		if q, err = c.Double(q); err != nil {
			return nil, fmt.Errorf("scalar multiplication failed: %w", err)
		}
	}
	if k.Sign() < 0 {
		r = c.Negate(r)
	}
	return r, nil
}

// ScalarBaseMult returns k*G for the curve generator G.
func (c *Curve) ScalarBaseMult(k *big.Int) (Point, error) {
	g, err := c.Generator()
	if err != nil {
		return nil, err
	}
	return c.ScalarMult(k, g)
}

// PointOrder returns the smallest n >= 1 such that n*p is the Identity. It counts
// by repeated addition, so it is only usable on small curves; the search stops at
// the Hasse bound p + 1 + 2*sqrt(p). Fields wider than 20 bits return
// ErrUnsupportedCurve.
func (c *Curve) PointOrder(p Point) (*big.Int, error) {
	if c.p.BitLen() > smallFieldBits {
		return nil, fmt.Errorf("%w: point order is only computed for fields of up to %d bits", ErrUnsupportedCurve, smallFieldBits)
	}
	if err := c.checkPoint(p); err != nil {
		return nil, err
	}
	bound := new(big.Int).Sqrt(c.p)
	bound.Mul(bound, two).Add(bound, c.p).Add(bound, two)

	n := big.NewInt(1)
	acc := identityOr(p)
	for !acc.IsIdentity() {
		if n.Cmp(bound) > 0 {
			return nil, fmt.Errorf("order of %v exceeds %v", p, bound)
		}
		var err error
		if acc, err = c.Add(acc, p); err != nil {
			return nil, err
		}
		n.Add(n, one)
	}
	return n, nil
}
