package ecelgamal

import (
	"fmt"
	"math/big"
)

// Field helpers. Every result is reduced into [0, p), so intermediate products
// never grow beyond p^2.

func (c *Curve) fieldAdd(x, y *big.Int) *big.Int {
	return Mod(new(big.Int).Add(x, y), c.p)
}

func (c *Curve) fieldSub(x, y *big.Int) *big.Int {
	return Mod(new(big.Int).Sub(x, y), c.p)
}

func (c *Curve) fieldMul(x, y *big.Int) *big.Int {
	return Mod(new(big.Int).Mul(x, y), c.p)
}

func (c *Curve) fieldSquare(x *big.Int) *big.Int {
	return c.fieldMul(x, x)
}

// rhs returns x^3 + a*x + b mod p.
func (c *Curve) rhs(x *big.Int) *big.Int {
	x3 := c.fieldMul(c.fieldSquare(x), x)
	return c.fieldAdd(c.fieldAdd(x3, c.fieldMul(c.a, x)), c.b)
}

// IsOnCurve reports whether p satisfies the curve equation. The Identity is always
// on the curve; affine points with coordinates outside [0, p) are not.
func (c *Curve) IsOnCurve(p Point) bool {
	if isIdentity(p) {
		return true
	}
	ap, ok := asAffine(p)
	if !ok || !c.inField(ap.xv()) || !c.inField(ap.yv()) {
		return false
	}
	return c.fieldSquare(ap.yv()).Cmp(c.rhs(ap.xv())) == 0
}

// Negate returns -p, the point (x, -y mod p).
func (c *Curve) Negate(p Point) Point {
	ap, ok := asAffine(p)
	if !ok {
		return Infinity
	}
	return Affine{x: new(big.Int).Set(ap.xv()), y: c.fieldSub(zero, ap.yv())}
}

// Add returns p + q.
//
// The cases are checked in order: either operand is the Identity; the operands are
// mutual negatives (including p = q with y = 0); p = q, which is a doubling;
// and the general chord. Only the last two compute an inverse.
func (c *Curve) Add(p, q Point) (Point, error) {
	if isIdentity(p) {
		return identityOr(q), nil
	}
	if isIdentity(q) {
		return p, nil
	}
	ap, aq := c.reduce(p), c.reduce(q)
	if ap.xv().Cmp(aq.xv()) == 0 {
		if c.fieldAdd(ap.yv(), aq.yv()).Sign() == 0 {
			return Infinity, nil
		}
		return c.Double(ap)
	}

	inv, err := ModInverse(c.fieldSub(aq.xv(), ap.xv()), c.p)
	if err != nil {
		return nil, fmt.Errorf("failed to add %v and %v: %w", ap, aq, err)
	}
	lambda := c.fieldMul(c.fieldSub(aq.yv(), ap.yv()), inv)
	return c.chord(lambda, ap, aq.xv()), nil
}

// Double returns 2p.
func (c *Curve) Double(p Point) (Point, error) {
	if isIdentity(p) {
		return Infinity, nil
	}
	ap := c.reduce(p)
	if ap.yv().Sign() == 0 {
		return Infinity, nil
	}
	inv, err := ModInverse(c.fieldMul(two, ap.yv()), c.p)
	if err != nil {
		return nil, fmt.Errorf("failed to double %v: %w", ap, err)
	}
	num := c.fieldAdd(c.fieldMul(three, c.fieldSquare(ap.xv())), c.a)
	lambda := c.fieldMul(num, inv)
	return c.chord(lambda, ap, ap.xv()), nil
}

// Sub returns p - q.
func (c *Curve) Sub(p, q Point) (Point, error) {
	return c.Add(p, c.Negate(q))
}

// chord finishes an addition once the slope lambda of the line through p and the
// second point (with x coordinate qx) is known:
// x3 = lambda^2 - px - qx, y3 = lambda*(px - x3) - py.
func (c *Curve) chord(lambda *big.Int, p Affine, qx *big.Int) Affine {
	x3 := c.fieldSub(c.fieldSub(c.fieldSquare(lambda), p.xv()), qx)
	y3 := c.fieldSub(c.fieldMul(lambda, c.fieldSub(p.xv(), x3)), p.yv())
	return Affine{x: x3, y: y3}
}

// reduce returns the affine point p with both coordinates reduced into [0, p).
// p must not be the Identity.
func (c *Curve) reduce(p Point) Affine {
	ap, _ := asAffine(p)
	return Affine{x: Mod(ap.xv(), c.p), y: Mod(ap.yv(), c.p)}
}

func identityOr(p Point) Point {
	if isIdentity(p) {
		return Infinity
	}
	return p
}
