package ecelgamal

import (
	"fmt"
	"math/big"
)

// Point is a point of an elliptic curve group: either the Identity (point at
// infinity) or an Affine point with coordinates (x, y). Points are immutable
// values; the arithmetic operations always return new points.
//
// The interface is sealed, Identity and Affine are its only implementations.
// A nil Point is treated as the Identity by the arithmetic operations.
type Point interface {
	// IsIdentity reports whether this is the point at infinity.
	IsIdentity() bool
	// Equal reports whether two points are the same group element.
	Equal(other Point) bool
	String() string

	point()
}

// Identity is the neutral element of the group. It carries no coordinates.
type Identity struct{}

// Infinity is the shared point at infinity.
var Infinity Point = Identity{}

func (Identity) IsIdentity() bool { return true }

func (Identity) Equal(other Point) bool { return isIdentity(other) }

func (Identity) String() string { return "O" }

func (Identity) point() {}

// Affine is a point given by its affine coordinates.
type Affine struct {
	x *big.Int
	y *big.Int
}

// NewAffine returns the affine point (x, y). The coordinates are copied; no
// curve membership check is done, use Curve.NewPoint for a validated point.
func NewAffine(x, y *big.Int) Affine {
	return Affine{x: new(big.Int).Set(x), y: new(big.Int).Set(y)}
}

// NewAffineInt64 is a shorthand for NewAffine with small coordinates.
func NewAffineInt64(x, y int64) Affine {
	return Affine{x: big.NewInt(x), y: big.NewInt(y)}
}

// X returns a copy of the x coordinate.
func (p Affine) X() *big.Int {
	return new(big.Int).Set(p.xv())
}

// Y returns a copy of the y coordinate.
func (p Affine) Y() *big.Int {
	return new(big.Int).Set(p.yv())
}

func (p Affine) IsIdentity() bool { return false }

func (p Affine) Equal(other Point) bool {
	q, ok := asAffine(other)
	if !ok {
		return false
	}
	return p.xv().Cmp(q.xv()) == 0 && p.yv().Cmp(q.yv()) == 0
}

func (p Affine) String() string {
	return fmt.Sprintf("(%v, %v)", p.xv(), p.yv())
}

func (p Affine) point() {}

// xv and yv give read-only access to the coordinates; the zero value of Affine
// is the point (0, 0).
func (p Affine) xv() *big.Int {
	if p.x == nil {
		return zero
	}
	return p.x
}

func (p Affine) yv() *big.Int {
	if p.y == nil {
		return zero
	}
	return p.y
}

// isIdentity treats nil, including a nil *Affine, as the Identity.
func isIdentity(p Point) bool {
	if a, ok := p.(*Affine); ok && a == nil {
		return true
	}
	return p == nil || p.IsIdentity()
}

// asAffine unwraps p into an Affine value. It returns false for the Identity.
func asAffine(p Point) (Affine, bool) {
	switch v := p.(type) {
	case Affine:
		return v, true
	case *Affine:
		if v == nil {
			return Affine{}, false
		}
		return *v, true
	}
	return Affine{}, false
}
