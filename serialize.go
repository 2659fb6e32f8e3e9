package ecelgamal

import (
	"fmt"
	"math/big"
)

// Marshal returns p in uncompressed SEC1 form, 0x04 || X || Y. The Identity is
// encoded as a single zero byte.
func (c *Curve) Marshal(p Point) []byte {
	ap, ok := asAffine(p)
	if !ok {
		return []byte{0}
	}
	l := c.ByteLen()
	out := make([]byte, 1+2*l)
	out[0] = 4
	Mod(ap.xv(), c.p).FillBytes(out[1 : 1+l])
	Mod(ap.yv(), c.p).FillBytes(out[1+l:])
	return out
}

// MarshalCompressed returns p in compressed SEC1 form, 0x02 or 0x03 (the parity of
// Y) followed by X. The Identity is encoded as a single zero byte.
func (c *Curve) MarshalCompressed(p Point) []byte {
	ap, ok := asAffine(p)
	if !ok {
		return []byte{0}
	}
	l := c.ByteLen()
	out := make([]byte, 1+l)
	out[0] = byte(2 + Mod(ap.yv(), c.p).Bit(0))
	Mod(ap.xv(), c.p).FillBytes(out[1:])
	return out
}

// Unmarshal decodes a point written by Marshal or MarshalCompressed and checks
// that it lies on the curve.
func (c *Curve) Unmarshal(b []byte) (Point, error) {
	l := c.ByteLen()
	switch {
	case len(b) == 1 && b[0] == 0:
		return Infinity, nil
	case len(b) == 1+2*l && b[0] == 4:
		x := new(big.Int).SetBytes(b[1 : 1+l])
		y := new(big.Int).SetBytes(b[1+l:])
		return c.NewPoint(x, y)
	case len(b) == 1+l && (b[0] == 2 || b[0] == 3):
		x := new(big.Int).SetBytes(b[1:])
		return c.decompress(x, uint(b[0]&1))
	}
	return nil, ErrInvalidEncoding
}

// decompress returns the point with the given x coordinate and y parity.
func (c *Curve) decompress(x *big.Int, odd uint) (Point, error) {
	if !c.inField(x) {
		return nil, &InvalidPointError{X: x, Reason: "coordinate out of range"}
	}
	y, err := modSqrt(c.rhs(x), c.p)
	if err != nil {
		return nil, &InvalidPointError{X: x, Reason: fmt.Sprintf("no point with this x: %v", err)}
	}
	if y.Bit(0) != odd {
		y = c.fieldSub(zero, y)
	}
	if y.Bit(0) != odd {
		return nil, &InvalidPointError{X: x, Y: y, Reason: "no point with this y parity"}
	}
	return Affine{x: x, y: y}, nil
}
