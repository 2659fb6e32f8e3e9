package ecelgamal

import (
	"fmt"
	"math/big"
)

var ErrUnsupportedCurve = fmt.Errorf("the operation is not supported on this curve")
var ErrDifferentCurves = fmt.Errorf("the keys must use the same curve")
var ErrUnsupportedKeyType = fmt.Errorf("unsupported key type")
var ErrSingularCurve = fmt.Errorf("the curve is singular (4a^3 + 27b^2 = 0 mod p)")
var ErrInvalidModulus = fmt.Errorf("the modulus must be a prime greater than 3")
var ErrNoGenerator = fmt.Errorf("the curve has no generator point")
var ErrEphemeralReused = fmt.Errorf("ephemeral scalar was already used for an encryption")
var ErrInvalidScalar = fmt.Errorf("invalid scalar")
var ErrInvalidEncoding = fmt.Errorf("invalid point encoding")
var ErrMessageTooLong = fmt.Errorf("message is too long to embed on this curve")
var ErrNoSquareRoot = fmt.Errorf("value is not a quadratic residue")

// NonInvertibleError is returned when a modular inverse is requested for a value
// that shares a factor with the modulus. With a prime modulus, the point addition
// special cases make this unreachable; seeing it means the modulus is not prime.
type NonInvertibleError struct {
	Value   *big.Int
	Modulus *big.Int
}

func (e *NonInvertibleError) Error() string {
	return fmt.Sprintf("%v has no inverse modulo %v", e.Value, e.Modulus)
}

// InvalidPointError is returned when an affine point fails validation against
// the curve it is used with.
type InvalidPointError struct {
	X      *big.Int
	Y      *big.Int
	Reason string
}

func (e *InvalidPointError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("point (%v, %v) is invalid", e.X, e.Y)
	}
	return fmt.Sprintf("point (%v, %v) is invalid: %s", e.X, e.Y, e.Reason)
}
