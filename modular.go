package ecelgamal

import "math/big"

var (
	zero  = big.NewInt(0)
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// Mod returns a mod m normalized into [0, m), also for negative a.
// The modulus must be positive.
func Mod(a, m *big.Int) *big.Int {
	// big.Int.Mod implements Euclidean modulus, the result is never negative.
	return new(big.Int).Mod(a, m)
}

// ModInverse returns the multiplicative inverse of a modulo m, computed with the
// extended Euclidean algorithm. If gcd(a, m) != 1, a *NonInvertibleError is returned.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	// Invariant: t0*a = r0 and t1*a = r1 (mod m).
	r0, r1 := new(big.Int).Set(m), Mod(a, m)
	t0, t1 := big.NewInt(0), big.NewInt(1)
	for r1.Sign() != 0 {
		q := new(big.Int).Quo(r0, r1)
		r0, r1 = r1, new(big.Int).Sub(r0, new(big.Int).Mul(q, r1))
		t0, t1 = t1, new(big.Int).Sub(t0, new(big.Int).Mul(q, t1))
	}
	if r0.Cmp(one) != 0 {
		return nil, &NonInvertibleError{
			Value:   new(big.Int).Set(a),
			Modulus: new(big.Int).Set(m),
		}
	}
	return Mod(t0, m), nil
}

// modSqrt returns the smaller square root of a modulo the prime p,
// or ErrNoSquareRoot if a is not a quadratic residue.
func modSqrt(a, p *big.Int) (*big.Int, error) {
	y := new(big.Int).ModSqrt(Mod(a, p), p)
	if y == nil {
		return nil, ErrNoSquareRoot
	}
	if other := new(big.Int).Sub(p, y); y.Sign() != 0 && other.Cmp(y) < 0 {
		y = other
	}
	return y, nil
}
