package ecelgamal

import (
	"crypto/elliptic"
	"math/big"
	"strings"
	"sync"

	"github.com/btcsuite/btcd/btcec"
)

type EllipticCurve int

const (
	INVALID_CURVE EllipticCurve = -1
	SECP256K1     EllipticCurve = 1
	P256          EllipticCurve = 2
	P384          EllipticCurve = 3
	P521          EllipticCurve = 4
	// TOY97 is the textbook curve y^2 = x^3 + 2x + 3 mod 97 with G = (3, 6).
	TOY97 EllipticCurve = 5
)

// String returns the elliptic curve name as a string.
func (ec EllipticCurve) String() string {
	switch ec {
	case SECP256K1:
		return "secp256k1"
	case P256:
		return "P-256"
	case P384:
		return "P-384"
	case P521:
		return "P-521"
	case TOY97:
		return "toy97"
	}
	return "Invalid"
}

// StringToEllipticCurve converts the elliptic curve name to EllipticCurve.
// If the name is not recognized, INVALID_CURVE is returned.
func StringToEllipticCurve(s string) EllipticCurve {
	switch strings.ToUpper(s) {
	case "SECP256K1":
		return SECP256K1
	case "P-256":
		return P256
	case "P-384":
		return P384
	case "P-521":
		return P521
	case "TOY97":
		return TOY97
	}
	return INVALID_CURVE
}

var presets = map[EllipticCurve]func() *Curve{
	SECP256K1: sync.OnceValue(func() *Curve { return fromParams(SECP256K1, btcec.S256().Params(), big.NewInt(0)) }),
	P256:      sync.OnceValue(func() *Curve { return fromParams(P256, elliptic.P256().Params(), big.NewInt(-3)) }),
	P384:      sync.OnceValue(func() *Curve { return fromParams(P384, elliptic.P384().Params(), big.NewInt(-3)) }),
	P521:      sync.OnceValue(func() *Curve { return fromParams(P521, elliptic.P521().Params(), big.NewInt(-3)) }),
	TOY97: sync.OnceValue(func() *Curve {
		c := mustCurve(NewCurveInt64(97, 2, 3))
		return mustCurve(c.WithGenerator(NewAffineInt64(3, 6), nil)).WithName(TOY97.String())
	}),
}

// GetCurve returns the preset curve. If the curve is invalid, the function returns nil.
func GetCurve(curve EllipticCurve) *Curve {
	f, ok := presets[curve]
	if !ok {
		return nil
	}
	return f()
}

// Preset returns the preset this curve is equal to, or INVALID_CURVE.
func (c *Curve) Preset() EllipticCurve {
	for _, ec := range []EllipticCurve{SECP256K1, P256, P384, P521, TOY97} {
		if c.Equal(GetCurve(ec)) {
			return ec
		}
	}
	return INVALID_CURVE
}

// getEllipticCurve returns the crypto/elliptic implementation of a preset, or nil
// if there is none.
func getEllipticCurve(curve EllipticCurve) elliptic.Curve {
	switch curve {
	case SECP256K1:
		return btcec.S256()
	case P256:
		return elliptic.P256()
	case P384:
		return elliptic.P384()
	case P521:
		return elliptic.P521()
	}
	return nil
}

func fromParams(ec EllipticCurve, params *elliptic.CurveParams, a *big.Int) *Curve {
	c := mustCurve(NewCurve(params.P, a, params.B))
	c = mustCurve(c.WithGenerator(NewAffine(params.Gx, params.Gy), params.N))
	return c.WithName(ec.String())
}

func mustCurve(c *Curve, err error) *Curve {
	if err != nil {
		panic("ecelgamal: invalid preset curve: " + err.Error())
	}
	return c
}
