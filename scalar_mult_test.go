package ecelgamal

import (
	"crypto/elliptic"
	"math/big"
	"testing"

	"github.com/btcsuite/btcd/btcec"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var curves = []EllipticCurve{SECP256K1, P256, P384, P521}

var scalars = []string{
	"1",
	"2",
	"5001",
	"0x12345deadbeef",
	"0xfffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140",
	"0x7b3c1a0f9e8d2c4b5a69788796a5b4c3d2e1f00112233445566778899aabbccd",
}

func Test_ScalarMult_Toy(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	c := toyCurve()
	g := NewAffineInt64(3, 6)
	expected := []Point{
		Infinity,
		g,
		NewAffineInt64(80, 10),
		NewAffineInt64(80, 87),
		NewAffineInt64(3, 91),
		Infinity,
		g,
		NewAffineInt64(80, 10),
	}
	for k, e := range expected {
		r, err := c.ScalarMult(big.NewInt(int64(k)), g)
		require.NoError(err)
		assert.True(r.Equal(e), "%d*G = %v, expected %v", k, r, e)
	}

	r, err := c.ScalarMult(big.NewInt(-1), g)
	require.NoError(err)
	assert.True(r.Equal(NewAffineInt64(3, 91)))

	r, err = c.ScalarMult(big.NewInt(-2), g)
	require.NoError(err)
	assert.True(r.Equal(NewAffineInt64(80, 87)))

	r, err = c.ScalarMult(big.NewInt(12345), Infinity)
	require.NoError(err)
	assert.True(r.IsIdentity())

	_, err = c.ScalarMult(nil, g)
	assert.ErrorIs(err, ErrInvalidScalar)
}

func Test_ScalarMult_Linearity(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	c := toyCurve()
	for _, p := range toyPoints()[:20] {
		for a := int64(-3); a < 12; a++ {
			for b := int64(0); b < 12; b++ {
				ap, err := c.ScalarMult(big.NewInt(a), p)
				require.NoError(err)
				bp, err := c.ScalarMult(big.NewInt(b), p)
				require.NoError(err)
				sum, err := c.Add(ap, bp)
				require.NoError(err)
				abp, err := c.ScalarMult(big.NewInt(a+b), p)
				require.NoError(err)
				assert.True(sum.Equal(abp), "(%d+%d)*%v", a, b, p)
			}
		}
	}
}

func Test_ScalarMult_Order(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	for _, ec := range curves {
		c := GetCurve(ec)
		require.NotNil(c)
		g, err := c.Generator()
		require.NoError(err)

		r, err := c.ScalarBaseMult(c.N())
		require.NoError(err)
		assert.True(r.IsIdentity(), ec.String())

		r, err = c.ScalarBaseMult(new(big.Int).Add(c.N(), one))
		require.NoError(err)
		assert.True(r.Equal(g), ec.String())

		nm1, err := c.ScalarBaseMult(new(big.Int).Sub(c.N(), one))
		require.NoError(err)
		assert.True(nm1.Equal(c.Negate(g)), ec.String())
	}
}

func Test_ScalarMult_CrossCheck(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	implementations := map[EllipticCurve][]elliptic.Curve{
		SECP256K1: {btcec.S256(), secp256k1.S256(), crypto.S256()},
		P256:      {elliptic.P256()},
		P384:      {elliptic.P384()},
		P521:      {elliptic.P521()},
	}
	for _, ec := range curves {
		c := GetCurve(ec)
		for _, s := range scalars {
			k, err := ParseInt(s)
			require.NoError(err)
			r, err := c.ScalarBaseMult(k)
			require.NoError(err)
			require.False(r.IsIdentity())
			ar := r.(Affine)
			assert.True(c.IsOnCurve(r))

			neg, err := c.ScalarBaseMult(new(big.Int).Neg(k))
			require.NoError(err)
			assert.True(neg.Equal(c.Negate(r)))

			for _, impl := range implementations[ec] {
				x, y := impl.ScalarBaseMult(k.Bytes())
				assert.Equal(0, x.Cmp(ar.X()), "%v %s", ec, s)
				assert.Equal(0, y.Cmp(ar.Y()), "%v %s", ec, s)

				// k*(k*G) against the generic point multiplication.
				x2, y2 := impl.ScalarMult(x, y, k.Bytes())
				r2, err := c.ScalarMult(k, r)
				require.NoError(err)
				assert.True(r2.Equal(NewAffine(x2, y2)), "%v %s", ec, s)
			}
		}
	}
}

func Test_PointOrder(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	c := toyCurve()
	n, err := c.PointOrder(NewAffineInt64(3, 6))
	require.NoError(err)
	assert.EqualValues(5, n.Int64())

	n, err = c.PointOrder(NewAffineInt64(30, 0))
	require.NoError(err)
	assert.EqualValues(2, n.Int64())

	n, err = c.PointOrder(Infinity)
	require.NoError(err)
	assert.EqualValues(1, n.Int64())

	// The group has order 100 = 2 * 50, no point has a larger order than 50.
	for _, p := range toyPoints() {
		n, err := c.PointOrder(p)
		require.NoError(err)
		assert.Equal(0, new(big.Int).Mod(big.NewInt(100), n).Sign())
		r, err := c.ScalarMult(n, p)
		require.NoError(err)
		assert.True(r.IsIdentity())
	}

	_, err = c.PointOrder(NewAffineInt64(10, 20))
	var ipe *InvalidPointError
	assert.ErrorAs(err, &ipe)
}

func Test_PointOrder_LargeField(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	for _, ec := range curves {
		c := GetCurve(ec)
		g, err := c.Generator()
		require.NoError(err)
		_, err = c.PointOrder(g)
		assert.ErrorIs(err, ErrUnsupportedCurve, ec.String())
	}

	// 2^20 - 3 is prime, so this field is still counted. x = -1 is a root of
	// x^3 + 2x + 3, which gives a point of order 2.
	c, err := NewCurveInt64(1048573, 2, 3)
	require.NoError(err)
	assert.Equal(20, c.P().BitLen())
	n, err := c.PointOrder(NewAffineInt64(1048572, 0))
	require.NoError(err)
	assert.EqualValues(2, n.Int64())
}
