package ecelgamal

import (
	"math/big"
	"testing"

	"github.com/btcsuite/btcd/btcec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Curve_Marshal(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	c := toyCurve()
	assert.Equal([]byte{4, 3, 6}, c.Marshal(NewAffineInt64(3, 6)))
	assert.Equal([]byte{2, 3}, c.MarshalCompressed(NewAffineInt64(3, 6)))
	assert.Equal([]byte{3, 3}, c.MarshalCompressed(NewAffineInt64(3, 91)))
	assert.Equal([]byte{0}, c.Marshal(Infinity))
	assert.Equal([]byte{0}, c.MarshalCompressed(Infinity))

	for _, p := range append(toyPoints(), Infinity) {
		p1, err := c.Unmarshal(c.Marshal(p))
		require.NoError(err)
		assert.True(p.Equal(p1))
		p2, err := c.Unmarshal(c.MarshalCompressed(p))
		require.NoError(err)
		assert.True(p.Equal(p2), "%v", p)
	}
}

func Test_Curve_UnmarshalInvalid(t *testing.T) {
	assert := assert.New(t)

	c := toyCurve()
	_, err := c.Unmarshal(nil)
	assert.ErrorIs(err, ErrInvalidEncoding)
	_, err = c.Unmarshal([]byte{5, 3})
	assert.ErrorIs(err, ErrInvalidEncoding)
	_, err = c.Unmarshal([]byte{4, 3})
	assert.ErrorIs(err, ErrInvalidEncoding)

	var ipe *InvalidPointError
	_, err = c.Unmarshal([]byte{4, 10, 20})
	assert.ErrorAs(err, &ipe)
	// x = 100 is not a field element.
	_, err = c.Unmarshal([]byte{2, 100})
	assert.ErrorAs(err, &ipe)
	// x = 2 gives 15, which is not a square mod 97.
	_, err = c.Unmarshal([]byte{2, 2})
	assert.ErrorAs(err, &ipe)
}

func Test_Curve_MarshalSECP256K1(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	c := GetCurve(SECP256K1)
	p, err := c.ScalarBaseMult(big.NewInt(5001))
	require.NoError(err)

	// btcec produces the same SEC1 encodings.
	x, y := btcec.S256().ScalarBaseMult(big.NewInt(5001).Bytes())
	pk := btcec.PublicKey{Curve: btcec.S256(), X: x, Y: y}
	assert.Equal(pk.SerializeUncompressed(), c.Marshal(p))
	assert.Equal(pk.SerializeCompressed(), c.MarshalCompressed(p))

	parsed, err := btcec.ParsePubKey(c.MarshalCompressed(p), btcec.S256())
	require.NoError(err)
	assert.True(NewAffine(parsed.X, parsed.Y).Equal(p))
}
