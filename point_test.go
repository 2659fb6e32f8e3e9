package ecelgamal

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Point(t *testing.T) {
	assert := assert.New(t)

	p := NewAffineInt64(3, 6)
	assert.False(p.IsIdentity())
	assert.Equal("(3, 6)", p.String())
	assert.True(p.Equal(NewAffine(big.NewInt(3), big.NewInt(6))))
	assert.True(p.Equal(&p))
	assert.False(p.Equal(NewAffineInt64(3, 91)))
	assert.False(p.Equal(Infinity))
	assert.False(p.Equal(nil))

	assert.True(Infinity.IsIdentity())
	assert.Equal("O", Infinity.String())
	assert.True(Infinity.Equal(Identity{}))
	assert.True(Infinity.Equal(nil))
	assert.False(Infinity.Equal(p))

	// The zero value is the point (0, 0).
	assert.Equal("(0, 0)", Affine{}.String())
}

func Test_Point_NilAffine(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	c := toyCurve()
	var p *Affine
	g := NewAffineInt64(3, 6)

	assert.True(c.IsOnCurve(p))
	assert.True(c.Negate(p).IsIdentity())
	assert.True(Infinity.Equal(p))

	r, err := c.Add(g, p)
	require.NoError(err)
	assert.True(r.Equal(g))
	r, err = c.Add(p, g)
	require.NoError(err)
	assert.True(r.Equal(g))
	r, err = c.Double(p)
	require.NoError(err)
	assert.True(r.IsIdentity())
	r, err = c.ScalarMult(big.NewInt(3), p)
	require.NoError(err)
	assert.True(r.IsIdentity())
	assert.Equal([]byte{0}, c.Marshal(p))
}

func Test_Point_Immutable(t *testing.T) {
	assert := assert.New(t)

	x, y := big.NewInt(3), big.NewInt(6)
	p := NewAffine(x, y)
	x.SetInt64(4)
	p.Y().SetInt64(7)
	assert.Equal("(3, 6)", p.String())
}

func Test_ParseInt(t *testing.T) {
	assert := assert.New(t)

	for s, expected := range map[string]int64{
		"97":    97,
		"0x61":  97,
		" -3 ":  -3,
		"0":     0,
		"0b101": 5,
	} {
		v, err := ParseInt(s)
		assert.NoError(err, s)
		assert.EqualValues(expected, v.Int64(), s)
	}
	_, err := ParseInt("")
	assert.Error(err)
	_, err = ParseInt("12a")
	assert.Error(err)
}
