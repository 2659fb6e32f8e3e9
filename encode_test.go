package ecelgamal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Curve_HashToPoint(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	for _, ec := range append(curves, TOY97) {
		c := GetCurve(ec)
		p1, err := c.HashToPoint([]byte("super secret message"))
		require.NoError(err)
		assert.True(c.IsOnCurve(p1))

		p2, err := c.HashToPoint([]byte("super secret message"))
		require.NoError(err)
		assert.True(p1.Equal(p2))

		p3, err := c.HashToPoint([]byte("another message"))
		require.NoError(err)
		assert.True(c.IsOnCurve(p3))
		if ec != TOY97 {
			assert.False(p1.Equal(p3))
		}
	}
}

func Test_Curve_EmbedMessage(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	for _, ec := range curves {
		c := GetCurve(ec)
		message := []byte("attack at dawn")
		p, err := c.EmbedMessage(message, DefaultEmbedFactor)
		require.NoError(err)
		assert.True(c.IsOnCurve(p))

		extracted, err := c.ExtractMessage(p, DefaultEmbedFactor)
		require.NoError(err)
		assert.Equal(message, extracted)

		// The embedded point survives an encryption round trip.
		key, err := NewPrivateKey(c, nil)
		require.NoError(err)
		ct, err := key.PublicKey().EncryptRandom(nil, p)
		require.NoError(err)
		decrypted, err := key.Decrypt(ct)
		require.NoError(err)
		extracted, err = c.ExtractMessage(decrypted, DefaultEmbedFactor)
		require.NoError(err)
		assert.Equal(message, extracted)

		longest := bytes.Repeat([]byte{0xff}, c.MaxEmbedLength(DefaultEmbedFactor))
		_, err = c.EmbedMessage(longest, DefaultEmbedFactor)
		assert.NoError(err)

		_, err = c.EmbedMessage(bytes.Repeat([]byte{0xff}, c.ByteLen()), DefaultEmbedFactor)
		assert.ErrorIs(err, ErrMessageTooLong)
	}
}

func Test_Curve_EmbedMessageToy(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	c := toyCurve()
	assert.Equal(0, c.MaxEmbedLength(DefaultEmbedFactor))
	for m := byte(1); m < 9; m++ {
		p, err := c.EmbedMessage([]byte{m}, 10)
		require.NoError(err)
		assert.True(c.IsOnCurve(p))
		extracted, err := c.ExtractMessage(p, 10)
		require.NoError(err)
		assert.Equal([]byte{m}, extracted)
	}

	_, err := c.EmbedMessage([]byte{10}, 10)
	assert.ErrorIs(err, ErrMessageTooLong)
	_, err = c.EmbedMessage([]byte{1}, 0)
	assert.ErrorIs(err, ErrInvalidScalar)
	_, err = c.ExtractMessage(Infinity, 10)
	assert.Error(err)
}
