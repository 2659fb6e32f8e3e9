package ecelgamal

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/btcsuite/btcd/btcec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSharedPoint(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	alicePrivateKey, err := GeneratePrivateKey(SECP256K1)
	require.NoError(err)

	bobPrivateKey, err := GeneratePrivateKey(SECP256K1)
	require.NoError(err)

	c := GetCurve(SECP256K1)
	shared1, err := c.ScalarMult(bobPrivateKey.Secret(), alicePrivateKey.PublicKey().Point())
	require.NoError(err)
	shared2, err := c.ScalarMult(alicePrivateKey.Secret(), bobPrivateKey.PublicKey().Point())
	require.NoError(err)
	assert.True(shared1.Equal(shared2))

	alice := alicePrivateKey.PublicKey().Point().(Affine)
	key1x, key1y := btcec.S256().ScalarMult(alice.X(), alice.Y(), bobPrivateKey.Secret().Bytes())
	assert.True(shared1.Equal(NewAffine(key1x, key1y)))
}

func TestSealOpen(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	for _, curve := range curves {
		privateKey, err := GeneratePrivateKey(curve)
		require.NoError(err)

		message := "All that we are is the result of what we have thought"
		sealed, err := privateKey.PublicKey().Seal(nil, []byte(message))
		require.NoError(err)
		assert.Equal(len(message), GetPlainTextLength(len(sealed.Payload)))

		plaintext, err := privateKey.Open(sealed)
		require.NoError(err)
		assert.True(bytes.Equal([]byte(message), plaintext))

		// Another key cannot open it.
		otherKey, err := GeneratePrivateKey(curve)
		require.NoError(err)
		_, err = otherKey.Open(sealed)
		assert.Error(err)

		// Tampering with the payload is detected.
		sealed.Payload[len(sealed.Payload)-1] ^= 1
		_, err = privateKey.Open(sealed)
		assert.Error(err)
	}
}

func TestSealOpenInvalid(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	privateKey, err := NewPrivateKeyFromSecret(GetCurve(P256), big.NewInt(12345))
	require.NoError(err)

	_, err = privateKey.Open(nil)
	assert.Error(err)

	sealed, err := privateKey.PublicKey().Seal(nil, []byte("message"))
	require.NoError(err)
	sealed.Payload = sealed.Payload[:5]
	_, err = privateKey.Open(sealed)
	assert.Error(err)

	assert.Equal(0, GetPlainTextLength(10))
}

func TestEncryptDecryptSymmetric(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	key := Hash([]byte("super secret key"))
	message := "super secret message"
	encrypted, err := encrypt(bytes.NewReader(bytes.Repeat([]byte{7}, 12)), key, []byte(message))
	require.NoError(err)
	assert.True(len(encrypted) > len([]byte(message)))

	decrypted, err := decrypt(key, encrypted)
	require.NoError(err)
	assert.Equal(message, string(decrypted))
}
