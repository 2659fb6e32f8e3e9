package ecelgamal

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"
)

// Sealed is content encrypted to a public key: an ElGamal encryption of a random
// curve point, and the content encrypted with AES-256-GCM under a key derived from
// that point.
type Sealed struct {
	Key     *Ciphertext
	Payload []byte
}

// Seal encrypts content for this public key, reading randomness from random
// (crypto/rand if nil). On small curves the key point has few possible values, so
// Seal is only meaningful on real-size curves.
func (pbk *PublicKey) Seal(random io.Reader, content []byte) (*Sealed, error) {
	if random == nil {
		random = rand.Reader
	}
	r, err := randomScalar(random, pbk.curve)
	if err != nil {
		return nil, err
	}
	s, err := pbk.curve.ScalarBaseMult(r)
	if err != nil {
		return nil, err
	}
	ct, err := pbk.EncryptRandom(random, s)
	if err != nil {
		return nil, err
	}
	payload, err := encrypt(random, pbk.curve.sharedKey(s), content)
	if err != nil {
		return nil, err
	}
	return &Sealed{Key: ct, Payload: payload}, nil
}

// Open decrypts content sealed for this key's public key.
func (pk *PrivateKey) Open(sealed *Sealed) ([]byte, error) {
	if sealed == nil || sealed.Key == nil {
		return nil, fmt.Errorf("invalid content")
	}
	s, err := pk.Decrypt(sealed.Key)
	if err != nil {
		return nil, err
	}
	return decrypt(pk.curve.sharedKey(s), sealed.Payload)
}

// sharedKey derives the symmetric key from the sealed point.
func (c *Curve) sharedKey(s Point) []byte {
	key := sha256.Sum256(c.MarshalCompressed(s))
	return key[:]
}

// encrypt encrypts the content using AES256-GCM algorithm.
func encrypt(random io.Reader, key []byte, content []byte) ([]byte, error) {
	c, err := aes.NewCipher(key[:32]) // The key must be 32 bytes long.
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %v", err)
	}

	gcm, err := cipher.NewGCM(c)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %v", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(random, nonce); err != nil {
		return nil, fmt.Errorf("failed to populate nonce: %v", err)
	}

	return gcm.Seal(nonce, nonce, content, nil), nil
}

// decrypt decrypts the content using AES256-GCM algorithm.
func decrypt(key []byte, content []byte) ([]byte, error) {
	c, err := aes.NewCipher(key[:32]) // The key must be 32 bytes long.
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %v", err)
	}

	gcm, err := cipher.NewGCM(c)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %v", err)
	}

	nonceSize := gcm.NonceSize()
	if len(content) < nonceSize {
		return nil, fmt.Errorf("invalid content")
	}

	nonce, ciphertext := content[:nonceSize], content[nonceSize:]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt: %v", err)
	}
	return plaintext, nil
}
