package ecelgamal

import (
	"crypto/rand"
	"encoding/json"
	"fmt"

	"github.com/go-jose/go-jose/v3"
	"golang.org/x/crypto/scrypt"
)

const (
	// Key derivation parameters.
	deriveKey_N      = 16384
	deriveKey_r      = 8
	deriveKey_p      = 1
	deriveKey_keyLen = 32

	saltField = "x-salt"
)

// deriveKey creates a 32 bytes symmetric encryption key from passphrase and salt.
// Key derivation algorithm is described in https://www.tarsnap.com/scrypt/scrypt.pdf.
func deriveKey(passphrase, salt []byte) ([]byte, error) {
	return scrypt.Key(passphrase, salt, deriveKey_N, deriveKey_r, deriveKey_p, deriveKey_keyLen)
}

// sealKeyFile encrypts content into a JWE JSON serialization, with the key derived
// from passphrase. The scrypt salt is stored next to the JWE fields.
func sealKeyFile(passphrase string, content []byte) ([]byte, error) {
	salt := make([]byte, 32)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	key, err := deriveKey([]byte(passphrase), salt)
	if err != nil {
		return nil, err
	}
	encrypter, err := jose.NewEncrypter(jose.A256GCM,
		jose.Recipient{Algorithm: jose.DIRECT, Key: key}, nil)
	if err != nil {
		return nil, err
	}
	object, err := encrypter.Encrypt(content)
	if err != nil {
		return nil, err
	}

	var fields map[string]interface{}
	if err := json.Unmarshal([]byte(object.FullSerialize()), &fields); err != nil {
		return nil, err
	}
	fields[saltField] = base64urlEncode(salt)
	return json.Marshal(fields)
}

// openKeyFile reverses sealKeyFile.
func openKeyFile(passphrase string, data []byte) ([]byte, error) {
	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	saltStr, ok := fields[saltField].(string)
	if !ok {
		return nil, fmt.Errorf("invalid content")
	}
	salt, err := base64urlDecode(saltStr)
	if err != nil {
		return nil, fmt.Errorf("invalid content")
	}
	key, err := deriveKey([]byte(passphrase), salt)
	if err != nil {
		return nil, err
	}
	object, err := jose.ParseEncrypted(string(data))
	if err != nil {
		return nil, err
	}
	return object.Decrypt(key)
}
