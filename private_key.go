package ecelgamal

import (
	"crypto/ecdsa"
	"crypto/rand"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/pbkdf2"
)

const (
	PBKDF2_ITER = 16384
	PBKDF2_SIZE = 32
)

// PrivateKey is an ElGamal private key: a scalar d on a curve with a generator.
type PrivateKey struct {
	curve     *Curve
	d         *big.Int
	publicKey *PublicKey
}

// privateKeyJSON struct is used when serializing keys to JWK format.
// Crv holds the preset name; keys on custom curves carry the curve definition.
type privateKeyJSON struct {
	Kty   string `json:"kty"`
	Crv   string `json:"crv,omitempty"`
	Curve *Curve `json:"curve,omitempty"`
	Kid   string `json:"kid,omitempty"`
	X     string `json:"x"`
	Y     string `json:"y"`
	D     string `json:"d"`
}

// NewPrivateKey creates a new random private key on the given curve, reading
// randomness from random (crypto/rand if nil).
func NewPrivateKey(curve *Curve, random io.Reader) (*PrivateKey, error) {
	if curve == nil {
		return nil, ErrUnsupportedCurve
	}
	d, err := randomScalar(random, curve)
	if err != nil {
		return nil, fmt.Errorf("failed to generate private key, %v", err)
	}
	return NewPrivateKeyFromSecret(curve, d)
}

// GeneratePrivateKey creates a new random private key on the preset curve.
func GeneratePrivateKey(curve EllipticCurve) (*PrivateKey, error) {
	c := GetCurve(curve)
	if c == nil {
		return nil, ErrUnsupportedCurve
	}
	return NewPrivateKey(c, rand.Reader)
}

// NewPrivateKeyFromSecret creates a private key on the given curve from secret.
// The secret is reduced modulo the generator order (or p, when the order is
// unknown) and must not reduce to zero.
func NewPrivateKeyFromSecret(curve *Curve, secret *big.Int) (*PrivateKey, error) {
	if curve == nil {
		return nil, ErrUnsupportedCurve
	}
	if secret == nil {
		return nil, ErrInvalidScalar
	}
	g, err := curve.Generator()
	if err != nil {
		return nil, err
	}
	d := Mod(secret, scalarBound(curve))
	if d.Sign() == 0 {
		return nil, fmt.Errorf("%w: secret reduces to zero", ErrInvalidScalar)
	}
	q, err := curve.DerivePublicKey(g, d)
	if err != nil {
		return nil, err
	}
	return &PrivateKey{
		curve:     curve,
		d:         d,
		publicKey: &PublicKey{curve: curve, q: q},
	}, nil
}

// NewPrivateKeyFromPassword creates a private key on the given curve from password using
// PBKDF2 algorithm. The derived value is mapped into [1, n).
// See https://en.wikipedia.org/wiki/PBKDF2.
func NewPrivateKeyFromPassword(curve *Curve, password, salt []byte) (*PrivateKey, error) {
	if curve == nil {
		return nil, ErrUnsupportedCurve
	}
	secret := pbkdf2.Key(password, salt, PBKDF2_ITER, PBKDF2_SIZE, sha256.New)
	bound := new(big.Int).Sub(scalarBound(curve), one)
	if bound.Sign() <= 0 {
		return nil, ErrInvalidScalar
	}
	d := Mod(new(big.Int).SetBytes(secret), bound)
	return NewPrivateKeyFromSecret(curve, d.Add(d, one))
}

// NewPrivateKeyFromMnemonic creates private key on given curve from a mnemonic phrase.
// Only curves with scalars of up to 256 bits can be used with mnemonics.
func NewPrivateKeyFromMnemonic(curve *Curve, mnemonic string) (*PrivateKey, error) {
	if curve == nil || scalarBound(curve).BitLen() > 256 {
		return nil, ErrUnsupportedCurve
	}
	b, err := bip39.EntropyFromMnemonic(mnemonic)
	if err != nil {
		return nil, err
	}
	return NewPrivateKeyFromSecret(curve, new(big.Int).SetBytes(b))
}

// NewPrivateKeyFromJSON creates private key from JWK-encoded
// representation.
// See https://www.rfc-editor.org/rfc/rfc7517.
func NewPrivateKeyFromJSON(data string) (*PrivateKey, error) {
	var pkJSON privateKeyJSON
	err := json.Unmarshal([]byte(data), &pkJSON)
	if err != nil {
		return nil, err
	}
	if pkJSON.Kty != "EC" {
		return nil, ErrUnsupportedKeyType
	}
	curve := pkJSON.Curve
	if curve == nil {
		curve = GetCurve(StringToEllipticCurve(pkJSON.Crv))
	}
	if curve == nil {
		return nil, ErrUnsupportedCurve
	}
	dBytes, err := base64urlDecode(pkJSON.D)
	if err != nil {
		return nil, err
	}
	return NewPrivateKeyFromSecret(curve, new(big.Int).SetBytes(dBytes))
}

// NewPrivateKeyFromFile loads private key from fileName. If no passphrase is give,
// the file is assumed to be in JWK format. If passphrase is given, the file is assumed
// to be in JWE format, containing encrypted JWK key.
func NewPrivateKeyFromFile(fileName string, passphrase string) (*PrivateKey, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to load private key: %v", err)
	}

	jsonBytes := data
	if passphrase != "" {
		jsonBytes, err = openKeyFile(passphrase, data)
		if err != nil {
			return nil, err
		}
	}
	return NewPrivateKeyFromJSON(string(jsonBytes))
}

// Secret returns the private key's secret.
func (pk *PrivateKey) Secret() *big.Int {
	return new(big.Int).Set(pk.d)
}

// Curve returns the curve of this key.
func (pk *PrivateKey) Curve() *Curve {
	return pk.curve
}

// PublicKey returns the public key derived from this private key.
func (pk *PrivateKey) PublicKey() *PublicKey {
	return pk.publicKey
}

// Decrypt recovers the message point from an ElGamal ciphertext.
func (pk *PrivateKey) Decrypt(ct *Ciphertext) (Point, error) {
	if ct == nil {
		return nil, fmt.Errorf("nil ciphertext")
	}
	if !pk.curve.Equal(ct.curve) {
		return nil, ErrDifferentCurves
	}
	return pk.curve.Decrypt(ct.C1, ct.C2, pk.d)
}

// Mnemonic returns a mnemonic phrase which can be used to recover this private key.
func (pk *PrivateKey) Mnemonic() (string, error) {
	if scalarBound(pk.curve).BitLen() > 256 {
		return "", ErrUnsupportedCurve
	}
	return bip39.NewMnemonic(padWithZeros(pk.d.Bytes(), 32))
}

// Equal returns true if this key is equal to the other key.
func (pk *PrivateKey) Equal(other *PrivateKey) bool {
	if other == nil {
		return false
	}
	return pk.curve.Equal(other.curve) && pk.d.Cmp(other.d) == 0
}

// ToECDSA returns this key as crypto/ecdsa private key. Only the secp256k1 and
// NIST presets are supported.
func (pk *PrivateKey) ToECDSA() (*ecdsa.PrivateKey, error) {
	publicKey, err := pk.publicKey.ToECDSA()
	if err != nil {
		return nil, err
	}
	return &ecdsa.PrivateKey{PublicKey: *publicKey, D: pk.Secret()}, nil
}

// MarshalToJSON returns the key JWK representation,
// see https://www.rfc-editor.org/rfc/rfc7517.
func (pk *PrivateKey) MarshalToJSON() (string, error) {
	q, ok := asAffine(pk.publicKey.q)
	if !ok {
		return "", fmt.Errorf("public key is the point at infinity")
	}
	l := pk.curve.ByteLen()
	pkJSON := privateKeyJSON{
		Kty: "EC",
		Kid: pk.publicKey.KeyID(),
		X:   base64urlEncode(padWithZeros(q.xv().Bytes(), l)),
		Y:   base64urlEncode(padWithZeros(q.yv().Bytes(), l)),
		D:   base64urlEncode(pk.d.Bytes()),
	}
	if preset := pk.curve.Preset(); preset != INVALID_CURVE {
		pkJSON.Crv = preset.String()
	} else {
		pkJSON.Curve = pk.curve
	}
	b, err := json.Marshal(pkJSON)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Save saves the private key to the specified file. If passphrase is empty, the file
// will contain the key in JWK format. Otherwise, the file will contain encrypted JWK
// key in JWE format.
func (pk *PrivateKey) Save(fileName string, passphrase string) error {
	keyJWK, err := pk.MarshalToJSON()
	if err != nil {
		return err
	}
	content := []byte(keyJWK)
	if passphrase != "" {
		content, err = sealKeyFile(passphrase, content)
		if err != nil {
			return err
		}
	}
	return os.WriteFile(fileName, content, 0600)
}
