package ecelgamal

import (
	"bytes"
	"crypto/ecdsa"
	"fmt"
	"io"

	"github.com/btcsuite/btcutil/base58"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
)

// keyIDNamespace scopes the name-based UUIDs returned by PublicKey.KeyID.
var keyIDNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/regnull/ecelgamal/key"))

// PublicKey represents an ElGamal public key Q = d*G.
type PublicKey struct {
	curve *Curve
	q     Point
}

// NewPublicKey returns the public key for the point q, which must be a point of the
// curve other than the Identity.
func NewPublicKey(curve *Curve, q Point) (*PublicKey, error) {
	if curve == nil {
		return nil, ErrUnsupportedCurve
	}
	if err := curve.checkPoint(q); err != nil {
		return nil, err
	}
	if isIdentity(q) {
		return nil, &InvalidPointError{Reason: "public key is the point at infinity"}
	}
	return &PublicKey{curve: curve, q: q}, nil
}

// NewPublicKeyFromBytes decodes a public key serialized in SEC1 form, compressed or not.
func NewPublicKeyFromBytes(curve *Curve, b []byte) (*PublicKey, error) {
	if curve == nil {
		return nil, ErrUnsupportedCurve
	}
	q, err := curve.Unmarshal(b)
	if err != nil {
		return nil, err
	}
	return NewPublicKey(curve, q)
}

// Curve returns the curve of this key.
func (pbk *PublicKey) Curve() *Curve {
	return pbk.curve
}

// Point returns the public point Q.
func (pbk *PublicKey) Point() Point {
	return pbk.q
}

// Bytes returns the public key in uncompressed SEC1 form.
func (pbk *PublicKey) Bytes() []byte {
	return pbk.curve.Marshal(pbk.q)
}

// CompressedBytes returns the public key in compressed SEC1 form.
func (pbk *PublicKey) CompressedBytes() []byte {
	return pbk.curve.MarshalCompressed(pbk.q)
}

// Encrypt encrypts the message point m with the ephemeral scalar e.
// The ephemeral is consumed; using it again returns ErrEphemeralReused.
func (pbk *PublicKey) Encrypt(m Point, e *Ephemeral) (*Ciphertext, error) {
	k, err := e.take()
	if err != nil {
		return nil, err
	}
	g, err := pbk.curve.Generator()
	if err != nil {
		return nil, err
	}
	return pbk.curve.Encrypt(m, k, g, pbk.q)
}

// EncryptRandom encrypts the message point m with a freshly generated ephemeral
// scalar, read from random (crypto/rand if nil).
func (pbk *PublicKey) EncryptRandom(random io.Reader, m Point) (*Ciphertext, error) {
	e, err := GenerateEphemeral(random, pbk.curve)
	if err != nil {
		return nil, err
	}
	return pbk.Encrypt(m, e)
}

// KeyID returns a stable identifier for this key, a name-based UUID of the
// compressed public key.
func (pbk *PublicKey) KeyID() string {
	return uuid.NewSHA1(keyIDNamespace, pbk.CompressedBytes()).String()
}

// BitcoinAddress returns the Bitcoin address for this public key.
// Unless the public key is on SECP256K1 curve, ErrUnsupportedCurve is returned.
func (pbk *PublicKey) BitcoinAddress() (string, error) {
	if pbk.curve.Preset() != SECP256K1 {
		return "", ErrUnsupportedCurve
	}
	prefix := []byte{0x00}
	hash := Hash160(pbk.CompressedBytes())
	s1 := bytes.Join([][]byte{prefix, hash}, nil)
	checkSum := Hash256(s1)[0:4]
	addr := bytes.Join([][]byte{s1, checkSum}, nil)
	return base58.Encode(addr), nil
}

// EthereumAddress returns an Ethereum address for this public key.
// Unless the public key is on SECP256K1 curve, ErrUnsupportedCurve is returned.
func (pbk *PublicKey) EthereumAddress() (string, error) {
	publicKey, err := pbk.ToECDSA()
	if err != nil {
		return "", err
	}
	if pbk.curve.Preset() != SECP256K1 {
		return "", ErrUnsupportedCurve
	}
	return crypto.PubkeyToAddress(*publicKey).Hex(), nil
}

// ToECDSA returns this key as crypto/ecdsa public key. Only the secp256k1 and
// NIST presets are supported.
func (pbk *PublicKey) ToECDSA() (*ecdsa.PublicKey, error) {
	ec := getEllipticCurve(pbk.curve.Preset())
	if ec == nil {
		return nil, ErrUnsupportedCurve
	}
	q, ok := asAffine(pbk.q)
	if !ok {
		return nil, fmt.Errorf("public key is the point at infinity")
	}
	return &ecdsa.PublicKey{Curve: ec, X: q.X(), Y: q.Y()}, nil
}

// Equal returns true if this key is equal to the other key.
func (pbk *PublicKey) Equal(other *PublicKey) bool {
	if other == nil {
		return false
	}
	return pbk.curve.Equal(other.curve) && pbk.q.Equal(other.q)
}

// EqualSerializedCompressed returns true if this key is equal to the other,
// given as serialized compressed representation.
func (pbk *PublicKey) EqualSerializedCompressed(other []byte) bool {
	return bytes.Equal(pbk.CompressedBytes(), other)
}
