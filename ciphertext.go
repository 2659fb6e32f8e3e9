package ecelgamal

import (
	"encoding/json"
	"fmt"

	"github.com/btcsuite/btcutil/base58"
	"github.com/fxamacker/cbor/v2"
)

// Ciphertext is an ElGamal ciphertext (C1, C2) on a given curve.
type Ciphertext struct {
	curve *Curve
	// C1 = k*G
	C1 Point
	// C2 = M + k*Q
	C2 Point
}

// ciphertextCBOR is the wire form of a ciphertext: the JSON curve definition and
// both points in compressed SEC1 form.
type ciphertextCBOR struct {
	Curve []byte `cbor:"1,keyasint"`
	C1    []byte `cbor:"2,keyasint"`
	C2    []byte `cbor:"3,keyasint"`
}

// Curve returns the curve the ciphertext belongs to.
func (ct *Ciphertext) Curve() *Curve {
	return ct.curve
}

// Equal returns true if both ciphertexts are on the same curve and hold the same points.
func (ct *Ciphertext) Equal(other *Ciphertext) bool {
	if ct == nil || other == nil {
		return ct == other
	}
	return ct.curve.Equal(other.curve) && ct.C1.Equal(other.C1) && ct.C2.Equal(other.C2)
}

// MarshalBinary encodes the ciphertext as CBOR.
func (ct *Ciphertext) MarshalBinary() ([]byte, error) {
	if ct.curve == nil {
		return nil, ErrUnsupportedCurve
	}
	curveBytes, err := json.Marshal(ct.curve)
	if err != nil {
		return nil, err
	}
	return cbor.Marshal(ciphertextCBOR{
		Curve: curveBytes,
		C1:    ct.curve.MarshalCompressed(ct.C1),
		C2:    ct.curve.MarshalCompressed(ct.C2),
	})
}

// UnmarshalBinary decodes a ciphertext written by MarshalBinary. Both points are
// checked against the decoded curve.
func (ct *Ciphertext) UnmarshalBinary(data []byte) error {
	var raw ciphertextCBOR
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid ciphertext: %w", err)
	}
	curve := new(Curve)
	if err := json.Unmarshal(raw.Curve, curve); err != nil {
		return fmt.Errorf("invalid ciphertext curve: %w", err)
	}
	c1, err := curve.Unmarshal(raw.C1)
	if err != nil {
		return fmt.Errorf("invalid C1: %w", err)
	}
	c2, err := curve.Unmarshal(raw.C2)
	if err != nil {
		return fmt.Errorf("invalid C2: %w", err)
	}
	ct.curve, ct.C1, ct.C2 = curve, c1, c2
	return nil
}

// String returns the base58 encoding of the binary form, or the two points if the
// ciphertext cannot be encoded.
func (ct *Ciphertext) String() string {
	b, err := ct.MarshalBinary()
	if err != nil {
		return fmt.Sprintf("{%v, %v}", ct.C1, ct.C2)
	}
	return base58.Encode(b)
}

// ParseCiphertext decodes the base58 string returned by Ciphertext.String.
func ParseCiphertext(s string) (*Ciphertext, error) {
	b := base58.Decode(s)
	if len(b) == 0 {
		return nil, fmt.Errorf("invalid ciphertext encoding")
	}
	ct := new(Ciphertext)
	if err := ct.UnmarshalBinary(b); err != nil {
		return nil, err
	}
	return ct, nil
}
