package ecelgamal

import (
	"encoding/base64"
	"fmt"
	"math/big"
	"strings"
)

// GetPlainTextLength returns plain text length for the given sealed payload length.
// The payload is assumed to be obtained by calling PublicKey.Seal().
func GetPlainTextLength(payloadLength int) int {
	// 12 bytes of nonce and 16 bytes of GCM tag.
	if payloadLength < 28 {
		return 0
	}
	return payloadLength - 28
}

// padWithZeros left-pads b with zeros to the given length.
func padWithZeros(b []byte, length int) []byte {
	if len(b) >= length {
		return b
	}
	padded := make([]byte, length)
	copy(padded[length-len(b):], b)
	return padded
}

// JWK uses Base64url encoding, which is Base64 encoding without padding.
func base64urlEncode(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

func base64urlDecode(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(s)
}

func hexInt(v *big.Int) string {
	return fmt.Sprintf("%#x", v)
}

// ParseInt parses a decimal or 0x-prefixed hex integer, with an optional sign.
func ParseInt(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(strings.TrimSpace(s), 0)
	if !ok {
		return nil, fmt.Errorf("cannot parse integer: %q", s)
	}
	return v, nil
}
