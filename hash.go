package ecelgamal

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160"
)

// Hash returns SHA-256 of data.
func Hash(data []byte) []byte {
	h := sha256.Sum256(data)
	return h[:]
}

// Hash256 returns SHA-256(SHA-256(data)), the checksum hash of Bitcoin addresses.
func Hash256(data []byte) []byte {
	return Hash(Hash(data))
}

// Hash160 returns RIPEMD-160(SHA-256(data)), the public key hash of Bitcoin addresses.
func Hash160(data []byte) []byte {
	h := ripemd160.New()
	h.Write(Hash(data))
	return h.Sum(nil)
}
