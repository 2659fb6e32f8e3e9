/*
Package ecelgamal implements elliptic curve point arithmetic over prime fields and
ElGamal encryption of curve points on top of it.

Curves are short Weierstrass curves y^2 = x^3 + a*x + b mod p. They can be created
from their parameters (NewCurve), loaded from JSON (LoadCurve), or taken from the
presets: the textbook curve TOY97, secp256k1 and the NIST curves P-256, P-384 and P-521.

The package provides:

-- Point validation, negation, addition, doubling and double-and-add scalar multiplication

-- ElGamal key pairs (Q = d*G), encryption (C1 = k*G, C2 = M + k*Q) and decryption (M = C2 - d*C1)

-- Single-use ephemeral scalars, so that k is not reused by accident

-- Mapping of data to curve points, and reversible message embedding

-- Saving private keys to file, possibly passphrase-protected

The arithmetic uses math/big without any side-channel protection and is meant for
teaching and experiments, not for protecting real secrets.

See the examples for more information.
*/
package ecelgamal
