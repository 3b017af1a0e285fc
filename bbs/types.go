// Package bbs implements the single-party BBS+ primitives: key generation,
// signing, verification, and Fiat-Shamir selective-disclosure proofs. It is
// the component every other package in this module ultimately serves:
// threshold signing and DKG exist to produce a signature this package can
// verify, and its H-vector derivation comes straight from curve.
package bbs

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// PrivateKey is a monolithic BBS+ signing key: the public H-vector plus the
// secret scalar x.
type PrivateKey struct {
	H []bls12381.G1Affine
	X *big.Int
}

// PublicKey is a monolithic BBS+ verification key: the public H-vector plus
// the G2 point X = x*G2.
type PublicKey struct {
	H []bls12381.G1Affine
	X bls12381.G2Affine
}

// Signature is a BBS+ signature over a vector of messages: A in G1, e and s
// in Fr. It satisfies A*(x+e) = G1 + s*H[0] + Σ mᵢ*H[i+1].
type Signature struct {
	A bls12381.G1Affine
	E *big.Int
	S *big.Int
}

// Proof is a non-interactive zero-knowledge proof of knowledge of a BBS+
// signature over a vector of messages, revealing only the messages at
// Revealed's indices.
type Proof struct {
	ABar  bls12381.G1Affine
	BBar  bls12381.G1Affine
	D     bls12381.G1Affine
	T1    bls12381.G1Affine
	T2    bls12381.G1Affine
	C     *big.Int
	RespE *big.Int
	RespR1 *big.Int
	RespR3 *big.Int
	// RespM holds one response scalar per hidden message index.
	RespM map[int]*big.Int
	// Revealed holds the plaintext message value for every revealed index.
	Revealed map[int]*big.Int
}
