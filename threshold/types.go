// Package threshold implements distributed BBS+ signing: turning a set of
// Shamir private-key shares into a set of per-server signature shares (the
// distributed signer), and folding those shares back into a single
// canonical signature (the reconstructor).
package threshold

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// SignatureShare is one server's contribution to a distributed signing
// session. e and s are the jointly sampled session nonces and are identical
// across every share in the session; R and U are specific to server ID.
type SignatureShare struct {
	ServerID int
	E        *big.Int
	S        *big.Int
	R        bls12381.G1Affine
	U        *big.Int
}

// FinalSignature is the canonical BBS+ signature a set of signature shares
// reconstructs to.
type FinalSignature struct {
	A bls12381.G1Affine
	E *big.Int
	S *big.Int
}
