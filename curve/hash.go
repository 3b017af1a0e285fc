package curve

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// HVectorDST is the domain separation tag used to derive the H-vector, kept
// distinct from the generic hash-to-G1 DSTs in params.go — the H-vector has
// its own fixed derivation inputs per the data model.
const HVectorDST = "BBS+HGen"

// HashToG1 maps msg to a point in G1 using the IETF hash-to-curve suite
// (RFC 9380, XMD:SHA-256, SSWU, random oracle variant) under the given
// domain separation tag.
func HashToG1(msg, dst []byte) (bls12381.G1Affine, error) {
	p, err := bls12381.HashToG1(msg, dst)
	if err != nil {
		return bls12381.G1Affine{}, fmt.Errorf("curve: hash to G1: %w", err)
	}
	return p, nil
}

// GenerateHVector deterministically derives the public H-vector
// H[0..length] used to commit to a length-message BBS+ signature. Every
// participant who calls GenerateHVector(length) gets byte-identical points,
// since the derivation only depends on length and the fixed DST/seed
// constants, with no randomness and no shared state.
func GenerateHVector(length int) ([]bls12381.G1Affine, error) {
	h := make([]bls12381.G1Affine, length+1)
	for i := range h {
		seed := []byte(fmt.Sprintf("seed_for_h_%d", i))
		p, err := HashToG1(seed, []byte(HVectorDST))
		if err != nil {
			return nil, fmt.Errorf("curve: generating H[%d]: %w", i, err)
		}
		h[i] = p
	}
	return h, nil
}
