package bbs

import (
	"fmt"
	"io"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/anupsv/bbsplus-threshold/bbserr"
	"github.com/anupsv/bbsplus-threshold/curve"
)

// commitmentBase computes B = G1 + s*H[0] + Σ mₖ*H[k+1], the commitment
// shared by sign, verify, and proof creation.
func commitmentBase(h []bls12381.G1Affine, s *big.Int, messages []*big.Int) bls12381.G1Affine {
	params := curve.DefaultParams()

	points := make([]bls12381.G1Affine, 0, len(messages)+2)
	scalars := make([]*big.Int, 0, len(messages)+2)

	points = append(points, params.G1, h[0])
	scalars = append(scalars, big.NewInt(1), s)
	for k, m := range messages {
		points = append(points, h[k+1])
		scalars = append(scalars, m)
	}

	b, err := curve.MultiScalarMulG1(points, scalars)
	if err != nil {
		// len(points) == len(scalars) by construction and every scalar is
		// non-nil, so MultiScalarMulG1 cannot fail here.
		panic(fmt.Sprintf("bbs: commitment base MSM: %v", err))
	}
	return b
}

// Sign produces a BBS+ signature over messages under sk, sampling fresh
// nonces e and s from rng. It fails (a ~1/q event, treated as
// non-recoverable) if x+e happens to be congruent to zero mod q; callers
// may simply retry.
func Sign(sk *PrivateKey, messages []*big.Int, rng io.Reader) (*Signature, error) {
	if len(sk.H) != len(messages)+1 {
		return nil, fmt.Errorf("bbs: sign: len(H)=%d, len(messages)+1=%d: %w", len(sk.H), len(messages)+1, bbserr.ErrLengthMismatch)
	}

	e, err := curve.RandScalar(rng)
	if err != nil {
		return nil, fmt.Errorf("bbs: sign: sampling e: %w", err)
	}
	s, err := curve.RandScalar(rng)
	if err != nil {
		return nil, fmt.Errorf("bbs: sign: sampling s: %w", err)
	}

	numerator := commitmentBase(sk.H, s, messages)

	denom := new(big.Int).Add(sk.X, e)
	denom.Mod(denom, curve.Order)
	denomInv, err := curve.ModInverse(denom)
	if err != nil {
		return nil, fmt.Errorf("bbs: sign: x+e is congruent to zero, retry with fresh randomness: %w", bbserr.ErrModInverseOfZero)
	}

	A := curve.MulG1(&numerator, denomInv)
	return &Signature{A: A, E: e, S: s}, nil
}

// Verify reports whether sig is a valid BBS+ signature over messages under
// pk. It never returns an error: any mismatch, including a malformed
// signature that cannot satisfy the pairing equation, simply yields false.
func Verify(pk *PublicKey, messages []*big.Int, sig *Signature) bool {
	if len(pk.H) != len(messages)+1 {
		return false
	}

	B := commitmentBase(pk.H, sig.S, messages)

	params := curve.DefaultParams()
	eG2 := curve.MulG2(&params.G2, sig.E)
	xPlusEG2 := curve.AddG2(&pk.X, &eG2)
	negG2 := curve.NegG2(&params.G2)

	ok, err := curve.Pairing(
		[]bls12381.G1Affine{sig.A, B},
		[]bls12381.G2Affine{xPlusEG2, negG2},
	)
	if err != nil {
		return false
	}
	return ok
}
