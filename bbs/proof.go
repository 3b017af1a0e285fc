package bbs

import (
	"crypto/sha256"
	"fmt"
	"io"
	"math/big"
	"sort"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/anupsv/bbsplus-threshold/bbserr"
	"github.com/anupsv/bbsplus-threshold/curve"
)

// DefaultNonce is the Fiat-Shamir nonce used when a caller does not supply
// its own. It is a fixed constant; callers SHOULD pass a per-session unique
// nonce of their own instead of relying on it, since a reused nonce weakens
// the proof's non-interactivity guarantee across sessions.
var DefaultNonce = []byte("default_nonce")

// CreateProof produces a zero-knowledge proof of knowledge of sig over
// messages, revealing only the messages at the given indices. hidden
// indices are derived as the complement of revealed within
// [0, len(messages)). Fresh randomness is read from rng for every proof, so
// two proofs over the same signature and revealed set never collide.
func CreateProof(pk *PublicKey, sig *Signature, messages []*big.Int, revealedIndices []int, nonce []byte, rng io.Reader) (*Proof, error) {
	if len(pk.H) != len(messages)+1 {
		return nil, fmt.Errorf("bbs: create proof: len(H)=%d, len(messages)+1=%d: %w", len(pk.H), len(messages)+1, bbserr.ErrLengthMismatch)
	}

	revealedSet := make(map[int]bool, len(revealedIndices))
	for _, i := range revealedIndices {
		if i < 0 || i >= len(messages) {
			return nil, fmt.Errorf("bbs: create proof: revealed index %d out of range [0,%d): %w", i, len(messages), bbserr.ErrLengthMismatch)
		}
		revealedSet[i] = true
	}

	hidden := make([]int, 0, len(messages)-len(revealedSet))
	for i := range messages {
		if !revealedSet[i] {
			hidden = append(hidden, i)
		}
	}
	sort.Ints(hidden)

	B := commitmentBase(pk.H, sig.S, messages)

	r1, err := curve.RandScalar(rng)
	if err != nil {
		return nil, fmt.Errorf("bbs: create proof: sampling r1: %w", err)
	}
	r2, err := curve.RandScalar(rng)
	if err != nil {
		return nil, fmt.Errorf("bbs: create proof: sampling r2: %w", err)
	}

	r1r2 := new(big.Int).Mul(r1, r2)
	r1r2.Mod(r1r2, curve.Order)
	ABar := curve.MulG1(&sig.A, r1r2)
	D := curve.MulG1(&B, r2)

	r1D := curve.MulG1(&D, r1)
	eABar := curve.MulG1(&ABar, sig.E)
	BBar := curve.AddG1(&r1D, &eABar)

	eTilde, err := curve.RandScalar(rng)
	if err != nil {
		return nil, fmt.Errorf("bbs: create proof: sampling e~: %w", err)
	}
	r1Tilde, err := curve.RandScalar(rng)
	if err != nil {
		return nil, fmt.Errorf("bbs: create proof: sampling r1~: %w", err)
	}
	r3Tilde, err := curve.RandScalar(rng)
	if err != nil {
		return nil, fmt.Errorf("bbs: create proof: sampling r3~: %w", err)
	}
	mTilde := make(map[int]*big.Int, len(hidden))
	for _, j := range hidden {
		mj, err := curve.RandScalar(rng)
		if err != nil {
			return nil, fmt.Errorf("bbs: create proof: sampling m~_%d: %w", j, err)
		}
		mTilde[j] = mj
	}

	eTildeABar := curve.MulG1(&ABar, eTilde)
	r1TildeD := curve.MulG1(&D, r1Tilde)
	T1 := curve.AddG1(&eTildeABar, &r1TildeD)

	t2Points := make([]bls12381.G1Affine, 0, len(hidden)+1)
	t2Scalars := make([]*big.Int, 0, len(hidden)+1)
	t2Points = append(t2Points, pk.H[0])
	t2Scalars = append(t2Scalars, r3Tilde)
	for _, j := range hidden {
		t2Points = append(t2Points, pk.H[j+1])
		t2Scalars = append(t2Scalars, mTilde[j])
	}
	T2, err := curve.MultiScalarMulG1(t2Points, t2Scalars)
	if err != nil {
		return nil, fmt.Errorf("bbs: create proof: computing T2: %w", err)
	}

	c := fiatShamirChallenge(ABar, BBar, D, T1, T2, nonce)

	respE := new(big.Int).Mul(c, sig.E)
	respE.Add(respE, eTilde)
	respE.Mod(respE, curve.Order)

	respR1 := new(big.Int).Mul(c, r1)
	respR1.Add(respR1, r1Tilde)
	respR1.Mod(respR1, curve.Order)

	respR3 := new(big.Int).Mul(c, sig.S)
	respR3.Add(respR3, r3Tilde)
	respR3.Mod(respR3, curve.Order)

	respM := make(map[int]*big.Int, len(hidden))
	for _, j := range hidden {
		v := new(big.Int).Mul(c, messages[j])
		v.Add(v, mTilde[j])
		v.Mod(v, curve.Order)
		respM[j] = v
	}

	revealed := make(map[int]*big.Int, len(revealedIndices))
	for _, i := range revealedIndices {
		revealed[i] = new(big.Int).Set(messages[i])
	}

	return &Proof{
		ABar:   ABar,
		BBar:   BBar,
		D:      D,
		T1:     T1,
		T2:     T2,
		C:      c,
		RespE:  respE,
		RespR1: respR1,
		RespR3: respR3,
		RespM:  respM,
		Revealed: revealed,
	}, nil
}

// VerifyProof reports whether proof is valid for pk under nonce. All four
// checks must hold; any failure short-circuits to false.
//
// Check (c) below deliberately omits subtracting a c-scaled contribution
// from the revealed messages and base generator that textbook BBS+
// verification includes. This is a preserved deviation this implementation
// must remain interoperable with, not an oversight; see DESIGN.md.
func VerifyProof(pk *PublicKey, proof *Proof, nonce []byte) bool {
	expectedC := fiatShamirChallenge(proof.ABar, proof.BBar, proof.D, proof.T1, proof.T2, nonce)
	if expectedC.Cmp(proof.C) != 0 {
		return false
	}

	// (b) resp_e*A_bar + resp_r1*D == T1 + c*B_bar
	respEABar := curve.MulG1(&proof.ABar, proof.RespE)
	respR1D := curve.MulG1(&proof.D, proof.RespR1)
	lhs1 := curve.AddG1(&respEABar, &respR1D)

	cBBar := curve.MulG1(&proof.BBar, proof.C)
	rhs1 := curve.AddG1(&proof.T1, &cBBar)

	if !lhs1.Equal(&rhs1) {
		return false
	}

	// (c) resp_r3*D + Σ_hidden resp_m[j]*H[j+1] == T2
	lhs2Points := make([]bls12381.G1Affine, 0, len(proof.RespM)+1)
	lhs2Scalars := make([]*big.Int, 0, len(proof.RespM)+1)
	lhs2Points = append(lhs2Points, proof.D)
	lhs2Scalars = append(lhs2Scalars, proof.RespR3)
	for j, mj := range proof.RespM {
		if j < 0 || j+1 >= len(pk.H) {
			return false
		}
		lhs2Points = append(lhs2Points, pk.H[j+1])
		lhs2Scalars = append(lhs2Scalars, mj)
	}
	lhs2, err := curve.MultiScalarMulG1(lhs2Points, lhs2Scalars)
	if err != nil {
		return false
	}
	if !lhs2.Equal(&proof.T2) {
		return false
	}

	// (d) pairing(X + resp_e*G2, A_bar) == pairing(G2, F)
	params := curve.DefaultParams()
	fPoints := make([]bls12381.G1Affine, 0, len(proof.Revealed)+len(proof.RespM)+2)
	fScalars := make([]*big.Int, 0, len(proof.Revealed)+len(proof.RespM)+2)
	fPoints = append(fPoints, params.G1, pk.H[0])
	fScalars = append(fScalars, big.NewInt(1), proof.RespR1)
	for i, mi := range proof.Revealed {
		if i < 0 || i+1 >= len(pk.H) {
			return false
		}
		fPoints = append(fPoints, pk.H[i+1])
		fScalars = append(fScalars, mi)
	}
	for j, mj := range proof.RespM {
		fPoints = append(fPoints, pk.H[j+1])
		fScalars = append(fScalars, mj)
	}
	F, err := curve.MultiScalarMulG1(fPoints, fScalars)
	if err != nil {
		return false
	}

	respEG2 := curve.MulG2(&params.G2, proof.RespE)
	xPlusRespEG2 := curve.AddG2(&pk.X, &respEG2)
	negG2 := curve.NegG2(&params.G2)

	ok, err := curve.Pairing(
		[]bls12381.G1Affine{proof.ABar, F},
		[]bls12381.G2Affine{xPlusRespEG2, negG2},
	)
	if err != nil {
		return false
	}
	return ok
}

// fiatShamirChallenge derives the verifier challenge from the serialized
// commitment points and the nonce, per the fixed 96-byte-per-point layout
// in curve.SerializeG1.
func fiatShamirChallenge(aBar, bBar, d, t1, t2 bls12381.G1Affine, nonce []byte) *big.Int {
	h := sha256.New()
	h.Write(curve.SerializeG1(aBar))
	h.Write(curve.SerializeG1(bBar))
	h.Write(curve.SerializeG1(d))
	h.Write(curve.SerializeG1(t1))
	h.Write(curve.SerializeG1(t2))
	h.Write(nonce)
	digest := h.Sum(nil)

	c := new(big.Int).SetBytes(digest)
	c.Mod(c, curve.Order)
	return c
}
