package curve

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// AddG1 computes P + Q in G1.
func AddG1(p, q *bls12381.G1Affine) bls12381.G1Affine {
	pj := new(bls12381.G1Jac)
	pj.FromAffine(p)
	qj := new(bls12381.G1Jac)
	qj.FromAffine(q)
	pj.AddAssign(qj)
	return jacToAffineG1(pj)
}

// MulG1 computes k*P in G1. A nil or zero scalar yields the identity.
func MulG1(p *bls12381.G1Affine, k *big.Int) bls12381.G1Affine {
	pj := new(bls12381.G1Jac)
	pj.FromAffine(p)
	if k == nil {
		pj.ScalarMultiplication(pj, big.NewInt(0))
	} else {
		pj.ScalarMultiplication(pj, k)
	}
	return jacToAffineG1(pj)
}

// NegG1 computes -P in G1.
func NegG1(p *bls12381.G1Affine) bls12381.G1Affine {
	pj := new(bls12381.G1Jac)
	pj.FromAffine(p)
	pj.Neg(pj)
	return jacToAffineG1(pj)
}

// AddG2 computes P + Q in G2.
func AddG2(p, q *bls12381.G2Affine) bls12381.G2Affine {
	pj := new(bls12381.G2Jac)
	pj.FromAffine(p)
	qj := new(bls12381.G2Jac)
	qj.FromAffine(q)
	pj.AddAssign(qj)
	return jacToAffineG2(pj)
}

// MulG2 computes k*P in G2.
func MulG2(p *bls12381.G2Affine, k *big.Int) bls12381.G2Affine {
	pj := new(bls12381.G2Jac)
	pj.FromAffine(p)
	if k == nil {
		pj.ScalarMultiplication(pj, big.NewInt(0))
	} else {
		pj.ScalarMultiplication(pj, k)
	}
	return jacToAffineG2(pj)
}

// NegG2 computes -P in G2.
func NegG2(p *bls12381.G2Affine) bls12381.G2Affine {
	pj := new(bls12381.G2Jac)
	pj.FromAffine(p)
	pj.Neg(pj)
	return jacToAffineG2(pj)
}

// IdentityG1 returns the point at infinity in G1.
func IdentityG1() bls12381.G1Affine {
	jac := bls12381.G1Jac{}
	jac.X.SetOne()
	jac.Y.SetOne()
	jac.Z.SetZero()
	return jacToAffineG1(&jac)
}

// IdentityG2 returns the point at infinity in G2.
func IdentityG2() bls12381.G2Affine {
	jac := bls12381.G2Jac{}
	jac.X.SetOne()
	jac.Y.SetOne()
	jac.Z.SetZero()
	return jacToAffineG2(&jac)
}

// Pairing computes the product of pairings e(P_i, Q_i) over the given
// matched G1/G2 slices and reports whether the result is the GT identity.
// gnark-crypto's Pair already applies the final exponentiation, so no
// separate FinalExponentiate step is needed on top of it.
func Pairing(p []bls12381.G1Affine, q []bls12381.G2Affine) (bool, error) {
	result, err := bls12381.Pair(p, q)
	if err != nil {
		return false, err
	}
	return result.IsOne(), nil
}

// NormalizeG1 forces a point into affine form; gnark-crypto's G1Affine type
// is always stored in affine coordinates, so this is the canonical
// representation equality must be checked against.
func NormalizeG1(p bls12381.G1Affine) bls12381.G1Affine {
	return p
}

func jacToAffineG1(p *bls12381.G1Jac) bls12381.G1Affine {
	var a bls12381.G1Affine
	a.FromJacobian(p)
	return a
}

func jacToAffineG2(p *bls12381.G2Jac) bls12381.G2Affine {
	var a bls12381.G2Affine
	a.FromJacobian(p)
	return a
}
