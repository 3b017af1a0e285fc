package curve

import (
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// MultiScalarMulG1 computes sum(points[i] * scalars[i]) in G1. Points
// paired with a zero scalar, and points at infinity, are skipped rather
// than multiplied, since gnark-crypto's ScalarMultiplication is not
// guaranteed to handle either cleanly.
func MultiScalarMulG1(points []bls12381.G1Affine, scalars []*big.Int) (bls12381.G1Affine, error) {
	if len(points) != len(scalars) {
		return bls12381.G1Affine{}, fmt.Errorf("curve: mismatched points/scalars length: %d vs %d", len(points), len(scalars))
	}

	result := GetG1Jac()
	defer PutG1Jac(result)
	result.X.SetOne()
	result.Y.SetOne()
	result.Z.SetZero() // identity element in Jacobian coordinates

	tmp := GetG1Jac()
	defer PutG1Jac(tmp)

	for i, p := range points {
		if scalars[i] == nil {
			return bls12381.G1Affine{}, fmt.Errorf("curve: nil scalar at index %d", i)
		}
		if scalars[i].Sign() == 0 || p.IsInfinity() {
			continue
		}
		tmp.FromAffine(&p)
		tmp.ScalarMultiplication(tmp, scalars[i])
		result.AddAssign(tmp)
	}

	return jacToAffineG1(result), nil
}
