// Package lagrange implements Lagrange basis evaluation and interpolation
// mod the BLS12-381 subgroup order, both for scalars (recovering a Shamir
// secret) and for G2 points (recovering the DKG's master public key and
// checking per-party public share consistency).
package lagrange

import (
	"fmt"
	"math/big"
	"sort"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/anupsv/bbsplus-threshold/bbserr"
	"github.com/anupsv/bbsplus-threshold/curve"
)

// Basis computes L_i(xEval) = Π_{j≠i} (xEval - xs[j]) / (xs[i] - xs[j]) mod
// q, for the i-th sample point in xs. Another entry of xs equal to xs[i]
// drives the denominator to zero and is reported as bbserr.ErrInconsistent,
// since the only caller that can produce duplicate points is a
// tampered/inconsistent share set.
func Basis(xs []*big.Int, i int, xEval *big.Int) (*big.Int, error) {
	xi := xs[i]
	numerator := big.NewInt(1)
	denominator := big.NewInt(1)

	tmp := curve.GetBigInt()
	defer curve.PutBigInt(tmp)
	for j, xj := range xs {
		if j == i {
			continue
		}
		tmp.Sub(xEval, xj)
		numerator.Mul(numerator, tmp)
		numerator.Mod(numerator, curve.Order)

		tmp.Sub(xi, xj)
		denominator.Mul(denominator, tmp)
		denominator.Mod(denominator, curve.Order)
	}

	invDenom, err := curve.ModInverse(denominator)
	if err != nil {
		return nil, fmt.Errorf("lagrange: basis %d: duplicate sample point: %w", i, bbserr.ErrInconsistent)
	}

	result := new(big.Int).Mul(numerator, invDenom)
	result.Mod(result, curve.Order)
	return result, nil
}

func intKeysScalars(points map[int]*big.Int) []int {
	keys := make([]int, 0, len(points))
	for k := range points {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func intKeysG2(points map[int]bls12381.G2Affine) []int {
	keys := make([]int, 0, len(points))
	for k := range points {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// InterpolateScalars computes Σ yᵢ·L_i(xEval) mod q over the given
// x→y point set. xEval=0 is the canonical case for recovering a Shamir
// secret p(0).
func InterpolateScalars(points map[int]*big.Int, xEval *big.Int) (*big.Int, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("lagrange: interpolate scalars: %w", bbserr.ErrEmptyInput)
	}

	keys := intKeysScalars(points)
	xs := make([]*big.Int, len(keys))
	for idx, k := range keys {
		xs[idx] = big.NewInt(int64(k))
	}

	result := big.NewInt(0)
	for idx, k := range keys {
		basisVal, err := Basis(xs, idx, xEval)
		if err != nil {
			return nil, err
		}
		term := new(big.Int).Mul(points[k], basisVal)
		term.Mod(term, curve.Order)
		result.Add(result, term)
		result.Mod(result, curve.Order)
	}
	return result, nil
}

// InterpolateG2Points computes Σ L_i(xEval)·Yᵢ in G2, starting from the
// identity, over the given x→point set.
func InterpolateG2Points(points map[int]bls12381.G2Affine, xEval *big.Int) (bls12381.G2Affine, error) {
	if len(points) == 0 {
		return bls12381.G2Affine{}, fmt.Errorf("lagrange: interpolate G2 points: %w", bbserr.ErrEmptyInput)
	}

	keys := intKeysG2(points)
	xs := make([]*big.Int, len(keys))
	for idx, k := range keys {
		xs[idx] = big.NewInt(int64(k))
	}

	result := curve.IdentityG2()
	for idx, k := range keys {
		basisVal, err := Basis(xs, idx, xEval)
		if err != nil {
			return bls12381.G2Affine{}, err
		}
		p := points[k]
		term := curve.MulG2(&p, basisVal)
		result = curve.AddG2(&result, &term)
	}
	return result, nil
}
