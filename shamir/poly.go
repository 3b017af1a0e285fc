// Package shamir provides the scalar-field building blocks Shamir secret
// sharing is built from: random polynomial generation and Horner evaluation
// mod the BLS12-381 subgroup order. It has no notion of parties or shares;
// the dkg and threshold packages assemble those on top of it.
package shamir

import (
	"io"
	"math/big"

	"github.com/anupsv/bbsplus-threshold/curve"
)

// CreateRandomPolynomial returns degree+1 uniformly random coefficients in
// Fr, reading randomness from rng. coeffs[0] is the secret (the constant
// term); the remaining entries are the higher-degree coefficients.
func CreateRandomPolynomial(degree int, rng io.Reader) ([]*big.Int, error) {
	if degree < 0 {
		return nil, nil
	}
	coeffs := make([]*big.Int, degree+1)
	for i := range coeffs {
		c, err := curve.RandScalar(rng)
		if err != nil {
			return nil, err
		}
		coeffs[i] = c
	}
	return coeffs, nil
}

// Evaluate computes coeffs(x) mod q using Horner's rule: iterating from the
// highest-degree coefficient down, result = result*x + coeff. An empty
// coefficient list evaluates to zero.
func Evaluate(coeffs []*big.Int, x *big.Int) *big.Int {
	result := big.NewInt(0)
	if len(coeffs) == 0 {
		return result
	}
	for i := len(coeffs) - 1; i >= 0; i-- {
		result.Mul(result, x)
		result.Add(result, coeffs[i])
		result.Mod(result, curve.Order)
	}
	return result
}
