// Package dkg runs the joint-polynomial distributed key generation protocol:
// n parties each contribute a random degree-(t-1) polynomial, the parties'
// contributions are summed into per-party shares of a single master secret,
// and the resulting public shares are checked for mutual consistency in G2
// before the master public key is released. The whole exchange is simulated
// in-process, one party at a time, standing in for the broadcast channel a
// real deployment would use between independent servers.
package dkg

import (
	"fmt"
	"io"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/anupsv/bbsplus-threshold/bbserr"
	"github.com/anupsv/bbsplus-threshold/curve"
	"github.com/anupsv/bbsplus-threshold/lagrange"
	"github.com/anupsv/bbsplus-threshold/shamir"
)

// Result is the output of a completed DKG run: each party's private share of
// the master secret and the master public key in G2.
type Result struct {
	PrivateShares map[int]*big.Int
	MasterPublic  bls12381.G2Affine
}

// Run executes the single-round joint-polynomial protocol for n parties with
// reconstruction threshold t, reading all randomness from rng. It fails with
// bbserr.ErrThresholdTooHigh if t > n.
//
// Consistency is checked using the first t public shares as the defining
// set: for every remaining party i in (t, n], the G2-interpolated value of
// the joint polynomial at x=i must equal that party's published share.
func Run(n, t int, rng io.Reader) (*Result, error) {
	if t > n {
		return nil, fmt.Errorf("dkg: t=%d n=%d: %w", t, n, bbserr.ErrThresholdTooHigh)
	}
	if n <= 0 || t <= 0 {
		return nil, fmt.Errorf("dkg: n and t must be positive: %w", bbserr.ErrEmptyInput)
	}

	params := curve.DefaultParams()

	// Step 1: each party i samples its own degree-(t-1) polynomial.
	partyPolynomials := make(map[int][]*big.Int, n)
	for i := 1; i <= n; i++ {
		coeffs, err := shamir.CreateRandomPolynomial(t-1, rng)
		if err != nil {
			return nil, fmt.Errorf("dkg: sampling polynomial for party %d: %w", i, err)
		}
		partyPolynomials[i] = coeffs
	}

	// Step 2: each party i evaluates its polynomial at every j and "sends"
	// the result to party j.
	pointsReceivedBy := make(map[int][]*big.Int, n)
	for j := 1; j <= n; j++ {
		pointsReceivedBy[j] = make([]*big.Int, 0, n)
	}
	for i := 1; i <= n; i++ {
		coeffs := partyPolynomials[i]
		for j := 1; j <= n; j++ {
			pointsReceivedBy[j] = append(pointsReceivedBy[j], shamir.Evaluate(coeffs, big.NewInt(int64(j))))
		}
	}

	// Step 3: each party j sums its received points into its private share
	// and publishes the corresponding G2 public share.
	privateShares := make(map[int]*big.Int, n)
	publicShares := make(map[int]bls12381.G2Affine, n)
	for j := 1; j <= n; j++ {
		sum := big.NewInt(0)
		for _, v := range pointsReceivedBy[j] {
			sum.Add(sum, v)
			sum.Mod(sum, curve.Order)
		}
		privateShares[j] = sum
		publicShares[j] = curve.MulG2(&params.G2, sum)
	}

	if err := checkConsistency(n, t, publicShares); err != nil {
		return nil, err
	}

	defining := make(map[int]bls12381.G2Affine, t)
	for i := 1; i <= t; i++ {
		defining[i] = publicShares[i]
	}
	masterPublic, err := lagrange.InterpolateG2Points(defining, big.NewInt(0))
	if err != nil {
		return nil, fmt.Errorf("dkg: computing master public key: %w", err)
	}

	return &Result{PrivateShares: privateShares, MasterPublic: masterPublic}, nil
}

// CheckConsistency re-runs the G2 consistency check against an already
// published set of public shares, without needing the private shares that
// produced them. It is exported separately from Run so callers can re-verify
// a tampered share set (see the S4 scenario) without re-running the whole
// protocol.
func CheckConsistency(n, t int, publicShares map[int]bls12381.G2Affine) error {
	return checkConsistency(n, t, publicShares)
}

func checkConsistency(n, t int, publicShares map[int]bls12381.G2Affine) error {
	if n < t {
		return nil
	}

	defining := make(map[int]bls12381.G2Affine, t)
	for i := 1; i <= t; i++ {
		defining[i] = publicShares[i]
	}

	for i := t + 1; i <= n; i++ {
		interpolated, err := lagrange.InterpolateG2Points(defining, big.NewInt(int64(i)))
		if err != nil {
			return fmt.Errorf("dkg: interpolating expected share for party %d: %w", i, err)
		}
		actual := publicShares[i]
		if !interpolated.Equal(&actual) {
			return fmt.Errorf("dkg: party %d's public share does not match the joint polynomial: %w", i, bbserr.ErrInconsistentDKG)
		}
	}
	return nil
}
