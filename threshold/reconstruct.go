package threshold

import (
	"fmt"
	"math/big"

	"github.com/anupsv/bbsplus-threshold/bbserr"
	"github.com/anupsv/bbsplus-threshold/curve"
)

// Reconstruct folds a set of per-server signature shares into the canonical
// BBS+ signature they encode. It requires every share to agree on the
// session's e and s nonces, and fails if the aggregated u-values happen to
// sum to zero (the aggregate would then have no modular inverse).
func Reconstruct(shares []SignatureShare) (*FinalSignature, error) {
	if len(shares) == 0 {
		return nil, fmt.Errorf("threshold: reconstruct: %w", bbserr.ErrEmptyInput)
	}

	refE := shares[0].E
	refS := shares[0].S
	for _, share := range shares[1:] {
		if share.E.Cmp(refE) != 0 || share.S.Cmp(refS) != 0 {
			return nil, fmt.Errorf(
				"threshold: server %d disagrees with server %d on (e,s): %w",
				share.ServerID, shares[0].ServerID, bbserr.ErrInconsistent,
			)
		}
	}

	rSum := curve.IdentityG1()
	uSum := big.NewInt(0)
	for _, share := range shares {
		rSum = curve.AddG1(&rSum, &share.R)
		uSum.Add(uSum, share.U)
	}
	uSum.Mod(uSum, curve.Order)

	if uSum.Sign() == 0 {
		return nil, fmt.Errorf("threshold: reconstruct: %w", bbserr.ErrZeroUSum)
	}

	uSumInv, err := curve.ModInverse(uSum)
	if err != nil {
		return nil, fmt.Errorf("threshold: reconstruct: %w", bbserr.ErrModInverseOfZero)
	}

	A := curve.MulG1(&rSum, uSumInv)

	return &FinalSignature{
		A: A,
		E: new(big.Int).Set(refE),
		S: new(big.Int).Set(refS),
	}, nil
}
