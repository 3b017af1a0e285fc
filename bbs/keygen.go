package bbs

import (
	"fmt"
	"io"

	"github.com/anupsv/bbsplus-threshold/curve"
)

// GenerateKeyPair samples a fresh monolithic BBS+ key pair for signing
// messages vectors of length l, deriving the H-vector deterministically via
// curve.GenerateHVector and the secret scalar from rng.
func GenerateKeyPair(l int, rng io.Reader) (*PrivateKey, *PublicKey, error) {
	h, err := curve.GenerateHVector(l)
	if err != nil {
		return nil, nil, fmt.Errorf("bbs: generating H-vector: %w", err)
	}

	x, err := curve.RandNonzeroScalar(rng)
	if err != nil {
		return nil, nil, fmt.Errorf("bbs: sampling secret key: %w", err)
	}

	params := curve.DefaultParams()
	X := curve.MulG2(&params.G2, x)

	sk := &PrivateKey{H: h, X: x}
	pk := &PublicKey{H: h, X: X}
	return sk, pk, nil
}
