package curve

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// SerializeG1 encodes a normalized G1 point as big-endian x (48 bytes)
// concatenated with big-endian y (48 bytes). This is deliberately the
// uncompressed x‖y form, not gnark-crypto's own compressed Marshal(); the
// two must not be confused, since the Fiat-Shamir hash is only
// interoperable if every participant serializes this way.
func SerializeG1(p bls12381.G1Affine) []byte {
	xBytes := p.X.Bytes()
	yBytes := p.Y.Bytes()
	out := make([]byte, 0, len(xBytes)+len(yBytes))
	out = append(out, xBytes[:]...)
	out = append(out, yBytes[:]...)
	return out
}

// SerializeG2 encodes a G2 point with gnark-crypto's own Marshal(), the
// compressed form, not the uncompressed x‖y layout SerializeG1 uses.
// Exposed for callers that want to persist a public key
// outside the library; not used by the Fiat-Shamir hash (which only ever
// serializes G1 points).
func SerializeG2(p bls12381.G2Affine) []byte {
	return p.Marshal()
}
