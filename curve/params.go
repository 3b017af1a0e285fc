package curve

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// Order is the order of the BLS12-381 r-order subgroup. All scalar
// arithmetic in this module wraps modulo Order.
var Order, _ = new(big.Int).SetString(
	"52435875175126190479447740508185965837690552500527637822603658699938581184513", 10)

// Domain separation tags for IETF hash-to-curve (RFC 9380), used when this
// module needs a generic hash-to-G1 point outside of the H-vector derivation
// (which uses its own DST, see HVectorDST in hash.go).
const (
	DST_G1 = "BBS_BLS12381G1_XMD:SHA-256_SSWU_RO_"
	DST_G2 = "BBS_BLS12381G2_XMD:SHA-256_SSWU_RO_"
)

// Params bundles the process-wide curve configuration: the standard
// generators and the subgroup order, as a single value. Every package in
// this module obtains it by calling DefaultParams; no function takes a
// *Params argument, so alternate parameter sets cannot be substituted.
type Params struct {
	G1    bls12381.G1Affine
	G2    bls12381.G2Affine
	Order *big.Int
}

// DefaultParams returns the standard BLS12-381 generators and subgroup order.
func DefaultParams() *Params {
	_, _, g1, g2 := bls12381.Generators()
	return &Params{G1: g1, G2: g2, Order: Order}
}
