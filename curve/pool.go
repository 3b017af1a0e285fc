package curve

import (
	"math/big"
	"sync"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// scratchPool backs the temporary big.Int and G1Jac values that
// MultiScalarMulG1 and lagrange.Basis allocate on every call. Proof
// creation and verification each invoke MultiScalarMulG1 several times per
// call, so pooling the Jacobian accumulator and per-term scratch point
// avoids reallocating them on every signature and proof operation.
type scratchPool struct {
	bigInts sync.Pool
	g1Jacs  sync.Pool
}

var defaultScratchPool = &scratchPool{
	bigInts: sync.Pool{New: func() interface{} { return new(big.Int) }},
	g1Jacs:  sync.Pool{New: func() interface{} { return new(bls12381.G1Jac) }},
}

// GetBigInt returns a zeroed *big.Int from the pool.
func GetBigInt() *big.Int {
	return defaultScratchPool.bigInts.Get().(*big.Int).SetInt64(0)
}

// PutBigInt returns a *big.Int to the pool for reuse.
func PutBigInt(v *big.Int) {
	if v != nil {
		defaultScratchPool.bigInts.Put(v)
	}
}

// GetG1Jac returns a scratch *bls12381.G1Jac from the pool. Callers must
// set it (e.g. via FromAffine) before reading it back out.
func GetG1Jac() *bls12381.G1Jac {
	return defaultScratchPool.g1Jacs.Get().(*bls12381.G1Jac)
}

// PutG1Jac returns a *bls12381.G1Jac to the pool for reuse.
func PutG1Jac(v *bls12381.G1Jac) {
	if v != nil {
		defaultScratchPool.g1Jacs.Put(v)
	}
}
