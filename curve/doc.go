// Package curve is the facade over BLS12-381 group, field, and pairing
// arithmetic consumed by every other package in this module.
//
// It wraps github.com/consensys/gnark-crypto/ecc/bls12-381 with the handful
// of named operations the threshold BBS+ protocol needs: point addition and
// scalar multiplication in G1/G2, the bilinear pairing, hash-to-G1, affine
// normalization, scalar sampling, and modular inversion. Other packages
// import gnark-crypto only for its point types and their Equal method; all
// group and pairing arithmetic goes through this package, and all
// field/group math is delegated to the curve library instead of
// reimplemented here.
package curve
