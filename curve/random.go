package curve

import (
	"fmt"
	"io"
	"math/big"
)

// RandScalar draws a uniformly random element of Fr using rejection
// sampling against Order, reading from rng (crypto/rand.Reader in
// production, a seeded reader in tests). Rejection sampling (rather than
// sample-wide-then-reduce) avoids the small modulo bias a reduction would
// introduce.
func RandScalar(rng io.Reader) (*big.Int, error) {
	byteLen := (Order.BitLen() + 7) / 8
	mask := byte(0xFF)
	if bits := Order.BitLen() % 8; bits > 0 {
		mask = byte(1<<bits) - 1
	}
	buf := make([]byte, byteLen)

	for {
		if _, err := io.ReadFull(rng, buf); err != nil {
			return nil, fmt.Errorf("curve: failed to read randomness: %w", err)
		}
		buf[0] &= mask
		n := new(big.Int).SetBytes(buf)
		if n.Cmp(Order) < 0 {
			return n, nil
		}
	}
}

// RandNonzeroScalar draws a uniformly random nonzero element of Fr.
func RandNonzeroScalar(rng io.Reader) (*big.Int, error) {
	for {
		n, err := RandScalar(rng)
		if err != nil {
			return nil, err
		}
		if n.Sign() != 0 {
			return n, nil
		}
	}
}

// ModInverse computes a^-1 mod Order, failing when a is congruent to 0.
func ModInverse(a *big.Int) (*big.Int, error) {
	reduced := new(big.Int).Mod(a, Order)
	if reduced.Sign() == 0 {
		return nil, fmt.Errorf("curve: modular inverse of zero")
	}
	inv := new(big.Int).ModInverse(reduced, Order)
	if inv == nil {
		return nil, fmt.Errorf("curve: modular inverse of zero")
	}
	return inv, nil
}
