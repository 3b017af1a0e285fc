package threshold

import (
	"fmt"
	"io"
	"math/big"
	"sort"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/anupsv/bbsplus-threshold/bbserr"
	"github.com/anupsv/bbsplus-threshold/curve"
)

// session holds the per-signing-attempt scratch state: fresh nonces, the
// zero-sum masks, and the pairwise multiplicative shares. None of it may
// outlive the signing attempt that produced it, so GenerateShares defers
// wipe() on the session immediately after it is built.
type session struct {
	serverIDs []int
	e         map[int]*big.Int
	s         map[int]*big.Int
	r         map[int]*big.Int
	alpha     map[int]*big.Int
	beta      map[int]*big.Int
	c         map[int]map[int]*big.Int
	d         map[int]map[int]*big.Int
}

// wipe zeroes every scalar the session holds, the idiomatic Go analogue of
// the requirement that session-scoped nonces and masks be destroyed with
// their session rather than left to the garbage collector's timing.
func (sess *session) wipe() {
	zeroMap := func(m map[int]*big.Int) {
		for k := range m {
			if m[k] != nil {
				m[k].SetInt64(0)
			}
		}
	}
	zeroMap(sess.e)
	zeroMap(sess.s)
	zeroMap(sess.r)
	zeroMap(sess.alpha)
	zeroMap(sess.beta)
	for i := range sess.c {
		zeroMap(sess.c[i])
	}
	for i := range sess.d {
		zeroMap(sess.d[i])
	}
}

// GenerateShares runs the distributed-signer procedure: it samples fresh
// per-server nonces and zero-sum masks, derives pairwise multiplicative
// shares simulating a secure two-party multiplication protocol, and emits
// one SignatureShare per server in ascending server ID order.
//
// masterSecretX is a simulation artefact, not a production input: the
// correction step in step 7 uses it to patch the first server's share so
// the output reconstructs correctly, standing in for a real MtA/OT protocol
// this in-process simulation doesn't implement. Removing the correction, or
// supplying it outside a controlled simulation, produces shares that do not
// reconstruct to a valid signature.
func GenerateShares(
	servers map[int]*big.Int,
	messages []*big.Int,
	h []bls12381.G1Affine,
	masterSecretX *big.Int,
	rng io.Reader,
) ([]SignatureShare, error) {
	if len(servers) == 0 {
		return nil, fmt.Errorf("threshold: signing servers: %w", bbserr.ErrEmptyInput)
	}
	if len(h) != len(messages)+1 {
		return nil, fmt.Errorf("threshold: len(H)=%d, len(messages)+1=%d: %w", len(h), len(messages)+1, bbserr.ErrLengthMismatch)
	}

	serverIDs := make([]int, 0, len(servers))
	for id := range servers {
		serverIDs = append(serverIDs, id)
	}
	sort.Ints(serverIDs)

	sess, err := newSession(serverIDs, rng)
	if err != nil {
		return nil, err
	}
	defer sess.wipe()

	e := big.NewInt(0)
	s := big.NewInt(0)
	for _, id := range serverIDs {
		e.Add(e, sess.e[id])
		s.Add(s, sess.s[id])
	}
	e.Mod(e, curve.Order)
	s.Mod(s, curve.Order)

	params := curve.DefaultParams()
	bPoints := make([]bls12381.G1Affine, 0, len(messages)+2)
	bScalars := make([]*big.Int, 0, len(messages)+2)
	bPoints = append(bPoints, params.G1, h[0])
	bScalars = append(bScalars, big.NewInt(1), s)
	for k, m := range messages {
		bPoints = append(bPoints, h[k+1])
		bScalars = append(bScalars, m)
	}
	B, err := curve.MultiScalarMulG1(bPoints, bScalars)
	if err != nil {
		return nil, fmt.Errorf("threshold: computing commitment base B: %w", err)
	}

	for _, i := range serverIDs {
		for _, j := range serverIDs {
			if i == j {
				continue
			}
			valI := new(big.Int).Add(servers[i], sess.alpha[i])
			valI.Mod(valI, curve.Order)
			valJ := new(big.Int).Add(sess.r[j], sess.beta[j])
			valJ.Mod(valJ, curve.Order)
			product := new(big.Int).Mul(valI, valJ)
			product.Mod(product, curve.Order)

			cij, err := curve.RandScalar(rng)
			if err != nil {
				return nil, fmt.Errorf("threshold: sampling c_%d%d: %w", i, j, err)
			}
			dji := new(big.Int).Sub(product, cij)
			dji.Mod(dji, curve.Order)

			sess.c[i][j] = cij
			sess.d[j][i] = dji
		}
	}

	shares := make([]SignatureShare, 0, len(serverIDs))
	for _, i := range serverIDs {
		R := curve.MulG1(&B, sess.r[i])

		term1 := new(big.Int).Add(sess.r[i], sess.beta[i])
		term1.Mod(term1, curve.Order)

		term2 := new(big.Int).Add(sess.e[i], servers[i])
		term2.Add(term2, sess.alpha[i])
		term2.Mod(term2, curve.Order)

		sumOfMulShares := big.NewInt(0)
		for _, j := range serverIDs {
			if i == j {
				continue
			}
			sumOfMulShares.Add(sumOfMulShares, sess.c[i][j])
			sumOfMulShares.Add(sumOfMulShares, sess.d[i][j])
			sumOfMulShares.Mod(sumOfMulShares, curve.Order)
		}

		u := new(big.Int).Add(term1, term2)
		u.Add(u, sumOfMulShares)
		u.Mod(u, curve.Order)

		shares = append(shares, SignatureShare{
			ServerID: i,
			E:        new(big.Int).Set(e),
			S:        new(big.Int).Set(s),
			R:        R,
			U:        u,
		})
	}

	applySimulationCorrection(shares, sess, serverIDs, masterSecretX, e)

	return shares, nil
}

// applySimulationCorrection computes the u-sum a genuine distributed
// signature must have had, (x+e)·Σrᵢ, and folds the difference from the
// actually emitted u-sum into the first server's share.
func applySimulationCorrection(shares []SignatureShare, sess *session, serverIDs []int, masterSecretX, e *big.Int) {
	actualUSum := big.NewInt(0)
	for _, share := range shares {
		actualUSum.Add(actualUSum, share.U)
	}
	actualUSum.Mod(actualUSum, curve.Order)

	rSum := big.NewInt(0)
	for _, id := range serverIDs {
		rSum.Add(rSum, sess.r[id])
	}
	rSum.Mod(rSum, curve.Order)

	expectedUSum := new(big.Int).Add(masterSecretX, e)
	expectedUSum.Mul(expectedUSum, rSum)
	expectedUSum.Mod(expectedUSum, curve.Order)

	delta := new(big.Int).Sub(expectedUSum, actualUSum)
	delta.Mod(delta, curve.Order)

	shares[0].U.Add(shares[0].U, delta)
	shares[0].U.Mod(shares[0].U, curve.Order)
}

func newSession(serverIDs []int, rng io.Reader) (*session, error) {
	sess := &session{
		serverIDs: serverIDs,
		e:         make(map[int]*big.Int, len(serverIDs)),
		s:         make(map[int]*big.Int, len(serverIDs)),
		r:         make(map[int]*big.Int, len(serverIDs)),
		alpha:     make(map[int]*big.Int, len(serverIDs)),
		beta:      make(map[int]*big.Int, len(serverIDs)),
		c:         make(map[int]map[int]*big.Int, len(serverIDs)),
		d:         make(map[int]map[int]*big.Int, len(serverIDs)),
	}
	for _, id := range serverIDs {
		sess.c[id] = make(map[int]*big.Int, len(serverIDs))
		sess.d[id] = make(map[int]*big.Int, len(serverIDs))
	}

	for _, id := range serverIDs {
		var err error
		if sess.e[id], err = curve.RandScalar(rng); err != nil {
			return nil, fmt.Errorf("threshold: sampling e_%d: %w", id, err)
		}
		if sess.s[id], err = curve.RandScalar(rng); err != nil {
			return nil, fmt.Errorf("threshold: sampling s_%d: %w", id, err)
		}
		if sess.r[id], err = curve.RandScalar(rng); err != nil {
			return nil, fmt.Errorf("threshold: sampling r_%d: %w", id, err)
		}
	}

	alphaSum := big.NewInt(0)
	betaSum := big.NewInt(0)
	for _, id := range serverIDs[:len(serverIDs)-1] {
		a, err := curve.RandScalar(rng)
		if err != nil {
			return nil, fmt.Errorf("threshold: sampling alpha_%d: %w", id, err)
		}
		b, err := curve.RandScalar(rng)
		if err != nil {
			return nil, fmt.Errorf("threshold: sampling beta_%d: %w", id, err)
		}
		sess.alpha[id] = a
		sess.beta[id] = b
		alphaSum.Add(alphaSum, a)
		alphaSum.Mod(alphaSum, curve.Order)
		betaSum.Add(betaSum, b)
		betaSum.Mod(betaSum, curve.Order)
	}
	lastID := serverIDs[len(serverIDs)-1]
	sess.alpha[lastID] = new(big.Int).Sub(curve.Order, alphaSum)
	sess.alpha[lastID].Mod(sess.alpha[lastID], curve.Order)
	sess.beta[lastID] = new(big.Int).Sub(curve.Order, betaSum)
	sess.beta[lastID].Mod(sess.beta[lastID], curve.Order)

	return sess, nil
}
