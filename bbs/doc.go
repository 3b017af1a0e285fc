// Package bbs provides the BBS+ credential primitives a holder and verifier
// actually interact with, built on the curve package.
//
// A minimal monolithic round-trip:
//
//	sk, pk, err := bbs.GenerateKeyPair(3, rand.Reader)
//	messages := []*big.Int{big.NewInt(10), big.NewInt(20), big.NewInt(30)}
//	sig, err := bbs.Sign(sk, messages, rand.Reader)
//	ok := bbs.Verify(pk, messages, sig) // true
//
// Selective disclosure, revealing only messages[0] and messages[2]:
//
//	proof, err := bbs.CreateProof(pk, sig, messages, []int{0, 2}, bbs.DefaultNonce, rand.Reader)
//	ok := bbs.VerifyProof(pk, proof, bbs.DefaultNonce) // true
//
// The threshold variant replaces GenerateKeyPair and Sign with a DKG run and
// a distributed signing session: dkg.Run produces per-server shares and a
// master public key, threshold.GenerateShares turns a quorum of those
// shares plus the reconstructed master secret into SignatureShares, and
// threshold.Reconstruct folds them into a threshold.FinalSignature whose A,
// E and S, copied into a Signature, this package's Verify accepts under the
// DKG's master public key.
package bbs
