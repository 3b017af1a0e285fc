package bbs

import (
	"bytes"
	"crypto/sha256"
	"math/big"
	"testing"

	"github.com/anupsv/bbsplus-threshold/curve"
)

func seededReader(seed byte) *bytes.Reader {
	buf := make([]byte, 1<<17)
	for i := range buf {
		buf[i] = byte(int(seed) + i*29 + 11)
	}
	return bytes.NewReader(buf)
}

func TestSignVerifyHappyPath(t *testing.T) {
	sk, pk, err := GenerateKeyPair(3, seededReader(1))
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	messages := []*big.Int{big.NewInt(10), big.NewInt(20), big.NewInt(30)}

	sig, err := Sign(sk, messages, seededReader(2))
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if !Verify(pk, messages, sig) {
		t.Fatal("expected signature to verify")
	}
}

func TestVerifyRejectsTamperedMessage(t *testing.T) {
	sk, pk, err := GenerateKeyPair(2, seededReader(3))
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	messages := []*big.Int{big.NewInt(1), big.NewInt(2)}
	sig, err := Sign(sk, messages, seededReader(4))
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	tampered := []*big.Int{big.NewInt(1), big.NewInt(3)}
	if Verify(pk, tampered, sig) {
		t.Fatal("expected verify to reject tampered message")
	}
}

func TestVerifyRejectsTamperedSignatureFields(t *testing.T) {
	sk, pk, err := GenerateKeyPair(1, seededReader(5))
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	messages := []*big.Int{big.NewInt(42)}
	sig, err := Sign(sk, messages, seededReader(6))
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	tamperedE := &Signature{A: sig.A, E: new(big.Int).Add(sig.E, big.NewInt(1)), S: sig.S}
	if Verify(pk, messages, tamperedE) {
		t.Fatal("expected verify to reject tampered e")
	}

	tamperedS := &Signature{A: sig.A, E: sig.E, S: new(big.Int).Add(sig.S, big.NewInt(1))}
	if Verify(pk, messages, tamperedS) {
		t.Fatal("expected verify to reject tampered s")
	}
}

func TestCreateProofVerifyProofSelectiveDisclosure(t *testing.T) {
	sk, pk, err := GenerateKeyPair(4, seededReader(7))
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	messages := []*big.Int{big.NewInt(101), big.NewInt(102), big.NewInt(103), big.NewInt(104)}
	sig, err := Sign(sk, messages, seededReader(8))
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	proof, err := CreateProof(pk, sig, messages, []int{0, 3}, DefaultNonce, seededReader(9))
	if err != nil {
		t.Fatalf("CreateProof: %v", err)
	}
	if !VerifyProof(pk, proof, DefaultNonce) {
		t.Fatal("expected selective-disclosure proof to verify")
	}
	if len(proof.Revealed) != 2 || len(proof.RespM) != 2 {
		t.Fatalf("expected 2 revealed and 2 hidden entries, got %d and %d", len(proof.Revealed), len(proof.RespM))
	}
}

func TestCreateProofFullyRevealedAndFullyHidden(t *testing.T) {
	sk, pk, err := GenerateKeyPair(2, seededReader(10))
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	messages := []*big.Int{big.NewInt(7), big.NewInt(8)}
	sig, err := Sign(sk, messages, seededReader(11))
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	allRevealed, err := CreateProof(pk, sig, messages, []int{0, 1}, DefaultNonce, seededReader(12))
	if err != nil {
		t.Fatalf("CreateProof (all revealed): %v", err)
	}
	if !VerifyProof(pk, allRevealed, DefaultNonce) {
		t.Fatal("expected fully-revealed proof to verify")
	}

	noneRevealed, err := CreateProof(pk, sig, messages, nil, DefaultNonce, seededReader(13))
	if err != nil {
		t.Fatalf("CreateProof (none revealed): %v", err)
	}
	if !VerifyProof(pk, noneRevealed, DefaultNonce) {
		t.Fatal("expected fully-hidden proof to verify")
	}
}

func TestVerifyProofRejectsTamperedChallenge(t *testing.T) {
	sk, pk, err := GenerateKeyPair(2, seededReader(14))
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	messages := []*big.Int{big.NewInt(1), big.NewInt(2)}
	sig, err := Sign(sk, messages, seededReader(15))
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	proof, err := CreateProof(pk, sig, messages, []int{0}, DefaultNonce, seededReader(16))
	if err != nil {
		t.Fatalf("CreateProof: %v", err)
	}

	proof.C = new(big.Int).Add(proof.C, big.NewInt(1))
	if VerifyProof(pk, proof, DefaultNonce) {
		t.Fatal("expected verify_proof to reject a tampered challenge")
	}
}

func TestVerifyProofRejectsTamperedResponse(t *testing.T) {
	sk, pk, err := GenerateKeyPair(2, seededReader(17))
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	messages := []*big.Int{big.NewInt(1), big.NewInt(2)}
	sig, err := Sign(sk, messages, seededReader(18))
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	proof, err := CreateProof(pk, sig, messages, []int{0}, DefaultNonce, seededReader(19))
	if err != nil {
		t.Fatalf("CreateProof: %v", err)
	}

	proof.RespE = new(big.Int).Add(proof.RespE, big.NewInt(1))
	if VerifyProof(pk, proof, DefaultNonce) {
		t.Fatal("expected verify_proof to reject a tampered response")
	}
}

func TestVerifyProofRejectsTamperedCommitment(t *testing.T) {
	sk, pk, err := GenerateKeyPair(2, seededReader(20))
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	messages := []*big.Int{big.NewInt(1), big.NewInt(2)}
	sig, err := Sign(sk, messages, seededReader(21))
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	proof, err := CreateProof(pk, sig, messages, []int{0}, DefaultNonce, seededReader(22))
	if err != nil {
		t.Fatalf("CreateProof: %v", err)
	}

	params := curve.DefaultParams()
	proof.T1 = curve.AddG1(&proof.T1, &params.G1)
	if VerifyProof(pk, proof, DefaultNonce) {
		t.Fatal("expected verify_proof to reject a tampered commitment")
	}
}

func TestProofsAreUnlinkable(t *testing.T) {
	sk, pk, err := GenerateKeyPair(2, seededReader(23))
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	messages := []*big.Int{big.NewInt(5), big.NewInt(6)}
	sig, err := Sign(sk, messages, seededReader(24))
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	p1, err := CreateProof(pk, sig, messages, []int{0}, DefaultNonce, seededReader(25))
	if err != nil {
		t.Fatalf("CreateProof p1: %v", err)
	}
	p2, err := CreateProof(pk, sig, messages, []int{0}, DefaultNonce, seededReader(26))
	if err != nil {
		t.Fatalf("CreateProof p2: %v", err)
	}

	if !VerifyProof(pk, p1, DefaultNonce) || !VerifyProof(pk, p2, DefaultNonce) {
		t.Fatal("both proofs must independently verify")
	}

	h1 := sha256.Sum256(append(curve.SerializeG1(p1.ABar), curve.SerializeG1(p1.BBar)...))
	h2 := sha256.Sum256(append(curve.SerializeG1(p2.ABar), curve.SerializeG1(p2.BBar)...))
	if h1 == h2 {
		t.Fatal("two proofs from independent randomness should not collide")
	}
}

func TestCreateProofRevealedIndexOutOfRangeFails(t *testing.T) {
	sk, pk, err := GenerateKeyPair(2, seededReader(27))
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	messages := []*big.Int{big.NewInt(1), big.NewInt(2)}
	sig, err := Sign(sk, messages, seededReader(28))
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if _, err := CreateProof(pk, sig, messages, []int{5}, DefaultNonce, seededReader(29)); err == nil {
		t.Fatal("expected error for out-of-range revealed index")
	}
}
