package shamir

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/anupsv/bbsplus-threshold/curve"
)

func seededReader() *bytes.Reader {
	buf := make([]byte, 8192)
	for i := range buf {
		buf[i] = byte(i*11 + 3)
	}
	return bytes.NewReader(buf)
}

func TestCreateRandomPolynomialLength(t *testing.T) {
	coeffs, err := CreateRandomPolynomial(4, seededReader())
	if err != nil {
		t.Fatalf("CreateRandomPolynomial: %v", err)
	}
	if len(coeffs) != 5 {
		t.Fatalf("expected 5 coefficients for degree 4, got %d", len(coeffs))
	}
	for _, c := range coeffs {
		if c.Sign() < 0 || c.Cmp(curve.Order) >= 0 {
			t.Fatalf("coefficient %s out of range", c)
		}
	}
}

func TestCreateRandomPolynomialNegativeDegree(t *testing.T) {
	coeffs, err := CreateRandomPolynomial(-1, seededReader())
	if err != nil {
		t.Fatalf("CreateRandomPolynomial: %v", err)
	}
	if coeffs != nil {
		t.Fatalf("expected nil coefficients for negative degree, got %v", coeffs)
	}
}

func TestEvaluateHornerLaw(t *testing.T) {
	// p(x) = 3 + 2x + 5x^2
	coeffs := []*big.Int{big.NewInt(3), big.NewInt(2), big.NewInt(5)}
	x := big.NewInt(7)

	got := Evaluate(coeffs, x)

	want := new(big.Int).Set(big.NewInt(0))
	for i := len(coeffs) - 1; i >= 0; i-- {
		want.Mul(want, x)
		want.Add(want, coeffs[i])
		want.Mod(want, curve.Order)
	}
	if got.Cmp(want) != 0 {
		t.Fatalf("Evaluate = %s, want %s", got, want)
	}

	direct := big.NewInt(3 + 2*7 + 5*7*7)
	if got.Cmp(direct) != 0 {
		t.Fatalf("Evaluate = %s, want direct computation %s", got, direct)
	}
}

func TestEvaluateEmptyCoeffs(t *testing.T) {
	got := Evaluate(nil, big.NewInt(42))
	if got.Sign() != 0 {
		t.Fatalf("Evaluate of empty polynomial should be zero, got %s", got)
	}
}

func TestEvaluateConstantPolynomial(t *testing.T) {
	coeffs := []*big.Int{big.NewInt(99)}
	for _, x := range []*big.Int{big.NewInt(0), big.NewInt(1), big.NewInt(1000)} {
		got := Evaluate(coeffs, x)
		if got.Cmp(big.NewInt(99)) != 0 {
			t.Fatalf("constant polynomial at x=%s should be 99, got %s", x, got)
		}
	}
}
