package poly

import (
	"errors"
	"testing"
)

func TestDivModUnivariate(t *testing.T) {
	r, err := NewRing([]string{"x"}, Lex)
	if err != nil {
		t.Fatal(err)
	}
	// f = x^3 + 1, g = x + 1 -> q = x^2 - x + 1, r = 0
	f := NewPolynomial[Q](r, zeroQ,
		Monomial[Q]{Coefficient: NewQ(1, 1), Exponents: Exponents{3}},
		Monomial[Q]{Coefficient: NewQ(1, 1), Exponents: Exponents{0}},
	)
	g := NewPolynomial[Q](r, zeroQ,
		Monomial[Q]{Coefficient: NewQ(1, 1), Exponents: Exponents{1}},
		Monomial[Q]{Coefficient: NewQ(1, 1), Exponents: Exponents{0}},
	)

	q, rem, err := DivMod(f, g)
	if err != nil {
		t.Fatal(err)
	}

	wantQ := NewPolynomial[Q](r, zeroQ,
		Monomial[Q]{Coefficient: NewQ(1, 1), Exponents: Exponents{2}},
		Monomial[Q]{Coefficient: NewQ(-1, 1), Exponents: Exponents{1}},
		Monomial[Q]{Coefficient: NewQ(1, 1), Exponents: Exponents{0}},
	)
	if !q.Equal(wantQ) {
		t.Errorf("q = %v, want %v", q, wantQ)
	}
	if !rem.IsZero() {
		t.Errorf("r = %v, want 0", rem)
	}

	// Division invariant: q*g + r = f.
	check := NewPolynomial[Q](r, zeroQ).Add(NewPolynomial[Q](r, zeroQ).Mul(q, g), rem)
	if !check.Equal(f) {
		t.Errorf("q*g+r = %v, want f = %v", check, f)
	}
}

func TestDivModByZeroPolynomial(t *testing.T) {
	r, _ := NewRing([]string{"x"}, Lex)
	f := NewPolynomial[Q](r, zeroQ, Monomial[Q]{Coefficient: NewQ(1, 1), Exponents: Exponents{1}})
	zero := NewPolynomial[Q](r, zeroQ)

	_, _, err := DivMod(f, zero)
	if err == nil {
		t.Fatal("DivMod by zero polynomial returned no error")
	}
	var de *DomainError
	if !errors.As(err, &de) {
		t.Fatalf("error %v is not a *DomainError", err)
	}
	if de.Code != DivisionByZero {
		t.Errorf("Code = %v, want DivisionByZero", de.Code)
	}
}

func TestDivModConstantDivisor(t *testing.T) {
	r := xyRing(t)
	f := NewPolynomial[Q](r, zeroQ, mono(6, 1, 0), mono(4, 0, 1))
	g := NewPolynomial[Q](r, zeroQ, mono(2, 0, 0))

	q, rem, err := DivMod(f, g)
	if err != nil {
		t.Fatal(err)
	}
	if !rem.IsZero() {
		t.Errorf("r = %v, want 0", rem)
	}
	want := NewPolynomial[Q](r, zeroQ, mono(3, 1, 0), mono(2, 0, 1))
	if !q.Equal(want) {
		t.Errorf("q = %v, want %v", q, want)
	}
}

func TestReduceMultiDivisor(t *testing.T) {
	r := xyRing(t)
	// f = x^2*y, G = {x^2, x*y}. x^2 divides LT(f) = x^2y first (earlier
	// in the list), so all of f should reduce via G[0].
	f := NewPolynomial[Q](r, zeroQ, mono(1, 2, 1))
	g0 := NewPolynomial[Q](r, zeroQ, mono(1, 2, 0))
	g1 := NewPolynomial[Q](r, zeroQ, mono(1, 1, 1))

	qs, rem, err := Reduce(f, []*Polynomial[Q]{g0, g1})
	if err != nil {
		t.Fatal(err)
	}
	if !rem.IsZero() {
		t.Errorf("r = %v, want 0", rem)
	}

	sum := NewPolynomial[Q](r, zeroQ)
	for i, q := range qs {
		sum.Add(sum, NewPolynomial[Q](r, zeroQ).Mul(q, []*Polynomial[Q]{g0, g1}[i]))
	}
	if !sum.Equal(f) {
		t.Errorf("sum(qs[i]*G[i]) = %v, want f = %v", sum, f)
	}
	if qs[1].Len() != 0 {
		t.Errorf("qs[1] = %v, want 0 (g0 should have taken priority)", qs[1])
	}
}

func TestReduceEmptyDivisorsErrors(t *testing.T) {
	r := xyRing(t)
	f := NewPolynomial[Q](r, zeroQ, mono(1, 1, 0))
	if _, _, err := Reduce(f, nil); err == nil {
		t.Fatal("Reduce with no divisors returned no error")
	}
}
