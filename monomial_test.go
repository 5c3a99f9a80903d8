package poly

import (
	"fmt"
	"testing"
)

func TestMonomialMul(t *testing.T) {
	a := Monomial[Q]{Coefficient: NewQ(2, 1), Exponents: Exponents{1, 2}}
	b := Monomial[Q]{Coefficient: NewQ(3, 1), Exponents: Exponents{4, 0}}
	got := MonomialMul(a, b)
	if !got.Coefficient.Equal(NewQ(6, 1)) {
		t.Errorf("coefficient = %v, want 6", got.Coefficient)
	}
	if !got.Exponents.equal(Exponents{5, 2}) {
		t.Errorf("exponents = %v, want [5 2]", got.Exponents)
	}
}

func TestMonomialDividesAndDiv(t *testing.T) {
	tests := []struct {
		a, b    Exponents
		divides bool
	}{
		{a: Exponents{1, 0}, b: Exponents{2, 3}, divides: true},
		{a: Exponents{0, 4}, b: Exponents{2, 3}, divides: false},
		{a: Exponents{0, 0}, b: Exponents{0, 0}, divides: true},
	}
	for testI, test := range tests {
		t.Run(fmt.Sprintf("%d", testI), func(t *testing.T) {
			t.Parallel()
			got := MonomialDivides(test.a, test.b)
			if got != test.divides {
				t.Errorf("MonomialDivides(%v, %v) = %v, want %v", test.a, test.b, got, test.divides)
			}
		})
	}

	a := Monomial[Q]{Coefficient: NewQ(6, 1), Exponents: Exponents{3, 2}}
	b := Monomial[Q]{Coefficient: NewQ(2, 1), Exponents: Exponents{1, 1}}
	got := MonomialDiv(a, b)
	if !got.Coefficient.Equal(NewQ(3, 1)) {
		t.Errorf("coefficient = %v, want 3", got.Coefficient)
	}
	if !got.Exponents.equal(Exponents{2, 1}) {
		t.Errorf("exponents = %v, want [2 1]", got.Exponents)
	}
}

func TestMonomialDivPanicsWhenNonDividing(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("MonomialDiv did not panic on a non-dividing pair")
		}
	}()
	a := Monomial[Q]{Coefficient: NewQ(1, 1), Exponents: Exponents{0, 1}}
	b := Monomial[Q]{Coefficient: NewQ(1, 1), Exponents: Exponents{1, 0}}
	MonomialDiv(a, b)
}

func TestMonomialGCDLCM(t *testing.T) {
	a := Exponents{3, 1, 0}
	b := Exponents{1, 4, 0}
	if g := MonomialGCD(a, b); !g.equal(Exponents{1, 1, 0}) {
		t.Errorf("MonomialGCD = %v, want [1 1 0]", g)
	}
	if l := MonomialLCM(a, b); !l.equal(Exponents{3, 4, 0}) {
		t.Errorf("MonomialLCM = %v, want [3 4 0]", l)
	}
}
