package poly

import "fmt"

// Exponents is the exponent vector of a [Monomial]: one nonnegative count
// per indeterminate of the parenting ring, in ring declaration order.
// Exponents is a value of fixed length equal to its ring's arity; callers
// must not resize a vector returned from the package.
type Exponents []uint32

// degree returns the total degree sum(e) of e.
func (e Exponents) degree() int {
	var d int
	for _, ei := range e {
		d += int(ei)
	}
	return d
}

func (e Exponents) clone() Exponents {
	c := make(Exponents, len(e))
	copy(c, e)
	return c
}

func (e Exponents) isZero() bool {
	for _, ei := range e {
		if ei != 0 {
			return false
		}
	}
	return true
}

func (e Exponents) equal(o Exponents) bool {
	if len(e) != len(o) {
		return false
	}
	for i := range e {
		if e[i] != o[i] {
			return false
		}
	}
	return true
}

// A Monomial is a coefficient paired with an exponent vector. The zero
// monomial (c == 0) is never stored inside a
// [Polynomial]; constructing one directly is only meaningful as an
// intermediate value for the arithmetic kernel below.
type Monomial[K Field[K]] struct {
	Coefficient K
	Exponents   Exponents
}

func (m Monomial[K]) clone() Monomial[K] {
	return Monomial[K]{Coefficient: m.Coefficient, Exponents: m.Exponents.clone()}
}

// MonomialMul returns the monomial a*b: coefficient a.c*b.c, exponent
// a.e+b.e componentwise. Exponents are represented as 32-bit unsigned
// counts, wide enough that overflow is not a practical concern for any
// polynomial degree this package can otherwise hold in memory.
func MonomialMul[K Field[K]](a, b Monomial[K]) Monomial[K] {
	e := make(Exponents, len(a.Exponents))
	for i := range e {
		e[i] = a.Exponents[i] + b.Exponents[i]
	}
	c := a.Coefficient.NewZero().Mul(a.Coefficient, b.Coefficient)
	return Monomial[K]{Coefficient: c, Exponents: e}
}

// MonomialDivides reports whether a divides b as monomials in the monoid
// sense: a.e[i] <= b.e[i] for all i. Coefficients are ignored, since we
// work over a field and every nonzero coefficient is a unit.
func MonomialDivides(a, b Exponents) bool {
	for i := range a {
		if a[i] > b[i] {
			return false
		}
	}
	return true
}

// MonomialDiv returns a/b: coefficient a.c/b.c, exponent a.e-b.e. The
// caller must check [MonomialDivides](b.Exponents, a.Exponents) first;
// MonomialDiv panics if b does not divide a.
func MonomialDiv[K Field[K]](a, b Monomial[K]) Monomial[K] {
	if !MonomialDivides(b.Exponents, a.Exponents) {
		panic(fmt.Sprintf("poly: %v does not divide %v", b.Exponents, a.Exponents))
	}
	e := make(Exponents, len(a.Exponents))
	for i := range e {
		e[i] = a.Exponents[i] - b.Exponents[i]
	}
	c := a.Coefficient.NewZero().Div(a.Coefficient, b.Coefficient)
	return Monomial[K]{Coefficient: c, Exponents: e}
}

// MonomialGCD returns the exponent vector min(a,b) componentwise.
func MonomialGCD(a, b Exponents) Exponents {
	e := make(Exponents, len(a))
	for i := range e {
		e[i] = min(a[i], b[i])
	}
	return e
}

// MonomialLCM returns the exponent vector max(a,b) componentwise.
// lcm(a,b)+gcd(a,b) = a+b componentwise.
func MonomialLCM(a, b Exponents) Exponents {
	e := make(Exponents, len(a))
	for i := range e {
		e[i] = max(a[i], b[i])
	}
	return e
}
