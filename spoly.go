package poly

// SPolynomial returns the S-polynomial of f and g. If either operand is
// zero, SPolynomial returns the other, negated if it was g. Otherwise,
// letting mu be the monomial with coefficient 1 and exponent lcm(LM(f),
// LM(g)), SPolynomial returns (mu/LT(f))*f - (mu/LT(g))*g; the leading
// cross-terms cancel by construction. SPolynomial panics if f and g do
// not share a compatible ring.
func SPolynomial[K Field[K]](f, g *Polynomial[K]) *Polynomial[K] {
	if !f.ring.Compatible(g.ring) {
		panic("poly: SPolynomial operands do not share a ring")
	}
	// Convention: S(f,g) is read as "f minus a multiple of g" degenerating
	// to the surviving operand, so a zero f returns g untouched and a zero
	// g returns -f, the sign g would otherwise have contributed.
	if f.IsZero() {
		return g
	}
	if g.IsZero() {
		neg := NewPolynomial[K](f.ring, f.field)
		neg.Scale(f.field.NewZero().Sub(f.field.NewZero(), f.field.NewOne()), f)
		return neg
	}

	ltf, ltg := f.LeadingTerm(), g.LeadingTerm()
	mu := Monomial[K]{Coefficient: f.field.NewOne(), Exponents: MonomialLCM(ltf.Exponents, ltg.Exponents)}

	leftFactor := MonomialDiv(mu, ltf)
	rightFactor := MonomialDiv(mu, ltg)

	left := NewPolynomial[K](f.ring, f.field)
	left.Mul(NewPolynomial[K](f.ring, f.field, leftFactor), f)
	right := NewPolynomial[K](g.ring, g.field)
	right.Mul(NewPolynomial[K](g.ring, g.field, rightFactor), g)

	s := NewPolynomial[K](f.ring, f.field)
	return s.Sub(left, right)
}
