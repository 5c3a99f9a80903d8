package poly

// DivMod divides f by g and returns the quotient and remainder such that
// f = q*g + r and no term of r is divisible (as a monomial) by the leading
// monomial of g. DivMod returns a [DomainError] with code [DivisionByZero]
// if g is the zero polynomial.
//
// DivMod is [Reduce] specialized to a single-element divisor list.
func DivMod[K Field[K]](f, g *Polynomial[K]) (q, r *Polynomial[K], err error) {
	if g.IsZero() {
		return nil, nil, newDomainError(DivisionByZero, "divisor is the zero polynomial")
	}
	if !f.ring.Compatible(g.ring) {
		return nil, nil, newRingError(RingMismatch, "dividend and divisor do not share a ring")
	}
	if f.IsZero() {
		return NewPolynomial[K](f.ring, f.field), NewPolynomial[K](f.ring, f.field), nil
	}
	// Fast path for a nonzero constant divisor: the remainder is always 0,
	// and the general loop would otherwise perform one pointless
	// zero-exponent monomial divide per term of f.
	if gc := g.LeadingTerm(); g.Len() == 1 && gc.Exponents.isZero() {
		q := NewPolynomial[K](f.ring, f.field)
		q.Scale(f.field.NewZero().Inv(gc.Coefficient), f)
		return q, NewPolynomial[K](f.ring, f.field), nil
	}

	qs, r, err := Reduce(f, []*Polynomial[K]{g})
	if err != nil {
		return nil, nil, err
	}
	return qs[0], r, nil
}

// Reduce divides f by the ordered family divisors, producing a quotient
// per divisor and a remainder such that f = sum(qs[i]*divisors[i]) + r and
// no term of r is divisible by any leading monomial of divisors. Divisor
// order is significant: at each step the smallest index whose leading
// monomial divides the residual's leading term is preferred, scanning the
// basis in list order and taking the first match. Reduce returns a
// [RingError] if any divisor does not share dividend's ring, and a
// [DomainError] if divisors is empty.
func Reduce[K Field[K]](f *Polynomial[K], divisors []*Polynomial[K]) (qs []*Polynomial[K], r *Polynomial[K], err error) {
	if len(divisors) == 0 {
		return nil, nil, newDomainError(DivisionByZero, "no divisors given")
	}
	for _, g := range divisors {
		if !f.ring.Compatible(g.ring) {
			return nil, nil, newRingError(RingMismatch, "divisor does not share dividend's ring")
		}
	}

	field := f.field
	ring := f.ring
	qs = make([]*Polynomial[K], len(divisors))
	for i := range qs {
		qs[i] = NewPolynomial[K](ring, field)
	}
	r = NewPolynomial[K](ring, field)

	p := NewPolynomial[K](ring, field).Set(f)
	for !p.IsZero() {
		lt := p.LeadingTerm()

		basis := -1
		for i, g := range divisors {
			if g.IsZero() {
				continue
			}
			if MonomialDivides(g.LeadingTerm().Exponents, lt.Exponents) {
				basis = i
				break
			}
		}

		if basis == -1 {
			r.addTerm(1, lt)
			p.addTerm(-1, lt)
			continue
		}

		lg := divisors[basis].LeadingTerm()
		t := MonomialDiv(lt, lg)
		qs[basis].addTerm(1, t)

		tg := NewPolynomial[K](ring, field)
		tg.Mul(NewPolynomial[K](ring, field, t), divisors[basis])
		p.Sub(p, tg)
	}

	return qs, r, nil
}
