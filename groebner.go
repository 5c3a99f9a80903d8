package poly

// Stats records diagnostics about a [Buchberger] run, purely for
// observability: the algorithm runs no iteration cap and terminates on its
// own via Dickson's lemma applied to leading monomials.
type Stats struct {
	// SPolynomials is the number of S-polynomials computed.
	SPolynomials int
	// MaxWorklist is the largest size the pending worklist ever reached.
	MaxWorklist int
	// FinalBasisSize is the size of the basis before interreduction.
	FinalBasisSize int
}

// Buchberger returns a Gröbner basis of the ideal generated by f, with
// respect to f's shared ring ordering, using Buchberger's algorithm with
// the product criterion: an S-pair is skipped when its two generators'
// leading monomials are coprime (gcd of exponents all zero), since such a
// pair's S-polynomial is guaranteed to reduce to zero. The chain criterion
// and any Gebauer-Möller-style pruning are deliberately not implemented,
// trading a larger S-pair count for a simpler algorithm. The returned
// basis is interreduced and monic. Buchberger panics if f is empty or its
// elements do not share a ring.
func Buchberger[K Field[K]](f []*Polynomial[K]) (basis []*Polynomial[K], stats Stats) {
	if len(f) == 0 {
		panic("poly: Buchberger requires at least one generator")
	}
	ring, field := f[0].ring, f[0].field
	for _, fi := range f {
		if !fi.ring.Compatible(ring) {
			panic("poly: Buchberger generators do not share a ring")
		}
	}

	// Worklist of pending generators and S-polynomials, popped LIFO.
	// Nonzero generators seed the worklist; the growing basis G starts
	// empty.
	worklist := make([]*Polynomial[K], 0, len(f))
	for _, fi := range f {
		if !fi.IsZero() {
			worklist = append(worklist, fi)
		}
	}

	var g []*Polynomial[K]
	for len(worklist) > 0 {
		stats.MaxWorklist = max(stats.MaxWorklist, len(worklist))

		fi := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		_, r, err := reduceOrEmpty(fi, g, ring, field)
		if err != nil {
			panic(err)
		}
		if r.IsZero() {
			continue
		}

		for _, p := range g {
			if !productCriterionSkip(r, p) {
				worklist = append(worklist, SPolynomial(r, p))
				stats.SPolynomials++
			}
		}
		g = append(g, r)
	}

	stats.FinalBasisSize = len(g)
	g = interreduce(g, ring, field)
	makeMonic(g)
	return g, stats
}

// productCriterionSkip reports whether the S-pair (r, p) may be skipped:
// their leading monomials are coprime, i.e. gcd(LM(r), LM(p)) has an
// all-zero exponent vector. This is equivalent to testing
// lcm(LM(r),LM(p)) == LM(r)*LM(p) but cheaper to compute: the lcm of two
// monomials equals their product exactly when they share no common
// factor.
func productCriterionSkip[K Field[K]](r, p *Polynomial[K]) bool {
	g := MonomialGCD(r.LeadingTerm().Exponents, p.LeadingTerm().Exponents)
	return g.isZero()
}

func reduceOrEmpty[K Field[K]](f *Polynomial[K], g []*Polynomial[K], ring *Ring, field K) (qs []*Polynomial[K], r *Polynomial[K], err error) {
	if len(g) == 0 {
		return nil, NewPolynomial[K](ring, field).Set(f), nil
	}
	return Reduce(f, g)
}

// interreduce reduces each element of g modulo the rest of g, discarding
// zero remainders and restarting from the top whenever an element
// changes, until every element is irreducible against all the others.
func interreduce[K Field[K]](g []*Polynomial[K], ring *Ring, field K) []*Polynomial[K] {
	i, n := 0, len(g)
	for i != n {
		gi := g[i]
		rest := make([]*Polynomial[K], 0, n-1)
		rest = append(rest, g[:i]...)
		rest = append(rest, g[i+1:]...)

		_, r, err := reduceOrEmpty(gi, rest, ring, field)
		if err != nil {
			panic(err)
		}

		switch {
		case r.IsZero():
			g = append(g[:i], g[i+1:]...)
			n--
		case !r.Equal(gi):
			g[i] = r
			i = 0
		default:
			i++
		}
	}
	return g
}

// makeMonic scales every element of g so its leading coefficient is 1, in
// place.
func makeMonic[K Field[K]](g []*Polynomial[K]) {
	for _, gi := range g {
		if gi.IsZero() {
			continue
		}
		lc := gi.LeadingTerm().Coefficient
		gi.Scale(gi.field.NewZero().Inv(lc), gi)
	}
}
