package poly

import (
	"container/heap"
	"fmt"
	"iter"
	"strings"

	"github.com/jba/omap"
)

// A Polynomial is an ordered sequence of nonzero [Monomial] terms over a
// shared [Ring], stored in strictly decreasing order under the ring's
// ordering. This canonical-form invariant - every coefficient nonzero,
// every exponent vector distinct, terms strictly decreasing - holds after
// every operation in this package returns.
type Polynomial[K Field[K]] struct {
	ring  *Ring
	field K
	m     *omap.MapFunc[Exponents, K]
}

// NewPolynomial returns a new polynomial over ring containing the given
// terms, using field as the coefficient-field template (only its NewZero
// and NewOne methods are consulted; the value itself carries no state).
// NewPolynomial panics if ring is nil or a term's exponent vector has a
// length different from ring's arity.
func NewPolynomial[K Field[K]](ring *Ring, field K, terms ...Monomial[K]) *Polynomial[K] {
	if ring == nil {
		panic("poly: nil ring")
	}
	p := &Polynomial[K]{
		ring:  ring,
		field: field,
		m:     omap.NewMapFunc[Exponents, K](ring.Order()),
	}
	for _, t := range terms {
		if len(t.Exponents) != ring.Arity() {
			panic(fmt.Sprintf("poly: exponent vector %v does not match ring arity %d", t.Exponents, ring.Arity()))
		}
		p.addTerm(1, t)
	}
	return p
}

// Ring returns the ring p is parented by.
func (p *Polynomial[K]) Ring() *Ring { return p.ring }

// Field returns the coefficient-field template of p.
func (p *Polynomial[K]) Field() K { return p.field }

// Len reports the number of nonzero terms in p.
func (p *Polynomial[K]) Len() int { return p.m.Len() }

// IsZero reports whether p is the zero polynomial.
func (p *Polynomial[K]) IsZero() bool { return p.m.Len() == 0 }

// Terms iterates the terms of p in strictly decreasing order.
func (p *Polynomial[K]) Terms() iter.Seq[Monomial[K]] {
	return func(yield func(Monomial[K]) bool) {
		for w, c := range p.m.Backward() {
			if !yield(Monomial[K]{Coefficient: c, Exponents: w}) {
				return
			}
		}
	}
}

// Equal reports whether p and q have the same terms: same length, pairwise
// equal coefficients and exponents.
func (p *Polynomial[K]) Equal(q *Polynomial[K]) bool {
	if p.m.Len() != q.m.Len() {
		return false
	}
	for i := range p.m.Len() {
		pw, pc := p.m.At(p.m.Len() - 1 - i)
		qw, qc := q.m.At(q.m.Len() - 1 - i)
		if !pw.equal(qw) {
			return false
		}
		if !pc.Equal(qc) {
			return false
		}
	}
	return true
}

// Set sets z to a copy of x and returns z.
func (z *Polynomial[K]) Set(x *Polynomial[K]) *Polynomial[K] {
	if z == x {
		return z
	}
	z.ring = x.ring
	z.field = x.field
	z.m = omap.NewMapFunc[Exponents, K](z.ring.Order())
	for xw, xc := range x.m.All() {
		z.addTerm(1, Monomial[K]{Coefficient: xc, Exponents: xw.clone()})
	}
	return z
}

// LeadingTerm returns the term of the leading monomial: the maximum term
// under the ring's ordering. LeadingTerm panics if p is the zero
// polynomial.
func (p *Polynomial[K]) LeadingTerm() Monomial[K] {
	w, ok := p.m.Max()
	if !ok {
		panic("poly: zero polynomial has no leading term")
	}
	c, _ := p.m.Get(w)
	return Monomial[K]{Coefficient: c, Exponents: w}
}

// String returns the canonical text representation of p: terms in
// decreasing order separated by "+", coefficients of 1 elided on non-
// constant terms, zero-exponent factors omitted.
func (p *Polynomial[K]) String() string {
	if p.m.Len() == 0 {
		return "0"
	}
	var b strings.Builder
	for i := range p.m.Len() {
		w, c := p.m.At(p.m.Len() - 1 - i)

		s := c.String()
		if s[0] != '-' {
			s = "+" + s
		}
		switch {
		case i == 0 && s == "+1" && !w.isZero():
			s = ""
		case i == 0 && s[0] == '+':
			s = s[1:]
		case s == "+1" && !w.isZero():
			s = "+"
		case s == "-1" && !w.isZero():
			s = "-"
		}
		b.WriteString(s)

		printExponents(&b, p.ring, w)
	}
	return b.String()
}

func printExponents(b *strings.Builder, r *Ring, w Exponents) {
	for i, e := range w {
		if e == 0 {
			continue
		}
		if e == 1 {
			fmt.Fprintf(b, "%s", r.Symbol(i))
		} else {
			fmt.Fprintf(b, "%s^%d", r.Symbol(i), e)
		}
	}
}

// addTerm folds term into p's term store: sign > 0 adds, sign < 0
// subtracts. A term whose coefficient becomes zero is removed, preserving
// the no-zero-coefficient invariant.
func (p *Polynomial[K]) addTerm(sign int, term Monomial[K]) {
	c, ok := p.m.Get(term.Exponents)
	if !ok {
		c = p.field.NewZero()
	}
	if sign < 0 {
		c = p.field.NewZero().Sub(c, term.Coefficient)
	} else {
		c = p.field.NewZero().Add(c, term.Coefficient)
	}

	if c.Equal(p.field.NewZero()) {
		p.m.Delete(term.Exponents)
	} else {
		p.m.Set(term.Exponents, c)
	}
}

// Add sets z to the sum x+y and returns z. Each term of y is inserted into
// (a copy of) x's ordered term map, folding equal-exponent terms and
// dropping zero sums; this costs one ordered-map update per term rather
// than a single linear merge of the two sorted sequences.
func (z *Polynomial[K]) Add(x, y *Polynomial[K]) *Polynomial[K] {
	if y == z {
		x, y = y, x
	}
	if z != x {
		z.ring = x.ring
		z.field = x.field
		z.m = omap.NewMapFunc[Exponents, K](z.ring.Order())
		for xw, xc := range x.m.All() {
			z.addTerm(1, Monomial[K]{Coefficient: xc, Exponents: xw.clone()})
		}
	}
	for yw, yc := range y.m.All() {
		z.addTerm(1, Monomial[K]{Coefficient: yc, Exponents: yw.clone()})
	}
	return z
}

// Sub sets z to the difference x-y and returns z.
func (z *Polynomial[K]) Sub(x, y *Polynomial[K]) *Polynomial[K] {
	neg := NewPolynomial(y.ring, y.field)
	neg.scale(y.field.NewZero().Sub(y.field.NewZero(), y.field.NewOne()), y)
	return z.Add(x, neg)
}

// Scale sets z to k*x and returns z. If k is zero, z becomes the zero
// polynomial.
func (z *Polynomial[K]) Scale(k K, x *Polynomial[K]) *Polynomial[K] {
	return z.scale(k, x)
}

func (z *Polynomial[K]) scale(k K, x *Polynomial[K]) *Polynomial[K] {
	if k.Equal(x.field.NewZero()) {
		z.ring = x.ring
		z.field = x.field
		z.m = omap.NewMapFunc[Exponents, K](z.ring.Order())
		return z
	}
	if z == x {
		for w, c := range z.m.All() {
			z.m.Set(w, z.field.NewZero().Mul(k, c))
		}
		return z
	}
	z.ring = x.ring
	z.field = x.field
	z.m = omap.NewMapFunc[Exponents, K](z.ring.Order())
	for xw, xc := range x.m.All() {
		z.addTerm(1, Monomial[K]{Coefficient: z.field.NewZero().Mul(k, xc), Exponents: xw.clone()})
	}
	return z
}

// heapItem is a pending product f[i]*g[j] awaiting emission by [Mul]'s
// heap-of-products merge.
type heapItem[K Field[K]] struct {
	term Monomial[K]
	i, j int
}

type productHeap[K Field[K]] struct {
	items []heapItem[K]
	order Order
}

func (h *productHeap[K]) Len() int { return len(h.items) }
func (h *productHeap[K]) Less(a, b int) bool {
	return h.order(h.items[a].term.Exponents, h.items[b].term.Exponents) > 0
}
func (h *productHeap[K]) Swap(a, b int) { h.items[a], h.items[b] = h.items[b], h.items[a] }
func (h *productHeap[K]) Push(x any)    { h.items = append(h.items, x.(heapItem[K])) }
func (h *productHeap[K]) Pop() any {
	old := h.items
	n := len(old)
	it := old[n-1]
	h.items = old[:n-1]
	return it
}

// Mul sets z to the product x*y and returns z using a max-heap over
// pending products (f[i]*g[j]): the heap is seeded with one product per
// row of x against y's leading term, and each pop refills the heap with
// that row's next product, so the full m*n cross product is never
// materialized before sorting. Mul panics if z aliases x or y, since the
// merge reads from x and y while building z incrementally.
func (z *Polynomial[K]) Mul(x, y *Polynomial[K]) *Polynomial[K] {
	if z == x {
		panic("poly: z == x")
	}
	if z == y {
		panic("poly: z == y")
	}

	z.ring = x.ring
	z.field = x.field
	z.m = omap.NewMapFunc[Exponents, K](z.ring.Order())
	if x.m.Len() == 0 || y.m.Len() == 0 {
		return z
	}

	xTerms := make([]Monomial[K], 0, x.m.Len())
	for xw, xc := range x.m.Backward() {
		xTerms = append(xTerms, Monomial[K]{Coefficient: xc, Exponents: xw})
	}
	yTerms := make([]Monomial[K], 0, y.m.Len())
	for yw, yc := range y.m.Backward() {
		yTerms = append(yTerms, Monomial[K]{Coefficient: yc, Exponents: yw})
	}

	h := &productHeap[K]{order: z.ring.Order()}
	for i := range xTerms {
		h.items = append(h.items, heapItem[K]{term: MonomialMul(xTerms[i], yTerms[0]), i: i, j: 0})
	}
	heap.Init(h)

	for h.Len() > 0 {
		it := heap.Pop(h).(heapItem[K])
		z.addTerm(1, it.term)
		if it.j < len(yTerms)-1 {
			heap.Push(h, heapItem[K]{term: MonomialMul(xTerms[it.i], yTerms[it.j+1]), i: it.i, j: it.j + 1})
		}
	}
	return z
}

// Pow sets z to the power x^n and returns z. Pow panics if z aliases x or
// n is negative.
func (z *Polynomial[K]) Pow(x *Polynomial[K], n int) *Polynomial[K] {
	if z == x {
		panic("poly: z == x")
	}
	if n < 0 {
		panic("poly: negative exponent")
	}
	if n == 0 {
		z.ring = x.ring
		z.field = x.field
		z.m = omap.NewMapFunc[Exponents, K](z.ring.Order())
		z.addTerm(1, Monomial[K]{Coefficient: x.field.NewOne(), Exponents: make(Exponents, x.ring.Arity())})
		return z
	}

	z.Set(x)
	buf := NewPolynomial[K](x.ring, x.field)
	for range n - 1 {
		buf.Mul(z, x)
		z, buf = buf, z
	}
	if n%2 == 0 {
		z, buf = buf, z
		z.Set(buf)
	}
	return z
}
