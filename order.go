package poly

import "cmp"

// An Order is a [monomial order] for comparing exponent vectors sharing the
// same ring. The meaning of the return value is the same as [cmp.Compare]:
// Order(x, y) < 0 means x < y, and so on. Both orderings a [Ring] may
// select are total, multiplicative, and well-founded on exponent vectors
// with nonnegative entries, which is the only property callers need -
// avoiding per-ordering code duplication elsewhere in the package.
//
// [monomial order]: https://en.wikipedia.org/wiki/Monomial_order
type Order func(x, y Exponents) int

// LexOrder compares exponent vectors lexicographically from index 0
// upward: x < y iff at the first differing position i, x[i] < y[i].
func LexOrder(x, y Exponents) int {
	for i := range x {
		if c := cmp.Compare(x[i], y[i]); c != 0 {
			return c
		}
	}
	return 0
}

// DegLexOrder compares total degree first, breaking ties with [LexOrder].
func DegLexOrder(x, y Exponents) int {
	if c := cmp.Compare(x.degree(), y.degree()); c != 0 {
		return c
	}
	return LexOrder(x, y)
}
