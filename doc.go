// Package poly implements a multivariate polynomial computer-algebra core
// over the field of rationals. Given a ring of indeterminates under a fixed
// admissible monomial ordering, it provides exact arithmetic, [Euclidean
// division with remainder], multi-divisor normal-form reduction,
// S-polynomial construction, and [Buchberger's algorithm] for computing a
// Gröbner basis.
//
// The engine is pure: it performs no I/O and holds no hidden state beyond
// the [Ring] each value is parented by. Parsing and formatting of
// polynomial text live at the boundary (see [ParsePoly] and [Format]).
// Errors are returned to a caller by [NewRing], [ParsePoly], [DivMod] and
// [Reduce].
//
// [Euclidean division with remainder]: https://en.wikipedia.org/wiki/Polynomial_greatest_common_divisor#Euclidean_division
// [Buchberger's algorithm]: https://en.wikipedia.org/wiki/Buchberger%27s_algorithm
package poly
