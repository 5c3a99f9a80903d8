package poly_test

import (
	"fmt"

	poly "github.com/arrg/polyq"
)

func Example() {
	// Compute a Gröbner basis for the ideal {x^2 - y, x*y - 1} under
	// DegLex, then use it to reduce a third polynomial to its normal
	// form.
	ring, _ := poly.NewRing([]string{"x", "y"}, poly.DegLex)

	f1, _ := poly.ParsePoly(ring, "x^2 - y")
	f2, _ := poly.ParsePoly(ring, "xy - 1")

	basis, _ := poly.Buchberger([]*poly.Polynomial[poly.Q]{f1, f2})
	fmt.Println("Gröbner basis:")
	for _, b := range basis {
		fmt.Printf("  %s\n", poly.Format(b))
	}

	target, _ := poly.ParsePoly(ring, "x^3")
	_, r, _ := poly.Reduce(target, basis)
	fmt.Printf("x^3 reduces to: %s\n", poly.Format(r))

	// Output:
	// Gröbner basis:
	//   xy-1
	//   x^2-y
	//   y^2-x
	// x^3 reduces to: 1
}

func Example_divMod() {
	ring, _ := poly.NewRing([]string{"x"}, poly.Lex)

	f, _ := poly.ParsePoly(ring, "x^3 + 1")
	g, _ := poly.ParsePoly(ring, "x + 1")

	q, r, _ := poly.DivMod(f, g)
	fmt.Printf("q = %s, r = %s\n", poly.Format(q), poly.Format(r))

	// Output:
	// q = x^2-x+1, r = 0
}
