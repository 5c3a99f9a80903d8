package poly

import "math/big"

// A Field is an element whose addition and multiplication operations
// satisfy the [field] axioms. The engine is generic over Field so that its
// arithmetic kernel, division engine, and Gröbner basis pipeline are
// expressed once against the interface rather than hard-coded against a
// single coefficient representation.
//
// [field]: https://en.wikipedia.org/wiki/Field_(mathematics)
type Field[T any] interface {
	// NewZero returns the additive identity of the field.
	NewZero() T
	// NewOne returns the multiplicative identity of the field.
	NewOne() T

	// Equal reports whether x and y are equal, where x is the method
	// receiver.
	Equal(y T) bool
	// Add sets z to the sum x+y and returns z, where z is the method
	// receiver.
	Add(x, y T) T
	// Sub sets z to the difference x-y and returns z, where z is the
	// method receiver.
	Sub(x, y T) T
	// Mul sets z to the product x*y and returns z, where z is the method
	// receiver.
	Mul(x, y T) T
	// Div sets z to the quotient x/y and returns z, where z is the method
	// receiver. Div panics if y is zero; callers that cannot guarantee a
	// nonzero divisor should check first and return a [DomainError].
	Div(x, y T) T
	// Inv sets z to 1/x and returns z, where z is the method receiver.
	// Inv panics if x is zero.
	Inv(x T) T

	// String returns the string representation.
	String() string
}

// Q represents the field of rationals, wrapping [big.Rat] to satisfy
// [Field].
type Q struct{ *big.Rat }

// NewQ returns a new Q with numerator a and denominator b. NewQ panics if b
// is zero, matching [big.Rat.SetFrac]'s contract.
func NewQ(a, b int64) Q { return Q{big.NewRat(a, b)} }

// zeroQ is the coefficient-field template passed to NewPolynomial by
// ParsePoly and the tests. Only its NewZero and NewOne methods are relied
// on, and they ignore the receiver's value; Add, Sub, Mul, Div and Inv
// overwrite their receiver.
var zeroQ = Q{big.NewRat(0, 1)}

// NewZero returns the additive identity 0.
func (Q) NewZero() Q { return Q{big.NewRat(0, 1)} }

// NewOne returns the multiplicative identity 1.
func (Q) NewOne() Q { return Q{big.NewRat(1, 1)} }

// Add sets z to the sum x+y and returns z.
func (z Q) Add(x, y Q) Q { return Q{z.Rat.Add(x.Rat, y.Rat)} }

// Sub sets z to the difference x-y and returns z.
func (z Q) Sub(x, y Q) Q { return Q{z.Rat.Sub(x.Rat, y.Rat)} }

// Mul sets z to the product x*y and returns z.
func (z Q) Mul(x, y Q) Q { return Q{z.Rat.Mul(x.Rat, y.Rat)} }

// Div sets z to the quotient x/y and returns z. Div panics if y is zero.
func (z Q) Div(x, y Q) Q {
	if y.Sign() == 0 {
		panic("poly: division by zero")
	}
	return Q{z.Rat.Quo(x.Rat, y.Rat)}
}

// Inv sets z to 1/x and returns z. Inv panics if x is zero.
func (z Q) Inv(x Q) Q {
	if x.Sign() == 0 {
		panic("poly: inverse of zero")
	}
	return Q{z.Rat.Inv(x.Rat)}
}

// Equal reports whether x and y are equal.
func (x Q) Equal(y Q) bool { return x.Rat.Cmp(y.Rat) == 0 }

// IsZero reports whether x is the additive identity.
func (x Q) IsZero() bool { return x.Sign() == 0 }

// String returns a string representation of x in the form "a/b" if b != 1,
// and in the form "a" if b == 1.
func (x Q) String() string { return x.RatString() }
