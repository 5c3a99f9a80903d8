package poly

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// A Code names one of the library's catalogued failure conditions.
type Code int

const (
	// InvalidCoefficient: the parser couldn't read a rational literal.
	InvalidCoefficient Code = iota
	// UnknownSymbol: a token referenced a name not declared in the ring.
	UnknownSymbol
	// MalformedTerm: a term did not match the monomial grammar.
	MalformedTerm
	// DivisionByZero: a divisor polynomial or coefficient is zero.
	DivisionByZero
	// NonDividingDivide: a monomial division was attempted where the
	// divisor does not divide the dividend.
	NonDividingDivide
	// RingMismatch: operands are parented by incompatible rings.
	RingMismatch
	// NoRingDeclared: a ring could not be constructed or was required but
	// absent.
	NoRingDeclared
)

// String names the code.
func (c Code) String() string {
	switch c {
	case InvalidCoefficient:
		return "InvalidCoefficient"
	case UnknownSymbol:
		return "UnknownSymbol"
	case MalformedTerm:
		return "MalformedTerm"
	case DivisionByZero:
		return "DivisionByZero"
	case NonDividingDivide:
		return "NonDividingDivide"
	case RingMismatch:
		return "RingMismatch"
	case NoRingDeclared:
		return "NoRingDeclared"
	default:
		return "Unknown"
	}
}

// A ParseError reports a failure to read monomial/polynomial text:
// InvalidCoefficient, UnknownSymbol, or MalformedTerm.
type ParseError struct {
	Code   Code
	Text   string // the offending token or substring
	Column int    // 0 if unknown
}

func (e *ParseError) Error() string {
	if e.Column > 0 {
		return "poly: parse error at column " + strconv.Itoa(e.Column) + ": " + e.Code.String() + ": " + e.Text
	}
	return "poly: parse error: " + e.Code.String() + ": " + e.Text
}

// A DomainError reports an arithmetic precondition violation:
// DivisionByZero or NonDividingDivide.
type DomainError struct {
	Code Code
	Msg  string
}

func (e *DomainError) Error() string {
	return "poly: domain error: " + e.Code.String() + ": " + e.Msg
}

// A RingError reports an incompatible or missing ring: RingMismatch or
// NoRingDeclared.
type RingError struct {
	Code Code
	Msg  string
}

func (e *RingError) Error() string {
	return "poly: ring error: " + e.Code.String() + ": " + e.Msg
}

func newParseError(code Code, format string, args ...any) error {
	return errors.WithStack(&ParseError{Code: code, Text: fmt.Sprintf(format, args...)})
}

func newDomainError(code Code, format string, args ...any) error {
	return errors.WithStack(&DomainError{Code: code, Msg: fmt.Sprintf(format, args...)})
}

func newRingError(code Code, format string, args ...any) error {
	return errors.WithStack(&RingError{Code: code, Msg: fmt.Sprintf(format, args...)})
}
