package poly

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"

	"github.com/arrg/polyq/parse"
	"github.com/arrg/polyq/parse/scan"
)

// ParsePoly reads text as a polynomial over ring with rational
// coefficients: a sum of terms, each a coefficient (an optional signed
// rational, default 1) followed by a run of symbol^exponent factors (a
// missing exponent means 1; a missing symbol contributes exponent 0). It
// returns a [ParseError] if a coefficient is malformed, a factor names a
// symbol not declared in ring, or the token stream doesn't match the term
// grammar.
func ParsePoly(ring *Ring, text string) (*Polynomial[Q], error) {
	s := scan.NewScanner(strings.NewReader(text))
	terms, err := parse.Parse(s)
	if err != nil {
		return nil, translateParseErr(err)
	}

	p := NewPolynomial[Q](ring, zeroQ)
	for _, t := range terms {
		m, err := monomialFromTerm(ring, t)
		if err != nil {
			return nil, err
		}
		p.addTerm(1, m)
	}
	return p, nil
}

func monomialFromTerm(ring *Ring, t parse.Term) (Monomial[Q], error) {
	if t.Den == 0 {
		return Monomial[Q]{}, newParseError(InvalidCoefficient, "zero denominator")
	}
	c := Q{big.NewRat(t.Num, t.Den)}
	if t.Neg {
		c = Q{new(big.Rat).Neg(c.Rat)}
	}

	exp := make(Exponents, ring.Arity())
	for _, f := range t.Factors {
		i, ok := ring.IndexOf(f.Symbol)
		if !ok {
			return Monomial[Q]{}, newParseError(UnknownSymbol, "%s", f.Symbol)
		}
		exp[i] += uint32(f.Exponent)
	}

	return Monomial[Q]{Coefficient: c, Exponents: exp}, nil
}

func translateParseErr(err error) error {
	var pe *parse.Error
	if errors.As(err, &pe) {
		switch pe.Kind {
		case parse.InvalidCoefficient:
			return newParseError(InvalidCoefficient, "%s", pe.Text)
		default:
			return newParseError(MalformedTerm, "%s", pe.Text)
		}
	}
	return newParseError(MalformedTerm, "%s", err.Error())
}
