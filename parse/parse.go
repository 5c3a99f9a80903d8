// Package parse reads the monomial/polynomial text grammar into a
// ring-agnostic intermediate form. It knows nothing of a ring's declared
// symbols or coefficient field; the caller (package poly's parse.go)
// resolves symbol names and builds rational coefficients from the Term
// values this package returns.
//
// The grammar has no operator precedence to resolve: a polynomial is just
// a sum of terms, and a term is a signed coefficient followed by a run of
// symbol^exponent factors. A direct recursive-descent reader over the
// token stream is the natural fit, so no expression tree is built at all.
package parse

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/arrg/polyq/parse/scan"
)

// A Factor is one symbol^exponent pair within a term. Exponent defaults
// to 1 when the grammar omits "^exponent".
type Factor struct {
	Symbol   string
	Exponent int
}

// A Term is one coefficient-and-factors summand of a polynomial: Neg and
// Num/Den together give the signed rational coefficient, and Factors
// gives the monomial (a missing symbol contributes exponent 0, so an
// empty Factors slice means a constant term).
type Term struct {
	Neg      bool
	Num, Den int64
	Factors  []Factor
}

// An ErrorKind classifies a structural grammar failure this package can
// detect on its own, independent of any ring.
type ErrorKind int

const (
	// InvalidCoefficient: a numeral did not parse as an integer, or a
	// denominator was zero or negative.
	InvalidCoefficient ErrorKind = iota
	// MalformedTerm: the token stream did not match the term grammar.
	MalformedTerm
)

// An Error reports a grammar failure at a source column.
type Error struct {
	Kind   ErrorKind
	Text   string
	Column int
}

func (e *Error) Error() string {
	return "parse: " + e.Text
}

// Parse reads a complete polynomial - one or more terms separated by "+",
// or by a bare "-" that carries its sign into the following term - from s
// and returns its terms in source order. Parse consumes through EOF; a
// malformed token stream yields an *Error.
func Parse(s *scan.Scanner) ([]Term, error) {
	r := &reader{s: s}

	var terms []Term
	for {
		t, err := parseTerm(r)
		if err != nil {
			return nil, err
		}
		terms = append(terms, t)

		tok := r.peek()
		switch {
		case tok.Type == scan.EOF:
			return terms, nil
		case tok.Type == scan.Operator && tok.Text == "+":
			r.next()
		case tok.Type == scan.Operator && tok.Text == "-":
			// Leave the "-" unconsumed; parseTerm reads a leading "-" as
			// the next term's sign.
		default:
			return nil, errors.WithStack(&Error{Kind: MalformedTerm, Text: tok.Text, Column: tok.Location.Column})
		}
	}
}

// reader adds one token of lookahead on top of a [scan.Scanner].
type reader struct {
	s        *scan.Scanner
	buffered *scan.Token
}

func (r *reader) peek() scan.Token {
	if r.buffered == nil {
		tok := r.s.Next()
		r.buffered = &tok
	}
	return *r.buffered
}

func (r *reader) next() scan.Token {
	tok := r.peek()
	r.buffered = nil
	return tok
}

func parseTerm(r *reader) (Term, error) {
	t := Term{Num: 1, Den: 1}

	tok := r.peek()
	empty := true

	if tok.Type == scan.Operator && tok.Text == "-" {
		r.next()
		t.Neg = true
		empty = false
		tok = r.peek()
	}

	if tok.Type == scan.Int {
		empty = false
		r.next()
		n, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			return Term{}, errors.WithStack(&Error{Kind: InvalidCoefficient, Text: tok.Text, Column: tok.Location.Column})
		}
		t.Num = n
		tok = r.peek()

		if tok.Type == scan.Operator && tok.Text == "/" {
			r.next()
			dtok := r.peek()
			if dtok.Type != scan.Int {
				return Term{}, errors.WithStack(&Error{Kind: InvalidCoefficient, Text: dtok.Text, Column: dtok.Location.Column})
			}
			r.next()
			d, err := strconv.ParseInt(dtok.Text, 10, 64)
			if err != nil || d <= 0 {
				return Term{}, errors.WithStack(&Error{Kind: InvalidCoefficient, Text: dtok.Text, Column: dtok.Location.Column})
			}
			t.Den = d
			tok = r.peek()
		}
	}

	for tok.Type == scan.Identifier {
		empty = false
		r.next()
		f := Factor{Symbol: tok.Text, Exponent: 1}

		tok = r.peek()
		if tok.Type == scan.Operator && tok.Text == "^" {
			r.next()
			etok := r.peek()
			if etok.Type != scan.Int {
				return Term{}, errors.WithStack(&Error{Kind: MalformedTerm, Text: etok.Text, Column: etok.Location.Column})
			}
			r.next()
			e, err := strconv.Atoi(etok.Text)
			if err != nil || e < 0 {
				return Term{}, errors.WithStack(&Error{Kind: MalformedTerm, Text: etok.Text, Column: etok.Location.Column})
			}
			f.Exponent = e
			tok = r.peek()
		}

		t.Factors = append(t.Factors, f)
	}

	if tok.Type == scan.Error {
		return Term{}, errors.WithStack(&Error{Kind: MalformedTerm, Text: tok.Text, Column: tok.Location.Column})
	}
	if empty {
		return Term{}, errors.WithStack(&Error{Kind: MalformedTerm, Text: tok.Text, Column: tok.Location.Column})
	}

	return t, nil
}
