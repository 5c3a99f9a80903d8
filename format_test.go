package poly

import "testing"

func TestFormatMatchesString(t *testing.T) {
	r := xyRing(t)
	p := NewPolynomial[Q](r, zeroQ, mono(1, 2, 0), mono(-3, 0, 1))
	if got, want := Format(p), p.String(); got != want {
		t.Errorf("Format(p) = %q, want %q", got, want)
	}
}
