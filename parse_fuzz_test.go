package polynomial_test

import (
	"math"
	"testing"

	"github.com/zephyrtronium/polynomial"
)

func FuzzParse(f *testing.F) {
	f.Add("x")
	f.Add("3x^2+5x-7")
	f.Add("-x+2")
	f.Add("1.5e-3x^-2+Infinity")
	f.Fuzz(func(t *testing.T, s string) {
		p, err := polynomial.ParseString(s)
		if err != nil {
			return
		}
		for _, term := range p.Terms() {
			if math.IsNaN(term.Coef) {
				return
			}
		}
		q, err := polynomial.ParseString(p.String())
		if err != nil {
			t.Fatalf("%q formatted as %q, which fails to parse: %v", s, p.String(), err)
		}
		if !p.Equal(q) {
			t.Errorf("%q formatted as %q, which parses to %v instead of %v", s, p.String(), q.Terms(), p.Terms())
		}
	})
}
