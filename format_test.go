package polynomial_test

import (
	"math"
	"strings"
	"testing"

	"github.com/zephyrtronium/polynomial"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		name string
		p    polynomial.Polynomial
		want string
	}{
		{"zero-value", polynomial.Polynomial{}, "0.0"},
		{"zero", polynomial.Zero(), "0.0"},
		{"exp-one", polynomial.FromTerms(tt{1, 1}, tt{-7, 0}), "x^1-7.0"},
		{"quadratic", polynomial.FromTerms(tt{3, 2}, tt{5, 1}, tt{-7, 0}), "3.0x^2+5.0x^1-7.0"},
		{"neg-one", polynomial.FromTerms(tt{-1, 2}, tt{1, 0}), "-x^2+1.0"},
		{"one-const", polynomial.FromTerms(tt{1, 0}), "1.0"},
		{"neg-one-const", polynomial.FromTerms(tt{-1, 0}), "-1.0"},
		{"plus-var", polynomial.FromTerms(tt{2, 3}, tt{1, 1}), "2.0x^3+x^1"},
		{"zero-term", polynomial.FromTerms(tt{1, 2}, tt{0, 1}, tt{-4, 0}), "x^2+0.0x^1-4.0"},
		{"neg-zero", polynomial.FromTerms(tt{1, 1}, tt{math.Copysign(0, -1), 0}), "x^1-0.0"},
		{"neg-exp", polynomial.FromTerms(tt{2, -1}), "2.0x^-1"},
		{"fraction", polynomial.FromTerms(tt{0.5, 1}, tt{-2.25, 0}), "0.5x^1-2.25"},
		{"small", polynomial.FromTerms(tt{0.001, 0}), "0.001"},
		{"below-small", polynomial.FromTerms(tt{2.5e-4, 0}), "2.5E-4"},
		{"large", polynomial.FromTerms(tt{1234567.5, 0}), "1234567.5"},
		{"above-large", polynomial.FromTerms(tt{1e7, 1}), "1.0E7x^1"},
		{"huge", polynomial.FromTerms(tt{1e21, 0}), "1.0E21"},
		{"tiny-neg", polynomial.FromTerms(tt{1, 4}, tt{-1.5e-10, 3}), "x^4-1.5E-10x^3"},
		{"nan", polynomial.FromTerms(tt{math.NaN(), 0}), "NaN"},
		{"inf", polynomial.FromTerms(tt{1, 1}, tt{math.Inf(1), 0}), "x^1+Infinity"},
		{"neg-inf", polynomial.FromTerms(tt{math.Inf(-1), 2}), "-Infinityx^2"},
		{"unsorted", polynomial.FromTerms(tt{-7, 0}, tt{1, 1}), "-7.0+x^1"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.p.String(); got != c.want {
				t.Errorf("want %q, got %q", c.want, got)
			}
		})
	}
}

func TestFormatVariable(t *testing.T) {
	p := polynomial.FromTerms(tt{1, 2}, tt{-1, 1}, tt{3, 1}, tt{4, 0})
	if got, want := polynomial.Format(p, polynomial.Variable('t')), "t^2-t^1+3.0t^1+4.0"; got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestFormatVariableInWord(t *testing.T) {
	p := polynomial.FromTerms(tt{math.Inf(1), 2}, tt{math.Inf(-1), 1}, tt{math.NaN(), 1}, tt{2, 1}, tt{math.Inf(1), 0}, tt{math.NaN(), 0})
	for _, v := range "nityfaIN" {
		opt := polynomial.Variable(v)
		s := polynomial.Format(p, opt)
		q, err := polynomial.ParseString(s, opt)
		if err != nil {
			t.Errorf("variable %q: %q failed to parse: %v", v, s, err)
			continue
		}
		got, want := q.Terms(), p.Terms()
		if len(got) != len(want) {
			t.Errorf("variable %q: %q parsed to %v", v, s, got)
			continue
		}
		for i := range want {
			g, w := got[i], want[i]
			if g.Exp != w.Exp || !(g.Coef == w.Coef || math.IsNaN(g.Coef) && math.IsNaN(w.Coef)) {
				t.Errorf("variable %q: %q parsed to %v, want %v", v, s, got, want)
				break
			}
		}
	}
}

func TestPrint(t *testing.T) {
	var b strings.Builder
	if err := polynomial.Print(&b, polynomial.FromTerms(tt{1, 1}, tt{-7, 0})); err != nil {
		t.Fatal(err)
	}
	if got, want := b.String(), "x^1-7.0\n"; got != want {
		t.Errorf("want %q, got %q", want, got)
	}
	b.Reset()
	n, err := polynomial.FromTerms(tt{1, 1}, tt{-7, 0}).WriteTo(&b)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := b.String(), "x^1-7.0"; got != want || n != int64(len(want)) {
		t.Errorf("want %q (%d bytes), got %q (%d bytes)", want, len(want), got, n)
	}
}

func TestFormatRoundTrip(t *testing.T) {
	cases := []polynomial.Polynomial{
		polynomial.Zero(),
		polynomial.FromTerms(tt{3, 2}, tt{5, 1}, tt{-7, 0}),
		polynomial.FromTerms(tt{1, 1}, tt{-7, 0}),
		polynomial.FromTerms(tt{1, 2}, tt{0, 1}, tt{-4, 0}),
		polynomial.FromTerms(tt{-1, 5}, tt{1, 0}),
		polynomial.FromTerms(tt{2, 1}, tt{-3, -2}),
		polynomial.FromTerms(tt{1e7, 3}, tt{-2.5e-4, 2}, tt{1e-12, 1}),
		polynomial.FromTerms(tt{0.1, 1}, tt{1.0 / 3, 0}),
		polynomial.FromTerms(tt{math.Inf(1), 1}, tt{math.Inf(-1), 0}),
		polynomial.FromTerms(tt{7, 0}, tt{1, 3}, tt{1, 3}),
	}
	for _, p := range cases {
		s := p.String()
		q, err := polynomial.ParseString(s)
		if err != nil {
			t.Errorf("%q failed to parse: %v", s, err)
			continue
		}
		if !p.Equal(q) {
			t.Errorf("%q parsed to %v, want %v", s, q.Terms(), p.Terms())
		}
	}
}
