package polynomial

import (
	"cmp"
	"slices"
)

// Term is one coefficient-exponent pair, contributing Coef * x^Exp.
type Term struct {
	Coef float64 `json:"coef"`
	Exp  int32   `json:"exp"`
}

// Polynomial is a univariate polynomial stored as a sparse list of terms. The
// zero value is the zero polynomial, with the single term 0x^0. A Polynomial
// is never modified after construction, so it is safe to share.
type Polynomial struct {
	t []Term
}

// zeroterms is the term list of the zero polynomial. It must not be modified.
var zeroterms = []Term{{}}

// Zero returns the zero polynomial.
func Zero() Polynomial {
	return Polynomial{t: []Term{{}}}
}

// New creates a polynomial from parallel lists of coefficients and exponents.
// The lists must have the same, non-zero length. Terms are kept in the order
// given. New does not check for repeated exponents.
func New(coefs []float64, exps []int32) (Polynomial, error) {
	if len(coefs) != len(exps) {
		return Polynomial{}, &LengthError{Coefs: len(coefs), Exps: len(exps)}
	}
	if len(coefs) == 0 {
		return Polynomial{}, &EmptyError{}
	}
	t := make([]Term, len(coefs))
	for i, c := range coefs {
		t[i] = Term{Coef: c, Exp: exps[i]}
	}
	return Polynomial{t: t}, nil
}

// FromTerms creates a polynomial from a list of terms in the order given.
// With no terms, the result is the zero polynomial.
func FromTerms(terms ...Term) Polynomial {
	if len(terms) == 0 {
		return Zero()
	}
	return Polynomial{t: append([]Term(nil), terms...)}
}

// terms returns the term list without copying.
func (p Polynomial) terms() []Term {
	if len(p.t) == 0 {
		return zeroterms
	}
	return p.t
}

// Terms returns a copy of the polynomial's terms.
func (p Polynomial) Terms() []Term {
	return append([]Term(nil), p.terms()...)
}

// Len returns the number of terms in p.
func (p Polynomial) Len() int {
	return len(p.terms())
}

// Degree returns the largest exponent among the terms of p with non-zero
// coefficients. ok is false if every coefficient is zero.
func (p Polynomial) Degree() (deg int32, ok bool) {
	for _, t := range p.terms() {
		if t.Coef == 0 {
			continue
		}
		if !ok || t.Exp > deg {
			deg, ok = t.Exp, true
		}
	}
	return deg, ok
}

// Equal returns whether p and q have the same terms in the same order.
// Coefficients are compared with ==, so a NaN coefficient is never equal.
func (p Polynomial) Equal(q Polynomial) bool {
	a, b := p.terms(), q.terms()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// IsCanonical returns whether the exponents of p are strictly decreasing.
func (p Polynomial) IsCanonical() bool {
	return descending(p.terms())
}

// Canonical returns p with its terms sorted by descending exponent and terms
// with equal exponents summed. Terms whose coefficients sum to zero are kept.
func (p Polynomial) Canonical() Polynomial {
	t := p.terms()
	if descending(t) {
		return p
	}
	return Polynomial{t: canonical(append([]Term(nil), t...))}
}

// descending returns whether the exponents of t are strictly decreasing.
func descending(t []Term) bool {
	for i := 1; i < len(t); i++ {
		if t[i].Exp >= t[i-1].Exp {
			return false
		}
	}
	return true
}

// canonical sorts t in place by descending exponent and merges equal
// exponents. Among equal exponents, coefficients are summed in list order.
func canonical(t []Term) []Term {
	slices.SortStableFunc(t, func(a, b Term) int { return cmp.Compare(b.Exp, a.Exp) })
	k := 0
	for i := 1; i < len(t); i++ {
		if t[i].Exp == t[k].Exp {
			t[k].Coef += t[i].Coef
			continue
		}
		k++
		t[k] = t[i]
	}
	return t[:k+1]
}
