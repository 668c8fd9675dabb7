package polynomial

// Add returns the sum of p and q. The result is canonical: terms appear in
// descending order of exponent, and terms of p and q sharing an exponent are
// combined into one. A coefficient that sums to zero remains as a term.
//
// Add merges the term lists in order. Operands that are not already canonical
// are put in canonical form first.
func (p Polynomial) Add(q Polynomial) Polynomial {
	a := p.Canonical().terms()
	b := q.Canonical().terms()
	r := make([]Term, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].Exp == b[j].Exp:
			r = append(r, Term{Coef: a[i].Coef + b[j].Coef, Exp: a[i].Exp})
			i++
			j++
		case a[i].Exp > b[j].Exp:
			r = append(r, a[i])
			i++
		default:
			r = append(r, b[j])
			j++
		}
	}
	r = append(r, a[i:]...)
	r = append(r, b[j:]...)
	return Polynomial{t: r}
}

// Multiply returns the product of p and q. Every pair of terms contributes one
// product, and products sharing an exponent are summed. The result has one
// term per distinct exponent, in descending order, including any whose
// products cancel to zero. Operands need not be canonical.
//
// Exponents are summed with int32 arithmetic and wrap on overflow.
func (p Polynomial) Multiply(q Polynomial) Polynomial {
	a, b := p.terms(), q.terms()
	idx := make(map[int32]int, len(a)+len(b))
	r := make([]Term, 0, len(a)+len(b))
	for _, s := range a {
		for _, t := range b {
			e := s.Exp + t.Exp
			c := s.Coef * t.Coef
			if k, ok := idx[e]; ok {
				r[k].Coef += c
				continue
			}
			idx[e] = len(r)
			r = append(r, Term{Coef: c, Exp: e})
		}
	}
	// Exponents are already unique, so this only sorts.
	return Polynomial{t: canonical(r)}
}
