// Package polynomial implements univariate polynomials with real coefficients
// and integer exponents.
//
// The text syntax is the one you'd write in your notes: "3x^2-5x+7" is three
// terms, "-x+2" is two. A coefficient of 1 or -1 may be left out, and a bare
// "x" has exponent 1. Exponents may be negative, as in "2x^-1".
//
// A Polynomial is a sparse list of terms. Values are immutable; Add and
// Multiply return new polynomials. Both produce canonical term lists, meaning
// exponents are unique and in descending order, so results compose freely.
// Parsing keeps terms in the order they're written unless the Canonical
// option is given.
package polynomial
