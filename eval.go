package polynomial

import (
	"errors"
	"io"
	"math"
	"math/big"
	"strings"

	"github.com/zephyrtronium/bigfloat"
)

// Evaluate returns the value of p at x, summing the terms in order. By
// convention x^0 is 1 for every x, including 0. Non-finite inputs follow the
// usual floating-point rules.
func (p Polynomial) Evaluate(x float64) float64 {
	var r float64
	for _, t := range p.terms() {
		r += t.Coef * math.Pow(x, float64(t.Exp))
	}
	return r
}

// EvaluateBig returns the value of p at x computed with prec bits of
// precision. If prec is 0, the precision of x is used, or 64 if x has none.
// If the value is not a real number, e.g. a NaN coefficient or infinite terms
// of opposite signs, the result is nil and the error is a DomainError.
func (p Polynomial) EvaluateBig(x *big.Float, prec uint) (r *big.Float, err error) {
	if prec == 0 {
		prec = x.Prec()
		if prec == 0 {
			prec = 64
		}
	}
	defer func() {
		v := recover()
		if v == nil {
			return
		}
		var nan big.ErrNaN
		if e, ok := v.(error); ok && errors.As(e, &nan) {
			r, err = nil, &DomainError{X: x, Msg: nan.Error()}
			return
		}
		panic(v)
	}()
	r = new(big.Float).SetPrec(prec)
	var c, pw big.Float
	c.SetPrec(prec)
	pw.SetPrec(prec)
	for _, t := range p.terms() {
		if math.IsNaN(t.Coef) {
			return nil, &DomainError{X: x, Msg: "NaN coefficient"}
		}
		c.SetFloat64(t.Coef)
		intpow(&pw, x, t.Exp)
		c.Mul(&c, &pw)
		r.Add(r, &c)
	}
	return r, nil
}

// intpow sets z to x^n and returns z, using the precision of z. Signed zeros
// and infinities follow math.Pow.
func intpow(z, x *big.Float, n int32) *big.Float {
	neg := x.Signbit() && n%2 != 0
	switch {
	case n == 0:
		return z.SetInt64(1)
	case x.Sign() == 0 && n < 0, x.IsInf() && n > 0:
		return z.SetInf(neg)
	case x.Sign() == 0, x.IsInf():
		z.SetInt64(0)
		if neg {
			z.Neg(z)
		}
		return z
	}
	var a big.Float
	a.SetPrec(z.Prec()).Abs(x)
	if n == 1 {
		z.Set(&a)
	} else {
		var e big.Float
		e.SetInt64(int64(n))
		// Pow does not always write to its first argument.
		z.Set(bigfloat.Pow(z, &a, &e))
	}
	if neg {
		z.Neg(z)
	}
	return z
}

// Eval is a shortcut to parse a polynomial and evaluate it at x.
func Eval(src io.RuneScanner, x float64, opts ...ParseOption) (float64, error) {
	p, err := Parse(src, opts...)
	if err != nil {
		return 0, err
	}
	return p.Evaluate(x), nil
}

// EvalString is a shortcut to parse a polynomial from a string and evaluate it
// at x.
func EvalString(src string, x float64, opts ...ParseOption) (float64, error) {
	return Eval(strings.NewReader(src), x, opts...)
}

// DomainError is an error returned when a polynomial has no real value at a
// point. DomainError unwraps to big.ErrNaN.
type DomainError struct {
	// X is the point of evaluation.
	X *big.Float
	// Msg describes the problem.
	Msg string
}

func (err *DomainError) Error() string {
	return "polynomial: no real value at " + err.X.String() + ": " + err.Msg
}

func (err *DomainError) Unwrap() error {
	return big.ErrNaN{}
}
