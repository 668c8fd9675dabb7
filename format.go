package polynomial

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// String formats p using the default options. The result parses back to the
// same terms when every coefficient is exactly representable in the output.
func (p Polynomial) String() string {
	return Format(p)
}

// Format formats the terms of p in order as one line of text.
//
// Each coefficient is written as a decimal with at least one fractional digit,
// e.g. "7.0" or "-2.5", or in scientific notation like "1.0E7" when its
// magnitude is at least 1e7 or less than 1e-3. A coefficient of 1 or -1 on a
// non-constant term is written as just the variable, "x" or "-x". Every
// non-constant term gets its exponent, even when it is 1, so 1x^1-7 formats
// as "x^1-7.0". Each term after the first is preceded by + unless its
// coefficient is written with a leading -, so that terms with zero
// coefficients are still delimited.
func Format(p Polynomial, opts ...FormatOption) string {
	f := fmtctx{v: 'x'}
	for _, opt := range opts {
		f = opt.formatOption(f)
	}
	var b strings.Builder
	for i, t := range p.terms() {
		f.term(&b, t, i == 0)
	}
	return b.String()
}

func (f *fmtctx) term(b *strings.Builder, t Term, first bool) {
	switch {
	case t.Coef == 1 && t.Exp != 0:
		if !first {
			b.WriteByte('+')
		}
		b.WriteRune(f.v)
	case t.Coef == -1 && t.Exp != 0:
		b.WriteByte('-')
		b.WriteRune(f.v)
	default:
		s := fmtcoef(t.Coef)
		if !first && s[0] != '-' {
			b.WriteByte('+')
		}
		b.WriteString(s)
		if t.Exp != 0 {
			b.WriteRune(f.v)
		}
	}
	if t.Exp != 0 {
		b.WriteByte('^')
		b.WriteString(strconv.FormatInt(int64(t.Exp), 10))
	}
}

// fmtcoef formats a coefficient as the shortest decimal that reads back to the
// same value, always with a fractional part.
func fmtcoef(c float64) string {
	switch {
	case math.IsNaN(c):
		return "NaN"
	case math.IsInf(c, 1):
		return "Infinity"
	case math.IsInf(c, -1):
		return "-Infinity"
	case c == 0:
		if math.Signbit(c) {
			return "-0.0"
		}
		return "0.0"
	}
	if a := math.Abs(c); 1e-3 <= a && a < 1e7 {
		s := strconv.FormatFloat(c, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}
	s := strconv.FormatFloat(c, 'e', -1, 64)
	m, e, _ := strings.Cut(s, "e")
	if !strings.Contains(m, ".") {
		m += ".0"
	}
	n, _ := strconv.Atoi(e)
	return m + "E" + strconv.Itoa(n)
}

// WriteTo writes the formatted polynomial to w with no line terminator. It
// implements io.WriterTo.
func (p Polynomial) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, p.String())
	return int64(n), err
}

// Print writes the formatted polynomial to w followed by a newline.
func Print(w io.Writer, p Polynomial, opts ...FormatOption) error {
	_, err := io.WriteString(w, Format(p, opts...)+"\n")
	return err
}

// MarshalText formats p using the default options. It implements
// encoding.TextMarshaler.
func (p Polynomial) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}
