package polynomial

import (
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Poly = Term { ('+' | '-') Term }
// Term = ['+' | '-'] [coef] 'x' [['^'] exp] | ['+' | '-'] num
//
// Whitespace is ignored. A sign directly after '^' or after the e of a number
// in scientific notation does not begin a new term.

// Parse reads one line of text and builds the polynomial it describes. The
// given options are applied in order. Terms are kept in the order they appear;
// terms sharing an exponent are not merged unless the Canonical option is
// given.
//
// If a coefficient or exponent is not a valid number, the error is a
// *ParseError. If there are no terms at all, the error is an *EmptyError. If
// reading from src fails, the error is an *IOError.
func Parse(src io.RuneScanner, opts ...ParseOption) (Polynomial, error) {
	p := parsectx{v: 'x', wseof: "\n"}
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	scan := lex(src, p.v)
	var t []Term
	for {
		tok, err := scan.next(p.wseof)
		if err != nil {
			return Polynomial{}, &IOError{Op: "read", Err: err}
		}
		if tok.kind == tokenEOF {
			if len(t) == 0 {
				return Polynomial{}, &EmptyError{Col: tok.pos}
			}
			break
		}
		term, err := parseterm(tok, p.v)
		if err != nil {
			return Polynomial{}, err
		}
		t = append(t, term)
	}
	if p.canon {
		t = canonical(t)
	}
	return Polynomial{t: t}, nil
}

// ParseString is a shortcut to parse a polynomial from a string.
func ParseString(src string, opts ...ParseOption) (Polynomial, error) {
	return Parse(strings.NewReader(src), opts...)
}

// MustParse is like ParseString but panics if the polynomial cannot be parsed.
// It is meant for tests and for initializing package-level variables.
func MustParse(src string, opts ...ParseOption) Polynomial {
	p, err := ParseString(src, opts...)
	if err != nil {
		panic("polynomial: MustParse(" + strconv.Quote(src) + "): " + err.Error())
	}
	return p
}

// parseterm converts a single term token into a Term.
func parseterm(tok lexToken, v rune) (Term, error) {
	// The variable may be a letter of a non-finite coefficient, as in
	// "Infinityn^2" with variable n, so search for it after such a word.
	off := special(tok.text)
	k := strings.IndexRune(tok.text[off:], v)
	if k >= 0 {
		k += off
	}
	if k < 0 {
		c, err := parsecoef(tok.text)
		if err != nil {
			return Term{}, &ParseError{Col: tok.pos, Term: tok.text, Part: "constant", Err: err}
		}
		return Term{Coef: c}, nil
	}
	var r Term
	switch s := tok.text[:k]; s {
	case "", "+":
		r.Coef = 1
	case "-":
		r.Coef = -1
	default:
		c, err := parsecoef(s)
		if err != nil {
			return Term{}, &ParseError{Col: tok.pos, Term: tok.text, Part: "coefficient", Err: err}
		}
		r.Coef = c
	}
	s := tok.text[k+utf8.RuneLen(v):]
	if s == "" {
		r.Exp = 1
		return r, nil
	}
	e, err := strconv.ParseInt(strings.TrimPrefix(s, "^"), 10, 32)
	if err != nil {
		return Term{}, &ParseError{Col: tok.pos, Term: tok.text, Part: "exponent", Err: err}
	}
	r.Exp = int32(e)
	return r, nil
}

// parsecoef parses a coefficient. A leading + is allowed before NaN, which
// strconv does not accept on its own.
func parsecoef(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimPrefix(s, "+"), 64)
}

// special returns the length of a leading sign and Infinity, Inf, or NaN
// word in s, matched without regard to case, or 0 if there is no such word.
func special(s string) int {
	n := 0
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		n = 1
	}
	for _, w := range [...]string{"infinity", "inf", "nan"} {
		if len(s)-n >= len(w) && strings.EqualFold(s[n:n+len(w)], w) {
			return n + len(w)
		}
	}
	return 0
}

// UnmarshalText parses a polynomial from text using the default options. It
// implements encoding.TextUnmarshaler.
func (p *Polynomial) UnmarshalText(text []byte) error {
	q, err := ParseString(string(text))
	if err != nil {
		return err
	}
	*p = q
	return nil
}
