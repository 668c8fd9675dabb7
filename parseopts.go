package polynomial

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

// FormatOption is an option for formatting.
type FormatOption interface {
	formatOption(fmtctx) fmtctx
}

// Option is an option for both parsing and formatting.
type Option interface {
	ParseOption
	FormatOption
}

// parsectx holds general data for parsing.
type parsectx struct {
	// v is the variable marker.
	v rune
	// wseof is a string containing the whitespace characters that end the
	// polynomial.
	wseof string
	// canon indicates that the parsed terms are to be put in canonical form.
	canon bool
}

// fmtctx holds general data for formatting.
type fmtctx struct {
	// v is the variable marker.
	v rune
}

type (
	varopt   rune
	eofopt   string
	canonopt struct{}
)

// Variable sets the rune used as the variable, in place of x. It applies to
// both parsing and formatting. Variable panics if r is a digit, a sign, a
// decimal point, ^, e, E, or whitespace, since those already mean something
// in the text of a polynomial.
func Variable(r rune) Option {
	if unicode.IsDigit(r) || unicode.IsSpace(r) || strings.ContainsRune("+-.^eE", r) || r == utf8.RuneError {
		panic("polynomial: cannot use " + strconv.QuoteRune(r) + " as variable")
	}
	return varopt(r)
}

func (o varopt) parseOption(p parsectx) parsectx {
	p.v = rune(o)
	return p
}

func (o varopt) formatOption(f fmtctx) fmtctx {
	f.v = rune(o)
	return f
}

// StopOn tells the parser to treat a list of whitespace characters as ending
// the polynomial. Other whitespace is ignored. The default is to stop at a
// newline, so that Parse reads one line. With no arguments, StopOn makes the
// parser read to EOF.
//
// StopOn overrides the effect of any previous StopOn in the parsing options.
func StopOn(chars ...rune) ParseOption {
	v := make([]rune, 0, len(chars))
	for _, r := range chars {
		if !unicode.IsSpace(r) {
			panic("polynomial: cannot stop on " + strconv.QuoteRune(r))
		}
		if strings.ContainsRune(string(v), r) {
			continue
		}
		v = append(v, r)
	}
	return eofopt(string(v))
}

func (o eofopt) parseOption(p parsectx) parsectx {
	p.wseof = string(o)
	return p
}

// Canonical tells the parser to sort terms by descending exponent and merge
// terms sharing an exponent.
func Canonical() ParseOption {
	return canonopt{}
}

func (canonopt) parseOption(p parsectx) parsectx {
	p.canon = true
	return p
}
