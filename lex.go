package polynomial

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenTerm is one signed term, with whitespace removed.
	tokenTerm
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case tokenTerm:
		return "Term"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	v    rune
	eof  bool
}

func lex(src io.RuneScanner, v rune) *lexer {
	return &lexer{
		src:  src,
		rune: 1,
		v:    v,
	}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next term from the input. A term ends before a + or - sign,
// at the end of the input, or before any rune in wseof. Whitespace is
// dropped, except that a single space is kept between two parts of a number
// so that the number fails to parse. The first time the
// input ends, the result is an EOF token with a nil error. Subsequent times,
// the result is an empty token with io.EOF.
func (l *lexer) next(wseof string) (lexToken, error) {
	if l.eof {
		return lexToken{}, io.EOF
	}
	defer l.buf.Reset()
	tok := lexToken{pos: l.rune}
	var st termState
	var gap bool
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if l.buf.Len() > 0 {
					return l.term(tok), nil
				}
				tok.kind = tokenEOF
				l.eof = true
				return tok, nil
			}
			return tok, err
		}
		switch {
		case strings.ContainsRune(wseof, r):
			if l.buf.Len() > 0 {
				l.unreadRune()
				return l.term(tok), nil
			}
			tok.kind = tokenEOF
			l.eof = true
			return tok, nil
		case unicode.IsSpace(r):
			if l.buf.Len() == 0 {
				tok.pos++
			} else {
				gap = true
			}
			continue
		case r == '+', r == '-':
			if l.buf.Len() > 0 && !st.signed() {
				l.unreadRune()
				return l.term(tok), nil
			}
		}
		if gap && numeric(st.last) && numeric(r) {
			l.buf.WriteByte(' ')
		}
		gap = false
		l.buf.WriteRune(r)
		st.see(r, l.v)
	}
}

func (l *lexer) term(tok lexToken) lexToken {
	tok.text = l.buf.String()
	tok.kind = tokenTerm
	return tok
}

// termState tracks enough of a term being scanned to decide whether a sign
// belongs to it.
type termState struct {
	// last is the last rune in the term.
	last rune
	// mant is whether the rune before last is a digit or decimal point.
	mant bool
	// vr is whether the variable marker has appeared.
	vr bool
}

func (s *termState) see(r, v rune) {
	s.mant = numeric(s.last)
	s.last = r
	if r == v {
		s.vr = true
	}
}

// signed returns whether a sign at this point continues the term, which is
// the case directly after an exponent marker or after the e of a coefficient
// in scientific notation.
func (s *termState) signed() bool {
	switch s.last {
	case '^':
		return true
	case 'e', 'E':
		return !s.vr && s.mant
	default:
		return false
	}
}

// numeric returns whether r can appear in the digits of a number.
func numeric(r rune) bool {
	return '0' <= r && r <= '9' || r == '.'
}
