package polynomial

import (
	"errors"
	"strconv"
)

// ErrInvalidInput is matched by errors describing input that can't form a
// polynomial at all, such as an empty line or mismatched coefficient and
// exponent lists. Use errors.Is to check for it.
var ErrInvalidInput = errors.New("polynomial: invalid input")

// ParseError is an error indicating a term whose coefficient or exponent is
// not a valid number. It implements InputError and unwraps to the error from
// package strconv.
type ParseError struct {
	// Col is the position of the start of the term.
	Col int
	// Term is the text of the term. Whitespace is removed except within a
	// number, where it is shown as one space.
	Term string
	// Part is "coefficient", "exponent", or "constant".
	Part string
	// Err is the underlying number conversion error.
	Err error
}

func (err *ParseError) Error() string {
	msg := "invalid " + err.Part + " in term " + strconv.Quote(err.Term)
	var ne *strconv.NumError
	if errors.As(err.Err, &ne) {
		msg += ": " + ne.Err.Error()
	} else if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return errpos(err.Col, msg)
}

func (err *ParseError) Pos() int {
	return err.Col
}

func (err *ParseError) Unwrap() error {
	return err.Err
}

// EmptyError is an error indicating that there were no terms to build a
// polynomial from. It implements InputError and matches ErrInvalidInput.
type EmptyError struct {
	// Col is the position at which input ended, or 0 if the terms came from
	// somewhere other than text.
	Col int
}

func (err *EmptyError) Error() string {
	if err.Col == 0 {
		return "polynomial: no terms"
	}
	return errpos(err.Col, "no terms")
}

func (err *EmptyError) Pos() int {
	return err.Col
}

func (err *EmptyError) Is(target error) bool {
	return target == ErrInvalidInput
}

// LengthError is an error indicating that the lists of coefficients and
// exponents passed to New have different lengths. It matches
// ErrInvalidInput.
type LengthError struct {
	Coefs, Exps int
}

func (err *LengthError) Error() string {
	return "polynomial: " + strconv.Itoa(err.Coefs) + " coefficients but " + strconv.Itoa(err.Exps) + " exponents"
}

func (err *LengthError) Is(target error) bool {
	return target == ErrInvalidInput
}

// IOError is an error from reading or writing the text of a polynomial.
type IOError struct {
	// Op is the operation that failed, e.g. "open", "read", or "write".
	Op string
	// Path is the file name, if any.
	Path string
	// Err is the underlying error.
	Err error
}

func (err *IOError) Error() string {
	if err.Path == "" {
		return "polynomial: " + err.Op + ": " + err.Err.Error()
	}
	return "polynomial: " + err.Op + " " + err.Path + ": " + err.Err.Error()
}

func (err *IOError) Unwrap() error {
	return err.Err
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid text implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the term that caused the error.
	Pos() int
}

var (
	_ InputError = (*ParseError)(nil)
	_ InputError = (*EmptyError)(nil)
)
