package polynomial

import (
	"bufio"
	"errors"
	"os"
)

// ReadFile parses the first line of the named file. Errors opening or reading
// the file are *IOErrors; other errors are as for Parse.
func ReadFile(name string, opts ...ParseOption) (Polynomial, error) {
	f, err := os.Open(name)
	if err != nil {
		return Polynomial{}, &IOError{Op: "open", Path: name, Err: unwrapPath(err)}
	}
	defer f.Close()
	// The newline default applies unless the caller overrides it.
	p, err := Parse(bufio.NewReader(f), opts...)
	var ioerr *IOError
	if errors.As(err, &ioerr) {
		ioerr.Path = name
	}
	return p, err
}

// WriteFile writes the formatted polynomial to the named file, replacing any
// existing contents. No newline is written after it.
func WriteFile(name string, p Polynomial, opts ...FormatOption) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return &IOError{Op: "create", Path: name, Err: unwrapPath(err)}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &IOError{Op: "close", Path: name, Err: unwrapPath(cerr)}
		}
	}()
	if _, err := f.WriteString(Format(p, opts...)); err != nil {
		return &IOError{Op: "write", Path: name, Err: unwrapPath(err)}
	}
	return nil
}

// unwrapPath strips an *os.PathError, since IOError already carries the path
// and operation.
func unwrapPath(err error) error {
	var pe *os.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}
