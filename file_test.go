package polynomial_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/zephyrtronium/polynomial"
)

func TestFileRoundTrip(t *testing.T) {
	name := filepath.Join(t.TempDir(), "poly.txt")
	p := polynomial.FromTerms(tt{3, 2}, tt{5, 1}, tt{-7, 0})
	if err := polynomial.WriteFile(name, p); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(b), "3.0x^2+5.0x^1-7.0"; got != want {
		t.Errorf("file contents: want %q, got %q", want, got)
	}
	q, err := polynomial.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if !p.Equal(q) {
		t.Errorf("read %v, want %v", q.Terms(), p.Terms())
	}
}

func TestWriteFileTruncates(t *testing.T) {
	name := filepath.Join(t.TempDir(), "poly.txt")
	if err := os.WriteFile(name, []byte("x^9+x^8+x^7+x^6+x^5+x^4\nsecond line\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := polynomial.WriteFile(name, polynomial.MustParse("x")); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(b), "x^1"; got != want {
		t.Errorf("file contents: want %q, got %q", want, got)
	}
}

func TestReadFileFirstLine(t *testing.T) {
	name := filepath.Join(t.TempDir(), "poly.txt")
	if err := os.WriteFile(name, []byte("-x+2\n-3x^2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := polynomial.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if want := []tt{{-1, 1}, {2, 0}}; !equalTerms(p.Terms(), want) {
		t.Errorf("want %v, got %v", want, p.Terms())
	}
	p, err = polynomial.ReadFile(name, polynomial.StopOn())
	if err != nil {
		t.Fatal(err)
	}
	if want := []tt{{-1, 1}, {2, 0}, {-3, 2}}; !equalTerms(p.Terms(), want) {
		t.Errorf("StopOn(): want %v, got %v", want, p.Terms())
	}
}

func TestReadFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := polynomial.ReadFile(filepath.Join(dir, "missing.txt"))
	var ie *polynomial.IOError
	if !errors.As(err, &ie) {
		t.Fatalf("want *IOError, got %T (%v)", err, err)
	}
	if ie.Op != "open" || ie.Path != filepath.Join(dir, "missing.txt") {
		t.Errorf("wrong op or path in %+v", ie)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("%v does not match fs.ErrNotExist", err)
	}

	empty := filepath.Join(dir, "empty.txt")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = polynomial.ReadFile(empty)
	if !errors.Is(err, polynomial.ErrInvalidInput) {
		t.Errorf("empty file: want ErrInvalidInput, got %v", err)
	}

	bad := filepath.Join(dir, "bad.txt")
	if err := os.WriteFile(bad, []byte("3x^2+y"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = polynomial.ReadFile(bad)
	var pe *polynomial.ParseError
	if !errors.As(err, &pe) {
		t.Errorf("bad file: want *ParseError, got %T (%v)", err, err)
	}
}

func TestWriteFileErrors(t *testing.T) {
	name := filepath.Join(t.TempDir(), "no", "such", "dir", "poly.txt")
	err := polynomial.WriteFile(name, polynomial.Zero())
	var ie *polynomial.IOError
	if !errors.As(err, &ie) {
		t.Fatalf("want *IOError, got %T (%v)", err, err)
	}
	if ie.Op != "create" {
		t.Errorf("want op create, got %q", ie.Op)
	}
}
