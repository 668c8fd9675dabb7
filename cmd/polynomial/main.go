// Command polynomial parses, combines, evaluates, and serves polynomials in a
// single variable.
//
// Operands are polynomial text, @path to read the first line of a file, or -
// to read the first line of standard input. Put -- before operands that
// begin with a minus sign so they are not taken as flags:
//
//	polynomial eval --at 2 -- -x^2+3
//	polynomial mul x+1 @factor.txt -o product.txt
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "polynomial:", err)
		os.Exit(1)
	}
}
