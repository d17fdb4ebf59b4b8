// Command fngen renders the fixed-arity function family of package purefn.
//
// Usage:
//
//	fngen --out ./purefn            write function1_gen.go ... tuple_gen.go
//	fngen --out ./purefn --check    fail when a generated file is missing or stale
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
