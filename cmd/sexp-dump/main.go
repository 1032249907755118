// sexp-dump reads an s-expression file with the strict reader and, for
// comparison, with the chewxy/sexp parser. Useful when a file fails to
// parse and the question is whether the file or the reader is at fault.
package main

import (
	"fmt"
	"os"

	"github.com/chewxy/sexp"

	"github.com/OpenTraceLab/OpenTraceKicad/pkg/sexpr"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: sexp-dump <file>")
		os.Exit(1)
	}

	filename := os.Args[1]
	file, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "opening %s: %v\n", filename, err)
		os.Exit(1)
	}
	defer file.Close()

	info, _ := file.Stat()
	fmt.Printf("File size: %d bytes (%.2f MB)\n", info.Size(), float64(info.Size())/1024/1024)

	fmt.Println("\nStrict reader:")
	values, err := sexpr.Read(file)
	if err != nil {
		fmt.Printf("  Error: %v\n", err)
	} else {
		fmt.Printf("  Parsed %d top-level expressions\n", len(values))
		for i, v := range values {
			if p, ok := v.(*sexpr.Pair); ok {
				if head, ok := p.Car.(sexpr.Symbol); ok {
					fmt.Printf("  [%d] head: %s\n", i, head)
					continue
				}
			}
			fmt.Printf("  [%d] atom: %s\n", i, v)
		}
	}

	file.Seek(0, 0)

	fmt.Println("\nReference parser (chewxy/sexp):")
	sexps, err := sexp.Parse(file)
	if err != nil {
		fmt.Printf("  Error: %v\n", err)
		return
	}
	fmt.Printf("  Parsed %d s-expressions\n", len(sexps))
	if len(sexps) > 0 && !sexps[0].IsLeaf() {
		fmt.Printf("  First expression leaf count: %d\n", sexps[0].LeafCount())
	}
}
