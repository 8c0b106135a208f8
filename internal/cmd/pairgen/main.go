// Package main is the code generator for the per-pair truncation functions.
// It writes one Try, Chop and Shrink function (plus Unchecked for unsigned
// sources) for every pair reported by kind.Pairs.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
)

var (
	verbose = flag.Bool("v", false, "verbose output")
	output  = flag.String("o", "pairs_gen.go", "output file")
	test    = flag.String("test", "", "output file for the generated zero round-trip test (optional)")
	pkg     = flag.String("pkg", "truncate", "package name")
)

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	gen := &Generator{
		Output:     *output,
		TestOutput: *test,
		Package:    *pkg,
		Logger:     logger,
	}

	if err := gen.Generate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
