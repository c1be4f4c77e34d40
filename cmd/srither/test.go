package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dcbrotsky/srither/internal/ioformat"
	"github.com/dcbrotsky/srither/puzzle"
)

// runTest implements "srither test": solve every file and report
// pass/fail, where "pass" means the puzzle has exactly one
// solution (or, with --all, that counting its solutions up to the
// cap found at least one). This is the batch-corpus runner the
// original test::run played against rustc_test's harness; since Go
// doesn't have an equivalent dynamic test registry in the standard
// library, it's a plain loop with a summary instead.
func runTest(args []string) error {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	all := fs.Bool("all", false, "require at least one solution (counted up to a small cap), rather than exactly one")
	cap := fs.Int("cap", 8, "the cap to count up to when --all is set")
	if err := fs.Parse(args); err != nil {
		return err
	}

	files := fs.Args()
	if len(files) == 0 {
		return fmt.Errorf("test: no input files given")
	}

	passed, failed := 0, 0
	for _, name := range files {
		ok, detail := testFile(name, *all, *cap)
		if ok {
			passed++
			fmt.Printf("ok   %s\n", name)
		} else {
			failed++
			fmt.Printf("FAIL %s: %s\n", name, detail)
		}
	}
	fmt.Printf("%d passed, %d failed\n", passed, failed)
	if failed > 0 {
		os.Exit(exitFailure)
	}
	return nil
}

func testFile(name string, all bool, cap int) (ok bool, detail string) {
	f, err := os.Open(name)
	if err != nil {
		return false, err.Error()
	}
	defer f.Close()

	rows, cols, clues, err := ioformat.ParsePuzzle(f)
	if err != nil {
		return false, err.Error()
	}
	pz, err := puzzle.NewPuzzle(rows, cols, clues)
	if err != nil {
		return false, err.Error()
	}

	if all {
		n := pz.CountSolutions(cap)
		if n == 0 {
			return false, "unsatisfiable"
		}
		return true, ""
	}

	result := pz.Solve()
	switch result.Outcome {
	case puzzle.Unique:
		return true, ""
	case puzzle.Unsat:
		return false, "unsatisfiable"
	default:
		return false, "multiple solutions"
	}
}
