package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dcbrotsky/srither/internal/ioformat"
	"github.com/dcbrotsky/srither/puzzle"
)

// runSolve implements "srither solve": read each file (or stdin,
// with no files given), solve it, and print the outcome. --all
// asks for every solution up to a small cap rather than stopping
// at Unique/Multiple, which is handy for eyeballing small puzzles
// with many solutions. This mirrors the original solve::run's
// derive_all flag.
func runSolve(args []string) error {
	fs := flag.NewFlagSet("solve", flag.ContinueOnError)
	all := fs.Bool("all", false, "count solutions up to a cap instead of classifying Unique vs Multiple")
	cap := fs.Int("cap", 8, "when --all is set, the maximum number of solutions to count")
	if err := fs.Parse(args); err != nil {
		return err
	}

	files := fs.Args()
	if len(files) == 0 {
		return solveOne("<stdin>", os.Stdin, *all, *cap)
	}
	failed := false
	for _, name := range files {
		if err := solveFile(name, *all, *cap); err != nil {
			log.WithField("file", name).WithError(err).Error("solve failed")
			failed = true
		}
	}
	if failed {
		os.Exit(exitFailure)
	}
	return nil
}

func solveFile(name string, all bool, cap int) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return solveOne(name, f, all, cap)
}

func solveOne(name string, r *os.File, all bool, cap int) error {
	rows, cols, clues, err := ioformat.ParsePuzzle(r)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	pz, err := puzzle.NewPuzzle(rows, cols, clues)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	if !all {
		result := pz.Solve()
		fmt.Printf("%s: %s\n", name, result.Outcome)
		switch result.Outcome {
		case puzzle.Unique:
			return ioformat.RenderBoard(os.Stdout, rows, cols, result.Solution.HSide, result.Solution.VSide, pz.Clue)
		case puzzle.Multiple:
			return fmt.Errorf("%s: %w", name, puzzle.Error{Scope: puzzle.ArgumentScope, Condition: puzzle.MultipleSolutionsCondition})
		default:
			return fmt.Errorf("%s: %w", name, puzzle.Error{Scope: puzzle.ArgumentScope, Condition: puzzle.NoSolutionCondition})
		}
	}

	count := pz.CountSolutions(cap)
	fmt.Printf("%s: at least %d solution(s) found (cap %d)\n", name, count, cap)
	return nil
}
