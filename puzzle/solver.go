package puzzle

/*

Search

Once propagation reaches a fixpoint with Unknown edges still on
the board, no further rule applies and a genuine guess is needed.
This is an Ariadne's-thread control flow: mark state, try a value,
recurse, rewind and try the next value on failure, with one
change from the classic copy-the-whole-board version - instead of
copying the whole puzzle before a guess, it takes a single journal
mark and restores to it, since the journal already gives exact,
cheap undo across the side-map and both union-finds.

The branch variable is chosen the way a constraint solver usually
picks what to guess next - fewest remaining possibilities first -
adapted to this domain as the clued cell with the fewest Unknown
edges left around it, falling back to the lowest-numbered Unknown
edge when no clue constrains the board at all.

Search never stops at the first solution: telling Unique apart
from Multiple means it keeps going, capped, until it has either
exhausted the tree or found as many solutions as the cap.

*/

// CountSolutions explores the puzzle's search tree and returns the
// number of distinct solutions found, stopping early once it has
// found cap of them.  A return value equal to cap means "at least
// cap", not necessarily exactly cap.
func (pz *Puzzle) CountSolutions(cap int) int {
	if pz.unsat || cap <= 0 {
		return 0
	}
	count := 0
	pz.search(&count, nil, cap)
	return count
}

// Solve classifies the puzzle as Unsat, Unique, or Multiple, and
// returns the solution when it's Unique.
func (pz *Puzzle) Solve() Result {
	if pz.unsat {
		return Result{Outcome: Unsat}
	}
	count := 0
	var sol *Solution
	pz.search(&count, &sol, 2)
	switch count {
	case 0:
		return Result{Outcome: Unsat}
	case 1:
		return Result{Outcome: Unique, Solution: sol}
	default:
		return Result{Outcome: Multiple}
	}
}

// search performs the DFS itself.  sol, if non-nil, is filled in
// with the first solution found; count is incremented per solution
// found and the recursion stops growing new branches once it
// reaches cap.
func (pz *Puzzle) search(count *int, sol **Solution, cap int) {
	if *count >= cap {
		return
	}
	if pz.sm.solved() {
		if !pz.sm.hasLoop() {
			// The all-Cross assignment satisfies every local rule
			// vacuously but contains no loop at all; it's never a
			// real solution.
			return
		}
		*count++
		if sol != nil && *sol == nil {
			*sol = pz.snapshotSolution()
		}
		return
	}
	e, ok := pz.chooseBranchEdge()
	if !ok {
		return
	}
	for _, s := range [2]Side{Line, Cross} {
		mark := pz.jn.mark()
		if err := pz.prop.assign(e, s); err == nil {
			if err2 := pz.prop.propagate(); err2 == nil {
				pz.search(count, sol, cap)
			}
		}
		pz.jn.restore(mark)
		if *count >= cap {
			return
		}
	}
}

// chooseBranchEdge picks the next Unknown edge to guess.  It
// prefers the Unknown edge bordering the clued cell with the
// fewest Unknown edges remaining (the clue that's closest to being
// pinned down), and falls back to the lowest-numbered Unknown edge
// anywhere on the board when no clue helps.
func (pz *Puzzle) chooseBranchEdge() (int, bool) {
	bestCell, bestCount := -1, 5
	for cell := 0; cell < pz.g.numCells; cell++ {
		if _, has := pz.sm.clueOf(cell); !has {
			continue
		}
		cnt := 0
		for _, e := range pz.g.edgesOfCell(cell) {
			if pz.sm.sideOf(e) == Unknown {
				cnt++
			}
		}
		if cnt > 0 && cnt < bestCount {
			bestCell, bestCount = cell, cnt
		}
	}
	if bestCell >= 0 {
		for _, e := range pz.g.edgesOfCell(bestCell) {
			if pz.sm.sideOf(e) == Unknown {
				return e, true
			}
		}
	}
	for e := 0; e < pz.g.numEdges; e++ {
		if pz.sm.sideOf(e) == Unknown {
			return e, true
		}
	}
	return 0, false
}
