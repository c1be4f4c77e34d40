package puzzle

/*

Puzzle representation

*/

import "fmt"

// A Puzzle (actually a reference to one) is our internal
// implementation of a Slither Link board: the precomputed grid
// geometry, the mutable side-map and union-finds that propagation
// and search write through, and whatever the initial fixpoint
// already determined.
//
// Construction never fails just because a puzzle turns out to be
// contradictory - that's a legitimate Unsat outcome, discovered by
// Solve - it fails only when the input itself is malformed: bad
// dimensions, a row of the wrong length, an illegal clue digit.
type Puzzle struct {
	g    *grid
	sm   *sideMap
	cuf  *cellUF
	euf  *edgeUF
	prop *propagator
	jn   *journal

	rows, cols int
	unsat      bool
}

// NewPuzzle builds a Puzzle from an explicit clue grid.  clues must
// have exactly rows*cols entries in row-major order; each entry is
// either a clue digit 0-3 or noClue.
func NewPuzzle(rows, cols int, clues []int8) (*Puzzle, error) {
	if rows <= 0 {
		return nil, Error{
			Scope: ArgumentScope, Condition: TooSmallCondition, Attribute: RowsAttribute,
			Values: ErrorData{1},
		}
	}
	if cols <= 0 {
		return nil, Error{
			Scope: ArgumentScope, Condition: TooSmallCondition, Attribute: ColumnsAttribute,
			Values: ErrorData{1},
		}
	}
	if len(clues) != rows*cols {
		return nil, Error{
			Scope: ArgumentScope, Condition: GeneralCondition,
			Values: ErrorData{fmt.Sprintf("expected %d clue cells, got %d", rows*cols, len(clues))},
		}
	}
	for _, k := range clues {
		if k != noClue && (k < 0 || k > 3) {
			return nil, Error{
				Scope: ArgumentScope, Condition: IllegalClueDigitCondition, Attribute: ClueAttribute,
				Values: ErrorData{k},
			}
		}
	}

	g := newGrid(rows, cols)
	jn := &journal{}
	sm := newSideMap(g, append([]int8(nil), clues...), jn)
	cuf := newCellUF(g.numCells, jn)
	euf := newEdgeUF(g, jn)
	prop := newPropagator(g, sm, cuf, euf)

	pz := &Puzzle{g: g, sm: sm, cuf: cuf, euf: euf, prop: prop, jn: jn, rows: rows, cols: cols}

	prop.queueAll()
	if err := prop.applyCornerShortcuts(); err != nil {
		pz.unsat = true
		return pz, nil
	}
	if err := prop.propagate(); err != nil {
		pz.unsat = true
	}
	return pz, nil
}

// Rows and Cols report the board's dimensions.
func (pz *Puzzle) Rows() int { return pz.rows }
func (pz *Puzzle) Cols() int { return pz.cols }

// Clue returns the clue at (r,c) and whether it's set.
func (pz *Puzzle) Clue(r, c int) (int, bool) {
	k, ok := pz.sm.clueOf(r*pz.cols + c)
	return int(k), ok
}

// HSide returns the side of the horizontal edge above row r,
// column c (0 <= r <= Rows, 0 <= c < Cols).
func (pz *Puzzle) HSide(r, c int) Side {
	return pz.sm.sideOf(pz.g.hEdgeID(r, c))
}

// VSide returns the side of the vertical edge to the left of row
// r, column c (0 <= r < Rows, 0 <= c <= Cols).
func (pz *Puzzle) VSide(r, c int) Side {
	return pz.sm.sideOf(pz.g.vEdgeID(r, c))
}

// Digest returns a short, deterministic identifier for this
// puzzle's starting clues, stable across runs and processes.
// It's used as a cache key, never as a security token.
func (pz *Puzzle) Digest() string {
	return clueDigest(pz.rows, pz.cols, pz.sm.clue)
}

// A Solution is an immutable, fully-decided snapshot of a board:
// every edge is Line or Cross, never Unknown.
type Solution struct {
	g     *grid
	sides []Side
}

func (s *Solution) HSide(r, c int) Side { return s.sides[s.g.hEdgeID(r, c)] }
func (s *Solution) VSide(r, c int) Side { return s.sides[s.g.vEdgeID(r, c)] }

func (pz *Puzzle) snapshotSolution() *Solution {
	return &Solution{g: pz.g, sides: append([]Side(nil), pz.sm.side...)}
}

// An Outcome classifies how many solutions a Puzzle has.
type Outcome int

const (
	Unsat Outcome = iota
	Unique
	Multiple
)

func (o Outcome) String() string {
	switch o {
	case Unique:
		return "Unique"
	case Multiple:
		return "Multiple"
	default:
		return "Unsat"
	}
}

// A Result is the outcome of solving a Puzzle, with the Solution
// filled in only when Outcome is Unique.
type Result struct {
	Outcome  Outcome
	Solution *Solution
}
