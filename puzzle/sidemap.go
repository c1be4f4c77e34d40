package puzzle

/*

Side-map

The authoritative per-edge tri-state assignment plus the per-cell
clue, kept with explicit arrays and incremental counts maintained
on every write rather than rescanned, the same bookkeeping style a
Sudoku solver uses for its per-square candidate sets - just with
an edge's Line/Cross/Unknown state as the "value" instead of a
square's possible-value set.

*/

// A Side is the tri-state assignment of an edge.
type Side int8

const (
	Unknown Side = iota
	Line
	Cross
)

func (s Side) String() string {
	switch s {
	case Line:
		return "Line"
	case Cross:
		return "Cross"
	default:
		return "Unknown"
	}
}

// noClue marks a cell with no clue digit.
const noClue int8 = -1

// a sideMap holds the per-edge Side array and per-cell clue array,
// plus incrementally-maintained Line/Cross counts per cell and per
// vertex so the clue and vertex rules never have to rescan a
// neighborhood to evaluate their guards.
type sideMap struct {
	g *grid

	side []Side
	clue []int8 // length numCells, noClue if unset

	cellLine, cellCross []int8 // length numCells
	vertLine, vertCross []int8 // length numVerts

	unknownEdges int
	lineEdges    int

	jn *journal
}

func newSideMap(g *grid, clues []int8, jn *journal) *sideMap {
	sm := &sideMap{
		g:           g,
		side:        make([]Side, g.numEdges),
		clue:        clues,
		cellLine:    make([]int8, g.numCells),
		cellCross:   make([]int8, g.numCells),
		vertLine:    make([]int8, g.numVerts),
		vertCross:   make([]int8, g.numVerts),
		unknownEdges: g.numEdges,
		jn:          jn,
	}
	return sm
}

// sideOf returns the current assignment of edge e.
func (sm *sideMap) sideOf(e int) Side {
	return sm.side[e]
}

// clueOf returns the clue on a real cell, or (-1, false) if it has none.
func (sm *sideMap) clueOf(cell int) (int8, bool) {
	k := sm.clue[cell]
	return k, k != noClue
}

// setSide assigns s to edge e.  It reports ok=false without
// changing anything if e is already assigned the opposite value
// (a conflict); ok=true and changed=false if e already has the
// value s; ok=true and changed=true on a genuine Unknown ->
// {Line,Cross} transition, which is the only case that needs
// further propagation by the caller.
func (sm *sideMap) setSide(e int, s Side) (ok, changed bool) {
	cur := sm.side[e]
	if cur == s {
		return true, false
	}
	if cur != Unknown {
		return false, false
	}

	sm.side[e] = s
	sm.unknownEdges--
	if s == Line {
		sm.lineEdges++
	}
	sm.jn.record(func() {
		sm.side[e] = Unknown
		sm.unknownEdges++
		if s == Line {
			sm.lineEdges--
		}
	})

	ca, cb := sm.g.cellsOfEdge(e)
	for _, c := range [2]int{ca, cb} {
		if c == outsideCell {
			continue
		}
		sm.bumpCellCount(c, s)
	}
	va, vb := sm.g.vertsOfEdge(e)
	sm.bumpVertCount(va, s)
	sm.bumpVertCount(vb, s)

	return true, true
}

func (sm *sideMap) bumpCellCount(c int, s Side) {
	if s == Line {
		sm.cellLine[c]++
		sm.jn.record(func() { sm.cellLine[c]-- })
	} else {
		sm.cellCross[c]++
		sm.jn.record(func() { sm.cellCross[c]-- })
	}
}

func (sm *sideMap) bumpVertCount(v int, s Side) {
	if s == Line {
		sm.vertLine[v]++
		sm.jn.record(func() { sm.vertLine[v]-- })
	} else {
		sm.vertCross[v]++
		sm.jn.record(func() { sm.vertCross[v]-- })
	}
}

// cellCounts returns (#Line, #Cross) around a real cell.
func (sm *sideMap) cellCounts(c int) (int, int) {
	return int(sm.cellLine[c]), int(sm.cellCross[c])
}

// vertCounts returns (#Line, #Cross) incident to a vertex.
func (sm *sideMap) vertCounts(v int) (int, int) {
	return int(sm.vertLine[v]), int(sm.vertCross[v])
}

// solved reports whether every edge has been decided.
func (sm *sideMap) solved() bool {
	return sm.unknownEdges == 0
}

// hasLoop reports whether the board has at least one Line edge.
// A fully-decided board with none is the degenerate "no loop at
// all" assignment, which satisfies every local rule vacuously but
// isn't a real Slither Link solution.
func (sm *sideMap) hasLoop() bool {
	return sm.lineEdges > 0
}
