package puzzle

import "testing"

/*

propagator fixpoint

*/

func newTestPuzzleComponents(rows, cols int, clues []int8) (*grid, *sideMap, *cellUF, *edgeUF, *propagator, *journal) {
	g := newGrid(rows, cols)
	jn := &journal{}
	sm := newSideMap(g, clues, jn)
	cuf := newCellUF(g.numCells, jn)
	euf := newEdgeUF(g, jn)
	prop := newPropagator(g, sm, cuf, euf)
	return g, sm, cuf, euf, prop, jn
}

func TestClueZeroForcesAllEdgesCross(t *testing.T) {
	g, sm, _, _, prop, _ := newTestPuzzleComponents(1, 1, []int8{0})
	prop.queueAll()
	if err := prop.propagate(); err != nil {
		t.Fatalf("propagate() on a lone 0-clue cell should not conflict: %v", err)
	}
	for _, e := range g.edgesOfCell(0) {
		if sm.sideOf(e) != Cross {
			t.Errorf("edge %d should be Cross, got %v", e, sm.sideOf(e))
		}
	}
}

func TestAssignLineOverForcedCrossConflicts(t *testing.T) {
	g, _, _, _, prop, _ := newTestPuzzleComponents(1, 1, []int8{0})
	prop.queueAll()
	prop.propagate()
	// Force a fifth, contradictory assignment: there is no fifth edge,
	// so instead try to force one of the already-Cross edges to Line.
	e := g.edgesOfCell(0)[0]
	if err := prop.assign(e, Line); err == nil {
		t.Errorf("assigning Line to an edge already forced Cross should conflict")
	}
}

func TestCornerThreeShortcut(t *testing.T) {
	g, sm, _, _, prop, _ := newTestPuzzleComponents(2, 2, []int8{3, noClue, noClue, noClue})
	prop.queueAll()
	if err := prop.applyCornerShortcuts(); err != nil {
		t.Fatalf("applyCornerShortcuts on a solitary corner 3 should not conflict: %v", err)
	}
	top := g.hEdgeID(0, 0)
	left := g.vEdgeID(0, 0)
	if sm.sideOf(top) != Line || sm.sideOf(left) != Line {
		t.Errorf("corner-3 shortcut should force both boundary edges Line, got top=%v left=%v",
			sm.sideOf(top), sm.sideOf(left))
	}
}

func TestSameRegionForcesCross(t *testing.T) {
	g, sm, cuf, _, prop, _ := newTestPuzzleComponents(1, 2, []int8{noClue, noClue})
	shared := g.vEdgeID(0, 1)
	cuf.union(0, 1)
	prop.edgeQ.push(shared)
	if err := prop.propagate(); err != nil {
		t.Fatalf("propagate() should not conflict: %v", err)
	}
	if sm.sideOf(shared) != Cross {
		t.Errorf("an edge between two cells in the same region must be Cross, got %v", sm.sideOf(shared))
	}
}

func TestVertexDegreeOneForcesLastEdgeLine(t *testing.T) {
	// A 1x1 board: set the top edge Line, leaving a degree-2 vertex at
	// top-right with one Line (the top edge) and one Unknown (the
	// right edge), which must become Line to reach degree 2.
	g, sm, _, _, prop, _ := newTestPuzzleComponents(1, 1, []int8{noClue})
	top := g.hEdgeID(0, 0)
	right := g.vEdgeID(0, 1)
	if err := prop.assign(top, Line); err != nil {
		t.Fatalf("assigning Line to the top edge should not conflict: %v", err)
	}
	if err := prop.propagate(); err != nil {
		t.Fatalf("propagate() should not conflict: %v", err)
	}
	if sm.sideOf(right) != Line {
		t.Errorf("the right edge should be forced Line to complete the top-right vertex, got %v", sm.sideOf(right))
	}
}

func TestPropagatorConfluence(t *testing.T) {
	// Run the same initial board through the worklist twice, seeding the
	// queues in reversed orders, and check both runs land on the same
	// final side-map.
	clues := []int8{3, noClue, 3, noClue, 0, noClue, 3, noClue, 3}
	run := func(reverse bool) []Side {
		g, sm, cuf, euf, prop, _ := newTestPuzzleComponents(3, 3, clues)
		cells := make([]int, g.numCells)
		for i := range cells {
			cells[i] = i
		}
		verts := make([]int, g.numVerts)
		for i := range verts {
			verts[i] = i
		}
		if reverse {
			for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
				cells[i], cells[j] = cells[j], cells[i]
			}
			for i, j := 0, len(verts)-1; i < j; i, j = i+1, j-1 {
				verts[i], verts[j] = verts[j], verts[i]
			}
		}
		for _, c := range cells {
			prop.cellQ.push(c)
		}
		for _, v := range verts {
			prop.vertQ.push(v)
		}
		prop.applyCornerShortcuts()
		prop.propagate()
		_ = cuf
		_ = euf
		return append([]Side(nil), sm.side...)
	}
	forward := run(false)
	backward := run(true)
	if len(forward) != len(backward) {
		t.Fatalf("length mismatch: %d vs %d", len(forward), len(backward))
	}
	for i := range forward {
		if forward[i] != backward[i] {
			t.Errorf("edge %d: forward run = %v, backward run = %v; propagator is not confluent", i, forward[i], backward[i])
		}
	}
}

func TestPropagatorMonotone(t *testing.T) {
	g, sm, _, _, prop, _ := newTestPuzzleComponents(3, 3, []int8{3, noClue, 3, noClue, 0, noClue, 3, noClue, 3})
	prop.queueAll()
	prop.applyCornerShortcuts()
	before := sm.unknownEdges
	if err := prop.propagate(); err != nil {
		t.Fatalf("propagate() should not conflict: %v", err)
	}
	after := sm.unknownEdges
	if after > before {
		t.Errorf("unknownEdges grew from %d to %d; propagation must be monotone", before, after)
	}
	_ = g
}
