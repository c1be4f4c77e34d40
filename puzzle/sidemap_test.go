package puzzle

import "testing"

/*

side-map

*/

func newTestSideMap(rows, cols int, clues []int8) (*grid, *sideMap, *journal) {
	g := newGrid(rows, cols)
	jn := &journal{}
	sm := newSideMap(g, clues, jn)
	return g, sm, jn
}

func TestSetSideFirstWriteWins(t *testing.T) {
	g, sm, _ := newTestSideMap(1, 1, []int8{noClue})
	e := g.hEdgeID(0, 0)

	if sm.sideOf(e) != Unknown {
		t.Fatalf("new edge should start Unknown")
	}
	ok, changed := sm.setSide(e, Line)
	if !ok || !changed {
		t.Fatalf("first set to Line should succeed and change, got ok=%v changed=%v", ok, changed)
	}
	if sm.sideOf(e) != Line {
		t.Errorf("edge should now read Line")
	}

	ok, changed = sm.setSide(e, Line)
	if !ok || changed {
		t.Errorf("repeating the same side should report ok=true changed=false, got ok=%v changed=%v", ok, changed)
	}

	ok, changed = sm.setSide(e, Cross)
	if ok || changed {
		t.Errorf("setting the opposite side should be a conflict, got ok=%v changed=%v", ok, changed)
	}
	if sm.sideOf(e) != Line {
		t.Errorf("a rejected conflicting set must not change the stored side")
	}
}

func TestSetSideCountsAndJournal(t *testing.T) {
	g, sm, jn := newTestSideMap(1, 2, []int8{noClue, noClue})
	shared := g.vEdgeID(0, 1)

	mark := jn.mark()
	sm.setSide(shared, Cross)
	a, b := sm.cellCounts(0)
	if a != 0 || b != 1 {
		t.Errorf("cell 0 counts after one Cross = (%d,%d), want (0,1)", a, b)
	}
	a, b = sm.cellCounts(1)
	if a != 0 || b != 1 {
		t.Errorf("cell 1 counts after one Cross = (%d,%d), want (0,1)", a, b)
	}
	if sm.unknownEdges != g.numEdges-1 {
		t.Errorf("unknownEdges = %d, want %d", sm.unknownEdges, g.numEdges-1)
	}

	jn.restore(mark)
	if sm.sideOf(shared) != Unknown {
		t.Errorf("restore should have put the edge back to Unknown")
	}
	a, b = sm.cellCounts(0)
	if a != 0 || b != 0 {
		t.Errorf("cell 0 counts after restore = (%d,%d), want (0,0)", a, b)
	}
	if sm.unknownEdges != g.numEdges {
		t.Errorf("unknownEdges after restore = %d, want %d", sm.unknownEdges, g.numEdges)
	}
}

func TestSolvedAndHasLoop(t *testing.T) {
	g, sm, _ := newTestSideMap(1, 1, []int8{noClue})
	if sm.solved() {
		t.Fatalf("a fresh board should not be solved")
	}
	for _, e := range g.edgesOfCell(0) {
		sm.setSide(e, Cross)
	}
	if !sm.solved() {
		t.Errorf("every edge decided should mean solved")
	}
	if sm.hasLoop() {
		t.Errorf("an all-Cross board has no loop")
	}
}

func TestVertexCounts(t *testing.T) {
	g, sm, _ := newTestSideMap(1, 1, []int8{3})
	v := 0 // top-left corner, degree 2: hEdgeID(0,0) and vEdgeID(0,0)
	top := g.hEdgeID(0, 0)
	left := g.vEdgeID(0, 0)

	sm.setSide(top, Line)
	a, b := sm.vertCounts(v)
	if a != 1 || b != 0 {
		t.Errorf("vertex counts after one Line = (%d,%d), want (1,0)", a, b)
	}
	sm.setSide(left, Cross)
	a, b = sm.vertCounts(v)
	if a != 1 || b != 1 {
		t.Errorf("vertex counts after Line+Cross = (%d,%d), want (1,1)", a, b)
	}
}

func TestClueOf(t *testing.T) {
	_, sm, _ := newTestSideMap(1, 2, []int8{2, noClue})
	if k, ok := sm.clueOf(0); !ok || k != 2 {
		t.Errorf("clueOf(0) = (%d,%v), want (2,true)", k, ok)
	}
	if _, ok := sm.clueOf(1); ok {
		t.Errorf("clueOf(1) should report no clue")
	}
}
