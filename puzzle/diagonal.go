package puzzle

/*

Corner-clue fast path

The generic clue and vertex rules (propagator.go) are sound and
complete at fixpoint: every deduction a human solver names - "3 in
the corner," "3-3 adjacent," "3-3 diagonal" - is in principle just a
consequence of running clue/vertex/same-region checks to a fixpoint,
possibly after the search has tried one branch and hit a conflict.
Named shortcuts like these only earn a place here as pure performance
optimizations, on the condition that they never produce a result the
generic rules wouldn't also eventually produce.

Only one such shortcut is implemented here: a clue-3 cell sitting at
one of the grid's four actual corners has both of its boundary edges
forced to Line immediately, without waiting for the search to try
and reject "both Cross" at the corner vertex.

The other classically-named patterns ("3-3 adjacent", "3-3
diagonal") were checked against that same soundness bar and don't
survive it as *unconditional* table rules: a diagonal pair of 3s, for
instance, has four distinct locally-consistent edge patterns around
their shared vertex, not one, so a blind lookup table for it would
sometimes assert an edge the generic rules haven't actually proven.
Those patterns are left to the generic fixpoint (and, when that's not
enough, to search) rather than risk an unsound shortcut.

*/

// cornerInfo names the boundary edges at one of the grid's four true
// corners - the only vertices with degree 2 - and the cell that owns
// both of them.
type cornerInfo struct {
	cell        int
	edgeA, edgeB int
}

// corners computes the (at most four) grid-corner cells and their
// two boundary edges. Degenerate boards (a single row or column)
// still have four distinct corner vertices, but some corners then
// share a cell or an edge with another corner; that's harmless here
// since each corner is still checked independently.
func (g *grid) corners() []cornerInfo {
	return []cornerInfo{
		{cell: 0, edgeA: g.hEdgeID(0, 0), edgeB: g.vEdgeID(0, 0)},
		{cell: g.cols - 1, edgeA: g.hEdgeID(0, g.cols-1), edgeB: g.vEdgeID(0, g.cols)},
		{cell: (g.rows - 1) * g.cols, edgeA: g.hEdgeID(g.rows, 0), edgeB: g.vEdgeID(g.rows-1, 0)},
		{cell: g.rows*g.cols - 1, edgeA: g.hEdgeID(g.rows, g.cols-1), edgeB: g.vEdgeID(g.rows-1, g.cols)},
	}
}

// applyCornerThree forces both boundary edges of a clue-3 corner
// cell to Line. Proof sketch: the vertex shared by edgeA and edgeB
// has degree exactly 2 in the whole grid (it's a true corner, so no
// other edge is incident there). A 0-or-2 degree vertex that went to
// 0 would Cross both edgeA and edgeB, giving the cell two Cross
// edges against a clue of 3 - an immediate ClueUnreachableCondition.
// So the vertex must be degree 2, meaning edgeA and edgeB are both
// Line; this function just asserts that conclusion instead of
// waiting for search to reach it by trial and error.
func (p *propagator) applyCornerThree(ci cornerInfo) error {
	k, has := p.sm.clueOf(ci.cell)
	if !has || k != 3 {
		return nil
	}
	if p.sm.sideOf(ci.edgeA) == Unknown {
		if err := p.assign(ci.edgeA, Line); err != nil {
			return err
		}
	}
	if p.sm.sideOf(ci.edgeB) == Unknown {
		if err := p.assign(ci.edgeB, Line); err != nil {
			return err
		}
	}
	return nil
}

// applyCornerShortcuts runs applyCornerThree for every true grid
// corner. Called once, right after the initial worklists are seeded,
// since corner cells never change which vertex they own.
func (p *propagator) applyCornerShortcuts() error {
	for _, ci := range p.g.corners() {
		if err := p.applyCornerThree(ci); err != nil {
			return err
		}
	}
	return nil
}
