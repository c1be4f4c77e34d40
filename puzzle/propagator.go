package puzzle

/*

Constraint propagation

A single worklist-driven fixpoint over three rule families:

  - clue rules, keyed by cell: compare a cell's Line/Cross counts
    against its clue digit.
  - vertex rules, keyed by vertex: a lattice vertex's Line count
    must end at 0 or 2, never 1, and never more than 2.
  - the same-region rule, keyed by edge: an edge whose two cells
    are already known to be in the same region (per cellUF) must
    be Cross, since a Line edge always separates two different
    regions.

Deducing a new Line edge also feeds the chain rule (edgeUF):
merging two chains that are already the same chain would close a
loop, which is only legal once every other edge is already
decided.

This follows an assign / analyze two-step pattern: assign performs
one write and queues the groups touched by it for analysis;
analyze re-derives what it can and may perform further assigns,
which queue further analysis.  Here the "groups" are cells,
vertices, and edges, and the queue is explicit instead of
recursive so a single Conflict can unwind cleanly without leaving
half-processed work behind.

Propagation never logs, prints, or otherwise has a side effect
beyond the journal: it is pure constraint maintenance, called from
both Puzzle construction and the solver's search.

*/

type ruleQueue struct {
	items  []int
	queued []bool
}

func newRuleQueue(n int) *ruleQueue {
	return &ruleQueue{queued: make([]bool, n)}
}

func (q *ruleQueue) push(id int) {
	if q.queued[id] {
		return
	}
	q.queued[id] = true
	q.items = append(q.items, id)
}

func (q *ruleQueue) pop() (int, bool) {
	if len(q.items) == 0 {
		return 0, false
	}
	id := q.items[0]
	q.items = q.items[1:]
	q.queued[id] = false
	return id, true
}

// a propagator owns the three worklists and drives them to a
// fixpoint.  One is created per Puzzle and reused for every
// propagate() call, including the ones the solver makes mid-search.
type propagator struct {
	g   *grid
	sm  *sideMap
	cuf *cellUF
	euf *edgeUF

	cellQ *ruleQueue
	vertQ *ruleQueue
	edgeQ *ruleQueue
}

func newPropagator(g *grid, sm *sideMap, cuf *cellUF, euf *edgeUF) *propagator {
	return &propagator{
		g: g, sm: sm, cuf: cuf, euf: euf,
		cellQ: newRuleQueue(g.numCells),
		vertQ: newRuleQueue(g.numVerts),
		edgeQ: newRuleQueue(g.numEdges),
	}
}

// queueAll seeds every cell and vertex for an initial pass; used
// once when a Puzzle is first built, since k=0 clues and other
// immediate deductions live entirely in the clue/vertex rules.
func (p *propagator) queueAll() {
	for c := 0; c < p.g.numCells; c++ {
		p.cellQ.push(c)
	}
	for v := 0; v < p.g.numVerts; v++ {
		p.vertQ.push(v)
	}
}

// assign sets edge e to s, applying every consequence that follows
// directly from that single write (union-find updates and further
// worklist entries), and reports a Conflict if s contradicts e's
// current assignment or violates the chain rule.
func (p *propagator) assign(e int, s Side) error {
	ok, changed := p.sm.setSide(e, s)
	if !ok {
		cur := p.sm.sideOf(e)
		return Error{
			Scope: EdgeScope, Condition: EdgeConflictCondition,
			Values: ErrorData{e, cur, s},
		}
	}
	if !changed {
		return nil
	}

	ca, cb := p.g.cellsOfEdge(e)
	if ca != outsideCell {
		p.cellQ.push(ca)
	}
	if cb != outsideCell {
		p.cellQ.push(cb)
	}
	va, vb := p.g.vertsOfEdge(e)
	p.vertQ.push(va)
	p.vertQ.push(vb)

	switch s {
	case Cross:
		if p.cuf.union(ca, cb) {
			for cell := 0; cell < p.g.numCells; cell++ {
				if p.cuf.same(cell, ca) {
					p.requeueRegion(cell)
				}
			}
		}
	case Line:
		p.euf.addEdge(e)
		if err := p.mergeChains(e, va); err != nil {
			return err
		}
		if err := p.mergeChains(e, vb); err != nil {
			return err
		}
	}
	return nil
}

// requeueRegion re-examines the Unknown edges around a cell after
// its region has just grown, since any of them might now separate
// two cells that turned out to be the same region.
func (p *propagator) requeueRegion(cell int) {
	if cell == outsideCell {
		return
	}
	for _, e := range p.g.edgesOfCell(cell) {
		if p.sm.sideOf(e) == Unknown {
			p.edgeQ.push(e)
		}
	}
}

// mergeChains joins e's chain with any other Line chain already
// meeting at vertex v, reporting a PrematureClosureCondition error
// if doing so would close a loop before every edge is decided.
func (p *propagator) mergeChains(e, v int) error {
	for _, e2 := range p.g.otherEdgesAtVertex(v, e) {
		if p.sm.sideOf(e2) != Line {
			continue
		}
		if closing := p.euf.mergeAtVertex(e, e2, v); closing {
			if p.sm.unknownEdges != 0 {
				return Error{
					Scope: VertexScope, Condition: PrematureClosureCondition,
					Values: ErrorData{v},
				}
			}
		}
	}
	return nil
}

// propagate drains the worklists to a fixpoint, applying the clue,
// vertex, and same-region rules until none of them have anything
// left to say or one of them reports a Conflict.
func (p *propagator) propagate() error {
	for {
		if c, ok := p.cellQ.pop(); ok {
			if err := p.checkCell(c); err != nil {
				return err
			}
			continue
		}
		if v, ok := p.vertQ.pop(); ok {
			if err := p.checkVertex(v); err != nil {
				return err
			}
			continue
		}
		if e, ok := p.edgeQ.pop(); ok {
			if err := p.checkEdgeRegion(e); err != nil {
				return err
			}
			continue
		}
		return nil
	}
}

func (p *propagator) checkCell(cell int) error {
	k, has := p.sm.clueOf(cell)
	if !has {
		return nil
	}
	a, b := p.sm.cellCounts(cell)
	kk := int(k)
	if a > kk {
		return Error{
			Scope: CellScope, Condition: ClueOverfullCondition,
			Values: ErrorData{cell, k},
		}
	}
	if 4-b < kk {
		return Error{
			Scope: CellScope, Condition: ClueUnreachableCondition,
			Values: ErrorData{cell, k},
		}
	}
	edges := p.g.edgesOfCell(cell)
	if a == kk {
		return p.setUnknowns(edges[:], Cross)
	}
	if 4-b == kk {
		return p.setUnknowns(edges[:], Line)
	}
	return nil
}

// checkVertex applies the sound, symmetric form of the vertex rule:
// a degree-1 vertex is always a dead end, whichever side it would
// come from, so the single Unknown edge left in either direction is
// forced immediately; a 0-or-2 degree vertex with two or more
// Unknowns left is not yet determined and is deferred to search.
func (p *propagator) checkVertex(v int) error {
	a, b := p.sm.vertCounts(v)
	edges := p.g.edgesOfVertex(v)
	d := len(edges)
	u := d - a - b
	if a > 2 {
		return Error{
			Scope: VertexScope, Condition: VertexOverfullCondition,
			Values: ErrorData{v},
		}
	}
	if a == 2 {
		return p.setUnknowns(edges, Cross)
	}
	if a == 1 {
		if u == 0 {
			return Error{
				Scope: VertexScope, Condition: VertexUnreachableCondition,
				Values: ErrorData{v},
			}
		}
		if u == 1 {
			return p.setUnknowns(edges, Line)
		}
		return nil
	}
	// a == 0
	if u == 1 {
		return p.setUnknowns(edges, Cross)
	}
	return nil
}

func (p *propagator) checkEdgeRegion(e int) error {
	if p.sm.sideOf(e) != Unknown {
		return nil
	}
	ca, cb := p.g.cellsOfEdge(e)
	if p.cuf.same(ca, cb) {
		return p.assign(e, Cross)
	}
	return nil
}

// setUnknowns assigns s to every currently-Unknown edge in a list,
// stopping at the first Conflict.
func (p *propagator) setUnknowns(edges []int, s Side) error {
	for _, e := range edges {
		if p.sm.sideOf(e) == Unknown {
			if err := p.assign(e, s); err != nil {
				return err
			}
		}
	}
	return nil
}
