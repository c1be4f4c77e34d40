package puzzle

/*

Region and chain tracking

Two union-finds ride alongside the side-map:

cellUF groups cells (plus the outside) into "regions" separated
only by Cross edges: two cells end up in the same class exactly
when every boundary between them is known to be outside the loop.
The outside is just one more element of this union-find (index
g.numCells), so boundary edges need no special casing - the same
trick the grid's own outsideCell sentinel uses one level down.

edgeUF groups Line edges into chains and, for the current root of
each chain, remembers the two lattice vertices where the chain is
still open to extension.  A merge that tries to join a chain to
itself closes it into a cycle.

Both are plain union-by-rank-with-path-compression union-finds,
journaled the same way as the side-map: every parent/rank/endpoint
write is paired with an undo closure on the shared journal, so a
single journal.restore unwinds the side-map and both union-finds
together.  This takes the place of copying the whole structure
before a guess: instead of snapshotting state, we log how to
undo it.

*/

// cellUF tracks which cells (and the outside) are known to be on
// the same side of the loop.
type cellUF struct {
	parent []int
	rank   []int
	jn     *journal
}

// newCellUF builds a union-find over numCells real cells plus one
// slot for the outside, which is cellUF index numCells.
func newCellUF(numCells int, jn *journal) *cellUF {
	u := &cellUF{
		parent: make([]int, numCells+1),
		rank:   make([]int, numCells+1),
		jn:     jn,
	}
	for i := range u.parent {
		u.parent[i] = i
	}
	return u
}

// outsideIndex is the cellUF slot standing in for the outside cell.
func (u *cellUF) outsideIndex() int { return len(u.parent) - 1 }

// index maps a grid cell id (outsideCell included) to a cellUF slot.
func (u *cellUF) index(cell int) int {
	if cell == outsideCell {
		return u.outsideIndex()
	}
	return cell
}

func (u *cellUF) find(x int) int {
	root := x
	for u.parent[root] != root {
		root = u.parent[root]
	}
	for u.parent[x] != root {
		next := u.parent[x]
		old, oldParent := x, u.parent[x]
		u.jn.record(func() { u.parent[old] = oldParent })
		u.parent[x] = root
		x = next
	}
	return root
}

// same reports whether two cells (outsideCell included) are
// already known to be on the same side of the loop.
func (u *cellUF) same(a, b int) bool {
	return u.find(u.index(a)) == u.find(u.index(b))
}

// union merges the classes of a and b.  It reports merged=false if
// they were already in the same class (nothing to do), true if a
// genuine merge happened.
func (u *cellUF) union(a, b int) (merged bool) {
	ra, rb := u.find(u.index(a)), u.find(u.index(b))
	if ra == rb {
		return false
	}
	if u.rank[ra] < u.rank[rb] {
		ra, rb = rb, ra
	}
	old, oldParent := rb, u.parent[rb]
	u.jn.record(func() { u.parent[old] = oldParent })
	u.parent[rb] = ra

	if u.rank[ra] == u.rank[rb] {
		rr, oldRank := ra, u.rank[ra]
		u.jn.record(func() { u.rank[rr] = oldRank })
		u.rank[ra]++
	}
	return true
}

// edgeUF tracks Line edges grouped into chains, remembering each
// chain's two open (unfinished) lattice-vertex endpoints.
type edgeUF struct {
	g *grid

	parent []int    // -1 means the edge has not joined a chain yet
	rank   []int
	ends   [][2]int // valid only at a root: the chain's open endpoints

	jn *journal
}

func newEdgeUF(g *grid, jn *journal) *edgeUF {
	u := &edgeUF{
		g:      g,
		parent: make([]int, g.numEdges),
		rank:   make([]int, g.numEdges),
		ends:   make([][2]int, g.numEdges),
		jn:     jn,
	}
	for i := range u.parent {
		u.parent[i] = -1
	}
	return u
}

// addEdge starts a new singleton chain for e, whose two open ends
// are e's own two vertices.  Call this exactly once, when e is set
// to Line.
func (u *edgeUF) addEdge(e int) {
	if u.parent[e] != -1 {
		return
	}
	va, vb := u.g.vertsOfEdge(e)
	e2, oldRank, oldEnds := e, u.rank[e], u.ends[e]
	u.jn.record(func() {
		u.parent[e2] = -1
		u.rank[e2] = oldRank
		u.ends[e2] = oldEnds
	})
	u.parent[e] = e
	u.rank[e] = 0
	u.ends[e] = [2]int{va, vb}
}

func (u *edgeUF) find(x int) int {
	root := x
	for u.parent[root] != root {
		root = u.parent[root]
	}
	for u.parent[x] != root {
		next := u.parent[x]
		old, oldParent := x, u.parent[x]
		u.jn.record(func() { u.parent[old] = oldParent })
		u.parent[x] = root
		x = next
	}
	return root
}

// otherEnd returns the open end of the chain rooted at r that isn't v.
func (u *edgeUF) otherEnd(r, v int) int {
	ends := u.ends[r]
	if ends[0] == v {
		return ends[1]
	}
	return ends[0]
}

// mergeAtVertex joins the chains containing e1 and e2, both of
// which must already have an open end at vertex v.  It reports
// closing=true if e1 and e2 were already the same chain - meeting
// at v would close that chain into a cycle - in which case no
// merge happens and the caller decides whether that's acceptable.
func (u *edgeUF) mergeAtVertex(e1, e2, v int) (closing bool) {
	r1, r2 := u.find(e1), u.find(e2)
	if r1 == r2 {
		return true
	}
	if u.rank[r1] < u.rank[r2] {
		r1, r2 = r2, r1
	}
	old, oldParent := r2, u.parent[r2]
	u.jn.record(func() { u.parent[old] = oldParent })
	u.parent[r2] = r1

	if u.rank[r1] == u.rank[r2] {
		rr, oldRank := r1, u.rank[r1]
		u.jn.record(func() { u.rank[rr] = oldRank })
		u.rank[r1]++
	}

	newEnds := [2]int{u.otherEnd(r1, v), u.otherEnd(r2, v)}
	rr1, oldEnds := r1, u.ends[r1]
	u.jn.record(func() { u.ends[rr1] = oldEnds })
	u.ends[r1] = newEnds
	return false
}
