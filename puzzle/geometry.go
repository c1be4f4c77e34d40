package puzzle

/*

Grid geometry

A puzzle has R rows and C columns of cells, indexed (r,c) with
0 <= r < R, 0 <= c < C.  A virtual "outside" cell borders the
grid on every side; it's given the id outsideCell so boundary
edges need no special case anywhere else in the module.

Edges come in two kinds: horizontal edges H(r,c), 0 <= r <= R,
0 <= c < C, which separate cell (r-1,c) from cell (r,c); and
vertical edges V(r,c), 0 <= r < R, 0 <= c <= C, which separate
cell (r,c-1) from cell (r,c).  Both kinds are packed into a
single edge-id space, horizontals first.

Vertices are lattice points (r,c), 0 <= r <= R, 0 <= c <= C.

All of this is precomputed once per (R,C) into a grid, the same
way a Sudoku solver precomputes row/column/tile membership once
per side length: the geometry never changes once a Puzzle is
built, so we pay the adjacency-table cost exactly once and then
every propagator rule is a slice index.

*/

const outsideCell = -1

// A grid holds the precomputed adjacency tables for an R x C
// Slither Link board.
type grid struct {
	rows, cols int
	numHEdges  int // (rows+1)*cols
	numVEdges  int // rows*(cols+1)
	numEdges   int
	numCells   int // rows*cols
	numVerts   int // (rows+1)*(cols+1)

	edgeCells [][2]int // edge id -> {cellA, cellB}, outsideCell for the border
	edgeVerts [][2]int // edge id -> {vertexA, vertexB}

	cellEdges [][4]int // cell id -> {top, bottom, left, right} edge ids
	cellVerts [][4]int // cell id -> {TL, TR, BL, BR} vertex ids

	vertexEdges [][]int // vertex id -> incident edge ids (2, 3, or 4 of them)
}

// newGrid builds the adjacency tables for an R x C board.  Callers
// are responsible for range-checking rows and cols before calling
// this (see NewPuzzle).
func newGrid(rows, cols int) *grid {
	g := &grid{
		rows: rows, cols: cols,
		numHEdges: (rows + 1) * cols,
		numVEdges: rows * (cols + 1),
		numCells:  rows * cols,
		numVerts:  (rows + 1) * (cols + 1),
	}
	g.numEdges = g.numHEdges + g.numVEdges

	g.edgeCells = make([][2]int, g.numEdges)
	g.edgeVerts = make([][2]int, g.numEdges)
	g.cellEdges = make([][4]int, g.numCells)
	g.cellVerts = make([][4]int, g.numCells)
	g.vertexEdges = make([][]int, g.numVerts)

	cellID := func(r, c int) int {
		if r < 0 || r >= rows || c < 0 || c >= cols {
			return outsideCell
		}
		return r*cols + c
	}
	vertID := func(r, c int) int { return r*(cols+1) + c }

	for r := 0; r <= rows; r++ {
		for c := 0; c < cols; c++ {
			eid := g.hEdgeID(r, c)
			g.edgeCells[eid] = [2]int{cellID(r-1, c), cellID(r, c)}
			g.edgeVerts[eid] = [2]int{vertID(r, c), vertID(r, c+1)}
		}
	}
	for r := 0; r < rows; r++ {
		for c := 0; c <= cols; c++ {
			eid := g.vEdgeID(r, c)
			g.edgeCells[eid] = [2]int{cellID(r, c-1), cellID(r, c)}
			g.edgeVerts[eid] = [2]int{vertID(r, c), vertID(r+1, c)}
		}
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			id := cellID(r, c)
			g.cellEdges[id] = [4]int{
				g.hEdgeID(r, c), g.hEdgeID(r+1, c),
				g.vEdgeID(r, c), g.vEdgeID(r, c+1),
			}
			g.cellVerts[id] = [4]int{
				vertID(r, c), vertID(r, c+1), vertID(r+1, c), vertID(r+1, c+1),
			}
		}
	}
	for r := 0; r <= rows; r++ {
		for c := 0; c <= cols; c++ {
			vid := vertID(r, c)
			var edges []int
			if c > 0 {
				edges = append(edges, g.hEdgeID(r, c-1))
			}
			if c < cols {
				edges = append(edges, g.hEdgeID(r, c))
			}
			if r > 0 {
				edges = append(edges, g.vEdgeID(r-1, c))
			}
			if r < rows {
				edges = append(edges, g.vEdgeID(r, c))
			}
			g.vertexEdges[vid] = edges
		}
	}
	return g
}

func (g *grid) hEdgeID(r, c int) int { return r*g.cols + c }
func (g *grid) vEdgeID(r, c int) int { return g.numHEdges + r*(g.cols+1) + c }

// cellsOfEdge returns the two cells bordering an edge, either of
// which may be outsideCell.
func (g *grid) cellsOfEdge(e int) (int, int) {
	p := g.edgeCells[e]
	return p[0], p[1]
}

// vertsOfEdge returns the two vertices at the ends of an edge.
func (g *grid) vertsOfEdge(e int) (int, int) {
	p := g.edgeVerts[e]
	return p[0], p[1]
}

// edgesOfCell returns the (up to) four edges bordering a cell.
// Calling this with the outside cell is a programming error.
func (g *grid) edgesOfCell(cell int) [4]int {
	return g.cellEdges[cell]
}

// vertsOfCell returns the four corner vertices of a cell.
func (g *grid) vertsOfCell(cell int) [4]int {
	return g.cellVerts[cell]
}

// edgesOfVertex returns the 2, 3, or 4 edges incident to a vertex.
func (g *grid) edgesOfVertex(v int) []int {
	return g.vertexEdges[v]
}

// otherEdgesAtVertex returns every edge incident to v except e (one,
// two, or three of them).  Used by chain tracking to find the Line
// edges that meet e at v.
func (g *grid) otherEdgesAtVertex(v, e int) []int {
	var out []int
	for _, e2 := range g.vertexEdges[v] {
		if e2 != e {
			out = append(out, e2)
		}
	}
	return out
}
