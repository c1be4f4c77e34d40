package puzzle

/*

Reversible state

Both union-finds and the side-map need exact snapshot/restore so
the DFS in solver.go can try a branch and cleanly undo it.  The
strategy: every write appends an undo closure to a journal; a
snapshot is just the journal's current length, and restoring to a
snapshot replays the journal backwards from the current length
down to the snapshot, undoing each write in turn, then truncates
the journal.

This is the same shape as a scoped change-logger that records
entries during an operation so they can be replayed or returned
later, generalized from "log which squares changed" to "record
how to undo every change."

*/

// an undoEntry knows how to reverse exactly one write.
type undoEntry func()

// a journal is an append-only log of undo closures.  It is shared
// by the side-map and both union-finds so that a single snapshot
// token captures all three at once.
type journal struct {
	entries []undoEntry
}

// mark returns a token that restore can later use to undo every
// write made since this call.
func (j *journal) mark() int {
	return len(j.entries)
}

// record appends an undo closure for a write that just happened.
func (j *journal) record(undo undoEntry) {
	j.entries = append(j.entries, undo)
}

// restore undoes every write made since mark, in reverse order,
// and discards the journal entries for them.  Restoring to a mark
// you've already restored past, or never received, is a
// programming error.
func (j *journal) restore(mark int) {
	if mark > len(j.entries) {
		panic("puzzle: journal restore to a mark beyond the journal's end")
	}
	for i := len(j.entries) - 1; i >= mark; i-- {
		j.entries[i]()
	}
	j.entries = j.entries[:mark]
}

// depth reports how many writes are currently undoable.  Exposed
// for tests that check the round-trip law and for resource
// accounting, since restore is O(depth).
func (j *journal) depth() int {
	return len(j.entries)
}
