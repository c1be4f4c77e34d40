package puzzle

import "testing"

/*

Digest

*/

func TestDigestStableAndDistinguishing(t *testing.T) {
	a := clueDigest(3, 3, []int8{3, noClue, 3, noClue, 0, noClue, 3, noClue, 3})
	b := clueDigest(3, 3, []int8{3, noClue, 3, noClue, 0, noClue, 3, noClue, 3})
	if a != b {
		t.Errorf("same clue grid hashed twice produced different digests: %q vs %q", a, b)
	}

	c := clueDigest(3, 3, []int8{3, noClue, 3, noClue, 1, noClue, 3, noClue, 3})
	if a == c {
		t.Errorf("changing one clue digit should change the digest")
	}

	d := clueDigest(3, 1, []int8{3, noClue, 3})
	e := clueDigest(1, 3, []int8{3, noClue, 3})
	if d == e {
		t.Errorf("transposed dimensions with the same flat clue list should hash differently")
	}
}

func TestPuzzleDigestViaNewPuzzle(t *testing.T) {
	pz1, err := NewPuzzle(2, 2, []int8{3, noClue, noClue, 3})
	if err != nil {
		t.Fatalf("NewPuzzle failed: %v", err)
	}
	pz2, err := NewPuzzle(2, 2, []int8{3, noClue, noClue, 3})
	if err != nil {
		t.Fatalf("NewPuzzle failed: %v", err)
	}
	if pz1.Digest() != pz2.Digest() {
		t.Errorf("two puzzles built from identical clues should have identical digests")
	}
}
