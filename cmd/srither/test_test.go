package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writePuzzleFile(t *testing.T, dir, name, contents string) string {
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(contents), 0644); err != nil {
		t.Fatalf("WriteFile(%s) failed: %v", p, err)
	}
	return p
}

func TestTestFileUniquePasses(t *testing.T) {
	dir := t.TempDir()
	p := writePuzzleFile(t, dir, "unique.txt", "22\n")
	ok, detail := testFile(p, false, 8)
	if !ok {
		t.Errorf("unique 1x2 puzzle should pass, got detail %q", detail)
	}
}

func TestTestFileUnsatFails(t *testing.T) {
	dir := t.TempDir()
	p := writePuzzleFile(t, dir, "unsat.txt", "3\n")
	ok, detail := testFile(p, false, 8)
	if ok {
		t.Errorf("unsatisfiable 1x1 clue-3 puzzle should fail")
	}
	if detail == "" {
		t.Errorf("a failing test should report a detail message")
	}
}

func TestTestFileMultipleFails(t *testing.T) {
	dir := t.TempDir()
	p := writePuzzleFile(t, dir, "multi.txt", "...\n...\n...\n")
	ok, _ := testFile(p, false, 8)
	if ok {
		t.Errorf("an all-blank 3x3 puzzle has multiple solutions and should fail")
	}
}

func TestTestFileMissingFile(t *testing.T) {
	ok, detail := testFile(filepath.Join(t.TempDir(), "does-not-exist.txt"), false, 8)
	if ok {
		t.Errorf("a missing file should fail")
	}
	if detail == "" {
		t.Errorf("a missing file should report a detail message")
	}
}
