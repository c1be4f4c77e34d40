// srither - a Slither Link puzzle solver.
// Copyright (C) 2015 Daniel C. Brotsky.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License along
// with this program; if not, write to the Free Software Foundation, Inc.,
// 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.
// Licensed under the LGPL v3.  See the LICENSE file for details

// Package ioformat reads and writes the plain-text grid form of a
// Slither Link puzzle. It's kept out of package puzzle entirely so
// that the solving core never touches an io.Reader or io.Writer.
package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/dcbrotsky/srither/puzzle"
)

const noClue int8 = -1

// ParsePuzzle reads a clue grid: one line per row, one character
// per column. '0'-'3' are clue digits; a digit '4'-'9' is an
// IllegalClueDigitCondition error; any other character (by
// convention '.', '-', '_', or a space) means no clue. Leading and
// trailing blank lines are ignored. Every row must have the same
// length, and that length must be positive.
func ParsePuzzle(r io.Reader) (rows, cols int, clues []int8, err error) {
	scanner := bufio.NewScanner(r)
	var lines []string
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if len(lines) == 0 && strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err = scanner.Err(); err != nil {
		return 0, 0, nil, err
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	rows = len(lines)
	if rows == 0 {
		return 0, 0, nil, puzzle.Error{
			Scope: puzzle.GeometryScope, Condition: puzzle.TooSmallCondition,
			Attribute: puzzle.RowsAttribute, Values: puzzle.ErrorData{1},
		}
	}
	cols = len([]rune(lines[0]))
	if cols == 0 {
		return 0, 0, nil, puzzle.Error{
			Scope: puzzle.GeometryScope, Condition: puzzle.TooSmallCondition,
			Attribute: puzzle.ColumnsAttribute, Values: puzzle.ErrorData{1},
		}
	}

	clues = make([]int8, rows*cols)
	for ri, line := range lines {
		runes := []rune(line)
		if len(runes) != cols {
			return 0, 0, nil, puzzle.Error{
				Scope: puzzle.GeometryScope, Condition: puzzle.RowLengthMismatchCondition,
				Values: puzzle.ErrorData{ri, len(runes), cols},
			}
		}
		for ci, ch := range runes {
			idx := ri*cols + ci
			switch {
			case ch >= '0' && ch <= '3':
				clues[idx] = int8(ch - '0')
			case ch >= '4' && ch <= '9':
				return 0, 0, nil, puzzle.Error{
					Scope: puzzle.CellScope, Condition: puzzle.IllegalClueDigitCondition,
					Attribute: puzzle.ClueAttribute, Values: puzzle.ErrorData{idx, string(ch)},
				}
			default:
				clues[idx] = noClue
			}
		}
	}
	return rows, cols, clues, nil
}

// RenderClues writes back the plain clue grid ParsePuzzle reads,
// using '.' for cells with no clue.
func RenderClues(w io.Writer, rows, cols int, clueAt func(r, c int) (int, bool)) error {
	var sb strings.Builder
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if k, ok := clueAt(r, c); ok {
				sb.WriteByte(byte('0' + k))
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// RenderBoard draws the full (2*rows+1) x (2*cols+1) picture of a
// board: '+' at every lattice vertex, a horizontal edge character
// between vertices on the same row, a vertical edge character
// between vertices on the same column, and the clue digit (or a
// blank) at each cell's center. Edge characters are '-'/'|' for
// Line, a space for Cross, and '?' for Unknown, so a partially
// solved board and a finished one use the same renderer.
func RenderBoard(w io.Writer, rows, cols int,
	hSide func(r, c int) puzzle.Side, vSide func(r, c int) puzzle.Side,
	clueAt func(r, c int) (int, bool)) error {

	var sb strings.Builder
	for r := 0; r <= rows; r++ {
		for c := 0; c <= cols; c++ {
			sb.WriteByte('+')
			if c < cols {
				sb.WriteByte(edgeChar(hSide(r, c), '-'))
			}
		}
		sb.WriteByte('\n')
		if r < rows {
			for c := 0; c <= cols; c++ {
				sb.WriteByte(edgeChar(vSide(r, c), '|'))
				if c < cols {
					if k, ok := clueAt(r, c); ok {
						sb.WriteByte(byte('0' + k))
					} else {
						sb.WriteByte(' ')
					}
				}
			}
			sb.WriteByte('\n')
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func edgeChar(s puzzle.Side, lineChar byte) byte {
	switch s {
	case puzzle.Line:
		return lineChar
	case puzzle.Cross:
		return ' '
	default:
		return '?'
	}
}

// Must is a small helper for callers that already know ParsePuzzle
// can't fail (embedded golden files in tests, for instance) and
// would rather panic loudly than thread an error they can't act on.
func Must(rows, cols int, clues []int8, err error) (int, int, []int8) {
	if err != nil {
		panic(fmt.Sprintf("ioformat: %v", err))
	}
	return rows, cols, clues
}
