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

package puzzle

import (
	"fmt"
)

/*

Errors

*/

// An Error describes a problem with a puzzle or a requested
// operation.  It tells the caller "this thing failed to meet this
// condition", and carries supplemental details about the thing and
// the condition, so callers can build their own messages instead of
// parsing ours.
type Error struct {
	Scope     ErrorScope
	Condition ErrorCondition
	Attribute ErrorAttribute
	Values    ErrorData
	Message   string // custom message, if set
}

// An ErrorScope names what part of the system the error concerns.
type ErrorScope int

const (
	UnknownScope ErrorScope = iota
	ArgumentScope
	GeometryScope
	CellScope
	EdgeScope
	VertexScope
	InternalScope
	MaxScope
)

// An ErrorCondition is the predicate that failed to hold.
type ErrorCondition int

const (
	UnknownCondition ErrorCondition = iota
	GeneralCondition
	TooSmallCondition
	TooLargeCondition
	RowLengthMismatchCondition
	IllegalClueDigitCondition
	EdgeConflictCondition
	ClueOverfullCondition
	ClueUnreachableCondition
	VertexOverfullCondition
	VertexUnreachableCondition
	PrematureClosureCondition
	MultipleSolutionsCondition
	NoSolutionCondition
	MaxCondition
)

// An ErrorAttribute names the attribute of the Scope that has a problem.
type ErrorAttribute int

const (
	UnknownAttribute ErrorAttribute = iota
	RowsAttribute
	ColumnsAttribute
	ClueAttribute
	EdgeAttribute
	CellAttribute
	VertexAttribute
	MaxAttribute
)

// ErrorData carries the supplemental values for an Error's message.
type ErrorData []interface{}

// Error returns an English error message.  If the Error has a
// pre-canned Message, that's used verbatim; otherwise a message is
// assembled from the Scope/Attribute/Condition/Values.
func (e Error) Error() string {
	if len(e.Message) > 0 {
		return e.Message
	}
	values := e.Values
	nextVal := func() interface{} {
		if len(values) == 0 {
			return "<unknown>"
		}
		val := values[0]
		values = values[1:]
		return val
	}
	var es string
	switch e.Scope {
	case ArgumentScope:
		es = "Invalid argument: "
	case GeometryScope:
		es = "Invalid geometry: "
	case CellScope:
		es = fmt.Sprintf("Problem at cell %v: ", nextVal())
	case EdgeScope:
		es = fmt.Sprintf("Problem at edge %v: ", nextVal())
	case VertexScope:
		es = fmt.Sprintf("Problem at vertex %v: ", nextVal())
	case InternalScope:
		es = "Internal logic error: "
	default:
		es = "Unknown error: "
	}
	switch e.Attribute {
	case RowsAttribute:
		es += "Rows: "
	case ColumnsAttribute:
		es += "Columns: "
	case ClueAttribute:
		es += "Clue: "
	}
	switch e.Condition {
	case GeneralCondition:
		es += fmt.Sprint(nextVal())
	case TooSmallCondition:
		es += fmt.Sprintf("Must be at least %v", nextVal())
	case TooLargeCondition:
		es += fmt.Sprintf("Must be at most %v", nextVal())
	case RowLengthMismatchCondition:
		es += fmt.Sprintf("Row %v has length %v, expected %v", nextVal(), nextVal(), nextVal())
	case IllegalClueDigitCondition:
		es += fmt.Sprintf("Clue digit %q is not in {0,1,2,3}", nextVal())
	case EdgeConflictCondition:
		es += fmt.Sprintf("is already %v; can't set it %v", nextVal(), nextVal())
	case ClueOverfullCondition:
		es += fmt.Sprintf("Too many line edges already border this clue (%v)", nextVal())
	case ClueUnreachableCondition:
		es += fmt.Sprintf("Too many cross edges already border this clue (%v)", nextVal())
	case VertexOverfullCondition:
		es += fmt.Sprintf("More than two line edges meet at this vertex")
	case VertexUnreachableCondition:
		es += fmt.Sprintf("Fewer than two edges remain available at this vertex")
	case PrematureClosureCondition:
		es += fmt.Sprintf("Closing this chain would leave unknown edges outside the loop")
	case MultipleSolutionsCondition:
		es += fmt.Sprintf("Puzzle has more than one solution")
	case NoSolutionCondition:
		es += fmt.Sprintf("Puzzle has no solution")
	default:
		es += fmt.Sprintf("Supplemental data is %v", values)
	}
	return es
}
