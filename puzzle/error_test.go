package puzzle

import (
	"strings"
	"testing"
)

/*

Error

*/

func TestErrorMessageIncludesScope(t *testing.T) {
	e := Error{
		Scope: EdgeScope, Condition: EdgeConflictCondition,
		Values: ErrorData{7, Cross, Line},
	}
	msg := e.Error()
	if !strings.Contains(msg, "edge 7") {
		t.Errorf("message %q should mention the edge id", msg)
	}
	if !strings.Contains(msg, "already Cross") {
		t.Errorf("message %q should describe the conflicting sides", msg)
	}
}

func TestErrorCustomMessageWins(t *testing.T) {
	e := Error{Message: "a custom explanation"}
	if got := e.Error(); got != "a custom explanation" {
		t.Errorf("Error() = %q, want the custom message verbatim", got)
	}
}

func TestErrorForEveryCondition(t *testing.T) {
	conditions := []ErrorCondition{
		GeneralCondition, TooSmallCondition, TooLargeCondition,
		RowLengthMismatchCondition, IllegalClueDigitCondition,
		EdgeConflictCondition, ClueOverfullCondition, ClueUnreachableCondition,
		VertexOverfullCondition, VertexUnreachableCondition,
		PrematureClosureCondition, MultipleSolutionsCondition, NoSolutionCondition,
	}
	for _, c := range conditions {
		e := Error{Condition: c, Values: ErrorData{1, 2, 3}}
		if msg := e.Error(); msg == "" {
			t.Errorf("condition %v produced an empty message", c)
		}
	}
}
