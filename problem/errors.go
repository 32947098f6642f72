package problem

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBuildingFailed is matched by every BuildingError.
var ErrBuildingFailed = errors.New("settings building failed")

// BuildingError aborts a resolution that produced an ERROR or FATAL problem.
type BuildingError struct {
	Problems []Problem
}

// Error lists every problem, one per line.
func (e *BuildingError) Error() string {
	var sb strings.Builder
	if len(e.Problems) == 1 {
		sb.WriteString("1 problem was encountered while building the effective settings")
	} else {
		fmt.Fprintf(&sb, "%d problems were encountered while building the effective settings", len(e.Problems))
	}
	for _, p := range e.Problems {
		sb.WriteString("\n")
		sb.WriteString(p.String())
	}
	return sb.String()
}

// Is implements error matching for BuildingError.
func (e *BuildingError) Is(target error) bool {
	return target == ErrBuildingFailed
}

// First returns the most severe problem, the earliest among equals.
func (e *BuildingError) First() (Problem, bool) {
	if len(e.Problems) == 0 {
		return Problem{}, false
	}
	best := e.Problems[0]
	for _, p := range e.Problems[1:] {
		if p.Severity < best.Severity {
			best = p
		}
	}
	return best, true
}
