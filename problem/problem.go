package problem

import (
	"errors"
	"fmt"
	"strings"
)

// Severity orders problems from most to least severe.
type Severity uint8

// Severity constants.
const (
	SeverityFatal Severity = iota
	SeverityError
	SeverityWarning
)

// String returns the upper-case severity name.
func (s Severity) String() string {
	switch s {
	case SeverityFatal:
		return "FATAL"
	case SeverityError:
		return "ERROR"
	case SeverityWarning:
		return "WARNING"
	default:
		return "UNKNOWN"
	}
}

// AtLeast reports whether s is as severe as or more severe than o.
func (s Severity) AtLeast(o Severity) bool {
	return s <= o
}

// Problem is a single diagnostic.
type Problem struct {
	Severity Severity
	Message  string
	// Source identifies the document, usually a file path or memory location.
	Source string
	// Line and Column are 1-based; 0 or -1 mean unknown.
	Line   int
	Column int
	Cause  error
}

// Location renders the source position, e.g. "settings.xml, line 3, column 7".
func (p Problem) Location() string {
	var sb strings.Builder
	sb.WriteString(p.Source)
	if p.Line > 0 {
		if sb.Len() > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "line %d", p.Line)
	}
	if p.Column > 0 {
		if sb.Len() > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "column %d", p.Column)
	}
	return sb.String()
}

// String renders the problem as "[SEVERITY] message @ location".
func (p Problem) String() string {
	loc := p.Location()
	if loc == "" {
		return fmt.Sprintf("[%s] %s", p.Severity, p.Message)
	}
	return fmt.Sprintf("[%s] %s @ %s", p.Severity, p.Message, loc)
}

// Positioned is implemented by errors that know where in a document they
// occurred, such as parse errors.
type Positioned interface {
	Position() (line, column int)
}

// Adder records problems for one source.
type Adder interface {
	Add(severity Severity, message string, line, column int, cause error)
}

// List accumulates problems in emission order.
type List struct {
	problems []Problem
}

// For returns an Adder that stamps problems with source. When a problem is
// added without a position and its cause is Positioned, the cause position
// is used.
func (l *List) For(source string) Adder {
	return &sourceAdder{list: l, source: source}
}

// Append adds already-built problems to the end of the list.
func (l *List) Append(problems ...Problem) {
	l.problems = append(l.problems, problems...)
}

// Problems returns a copy of the collected problems.
func (l *List) Problems() []Problem {
	if len(l.problems) == 0 {
		return nil
	}
	out := make([]Problem, len(l.problems))
	copy(out, l.problems)
	return out
}

// Len returns the number of collected problems.
func (l *List) Len() int {
	return len(l.problems)
}

// HasErrors reports whether any problem is ERROR or FATAL.
func (l *List) HasErrors() bool {
	return HasErrors(l.problems)
}

// HasErrors reports whether any of problems is ERROR or FATAL.
func HasErrors(problems []Problem) bool {
	for _, p := range problems {
		if p.Severity.AtLeast(SeverityError) {
			return true
		}
	}
	return false
}

type sourceAdder struct {
	list   *List
	source string
}

func (a *sourceAdder) Add(severity Severity, message string, line, column int, cause error) {
	if line <= 0 && column <= 0 {
		var pos Positioned
		if errors.As(cause, &pos) {
			line, column = pos.Position()
		}
	}
	a.list.problems = append(a.list.problems, Problem{
		Severity: severity,
		Message:  message,
		Source:   a.source,
		Line:     line,
		Column:   column,
		Cause:    cause,
	})
}
