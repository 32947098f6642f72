// Package problem collects diagnostics produced while reading, validating and
// merging settings documents.
//
// Core types:
//   - Severity: FATAL, ERROR or WARNING (FATAL is the most severe)
//   - Problem: an immutable diagnostic with source location and cause
//   - List: the ordered, per-resolution accumulator
//   - Adder: the write side handed to readers and validators, bound to one
//     source location by List.For
//   - BuildingError: the terminating error carrying every problem of a failed
//     resolution
//
// A List is owned by a single resolution and is not safe for concurrent use.
//
// Example:
//
//	var problems problem.List
//	add := problems.For("/work/.mvn/settings.xml")
//	add.Add(problem.SeverityWarning, "unknown element", 3, 7, nil)
//	if problems.HasErrors() {
//	    return &problem.BuildingError{Problems: problems.Problems()}
//	}
package problem
