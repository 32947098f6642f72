// Package validation checks a parsed settings document for structural
// problems such as missing identifiers, duplicated IDs and reserved names.
//
// Validation never modifies the document. Findings are reported through a
// problem.Adder with an unknown position, so a caller can validate several
// documents into one collector:
//
//	var problems problem.List
//	validation.Validate(s, problems.For(src.Location()))
package validation
