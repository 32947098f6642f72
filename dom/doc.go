// Package dom provides the schema-less configuration tree carried by servers
// (the <configuration> block of a settings document) and the structural merge
// applied when two scopes describe the same server.
//
// Core types:
//   - Node: a named element with an optional scalar value, ordered attributes
//     and ordered children. Children may repeat under the same name.
//   - Policy: which side wins a scalar conflict during Merge.
//
// Merge follows the plexus Xpp3Dom rules used by Maven so that a merged tree
// serializes to the same shape the host tool expects:
//
//	merged := dom.Merge(projectConf, userConf, dom.PreferDominant)
//
// Two attributes on the dominant node steer the merge:
//   - combine.self="override": keep the dominant node untouched.
//   - combine.children="append": recessive children go before the dominant
//     ones instead of being merged by name.
package dom
