// Package settings defines the in-memory model of a Maven-style settings
// document.
//
// A Settings value is produced per source by the settingsxml reader, merged
// by the merge package and serialized back by the settingsxml writer. Entries
// that can be contributed by more than one scope (servers, mirrors, proxies,
// profiles) carry a SourceLevel recording the scope that last contributed
// them. SourceLevel is provenance only and is never serialized.
//
// Use New for a default-valued document; the zero Settings has
// InteractiveMode false, which differs from the format default.
package settings
