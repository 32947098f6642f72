// Package source abstracts where a settings document comes from.
//
// A Source names its location for diagnostics and opens a fresh reader on
// every call. FileSource reads from disk; StringSource holds a document in
// memory, which is how a resolved document is handed back to the host.
package source
