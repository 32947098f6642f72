// Package merge combines a project settings document with a user or global
// one.
//
// Merger applies the project scope rules on top of Base: machine-local
// fields and proxies always come from the recessive document, server
// credentials are never trusted from the project, and server configuration
// trees are merged with dom.Merge. Base is the conventional id-based merge
// shared by every scope.
//
// Both functions are pure. They return a new document and leave their
// arguments untouched.
package merge
