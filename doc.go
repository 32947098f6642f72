// Package mvnsettings resolves project-scoped Maven settings.
//
// A project may ship .mvn/settings.xml next to its build. Resolution merges
// that document with the user settings (or, without them, the global
// settings) and binds the effective document back into the settings
// building request of the host, so the host reads one merged document.
//
// The work is split into subpackages:
//
//   - settings: the settings document model
//   - dom: server configuration trees and their merge
//   - settingsxml: strict and lenient reading, deterministic writing
//   - validation: semantic checks of a parsed document
//   - merge: the project-over-user document merge
//   - problem: diagnostics and the building error
//   - source: file and in-memory documents
//   - building: the resolution pipeline and its handle
//   - localrepo: local repository cleanup for IDE imports
//   - notify: resolution events (log, webhook)
//   - watch: re-resolution on file changes
//   - config: CLI configuration layers
//   - errors: user-facing CLI errors
//
// # Quick Start
//
//	req := mvnsettings.NewRequest("/work/app")
//	h, err := mvnsettings.Resolve(ctx, req)
//	if err != nil {
//	    return err // *problem.BuildingError lists every problem
//	}
//	if h.Injected() {
//	    fmt.Println(h.Result.Location())
//	}
//	problems = h.AttachDiagnostics(problems)
package mvnsettings
