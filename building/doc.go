// Package building injects project settings into a settings building
// request.
//
// A host that is about to build its effective settings from a user and a
// global scope hands its Request to Injector.Resolve first. When the project
// directory contains .mvn/settings.xml, the injector reads it together with
// the user (or, failing that, the global) document, merges the two with
// merge.Merger, and replaces the chosen scope in the request with the merged
// document held in memory. The host then continues as usual, unaware of the
// project scope.
//
// Resolution passes through a fixed sequence of states:
//
//	Start -> ProjectLoaded -> InjectSourceSelected -> Merged -> Bound -> Done
//
// Skipping, a missing project directory or a missing project file go
// straight to Done without touching the request. Any ERROR or FATAL problem
// fails the resolution with a *problem.BuildingError before the request is
// modified.
//
// Warnings of a successful resolution stay with the returned Handle until
// the host attaches them to its own diagnostics:
//
//	handle, err := building.NewInjector().Resolve(ctx, req)
//	if err != nil {
//	    return err
//	}
//	result := host.Build(req)
//	result.Problems = handle.AttachDiagnostics(result.Problems)
package building
