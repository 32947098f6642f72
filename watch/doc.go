// Package watch re-runs settings resolution when a settings file changes.
//
// A Watcher observes the parent directories of its files, so editors that
// save by rename and files that do not exist yet are both picked up. Bursts
// of events are coalesced; resolutions run one at a time on the goroutine
// calling Run.
package watch
