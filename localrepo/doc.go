// Package localrepo edits metadata files in a Maven-layout local artifact
// repository.
//
// An artifact downloaded from a remote repository is accompanied by a
// _remote.repositories marker, and a failed download leaves a
// <artifactId>-<version>.pom.lastUpdated status file. ForgetRemote removes
// both so that tools which trust only locally installed artifacts, such as
// IDE importers, accept parent POMs fetched from custom repositories.
package localrepo
