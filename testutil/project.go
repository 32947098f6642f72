package testutil

import (
	"path/filepath"
	"testing"
)

// ProjectSettingsFile is the project settings path inside a project.
const ProjectSettingsFile = ".mvn/settings.xml"

// Settings wraps body in a settings document element.
func Settings(body string) string {
	return "<settings>" + body + "</settings>"
}

// SetupProject creates a temporary project directory. If projectSettings is
// not empty it is written to .mvn/settings.xml. Returns the project root.
func SetupProject(t *testing.T, projectSettings string) string {
	t.Helper()

	dir := t.TempDir()
	if projectSettings != "" {
		WriteFile(t, dir, ProjectSettingsFile, projectSettings)
	}
	return dir
}

// SetupProjectWithFiles creates a temporary project directory containing
// files, keyed by slash-separated relative path.
func SetupProjectWithFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for rel, content := range files {
		WriteFile(t, dir, rel, content)
	}
	return dir
}

// SettingsHome creates a user home holding .m2/settings.xml with content
// and returns the home directory and the settings path.
func SettingsHome(t *testing.T, content string) (home, path string) {
	t.Helper()

	home = t.TempDir()
	path = WriteFile(t, home, ".m2/settings.xml", content)
	return home, filepath.Clean(path)
}
