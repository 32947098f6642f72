package localrepo

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// RemoteMarker is the file recording which remote an artifact came from.
const RemoteMarker = "_remote.repositories"

// Coordinate identifies an artifact version.
type Coordinate struct {
	GroupID    string
	ArtifactID string
	Version    string
}

// String returns groupId:artifactId:version.
func (c Coordinate) String() string {
	return c.GroupID + ":" + c.ArtifactID + ":" + c.Version
}

// Repository is a local repository rooted at Root.
type Repository struct {
	Root   string
	logger *slog.Logger
}

// New returns a repository rooted at root. If logger is nil, the default
// slog logger is used.
func New(root string, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{Root: root, logger: logger}
}

// DefaultRoot returns the conventional local repository below home.
func DefaultRoot(home string) string {
	return filepath.Join(home, ".m2", "repository")
}

// Dir returns the directory holding the files of c.
func (r *Repository) Dir(c Coordinate) string {
	parts := append([]string{r.Root}, strings.Split(c.GroupID, ".")...)
	parts = append(parts, c.ArtifactID, c.Version)
	return filepath.Join(parts...)
}

// ForgetRemote deletes the remote marker and the POM download status of c.
// Missing files are ignored. It returns the paths it removed; every failed
// removal is reported in the joined error.
func (r *Repository) ForgetRemote(c Coordinate) ([]string, error) {
	if c.GroupID == "" || c.ArtifactID == "" || c.Version == "" {
		return nil, fmt.Errorf("incomplete coordinate %q", c.String())
	}

	dir := r.Dir(c)
	targets := []string{
		filepath.Join(dir, RemoteMarker),
		filepath.Join(dir, c.ArtifactID+"-"+c.Version+".pom.lastUpdated"),
	}

	var (
		removed []string
		errs    []error
	)
	for _, path := range targets {
		err := os.Remove(path)
		switch {
		case err == nil:
			r.logger.Debug("removed local repository file", "path", path, "artifact", c.String())
			removed = append(removed, path)
		case errors.Is(err, fs.ErrNotExist):
		default:
			errs = append(errs, fmt.Errorf("remove %s: %w", path, err))
		}
	}
	return removed, errors.Join(errs...)
}
