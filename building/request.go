package building

import (
	"strings"

	"github.com/randalmurphal/mvnsettings/source"
)

// Property keys consulted during resolution.
const (
	// SkipProperty disables project settings when set to "true".
	SkipProperty = "skipProjectSettings"

	// ProjectDirProperty names the root directory of the project.
	ProjectDirProperty = "maven.multiModuleProjectDirectory"

	// UserHomeProperty locates the default local repository.
	UserHomeProperty = "user.home"

	// IDEVersionProperty and IDEEmbedderVersionProperty are set by IDE
	// launchers.
	IDEVersionProperty         = "idea.version"
	IDEEmbedderVersionProperty = "idea.maven.embedder.version"

	// SkipIDEProperty disables the IDE integration.
	SkipIDEProperty = "skipIdeIntegration"
)

// ProjectSettingsPath is the project settings file relative to the project
// directory.
const ProjectSettingsPath = ".mvn/settings.xml"

// Properties is a read-only string map. A nil Properties is empty.
type Properties map[string]string

// Get returns the value of key and whether it is set.
func (p Properties) Get(key string) (string, bool) {
	v, ok := p[key]
	return v, ok
}

// Has reports whether key is set.
func (p Properties) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// Slot is one settings scope of a request. It refers either to a file or
// to an in-memory source; setting one clears the other.
type Slot struct {
	file string
	src  source.Source
}

// SetFile points the slot at a file and clears its source.
func (s *Slot) SetFile(path string) *Slot {
	s.file = path
	s.src = nil
	return s
}

// SetSource sets the slot content and clears its file.
func (s *Slot) SetSource(src source.Source) *Slot {
	s.src = src
	s.file = ""
	return s
}

// File returns the file the slot points at, if any.
func (s *Slot) File() string {
	return s.file
}

// Source returns the in-memory content of the slot, if any.
func (s *Slot) Source() source.Source {
	return s.src
}

// resolve returns the source to read: the slot content if set, otherwise
// the file if it exists, otherwise nil.
func (s *Slot) resolve() source.Source {
	if s.src != nil {
		return s.src
	}
	if s.file != "" && source.Exists(s.file) {
		return source.NewFile(s.file)
	}
	return nil
}

// Request is the settings building request of the host.
type Request struct {
	User   Slot
	Global Slot

	UserProperties   Properties
	SystemProperties Properties
}

// Property returns key from the user properties, falling back to the
// system properties.
func (r *Request) Property(key string) (string, bool) {
	if v, ok := r.UserProperties.Get(key); ok {
		return v, true
	}
	return r.SystemProperties.Get(key)
}

// skipped reports whether project settings are disabled for r.
func (r *Request) skipped() bool {
	v, _ := r.Property(SkipProperty)
	return parseBool(v)
}

// parseBool accepts "true" in any case; everything else is false.
func parseBool(v string) bool {
	return strings.EqualFold(strings.TrimSpace(v), "true")
}
