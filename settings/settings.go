package settings

import "github.com/randalmurphal/mvnsettings/dom"

// SourceLevel tags the scope that contributed an entry.
type SourceLevel string

// Source level constants.
const (
	// LevelProject marks entries declared by the project scope.
	LevelProject SourceLevel = ""

	// LevelUser marks entries contributed by the user scope.
	LevelUser SourceLevel = "user-level"

	// LevelGlobal marks entries contributed by the global scope.
	LevelGlobal SourceLevel = "global-level"
)

// Format defaults applied by New and by the reader for absent elements.
const (
	DefaultProxyProtocol    = "http"
	DefaultProxyPort        = 8080
	DefaultMirrorLayouts    = "default,legacy"
	DefaultRepositoryLayout = "default"
)

// Settings is the root of a settings document.
type Settings struct {
	LocalRepository   string     `yaml:"localRepository,omitempty"`
	InteractiveMode   bool       `yaml:"interactiveMode"`
	UsePluginRegistry bool       `yaml:"usePluginRegistry"`
	Offline           bool       `yaml:"offline"`
	Proxies           []*Proxy   `yaml:"proxies,omitempty"`
	Servers           []*Server  `yaml:"servers,omitempty"`
	Mirrors           []*Mirror  `yaml:"mirrors,omitempty"`
	Profiles          []*Profile `yaml:"profiles,omitempty"`
	ActiveProfiles    []string   `yaml:"activeProfiles,omitempty"`
	PluginGroups      []string   `yaml:"pluginGroups,omitempty"`
}

// New returns an empty document with format defaults.
func New() *Settings {
	return &Settings{InteractiveMode: true}
}

// Server holds authentication and transport configuration for a repository
// identified by ID.
type Server struct {
	ID                   string      `yaml:"id"`
	Username             string      `yaml:"username,omitempty"`
	Password             string      `yaml:"password,omitempty"`
	PrivateKey           string      `yaml:"privateKey,omitempty"`
	Passphrase           string      `yaml:"passphrase,omitempty"`
	FilePermissions      string      `yaml:"filePermissions,omitempty"`
	DirectoryPermissions string      `yaml:"directoryPermissions,omitempty"`
	Configuration        *dom.Node   `yaml:"configuration,omitempty"`
	SourceLevel          SourceLevel `yaml:"-"`
}

// ClearCredentials unsets every security-sensitive field.
func (s *Server) ClearCredentials() {
	s.CopyCredentials(&Server{})
}

// CopyCredentials overwrites the security-sensitive fields of s with those
// of from, including empty ones.
func (s *Server) CopyCredentials(from *Server) {
	s.Username = from.Username
	s.Password = from.Password
	s.PrivateKey = from.PrivateKey
	s.Passphrase = from.Passphrase
	s.FilePermissions = from.FilePermissions
	s.DirectoryPermissions = from.DirectoryPermissions
}

// Proxy describes an HTTP proxy.
type Proxy struct {
	ID            string      `yaml:"id"`
	Active        bool        `yaml:"active"`
	Protocol      string      `yaml:"protocol"`
	Username      string      `yaml:"username,omitempty"`
	Password      string      `yaml:"password,omitempty"`
	Port          int         `yaml:"port"`
	Host          string      `yaml:"host,omitempty"`
	NonProxyHosts string      `yaml:"nonProxyHosts,omitempty"`
	SourceLevel   SourceLevel `yaml:"-"`
}

// NewProxy returns a proxy with format defaults.
func NewProxy() *Proxy {
	return &Proxy{Active: true, Protocol: DefaultProxyProtocol, Port: DefaultProxyPort}
}

// Mirror redirects requests for one or more repositories.
type Mirror struct {
	ID              string      `yaml:"id"`
	Name            string      `yaml:"name,omitempty"`
	URL             string      `yaml:"url,omitempty"`
	MirrorOf        string      `yaml:"mirrorOf,omitempty"`
	Layout          string      `yaml:"layout,omitempty"`
	MirrorOfLayouts string      `yaml:"mirrorOfLayouts"`
	Blocked         bool        `yaml:"blocked,omitempty"`
	SourceLevel     SourceLevel `yaml:"-"`
}

// NewMirror returns a mirror with format defaults.
func NewMirror() *Mirror {
	return &Mirror{MirrorOfLayouts: DefaultMirrorLayouts}
}

// Profile is a named set of properties and repositories.
type Profile struct {
	ID                 string            `yaml:"id"`
	Activation         *Activation       `yaml:"activation,omitempty"`
	Properties         map[string]string `yaml:"properties,omitempty"`
	Repositories       []*Repository     `yaml:"repositories,omitempty"`
	PluginRepositories []*Repository     `yaml:"pluginRepositories,omitempty"`
	SourceLevel        SourceLevel       `yaml:"-"`
}

// Repository is a remote artifact repository declared by a profile.
type Repository struct {
	ID        string            `yaml:"id"`
	Name      string            `yaml:"name,omitempty"`
	URL       string            `yaml:"url,omitempty"`
	Layout    string            `yaml:"layout"`
	Releases  *RepositoryPolicy `yaml:"releases,omitempty"`
	Snapshots *RepositoryPolicy `yaml:"snapshots,omitempty"`
}

// NewRepository returns a repository with format defaults.
func NewRepository() *Repository {
	return &Repository{Layout: DefaultRepositoryLayout}
}

// RepositoryPolicy controls release or snapshot handling of a repository.
type RepositoryPolicy struct {
	Enabled        bool   `yaml:"enabled"`
	UpdatePolicy   string `yaml:"updatePolicy,omitempty"`
	ChecksumPolicy string `yaml:"checksumPolicy,omitempty"`
}

// Activation holds the conditions that activate a profile.
type Activation struct {
	ActiveByDefault bool                `yaml:"activeByDefault,omitempty"`
	JDK             string              `yaml:"jdk,omitempty"`
	OS              *ActivationOS       `yaml:"os,omitempty"`
	Property        *ActivationProperty `yaml:"property,omitempty"`
	File            *ActivationFile     `yaml:"file,omitempty"`
}

// ActivationOS matches the operating system.
type ActivationOS struct {
	Name    string `yaml:"name,omitempty"`
	Family  string `yaml:"family,omitempty"`
	Arch    string `yaml:"arch,omitempty"`
	Version string `yaml:"version,omitempty"`
}

// ActivationProperty matches a system property.
type ActivationProperty struct {
	Name  string `yaml:"name,omitempty"`
	Value string `yaml:"value,omitempty"`
}

// ActivationFile matches file presence.
type ActivationFile struct {
	Missing string `yaml:"missing,omitempty"`
	Exists  string `yaml:"exists,omitempty"`
}

// Server returns the first server with the given ID, or nil.
func (s *Settings) Server(id string) *Server {
	for _, srv := range s.Servers {
		if srv.ID == id {
			return srv
		}
	}
	return nil
}

// Mirror returns the first mirror with the given ID, or nil.
func (s *Settings) Mirror(id string) *Mirror {
	for _, m := range s.Mirrors {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// Profile returns the first profile with the given ID, or nil.
func (s *Settings) Profile(id string) *Profile {
	for _, p := range s.Profiles {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Proxy returns the first proxy with the given ID, or nil.
func (s *Settings) Proxy(id string) *Proxy {
	for _, p := range s.Proxies {
		if p.ID == id {
			return p
		}
	}
	return nil
}
