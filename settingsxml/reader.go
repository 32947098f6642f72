package settingsxml

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/randalmurphal/mvnsettings/dom"
	"github.com/randalmurphal/mvnsettings/settings"
)

// RootElement is the name of the document element.
const RootElement = "settings"

// ReadOptions configures Read.
type ReadOptions struct {
	// Strict rejects unknown or duplicated elements and malformed scalars.
	Strict bool
}

// Read parses a settings document. Parse failures are returned as
// *ParseError; failures of r itself are returned wrapped.
func Read(r io.Reader, opts ReadOptions) (*settings.Settings, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}
	return Unmarshal(data, opts)
}

// Unmarshal parses a settings document held in memory.
func Unmarshal(data []byte, opts ReadOptions) (*settings.Settings, error) {
	root, err := parseTree(data)
	if err != nil {
		return nil, err
	}
	d := &decoder{strict: opts.Strict}
	return d.settings(root)
}

// decoder maps a parsed tree onto the settings model.
type decoder struct {
	strict bool
}

// fields tracks singular elements already seen inside one parent.
type fields map[string]bool

// once marks child as seen. A repeated singular element fails in strict
// mode; in lenient mode the last occurrence wins.
func (d *decoder) once(seen fields, child *dom.Node) error {
	if seen[child.Name] && d.strict {
		return errorAt(child.Line, child.Column, "Duplicated tag: '%s'", child.Name)
	}
	seen[child.Name] = true
	return nil
}

func (d *decoder) unknown(child *dom.Node) error {
	if d.strict {
		return errorAt(child.Line, child.Column, "Unrecognised tag: '%s'", child.Name)
	}
	return nil
}

func (d *decoder) boolean(n *dom.Node, dst *bool) error {
	switch strings.ToLower(n.Value) {
	case "true":
		*dst = true
	case "false":
		*dst = false
	default:
		if d.strict {
			return errorAt(n.Line, n.Column, "Unable to parse element '%s', must be a boolean but was '%s'", n.Name, n.Value)
		}
	}
	return nil
}

func (d *decoder) integer(n *dom.Node, dst *int) error {
	v, err := strconv.Atoi(n.Value)
	if err != nil {
		if d.strict {
			return &ParseError{
				Line:    n.Line,
				Column:  n.Column,
				Message: fmt.Sprintf("Unable to parse element '%s', must be an integer", n.Name),
				Err:     err,
			}
		}
		return nil
	}
	*dst = v
	return nil
}

// list decodes the repeated item children of a container such as <servers>.
func (d *decoder) list(container *dom.Node, item string, each func(*dom.Node) error) error {
	for _, child := range container.Children {
		if child.Name != item {
			if err := d.unknown(child); err != nil {
				return err
			}
			continue
		}
		if err := each(child); err != nil {
			return err
		}
	}
	return nil
}

func (d *decoder) stringList(container *dom.Node, item string, dst *[]string) error {
	return d.list(container, item, func(n *dom.Node) error {
		*dst = append(*dst, n.Value)
		return nil
	})
}

func (d *decoder) settings(root *dom.Node) (*settings.Settings, error) {
	if root.Name != RootElement && d.strict {
		return nil, errorAt(root.Line, root.Column, "Expected root element '%s' but found '%s'", RootElement, root.Name)
	}

	s := settings.New()
	seen := fields{}
	for _, c := range root.Children {
		var err error
		switch c.Name {
		case "localRepository", "interactiveMode", "usePluginRegistry", "offline",
			"proxies", "servers", "mirrors", "profiles", "activeProfiles", "pluginGroups":
			if err = d.once(seen, c); err != nil {
				return nil, err
			}
		}

		switch c.Name {
		case "localRepository":
			s.LocalRepository = c.Value
		case "interactiveMode":
			err = d.boolean(c, &s.InteractiveMode)
		case "usePluginRegistry":
			err = d.boolean(c, &s.UsePluginRegistry)
		case "offline":
			err = d.boolean(c, &s.Offline)
		case "proxies":
			s.Proxies = nil
			err = d.list(c, "proxy", func(n *dom.Node) error {
				p, err := d.proxy(n)
				if err == nil {
					s.Proxies = append(s.Proxies, p)
				}
				return err
			})
		case "servers":
			s.Servers = nil
			err = d.list(c, "server", func(n *dom.Node) error {
				srv, err := d.server(n)
				if err == nil {
					s.Servers = append(s.Servers, srv)
				}
				return err
			})
		case "mirrors":
			s.Mirrors = nil
			err = d.list(c, "mirror", func(n *dom.Node) error {
				m, err := d.mirror(n)
				if err == nil {
					s.Mirrors = append(s.Mirrors, m)
				}
				return err
			})
		case "profiles":
			s.Profiles = nil
			err = d.list(c, "profile", func(n *dom.Node) error {
				p, err := d.profile(n)
				if err == nil {
					s.Profiles = append(s.Profiles, p)
				}
				return err
			})
		case "activeProfiles":
			s.ActiveProfiles = nil
			err = d.stringList(c, "activeProfile", &s.ActiveProfiles)
		case "pluginGroups":
			s.PluginGroups = nil
			err = d.stringList(c, "pluginGroup", &s.PluginGroups)
		default:
			err = d.unknown(c)
		}
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (d *decoder) proxy(n *dom.Node) (*settings.Proxy, error) {
	p := settings.NewProxy()
	seen := fields{}
	for _, c := range n.Children {
		if err := d.once(seen, c); err != nil {
			return nil, err
		}
		var err error
		switch c.Name {
		case "id":
			p.ID = c.Value
		case "active":
			err = d.boolean(c, &p.Active)
		case "protocol":
			p.Protocol = c.Value
		case "username":
			p.Username = c.Value
		case "password":
			p.Password = c.Value
		case "port":
			err = d.integer(c, &p.Port)
		case "host":
			p.Host = c.Value
		case "nonProxyHosts":
			p.NonProxyHosts = c.Value
		default:
			err = d.unknown(c)
		}
		if err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (d *decoder) server(n *dom.Node) (*settings.Server, error) {
	srv := &settings.Server{}
	seen := fields{}
	for _, c := range n.Children {
		if err := d.once(seen, c); err != nil {
			return nil, err
		}
		var err error
		switch c.Name {
		case "id":
			srv.ID = c.Value
		case "username":
			srv.Username = c.Value
		case "password":
			srv.Password = c.Value
		case "privateKey":
			srv.PrivateKey = c.Value
		case "passphrase":
			srv.Passphrase = c.Value
		case "filePermissions":
			srv.FilePermissions = c.Value
		case "directoryPermissions":
			srv.DirectoryPermissions = c.Value
		case "configuration":
			srv.Configuration = c.Clone()
		default:
			err = d.unknown(c)
		}
		if err != nil {
			return nil, err
		}
	}
	return srv, nil
}

func (d *decoder) mirror(n *dom.Node) (*settings.Mirror, error) {
	m := settings.NewMirror()
	seen := fields{}
	for _, c := range n.Children {
		if err := d.once(seen, c); err != nil {
			return nil, err
		}
		var err error
		switch c.Name {
		case "id":
			m.ID = c.Value
		case "name":
			m.Name = c.Value
		case "url":
			m.URL = c.Value
		case "mirrorOf":
			m.MirrorOf = c.Value
		case "layout":
			m.Layout = c.Value
		case "mirrorOfLayouts":
			m.MirrorOfLayouts = c.Value
		case "blocked":
			err = d.boolean(c, &m.Blocked)
		default:
			err = d.unknown(c)
		}
		if err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (d *decoder) profile(n *dom.Node) (*settings.Profile, error) {
	p := &settings.Profile{}
	seen := fields{}
	for _, c := range n.Children {
		if err := d.once(seen, c); err != nil {
			return nil, err
		}
		var err error
		switch c.Name {
		case "id":
			p.ID = c.Value
		case "activation":
			p.Activation, err = d.activation(c)
		case "properties":
			p.Properties = nil
			for _, prop := range c.Children {
				if p.Properties == nil {
					p.Properties = make(map[string]string)
				}
				p.Properties[prop.Name] = prop.Value
			}
		case "repositories":
			p.Repositories = nil
			err = d.list(c, "repository", func(n *dom.Node) error {
				r, err := d.repository(n)
				if err == nil {
					p.Repositories = append(p.Repositories, r)
				}
				return err
			})
		case "pluginRepositories":
			p.PluginRepositories = nil
			err = d.list(c, "pluginRepository", func(n *dom.Node) error {
				r, err := d.repository(n)
				if err == nil {
					p.PluginRepositories = append(p.PluginRepositories, r)
				}
				return err
			})
		default:
			err = d.unknown(c)
		}
		if err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (d *decoder) repository(n *dom.Node) (*settings.Repository, error) {
	r := settings.NewRepository()
	seen := fields{}
	for _, c := range n.Children {
		if err := d.once(seen, c); err != nil {
			return nil, err
		}
		var err error
		switch c.Name {
		case "id":
			r.ID = c.Value
		case "name":
			r.Name = c.Value
		case "url":
			r.URL = c.Value
		case "layout":
			r.Layout = c.Value
		case "releases":
			r.Releases, err = d.policy(c)
		case "snapshots":
			r.Snapshots, err = d.policy(c)
		default:
			err = d.unknown(c)
		}
		if err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (d *decoder) policy(n *dom.Node) (*settings.RepositoryPolicy, error) {
	p := &settings.RepositoryPolicy{Enabled: true}
	seen := fields{}
	for _, c := range n.Children {
		if err := d.once(seen, c); err != nil {
			return nil, err
		}
		var err error
		switch c.Name {
		case "enabled":
			err = d.boolean(c, &p.Enabled)
		case "updatePolicy":
			p.UpdatePolicy = c.Value
		case "checksumPolicy":
			p.ChecksumPolicy = c.Value
		default:
			err = d.unknown(c)
		}
		if err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (d *decoder) activation(n *dom.Node) (*settings.Activation, error) {
	a := &settings.Activation{}
	seen := fields{}
	for _, c := range n.Children {
		if err := d.once(seen, c); err != nil {
			return nil, err
		}
		var err error
		switch c.Name {
		case "activeByDefault":
			err = d.boolean(c, &a.ActiveByDefault)
		case "jdk":
			a.JDK = c.Value
		case "os":
			a.OS = &settings.ActivationOS{}
			err = d.leaves(c, map[string]*string{
				"name":    &a.OS.Name,
				"family":  &a.OS.Family,
				"arch":    &a.OS.Arch,
				"version": &a.OS.Version,
			})
		case "property":
			a.Property = &settings.ActivationProperty{}
			err = d.leaves(c, map[string]*string{
				"name":  &a.Property.Name,
				"value": &a.Property.Value,
			})
		case "file":
			a.File = &settings.ActivationFile{}
			err = d.leaves(c, map[string]*string{
				"missing": &a.File.Missing,
				"exists":  &a.File.Exists,
			})
		default:
			err = d.unknown(c)
		}
		if err != nil {
			return nil, err
		}
	}
	return a, nil
}

// leaves decodes an element whose children are all string scalars.
func (d *decoder) leaves(n *dom.Node, targets map[string]*string) error {
	seen := fields{}
	for _, c := range n.Children {
		if err := d.once(seen, c); err != nil {
			return err
		}
		dst, ok := targets[c.Name]
		if !ok {
			if err := d.unknown(c); err != nil {
				return err
			}
			continue
		}
		*dst = c.Value
	}
	return nil
}
