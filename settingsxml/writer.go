package settingsxml

import (
	"bytes"
	"encoding/xml"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/randalmurphal/mvnsettings/dom"
	"github.com/randalmurphal/mvnsettings/settings"
)

// Namespace and schema written on the document element.
const (
	Namespace      = "http://maven.apache.org/SETTINGS/1.0.0"
	SchemaLocation = "http://maven.apache.org/SETTINGS/1.0.0 https://maven.apache.org/xsd/settings-1.0.0.xsd"
)

// Marshal serializes s into memory.
func Marshal(s *settings.Settings) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write serializes s. Only values that differ from the format defaults are
// written; map entries are written in key order.
func Write(w io.Writer, s *settings.Settings) error {
	if s == nil {
		s = settings.New()
	}
	p := &printer{w: w}
	p.raw(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	p.raw(`<settings xmlns="` + Namespace + `" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xsi:schemaLocation="` + SchemaLocation + `">` + "\n")
	p.depth++

	p.text("localRepository", s.LocalRepository)
	if !s.InteractiveMode {
		p.leaf("interactiveMode", "false")
	}
	if s.UsePluginRegistry {
		p.leaf("usePluginRegistry", "true")
	}
	if s.Offline {
		p.leaf("offline", "true")
	}

	if len(s.Proxies) > 0 {
		p.open("proxies")
		for _, proxy := range s.Proxies {
			p.proxy(proxy)
		}
		p.close("proxies")
	}
	if len(s.Servers) > 0 {
		p.open("servers")
		for _, srv := range s.Servers {
			p.server(srv)
		}
		p.close("servers")
	}
	if len(s.Mirrors) > 0 {
		p.open("mirrors")
		for _, m := range s.Mirrors {
			p.mirror(m)
		}
		p.close("mirrors")
	}
	if len(s.Profiles) > 0 {
		p.open("profiles")
		for _, prof := range s.Profiles {
			p.profile(prof)
		}
		p.close("profiles")
	}
	p.list("activeProfiles", "activeProfile", s.ActiveProfiles)
	p.list("pluginGroups", "pluginGroup", s.PluginGroups)

	p.depth--
	p.raw("</settings>\n")
	return p.err
}

// printer writes indented XML and keeps the first write error.
type printer struct {
	w     io.Writer
	depth int
	err   error
}

func (p *printer) raw(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

func (p *printer) indent() {
	p.raw(strings.Repeat("  ", p.depth))
}

func (p *printer) escape(s string) {
	if p.err != nil {
		return
	}
	p.err = xml.EscapeText(p.w, []byte(s))
}

func (p *printer) open(name string) {
	p.indent()
	p.raw("<" + name + ">\n")
	p.depth++
}

func (p *printer) close(name string) {
	p.depth--
	p.indent()
	p.raw("</" + name + ">\n")
}

func (p *printer) empty(name string) {
	p.indent()
	p.raw("<" + name + "/>\n")
}

// leaf writes <name>value</name> unconditionally.
func (p *printer) leaf(name, value string) {
	p.indent()
	p.raw("<" + name + ">")
	p.escape(value)
	p.raw("</" + name + ">\n")
}

// text writes a string element when it is not empty.
func (p *printer) text(name, value string) {
	if value != "" {
		p.leaf(name, value)
	}
}

func (p *printer) list(container, item string, values []string) {
	if len(values) == 0 {
		return
	}
	p.open(container)
	for _, v := range values {
		p.leaf(item, v)
	}
	p.close(container)
}

func (p *printer) proxy(proxy *settings.Proxy) {
	p.open("proxy")
	p.text("id", proxy.ID)
	if !proxy.Active {
		p.leaf("active", "false")
	}
	if proxy.Protocol != settings.DefaultProxyProtocol {
		p.leaf("protocol", proxy.Protocol)
	}
	p.text("username", proxy.Username)
	p.text("password", proxy.Password)
	if proxy.Port != settings.DefaultProxyPort {
		p.leaf("port", strconv.Itoa(proxy.Port))
	}
	p.text("host", proxy.Host)
	p.text("nonProxyHosts", proxy.NonProxyHosts)
	p.close("proxy")
}

func (p *printer) server(srv *settings.Server) {
	p.open("server")
	p.text("id", srv.ID)
	p.text("username", srv.Username)
	p.text("password", srv.Password)
	p.text("privateKey", srv.PrivateKey)
	p.text("passphrase", srv.Passphrase)
	p.text("filePermissions", srv.FilePermissions)
	p.text("directoryPermissions", srv.DirectoryPermissions)
	if srv.Configuration != nil {
		conf := *srv.Configuration
		conf.Name = "configuration"
		p.node(&conf)
	}
	p.close("server")
}

func (p *printer) mirror(m *settings.Mirror) {
	p.open("mirror")
	p.text("id", m.ID)
	p.text("name", m.Name)
	p.text("url", m.URL)
	p.text("mirrorOf", m.MirrorOf)
	p.text("layout", m.Layout)
	if m.MirrorOfLayouts != settings.DefaultMirrorLayouts {
		p.leaf("mirrorOfLayouts", m.MirrorOfLayouts)
	}
	if m.Blocked {
		p.leaf("blocked", "true")
	}
	p.close("mirror")
}

func (p *printer) profile(prof *settings.Profile) {
	p.open("profile")
	p.text("id", prof.ID)
	if prof.Activation != nil {
		p.activation(prof.Activation)
	}
	if len(prof.Properties) > 0 {
		keys := make([]string, 0, len(prof.Properties))
		for k := range prof.Properties {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		p.open("properties")
		for _, k := range keys {
			p.leaf(k, prof.Properties[k])
		}
		p.close("properties")
	}
	p.repositories("repositories", "repository", prof.Repositories)
	p.repositories("pluginRepositories", "pluginRepository", prof.PluginRepositories)
	p.close("profile")
}

func (p *printer) repositories(container, item string, repos []*settings.Repository) {
	if len(repos) == 0 {
		return
	}
	p.open(container)
	for _, r := range repos {
		p.open(item)
		p.text("id", r.ID)
		p.text("name", r.Name)
		p.text("url", r.URL)
		if r.Layout != settings.DefaultRepositoryLayout {
			p.leaf("layout", r.Layout)
		}
		p.policy("releases", r.Releases)
		p.policy("snapshots", r.Snapshots)
		p.close(item)
	}
	p.close(container)
}

func (p *printer) policy(name string, pol *settings.RepositoryPolicy) {
	if pol == nil {
		return
	}
	if pol.Enabled && pol.UpdatePolicy == "" && pol.ChecksumPolicy == "" {
		p.empty(name)
		return
	}
	p.open(name)
	if !pol.Enabled {
		p.leaf("enabled", "false")
	}
	p.text("updatePolicy", pol.UpdatePolicy)
	p.text("checksumPolicy", pol.ChecksumPolicy)
	p.close(name)
}

func (p *printer) activation(a *settings.Activation) {
	p.open("activation")
	if a.ActiveByDefault {
		p.leaf("activeByDefault", "true")
	}
	p.text("jdk", a.JDK)
	if a.OS != nil {
		p.open("os")
		p.text("name", a.OS.Name)
		p.text("family", a.OS.Family)
		p.text("arch", a.OS.Arch)
		p.text("version", a.OS.Version)
		p.close("os")
	}
	if a.Property != nil {
		p.open("property")
		p.text("name", a.Property.Name)
		p.text("value", a.Property.Value)
		p.close("property")
	}
	if a.File != nil {
		p.open("file")
		p.text("missing", a.File.Missing)
		p.text("exists", a.File.Exists)
		p.close("file")
	}
	p.close("activation")
}

// node writes a configuration tree element by element.
func (p *printer) node(n *dom.Node) {
	p.indent()
	p.raw("<" + n.Name)
	for _, a := range n.Attrs {
		p.raw(" " + a.Name + `="`)
		p.escape(a.Value)
		p.raw(`"`)
	}
	switch {
	case n.Value == "" && len(n.Children) == 0:
		p.raw("/>\n")
	case len(n.Children) == 0:
		p.raw(">")
		p.escape(n.Value)
		p.raw("</" + n.Name + ">\n")
	default:
		p.raw(">")
		p.escape(n.Value)
		p.raw("\n")
		p.depth++
		for _, c := range n.Children {
			p.node(c)
		}
		p.depth--
		p.indent()
		p.raw("</" + n.Name + ">\n")
	}
}
