package settings

// Clone returns a deep copy of the document. Cloning nil returns nil.
func (s *Settings) Clone() *Settings {
	if s == nil {
		return nil
	}
	c := *s
	c.Proxies = cloneEach(s.Proxies, (*Proxy).Clone)
	c.Servers = cloneEach(s.Servers, (*Server).Clone)
	c.Mirrors = cloneEach(s.Mirrors, (*Mirror).Clone)
	c.Profiles = cloneEach(s.Profiles, (*Profile).Clone)
	c.ActiveProfiles = cloneStrings(s.ActiveProfiles)
	c.PluginGroups = cloneStrings(s.PluginGroups)
	return &c
}

// Clone returns a deep copy of the server.
func (s *Server) Clone() *Server {
	if s == nil {
		return nil
	}
	c := *s
	c.Configuration = s.Configuration.Clone()
	return &c
}

// Clone returns a copy of the proxy.
func (p *Proxy) Clone() *Proxy {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

// Clone returns a copy of the mirror.
func (m *Mirror) Clone() *Mirror {
	if m == nil {
		return nil
	}
	c := *m
	return &c
}

// Clone returns a deep copy of the profile.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	c := *p
	c.Activation = p.Activation.Clone()
	if p.Properties != nil {
		c.Properties = make(map[string]string, len(p.Properties))
		for k, v := range p.Properties {
			c.Properties[k] = v
		}
	}
	c.Repositories = cloneEach(p.Repositories, (*Repository).Clone)
	c.PluginRepositories = cloneEach(p.PluginRepositories, (*Repository).Clone)
	return &c
}

// Clone returns a deep copy of the repository.
func (r *Repository) Clone() *Repository {
	if r == nil {
		return nil
	}
	c := *r
	c.Releases = clonePtr(r.Releases)
	c.Snapshots = clonePtr(r.Snapshots)
	return &c
}

// Clone returns a deep copy of the activation.
func (a *Activation) Clone() *Activation {
	if a == nil {
		return nil
	}
	c := *a
	c.OS = clonePtr(a.OS)
	c.Property = clonePtr(a.Property)
	c.File = clonePtr(a.File)
	return &c
}

func cloneEach[T any](src []*T, clone func(*T) *T) []*T {
	if src == nil {
		return nil
	}
	dst := make([]*T, len(src))
	for i, v := range src {
		dst[i] = clone(v)
	}
	return dst
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

func cloneStrings(src []string) []string {
	if src == nil {
		return nil
	}
	dst := make([]string, len(src))
	copy(dst, src)
	return dst
}
