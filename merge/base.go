package merge

import "github.com/randalmurphal/mvnsettings/settings"

// Base merges recessive into a copy of dominant with the conventional
// rules: active profiles and plugin groups are appended when missing, the
// local repository is filled when dominant has none, and mirrors, servers,
// proxies and profiles are merged by ID. Recessive entries whose ID is
// unknown to dominant are tagged with level and placed before the dominant
// entries.
func Base(dominant, recessive *settings.Settings, level settings.SourceLevel) *settings.Settings {
	result := dominant.Clone()
	if dominant == nil || recessive == nil {
		return result
	}
	baseInto(result, recessive, level)
	return result
}

// baseInto applies Base to dst, which must be a private copy.
func baseInto(dst, recessive *settings.Settings, level settings.SourceLevel) {
	dst.ActiveProfiles = appendMissing(dst.ActiveProfiles, recessive.ActiveProfiles)
	dst.PluginGroups = appendMissing(dst.PluginGroups, recessive.PluginGroups)

	if dst.LocalRepository == "" {
		dst.LocalRepository = recessive.LocalRepository
	}

	dst.Mirrors = mergeByID(dst.Mirrors, recessive.Mirrors,
		func(m *settings.Mirror) string { return m.ID },
		func(m *settings.Mirror) *settings.Mirror {
			c := m.Clone()
			c.SourceLevel = level
			return c
		})
	dst.Servers = mergeByID(dst.Servers, recessive.Servers,
		func(s *settings.Server) string { return s.ID },
		func(s *settings.Server) *settings.Server {
			c := s.Clone()
			c.SourceLevel = level
			return c
		})
	dst.Proxies = mergeByID(dst.Proxies, recessive.Proxies,
		func(p *settings.Proxy) string { return p.ID },
		func(p *settings.Proxy) *settings.Proxy {
			c := p.Clone()
			c.SourceLevel = level
			return c
		})
	dst.Profiles = mergeByID(dst.Profiles, recessive.Profiles,
		func(p *settings.Profile) string { return p.ID },
		func(p *settings.Profile) *settings.Profile {
			c := p.Clone()
			c.SourceLevel = level
			return c
		})
}

func appendMissing(dst, src []string) []string {
	seen := make(map[string]bool, len(dst))
	for _, v := range dst {
		seen[v] = true
	}
	for _, v := range src {
		if !seen[v] {
			dst = append(dst, v)
			seen[v] = true
		}
	}
	return dst
}

// mergeByID returns the recessive entries missing from dominant, converted
// with adopt, followed by the dominant entries.
func mergeByID[T any](dominant, recessive []T, id func(T) string, adopt func(T) T) []T {
	known := make(map[string]bool, len(dominant))
	for _, d := range dominant {
		known[id(d)] = true
	}

	var contributed []T
	for _, r := range recessive {
		if known[id(r)] {
			continue
		}
		contributed = append(contributed, adopt(r))
	}
	if len(contributed) == 0 {
		return dominant
	}
	return append(contributed, dominant...)
}
