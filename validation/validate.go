package validation

import (
	"fmt"
	"regexp"

	"github.com/randalmurphal/mvnsettings/problem"
	"github.com/randalmurphal/mvnsettings/settings"
)

// ReservedID names the local repository and must not be used elsewhere.
const ReservedID = "local"

// GroupIDPattern is the syntax of a plugin group identifier.
const GroupIDPattern = `[A-Za-z0-9_\-.]+`

var groupIDRegex = regexp.MustCompile(`^` + GroupIDPattern + `$`)

// ValidGroupID reports whether id is a valid plugin group identifier.
func ValidGroupID(id string) bool {
	return groupIDRegex.MatchString(id)
}

// Validate reports the structural problems of s to problems.
func Validate(s *settings.Settings, problems problem.Adder) {
	if s == nil {
		return
	}
	v := validator{problems: problems}

	for i, group := range s.PluginGroups {
		field := fmt.Sprintf("pluginGroups.pluginGroup[%d]", i)
		if !v.notEmpty(field, group, "") {
			continue
		}
		if !ValidGroupID(group) {
			v.add(problem.SeverityError, field, "",
				"must denote a valid group id and match the pattern "+GroupIDPattern)
		}
	}

	servers := map[string]bool{}
	for _, srv := range s.Servers {
		if !v.notEmpty("servers.server.id", srv.ID, "") {
			continue
		}
		if servers[srv.ID] {
			v.add(problem.SeverityWarning, "servers.server.id", "",
				"must be unique but found duplicate server with id "+srv.ID)
		}
		servers[srv.ID] = true
	}

	mirrors := map[string]bool{}
	for _, m := range s.Mirrors {
		if v.notEmpty("mirrors.mirror.id", m.ID, m.URL) {
			if m.ID == ReservedID {
				v.add(problem.SeverityWarning, "mirrors.mirror.id", "",
					"must not be 'local', this identifier is reserved for the local repository")
			}
			if mirrors[m.ID] {
				v.add(problem.SeverityWarning, "mirrors.mirror.id", "",
					"must be unique but found duplicate mirror with id "+m.ID)
			}
			mirrors[m.ID] = true
		}
		v.notEmpty("mirrors.mirror.url", m.URL, m.ID)
		v.notEmpty("mirrors.mirror.mirrorOf", m.MirrorOf, m.ID)
	}

	proxies := map[string]bool{}
	for _, p := range s.Proxies {
		if proxies[p.ID] {
			v.add(problem.SeverityWarning, "proxies.proxy.id", "",
				"must be unique but found duplicate proxy with id "+p.ID)
		}
		proxies[p.ID] = true
		v.notEmpty("proxies.proxy.host", p.Host, p.ID)
		if p.Protocol != "http" && p.Protocol != "https" {
			v.add(problem.SeverityWarning, "proxies.proxy.protocol", p.ID,
				"must be one of http or https but was '"+p.Protocol+"'")
		}
	}

	profiles := map[string]bool{}
	for _, prof := range s.Profiles {
		if profiles[prof.ID] {
			v.add(problem.SeverityWarning, "profiles.profile.id", "",
				"must be unique but found duplicate profile with id "+prof.ID)
		}
		profiles[prof.ID] = true
		v.repositories("repositories.repository", prof.Repositories)
		v.repositories("pluginRepositories.pluginRepository", prof.PluginRepositories)
	}
}

type validator struct {
	problems problem.Adder
}

// add reports "'<field>' [for <hint>] <message>" without a position.
func (v validator) add(severity problem.Severity, field, hint, message string) {
	msg := "'" + field + "'"
	if hint != "" {
		msg += " for " + hint
	}
	v.problems.Add(severity, msg+" "+message, -1, -1, nil)
}

// notEmpty reports an ERROR when value is empty and returns whether it was
// set.
func (v validator) notEmpty(field, value, hint string) bool {
	if value != "" {
		return true
	}
	v.add(problem.SeverityError, field, hint, "must not be empty")
	return false
}

func (v validator) repositories(prefix string, repos []*settings.Repository) {
	seen := map[string]bool{}
	for _, r := range repos {
		v.notEmpty(prefix+".id", r.ID, r.URL)
		if r.ID == ReservedID {
			v.add(problem.SeverityError, prefix+".id", "",
				"must not be 'local', this identifier is reserved for the local repository")
		}
		v.notEmpty(prefix+".url", r.URL, r.ID)
		if r.ID != "" && seen[r.ID] {
			v.add(problem.SeverityWarning, prefix+".id", "",
				"must be unique: "+r.ID)
		}
		seen[r.ID] = true
	}
}
