package merge

import (
	"github.com/randalmurphal/mvnsettings/dom"
	"github.com/randalmurphal/mvnsettings/settings"
)

// Merger merges a project document (dominant) with a user or global
// document (recessive). The zero value is ready to use.
type Merger struct {
	// ConfigPolicy resolves conflicting values inside server configuration
	// trees.
	ConfigPolicy dom.Policy
}

// Merge returns the effective document. If either argument is nil the
// result is a copy of dominant.
//
// The recessive document always provides localRepository, interactiveMode,
// usePluginRegistry, offline and every proxy. Project servers keep their
// identity and configuration but take credentials only from the recessive
// server with the same ID; project servers without one lose them. The
// conventional Base merge runs last.
func (m *Merger) Merge(dominant, recessive *settings.Settings, level settings.SourceLevel) *settings.Settings {
	result := dominant.Clone()
	if dominant == nil || recessive == nil {
		return result
	}

	result.LocalRepository = recessive.LocalRepository
	result.InteractiveMode = recessive.InteractiveMode
	result.UsePluginRegistry = recessive.UsePluginRegistry
	result.Offline = recessive.Offline

	result.Proxies = nil

	byID := make(map[string]*settings.Server, len(result.Servers))
	for _, srv := range result.Servers {
		srv.ClearCredentials()
		byID[srv.ID] = srv
	}
	for _, rs := range recessive.Servers {
		srv, ok := byID[rs.ID]
		if !ok {
			continue
		}
		srv.SourceLevel = level
		srv.CopyCredentials(rs)
		srv.Configuration = dom.Merge(srv.Configuration, rs.Configuration, m.ConfigPolicy)
	}

	baseInto(result, recessive, level)
	return result
}
