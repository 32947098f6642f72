package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/mvnsettings/dom"
)

func sample() *Settings {
	s := New()
	s.LocalRepository = "/repo"
	s.Servers = []*Server{{
		ID:            "UK",
		Username:      "u",
		Password:      "p",
		Configuration: dom.New("configuration").AddChild(dom.NewValue("v1", "x")),
	}}
	s.Proxies = []*Proxy{NewProxy()}
	s.Mirrors = []*Mirror{NewMirror()}
	s.Profiles = []*Profile{{
		ID:           "dev",
		Activation:   &Activation{OS: &ActivationOS{Name: "linux"}},
		Properties:   map[string]string{"k": "v"},
		Repositories: []*Repository{{ID: "central", Releases: &RepositoryPolicy{Enabled: true}}},
	}}
	s.ActiveProfiles = []string{"dev"}
	s.PluginGroups = []string{"org.example"}
	return s
}

func TestNew_Defaults(t *testing.T) {
	s := New()
	assert.True(t, s.InteractiveMode)
	assert.False(t, s.Offline)
	assert.False(t, s.UsePluginRegistry)
	assert.Empty(t, s.LocalRepository)

	p := NewProxy()
	assert.True(t, p.Active)
	assert.Equal(t, "http", p.Protocol)
	assert.Equal(t, 8080, p.Port)

	assert.Equal(t, "default,legacy", NewMirror().MirrorOfLayouts)
	assert.Equal(t, "default", NewRepository().Layout)
}

func TestClone_Independent(t *testing.T) {
	orig := sample()
	c := orig.Clone()
	require.Equal(t, orig, c)

	c.Servers[0].Username = "other"
	c.Servers[0].Configuration.Children[0].Value = "changed"
	c.Proxies[0].Host = "h"
	c.Profiles[0].Properties["k"] = "changed"
	c.Profiles[0].Activation.OS.Name = "mac"
	c.Profiles[0].Repositories[0].Releases.Enabled = false
	c.ActiveProfiles[0] = "prod"
	c.PluginGroups = append(c.PluginGroups, "more")

	assert.Equal(t, "u", orig.Servers[0].Username)
	assert.Equal(t, "x", orig.Servers[0].Configuration.Children[0].Value)
	assert.Empty(t, orig.Proxies[0].Host)
	assert.Equal(t, "v", orig.Profiles[0].Properties["k"])
	assert.Equal(t, "linux", orig.Profiles[0].Activation.OS.Name)
	assert.True(t, orig.Profiles[0].Repositories[0].Releases.Enabled)
	assert.Equal(t, []string{"dev"}, orig.ActiveProfiles)
	assert.Equal(t, []string{"org.example"}, orig.PluginGroups)
}

func TestClone_Nil(t *testing.T) {
	var s *Settings
	assert.Nil(t, s.Clone())
}

func TestServer_Credentials(t *testing.T) {
	srv := &Server{
		ID:                   "a",
		Username:             "u",
		Password:             "p",
		PrivateKey:           "k",
		Passphrase:           "pp",
		FilePermissions:      "664",
		DirectoryPermissions: "775",
	}
	srv.ClearCredentials()
	assert.Equal(t, &Server{ID: "a"}, srv)

	srv.CopyCredentials(&Server{Username: "x", DirectoryPermissions: "700"})
	assert.Equal(t, "x", srv.Username)
	assert.Equal(t, "700", srv.DirectoryPermissions)
	assert.Empty(t, srv.Password)
}

func TestLookups(t *testing.T) {
	s := sample()
	assert.NotNil(t, s.Server("UK"))
	assert.Nil(t, s.Server("US"))
	assert.NotNil(t, s.Profile("dev"))
	assert.Nil(t, s.Mirror("nope"))
	assert.Nil(t, s.Proxy("nope"))
}
