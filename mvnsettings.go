package mvnsettings

import (
	"context"
	"os"
	"path/filepath"

	"github.com/randalmurphal/mvnsettings/building"
)

// Version is reported by the CLI. Release builds set it with -ldflags.
var Version = "dev"

// NewRequest returns a request for the project at projectDir with the user
// slot pointing at ~/.m2/settings.xml. An empty projectDir yields a request
// that resolves to a pass-through.
func NewRequest(projectDir string) *building.Request {
	home, _ := os.UserHomeDir()
	req := &building.Request{
		UserProperties:   building.Properties{},
		SystemProperties: building.Properties{building.UserHomeProperty: home},
	}
	if projectDir != "" {
		req.SystemProperties[building.ProjectDirProperty] = projectDir
	}
	if home != "" {
		req.User.SetFile(filepath.Join(home, ".m2", "settings.xml"))
	}
	return req
}

// Resolve injects the project settings of req with a new injector.
func Resolve(ctx context.Context, req *building.Request, opts ...building.Option) (*building.Handle, error) {
	return building.NewInjector(opts...).Resolve(ctx, req)
}
