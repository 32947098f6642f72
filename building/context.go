package building

import (
	"fmt"

	nanoid "github.com/matoous/go-nanoid/v2"
)

// Context is the state of one resolution. Every call to Resolve creates
// its own.
type Context struct {
	// ID identifies the resolution in logs and events.
	ID string

	// InIDE is set when the host runs inside an IDE.
	InIDE bool

	// SkipIDE disables the IDE integration.
	SkipIDE bool

	// UserHome is the home directory reported by the host.
	UserHome string
}

// NewContext derives the resolution context from the system properties of
// req.
func NewContext(req *Request) (*Context, error) {
	id, err := nanoid.New()
	if err != nil {
		return nil, fmt.Errorf("generate resolution id: %w", err)
	}

	sys := req.SystemProperties
	c := &Context{
		ID:    id,
		InIDE: sys.Has(IDEVersionProperty) || sys.Has(IDEEmbedderVersionProperty),
	}
	if v, ok := sys.Get(SkipIDEProperty); ok {
		c.SkipIDE = v == "" || parseBool(v)
	}
	c.UserHome, _ = sys.Get(UserHomeProperty)
	return c, nil
}

// IDEIntegration reports whether local repository cleanup should run.
func (c *Context) IDEIntegration() bool {
	return c.InIDE && !c.SkipIDE
}
