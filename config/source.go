package config

// Source records which layer supplied a configuration value.
type Source string

// Layers in increasing precedence.
const (
	SourceDefault Source = "default"
	SourceGlobal  Source = "global"
	SourceLocal   Source = "local"
	SourceEnv     Source = "env"
	SourceFlag    Source = "flag"
)

// Precedence ranks the layer. Unknown sources rank below SourceDefault.
func (s Source) Precedence() int {
	switch s {
	case SourceDefault:
		return 0
	case SourceGlobal:
		return 1
	case SourceLocal:
		return 2
	case SourceEnv:
		return 3
	case SourceFlag:
		return 4
	}
	return -1
}

// Overrides reports whether a value from s replaces a value from other.
func (s Source) Overrides(other Source) bool {
	return s.Precedence() >= other.Precedence()
}
