package building

// State is a step of a resolution.
type State int

// Resolution states in the order they are reached.
const (
	StateStart State = iota
	StateProjectLoaded
	StateInjectSourceSelected
	StateMerged
	StateBound
	StateDone
	StateFailed
)

var stateNames = [...]string{
	StateStart:                "start",
	StateProjectLoaded:        "project_loaded",
	StateInjectSourceSelected: "inject_source_selected",
	StateMerged:               "merged",
	StateBound:                "bound",
	StateDone:                 "done",
	StateFailed:               "failed",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Binding names the request slot that received the merged document.
type Binding int

const (
	// BindingNone means the request was left untouched.
	BindingNone Binding = iota
	// BindingUser means the user slot holds the merged document.
	BindingUser
	// BindingGlobal means the global slot holds the merged document.
	BindingGlobal
)

func (b Binding) String() string {
	switch b {
	case BindingUser:
		return "user"
	case BindingGlobal:
		return "global"
	default:
		return "none"
	}
}
