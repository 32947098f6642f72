package dom

// Combination attributes recognised on the dominant node during Merge.
const (
	SelfCombinationMode     = "combine.self"
	SelfCombinationOverride = "override"
	SelfCombinationMerge    = "merge"

	ChildrenCombinationMode   = "combine.children"
	ChildrenCombinationAppend = "append"
	ChildrenCombinationMerge  = "merge"
)

// Policy selects the winner of a scalar conflict during Merge.
type Policy uint8

const (
	// PreferDominant keeps the dominant value unless it is empty.
	PreferDominant Policy = iota
	// PreferRecessive takes the recessive value unless it is empty.
	PreferRecessive
	// KeepDominant returns the dominant tree unchanged, nil included.
	KeepDominant
)

// String returns the policy name used in configuration files.
func (p Policy) String() string {
	switch p {
	case PreferDominant:
		return "prefer-dominant"
	case PreferRecessive:
		return "prefer-recessive"
	case KeepDominant:
		return "keep-dominant"
	default:
		return "unknown"
	}
}

// ParsePolicy parses a policy name as returned by Policy.String.
func ParsePolicy(s string) (Policy, bool) {
	switch s {
	case "", "prefer-dominant":
		return PreferDominant, true
	case "prefer-recessive":
		return PreferRecessive, true
	case "keep-dominant":
		return KeepDominant, true
	default:
		return PreferDominant, false
	}
}

// Merge combines two trees describing the same element and returns a new
// tree. Neither input is modified.
//
// If dominant is nil the result is a copy of recessive, and vice versa.
// Under KeepDominant a nil dominant stays nil.
// Children are matched by name: the i-th recessive child named x merges into
// the i-th dominant child named x, surplus recessive children of a name that
// dominant also has are dropped, and names dominant lacks are appended after
// the dominant children.
func Merge(dominant, recessive *Node, policy Policy) *Node {
	if dominant == nil {
		if policy == KeepDominant {
			return nil
		}
		return recessive.Clone()
	}
	result := dominant.Clone()
	if recessive == nil || policy == KeepDominant {
		return result
	}
	mergeInto(result, recessive, policy)
	return result
}

// mergeInto merges recessive into dominant, which must be a private copy.
func mergeInto(dominant, recessive *Node, policy Policy) {
	if dominant.Attr(SelfCombinationMode) == SelfCombinationOverride {
		return
	}

	if recessive.Value != "" && (dominant.Value == "" || policy == PreferRecessive) {
		dominant.Value = recessive.Value
		dominant.Line = recessive.Line
		dominant.Column = recessive.Column
	}

	for _, a := range recessive.Attrs {
		if dominant.Attr(a.Name) == "" {
			dominant.SetAttr(a.Name, a.Value)
		}
	}

	if len(recessive.Children) == 0 {
		return
	}

	if dominant.Attr(ChildrenCombinationMode) == ChildrenCombinationAppend {
		children := make([]*Node, 0, len(recessive.Children)+len(dominant.Children))
		for _, c := range recessive.Children {
			children = append(children, c.Clone())
		}
		dominant.Children = append(children, dominant.Children...)
		return
	}

	// Same-name dominant children are captured before anything is appended.
	common := make(map[string][]*Node)
	for _, c := range recessive.Children {
		if _, seen := common[c.Name]; !seen {
			common[c.Name] = dominant.ChildrenNamed(c.Name)
		}
	}

	appendOnly := make(map[string]bool)
	for name, targets := range common {
		appendOnly[name] = len(targets) == 0
	}

	for _, c := range recessive.Children {
		if appendOnly[c.Name] {
			dominant.Children = append(dominant.Children, c.Clone())
			continue
		}
		targets := common[c.Name]
		if len(targets) == 0 {
			continue
		}
		mergeInto(targets[0], c, policy)
		common[c.Name] = targets[1:]
	}
}
