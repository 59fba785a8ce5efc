package branch

// State is the position of a matcher in its if/else ladder.
type State int

const (
	// Unbound means no predicate has been evaluated yet.
	Unbound State = iota
	// ConditionSet means the last Match stored a predicate result.
	ConditionSet
	// Resolved is terminal: a branch was taken and nothing can change it.
	Resolved
)

func (s State) String() string {
	switch s {
	case Unbound:
		return "unbound"
	case ConditionSet:
		return "condition_set"
	case Resolved:
		return "resolved"
	default:
		return "unknown"
	}
}
