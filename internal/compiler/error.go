package compiler

// InternalError signals a programming defect: the automaton backend handed
// back an unexpected representation, or a state graph invariant failed. It
// halts generation loudly rather than guessing.
type InternalError struct {
	Reason string
}

func (e *InternalError) Error() string {
	return "internal invariant violated: " + e.Reason
}
