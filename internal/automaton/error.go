package automaton

import "fmt"

// PatternError reports a pattern that could not be compiled into an
// automaton, either because it is invalid or because it uses a construct
// the byte-oriented backend does not support. It aborts the whole
// generation run; there is no degraded output.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }
