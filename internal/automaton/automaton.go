// Package automaton compiles regular expressions into minimal dense
// byte-level DFAs. The rest of the pipeline only sees the four-operation
// Automaton contract, so the construction details here (Thompson NFA,
// subset construction, minimization) stay private.
package automaton

import (
	"regexp/syntax"
	"strings"
)

// StateID identifies one automaton state. It is opaque: equality and use as
// a table index are the only meaningful operations.
type StateID uint32

// Automaton is the entire contract the code generator relies on. NextState
// must be total over the byte alphabet for every state.
type Automaton interface {
	StartState() StateID
	IsMatchState(id StateID) bool
	IsDeadState(id StateID) bool
	NextState(id StateID, b byte) StateID
}

// Dense is the standard table-backed DFA representation: one full 256-entry
// transition row per state. It is the only representation Build produces.
type Dense struct {
	start    StateID
	next     [][256]StateID
	match    []bool
	dead     []bool
	anchored bool
}

// StartState returns the state the generated matcher begins in.
func (d *Dense) StartState() StateID { return d.start }

// IsMatchState reports whether id is accepting.
func (d *Dense) IsMatchState(id StateID) bool { return d.match[id] }

// IsDeadState reports whether no input can lead from id to an accepting
// state.
func (d *Dense) IsDeadState(id StateID) bool { return d.dead[id] }

// NextState returns the state entered from id on input byte b.
func (d *Dense) NextState(id StateID, b byte) StateID { return d.next[id][b] }

// Anchored reports whether the pattern carried a leading "^".
func (d *Dense) Anchored() bool { return d.anchored }

// Len returns the number of states.
func (d *Dense) Len() int { return len(d.next) }

// Build compiles pattern into a minimal dense DFA with byte-oriented
// semantics. A leading "^" is stripped and switches the automaton into
// anchored mode; without it the DFA itself encodes continuous-scan
// acceptance, so the matcher loop never has to restart. Acceptance is
// prefix-style either way: a match need not extend to the end of the input.
func Build(pattern string) (Automaton, error) {
	body, anchored := strings.CutPrefix(pattern, "^")

	re, err := syntax.Parse(body, syntax.Perl)
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}
	re = re.Simplify()

	b := &nfaBuilder{}
	f, err := b.compile(re)
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}

	start := f.start
	if !anchored {
		// Continuous-scan mode: an any-byte self-loop ahead of the pattern
		// lets the DFA itself encode "match starting anywhere".
		scan := b.newState()
		b.addEdge(scan, 0x00, 0xFF, scan)
		b.addEps(scan, f.start)
		start = scan
	}

	d := determinize(b, start, f.accept)
	d = minimize(d)
	markDead(d)
	d.anchored = anchored
	return d, nil
}
