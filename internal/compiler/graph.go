package compiler

import (
	"fmt"
	"math/bits"

	"github.com/leo60228/const-regex/internal/automaton"
)

// Kind classifies one automaton state.
type Kind int

const (
	// KindMatch is terminal and accepting: reaching it proves the overall
	// result is true.
	KindMatch Kind = iota
	// KindDead is terminal and rejecting: no further input can change the
	// outcome.
	KindDead
	// KindTransitions is non-terminal; the state's byte sets say where each
	// input byte leads.
	KindTransitions
)

func (k Kind) String() string {
	switch k {
	case KindMatch:
		return "match"
	case KindDead:
		return "dead"
	default:
		return "transitions"
	}
}

// ByteSet is a 256-bit set of byte values.
type ByteSet [4]uint64

// Add inserts b into the set.
func (s *ByteSet) Add(b byte) {
	s[b>>6] |= 1 << (b & 63)
}

// Contains reports whether b is in the set.
func (s *ByteSet) Contains(b byte) bool {
	return s[b>>6]&(1<<(b&63)) != 0
}

// Len returns the number of bytes in the set.
func (s *ByteSet) Len() int {
	n := 0
	for _, w := range s {
		n += bits.OnesCount64(w)
	}
	return n
}

// Bytes returns the members in ascending order.
func (s *ByteSet) Bytes() []byte {
	out := make([]byte, 0, s.Len())
	for i := 0; i < 256; i++ {
		if s.Contains(byte(i)) {
			out = append(out, byte(i))
		}
	}
	return out
}

// State is the classification of one automaton state. Transitions is nil
// unless Kind is KindTransitions, in which case every byte value appears in
// exactly one target's set.
type State struct {
	Kind        Kind
	Transitions map[automaton.StateID]*ByteSet
}

// Graph is the finite state graph reachable from Start. Every state id
// referenced by any transition is itself a key in States.
type Graph struct {
	Start  automaton.StateID
	States map[automaton.StateID]*State
}

// classifyState probes all 256 byte values of a non-terminal state and
// groups them by resulting target.
func classifyState(a automaton.Automaton, id automaton.StateID) *State {
	if a.IsMatchState(id) {
		return &State{Kind: KindMatch}
	}
	if a.IsDeadState(id) {
		return &State{Kind: KindDead}
	}

	transitions := make(map[automaton.StateID]*ByteSet)
	for bv := 0; bv < 256; bv++ {
		next := a.NextState(id, byte(bv))
		set, ok := transitions[next]
		if !ok {
			set = &ByteSet{}
			transitions[next] = set
		}
		set.Add(byte(bv))
	}
	return &State{Kind: KindTransitions, Transitions: transitions}
}

// ExtractGraph walks the automaton reachable from its start state. The
// worklist uses presence in States as its only revisit guard, so self-loops
// and back-edges terminate naturally.
func ExtractGraph(a automaton.Automaton) *Graph {
	g := &Graph{
		Start:  a.StartState(),
		States: make(map[automaton.StateID]*State),
	}

	worklist := []automaton.StateID{g.Start}
	for len(worklist) > 0 {
		id := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		if _, ok := g.States[id]; ok {
			continue
		}
		state := classifyState(a, id)
		g.States[id] = state
		for target := range state.Transitions {
			if _, ok := g.States[target]; !ok {
				worklist = append(worklist, target)
			}
		}
	}
	return g
}

// Validate checks the graph invariants the emitter depends on: every
// transition target is a key (no dangling references) and every Transitions
// state covers each byte value exactly once.
func (g *Graph) Validate() error {
	if _, ok := g.States[g.Start]; !ok {
		return &InternalError{Reason: fmt.Sprintf("start state %d missing from graph", g.Start)}
	}
	for id, state := range g.States {
		if state.Kind != KindTransitions {
			continue
		}
		var union ByteSet
		count := 0
		for target, set := range state.Transitions {
			if _, ok := g.States[target]; !ok {
				return &InternalError{Reason: fmt.Sprintf("state %d references missing state %d", id, target)}
			}
			if set.Len() == 0 {
				return &InternalError{Reason: fmt.Sprintf("state %d has an empty byte set for target %d", id, target)}
			}
			for i := range union {
				union[i] |= set[i]
			}
			count += set.Len()
		}
		if count != 256 || union.Len() != 256 {
			return &InternalError{Reason: fmt.Sprintf("state %d does not cover the byte alphabet exactly once", id)}
		}
	}
	return nil
}
