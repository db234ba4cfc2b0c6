package automaton

import (
	"encoding/binary"
	"sort"
)

// determinize runs worklist subset construction over the NFA, producing a
// dense DFA whose transition table is total over the byte alphabet. The
// empty NFA set is materialized as a regular state (it becomes the dead
// sink: 256 self-loops, never accepting).
func determinize(b *nfaBuilder, start, accept int) *Dense {
	d := &Dense{}
	stateMap := make(map[string]StateID)

	add := func(set []int) StateID {
		id := StateID(len(d.next))
		stateMap[setKey(set)] = id
		d.next = append(d.next, [256]StateID{})
		d.match = append(d.match, containsSorted(set, accept))
		return id
	}

	type pending struct {
		id  StateID
		set []int
	}

	startSet := b.epsilonClosure([]int{start})
	worklist := []pending{{add(startSet), startSet}}
	d.start = 0

	for len(worklist) > 0 {
		cur := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		for bv := 0; bv < 256; bv++ {
			nextSet := b.epsilonClosure(b.move(cur.set, byte(bv)))
			id, ok := stateMap[setKey(nextSet)]
			if !ok {
				id = add(nextSet)
				worklist = append(worklist, pending{id, nextSet})
			}
			d.next[cur.id][bv] = id
		}
	}

	d.dead = make([]bool, len(d.next))
	return d
}

// epsilonClosure returns the sorted set of states reachable from set via
// epsilon edges alone.
func (b *nfaBuilder) epsilonClosure(set []int) []int {
	seen := make(map[int]bool, len(set))
	stack := append([]int(nil), set...)
	for _, s := range set {
		seen[s] = true
	}
	var out []int
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, s)
		for _, t := range b.states[s].eps {
			if !seen[t] {
				seen[t] = true
				stack = append(stack, t)
			}
		}
	}
	sort.Ints(out)
	return out
}

// move returns the set of states entered from set on input byte bv,
// before epsilon closure.
func (b *nfaBuilder) move(set []int, bv byte) []int {
	seen := make(map[int]bool)
	var out []int
	for _, s := range set {
		for _, e := range b.states[s].edges {
			if e.lo <= bv && bv <= e.hi && !seen[e.to] {
				seen[e.to] = true
				out = append(out, e.to)
			}
		}
	}
	return out
}

// setKey encodes a sorted state set as a map key.
func setKey(set []int) string {
	buf := make([]byte, 0, len(set)*2)
	for _, s := range set {
		buf = binary.AppendUvarint(buf, uint64(s))
	}
	return string(buf)
}

func containsSorted(set []int, s int) bool {
	i := sort.SearchInts(set, s)
	return i < len(set) && set[i] == s
}
