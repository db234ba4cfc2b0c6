package automaton

import "encoding/binary"

// minimize collapses language-equivalent states via Moore-style partition
// refinement over the full byte alphabet. The returned DFA has the fewest
// possible states, which keeps the generated dispatch compact.
func minimize(d *Dense) *Dense {
	n := len(d.next)
	class := make([]int, n)
	prev := 1

	for {
		index := make(map[string]int, prev)
		next := make([]int, n)
		for s := 0; s < n; s++ {
			buf := make([]byte, 0, 2+256*2)
			if d.match[s] {
				buf = append(buf, 1)
			} else {
				buf = append(buf, 0)
			}
			for bv := 0; bv < 256; bv++ {
				buf = binary.AppendUvarint(buf, uint64(class[d.next[s][bv]]))
			}
			key := string(buf)
			id, ok := index[key]
			if !ok {
				id = len(index)
				index[key] = id
			}
			next[s] = id
		}
		class = next
		if len(index) == prev {
			break
		}
		prev = len(index)
	}

	m := &Dense{
		start: StateID(class[d.start]),
		next:  make([][256]StateID, prev),
		match: make([]bool, prev),
		dead:  make([]bool, prev),
	}
	filled := make([]bool, prev)
	for s := 0; s < n; s++ {
		c := class[s]
		if filled[c] {
			continue
		}
		filled[c] = true
		m.match[c] = d.match[s]
		for bv := 0; bv < 256; bv++ {
			m.next[c][bv] = StateID(class[d.next[s][bv]])
		}
	}
	return m
}

// markDead flags every state from which no accepting state is reachable.
// After minimization at most one such state exists.
func markDead(d *Dense) {
	n := len(d.next)
	reverse := make([][]StateID, n)
	for s := 0; s < n; s++ {
		for bv := 0; bv < 256; bv++ {
			t := d.next[s][bv]
			reverse[t] = append(reverse[t], StateID(s))
		}
	}

	live := make([]bool, n)
	var stack []StateID
	for s := 0; s < n; s++ {
		if d.match[s] {
			live[s] = true
			stack = append(stack, StateID(s))
		}
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, p := range reverse[s] {
			if !live[p] {
				live[p] = true
				stack = append(stack, p)
			}
		}
	}

	for s := 0; s < n; s++ {
		d.dead[s] = !live[s]
	}
}
