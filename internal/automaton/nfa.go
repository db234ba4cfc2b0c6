package automaton

import (
	"errors"
	"fmt"
	"regexp/syntax"
	"unicode"
	"unicode/utf8"
)

// nfaEdge moves to state "to" on any byte in the inclusive range lo..hi.
type nfaEdge struct {
	lo, hi byte
	to     int
}

type nfaState struct {
	eps   []int
	edges []nfaEdge
}

// nfaBuilder assembles a byte-level Thompson NFA from a parsed regex tree.
// States live in a flat arena and refer to each other by index, so cyclic
// constructs like star and plus need no ownership gymnastics.
type nfaBuilder struct {
	states []nfaState
}

// frag is one NFA fragment with a single entry and a single exit.
type frag struct {
	start, accept int
}

func (b *nfaBuilder) newState() int {
	b.states = append(b.states, nfaState{})
	return len(b.states) - 1
}

func (b *nfaBuilder) addEps(from, to int) {
	b.states[from].eps = append(b.states[from].eps, to)
}

func (b *nfaBuilder) addEdge(from int, lo, hi byte, to int) {
	b.states[from].edges = append(b.states[from].edges, nfaEdge{lo: lo, hi: hi, to: to})
}

// compile translates a simplified syntax tree into an NFA fragment.
// Semantics are byte-oriented: ASCII literals become single bytes, larger
// literal runes become their UTF-8 byte sequence, and character-class
// ranges are clipped to the byte alphabet.
func (b *nfaBuilder) compile(re *syntax.Regexp) (frag, error) {
	switch re.Op {
	case syntax.OpEmptyMatch:
		s := b.newState()
		return frag{s, s}, nil

	case syntax.OpNoMatch:
		// Matches nothing: entry and exit deliberately unconnected.
		return frag{b.newState(), b.newState()}, nil

	case syntax.OpLiteral:
		s := b.newState()
		cur := s
		for _, r := range re.Rune {
			next := b.newState()
			b.literal(cur, next, r, re.Flags&syntax.FoldCase != 0)
			cur = next
		}
		return frag{s, cur}, nil

	case syntax.OpCharClass:
		return b.class(re.Rune)

	case syntax.OpAnyCharNotNL:
		s := b.newState()
		a := b.newState()
		b.addEdge(s, 0x00, '\n'-1, a)
		b.addEdge(s, '\n'+1, 0xFF, a)
		return frag{s, a}, nil

	case syntax.OpAnyChar:
		s := b.newState()
		a := b.newState()
		b.addEdge(s, 0x00, 0xFF, a)
		return frag{s, a}, nil

	case syntax.OpCapture:
		// Groups only answer yes/no here, so grouping is transparent.
		return b.compile(re.Sub[0])

	case syntax.OpConcat:
		if len(re.Sub) == 0 {
			s := b.newState()
			return frag{s, s}, nil
		}
		f, err := b.compile(re.Sub[0])
		if err != nil {
			return frag{}, err
		}
		for _, sub := range re.Sub[1:] {
			g, err := b.compile(sub)
			if err != nil {
				return frag{}, err
			}
			b.addEps(f.accept, g.start)
			f.accept = g.accept
		}
		return f, nil

	case syntax.OpAlternate:
		s := b.newState()
		a := b.newState()
		for _, sub := range re.Sub {
			g, err := b.compile(sub)
			if err != nil {
				return frag{}, err
			}
			b.addEps(s, g.start)
			b.addEps(g.accept, a)
		}
		return frag{s, a}, nil

	case syntax.OpStar:
		g, err := b.compile(re.Sub[0])
		if err != nil {
			return frag{}, err
		}
		s := b.newState()
		a := b.newState()
		b.addEps(s, g.start)
		b.addEps(s, a)
		b.addEps(g.accept, g.start)
		b.addEps(g.accept, a)
		return frag{s, a}, nil

	case syntax.OpPlus:
		g, err := b.compile(re.Sub[0])
		if err != nil {
			return frag{}, err
		}
		a := b.newState()
		b.addEps(g.accept, g.start)
		b.addEps(g.accept, a)
		return frag{g.start, a}, nil

	case syntax.OpQuest:
		g, err := b.compile(re.Sub[0])
		if err != nil {
			return frag{}, err
		}
		s := b.newState()
		a := b.newState()
		b.addEps(s, g.start)
		b.addEps(s, a)
		b.addEps(g.accept, a)
		return frag{s, a}, nil

	case syntax.OpBeginText, syntax.OpBeginLine:
		return frag{}, errors.New(`embedded "^" is not supported; only a leading anchor is recognized`)

	case syntax.OpEndText, syntax.OpEndLine:
		return frag{}, errors.New(`"$" is not supported`)

	case syntax.OpWordBoundary, syntax.OpNoWordBoundary:
		return frag{}, errors.New("word boundaries are not supported")

	default:
		return frag{}, fmt.Errorf("unsupported expression (op %d)", re.Op)
	}
}

// literal wires the edges for one literal rune between from and to,
// including simple case folds when fold is set.
func (b *nfaBuilder) literal(from, to int, r rune, fold bool) {
	runes := []rune{r}
	if fold {
		for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
			runes = append(runes, f)
		}
	}
	for _, r := range runes {
		if r < 0x80 {
			b.addEdge(from, byte(r), byte(r), to)
			continue
		}
		// Multi-byte code point: chain its UTF-8 encoding.
		var enc [utf8.UTFMax]byte
		n := utf8.EncodeRune(enc[:], r)
		cur := from
		for i := 0; i < n-1; i++ {
			mid := b.newState()
			b.addEdge(cur, enc[i], enc[i], mid)
			cur = mid
		}
		b.addEdge(cur, enc[n-1], enc[n-1], to)
	}
}

// class builds a fragment for a character class, clipping rune ranges to
// the byte alphabet.
func (b *nfaBuilder) class(pairs []rune) (frag, error) {
	s := b.newState()
	a := b.newState()
	emitted := false
	for i := 0; i < len(pairs); i += 2 {
		lo, hi := pairs[i], pairs[i+1]
		if lo > 0xFF {
			continue
		}
		if hi > 0xFF {
			hi = 0xFF
		}
		b.addEdge(s, byte(lo), byte(hi), a)
		emitted = true
	}
	if !emitted {
		return frag{}, errors.New("character class matches no bytes")
	}
	return frag{s, a}, nil
}
