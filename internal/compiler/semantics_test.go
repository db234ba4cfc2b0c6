package compiler

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leo60228/const-regex/internal/automaton"
)

// runMatcher walks the state graph exactly the way the emitted matcher
// does: dispatch on the current state each iteration, inline terminal
// targets, fall through to false when input runs out.
func runMatcher(t *testing.T, g *Graph, input []byte) bool {
	t.Helper()

	state := g.Start
	for i := 0; i < len(input); i++ {
		st, ok := g.States[state]
		require.True(t, ok, "dangling state %d", state)

		switch st.Kind {
		case KindMatch:
			return true
		case KindDead:
			return false
		}

		b := input[i]
		var target automaton.StateID
		found := false
		for tgt, set := range st.Transitions {
			if set.Contains(b) {
				target = tgt
				found = true
				break
			}
		}
		require.True(t, found, "state %d has no arm for byte 0x%02X", state, b)

		switch g.States[target].Kind {
		case KindMatch:
			return true
		case KindDead:
			return false
		}
		state = target
	}
	return false
}

func TestMatcherScenarios(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		input   string
		want    bool
	}{
		{"subtitle hit", "m | [tn]|b", "the phantom menace", true},
		{"subtitle miss", "m | [tn]|b", "xyz", false},
		{"meta anchored hit", "^(meta-)*regex matching", "meta-meta-regex matching", true},
		{"meta anchored miss", "^(meta-)*regex matching", "a good idea", false},
		{"empty input never matches", "a", "", false},
		{"anchored single byte", "^A", "A", true},
		// Anchored mode is prefix-accepting: the match need not cover the
		// whole input.
		{"anchored prefix of longer input", "^A", "AA", true},
		// The loop only reports matches while consuming bytes, so even
		// patterns that match the empty string reject empty input.
		{"star on empty input", "a*", "", false},
		{"star on nonempty input", "a*", "zzz", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			graph, _, err := BuildGraph(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, runMatcher(t, graph, []byte(tt.input)))
		})
	}
}

func TestMatcherAgreesWithRegexp(t *testing.T) {
	patterns := []string{
		"a",
		"^a",
		"abc",
		"^abc",
		"m | [tn]|b",
		"^(meta-)*regex matching",
		"[0-9]+",
		"^[a-c]*z",
		"(ab)+c",
		"a.c",
		"x|yz",
		"(?i)star",
		"^https?://[a-z.]+",
	}
	inputs := []string{
		"", "a", "aa", "abc", "xabcx", "the phantom menace",
		"meta-regex matching", "meta-meta-regex matching", "regex matching",
		"id = 42", "abz", "ababc", "a.c", "axc", "yz", "STAR wars",
		"http://example.com", "https://go.dev", "zzz", "a good idea",
	}

	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			re := regexp.MustCompile(pattern)
			graph, _, err := BuildGraph(pattern)
			require.NoError(t, err)

			for _, input := range inputs {
				got := runMatcher(t, graph, []byte(input))
				want := re.MatchString(input)
				assert.Equal(t, want, got, "pattern %q input %q", pattern, input)
			}
		})
	}
}

func TestMatcherDeterminism(t *testing.T) {
	inputs := []string{"", "meta-regex matching", "the phantom menace", "xyz"}

	first, _, err := BuildGraph("^(meta-)*regex matching")
	require.NoError(t, err)
	second, _, err := BuildGraph("^(meta-)*regex matching")
	require.NoError(t, err)

	require.Len(t, second.States, len(first.States))
	for _, input := range inputs {
		assert.Equal(t,
			runMatcher(t, first, []byte(input)),
			runMatcher(t, second, []byte(input)),
			"input %q", input)
	}
}
