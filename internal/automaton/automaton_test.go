package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// matchDense runs the automaton over input the way a matcher would,
// accepting as soon as a match state is entered.
func matchDense(d *Dense, input []byte) bool {
	s := d.StartState()
	for _, b := range input {
		if d.IsMatchState(s) {
			return true
		}
		if d.IsDeadState(s) {
			return false
		}
		s = d.NextState(s, b)
	}
	return d.IsMatchState(s)
}

func TestBuildValidPatterns(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{"literal", "abc"},
		{"alternation", "m | [tn]|b"},
		{"anchored group star", "^(meta-)*regex matching"},
		{"char class", "[a-z0-9]+"},
		{"fold case", "(?i)abc"},
		{"dot", "a.c"},
		{"negated class", "[^a]"},
		{"quest", "https?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Build(tt.pattern)
			require.NoError(t, err)
			require.IsType(t, &Dense{}, a)
		})
	}
}

func TestBuildPatternErrors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{"unbalanced paren", "(abc"},
		{"embedded caret", "a^b"},
		{"dollar", "a$"},
		{"word boundary", `a\b`},
		{"bad repeat", "*a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.pattern)
			require.Error(t, err)
			var patternErr *PatternError
			require.ErrorAs(t, err, &patternErr)
			assert.Equal(t, tt.pattern, patternErr.Pattern)
		})
	}
}

func TestBuildAnchorHandling(t *testing.T) {
	anchored, err := Build("^abc")
	require.NoError(t, err)
	assert.True(t, anchored.(*Dense).Anchored())

	unanchored, err := Build("abc")
	require.NoError(t, err)
	assert.False(t, unanchored.(*Dense).Anchored())
}

func TestNextStateTotality(t *testing.T) {
	patterns := []string{"a", "^a", "m | [tn]|b", "^(meta-)*regex matching", "[0-9]+"}

	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			a, err := Build(pattern)
			require.NoError(t, err)
			d := a.(*Dense)
			for id := 0; id < d.Len(); id++ {
				for bv := 0; bv < 256; bv++ {
					next := d.NextState(StateID(id), byte(bv))
					assert.Less(t, int(next), d.Len())
				}
			}
		})
	}
}

func TestBuildDeterminism(t *testing.T) {
	patterns := []string{"m | [tn]|b", "^(meta-)*regex matching", "[a-c]+z"}
	inputs := []string{"", "z", "acz", "the phantom menace", "meta-regex matching", "xyz"}

	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			first, err := Build(pattern)
			require.NoError(t, err)
			second, err := Build(pattern)
			require.NoError(t, err)

			d1 := first.(*Dense)
			d2 := second.(*Dense)
			assert.Equal(t, d1.Len(), d2.Len())
			for _, input := range inputs {
				assert.Equal(t, matchDense(d1, []byte(input)), matchDense(d2, []byte(input)),
					"input %q", input)
			}
		})
	}
}

func TestMinimalStateCounts(t *testing.T) {
	tests := []struct {
		pattern string
		states  int
	}{
		{"^a", 3},    // start, match, dead
		{"^[ab]", 3}, // class collapses to the same three
		{"^ab", 4},
		{"a", 2}, // continuous scan needs no dead state
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			a, err := Build(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.states, a.(*Dense).Len())
		})
	}
}

func TestDeadStateIsSink(t *testing.T) {
	a, err := Build("^ab")
	require.NoError(t, err)
	d := a.(*Dense)

	// A byte that cannot start the pattern lands in the dead state.
	deadID := d.NextState(d.StartState(), 'x')
	require.True(t, d.IsDeadState(deadID))
	for bv := 0; bv < 256; bv++ {
		assert.Equal(t, deadID, d.NextState(deadID, byte(bv)))
	}
}

func TestUnanchoredHasNoDeadState(t *testing.T) {
	a, err := Build("ab")
	require.NoError(t, err)
	d := a.(*Dense)
	for id := 0; id < d.Len(); id++ {
		assert.False(t, d.IsDeadState(StateID(id)))
	}
}

func TestMatchSemantics(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		input   string
		want    bool
	}{
		{"anchored hit", "^ab", "abx", true},
		{"anchored miss offset", "^ab", "xab", false},
		{"unanchored offset", "ab", "xxabxx", true},
		{"unanchored miss", "ab", "axbx", false},
		{"empty input", "a", "", false},
		{"class repeat", "[0-9]+", "id = 42", true},
		{"fold case", "(?i)star", "STAR wars", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Build(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, matchDense(a.(*Dense), []byte(tt.input)))
		})
	}
}

func TestMultibyteLiteral(t *testing.T) {
	a, err := Build("^€")
	require.NoError(t, err)
	d := a.(*Dense)

	assert.True(t, matchDense(d, []byte("€")))
	assert.False(t, matchDense(d, []byte("€")[:2]))
	assert.False(t, matchDense(d, []byte("e")))
}

func TestClassClipping(t *testing.T) {
	// [^a] covers every byte value except 'a' once clipped.
	a, err := Build("^[^a]")
	require.NoError(t, err)
	d := a.(*Dense)

	assert.False(t, matchDense(d, []byte("a")))
	assert.True(t, matchDense(d, []byte("b")))
	assert.True(t, matchDense(d, []byte{0xFF}))
}
