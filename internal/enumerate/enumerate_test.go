package enumerate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regextk/internal/exec"
	"regextk/internal/fa"
	"regextk/internal/regex"
	"regextk/internal/transform"
)

func dfa(t *testing.T, expr string) *fa.Automaton {
	t.Helper()
	d, err := transform.ToDFA(regex.MustParse(expr), transform.Options{})
	require.NoError(t, err)
	return d
}

func TestMembersShortestFirst(t *testing.T) {
	got, err := Members(dfa(t, "a*"), 3, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"", "a", "aa"}, got)

	got, err = Members(dfa(t, "ab|c|def"), 10, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "ab", "def"}, got)
}

func TestMembersAreAccepted(t *testing.T) {
	d := dfa(t, "(a|b)*abb")
	got, err := Members(d, 6, Options{})
	require.NoError(t, err)
	require.NotEmpty(t, got)
	for _, m := range got {
		ans, err := exec.Run(d, m)
		require.NoError(t, err)
		assert.Equal(t, exec.Accept, ans, m)
	}
}

func TestMembersVisitBound(t *testing.T) {
	// the DFA for a* is 0 -a-> 1 with a loop on 1
	got, err := Members(dfa(t, "a*"), 100, Options{MaxVisits: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"", "a"}, got)

	got, err = Members(dfa(t, "a*"), 100, Options{MaxSteps: 2})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestMembersEmptyLanguage(t *testing.T) {
	a := fa.New()
	a.SetStart(a.CreateState(), true)
	got, err := Members(a, 5, Options{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMembersRequiresDFA(t *testing.T) {
	_, err := Members(regex.MustParse("a|b"), 1, Options{})
	assert.ErrorIs(t, err, exec.ErrNondeterministic)
}
