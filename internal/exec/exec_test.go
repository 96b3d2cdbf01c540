package exec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regextk/internal/exec"
	"regextk/internal/fa"
	"regextk/internal/regex"
	"regextk/internal/transform"
)

func TestDFAAndNFAAgree(t *testing.T) {
	inputs := []string{"", "a", "b", "ab", "abb", "aabb", "babb", "abab", "c", "abbc"}
	for _, expr := range []string{"(a|b)*abb", "a*b*", "(ab)+|ε", "b?a"} {
		nfa := regex.MustParse(expr)
		dfa, err := transform.ToDFA(nfa, transform.Options{})
		require.NoError(t, err)

		n, err := exec.NewNFA(nfa)
		require.NoError(t, err)
		d, err := exec.NewDFA(dfa)
		require.NoError(t, err)
		for _, in := range inputs {
			assert.Equal(t, n.Execute(in), d.Execute(in), "%s on %q", expr, in)
		}
	}
}

func TestDFARequiresDeterminism(t *testing.T) {
	_, err := exec.NewDFA(regex.MustParse("a|b"))
	assert.ErrorIs(t, err, exec.ErrNondeterministic)
}

func TestDFAOutOfRange(t *testing.T) {
	dfa, err := transform.ToDFA(regex.MustParse("b*"), transform.Options{})
	require.NoError(t, err)
	d, err := exec.NewDFA(dfa)
	require.NoError(t, err)
	assert.Equal(t, exec.Accept, d.Execute("bbb"))
	assert.Equal(t, exec.Reject, d.Execute("a"))
	assert.Equal(t, exec.Reject, d.Execute("bc"))
	assert.Equal(t, exec.Accept, d.Execute(""))
}

func TestDFATable(t *testing.T) {
	a := fa.New()
	s0, s1 := a.CreateState(), a.CreateState()
	a.SetStart(s0, true)
	a.SetAccepting(s1, true)
	require.NoError(t, a.CreateTransition(s0, s1, 'x'))
	require.NoError(t, a.CreateTransition(s1, s0, 'z'))

	d, err := exec.NewDFA(a)
	require.NoError(t, err)
	first, rows, start, accepting := d.Table()
	assert.Equal(t, 'x', first)
	assert.Equal(t, [][]int{{1, -1, -1}, {-1, -1, 0}}, rows)
	assert.Equal(t, 0, start)
	assert.Equal(t, []bool{false, true}, accepting)
	assert.Equal(t, exec.Reject, d.Execute("xy"))
	assert.Equal(t, exec.Accept, d.Execute("xzx"))
}

func TestRun(t *testing.T) {
	got, err := exec.Run(regex.MustParse("a|b"), "b")
	require.NoError(t, err)
	assert.Equal(t, exec.Accept, got)
	assert.Equal(t, "ACCEPT", got.String())

	_, err = exec.Run(fa.New(), "")
	assert.ErrorIs(t, err, fa.ErrStructural)
}

func TestZeroExecutorRejects(t *testing.T) {
	assert.Equal(t, exec.Reject, (&exec.DFA{}).Execute(""))
	assert.Equal(t, exec.Reject, (&exec.NFA{}).Execute(""))
}
