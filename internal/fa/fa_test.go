package fa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chain builds start -a-> 1 -ε-> 2 -b-> 3(accepting), plus 1 -ε-> 3.
func chain(t *testing.T) *Automaton {
	t.Helper()
	a := New()
	for i := 0; i < 4; i++ {
		a.CreateState()
	}
	a.SetStart(0, true)
	a.SetAccepting(3, true)
	require.NoError(t, a.CreateTransition(0, 1, 'a'))
	require.NoError(t, a.CreateTransition(1, 2, Epsilon))
	require.NoError(t, a.CreateTransition(2, 3, 'b'))
	require.NoError(t, a.CreateTransition(1, 3, Epsilon))
	return a
}

func TestCreateStateNumbering(t *testing.T) {
	a := New()
	for i := 0; i < 5; i++ {
		assert.Equal(t, State(i), a.CreateState())
	}
	assert.Equal(t, 5, a.NumStates())
	assert.Equal(t, []State{0, 1, 2, 3, 4}, a.States())
}

func TestCreateTransitionForeignEndpoint(t *testing.T) {
	a := New()
	s := a.CreateState()
	err := a.CreateTransition(s, 7, 'x')
	require.ErrorIs(t, err, ErrStructural)
	assert.Empty(t, a.AllTransitions())
}

func TestStartState(t *testing.T) {
	a := New()
	_, err := a.StartState()
	require.ErrorIs(t, err, ErrStructural)

	s0 := a.CreateState()
	s1 := a.CreateState()
	a.SetStart(s1, true)
	got, err := a.StartState()
	require.NoError(t, err)
	assert.Equal(t, s1, got)

	a.SetStart(s0, true)
	_, err = a.StartState()
	require.ErrorIs(t, err, ErrStructural)
}

func TestUniqueAcceptingState(t *testing.T) {
	a := chain(t)
	acc, err := a.UniqueAcceptingState()
	require.NoError(t, err)
	assert.Equal(t, State(3), acc)

	a.SetAccepting(0, true)
	_, err = a.UniqueAcceptingState()
	require.ErrorIs(t, err, ErrStructural)
}

func TestTransitionLookup(t *testing.T) {
	a := chain(t)
	tr, ok := a.Transition(0, 'a')
	require.True(t, ok)
	assert.Equal(t, Transition{From: 0, To: 1, Symbol: 'a'}, tr)
	_, ok = a.Transition(0, 'b')
	assert.False(t, ok)
	assert.Len(t, a.Transitions(1), 2)
	assert.Nil(t, a.Transitions(99))
}

func TestAddAllRenumbers(t *testing.T) {
	a := chain(t)
	b := chain(t)
	base := a.AddAll(b)

	assert.Equal(t, State(4), base)
	assert.Equal(t, 8, a.NumStates())
	assert.Len(t, a.AllTransitions(), 8)
	assert.True(t, a.IsStart(base))
	assert.True(t, a.IsAccepting(3+base))

	tr, ok := a.Transition(base, 'a')
	require.True(t, ok)
	assert.Equal(t, base+1, tr.To)

	assert.Equal(t, 0, b.NumStates())
	_, err := b.StartState()
	assert.ErrorIs(t, err, ErrStructural)
}

func TestAddAllSelf(t *testing.T) {
	a := chain(t)
	base := a.AddAll(a)
	assert.Equal(t, State(4), base)
	assert.Equal(t, 8, a.NumStates())
	assert.Len(t, a.AllTransitions(), 8)
}

func TestCloneIsIndependent(t *testing.T) {
	a := chain(t)
	dup := a.Clone()
	require.Equal(t, a.AllTransitions(), dup.AllTransitions())

	s := dup.CreateState()
	require.NoError(t, dup.CreateTransition(0, s, 'z'))
	dup.SetAccepting(0, true)

	assert.Equal(t, 4, a.NumStates())
	assert.Len(t, a.AllTransitions(), 4)
	assert.Len(t, a.Transitions(0), 1)
	assert.False(t, a.IsAccepting(0))
}

func TestTransitionCompare(t *testing.T) {
	x := Transition{From: 1, To: 2, Symbol: 'a'}
	assert.Equal(t, 0, x.Compare(x))
	assert.Equal(t, -1, x.Compare(Transition{From: 2, To: 0, Symbol: 'a'}))
	assert.Equal(t, 1, x.Compare(Transition{From: 1, To: 1, Symbol: 'z'}))
	assert.Equal(t, -1, x.Compare(Transition{From: 1, To: 2, Symbol: 'b'}))
	assert.Equal(t, "1 -a-> 2", x.String())
	assert.Equal(t, "0 -ε-> 1", Transition{From: 0, To: 1, Symbol: Epsilon}.String())
}

func TestStateSetCanonical(t *testing.T) {
	x := NewStateSet(3, 1, 2, 1)
	y := NewStateSet(1, 2, 3)
	assert.True(t, x.Equal(y))
	assert.Equal(t, x.Key(), y.Key())
	assert.Equal(t, []State{1, 2, 3}, x.States())
	assert.Equal(t, "{1,2,3}", x.String())
	assert.True(t, x.Contains(2))
	assert.False(t, x.Contains(4))
	assert.True(t, NewStateSet().IsEmpty())
}

func TestStateSetOrdering(t *testing.T) {
	tests := []struct {
		a, b StateSet
		want int
	}{
		{NewStateSet(1, 2), NewStateSet(1, 2), 0},
		{NewStateSet(1, 2), NewStateSet(1, 3), -1},
		{NewStateSet(1, 2), NewStateSet(1), 1},
		{NewStateSet(), NewStateSet(0), -1},
		{NewStateSet(2), NewStateSet(1, 5, 9), 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.a.Compare(tt.b), "%v vs %v", tt.a, tt.b)
	}
	assert.NotEqual(t, NewStateSet(1, 2).Key(), NewStateSet(12).Key())
}

func TestClosure(t *testing.T) {
	a := chain(t)
	got := Closure(a, NewStateSet(1))
	assert.Equal(t, []State{1, 2, 3}, got.States())

	again := Closure(a, got)
	assert.True(t, again.Equal(got))

	assert.Equal(t, []State{0}, Closure(a, NewStateSet(0)).States())
	assert.True(t, Closure(a, NewStateSet()).IsEmpty())
}

func TestClosureIdempotentOnEveryState(t *testing.T) {
	a := chain(t)
	for _, s := range a.States() {
		once := Closure(a, NewStateSet(s))
		assert.True(t, once.Contains(s))
		assert.True(t, Closure(a, once).Equal(once))
	}
}

func TestFollowAll(t *testing.T) {
	a := chain(t)
	assert.Equal(t, []State{1}, FollowAll(a, NewStateSet(0), 'a').States())
	assert.True(t, FollowAll(a, NewStateSet(1), 'b').IsEmpty())
	assert.Equal(t, []State{3}, FollowAll(a, NewStateSet(0, 2), 'b').States())
	assert.True(t, FollowAll(a, NewStateSet(1), Epsilon).IsEmpty())
}

func TestAlphabet(t *testing.T) {
	a := chain(t)
	assert.Equal(t, []rune{'a', 'b'}, Alphabet(a))

	b := New()
	s := b.CreateState()
	require.NoError(t, b.CreateTransition(s, s, 'c'))
	require.NoError(t, b.CreateTransition(s, s, 'a'))
	assert.Equal(t, []rune{'a', 'b', 'c'}, UniversalAlphabet(a, b))
	assert.Empty(t, Alphabet(New()))
}

func TestIsDeterministic(t *testing.T) {
	assert.False(t, IsDeterministic(chain(t)))

	a := New()
	s0, s1 := a.CreateState(), a.CreateState()
	a.SetStart(s0, true)
	require.NoError(t, a.CreateTransition(s0, s1, 'a'))
	require.NoError(t, a.CreateTransition(s0, s0, 'b'))
	assert.True(t, IsDeterministic(a))

	require.NoError(t, a.CreateTransition(s0, s0, 'a'))
	assert.False(t, IsDeterministic(a))
}

func TestContainsAccepting(t *testing.T) {
	a := chain(t)
	assert.False(t, ContainsAccepting(a, NewStateSet(0, 1)))
	assert.True(t, ContainsAccepting(a, Closure(a, NewStateSet(1))))
}
