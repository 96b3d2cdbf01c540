package fa

import (
	"cmp"
	"errors"
	"fmt"
)

// Epsilon labels transitions that consume no input. It is outside the range
// of valid runes, so it never collides with a real symbol.
const Epsilon rune = -1

// ErrStructural is returned when an automaton does not have the shape an
// operation requires: not exactly one start or accepting state, or a
// transition endpoint that is not one of its states.
var ErrStructural = errors.New("structural violation")

// State is a dense, 0-based index into the states of one Automaton.
type State int

// Transition moves from one state to another on Symbol (or Epsilon).
type Transition struct {
	From   State
	To     State
	Symbol rune
}

// Compare orders transitions by (From, To, Symbol).
func (t Transition) Compare(o Transition) int {
	switch {
	case t.From != o.From:
		return cmp.Compare(t.From, o.From)
	case t.To != o.To:
		return cmp.Compare(t.To, o.To)
	default:
		return cmp.Compare(t.Symbol, o.Symbol)
	}
}

func (t Transition) String() string {
	return fmt.Sprintf("%d -%s-> %d", t.From, SymbolString(t.Symbol), t.To)
}

// SymbolString renders a transition label, using ε for Epsilon.
func SymbolString(sym rune) string {
	if sym == Epsilon {
		return "ε"
	}
	return string(sym)
}

type flags struct {
	start     bool
	accepting bool
}

// Automaton is a finite automaton, deterministic or not. States are plain
// indices; transitions are values kept both in creation order and in a
// per-source adjacency list.
type Automaton struct {
	states []flags
	trans  []Transition
	out    [][]Transition
}

// New returns an empty automaton.
func New() *Automaton { return &Automaton{} }

// CreateState adds a state with both flags cleared. States are numbered in
// order of creation starting at 0.
func (a *Automaton) CreateState() State {
	a.states = append(a.states, flags{})
	a.out = append(a.out, nil)
	return State(len(a.states) - 1)
}

// CreateTransition adds a transition between two states of a.
func (a *Automaton) CreateTransition(from, to State, sym rune) error {
	if !a.has(from) || !a.has(to) {
		return fmt.Errorf("transition %d -> %d: endpoint not in automaton of %d states: %w",
			from, to, len(a.states), ErrStructural)
	}
	t := Transition{From: from, To: to, Symbol: sym}
	a.trans = append(a.trans, t)
	a.out[from] = append(a.out[from], t)
	return nil
}

func (a *Automaton) has(s State) bool { return s >= 0 && int(s) < len(a.states) }

func (a *Automaton) NumStates() int { return len(a.states) }

// States lists every state in id order.
func (a *Automaton) States() []State {
	out := make([]State, len(a.states))
	for i := range out {
		out[i] = State(i)
	}
	return out
}

func (a *Automaton) IsStart(s State) bool     { return a.has(s) && a.states[s].start }
func (a *Automaton) IsAccepting(s State) bool { return a.has(s) && a.states[s].accepting }

func (a *Automaton) SetStart(s State, v bool) {
	if a.has(s) {
		a.states[s].start = v
	}
}

func (a *Automaton) SetAccepting(s State, v bool) {
	if a.has(s) {
		a.states[s].accepting = v
	}
}

// Transitions returns the transitions leaving s. The slice must not be
// modified.
func (a *Automaton) Transitions(s State) []Transition {
	if !a.has(s) {
		return nil
	}
	return a.out[s]
}

// Transition returns the first transition leaving s on sym.
func (a *Automaton) Transition(s State, sym rune) (Transition, bool) {
	for _, t := range a.Transitions(s) {
		if t.Symbol == sym {
			return t, true
		}
	}
	return Transition{}, false
}

// AllTransitions returns every transition in creation order. The slice must
// not be modified.
func (a *Automaton) AllTransitions() []Transition { return a.trans }

// StartState returns the unique start state.
func (a *Automaton) StartState() (State, error) {
	start := State(-1)
	for i, f := range a.states {
		if !f.start {
			continue
		}
		if start >= 0 {
			return -1, fmt.Errorf("multiple start states: %d and %d: %w", start, i, ErrStructural)
		}
		start = State(i)
	}
	if start < 0 {
		return -1, fmt.Errorf("no start state: %w", ErrStructural)
	}
	return start, nil
}

func (a *Automaton) AcceptingStates() []State {
	var out []State
	for i, f := range a.states {
		if f.accepting {
			out = append(out, State(i))
		}
	}
	return out
}

// UniqueAcceptingState returns the only accepting state of a.
func (a *Automaton) UniqueAcceptingState() (State, error) {
	acc := a.AcceptingStates()
	if len(acc) != 1 {
		return -1, fmt.Errorf("want exactly one accepting state, have %d: %w", len(acc), ErrStructural)
	}
	return acc[0], nil
}

// AddAll moves the states and transitions of other into a. The donor's
// states are renumbered by the returned base: donor state s becomes s+base
// in a. The donor is left empty and must not be used afterwards.
func (a *Automaton) AddAll(other *Automaton) (base State) {
	if other == a {
		other = a.Clone()
	}
	base = State(len(a.states))
	a.states = append(a.states, other.states...)
	for _, list := range other.out {
		shifted := make([]Transition, len(list))
		for i, t := range list {
			shifted[i] = Transition{From: t.From + base, To: t.To + base, Symbol: t.Symbol}
		}
		a.out = append(a.out, shifted)
	}
	for _, t := range other.trans {
		a.trans = append(a.trans, Transition{From: t.From + base, To: t.To + base, Symbol: t.Symbol})
	}
	*other = Automaton{}
	return base
}

// Clone returns an independent deep copy with the same numbering and flags.
func (a *Automaton) Clone() *Automaton {
	dup := &Automaton{
		states: append([]flags(nil), a.states...),
		trans:  append([]Transition(nil), a.trans...),
		out:    make([][]Transition, len(a.out)),
	}
	for i, list := range a.out {
		dup.out[i] = append([]Transition(nil), list...)
	}
	return dup
}
