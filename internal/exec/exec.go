// Package exec runs finite automata on input strings.
package exec

import (
	"errors"
	"fmt"

	"regextk/internal/fa"
)

// ErrNondeterministic is returned when a deterministic automaton is required.
var ErrNondeterministic = errors.New("automaton is not deterministic")

// Answer is the outcome of running an automaton on a string.
type Answer int

const (
	Reject Answer = iota
	Accept
)

func (a Answer) String() string {
	if a == Accept {
		return "ACCEPT"
	}
	return "REJECT"
}

// Executor decides membership for an assigned automaton.
type Executor interface {
	SetAutomaton(a *fa.Automaton) error
	Execute(input string) Answer
}

// DFA executes a deterministic automaton from a dense table indexed by
// [state][symbol-min], where -1 means no transition.
type DFA struct {
	first     rune
	table     [][]int
	start     int
	accepting []bool
}

// NewDFA returns a DFA executor for a.
func NewDFA(a *fa.Automaton) (*DFA, error) {
	d := &DFA{}
	if err := d.SetAutomaton(a); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *DFA) SetAutomaton(a *fa.Automaton) error {
	if !fa.IsDeterministic(a) {
		return fmt.Errorf("table-driven execution: %w", ErrNondeterministic)
	}
	start, err := a.StartState()
	if err != nil {
		return err
	}

	alphabet := fa.Alphabet(a)
	first, width := rune(0), 0
	if len(alphabet) > 0 {
		first = alphabet[0]
		width = int(alphabet[len(alphabet)-1]-first) + 1
	}

	table := make([][]int, a.NumStates())
	for i := range table {
		row := make([]int, width)
		for j := range row {
			row[j] = -1
		}
		table[i] = row
	}
	for _, t := range a.AllTransitions() {
		table[t.From][t.Symbol-first] = int(t.To)
	}

	accepting := make([]bool, a.NumStates())
	for _, s := range a.AcceptingStates() {
		accepting[s] = true
	}

	*d = DFA{first: first, table: table, start: int(start), accepting: accepting}
	return nil
}

func (d *DFA) Execute(input string) Answer {
	if d.table == nil {
		return Reject
	}
	state := d.start
	for _, c := range input {
		i := int(c - d.first)
		if i < 0 || i >= len(d.table[state]) {
			return Reject
		}
		state = d.table[state][i]
		if state < 0 {
			return Reject
		}
	}
	if d.accepting[state] {
		return Accept
	}
	return Reject
}

// Table exposes the transition table: the symbol of column 0, one row per
// state, the start state, and the accepting flags. The slices must not be
// modified.
func (d *DFA) Table() (first rune, rows [][]int, start int, accepting []bool) {
	return d.first, d.table, d.start, d.accepting
}

// NFA simulates a possibly nondeterministic automaton by tracking the set
// of active states.
type NFA struct {
	a    *fa.Automaton
	seed fa.StateSet
}

func NewNFA(a *fa.Automaton) (*NFA, error) {
	n := &NFA{}
	if err := n.SetAutomaton(a); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *NFA) SetAutomaton(a *fa.Automaton) error {
	start, err := a.StartState()
	if err != nil {
		return err
	}
	n.a = a
	n.seed = fa.Closure(a, fa.NewStateSet(start))
	return nil
}

func (n *NFA) Execute(input string) Answer {
	if n.a == nil {
		return Reject
	}
	cur := n.seed
	for _, c := range input {
		cur = fa.Closure(n.a, fa.FollowAll(n.a, cur, c))
		if cur.IsEmpty() {
			return Reject
		}
	}
	if fa.ContainsAccepting(n.a, cur) {
		return Accept
	}
	return Reject
}

// Run picks the table-driven executor for deterministic automata and the
// simulator otherwise.
func Run(a *fa.Automaton, input string) (Answer, error) {
	var e Executor = &NFA{}
	if fa.IsDeterministic(a) {
		e = &DFA{}
	}
	if err := e.SetAutomaton(a); err != nil {
		return Reject, err
	}
	return e.Execute(input), nil
}
