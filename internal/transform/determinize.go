package transform

import (
	"fmt"

	"regextk/internal/fa"
)

// Determinize builds a DFA for the language of its input by subset
// construction. It never mutates the input, whatever the mode.
type Determinize struct {
	single

	Opts Options
}

func NewDeterminize(opts Options) *Determinize {
	return &Determinize{single: single{name: "Determinize"}, Opts: opts}
}

func (t *Determinize) Execute(mode Mode) (*fa.Automaton, error) {
	if err := checkMode(mode); err != nil {
		return nil, err
	}
	nfa, err := t.get()
	if err != nil {
		return nil, err
	}
	start, err := nfa.StartState()
	if err != nil {
		return nil, err
	}

	alphabet := fa.Alphabet(nfa)
	limit := t.Opts.maxStates()

	dfa := fa.New()
	index := map[string]fa.State{}
	// sets[i] is the NFA configuration behind DFA state i.
	var sets []fa.StateSet

	lookup := func(set fa.StateSet) (fa.State, bool, error) {
		if s, ok := index[set.Key()]; ok {
			return s, false, nil
		}
		if limit > 0 && dfa.NumStates() >= limit {
			return -1, false, fmt.Errorf("subset construction over %d states: %w", limit, ErrTooManyStates)
		}
		s := dfa.CreateState()
		index[set.Key()] = s
		sets = append(sets, set)
		return s, true, nil
	}

	seed := fa.Closure(nfa, fa.NewStateSet(start))
	dfaStart, _, err := lookup(seed)
	if err != nil {
		return nil, err
	}
	dfa.SetStart(dfaStart, true)

	work := []fa.State{dfaStart}
	for len(work) > 0 {
		cur := work[len(work)-1]
		work = work[:len(work)-1]
		for _, sym := range alphabet {
			next := fa.Closure(nfa, fa.FollowAll(nfa, sets[cur], sym))
			if next.IsEmpty() {
				continue
			}
			target, fresh, err := lookup(next)
			if err != nil {
				return nil, err
			}
			if fresh {
				work = append(work, target)
			}
			if err := dfa.CreateTransition(cur, target, sym); err != nil {
				return nil, err
			}
		}
	}

	for i, set := range sets {
		if fa.ContainsAccepting(nfa, set) {
			dfa.SetAccepting(fa.State(i), true)
		}
	}

	t.Opts.logger().Debug("subset construction complete",
		"nfa_states", nfa.NumStates(),
		"dfa_states", dfa.NumStates(),
		"alphabet", len(alphabet))
	return dfa, nil
}

// ToDFA determinizes a without mutating it.
func ToDFA(a *fa.Automaton, opts Options) (*fa.Automaton, error) {
	return Apply(NewDeterminize(opts), Nondestructive, a)
}
