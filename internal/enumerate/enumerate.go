// Package enumerate lists example members of the language of a DFA.
package enumerate

import (
	"fmt"

	"regextk/internal/exec"
	"regextk/internal/fa"
)

// Options bounds the search.
type Options struct {
	// MaxVisits is how often one path may pass through the same state.
	// Zero means 2.
	MaxVisits int
	// MaxSteps caps the number of paths expanded. Zero means 1<<20.
	MaxSteps int
}

func (o Options) withDefaults() Options {
	if o.MaxVisits <= 0 {
		o.MaxVisits = 2
	}
	if o.MaxSteps <= 0 {
		o.MaxSteps = 1 << 20
	}
	return o
}

type item struct {
	str    []rune
	state  fa.State
	visits map[fa.State]int
}

func (it item) follow(t fa.Transition) item {
	next := item{
		str:    append(append(make([]rune, 0, len(it.str)+1), it.str...), t.Symbol),
		state:  t.To,
		visits: make(map[fa.State]int, len(it.visits)),
	}
	for s, n := range it.visits {
		next.visits[s] = n
	}
	return next
}

// Members returns up to limit strings accepted by the deterministic automaton
// a, shortest first. Cyclic paths are cut once a state repeats MaxVisits
// times, so long members may be missed.
func Members(a *fa.Automaton, limit int, opts Options) ([]string, error) {
	if !fa.IsDeterministic(a) {
		return nil, fmt.Errorf("member enumeration: %w", exec.ErrNondeterministic)
	}
	start, err := a.StartState()
	if err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	var out []string
	work := []item{{state: start, visits: map[fa.State]int{}}}
	for steps := 0; len(work) > 0 && len(out) < limit && steps < opts.MaxSteps; steps++ {
		it := work[0]
		work = work[1:]
		it.visits[it.state]++

		if a.IsAccepting(it.state) {
			out = append(out, string(it.str))
		}
		for _, t := range a.Transitions(it.state) {
			if it.visits[t.To] < opts.MaxVisits {
				work = append(work, it.follow(t))
			}
		}
	}
	return out, nil
}
