package transform

import "regextk/internal/fa"

// Union builds a nondeterministic automaton for the union of its inputs'
// languages: a fresh start state with epsilon edges into every input, and
// every input's (unique) accepting state joined into a fresh accepting state.
type Union struct {
	multi
}

func NewUnion() *Union {
	return &Union{multi: multi{name: "Union", min: 1}}
}

func (t *Union) Execute(mode Mode) (*fa.Automaton, error) {
	if err := checkMode(mode); err != nil {
		return nil, err
	}
	inputs, err := t.get()
	if err != nil {
		return nil, err
	}

	result := fa.New()
	start := result.CreateState()
	result.SetStart(start, true)
	final := result.CreateState()
	result.SetAccepting(final, true)

	for _, in := range inputs {
		sub, err := Apply(NewMakeUniqueAcceptingState(), mode, in)
		if err != nil {
			return nil, err
		}
		subStart, err := sub.StartState()
		if err != nil {
			return nil, err
		}
		subFinal, err := sub.UniqueAcceptingState()
		if err != nil {
			return nil, err
		}

		base := result.AddAll(sub)
		subStart += base
		subFinal += base

		if err := result.CreateTransition(start, subStart, fa.Epsilon); err != nil {
			return nil, err
		}
		result.SetStart(subStart, false)
		if err := result.CreateTransition(subFinal, final, fa.Epsilon); err != nil {
			return nil, err
		}
		result.SetAccepting(subFinal, false)
	}
	return result, nil
}
