package transform

import "regextk/internal/fa"

// Intersection builds a deterministic automaton for the intersection of its
// inputs' languages as ¬(¬A ∪ ¬B ∪ ...), with every complement taken over
// the union of the inputs' alphabets.
type Intersection struct {
	multi

	Opts Options
}

func NewIntersection(opts Options) *Intersection {
	return &Intersection{multi: multi{name: "Intersection", min: 1}, Opts: opts}
}

func (t *Intersection) Execute(mode Mode) (*fa.Automaton, error) {
	if err := checkMode(mode); err != nil {
		return nil, err
	}
	inputs, err := t.get()
	if err != nil {
		return nil, err
	}
	universe := fa.UniversalAlphabet(inputs...)

	union := NewUnion()
	for _, in := range inputs {
		comp, err := Apply(NewComplement(universe, t.Opts), mode, in)
		if err != nil {
			return nil, err
		}
		if err := union.Add(comp); err != nil {
			return nil, err
		}
	}
	u, err := union.Execute(mode)
	if err != nil {
		return nil, err
	}
	return Apply(NewComplement(universe, t.Opts), mode, u)
}

// Difference builds a deterministic automaton for A − B = A ∩ ¬B, with the
// complement of B taken over the union of both alphabets. It takes exactly
// two inputs, A first.
type Difference struct {
	multi

	Opts Options
}

func NewDifference(opts Options) *Difference {
	return &Difference{multi: multi{name: "Difference", min: 2, max: 2}, Opts: opts}
}

func (t *Difference) Execute(mode Mode) (*fa.Automaton, error) {
	if err := checkMode(mode); err != nil {
		return nil, err
	}
	inputs, err := t.get()
	if err != nil {
		return nil, err
	}
	a, b := inputs[0], inputs[1]
	universe := fa.UniversalAlphabet(a, b)

	notB, err := Apply(NewComplement(universe, t.Opts), mode, b)
	if err != nil {
		return nil, err
	}
	return Apply(NewIntersection(t.Opts), mode, a, notB)
}
