package regex

import (
	"fmt"
	"unicode/utf8"

	"regextk/internal/fa"
	"regextk/internal/transform"
)

// builder turns the parse tree into automata bottom-up. Every production
// yields an automaton with one start state and one accepting state, which
// the concatenation and repetition constructions rely on.
type builder struct {
	cfg config
}

func (b *builder) alternation(n *alternation) (*fa.Automaton, error) {
	left, err := b.concatenation(n.Left)
	if err != nil {
		return nil, err
	}
	if n.Right == nil {
		return left, nil
	}
	right, err := b.alternation(n.Right)
	if err != nil {
		return nil, err
	}
	result, err := transform.Apply(transform.NewUnion(), transform.Destructive, left, right)
	if err != nil {
		return nil, err
	}
	return b.check(result)
}

func (b *builder) concatenation(n *concatenation) (*fa.Automaton, error) {
	left, err := b.repetition(n.Left)
	if err != nil {
		return nil, err
	}
	if n.Right == nil {
		return left, nil
	}
	right, err := b.concatenation(n.Right)
	if err != nil {
		return nil, err
	}

	leftFinal, err := left.UniqueAcceptingState()
	if err != nil {
		return nil, err
	}
	rightStart, err := right.StartState()
	if err != nil {
		return nil, err
	}

	result := fa.New()
	leftFinal += result.AddAll(left)
	rightStart += result.AddAll(right)

	if err := result.CreateTransition(leftFinal, rightStart, fa.Epsilon); err != nil {
		return nil, err
	}
	result.SetAccepting(leftFinal, false)
	result.SetStart(rightStart, false)
	return b.check(result)
}

func (b *builder) repetition(n *repetition) (*fa.Automaton, error) {
	inner, err := b.atom(n.Atom)
	if err != nil {
		return nil, err
	}
	innerStart, err := inner.StartState()
	if err != nil {
		return nil, err
	}
	innerFinal, err := inner.UniqueAcceptingState()
	if err != nil {
		return nil, err
	}

	switch n.Op {
	case "":
		return inner, nil
	case "?":
		if err := inner.CreateTransition(innerStart, innerFinal, fa.Epsilon); err != nil {
			return nil, err
		}
		return b.check(inner)
	}

	result := fa.New()
	start := result.CreateState()
	result.SetStart(start, true)
	final := result.CreateState()
	result.SetAccepting(final, true)

	if n.Op == "*" {
		if err := result.CreateTransition(start, final, fa.Epsilon); err != nil {
			return nil, err
		}
	}
	if err := result.CreateTransition(final, start, fa.Epsilon); err != nil {
		return nil, err
	}

	base := result.AddAll(inner)
	innerStart += base
	innerFinal += base

	if err := result.CreateTransition(start, innerStart, fa.Epsilon); err != nil {
		return nil, err
	}
	result.SetStart(innerStart, false)
	if err := result.CreateTransition(innerFinal, final, fa.Epsilon); err != nil {
		return nil, err
	}
	result.SetAccepting(innerFinal, false)
	return b.check(result)
}

func (b *builder) atom(n *atom) (*fa.Automaton, error) {
	switch {
	case n.Group != nil:
		return b.alternation(n.Group)
	case n.Epsilon:
		return b.literal(fa.Epsilon)
	case n.Escaped != nil:
		r, _ := utf8.DecodeRuneInString((*n.Escaped)[1:])
		return b.literal(r)
	case n.Symbol != nil:
		r, _ := utf8.DecodeRuneInString(*n.Symbol)
		if r == b.cfg.alias {
			r = fa.Epsilon
		}
		return b.literal(r)
	}
	return nil, &SyntaxError{Offset: n.Pos.Offset, Msg: "empty atom"}
}

// literal is two states joined by one transition on sym.
func (b *builder) literal(sym rune) (*fa.Automaton, error) {
	a := fa.New()
	start := a.CreateState()
	a.SetStart(start, true)
	final := a.CreateState()
	a.SetAccepting(final, true)
	if err := a.CreateTransition(start, final, sym); err != nil {
		return nil, err
	}
	return b.check(a)
}

func (b *builder) check(a *fa.Automaton) (*fa.Automaton, error) {
	if !b.cfg.checks {
		return a, nil
	}
	if _, err := a.StartState(); err != nil {
		return nil, fmt.Errorf("regex builder: %w", err)
	}
	if _, err := a.UniqueAcceptingState(); err != nil {
		return nil, fmt.Errorf("regex builder: %w", err)
	}
	return a, nil
}
