// Package regex converts regular expressions into nondeterministic finite
// automata using the Thompson construction.
package regex

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"

	"regextk/internal/fa"
)

// ErrMalformedExpression is the sentinel wrapped by every parse failure.
var ErrMalformedExpression = errors.New("malformed expression")

// SyntaxError describes where an expression stopped making sense.
type SyntaxError struct {
	Expr   string
	Offset int    // byte offset into Expr
	Char   string // offending character, empty at end of input
	Msg    string
}

func (e *SyntaxError) Error() string {
	if e.Char == "" {
		return fmt.Sprintf("regexp %q: %s at end of input", e.Expr, e.Msg)
	}
	return fmt.Sprintf("regexp %q: %s at offset %d (%q)", e.Expr, e.Msg, e.Offset, e.Char)
}

func (e *SyntaxError) Unwrap() error { return ErrMalformedExpression }

type config struct {
	alias  rune
	checks bool
}

// Option tweaks how an expression is read.
type Option func(*config)

// WithEpsilonAlias makes an unescaped r stand for ε, as in grading files
// written with 'e' for the empty string.
func WithEpsilonAlias(r rune) Option {
	return func(c *config) { c.alias = r }
}

// WithoutChecks skips verifying that every intermediate automaton has a
// single start and a single accepting state.
func WithoutChecks() Option {
	return func(c *config) { c.checks = false }
}

// Parse builds an NFA for expr.
func Parse(expr string, opts ...Option) (*fa.Automaton, error) {
	cfg := config{alias: -1, checks: true}
	for _, o := range opts {
		o(&cfg)
	}

	tree, err := parser.ParseString("", expr)
	if err != nil {
		return nil, syntaxError(expr, err)
	}
	b := &builder{cfg: cfg}
	return b.alternation(tree)
}

// MustParse is like Parse but panics on error. Meant for tests and
// hard-coded expressions.
func MustParse(expr string, opts ...Option) *fa.Automaton {
	a, err := Parse(expr, opts...)
	if err != nil {
		panic(err)
	}
	return a
}

func syntaxError(expr string, err error) error {
	se := &SyntaxError{Expr: expr, Msg: err.Error()}
	var perr participle.Error
	if !errors.As(err, &perr) {
		return se
	}
	se.Msg = perr.Message()
	offset := perr.Position().Offset
	// the offset points at the start of the bad token; skip any blanks
	for offset < len(expr) {
		r, size := utf8.DecodeRuneInString(expr[offset:])
		if !unicode.IsSpace(r) {
			break
		}
		offset += size
	}
	se.Offset = offset
	if offset < len(expr) {
		r, _ := utf8.DecodeRuneInString(expr[offset:])
		se.Char = string(r)
	}
	if strings.TrimSpace(expr[offset:]) == "" {
		se.Msg = "regexp ended unexpectedly"
	}
	return se
}
