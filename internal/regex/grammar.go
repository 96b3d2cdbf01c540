package regex

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Grammar:
//
//	R := E | E '|' R
//	E := T | T E
//	T := F | F '*' | F '+' | F '?'
//	F := symbol | 'ε' | '(' R ')'
//
// Whitespace between tokens is ignored. A backslash makes the next
// character a literal symbol.

type alternation struct {
	Left  *concatenation `parser:"@@"`
	Right *alternation   `parser:"( '|' @@ )?"`
}

type concatenation struct {
	Left  *repetition    `parser:"@@"`
	Right *concatenation `parser:"@@?"`
}

type repetition struct {
	Atom *atom  `parser:"@@"`
	Op   string `parser:"@( '*' | '+' | '?' )?"`
}

type atom struct {
	Pos lexer.Position

	Epsilon bool         `parser:"  @Epsilon"`
	Escaped *string      `parser:"| @Escaped"`
	Symbol  *string      `parser:"| @Symbol"`
	Group   *alternation `parser:"| '(' @@ ')'"`
}

var regexLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[\s\p{Zs}]+`},
	{Name: "Epsilon", Pattern: `ε`},
	{Name: "Escaped", Pattern: `\\.`},
	{Name: "Operator", Pattern: `[|()*+?]`},
	{Name: "Symbol", Pattern: `[^\\]`},
})

var parser = participle.MustBuild[alternation](
	participle.Lexer(regexLexer),
	participle.Elide("Whitespace"),
)
