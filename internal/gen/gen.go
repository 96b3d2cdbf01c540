// Package gen emits Go source for a standalone matcher of an automaton's
// language.
package gen

import (
	"fmt"
	"go/token"
	"unicode"
	"unicode/utf8"

	"github.com/dave/jennifer/jen"

	"regextk/internal/exec"
	"regextk/internal/fa"
	"regextk/internal/transform"
)

// Config names the generated package and matcher function.
type Config struct {
	Package string
	Name    string // exported function name, e.g. "MatchEven"
	Opts    transform.Options
}

// Generate determinizes a if needed and returns a file holding the DFA
// transition table and a func Name(input string) bool walking it.
func Generate(a *fa.Automaton, cfg Config) (*jen.File, error) {
	if !token.IsIdentifier(cfg.Package) {
		return nil, fmt.Errorf("gen: invalid package name %q", cfg.Package)
	}
	if !token.IsIdentifier(cfg.Name) || !token.IsExported(cfg.Name) {
		return nil, fmt.Errorf("gen: function name %q must be an exported identifier", cfg.Name)
	}

	dfa := a
	if !fa.IsDeterministic(a) {
		var err error
		if dfa, err = transform.ToDFA(a, cfg.Opts); err != nil {
			return nil, err
		}
	}
	d, err := exec.NewDFA(dfa)
	if err != nil {
		return nil, err
	}
	first, rows, start, accepting := d.Table()

	width := 0
	if len(rows) > 0 {
		width = len(rows[0])
	}
	tableName := unexport(cfg.Name) + "Table"
	acceptName := unexport(cfg.Name) + "Accepting"

	f := jen.NewFile(cfg.Package)
	f.HeaderComment("Code generated by regextk. DO NOT EDIT.")

	rowCode := make([]jen.Code, len(rows))
	for i, row := range rows {
		cells := make([]jen.Code, len(row))
		for j, v := range row {
			cells[j] = jen.Lit(v)
		}
		rowCode[i] = jen.Values(cells...)
	}
	f.Commentf("%s[state][r-%d] is the next state, or -1.", tableName, first)
	f.Var().Id(tableName).Op("=").Index().Index().Int().Values(rowCode...)

	flags := make([]jen.Code, len(accepting))
	for i, v := range accepting {
		flags[i] = jen.Lit(v)
	}
	f.Var().Id(acceptName).Op("=").Index().Bool().Values(flags...)

	f.Commentf("%s reports whether input belongs to the language.", cfg.Name)
	f.Func().Id(cfg.Name).Params(jen.Id("input").String()).Bool().Block(
		jen.Id("state").Op(":=").Lit(start),
		jen.For(jen.List(jen.Id("_"), jen.Id("r")).Op(":=").Range().Id("input")).Block(
			jen.Id("i").Op(":=").Int().Call(jen.Id("r")).Op("-").Lit(int(first)),
			jen.If(jen.Id("i").Op("<").Lit(0).Op("||").Id("i").Op(">=").Lit(width)).Block(
				jen.Return(jen.False()),
			),
			jen.Id("state").Op("=").Id(tableName).Index(jen.Id("state")).Index(jen.Id("i")),
			jen.If(jen.Id("state").Op("<").Lit(0)).Block(
				jen.Return(jen.False()),
			),
		),
		jen.Return(jen.Id(acceptName).Index(jen.Id("state"))),
	)
	return f, nil
}

func unexport(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToLower(r)) + name[size:]
}
