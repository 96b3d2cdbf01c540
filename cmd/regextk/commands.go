package main

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	osexec "os/exec"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"

	"regextk/internal/exec"
	"regextk/internal/fa"
	"regextk/internal/gen"
	"regextk/internal/jflap"
	"regextk/internal/regex"
	"regextk/internal/report"
	"regextk/internal/transform"
)

// lineReader hands out one line of user input at a time. io.EOF ends the
// session.
type lineReader interface {
	ReadLine(label string) (string, error)
}

type promptReader struct{}

func (promptReader) ReadLine(label string) (string, error) {
	p := promptui.Prompt{Label: label}
	s, err := p.Run()
	if errors.Is(err, promptui.ErrEOF) || errors.Is(err, promptui.ErrInterrupt) {
		return "", io.EOF
	}
	return s, err
}

type plainReader struct {
	sc *bufio.Scanner
	w  io.Writer
}

func newPlainReader(r io.Reader, w io.Writer) *plainReader {
	return &plainReader{sc: bufio.NewScanner(r), w: w}
}

func (p *plainReader) ReadLine(label string) (string, error) {
	if p.w != nil {
		fmt.Fprintf(p.w, "%s: ", label)
	}
	if !p.sc.Scan() {
		if err := p.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.sc.Text(), nil
}

func readerFor(plain bool) lineReader {
	if plain {
		return newPlainReader(os.Stdin, os.Stdout)
	}
	return promptReader{}
}

func runCheck(e *env, args []string) error {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	plain := fs.Bool("plain", false, "read lines from stdin without an interactive prompt")
	fs.Parse(args)
	style := func(a exec.Answer) string { return a.String() }
	if !*plain {
		style = func(a exec.Answer) string {
			if a == exec.Accept {
				return promptui.Styler(promptui.FGGreen)(a.String())
			}
			return promptui.Styler(promptui.FGRed)(a.String())
		}
	}
	return checkStrings(e, readerFor(*plain), os.Stdout, style)
}

// checkStrings reads a regexp, then classifies each following line until
// "quit". A line holding just ε tests the empty string.
func checkStrings(e *env, in lineReader, out io.Writer, style func(exec.Answer) string) error {
	expr, err := in.ReadLine("Regexp")
	if err != nil {
		return err
	}
	a, err := regex.Parse(expr, e.cfg.RegexOptions...)
	if err != nil {
		return err
	}
	for {
		line, err := in.ReadLine("String")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if line == "quit" {
			return nil
		}
		if line == "ε" {
			line = ""
		}
		answer, err := exec.Run(a, line)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, style(answer))
	}
}

func runEquiv(e *env, args []string) error {
	fs := flag.NewFlagSet("equiv", flag.ExitOnError)
	plain := fs.Bool("plain", false, "read lines from stdin without an interactive prompt")
	fs.Parse(args)

	in := readerFor(*plain)
	first, err := in.ReadLine("First regexp")
	if err != nil {
		return err
	}
	second, err := in.ReadLine("Second regexp")
	if err != nil {
		return err
	}
	_, err = report.CompareRegexps(os.Stdout, first, second, "First", "Second", e.cfg)
	return err
}

func runBatchEquiv(e *env, args []string) error {
	return batchEquiv(e, newPlainReader(os.Stdin, nil), os.Stdout)
}

// batchEquiv compares every line after the first against the first.
func batchEquiv(e *env, in lineReader, out io.Writer) error {
	fmt.Fprint(out, "Master regexp: ")
	master, err := in.ReadLine("Master regexp")
	if err != nil {
		return err
	}
	for {
		r, err := in.ReadLine("R")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if _, err := report.CompareRegexps(out, master, r, "Master", "R", e.cfg); err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
		}
	}
}

func runGrade(e *env, args []string) error {
	fs := flag.NewFlagSet("grade", flag.ExitOnError)
	summary := fs.Bool("summary", false, "print a table of results after grading")
	fs.Parse(args)
	if fs.NArg() < 2 {
		return errors.New("usage: grade [-summary] <solution file> <student file> [<problem>]")
	}
	only := -1
	if fs.NArg() >= 3 {
		n, err := strconv.Atoi(fs.Arg(2))
		if err != nil {
			return fmt.Errorf("problem number: %w", err)
		}
		only = n
	}
	solutions, err := readLines(fs.Arg(0))
	if err != nil {
		return err
	}
	answers, err := readLines(fs.Arg(1))
	if err != nil {
		return err
	}
	grades, err := report.GradeRegexps(os.Stdout, solutions, answers, only, e.cfg)
	if err != nil {
		return err
	}
	e.logger.Info("graded", "problems", len(grades))
	if *summary {
		return report.Summary(os.Stdout, grades)
	}
	return nil
}

func runGradeFA(e *env, args []string) error {
	if len(args) != 2 {
		return errors.New("usage: gradefa <student.jff> <solution.jff>")
	}
	student, features, err := importFile(args[0])
	if err != nil {
		return err
	}
	solution, _, err := importFile(args[1])
	if err != nil {
		return err
	}
	result, err := report.GradeAutomaton(os.Stdout, student, features, solution, e.cfg)
	if err != nil {
		return err
	}
	e.logger.Info("graded automaton", "result", result)
	return nil
}

func runTable(e *env, args []string) error {
	a, err := loadAutomaton(e, flag.NewFlagSet("table", flag.ExitOnError), args)
	if err != nil {
		return err
	}
	return report.TransitionTable(os.Stdout, a)
}

func runDot(e *env, args []string) error {
	fs := flag.NewFlagSet("dot", flag.ExitOnError)
	output := fs.String("o", "", "output file (default stdout)")
	png := fs.Bool("png", false, "render PNG via dot -Tpng into the -o file")
	a, err := loadAutomaton(e, fs, args)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	report.Dot(&buf, a)
	switch {
	case *png:
		if *output == "" {
			return errors.New("dot: -png needs -o")
		}
		cmd := osexec.Command("dot", "-Tpng", "-o", *output)
		cmd.Stdin = bytes.NewReader(buf.Bytes())
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("dot failed: %w", err)
		}
		e.logger.Info("PNG written", "file", *output)
		return nil
	case *output != "":
		return os.WriteFile(*output, buf.Bytes(), 0o644)
	}
	_, err = buf.WriteTo(os.Stdout)
	return err
}

func runGen(e *env, args []string) error {
	fs := flag.NewFlagSet("gen", flag.ExitOnError)
	pkg := fs.String("pkg", "matcher", "package of the generated file")
	name := fs.String("name", "Match", "exported name of the generated function")
	output := fs.String("o", "", "output file (default stdout)")
	fs.Parse(args)
	if fs.NArg() != 1 {
		return errors.New("usage: gen [-pkg p] [-name N] [-o file] <regexp>")
	}
	a, err := regex.Parse(fs.Arg(0), e.cfg.RegexOptions...)
	if err != nil {
		return err
	}
	f, err := gen.Generate(a, gen.Config{Package: *pkg, Name: *name, Opts: e.cfg.Opts})
	if err != nil {
		return err
	}
	if *output == "" {
		return f.Render(os.Stdout)
	}
	return f.Save(*output)
}

// loadAutomaton parses fs and reads its single argument as a .jff file
// path, or else as a regexp.
func loadAutomaton(e *env, fs *flag.FlagSet, args []string) (*fa.Automaton, error) {
	dfa := fs.Bool("dfa", false, "determinize before printing")
	fs.Parse(args)
	if fs.NArg() != 1 {
		return nil, fmt.Errorf("usage: %s [flags] <regexp | file.jff>", fs.Name())
	}
	var (
		a   *fa.Automaton
		err error
	)
	if arg := fs.Arg(0); strings.HasSuffix(arg, ".jff") {
		a, _, err = importFile(arg)
	} else {
		a, err = regex.Parse(arg, e.cfg.RegexOptions...)
	}
	if err != nil {
		return nil, err
	}
	if *dfa && !fa.IsDeterministic(a) {
		return transform.ToDFA(a, e.cfg.Opts)
	}
	return a, nil
}

func importFile(path string) (*fa.Automaton, jflap.Features, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()
	a, features, err := jflap.Import(f)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}
	return a, features, nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}
