package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"sort"
	"unicode/utf8"

	"regextk/internal/regex"
	"regextk/internal/report"
	"regextk/internal/transform"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// env carries the settings shared by every command.
type env struct {
	cfg    report.Config
	logger *slog.Logger
}

type command struct {
	summary string
	run     func(e *env, args []string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"help":       {"print usage information", func(*env, []string) error { usage(); return nil }},
		"check":      {"enter a regexp and use it to classify strings", runCheck},
		"equiv":      {"enter two regexps, determine if they're equivalent", runEquiv},
		"batchequiv": {"like equiv, but for multiple regexps read from stdin", runBatchEquiv},
		"grade":      {"grade regexps: <solution file> <student file> [<problem>]", runGrade},
		"gradefa":    {"grade a JFLAP automaton: <student.jff> <solution.jff>", runGradeFA},
		"table":      {"print the transition table of a regexp or .jff automaton", runTable},
		"dot":        {"print a Graphviz graph of a regexp or .jff automaton", runDot},
		"gen":        {"generate a Go matcher function for a regexp", runGen},
	}
}

func main() {
	logLevel := flag.String("log-level", getEnv("REGEXTK_LOG_LEVEL", "warn"), "debug|info|warn|error")
	alias := flag.String("epsilon-alias", "", "character that also stands for ε in regexps (e.g. e)")
	examples := flag.Int("examples", report.DefaultExamples, "example strings shown per difference")
	maxStates := flag.Int("max-dfa-states", transform.DefaultMaxDFAStates, "bound on states built by subset construction (-1 for none)")
	flag.Usage = usage
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(*logLevel),
	}))
	slog.SetDefault(logger)

	if flag.NArg() == 0 {
		usage()
		os.Exit(1)
	}
	name := flag.Arg(0)
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", name)
		usage()
		os.Exit(1)
	}

	e := &env{logger: logger}
	e.cfg.Examples = *examples
	e.cfg.Opts = transform.Options{MaxDFAStates: *maxStates, Logger: logger}
	if *alias != "" {
		r, size := utf8.DecodeRuneInString(*alias)
		if size != len(*alias) {
			log.Fatalf("-epsilon-alias must be a single character, got %q", *alias)
		}
		e.cfg.RegexOptions = append(e.cfg.RegexOptions, regex.WithEpsilonAlias(r))
	}

	logger.Debug("running command", "command", name, "version", Version)
	if err := cmd.run(e, flag.Args()[1:]); err != nil {
		log.Fatal(err)
	}
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "usage: %s [flags] <command> [args]\n", os.Args[0])
	fmt.Fprintln(out, "Commands are:")
	names := make([]string, 0, len(commands))
	for n := range commands {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintf(out, "  %-10s - %s\n", n, commands[n].summary)
	}
	fmt.Fprintln(out, "Flags:")
	flag.PrintDefaults()
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
