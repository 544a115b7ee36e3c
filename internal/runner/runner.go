// Package runner orchestrates the discover -> parse -> lint -> report pipeline.
package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/sirupsen/logrus"

	"github.com/donaldgifford/carrylint/internal/config"
	"github.com/donaldgifford/carrylint/internal/lint"
	"github.com/donaldgifford/carrylint/internal/logging"
	"github.com/donaldgifford/carrylint/internal/parser"
	"github.com/donaldgifford/carrylint/internal/rules"
)

// Exit codes.
const (
	ExitOK         = 0
	ExitViolations = 1
	ExitError      = 2
)

// cacheSize bounds the number of per-file results kept between watch
// iterations.
const cacheSize = 1024

// Options configures the runner behavior.
type Options struct {
	Paths         []string // Files and directories; stdin when empty.
	ConfigPath    string
	Format        string // text or json.
	Jobs          int    // Parallel files; GOMAXPROCS when zero.
	Quiet         bool
	Verbose       bool
	Watch         bool
	StdinFilename string   // Name (and language) used for stdin input.
	Rules         []string // Rule names to run; all registered rules when empty.
	ListRules     bool
	Stdin         io.Reader
	Stdout        io.Writer
	Stderr        io.Writer
}

// Run executes the lint pipeline and returns an exit code. In watch mode it
// blocks until ctx is cancelled.
func Run(ctx context.Context, opts *Options) int {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Jobs <= 0 {
		opts.Jobs = runtime.GOMAXPROCS(0)
	}

	if opts.ListRules {
		return listRules(opts.Stdout)
	}

	selected, err := selectRules(opts.Rules)
	if err != nil {
		writeErr(opts.Stderr, "carrylint: %v\n", err)
		return ExitError
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		writeErr(opts.Stderr, "carrylint: %v\n", err)
		return ExitError
	}

	log, err := logging.New(cfg.Logging, opts.Stderr)
	if err != nil {
		writeErr(opts.Stderr, "carrylint: %v\n", err)
		return ExitError
	}
	switch {
	case opts.Verbose:
		log.SetLevel(logrus.DebugLevel)
	case opts.Quiet:
		log.SetLevel(logrus.ErrorLevel)
	}

	format, err := lint.ParseFormat(opts.Format)
	if err != nil {
		writeErr(opts.Stderr, "carrylint: %v\n", err)
		return ExitError
	}
	reporter := lint.NewReporter(opts.Stdout, format)

	l, err := newLinter(cfg, selected, log, cacheSize)
	if err != nil {
		writeErr(opts.Stderr, "carrylint: %v\n", err)
		return ExitError
	}

	if len(opts.Paths) == 0 {
		return runStdin(ctx, opts, l, reporter)
	}

	files, err := collectFiles(opts.Paths, cfg.Exclude)
	if err != nil {
		writeErr(opts.Stderr, "carrylint: %v\n", err)
		return ExitError
	}

	code := runFiles(ctx, opts, l, reporter, files)
	if opts.Watch {
		return watch(ctx, opts, l, reporter, files)
	}
	return code
}

func runStdin(ctx context.Context, opts *Options, l *linter, reporter *lint.Reporter) int {
	src, err := io.ReadAll(opts.Stdin)
	if err != nil {
		writeErr(opts.Stderr, "carrylint: reading stdin: %v\n", err)
		return ExitError
	}

	name := opts.StdinFilename
	lang := parser.JavaScript
	if name == "" {
		name = "<stdin>"
	} else if lang, err = parser.DetectLanguage(name); err != nil {
		writeErr(opts.Stderr, "carrylint: %v\n", err)
		return ExitError
	}

	diags, err := l.lintSource(ctx, name, src, lang)
	if err != nil {
		writeErr(opts.Stderr, "carrylint: %v\n", err)
		return ExitError
	}
	return report(reporter, l.log, diags, 1, opts.Stderr)
}

func runFiles(ctx context.Context, opts *Options, l *linter, reporter *lint.Reporter, files []string) int {
	results, errs := l.lintFiles(ctx, files, opts.Jobs)

	var all []lint.Diagnostic
	failed := false
	for i := range files {
		if errs[i] != nil {
			writeErr(opts.Stderr, "carrylint: %v\n", errs[i])
			failed = true
			continue
		}
		all = append(all, results[i]...)
	}

	code := report(reporter, l.log, all, len(files), opts.Stderr)
	if failed {
		return ExitError
	}
	return code
}

// report writes diags and returns the exit code they imply.
func report(reporter *lint.Reporter, log *logrus.Logger, diags []lint.Diagnostic, files int, stderr io.Writer) int {
	if err := reporter.Report(diags); err != nil {
		writeErr(stderr, "carrylint: %v\n", err)
		return ExitError
	}

	summary := lint.Summarize(diags)
	log.WithFields(logrus.Fields{
		"files":   files,
		"summary": summary.String(),
	}).Info("lint finished")

	if summary.Errors > 0 {
		return ExitViolations
	}
	return ExitOK
}

// selectRules resolves rule names against the registry. Named rules run in
// the order given.
func selectRules(names []string) ([]lint.Rule, error) {
	if len(names) == 0 {
		return rules.Rules(), nil
	}

	selected := make([]lint.Rule, 0, len(names))
	for _, name := range names {
		r, ok := rules.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown rule: %q", name)
		}
		selected = append(selected, r)
	}
	return selected, nil
}

// listRules prints every registered rule with its description.
func listRules(w io.Writer) int {
	for _, r := range rules.Rules() {
		fmt.Fprintf(w, "%-28s %s\n", r.Name(), r.Description())
	}
	return ExitOK
}

// writeErr formats and writes to stderr.
func writeErr(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format, args...)
}
