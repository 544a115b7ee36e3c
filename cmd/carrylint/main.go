// Package main is the entry point for carrylint.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	_ "github.com/donaldgifford/carrylint/internal/rules" // Register rules via init().
	"github.com/donaldgifford/carrylint/internal/runner"
)

// Build-time variables set via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	format := flag.String("format", "text", "output format: text or json")
	jobs := flag.Int("j", 0, "number of files linted in parallel (default GOMAXPROCS)")
	quiet := flag.Bool("q", false, "only log errors")
	verbose := flag.Bool("v", false, "log every file as it is processed")
	watch := flag.Bool("watch", false, "keep running and re-lint files when they change")
	stdinFilename := flag.String("stdin-filename", "", "file name used for stdin input; selects the language")
	ruleNames := flag.String("rules", "", "comma-separated rule names to run (default all)")
	listRules := flag.Bool("list-rules", false, "print the available rules and exit")
	showVersion := flag.Bool("version", false, "print version and exit")

	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Printf("carrylint %s (%s) %s\n", version, commit, date)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	opts := &runner.Options{
		Paths:         flag.Args(),
		ConfigPath:    *configPath,
		Format:        *format,
		Jobs:          *jobs,
		Quiet:         *quiet,
		Verbose:       *verbose,
		Watch:         *watch,
		StdinFilename: *stdinFilename,
		Rules:         splitList(*ruleNames),
		ListRules:     *listRules,
	}

	code := runner.Run(ctx, opts)
	stop()
	os.Exit(code)
}

// splitList splits a comma-separated flag value, dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: carrylint [flags] [paths...]

Lint object literal and ternary layout in JavaScript and TypeScript files.
Directories are searched recursively. With no paths, reads from stdin.

Flags:
`)
	flag.PrintDefaults()
}
