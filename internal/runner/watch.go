package runner

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/donaldgifford/carrylint/internal/lint"
	"github.com/donaldgifford/carrylint/internal/parser"
)

// watch re-lints files as they change until ctx is cancelled. It watches
// the directory of every linted file and every directory named in
// opts.Paths; new source files in those directories are picked up too.
func watch(ctx context.Context, opts *Options, l *linter, reporter *lint.Reporter, files []string) int {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		writeErr(opts.Stderr, "carrylint: starting watcher: %v\n", err)
		return ExitError
	}
	defer w.Close()

	dirs := make(map[string]bool)
	for _, f := range files {
		dirs[filepath.Dir(f)] = true
	}
	for _, p := range opts.Paths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			dirs[filepath.Clean(p)] = true
		}
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			writeErr(opts.Stderr, "carrylint: watching %s: %v\n", dir, err)
			return ExitError
		}
	}

	l.log.WithField("dirs", len(dirs)).Info("watching for changes")

	for {
		select {
		case <-ctx.Done():
			return ExitOK

		case ev, ok := <-w.Events:
			if !ok {
				return ExitOK
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			path := filepath.Clean(ev.Name)
			if !parser.IsSource(path) || excluded(path, l.cfg.Exclude) {
				continue
			}

			diags, err := l.lintFile(ctx, path)
			if err != nil {
				l.log.WithField("file", path).WithError(err).Warn("lint failed")
				continue
			}
			report(reporter, l.log, diags, 1, opts.Stderr)

		case err, ok := <-w.Errors:
			if !ok {
				return ExitOK
			}
			l.log.WithError(err).Warn("watcher error")
		}
	}
}
