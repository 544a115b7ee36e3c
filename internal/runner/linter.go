package runner

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/donaldgifford/carrylint/internal/config"
	"github.com/donaldgifford/carrylint/internal/lint"
	"github.com/donaldgifford/carrylint/internal/parser"
)

// linter lints sources with a fixed config and rule set. It is safe for
// concurrent use.
type linter struct {
	cfg   *config.Config
	rules []lint.Rule
	log   *logrus.Logger
	cache *resultCache
}

func newLinter(cfg *config.Config, rules []lint.Rule, log *logrus.Logger, cacheSize int) (*linter, error) {
	cache, err := newResultCache(cacheSize)
	if err != nil {
		return nil, err
	}
	return &linter{cfg: cfg, rules: rules, log: log, cache: cache}, nil
}

// lintSource parses and lints src. name is used in diagnostics.
func (l *linter) lintSource(ctx context.Context, name string, src []byte, lang parser.Language) ([]lint.Diagnostic, error) {
	entry := l.log.WithFields(logrus.Fields{"file": name, "lang": lang.String()})

	key := cacheKey(name, lang, src)
	if diags, ok := l.cache.get(key); ok {
		entry.WithField("diagnostics", len(diags)).Debug("cached")
		return diags, nil
	}

	file, err := parser.Parse(ctx, src, lang)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if file.HasErrors {
		entry.Warn("source has syntax errors; diagnostics may be incomplete")
	}

	diags := lint.Run(name, file.Root, l.cfg, l.rules)
	l.cache.add(key, diags)

	entry.WithField("diagnostics", len(diags)).Debug("linted")
	return diags, nil
}

// lintFile reads and lints the file at path.
func (l *linter) lintFile(ctx context.Context, path string) ([]lint.Diagnostic, error) {
	lang, err := parser.DetectLanguage(path)
	if err != nil {
		return nil, err
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return l.lintSource(ctx, path, src, lang)
}

// lintFiles lints paths with at most jobs files in flight. Results and
// errors are indexed like paths; a failing file does not stop the others.
func (l *linter) lintFiles(ctx context.Context, paths []string, jobs int) ([][]lint.Diagnostic, []error) {
	results := make([][]lint.Diagnostic, len(paths))
	errs := make([]error, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			results[i], errs[i] = l.lintFile(gctx, path)
			return nil
		})
	}

	// Workers record their own errors; Wait cannot fail.
	_ = g.Wait()
	return results, errs
}
