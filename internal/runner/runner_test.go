package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/carrylint/internal/config"
	"github.com/donaldgifford/carrylint/internal/logging"
	"github.com/donaldgifford/carrylint/internal/parser"
	"github.com/donaldgifford/carrylint/internal/rules"
)

const (
	cleanSrc = "const a = { b: 1, c: 2 };\n"
	badSrc   = "const a = { b: 1, c: 2, d: 3, e: 4 };\n"
	badMsg   = "[object-properties-carrying] an object in single line must contain not more than 3 properties"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestRunViolations(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.js")
	writeFile(t, path, badSrc)

	var stdout, stderr bytes.Buffer
	code := Run(t.Context(), &Options{
		Paths:  []string{path},
		Stdout: &stdout,
		Stderr: &stderr,
	})

	assert.Equal(t, ExitViolations, code)
	assert.Equal(t, path+":1:11 "+badMsg+"\n", stdout.String())
	assert.Contains(t, stderr.String(), "lint finished")
	assert.Contains(t, stderr.String(), `summary="1 error, 0 warnings"`)
}

func TestRunClean(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "good.ts")
	writeFile(t, path, cleanSrc)

	var stdout, stderr bytes.Buffer
	code := Run(t.Context(), &Options{
		Paths:  []string{path},
		Quiet:  true,
		Stdout: &stdout,
		Stderr: &stderr,
	})

	assert.Equal(t, ExitOK, code)
	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String(), "quiet run logs nothing")
}

func TestRunDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.js"), badSrc)
	writeFile(t, filepath.Join(dir, "sub", "b.tsx"), badSrc)
	writeFile(t, filepath.Join(dir, "node_modules", "dep", "c.js"), badSrc)
	writeFile(t, filepath.Join(dir, "README.md"), "# readme\n")

	var stdout, stderr bytes.Buffer
	code := Run(t.Context(), &Options{
		Paths:  []string{dir},
		Jobs:   2,
		Stdout: &stdout,
		Stderr: &stderr,
	})

	assert.Equal(t, ExitViolations, code)
	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], filepath.Join(dir, "a.js")+":"))
	assert.True(t, strings.HasPrefix(lines[1], filepath.Join(dir, "sub", "b.tsx")+":"))
}

func TestRunJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.js")
	writeFile(t, path, badSrc)

	var stdout, stderr bytes.Buffer
	code := Run(t.Context(), &Options{
		Paths:  []string{path},
		Format: "json",
		Stdout: &stdout,
		Stderr: &stderr,
	})
	assert.Equal(t, ExitViolations, code)

	var out struct {
		Diagnostics []struct {
			File     string `json:"file"`
			Line     int    `json:"line"`
			Rule     string `json:"rule"`
			Severity string `json:"severity"`
		} `json:"diagnostics"`
		Summary struct {
			Errors int `json:"errors"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
	require.Len(t, out.Diagnostics, 1)
	assert.Equal(t, path, out.Diagnostics[0].File)
	assert.Equal(t, "object-properties-carrying", out.Diagnostics[0].Rule)
	assert.Equal(t, "error", out.Diagnostics[0].Severity)
	assert.Equal(t, 1, out.Summary.Errors)
}

func TestRunStdin(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run(t.Context(), &Options{
		Stdin:  strings.NewReader(badSrc),
		Stdout: &stdout,
		Stderr: &stderr,
	})

	assert.Equal(t, ExitViolations, code)
	assert.Equal(t, "<stdin>:1:11 "+badMsg+"\n", stdout.String())
}

func TestRunStdinFilename(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run(t.Context(), &Options{
		StdinFilename: "src/app.ts",
		Stdin:         strings.NewReader("const v: number = x\n  ? 1\n  : 2;\n"),
		Stdout:        &stdout,
		Stderr:        &stderr,
	})

	assert.Equal(t, ExitViolations, code)
	assert.Equal(t, "src/app.ts:1:19 [no-multiline-ternary] Ternary operators must be written in one line\n", stdout.String())
}

func TestRunStdinUnsupportedFilename(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run(t.Context(), &Options{
		StdinFilename: "main.go",
		Stdin:         strings.NewReader(""),
		Stdout:        &stdout,
		Stderr:        &stderr,
	})

	assert.Equal(t, ExitError, code)
	assert.Contains(t, stderr.String(), "unsupported language")
}

func TestRunWarningsExitZero(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "carrylint.yml")
	writeFile(t, cfgPath, "rules:\n  object-properties-carrying:\n    severity: warning\n")
	path := filepath.Join(dir, "bad.js")
	writeFile(t, path, badSrc)

	var stdout, stderr bytes.Buffer
	code := Run(t.Context(), &Options{
		Paths:      []string{path},
		ConfigPath: cfgPath,
		Stdout:     &stdout,
		Stderr:     &stderr,
	})

	assert.Equal(t, ExitOK, code)
	assert.Contains(t, stdout.String(), badMsg)
}

func TestRunExclude(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "carrylint.yml")
	writeFile(t, cfgPath, "exclude:\n  - \"**/generated/**\"\n  - \"*.min.js\"\n")
	writeFile(t, filepath.Join(dir, "generated", "api.js"), badSrc)
	writeFile(t, filepath.Join(dir, "vendor.min.js"), badSrc)
	writeFile(t, filepath.Join(dir, "ok.js"), cleanSrc)

	var stdout, stderr bytes.Buffer
	code := Run(t.Context(), &Options{
		Paths:      []string{dir, filepath.Join(dir, "vendor.min.js")},
		ConfigPath: cfgPath,
		Stdout:     &stdout,
		Stderr:     &stderr,
	})

	assert.Equal(t, ExitOK, code)
	assert.Empty(t, stdout.String())
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.js")
	writeFile(t, path, badSrc)

	tests := []struct {
		name string
		opts Options
		want string
	}{
		{
			name: "missing path",
			opts: Options{Paths: []string{filepath.Join(dir, "nope.js")}},
			want: "nope.js",
		},
		{
			name: "unknown format",
			opts: Options{Paths: []string{path}, Format: "xml"},
			want: "unsupported format",
		},
		{
			name: "missing config",
			opts: Options{Paths: []string{path}, ConfigPath: filepath.Join(dir, "missing.yml")},
			want: "config file not found",
		},
		{
			name: "unsupported file",
			opts: Options{Paths: []string{filepath.Join(dir, "notes.txt")}},
			want: "unsupported language",
		},
	}
	writeFile(t, filepath.Join(dir, "notes.txt"), "hello\n")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			opts := tt.opts
			opts.Stdout = &stdout
			opts.Stderr = &stderr

			assert.Equal(t, ExitError, Run(t.Context(), &opts))
			assert.Contains(t, stderr.String(), tt.want)
		})
	}
}

func TestRunListRules(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run(t.Context(), &Options{
		ListRules: true,
		Stdout:    &stdout,
		Stderr:    &stderr,
	})

	assert.Equal(t, ExitOK, code)
	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "object-properties-carrying "))
	assert.Contains(t, lines[0], "one short line or sit one per line")
	assert.True(t, strings.HasPrefix(lines[1], "no-multiline-ternary "))
}

func TestRunSelectedRules(t *testing.T) {
	src := badSrc + "const v = x\n  ? 1\n  : 2;\n"

	var stdout, stderr bytes.Buffer
	code := Run(t.Context(), &Options{
		Rules:  []string{"no-multiline-ternary"},
		Stdin:  strings.NewReader(src),
		Stdout: &stdout,
		Stderr: &stderr,
	})

	assert.Equal(t, ExitViolations, code)
	assert.Equal(t, "<stdin>:2:11 [no-multiline-ternary] Ternary operators must be written in one line\n", stdout.String())
}

func TestRunUnknownRule(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run(t.Context(), &Options{
		Rules:  []string{"no-such-rule"},
		Stdin:  strings.NewReader(badSrc),
		Stdout: &stdout,
		Stderr: &stderr,
	})

	assert.Equal(t, ExitError, code)
	assert.Contains(t, stderr.String(), `unknown rule: "no-such-rule"`)
	assert.Empty(t, stdout.String())
}

func TestRunVerbose(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "good.js")
	writeFile(t, path, cleanSrc)

	var stdout, stderr bytes.Buffer
	code := Run(t.Context(), &Options{
		Paths:   []string{path},
		Verbose: true,
		Stdout:  &stdout,
		Stderr:  &stderr,
	})

	assert.Equal(t, ExitOK, code)
	assert.Contains(t, stderr.String(), "level=debug msg=linted")
	assert.Contains(t, stderr.String(), "file="+path)
}

func TestCollectFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.ts"), "")
	writeFile(t, filepath.Join(dir, "a.js"), "")
	writeFile(t, filepath.Join(dir, "style.css"), "")
	writeFile(t, filepath.Join(dir, ".git", "hook.js"), "")
	writeFile(t, filepath.Join(dir, "lib", "c.mjs"), "")
	writeFile(t, filepath.Join(dir, "lib", "skip.test.js"), "")

	files, err := collectFiles(
		[]string{filepath.Join(dir, "b.ts"), dir},
		[]string{"*.test.js"},
	)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "b.ts"),
		filepath.Join(dir, "a.js"),
		filepath.Join(dir, "lib", "c.mjs"),
	}, files)
}

func TestExcluded(t *testing.T) {
	patterns := []string{"**/node_modules/**", "dist/*.js", "*.gen.ts"}

	assert.True(t, excluded("web/node_modules/x/index.js", patterns))
	assert.True(t, excluded("dist/app.js", patterns))
	assert.True(t, excluded("src/api.gen.ts", patterns))
	assert.False(t, excluded("dist/sub/app.js", patterns))
	assert.False(t, excluded("src/app.ts", patterns))
	assert.False(t, excluded("src/app.ts", nil))
}

func TestLinterCache(t *testing.T) {
	l, err := newLinter(config.DefaultConfig(), rules.Rules(), logging.Discard(), 8)
	require.NoError(t, err)

	first, err := l.lintSource(t.Context(), "a.js", []byte(badSrc), parser.JavaScript)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, 1, l.cache.len())

	second, err := l.lintSource(t.Context(), "a.js", []byte(badSrc), parser.JavaScript)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, l.cache.len())

	_, err = l.lintSource(t.Context(), "a.js", []byte(cleanSrc), parser.JavaScript)
	require.NoError(t, err)
	assert.Equal(t, 2, l.cache.len())
}

func TestCacheKey(t *testing.T) {
	src := []byte(cleanSrc)
	assert.Equal(t, cacheKey("a.js", parser.JavaScript, src), cacheKey("a.js", parser.JavaScript, src))
	assert.NotEqual(t, cacheKey("a.js", parser.JavaScript, src), cacheKey("b.js", parser.JavaScript, src))
	assert.NotEqual(t, cacheKey("a.js", parser.JavaScript, src), cacheKey("a.js", parser.TypeScript, src))
	assert.NotEqual(t, cacheKey("a.js", parser.JavaScript, src), cacheKey("a.js", parser.JavaScript, []byte(badSrc)))
}

func TestLintFilesKeepsGoing(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.js")
	bad := filepath.Join(dir, "bad.js")
	writeFile(t, good, cleanSrc)
	writeFile(t, bad, badSrc)
	missing := filepath.Join(dir, "missing.js")

	l, err := newLinter(config.DefaultConfig(), rules.Rules(), logging.Discard(), 8)
	require.NoError(t, err)

	results, errs := l.lintFiles(t.Context(), []string{good, missing, bad}, 2)
	require.Len(t, results, 3)
	require.NoError(t, errs[0])
	require.Error(t, errs[1])
	require.NoError(t, errs[2])
	assert.Empty(t, results[0])
	assert.Len(t, results[2], 1)
}

// syncBuffer is a bytes.Buffer safe for the concurrent writes of a watch
// run and the reads of the test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestRunWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.js")
	writeFile(t, path, cleanSrc)

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	var stdout, stderr syncBuffer
	done := make(chan int, 1)
	go func() {
		done <- Run(ctx, &Options{
			Paths:  []string{dir},
			Watch:  true,
			Stdout: &stdout,
			Stderr: &stderr,
		})
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(stderr.String(), "watching for changes")
	}, 5*time.Second, 10*time.Millisecond)
	assert.Empty(t, stdout.String())

	writeFile(t, path, badSrc)
	require.Eventually(t, func() bool {
		return strings.Contains(stdout.String(), path+":1:11 "+badMsg)
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case code := <-done:
		assert.Equal(t, ExitOK, code)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}
