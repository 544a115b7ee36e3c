package ternary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/carrylint/internal/config"
	"github.com/donaldgifford/carrylint/internal/lint"
	"github.com/donaldgifford/carrylint/internal/parser"
	"github.com/donaldgifford/carrylint/internal/rules/ternary"
)

func run(t *testing.T, cfg *config.Config, src string) []lint.Diagnostic {
	t.Helper()
	f, err := parser.Parse(t.Context(), []byte(src), parser.TypeScript)
	require.NoError(t, err)
	require.False(t, f.HasErrors)
	return lint.Run("a.ts", f.Root, cfg, []lint.Rule{&ternary.Rule{}})
}

func TestTernary(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		lines []int
	}{
		{name: "single line", src: "const a = x ? 1 : 2;"},
		{name: "broken before question", src: "const a = x\n  ? 1\n  : 2;", lines: []int{1}},
		{name: "broken inside branch", src: "const a = x ? f(\n  1\n) : 2;", lines: []int{1}},
		{name: "nested both multiline", src: "const a = x\n  ? y\n    ? 1\n    : 2\n  : 3;", lines: []int{1, 2}},
		{name: "nested inner single", src: "const a = x\n  ? y ? 1 : 2\n  : 3;", lines: []int{1}},
		{name: "cr line endings", src: "const a = x\r  ? 1\r  : 2;", lines: []int{1}},
		{name: "typed", src: "function f(x: boolean): number {\n  return x ? 1 : 2;\n}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := run(t, config.DefaultConfig(), tt.src)

			var lines []int
			for _, d := range diags {
				assert.Equal(t, ternary.Name, d.Rule)
				assert.Equal(t, ternary.Message, d.Message)
				lines = append(lines, d.Line)
			}
			assert.Equal(t, tt.lines, lines)
		})
	}
}

func TestTernaryDisabled(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Rules.NoMultilineTernary.Enabled = false
	assert.Empty(t, run(t, cfg, "const a = x\n  ? 1\n  : 2;"))
}

func TestTernarySeverity(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Rules.NoMultilineTernary.Severity = "warning"

	diags := run(t, cfg, "const a = x\n  ? 1\n  : 2;")
	require.Len(t, diags, 1)
	assert.Equal(t, lint.SeverityWarning, diags[0].Severity)
	assert.Equal(t, 11, diags[0].Column)
	assert.Equal(t, 3, diags[0].EndLine)
}
