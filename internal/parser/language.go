package parser

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// ErrUnsupportedLanguage is returned for files whose language is not
// JavaScript, TypeScript or TSX.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Language identifies the grammar used to parse a file.
type Language int

const (
	// JavaScript covers .js, .jsx, .mjs and .cjs, JSX included.
	JavaScript Language = iota
	// TypeScript covers .ts, .mts and .cts.
	TypeScript
	// TSX covers .tsx.
	TSX
)

// extensions maps file extensions to their grammar.
var extensions = map[string]Language{
	".js":  JavaScript,
	".jsx": JavaScript,
	".mjs": JavaScript,
	".cjs": JavaScript,
	".ts":  TypeScript,
	".mts": TypeScript,
	".cts": TypeScript,
	".tsx": TSX,
}

// String returns the language name.
func (l Language) String() string {
	switch l {
	case JavaScript:
		return "javascript"
	case TypeScript:
		return "typescript"
	case TSX:
		return "tsx"
	default:
		return "unknown"
	}
}

// DetectLanguage picks the grammar for path from its extension.
func DetectLanguage(path string) (Language, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if lang, ok := extensions[ext]; ok {
		return lang, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, path)
}

// IsSource reports whether path has a lintable extension.
func IsSource(path string) bool {
	_, ok := extensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

func (l Language) grammar() *sitter.Language {
	switch l {
	case TypeScript:
		return typescript.GetLanguage()
	case TSX:
		return tsx.GetLanguage()
	default:
		return javascript.GetLanguage()
	}
}
