package runner

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/donaldgifford/carrylint/internal/lint"
	"github.com/donaldgifford/carrylint/internal/parser"
)

// resultCache keeps the diagnostics of recently linted sources, keyed by
// name, language and content hash. Cached slices are shared and must not be
// modified.
type resultCache struct {
	lru *lru.Cache[string, []lint.Diagnostic]
}

func newResultCache(size int) (*resultCache, error) {
	c, err := lru.New[string, []lint.Diagnostic](size)
	if err != nil {
		return nil, fmt.Errorf("creating result cache: %w", err)
	}
	return &resultCache{lru: c}, nil
}

func (c *resultCache) get(key string) ([]lint.Diagnostic, bool) {
	return c.lru.Get(key)
}

func (c *resultCache) add(key string, diags []lint.Diagnostic) {
	c.lru.Add(key, diags)
}

func (c *resultCache) len() int {
	return c.lru.Len()
}

func cacheKey(name string, lang parser.Language, src []byte) string {
	sum := sha256.Sum256(src)
	return name + "\x00" + lang.String() + "\x00" + hex.EncodeToString(sum[:])
}
