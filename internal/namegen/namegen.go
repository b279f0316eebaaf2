// Package namegen expands naming patterns into candidate basenames
// for filesystem artifacts.
//
// A pattern contains at most one '*' wildcard.
// Each candidate substitutes a fresh random token for the wildcard,
// so that independent callers expanding the same pattern
// almost never produce the same name.
package namegen

import (
	"crypto/rand"
	"encoding/base64"
	"os"
	"strings"

	"go.abhg.dev/fs/scratch/internal/must"
)

// Number of random bytes drawn per candidate.
// Encodes to 11 characters of base64.
const _tokenSize = 8

// Replaced in tests to make candidates deterministic.
var _randRead = rand.Read

// Generator produces a bounded sequence of candidate basenames
// from a naming pattern.
//
// Generators are cheap to construct and intended to live for
// a single create call. A Generator must not be shared
// between goroutines.
type Generator struct {
	prefix string
	suffix string

	// Reused across Next calls to assemble the candidate.
	buf []byte

	remaining int
}

// New builds a Generator that will produce up to limit candidates
// from the given pattern.
//
// The last '*' in pattern is replaced by a random token in each
// candidate. If pattern contains no '*', the token is appended
// after it.
//
// The pattern must not contain a path separator,
// and limit must be positive.
// Violating either is a programmer error and panics.
func New(pattern string, limit int) *Generator {
	for i := 0; i < len(pattern); i++ {
		must.NotBef(os.IsPathSeparator(pattern[i]),
			"pattern %q must not contain a path separator", pattern)
	}
	must.BeGreaterThanf(limit, 0, "limit must be positive, got %d", limit)

	prefix, suffix := pattern, ""
	if idx := strings.LastIndexByte(pattern, '*'); idx >= 0 {
		prefix, suffix = pattern[:idx], pattern[idx+1:]
	}

	return &Generator{
		prefix:    prefix,
		suffix:    suffix,
		buf:       make([]byte, 0, len(prefix)+base64.RawURLEncoding.EncodedLen(_tokenSize)+len(suffix)),
		remaining: limit,
	}
}

// Next returns the next candidate basename.
// It returns false once the generator's limit has been reached.
//
// The token is encoded with URL-safe base64 without padding:
// the result never contains a path separator or a '*'.
func (g *Generator) Next() (string, bool) {
	if g.remaining <= 0 {
		return "", false
	}
	g.remaining--

	var token [_tokenSize]byte
	_, _ = _randRead(token[:])

	g.buf = g.buf[:0]
	g.buf = append(g.buf, g.prefix...)
	g.buf = base64.RawURLEncoding.AppendEncode(g.buf, token[:])
	g.buf = append(g.buf, g.suffix...)
	return string(g.buf), true
}
