package patterns

import (
	"fmt"
	"strings"
	"sync"

	oerrors "github.com/rampx/cli/internal/errors"
)

// Registry is an immutable lookup table of patterns per project type.
// Patterns keep their insertion order.
type Registry struct {
	byType map[ProjectType][]Pattern
}

// New builds a registry from the given patterns. It panics on an unknown
// type, a duplicate key within a type, or more than one recommended pattern
// per type: all of these are static configuration mistakes.
func New(entries ...Pattern) *Registry {
	r := &Registry{byType: make(map[ProjectType][]Pattern)}
	for _, p := range entries {
		if !p.Type.IsValid() {
			panic(fmt.Sprintf("patterns: unknown project type %q", p.Type))
		}
		for _, existing := range r.byType[p.Type] {
			if existing.Key == p.Key {
				panic(fmt.Sprintf("patterns: duplicate pattern %s/%s", p.Type, p.Key))
			}
			if existing.Recommended && p.Recommended {
				panic(fmt.Sprintf("patterns: %s has more than one recommended pattern", p.Type))
			}
		}
		r.byType[p.Type] = append(r.byType[p.Type], p)
	}
	return r
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the built-in registry. It is constructed once and never
// mutated afterwards.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = New(builtin...)
	})
	return defaultRegistry
}

// List returns the patterns for t in insertion order. The returned slice is
// a copy; callers may modify it freely.
func (r *Registry) List(t ProjectType) []Pattern {
	src := r.byType[t]
	out := make([]Pattern, len(src))
	copy(out, src)
	return out
}

// Keys returns the pattern keys for t in insertion order.
func (r *Registry) Keys(t ProjectType) []string {
	keys := make([]string, 0, len(r.byType[t]))
	for _, p := range r.byType[t] {
		keys = append(keys, p.Key)
	}
	return keys
}

// Get returns the pattern with the given key.
func (r *Registry) Get(t ProjectType, key string) (Pattern, bool) {
	for _, p := range r.byType[t] {
		if p.Key == key {
			return p, true
		}
	}
	return Pattern{}, false
}

// First returns the first pattern of t in registry order.
func (r *Registry) First(t ProjectType) (Pattern, bool) {
	ps := r.byType[t]
	if len(ps) == 0 {
		return Pattern{}, false
	}
	return ps[0], true
}

// Recommended returns the pattern marked recommended for t, or the first
// pattern when none is marked. The boolean is false only when t has no
// patterns at all.
func (r *Registry) Recommended(t ProjectType) (Pattern, bool) {
	for _, p := range r.byType[t] {
		if p.Recommended {
			return p, true
		}
	}
	return r.First(t)
}

// Lookup is Get with a user-facing validation error listing the available
// patterns and their descriptions.
func (r *Registry) Lookup(t ProjectType, key string) (Pattern, error) {
	if p, ok := r.Get(t, key); ok {
		return p, nil
	}

	var hint strings.Builder
	hint.WriteString("Available patterns for ")
	hint.WriteString(string(t))
	hint.WriteString(":")
	for _, p := range r.byType[t] {
		hint.WriteString("\n  • ")
		hint.WriteString(p.Key)
		hint.WriteString(" - ")
		hint.WriteString(p.Description)
	}

	return Pattern{}, oerrors.NewValidationError(
		fmt.Sprintf("invalid pattern %q for %s", key, t),
		"pattern",
		hint.String(),
	)
}
