// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package texel

import (
	"nickandperla.net/texel/internal/cache"
	"nickandperla.net/texel/internal/theme"
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithMaxDepth overrides the parser recursion limit. Nesting past the
// limit collapses to empty output with a TooDeep diagnostic instead of
// overflowing the stack.
func WithMaxDepth(n int) Option {
	return func(r *Renderer) {
		if n >= 1 {
			r.maxDepth = n
		}
	}
}

// WithMemoryCache memoizes rendered math in memory for the lifetime of
// the Renderer.
func WithMemoryCache() Option {
	return func(r *Renderer) {
		r.store = cache.NewMemory()
	}
}

// WithSQLiteCache persists rendered math at the given path, reused
// across runs. A cache that fails to open is skipped silently; caching
// is an optimization, never a requirement.
func WithSQLiteCache(path string) Option {
	return func(r *Renderer) {
		s, err := cache.NewSQLite(path)
		if err == nil {
			r.store = s
		}
	}
}

// WithTheme selects a named theme for markdown output.
func WithTheme(name string) Option {
	return func(r *Renderer) {
		r.styles = theme.ByName(name)
	}
}

// WithNoColor disables all styling of markdown output. Math boxes are
// always plain text.
func WithNoColor() Option {
	return func(r *Renderer) {
		r.styles = theme.Plain()
	}
}
