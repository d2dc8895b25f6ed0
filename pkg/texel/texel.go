// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package texel provides the public API for rendering LaTeX-style math
// and markdown to multi-line Unicode terminal text.
package texel

import (
	"nickandperla.net/texel/internal/cache"
	"nickandperla.net/texel/internal/layout"
	"nickandperla.net/texel/internal/markdown"
	"nickandperla.net/texel/internal/parser"
	"nickandperla.net/texel/internal/theme"
)

// Diagnostic describes a problem tolerated during a render.
type Diagnostic = parser.Diagnostic

// Renderer renders math expressions and markdown documents. Parsing
// carries no shared state, but the Renderer retains the diagnostics of
// the most recent Render, so concurrent callers should use separate
// Renderers.
type Renderer struct {
	maxDepth int
	store    cache.Store
	styles   *theme.Styles
	diags    []Diagnostic
}

// New creates a Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		maxDepth: parser.DefaultMaxDepth,
		styles:   theme.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render renders one math expression, delimiters already stripped, to
// newline-joined multi-line text. It never fails: malformed input
// degrades to best-effort output and problems are recorded as
// diagnostics.
func (r *Renderer) Render(expr string) string {
	if r.store != nil {
		if out, ok, err := r.store.Get(expr); err == nil && ok {
			r.diags = nil
			return out
		}
	}

	p := parser.New(expr)
	p.SetMaxDepth(r.maxDepth)
	node := p.Parse()
	r.diags = p.Diagnostics()

	out := layout.Render(node).String()
	if r.store != nil {
		// Caching is an optimization; a failed write is not a render
		// failure.
		_ = r.store.Put(expr, out)
	}
	return out
}

// RenderDocument renders a markdown document, delegating math spans to
// Render. Display spans keep every output row; inline spans whose box
// is taller than one row are promoted to blocks of their own.
func (r *Renderer) RenderDocument(doc string) string {
	md := markdown.New(r.styles, r.Render)
	return md.Render(doc)
}

// Diagnostics returns the problems recorded by the most recent Render.
// A nil result means the input was clean.
func (r *Renderer) Diagnostics() []Diagnostic {
	return r.diags
}

// Close releases the render cache, if any.
func (r *Renderer) Close() error {
	if r.store != nil {
		return r.store.Close()
	}
	return nil
}

// Render renders a math expression with default settings.
func Render(expr string) string {
	return New().Render(expr)
}
