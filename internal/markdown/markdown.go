// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package markdown renders markdown to styled terminal text, line by
// line. Math spans are delegated to a MathFunc: $$...$$ blocks keep
// every output row, and $...$ spans are inlined when the result is one
// row high, otherwise promoted to a block of their own.
package markdown

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"nickandperla.net/texel/internal/theme"
)

// MathFunc renders a math expression to (possibly multi-line) text.
type MathFunc func(expr string) string

// Renderer renders markdown documents.
type Renderer struct {
	styles *theme.Styles
	math   MathFunc
}

// New creates a Renderer with the given styles and math renderer.
func New(styles *theme.Styles, math MathFunc) *Renderer {
	if styles == nil {
		styles = theme.Plain()
	}
	return &Renderer{styles: styles, math: math}
}

// Render renders a whole document.
func (r *Renderer) Render(doc string) string {
	lines := strings.Split(doc, "\n")
	var out []string

	for i := 0; i < len(lines); {
		trimmed := strings.TrimSpace(lines[i])

		switch {
		case strings.HasPrefix(trimmed, "```"):
			n, block := r.codeFence(lines[i:])
			out = append(out, block...)
			i += n

		case strings.HasPrefix(trimmed, "$$"):
			n, block := r.displayMath(lines[i:])
			out = append(out, block...)
			i += n

		case isTableLine(trimmed):
			n, block := r.table(lines[i:])
			out = append(out, block...)
			i += n

		default:
			out = append(out, r.line(lines[i])...)
			i++
		}
	}
	return strings.Join(out, "\n")
}

// codeFence collects a fenced block verbatim, styled as code.
func (r *Renderer) codeFence(lines []string) (int, []string) {
	out := []string{}
	for i := 1; i < len(lines); i++ {
		if strings.HasPrefix(strings.TrimSpace(lines[i]), "```") {
			return i + 1, out
		}
		out = append(out, r.styles.CodeBlock.Render(lines[i]))
	}
	return len(lines), out
}

// displayMath collects a $$...$$ span, which may cover several source
// lines, and reproduces every rendered row.
func (r *Renderer) displayMath(lines []string) (int, []string) {
	first := strings.TrimSpace(lines[0])
	body := strings.TrimPrefix(first, "$$")
	consumed := 1
	tail := ""

	if closing := strings.Index(body, "$$"); closing >= 0 {
		tail = body[closing+2:]
		body = body[:closing]
	} else {
		for consumed < len(lines) {
			line := strings.TrimSpace(lines[consumed])
			consumed++
			if end := strings.Index(line, "$$"); end >= 0 {
				body += " " + line[:end]
				tail = line[end+2:]
				break
			}
			body += " " + line
		}
	}

	rendered := r.math(strings.TrimSpace(body))
	var out []string
	for _, row := range strings.Split(rendered, "\n") {
		out = append(out, r.styles.Math.Render(row))
	}
	if tail = strings.TrimSpace(tail); tail != "" {
		out = append(out, r.line(tail)...)
	}
	return consumed, out
}

// line classifies and renders a single non-block line.
func (r *Renderer) line(line string) []string {
	trimmed := strings.TrimSpace(line)

	switch {
	case trimmed == "":
		return []string{""}

	case strings.HasPrefix(trimmed, "#"):
		level := 0
		for level < len(trimmed) && trimmed[level] == '#' {
			level++
		}
		text := strings.TrimSpace(trimmed[level:])
		style := r.styles.Heading
		if level > 1 {
			style = r.styles.Subheading
		}
		return []string{style.Render(text)}

	case isRule(trimmed):
		return []string{r.styles.Rule.Render(strings.Repeat("─", 40))}

	case strings.HasPrefix(trimmed, ">"):
		rest := strings.TrimSpace(strings.TrimPrefix(trimmed, ">"))
		return r.prefixed(r.styles.Quote.Render("│ "), rest)

	case isListItem(trimmed):
		marker, rest := splitListItem(trimmed)
		return r.prefixed(r.styles.ListMarker.Render(marker)+" ", rest)

	default:
		return r.inline(line)
	}
}

// prefixed renders inline content with a prefix on its first row;
// continuation rows from promoted math blocks are indented to match.
func (r *Renderer) prefixed(prefix, text string) []string {
	rows := r.inline(text)
	out := make([]string, len(rows))
	indent := strings.Repeat(" ", runewidth.StringWidth(stripANSI(prefix)))
	for i, row := range rows {
		if i == 0 {
			out[i] = prefix + row
		} else {
			out[i] = indent + row
		}
	}
	return out
}

func isRule(s string) bool {
	if len(s) < 3 {
		return false
	}
	c := s[0]
	if c != '-' && c != '*' && c != '_' {
		return false
	}
	for i := range len(s) {
		if s[i] != c {
			return false
		}
	}
	return true
}

func isListItem(s string) bool {
	if strings.HasPrefix(s, "- ") || strings.HasPrefix(s, "* ") || strings.HasPrefix(s, "+ ") {
		return true
	}
	// Ordered: digits then ". "
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i > 0 && i+1 < len(s) && s[i] == '.' && s[i+1] == ' '
}

func splitListItem(s string) (marker, rest string) {
	if idx := strings.Index(s, " "); idx >= 0 {
		m := s[:idx]
		if m == "-" || m == "*" || m == "+" {
			m = "•"
		}
		return m, strings.TrimSpace(s[idx:])
	}
	return "•", s
}
