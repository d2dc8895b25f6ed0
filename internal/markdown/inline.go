// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package markdown

import "strings"

// inline renders one line of paragraph text: emphasis, code spans,
// links, and $...$ math. It returns multiple rows when an inline math
// span renders taller than one row and is promoted to its own block;
// the surrounding text flows onto the rows before and after it.
func (r *Renderer) inline(text string) []string {
	var out []string
	var sb strings.Builder

	flush := func() {
		out = append(out, sb.String())
		sb.Reset()
	}

	i := 0
	for i < len(text) {
		switch {
		case text[i] == '`':
			end := strings.IndexByte(text[i+1:], '`')
			if end < 0 {
				sb.WriteByte(text[i])
				i++
				continue
			}
			sb.WriteString(r.styles.Code.Render(text[i+1 : i+1+end]))
			i += end + 2

		case strings.HasPrefix(text[i:], "**"):
			end := strings.Index(text[i+2:], "**")
			if end < 0 {
				sb.WriteString("**")
				i += 2
				continue
			}
			sb.WriteString(r.styles.Strong.Render(text[i+2 : i+2+end]))
			i += end + 4

		case text[i] == '*':
			end := strings.IndexByte(text[i+1:], '*')
			if end < 0 {
				sb.WriteByte(text[i])
				i++
				continue
			}
			sb.WriteString(r.styles.Emph.Render(text[i+1 : i+1+end]))
			i += end + 2

		case text[i] == '[':
			label, url, n := parseLink(text[i:])
			if n == 0 {
				sb.WriteByte(text[i])
				i++
				continue
			}
			sb.WriteString(r.styles.Link.Render(label))
			if url != "" {
				sb.WriteString(" (" + url + ")")
			}
			i += n

		case text[i] == '$':
			expr, display, n := parseMathSpan(text[i:])
			if n == 0 {
				sb.WriteByte(text[i])
				i++
				continue
			}
			i += n
			rendered := r.math(expr)
			rows := strings.Split(rendered, "\n")
			if len(rows) == 1 && !display {
				sb.WriteString(r.styles.Math.Render(rows[0]))
				continue
			}
			// Multi-row result: promote to a block of its own rather
			// than discard rows.
			if sb.Len() > 0 {
				flush()
			}
			for _, row := range rows {
				out = append(out, r.styles.Math.Render(row))
			}

		default:
			sb.WriteByte(text[i])
			i++
		}
	}

	if sb.Len() > 0 || len(out) == 0 {
		flush()
	}
	return out
}

// parseLink matches [label](url) at the start of s. It returns n == 0
// when s is not a link.
func parseLink(s string) (label, url string, n int) {
	rb := strings.IndexByte(s, ']')
	if rb < 0 || rb+1 >= len(s) || s[rb+1] != '(' {
		return "", "", 0
	}
	end := strings.IndexByte(s[rb+2:], ')')
	if end < 0 {
		return "", "", 0
	}
	return s[1:rb], s[rb+2 : rb+2+end], rb + 2 + end + 1
}

// parseMathSpan matches $...$ or $$...$$ at the start of s. It returns
// n == 0 when there is no closing delimiter.
func parseMathSpan(s string) (expr string, display bool, n int) {
	delim := "$"
	if strings.HasPrefix(s, "$$") {
		delim = "$$"
		display = true
	}
	rest := s[len(delim):]
	end := strings.Index(rest, delim)
	if end < 0 {
		return "", false, 0
	}
	return strings.TrimSpace(rest[:end]), display, len(delim)*2 + end
}
