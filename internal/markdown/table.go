// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package markdown

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

func isTableLine(s string) bool {
	return strings.HasPrefix(s, "|") && strings.Count(s, "|") >= 2
}

// table collects a run of pipe-delimited lines and renders them as an
// aligned grid. A ---|--- separator row marks the line above it as a
// header.
func (r *Renderer) table(lines []string) (int, []string) {
	var rows [][]string
	headerRow := -1
	n := 0
	for n < len(lines) {
		trimmed := strings.TrimSpace(lines[n])
		if !isTableLine(trimmed) {
			break
		}
		cells := splitRow(trimmed)
		if isSeparatorRow(cells) {
			headerRow = len(rows) - 1
		} else {
			rows = append(rows, cells)
		}
		n++
	}
	if len(rows) == 0 {
		return n, nil
	}

	widths := columnWidths(rows)
	var out []string
	for i, cells := range rows {
		var sb strings.Builder
		for col, w := range widths {
			cell := ""
			if col < len(cells) {
				cell = cells[col]
			}
			if i == headerRow {
				cell = r.styles.TableHead.Render(cell)
			}
			sb.WriteString(cell)
			sb.WriteString(spacesFor(cell, w, i == headerRow, r))
			if col < len(widths)-1 {
				sb.WriteString("  ")
			}
		}
		out = append(out, strings.TrimRight(sb.String(), " "))
		if i == headerRow {
			out = append(out, r.styles.Rule.Render(ruleFor(widths)))
		}
	}
	return n, out
}

func splitRow(s string) []string {
	s = strings.Trim(s, "|")
	parts := strings.Split(s, "|")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}

func isSeparatorRow(cells []string) bool {
	for _, c := range cells {
		if c == "" {
			return false
		}
		for _, r := range c {
			if r != '-' && r != ':' {
				return false
			}
		}
	}
	return true
}

// columnWidths measures cells with runewidth so that wide glyphs align.
func columnWidths(rows [][]string) []int {
	var widths []int
	for _, cells := range rows {
		for col, c := range cells {
			w := runewidth.StringWidth(c)
			if col >= len(widths) {
				widths = append(widths, w)
			} else if w > widths[col] {
				widths[col] = w
			}
		}
	}
	return widths
}

// spacesFor pads a rendered cell to the column width. Styled cells are
// measured by their unstyled width.
func spacesFor(cell string, width int, styled bool, r *Renderer) string {
	w := runewidth.StringWidth(cell)
	if styled {
		// ANSI sequences from the style have zero display width but
		// inflate StringWidth's input; measure the raw text instead.
		w = runewidth.StringWidth(stripANSI(cell))
	}
	if width <= w {
		return ""
	}
	return strings.Repeat(" ", width-w)
}

func ruleFor(widths []int) string {
	total := 0
	for _, w := range widths {
		total += w
	}
	total += 2 * (len(widths) - 1)
	return strings.Repeat("─", total)
}

// stripANSI removes CSI escape sequences.
func stripANSI(s string) string {
	var sb strings.Builder
	i := 0
	for i < len(s) {
		if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '[' {
			i += 2
			for i < len(s) && (s[i] < 0x40 || s[i] > 0x7e) {
				i++
			}
			if i < len(s) {
				i++
			}
			continue
		}
		sb.WriteByte(s[i])
		i++
	}
	return sb.String()
}
