// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package layout computes two-dimensional text boxes for math nodes.
//
// Every node type yields a box of Width columns and Height rows with a
// Baseline row that other boxes align to when composed. Layout never
// fails: degenerate children produce zero-width boxes and malformed
// trees still render printable output.
package layout

import "strings"

// Box is the rendered form of one node.
type Box struct {
	Width    int
	Height   int
	Baseline int
	Lines    []string
}

// String joins the box rows with newlines.
func (b Box) String() string {
	return strings.Join(b.Lines, "\n")
}

// empty is the box of an absent operand.
func empty() Box {
	return Box{Width: 0, Height: 1, Baseline: 0, Lines: []string{""}}
}

// literal builds a one-row box holding text.
func literal(text string) Box {
	return Box{
		Width:    runeLen(text),
		Height:   1,
		Baseline: 0,
		Lines:    []string{text},
	}
}

func runeLen(s string) int {
	return len([]rune(s))
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// pad right-pads a line to the given column count.
func pad(line string, width int) string {
	return line + spaces(width-runeLen(line))
}

// center pads a line on both sides to the given column count, biasing
// left when the slack is odd.
func center(line string, width int) string {
	slack := width - runeLen(line)
	if slack <= 0 {
		return line
	}
	left := slack / 2
	return spaces(left) + line + spaces(slack-left)
}

// rowIn returns the box line that lands on the given composed row when
// the box baseline is aligned to bl, or blanks when the row is outside
// the box.
func rowIn(b Box, row, bl int) string {
	i := row - (bl - b.Baseline)
	if i < 0 || i >= b.Height {
		return spaces(b.Width)
	}
	return pad(b.Lines[i], b.Width)
}

// beside composes two boxes horizontally with a 3-column separator.
// The children's baselines coincide at the result baseline; op sits in
// the middle separator column on that row.
func beside(left, right Box, op string) Box {
	bl := maxInt(left.Baseline, right.Baseline)
	below := maxInt(left.Height-left.Baseline, right.Height-right.Baseline)
	height := bl + below

	lines := make([]string, height)
	for row := range height {
		mid := "   "
		if row == bl {
			mid = " " + op + " "
		}
		lines[row] = rowIn(left, row, bl) + mid + rowIn(right, row, bl)
	}
	return Box{
		Width:    left.Width + 3 + right.Width,
		Height:   height,
		Baseline: bl,
		Lines:    lines,
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
