// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package layout

import (
	"strings"

	"nickandperla.net/texel/internal/ast"
	"nickandperla.net/texel/internal/glyph"
)

const (
	fracBar  = "━" // U+2501
	sqrtBar  = "▁" // U+2581
	minus    = "−" // U+2212
	times    = "×"
	divide   = "÷"
	implicit = " "
)

// maxNesting bounds the layout walk. Lenient parses bound tree depth
// already; this covers trees built by hand.
const maxNesting = 200

// Render walks the tree bottom-up and returns the box for the root.
// Nodes nested past maxNesting collapse to an empty box.
func Render(n ast.Node) Box {
	return renderNode(n, 0)
}

func renderNode(n ast.Node, depth int) Box {
	if depth >= maxNesting {
		return empty()
	}
	depth++

	switch n := n.(type) {
	case nil, ast.Empty:
		return empty()
	case ast.Num:
		return literal(n.Value)
	case ast.Var:
		return literal(n.Name)
	case ast.Text:
		return literal(n.Value)
	case ast.Symbol:
		return literal(n.Glyph)
	case ast.Add:
		return beside(renderNode(n.Left, depth), renderNode(n.Right, depth), "+")
	case ast.Sub:
		return beside(renderNode(n.Left, depth), renderNode(n.Right, depth), minus)
	case ast.Eq:
		return beside(renderNode(n.Left, depth), renderNode(n.Right, depth), "=")
	case ast.Mul:
		op := times
		if n.Implicit {
			op = implicit
		}
		return beside(renderNode(n.Left, depth), renderNode(n.Right, depth), op)
	case ast.Div:
		return beside(renderNode(n.Left, depth), renderNode(n.Right, depth), divide)
	case ast.Neg:
		return negate(renderNode(n.Operand, depth))
	case ast.Pow:
		return power(renderNode(n.Base, depth), renderNode(n.Exp, depth))
	case ast.Subscript:
		return subscript(renderNode(n.Base, depth), renderNode(n.Script, depth))
	case ast.Frac:
		return fraction(renderNode(n.Num, depth), renderNode(n.Den, depth))
	case ast.Sqrt:
		// The bracketed index is parsed but not rendered.
		return root(renderNode(n.Radicand, depth))
	case ast.BigOp:
		return bigOp(n, depth)
	case ast.Paren:
		return paren(renderNode(n.Inner, depth), n.Delim)
	}
	return empty()
}

// negate prefixes a minus sign at the operand's baseline row.
func negate(operand Box) Box {
	lines := make([]string, operand.Height)
	for row, line := range operand.Lines {
		sign := " "
		if row == operand.Baseline {
			sign = minus
		}
		lines[row] = sign + line
	}
	return Box{
		Width:    operand.Width + 1,
		Height:   operand.Height,
		Baseline: operand.Baseline,
		Lines:    lines,
	}
}

// power renders an exponent. A single-character exponent with a Unicode
// superscript form goes inline in one extra row at the base's top
// right; anything else stacks fully above with no shared rows.
func power(base, exp Box) Box {
	if exp.Height == 1 && runeLen(exp.Lines[0]) == 1 {
		if sup, ok := glyph.Superscript(exp.Lines[0]); ok {
			lines := make([]string, 0, base.Height+1)
			lines = append(lines, spaces(base.Width)+sup)
			for _, line := range base.Lines {
				lines = append(lines, pad(line, base.Width)+" ")
			}
			return Box{
				Width:    base.Width + 1,
				Height:   base.Height + 1,
				Baseline: base.Baseline + 1,
				Lines:    lines,
			}
		}
	}

	lines := make([]string, 0, base.Height+exp.Height)
	for _, line := range exp.Lines {
		lines = append(lines, spaces(base.Width)+pad(line, exp.Width))
	}
	for _, line := range base.Lines {
		lines = append(lines, pad(line, base.Width)+spaces(exp.Width))
	}
	return Box{
		Width:    base.Width + exp.Width,
		Height:   base.Height + exp.Height,
		Baseline: exp.Height + base.Baseline,
		Lines:    lines,
	}
}

// subscript renders a script below-right. A one-row script whose every
// character has a Unicode subscript form goes inline on the base's
// bottom row; anything else stacks below-right sharing one row with
// the base.
func subscript(base, script Box) Box {
	if script.Height == 1 {
		if sub, ok := glyph.Subscript(script.Lines[0]); ok {
			lines := make([]string, base.Height)
			for row, line := range base.Lines {
				if row == base.Height-1 {
					lines[row] = pad(line, base.Width) + sub
				} else {
					lines[row] = pad(line, base.Width) + spaces(script.Width)
				}
			}
			return Box{
				Width:    base.Width + script.Width,
				Height:   base.Height,
				Baseline: base.Baseline,
				Lines:    lines,
			}
		}
	}

	height := base.Height + script.Height - 1
	lines := make([]string, 0, height)
	for row := 0; row < base.Height-1; row++ {
		lines = append(lines, pad(base.Lines[row], base.Width)+spaces(script.Width))
	}
	// The base's bottom row and the script's top row share a line.
	lines = append(lines, pad(base.Lines[base.Height-1], base.Width)+pad(script.Lines[0], script.Width))
	for row := 1; row < script.Height; row++ {
		lines = append(lines, spaces(base.Width)+pad(script.Lines[row], script.Width))
	}
	return Box{
		Width:    base.Width + script.Width,
		Height:   height,
		Baseline: base.Baseline,
		Lines:    lines,
	}
}

// fraction centers numerator and denominator over a full-width bar.
// The bar row is the baseline.
func fraction(num, den Box) Box {
	width := maxInt(num.Width, den.Width)
	if width == 0 {
		width = 1
	}
	lines := make([]string, 0, num.Height+1+den.Height)
	for _, line := range num.Lines {
		lines = append(lines, center(line, width))
	}
	lines = append(lines, strings.Repeat(fracBar, width))
	for _, line := range den.Lines {
		lines = append(lines, center(line, width))
	}
	return Box{
		Width:    width,
		Height:   num.Height + 1 + den.Height,
		Baseline: num.Height,
		Lines:    lines,
	}
}

// root draws a ╲╱ prefix at the radicand's baseline and a lowered bar
// row on top, offset past the prefix.
func root(radicand Box) Box {
	lines := make([]string, 0, radicand.Height+1)
	lines = append(lines, "  "+strings.Repeat(sqrtBar, radicand.Width+1))
	for row, line := range radicand.Lines {
		prefix := "   "
		if row == radicand.Baseline {
			prefix = "╲╱ "
		}
		lines = append(lines, prefix+pad(line, radicand.Width))
	}
	return Box{
		Width:    radicand.Width + 3,
		Height:   radicand.Height + 1,
		Baseline: radicand.Baseline + 1,
		Lines:    lines,
	}
}

// bigOp stacks an operator glyph with its limits: upper centered above,
// lower centered below. The integral glyph is three rows with the
// middle row as baseline, and its upper limit is right-shifted past the
// glyph instead of centered.
func bigOp(n ast.BigOp, depth int) Box {
	rows, ok := glyph.BigOp(n.Name)
	if !ok {
		rows = []string{n.Name}
	}
	glyphWidth := runeLen(rows[0])

	var upper, lower Box
	upperRows, lowerRows := 0, 0
	if !n.Upper.IsEmpty() {
		upper = renderNode(n.Upper, depth)
		upperRows = upper.Height
	}
	if !n.Lower.IsEmpty() {
		lower = renderNode(n.Lower, depth)
		lowerRows = lower.Height
	}

	shiftUpper := n.Name == "int"
	width := maxInt(glyphWidth, maxInt(upper.Width, lower.Width))
	if shiftUpper {
		width = maxInt(glyphWidth+upper.Width, maxInt(glyphWidth, lower.Width))
	}

	lines := make([]string, 0, upperRows+len(rows)+lowerRows)
	for i := 0; i < upperRows; i++ {
		if shiftUpper {
			lines = append(lines, pad(spaces(glyphWidth)+upper.Lines[i], width))
		} else {
			lines = append(lines, center(upper.Lines[i], width))
		}
	}
	for _, g := range rows {
		if shiftUpper {
			lines = append(lines, pad(g, width))
		} else {
			lines = append(lines, center(g, width))
		}
	}
	for i := 0; i < lowerRows; i++ {
		lines = append(lines, center(lower.Lines[i], width))
	}

	baseline := upperRows
	if len(rows) == 3 {
		baseline = upperRows + 1
	}
	return Box{
		Width:    width,
		Height:   upperRows + len(rows) + lowerRows,
		Baseline: baseline,
		Lines:    lines,
	}
}

// paren wraps the inner box in delimiters, scaled with bracket pieces
// when the contents span more than one row.
func paren(inner Box, delim string) Box {
	open, closer := delim, glyph.Closing(delim)
	if inner.Height == 1 {
		return Box{
			Width:    inner.Width + 2,
			Height:   1,
			Baseline: inner.Baseline,
			Lines:    []string{open + pad(inner.Lines[0], inner.Width) + closer},
		}
	}

	left := glyph.Scaled(open)
	right := glyph.Scaled(closer)
	lines := make([]string, inner.Height)
	for row, line := range inner.Lines {
		l, r := left[1], right[1]
		switch row {
		case 0:
			l, r = left[0], right[0]
		case inner.Height - 1:
			l, r = left[2], right[2]
		}
		lines[row] = l + pad(line, inner.Width) + r
	}
	return Box{
		Width:    inner.Width + 2,
		Height:   inner.Height,
		Baseline: inner.Baseline,
		Lines:    lines,
	}
}
