// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package glyph holds the static Unicode tables used by layout:
// superscript and subscript forms, Greek letters, math symbols, and
// the multi-row big-operator shapes.
package glyph

import "strings"

// superscripts maps characters to their Unicode superscript forms.
// Not every letter has one; q in particular does not.
var superscripts = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
	'+': '⁺', '-': '⁻', '=': '⁼', '(': '⁽', ')': '⁾',
	'a': 'ᵃ', 'b': 'ᵇ', 'c': 'ᶜ', 'd': 'ᵈ', 'e': 'ᵉ',
	'f': 'ᶠ', 'g': 'ᵍ', 'h': 'ʰ', 'i': 'ⁱ', 'j': 'ʲ',
	'k': 'ᵏ', 'l': 'ˡ', 'm': 'ᵐ', 'n': 'ⁿ', 'o': 'ᵒ',
	'p': 'ᵖ', 'r': 'ʳ', 's': 'ˢ', 't': 'ᵗ', 'u': 'ᵘ',
	'v': 'ᵛ', 'w': 'ʷ', 'x': 'ˣ', 'y': 'ʸ', 'z': 'ᶻ',
}

// subscripts maps characters to their Unicode subscript forms.
var subscripts = map[rune]rune{
	'0': '₀', '1': '₁', '2': '₂', '3': '₃', '4': '₄',
	'5': '₅', '6': '₆', '7': '₇', '8': '₈', '9': '₉',
	'+': '₊', '-': '₋', '=': '₌', '(': '₍', ')': '₎',
	'a': 'ₐ', 'e': 'ₑ', 'h': 'ₕ', 'i': 'ᵢ', 'j': 'ⱼ',
	'k': 'ₖ', 'l': 'ₗ', 'm': 'ₘ', 'n': 'ₙ', 'o': 'ₒ',
	'p': 'ₚ', 'r': 'ᵣ', 's': 'ₛ', 't': 'ₜ', 'u': 'ᵤ',
	'v': 'ᵥ', 'x': 'ₓ',
}

// Superscript converts s to its superscript form. It returns false if
// any character has no superscript glyph.
func Superscript(s string) (string, bool) {
	return mapString(s, superscripts)
}

// Subscript converts s to its subscript form. It returns false if any
// character has no subscript glyph.
func Subscript(s string) (string, bool) {
	return mapString(s, subscripts)
}

func mapString(s string, table map[rune]rune) (string, bool) {
	var sb strings.Builder
	for _, r := range s {
		g, ok := table[r]
		if !ok {
			return "", false
		}
		sb.WriteRune(g)
	}
	return sb.String(), true
}

// greek maps LaTeX Greek letter names to their glyphs.
var greek = map[string]string{
	"alpha": "α", "beta": "β", "gamma": "γ", "delta": "δ",
	"epsilon": "ε", "zeta": "ζ", "eta": "η", "theta": "θ",
	"iota": "ι", "kappa": "κ", "lambda": "λ", "mu": "μ",
	"nu": "ν", "xi": "ξ", "pi": "π", "rho": "ρ",
	"sigma": "σ", "tau": "τ", "upsilon": "υ", "phi": "φ",
	"chi": "χ", "psi": "ψ", "omega": "ω",
	"Gamma": "Γ", "Delta": "Δ", "Theta": "Θ", "Lambda": "Λ",
	"Xi": "Ξ", "Pi": "Π", "Sigma": "Σ", "Upsilon": "Υ",
	"Phi": "Φ", "Psi": "Ψ", "Omega": "Ω",
}

// symbols maps LaTeX command names to single math glyphs.
var symbols = map[string]string{
	"times": "×", "cdot": "·", "div": "÷", "pm": "±", "mp": "∓",
	"leq": "≤", "geq": "≥", "neq": "≠", "approx": "≈", "equiv": "≡",
	"infty": "∞", "partial": "∂", "nabla": "∇", "degree": "°",
	"rightarrow": "→", "leftarrow": "←", "Rightarrow": "⇒",
	"Leftarrow": "⇐", "leftrightarrow": "↔", "to": "→", "mapsto": "↦",
	"in": "∈", "notin": "∉", "subset": "⊂", "supset": "⊃",
	"subseteq": "⊆", "supseteq": "⊇", "cup": "∪", "cap": "∩",
	"emptyset": "∅", "forall": "∀", "exists": "∃", "neg": "¬",
	"wedge": "∧", "vee": "∨", "oplus": "⊕", "otimes": "⊗",
	"cdots": "⋯", "ldots": "…", "dots": "…", "prime": "′",
	"propto": "∝", "perp": "⊥", "parallel": "∥", "angle": "∠",
	"ell": "ℓ", "hbar": "ℏ", "Re": "ℜ", "Im": "ℑ", "aleph": "ℵ",
	"sim": "∼", "sqrt": "√", "therefore": "∴", "because": "∵",
}

// Lookup resolves a command name against the Greek and symbol tables.
func Lookup(name string) (string, bool) {
	if g, ok := greek[name]; ok {
		return g, true
	}
	if g, ok := symbols[name]; ok {
		return g, true
	}
	return "", false
}

// bigOps maps big-operator names to their glyph rows. Two-row shapes
// for sum, prod, bigcup, and bigcap; three rows for int, whose middle
// row is the baseline.
var bigOps = map[string][]string{
	"sum":    {"⎲", "⎳"},
	"prod":   {"┳━┳", "┃ ┃"},
	"int":    {"⌠", "⎮", "⌡"},
	"bigcup": {"│ │", "╰─╯"},
	"bigcap": {"╭─╮", "│ │"},
	"lim":    {"lim"},
}

// BigOp returns the glyph rows for a big-operator name.
func BigOp(name string) ([]string, bool) {
	rows, ok := bigOps[name]
	return rows, ok
}

// scaled holds the column pieces for multi-row delimiters: top, middle
// filler, bottom.
var scaled = map[string][3]string{
	"(": {"⎛", "⎜", "⎝"},
	")": {"⎞", "⎟", "⎠"},
	"[": {"⎡", "⎢", "⎣"},
	"]": {"⎤", "⎥", "⎦"},
	"{": {"⎧", "⎨", "⎩"},
	"}": {"⎫", "⎬", "⎭"},
	"|": {"│", "│", "│"},
}

// Scaled returns the top/middle/bottom column pieces for a delimiter,
// falling back to repeating the delimiter itself.
func Scaled(delim string) [3]string {
	if p, ok := scaled[delim]; ok {
		return p
	}
	return [3]string{delim, delim, delim}
}

// Closing returns the closing counterpart of an opening delimiter.
func Closing(open string) string {
	switch open {
	case "(":
		return ")"
	case "[":
		return "]"
	case "{":
		return "}"
	}
	return open
}
