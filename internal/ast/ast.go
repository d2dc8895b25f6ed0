// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package ast defines the math expression tree types.
//
// Nodes are immutable once built. Absent operands are represented by
// Empty values rather than nil so that layout never has to special-case
// missing children.
package ast

import "strings"

// Node is the interface all expression node types implement.
type Node interface {
	// String returns a LaTeX-ish representation, used for debugging
	// and cache keys.
	String() string
	// IsEmpty returns true if this is an absent operand.
	IsEmpty() bool
}

// Empty represents an absent operand.
type Empty struct{}

func (Empty) String() string { return "" }
func (Empty) IsEmpty() bool  { return true }

// Num represents a numeric literal.
type Num struct {
	Value string
}

func (n Num) String() string { return n.Value }
func (n Num) IsEmpty() bool  { return false }

// Var represents a variable name.
type Var struct {
	Name string
}

func (v Var) String() string { return v.Name }
func (v Var) IsEmpty() bool  { return false }

// Text represents literal text: \text{...} content or an unknown
// command rendered verbatim.
type Text struct {
	Value string
}

func (t Text) String() string { return t.Value }
func (t Text) IsEmpty() bool  { return t.Value == "" }

// Symbol represents a single substituted glyph (Greek letter or math
// symbol).
type Symbol struct {
	Glyph string
}

func (s Symbol) String() string { return s.Glyph }
func (s Symbol) IsEmpty() bool  { return false }

// Add represents addition.
type Add struct {
	Left, Right Node
}

func (a Add) String() string { return a.Left.String() + "+" + a.Right.String() }
func (a Add) IsEmpty() bool  { return false }

// Sub represents subtraction.
type Sub struct {
	Left, Right Node
}

func (s Sub) String() string { return s.Left.String() + "-" + s.Right.String() }
func (s Sub) IsEmpty() bool  { return false }

// Eq represents the binary relation a = b.
type Eq struct {
	Left, Right Node
}

func (e Eq) String() string { return e.Left.String() + "=" + e.Right.String() }
func (e Eq) IsEmpty() bool  { return false }

// Mul represents multiplication. Implicit marks adjacency
// multiplication (2x), which renders without an operator glyph.
type Mul struct {
	Left, Right Node
	Implicit    bool
}

func (m Mul) String() string {
	if m.Implicit {
		return m.Left.String() + " " + m.Right.String()
	}
	return m.Left.String() + "*" + m.Right.String()
}
func (m Mul) IsEmpty() bool { return false }

// Div represents inline division a / b.
type Div struct {
	Left, Right Node
}

func (d Div) String() string { return d.Left.String() + "/" + d.Right.String() }
func (d Div) IsEmpty() bool  { return false }

// Neg represents unary negation.
type Neg struct {
	Operand Node
}

func (n Neg) String() string { return "-" + n.Operand.String() }
func (n Neg) IsEmpty() bool  { return false }

// Pow represents exponentiation base^exp.
type Pow struct {
	Base, Exp Node
}

func (p Pow) String() string { return p.Base.String() + "^{" + p.Exp.String() + "}" }
func (p Pow) IsEmpty() bool  { return false }

// Subscript represents base_script.
type Subscript struct {
	Base, Script Node
}

func (s Subscript) String() string { return s.Base.String() + "_{" + s.Script.String() + "}" }
func (s Subscript) IsEmpty() bool  { return false }

// Frac represents a vertical fraction.
type Frac struct {
	Num, Den Node
}

func (f Frac) String() string {
	return `\frac{` + f.Num.String() + "}{" + f.Den.String() + "}"
}
func (f Frac) IsEmpty() bool { return false }

// Sqrt represents a root. Index is the optional bracketed root index;
// it is parsed but not rendered.
type Sqrt struct {
	Radicand Node
	Index    Node
}

func (s Sqrt) String() string {
	var sb strings.Builder
	sb.WriteString(`\sqrt`)
	if s.Index != nil && !s.Index.IsEmpty() {
		sb.WriteString("[" + s.Index.String() + "]")
	}
	sb.WriteString("{" + s.Radicand.String() + "}")
	return sb.String()
}
func (s Sqrt) IsEmpty() bool { return false }

// BigOp represents a multi-row operator (sum, prod, int, bigcup,
// bigcap, lim) with optional limits. The operand is not part of the
// node; it attaches through implicit multiplication.
type BigOp struct {
	Name  string
	Lower Node
	Upper Node
}

func (b BigOp) String() string {
	var sb strings.Builder
	sb.WriteString(`\` + b.Name)
	if b.Lower != nil && !b.Lower.IsEmpty() {
		sb.WriteString("_{" + b.Lower.String() + "}")
	}
	if b.Upper != nil && !b.Upper.IsEmpty() {
		sb.WriteString("^{" + b.Upper.String() + "}")
	}
	return sb.String()
}
func (b BigOp) IsEmpty() bool { return false }

// Paren represents a delimited group: plain parentheses from the
// grammar or a \left...\right pair. Delim is the opening delimiter.
type Paren struct {
	Inner Node
	Delim string
}

func (p Paren) String() string { return p.Delim + p.Inner.String() + closingFor(p.Delim) }
func (p Paren) IsEmpty() bool  { return false }

func closingFor(open string) string {
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
