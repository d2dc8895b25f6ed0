// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package parser builds a math expression tree by recursive descent.
//
// The grammar, lowest precedence first:
//
//	expr   = term (("+" | "-" | "=") term)*
//	term   = factor (("*" | "/" | implicit) factor)*
//	factor = base (("^" | "_") base)*
//	base   = NUM | VAR | command | "(" expr ")" | "{" expr "}" | "-" factor
//
// Implicit multiplication joins two adjacent factors with no operator
// between them (2x). The right operand of ^ and _ is a single base, so
// x^2^3 groups as (x^2)^3.
//
// Parsing never fails. Missing closers are tolerated, unknown commands
// become literal text, and absent operands become Empty nodes. Problems
// are reported through the side-channel diagnostics list instead.
package parser

import (
	"nickandperla.net/texel/internal/ast"
	"nickandperla.net/texel/internal/scanner"
	"nickandperla.net/texel/internal/token"
)

// DefaultMaxDepth bounds parser recursion. Nesting past the limit
// collapses to Empty with a TooDeep diagnostic rather than overflowing
// the stack.
const DefaultMaxDepth = 80

// Parser holds the state for one parse. A Parser is single-use.
type Parser struct {
	sc       *scanner.Scanner
	tok      scanner.Item
	depth    int
	maxDepth int
	tooDeep  bool
	diags    []Diagnostic

	// rightSeen is set when a \right is consumed; it unwinds the
	// interior of the enclosing \left without consuming past it.
	rightSeen bool
}

// New creates a parser for the given expression.
func New(expr string) *Parser {
	p := &Parser{
		sc:       scanner.New(expr),
		maxDepth: DefaultMaxDepth,
	}
	p.advance()
	return p
}

// SetMaxDepth overrides the recursion limit. Values below 1 are
// ignored.
func (p *Parser) SetMaxDepth(n int) {
	if n >= 1 {
		p.maxDepth = n
	}
}

// Diagnostics returns the problems recorded during the parse.
func (p *Parser) Diagnostics() []Diagnostic {
	return p.diags
}

// Parse consumes the whole token stream and returns the root node.
// Stray tokens after a complete expression are either skipped (closers)
// or parsed and attached through implicit multiplication, so every
// input yields a tree.
func (p *Parser) Parse() ast.Node {
	root := p.parseExpr()
	for p.tok.Token != token.EOF {
		p.rightSeen = false
		if p.tok.Token.IsCloser() {
			p.report(Unbalanced, "unmatched "+p.tok.Value)
			p.advance()
			continue
		}
		before := p.tok
		next := p.parseExpr()
		if !next.IsEmpty() {
			root = joinImplicit(root, next)
		}
		if p.tok == before && p.tok.Token != token.EOF {
			// No progress: drop the token rather than loop.
			p.advance()
		}
	}
	return root
}

// Parse parses expr leniently and returns the root node along with any
// diagnostics.
func Parse(expr string) (ast.Node, []Diagnostic) {
	p := New(expr)
	return p.Parse(), p.Diagnostics()
}

func joinImplicit(left, right ast.Node) ast.Node {
	if left.IsEmpty() {
		return right
	}
	return ast.Mul{Left: left, Right: right, Implicit: true}
}

func (p *Parser) advance() {
	p.tok = p.sc.Next()
}

// accept consumes the current token if it matches t.
func (p *Parser) accept(t token.Token) bool {
	if p.tok.Token == t {
		p.advance()
		return true
	}
	return false
}

// expectCloser consumes an expected closing delimiter if present and
// records a diagnostic if not. Parsing continues either way.
func (p *Parser) expectCloser(t token.Token, lit string) {
	if !p.accept(t) {
		p.report(Unbalanced, "missing "+lit)
	}
}

func (p *Parser) report(code Code, detail string) {
	p.diags = append(p.diags, Diagnostic{Code: code, Detail: detail})
}

// enter counts one level of recursion. Every recursive production
// calls it, so chains that skip parseExpr (unary minus, bare command
// arguments) are bounded too. It reports TooDeep once per parse.
func (p *Parser) enter() bool {
	if p.depth >= p.maxDepth {
		if !p.tooDeep {
			p.tooDeep = true
			p.report(TooDeep, "nesting exceeds depth limit")
		}
		return false
	}
	p.depth++
	return true
}

func (p *Parser) leave() {
	p.depth--
}

func (p *Parser) parseExpr() ast.Node {
	if !p.enter() {
		return ast.Empty{}
	}
	defer p.leave()

	left := p.parseTerm()
	for !p.rightSeen {
		switch p.tok.Token {
		case token.PLUS:
			p.advance()
			left = ast.Add{Left: left, Right: p.parseTerm()}
		case token.MINUS:
			p.advance()
			left = ast.Sub{Left: left, Right: p.parseTerm()}
		case token.EQ:
			p.advance()
			left = ast.Eq{Left: left, Right: p.parseTerm()}
		default:
			return left
		}
	}
	return left
}

func (p *Parser) parseTerm() ast.Node {
	left := p.parseFactor()
	for !p.rightSeen {
		switch {
		case p.tok.Token == token.STAR:
			p.advance()
			left = ast.Mul{Left: left, Right: p.parseFactor()}
		case p.tok.Token == token.SLASH:
			p.advance()
			left = ast.Div{Left: left, Right: p.parseFactor()}
		case p.startsFactor():
			right := p.parseFactor()
			if right.IsEmpty() {
				return left
			}
			left = ast.Mul{Left: left, Right: right, Implicit: true}
		default:
			return left
		}
	}
	return left
}

func (p *Parser) parseFactor() ast.Node {
	if !p.enter() {
		return ast.Empty{}
	}
	defer p.leave()

	base := p.parseBase()
	for {
		switch p.tok.Token {
		case token.CARET:
			p.advance()
			base = ast.Pow{Base: base, Exp: p.parseBase()}
		case token.UNDER:
			p.advance()
			base = ast.Subscript{Base: base, Script: p.parseBase()}
		default:
			return base
		}
	}
}

func (p *Parser) parseBase() ast.Node {
	if !p.enter() {
		return ast.Empty{}
	}
	defer p.leave()

	switch p.tok.Token {
	case token.NUM:
		n := ast.Num{Value: p.tok.Value}
		p.advance()
		return n
	case token.VAR:
		v := ast.Var{Name: p.tok.Value}
		p.advance()
		return v
	case token.CMD:
		name := p.tok.Value
		p.advance()
		return p.parseCommand(name)
	case token.LPAREN:
		p.advance()
		inner := p.parseExpr()
		p.expectCloser(token.RPAREN, ")")
		return ast.Paren{Inner: inner, Delim: "("}
	case token.LBRACE:
		// Braces group without leaving a trace in the tree.
		p.advance()
		inner := p.parseExpr()
		p.expectCloser(token.RBRACE, "}")
		return inner
	case token.MINUS:
		p.advance()
		return ast.Neg{Operand: p.parseFactor()}
	}
	return ast.Empty{}
}

// startsFactor reports whether the current token can begin a factor.
// This is the implicit-multiplication lookahead: it runs only after the
// explicit operator checks have failed, so MINUS is deliberately not a
// factor starter here even though unary minus is.
func (p *Parser) startsFactor() bool {
	switch p.tok.Token {
	case token.NUM, token.VAR, token.CMD, token.LPAREN, token.LBRACE:
		return true
	}
	return false
}
