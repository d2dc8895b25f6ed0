// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package parser

import (
	"strings"

	"nickandperla.net/texel/internal/ast"
	"nickandperla.net/texel/internal/glyph"
	"nickandperla.net/texel/internal/token"
)

// bigOpNames are the commands that produce multi-row operators with
// optional limits.
var bigOpNames = map[string]bool{
	"sum":    true,
	"prod":   true,
	"int":    true,
	"bigcup": true,
	"bigcap": true,
	"lim":    true,
}

// textNames are the commands whose brace group flattens to plain text.
var textNames = map[string]bool{
	"text":   true,
	"mathrm": true,
	"textit": true,
	"mathbf": true,
}

// parseCommand dispatches a \name command. The backslash and name have
// already been consumed.
func (p *Parser) parseCommand(name string) ast.Node {
	switch {
	case name == "frac":
		num := p.parseGroup()
		den := p.parseGroup()
		return ast.Frac{Num: num, Den: den}

	case name == "sqrt":
		var index ast.Node = ast.Empty{}
		if p.accept(token.LBRACK) {
			index = p.parseExpr()
			p.expectCloser(token.RBRACK, "]")
		}
		return ast.Sqrt{Radicand: p.parseGroup(), Index: index}

	case bigOpNames[name]:
		return p.parseBigOp(name)

	case name == "left":
		return p.parseLeft()

	case name == "right":
		// Consume the pairing delimiter without checking that it
		// matches the \left one. The enclosing parseLeft unwinds on
		// rightSeen.
		p.consumeDelim()
		p.rightSeen = true
		return ast.Empty{}

	case textNames[name]:
		return p.parseText()
	}

	if g, ok := glyph.Lookup(name); ok {
		return ast.Symbol{Glyph: g}
	}
	p.report(UnknownCommand, `\`+name)
	return ast.Text{Value: `\` + name}
}

// parseGroup parses a required {expr} argument. A bare factor is
// accepted in place of a braced group, and a missing argument yields
// Empty.
func (p *Parser) parseGroup() ast.Node {
	if p.accept(token.LBRACE) {
		inner := p.parseExpr()
		p.expectCloser(token.RBRACE, "}")
		return inner
	}
	if p.startsFactor() {
		return p.parseBase()
	}
	return ast.Empty{}
}

// parseBigOp parses optional _{lower} and ^{upper} limits in either
// order. The operand is not captured here; it attaches afterward
// through implicit multiplication at the enclosing term.
func (p *Parser) parseBigOp(name string) ast.Node {
	op := ast.BigOp{Name: name, Lower: ast.Empty{}, Upper: ast.Empty{}}
	for range 2 {
		switch p.tok.Token {
		case token.UNDER:
			p.advance()
			op.Lower = p.parseScript()
		case token.CARET:
			p.advance()
			op.Upper = p.parseScript()
		default:
			return op
		}
	}
	return op
}

// parseScript parses a limit argument: a braced group or a single base.
func (p *Parser) parseScript() ast.Node {
	if p.accept(token.LBRACE) {
		inner := p.parseExpr()
		p.expectCloser(token.RBRACE, "}")
		return inner
	}
	return p.parseBase()
}

// parseLeft handles \left X ... \right Y. The opening delimiter glyph
// is captured, the interior parsed, and the \right discarded without
// verifying that Y pairs with X.
func (p *Parser) parseLeft() ast.Node {
	delim := "("
	switch p.tok.Token {
	case token.LPAREN, token.LBRACK, token.LBRACE, token.PIPE:
		delim = p.tok.Value
		p.advance()
	case token.CMD:
		// \left\{ scans as an empty command followed by the brace.
		if p.tok.Value == "" {
			p.advance()
			if p.tok.Token == token.LBRACE {
				delim = "{"
				p.advance()
			}
		}
	}
	inner := p.parseExpr()
	p.rightSeen = false
	return ast.Paren{Inner: inner, Delim: delim}
}

// consumeDelim eats the delimiter following \right, if any.
func (p *Parser) consumeDelim() {
	switch p.tok.Token {
	case token.RPAREN, token.RBRACK, token.RBRACE, token.PIPE:
		p.advance()
	case token.CMD:
		if p.tok.Value == "" {
			p.advance()
			if p.tok.Token == token.RBRACE {
				p.advance()
			}
		}
	}
}

// parseText flattens a brace group to a single text node, discarding
// any nested structure.
func (p *Parser) parseText() ast.Node {
	if !p.accept(token.LBRACE) {
		return ast.Empty{}
	}
	var sb strings.Builder
	word := false
	depth := 0
	for p.tok.Token != token.EOF {
		switch p.tok.Token {
		case token.LBRACE:
			depth++
		case token.RBRACE:
			if depth == 0 {
				p.advance()
				return ast.Text{Value: sb.String()}
			}
			depth--
		case token.VAR, token.NUM, token.CMD:
			if word {
				sb.WriteString(" ")
			}
			if p.tok.Token == token.CMD {
				sb.WriteString(`\`)
			}
			sb.WriteString(p.tok.Value)
			word = true
		default:
			sb.WriteString(p.tok.Value)
			word = false
		}
		p.advance()
	}
	p.report(Unbalanced, "missing }")
	return ast.Text{Value: sb.String()}
}
