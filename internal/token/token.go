// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package token defines the math expression token types.
package token

// Token represents a math token type.
type Token int

const (
	EOF Token = iota
	NUM       // digit/decimal run: 12, 3.14
	VAR       // letter run: x, ab
	CMD       // backslash command: \frac, \alpha

	// Structural
	LBRACE // {
	RBRACE // }
	LPAREN // (
	RPAREN // )
	LBRACK // [
	RBRACK // ]
	PIPE   // |, only meaningful after \left and \right

	// Operators
	CARET // ^
	UNDER // _
	PLUS  // +
	MINUS // -
	STAR  // *
	SLASH // /
	EQ    // =
	COMMA // ,
)

// FromRune returns the token type for a single-character token rune.
// The second return is false when the rune is not a recognized
// operator or structural character.
func FromRune(r rune) (Token, bool) {
	switch r {
	case '{':
		return LBRACE, true
	case '}':
		return RBRACE, true
	case '(':
		return LPAREN, true
	case ')':
		return RPAREN, true
	case '[':
		return LBRACK, true
	case ']':
		return RBRACK, true
	case '|':
		return PIPE, true
	case '^':
		return CARET, true
	case '_':
		return UNDER, true
	case '+':
		return PLUS, true
	case '-':
		return MINUS, true
	case '*':
		return STAR, true
	case '/':
		return SLASH, true
	case '=':
		return EQ, true
	case ',':
		return COMMA, true
	}
	return EOF, false
}

// IsCloser returns true for closing delimiter tokens. The parser
// consumes these opportunistically and never requires them.
func (t Token) IsCloser() bool {
	return t == RBRACE || t == RPAREN || t == RBRACK
}

// String returns a printable name for the token type.
func (t Token) String() string {
	switch t {
	case EOF:
		return "EOF"
	case NUM:
		return "NUM"
	case VAR:
		return "VAR"
	case CMD:
		return "CMD"
	case LBRACE:
		return "LBRACE"
	case RBRACE:
		return "RBRACE"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case LBRACK:
		return "LBRACK"
	case RBRACK:
		return "RBRACK"
	case PIPE:
		return "PIPE"
	case CARET:
		return "CARET"
	case UNDER:
		return "UNDER"
	case PLUS:
		return "PLUS"
	case MINUS:
		return "MINUS"
	case STAR:
		return "STAR"
	case SLASH:
		return "SLASH"
	case EQ:
		return "EQ"
	case COMMA:
		return "COMMA"
	}
	return "UNKNOWN"
}
