// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package scanner provides a Unicode-aware lexer for math expressions.
//
// The scanner never fails: characters that belong to no token class are
// silently dropped so that malformed input degrades instead of erroring.
package scanner

import (
	"strings"
	"unicode"

	"nickandperla.net/texel/internal/token"
)

// Item represents a scanned token with its literal value.
type Item struct {
	Token token.Token
	Value string
}

// Scanner tokenizes a math expression rune-by-rune.
type Scanner struct {
	input  []rune
	pos    int
	buf    strings.Builder
	peeked *Item
}

// New creates a new Scanner for the given expression. Math delimiters
// ($ or $$) are expected to have been stripped by the caller.
func New(expr string) *Scanner {
	return &Scanner{input: []rune(expr)}
}

// Peek returns the next item without consuming it.
func (s *Scanner) Peek() Item {
	if s.peeked == nil {
		item := s.scan()
		s.peeked = &item
	}
	return *s.peeked
}

// Next returns the next token from the input. After the input is
// exhausted it returns EOF items forever.
func (s *Scanner) Next() Item {
	if s.peeked != nil {
		item := *s.peeked
		s.peeked = nil
		return item
	}
	return s.scan()
}

func (s *Scanner) scan() Item {
	for s.pos < len(s.input) {
		r := s.input[s.pos]

		switch {
		case unicode.IsSpace(r):
			s.pos++

		case r == '\\':
			s.pos++
			return Item{Token: token.CMD, Value: s.scanLetters()}

		case isDigit(r):
			return Item{Token: token.NUM, Value: s.scanNumber()}

		case unicode.IsLetter(r):
			return Item{Token: token.VAR, Value: s.scanLetters()}

		default:
			s.pos++
			if t, ok := token.FromRune(r); ok {
				return Item{Token: t, Value: string(r)}
			}
			// Unrecognized character: drop it and keep scanning.
		}
	}
	return Item{Token: token.EOF}
}

// scanLetters consumes a maximal run of letters.
func (s *Scanner) scanLetters() string {
	s.buf.Reset()
	for s.pos < len(s.input) && unicode.IsLetter(s.input[s.pos]) {
		s.buf.WriteRune(s.input[s.pos])
		s.pos++
	}
	return s.buf.String()
}

// scanNumber consumes a maximal run of digits and decimal points.
func (s *Scanner) scanNumber() string {
	s.buf.Reset()
	for s.pos < len(s.input) && (isDigit(s.input[s.pos]) || s.input[s.pos] == '.') {
		s.buf.WriteRune(s.input[s.pos])
		s.pos++
	}
	return s.buf.String()
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
