// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package parser

// Code classifies a diagnostic.
type Code int

const (
	// UnknownCommand marks a \name with no table entry; it renders as
	// literal text.
	UnknownCommand Code = iota
	// Unbalanced marks a missing or stray delimiter.
	Unbalanced
	// TooDeep marks nesting past the recursion limit; the subtree
	// collapses to Empty.
	TooDeep
)

// Diagnostic describes a problem tolerated during a parse. Diagnostics
// never affect the lenient default output.
type Diagnostic struct {
	Code   Code
	Detail string
}

func (c Code) String() string {
	switch c {
	case UnknownCommand:
		return "unknown command"
	case Unbalanced:
		return "unbalanced delimiter"
	case TooDeep:
		return "too deep"
	}
	return "unknown"
}

func (d Diagnostic) String() string {
	if d.Detail == "" {
		return d.Code.String()
	}
	return d.Code.String() + ": " + d.Detail
}
