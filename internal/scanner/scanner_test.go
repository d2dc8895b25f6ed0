package scanner

import (
	"testing"

	"nickandperla.net/texel/internal/token"
)

func collect(expr string) []Item {
	s := New(expr)
	var items []Item
	for {
		item := s.Next()
		items = append(items, item)
		if item.Token == token.EOF {
			return items
		}
	}
}

func TestBasicTokens(t *testing.T) {
	items := collect(`\frac{a}{2} + x_1`)
	want := []Item{
		{token.CMD, "frac"},
		{token.LBRACE, "{"},
		{token.VAR, "a"},
		{token.RBRACE, "}"},
		{token.LBRACE, "{"},
		{token.NUM, "2"},
		{token.RBRACE, "}"},
		{token.PLUS, "+"},
		{token.VAR, "x"},
		{token.UNDER, "_"},
		{token.NUM, "1"},
		{token.EOF, ""},
	}
	if len(items) != len(want) {
		t.Fatalf("expected %d items, got %d: %v", len(want), len(items), items)
	}
	for i, w := range want {
		if items[i] != w {
			t.Errorf("item %d: expected %v %q, got %v %q", i, w.Token, w.Value, items[i].Token, items[i].Value)
		}
	}
}

func TestPipeToken(t *testing.T) {
	items := collect(`\left|x\right|`)
	want := []Item{
		{token.CMD, "left"},
		{token.PIPE, "|"},
		{token.VAR, "x"},
		{token.CMD, "right"},
		{token.PIPE, "|"},
		{token.EOF, ""},
	}
	if len(items) != len(want) {
		t.Fatalf("expected %d items, got %d: %v", len(want), len(items), items)
	}
	for i, w := range want {
		if items[i] != w {
			t.Errorf("item %d: expected %v %q, got %v %q", i, w.Token, w.Value, items[i].Token, items[i].Value)
		}
	}
}

func TestNumberRuns(t *testing.T) {
	items := collect("3.14x12")
	if items[0].Token != token.NUM || items[0].Value != "3.14" {
		t.Errorf("expected NUM 3.14, got %v %q", items[0].Token, items[0].Value)
	}
	if items[1].Token != token.VAR || items[1].Value != "x" {
		t.Errorf("expected VAR x, got %v %q", items[1].Token, items[1].Value)
	}
	if items[2].Token != token.NUM || items[2].Value != "12" {
		t.Errorf("expected NUM 12, got %v %q", items[2].Token, items[2].Value)
	}
}

func TestUnrecognizedCharactersDropped(t *testing.T) {
	items := collect("@#x!")
	if len(items) != 2 {
		t.Fatalf("expected VAR and EOF, got %v", items)
	}
	if items[0].Token != token.VAR || items[0].Value != "x" {
		t.Errorf("expected VAR x, got %v %q", items[0].Token, items[0].Value)
	}
}

func TestWhitespaceSkipped(t *testing.T) {
	items := collect("  a \t b ")
	if len(items) != 3 {
		t.Fatalf("expected two VARs and EOF, got %v", items)
	}
}

func TestEOFForever(t *testing.T) {
	s := New("x")
	s.Next()
	for range 3 {
		if item := s.Next(); item.Token != token.EOF {
			t.Fatalf("expected EOF, got %v", item.Token)
		}
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	s := New("a+b")
	if p := s.Peek(); p.Token != token.VAR || p.Value != "a" {
		t.Fatalf("peek: expected VAR a, got %v %q", p.Token, p.Value)
	}
	if n := s.Next(); n.Token != token.VAR || n.Value != "a" {
		t.Fatalf("next after peek: expected VAR a, got %v %q", n.Token, n.Value)
	}
	if n := s.Next(); n.Token != token.PLUS {
		t.Fatalf("expected PLUS, got %v", n.Token)
	}
}

func TestCommandWithoutName(t *testing.T) {
	// \{ scans as an empty command followed by LBRACE.
	items := collect(`\{`)
	if items[0].Token != token.CMD || items[0].Value != "" {
		t.Errorf("expected empty CMD, got %v %q", items[0].Token, items[0].Value)
	}
	if items[1].Token != token.LBRACE {
		t.Errorf("expected LBRACE, got %v", items[1].Token)
	}
}
