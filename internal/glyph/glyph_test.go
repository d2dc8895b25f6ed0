package glyph

import "testing"

func TestSuperscript(t *testing.T) {
	got, ok := Superscript("2")
	if !ok || got != "²" {
		t.Errorf("expected ², got %q (%v)", got, ok)
	}
	if _, ok := Superscript("q"); ok {
		t.Error("q has no superscript form")
	}
}

func TestSubscript(t *testing.T) {
	got, ok := Subscript("i=1")
	if !ok || got != "ᵢ₌₁" {
		t.Errorf("expected ᵢ₌₁, got %q (%v)", got, ok)
	}
	if _, ok := Subscript("b"); ok {
		t.Error("b has no subscript form")
	}
}

func TestLookup(t *testing.T) {
	cases := map[string]string{
		"alpha": "α",
		"Sigma": "Σ",
		"times": "×",
		"infty": "∞",
	}
	for name, want := range cases {
		got, ok := Lookup(name)
		if !ok || got != want {
			t.Errorf("Lookup(%q): expected %q, got %q (%v)", name, want, got, ok)
		}
	}
	if _, ok := Lookup("zzz"); ok {
		t.Error("expected zzz to miss")
	}
}

func TestBigOpShapes(t *testing.T) {
	for name, wantRows := range map[string]int{
		"sum": 2, "prod": 2, "bigcup": 2, "bigcap": 2, "int": 3, "lim": 1,
	} {
		rows, ok := BigOp(name)
		if !ok {
			t.Fatalf("missing big operator %q", name)
		}
		if len(rows) != wantRows {
			t.Errorf("%s: expected %d rows, got %d", name, wantRows, len(rows))
		}
	}
}

func TestScaledFallback(t *testing.T) {
	p := Scaled("?")
	if p[0] != "?" || p[1] != "?" || p[2] != "?" {
		t.Errorf("expected the delimiter itself, got %v", p)
	}
}
