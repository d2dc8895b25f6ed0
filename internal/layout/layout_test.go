package layout

import (
	"strings"
	"testing"

	"nickandperla.net/texel/internal/ast"
	"nickandperla.net/texel/internal/parser"
)

func render(t *testing.T, expr string) Box {
	t.Helper()
	node, _ := parser.Parse(expr)
	return Render(node)
}

func checkInvariants(t *testing.T, expr string, b Box) {
	t.Helper()
	if b.Height < 1 {
		t.Errorf("%s: height %d < 1", expr, b.Height)
	}
	if b.Baseline < 0 || b.Baseline >= b.Height {
		t.Errorf("%s: baseline %d outside [0,%d)", expr, b.Baseline, b.Height)
	}
	if len(b.Lines) != b.Height {
		t.Errorf("%s: %d lines for height %d", expr, len(b.Lines), b.Height)
	}
	for i, line := range b.Lines {
		if n := len([]rune(line)); n != b.Width {
			t.Errorf("%s: row %d has %d columns, want %d", expr, i, n, b.Width)
		}
	}
}

func TestLeafText(t *testing.T) {
	for _, expr := range []string{"x", "42", "abc", "3.14"} {
		b := render(t, expr)
		checkInvariants(t, expr, b)
		if b.Height != 1 {
			t.Errorf("%s: expected height 1, got %d", expr, b.Height)
		}
		if b.Width != len(expr) {
			t.Errorf("%s: expected width %d, got %d", expr, len(expr), b.Width)
		}
	}
}

func TestEmptyExpression(t *testing.T) {
	b := render(t, "")
	if b.Height != 1 || b.Width != 0 || b.String() != "" {
		t.Errorf("expected one empty line, got %dx%d %q", b.Width, b.Height, b.String())
	}
}

func TestDeterminism(t *testing.T) {
	for _, expr := range []string{`\frac{-b+\sqrt{b^2-4ac}}{2a}`, `\sum_{i=1}^{n} x_i`} {
		first := render(t, expr).String()
		second := render(t, expr).String()
		if first != second {
			t.Errorf("%s: renders differ", expr)
		}
	}
}

func TestAddition(t *testing.T) {
	b := render(t, "a+b")
	checkInvariants(t, "a+b", b)
	if b.Width != 1+3+1 {
		t.Errorf("expected width 5, got %d", b.Width)
	}
	if b.Lines[b.Baseline] != "a + b" {
		t.Errorf("expected %q at baseline, got %q", "a + b", b.Lines[b.Baseline])
	}
}

func TestOperatorRowIsMaxBaseline(t *testing.T) {
	// The fraction's baseline (its bar row) dominates the leaf's.
	b := render(t, `\frac{1}{2}+x`)
	checkInvariants(t, "frac+x", b)
	if b.Baseline != 1 {
		t.Errorf("expected baseline 1, got %d", b.Baseline)
	}
	if !strings.Contains(b.Lines[1], "+ x") {
		t.Errorf("expected + and x on the bar row, got %q", b.Lines[1])
	}
}

func TestImplicitMulSpacing(t *testing.T) {
	b := render(t, "2x")
	if b.Lines[0] != "2   x" {
		t.Errorf("expected %q, got %q", "2   x", b.Lines[0])
	}
}

func TestFraction(t *testing.T) {
	b := render(t, `\frac{1}{2}`)
	checkInvariants(t, "frac", b)
	want := []string{"1", "━", "2"}
	if b.Height != 3 {
		t.Fatalf("expected 3 rows, got %d", b.Height)
	}
	for i, w := range want {
		if b.Lines[i] != w {
			t.Errorf("row %d: expected %q, got %q", i, w, b.Lines[i])
		}
	}
	if b.Baseline != 1 {
		t.Errorf("expected the bar row as baseline, got %d", b.Baseline)
	}
}

func TestFractionCentersNarrowerOperand(t *testing.T) {
	b := render(t, `\frac{1}{x+y}`)
	checkInvariants(t, "frac-center", b)
	if b.Width != 5 {
		t.Fatalf("expected width 5, got %d", b.Width)
	}
	if b.Lines[0] != "  1  " {
		t.Errorf("expected centered numerator, got %q", b.Lines[0])
	}
	if b.Lines[1] != "━━━━━" {
		t.Errorf("expected full-width bar, got %q", b.Lines[1])
	}
}

func TestInlineSuperscript(t *testing.T) {
	b := render(t, "x^2")
	checkInvariants(t, "x^2", b)
	if b.Height != 2 {
		t.Fatalf("expected height 2, got %d", b.Height)
	}
	if b.Lines[0] != " ²" {
		t.Errorf("expected glyph top-right, got %q", b.Lines[0])
	}
	if b.Lines[1] != "x " {
		t.Errorf("expected base on bottom row, got %q", b.Lines[1])
	}
}

func TestStackedExponent(t *testing.T) {
	// A two-character exponent has no single superscript glyph and
	// stacks fully above the base.
	b := render(t, "x^{23}")
	checkInvariants(t, "x^{23}", b)
	if b.Height != 2 {
		t.Fatalf("expected height 2, got %d", b.Height)
	}
	if b.Lines[0] != " 23" {
		t.Errorf("expected exponent top-right, got %q", b.Lines[0])
	}
	if b.Lines[1] != "x  " {
		t.Errorf("expected base bottom-left, got %q", b.Lines[1])
	}
}

func TestInlineSubscript(t *testing.T) {
	b := render(t, "x_i")
	checkInvariants(t, "x_i", b)
	if b.Height != 1 {
		t.Fatalf("expected height 1, got %d", b.Height)
	}
	if b.Width != 2 {
		t.Errorf("expected width 2, got %d", b.Width)
	}
	if b.Lines[0] != "xᵢ" {
		t.Errorf("expected inline subscript, got %q", b.Lines[0])
	}
}

func TestStackedSubscriptSharesOneRow(t *testing.T) {
	// q has no Unicode subscript form, so the script stacks
	// below-right sharing the base's bottom row.
	b := render(t, "x_q")
	checkInvariants(t, "x_q", b)
	if b.Height != 1 {
		t.Fatalf("expected the shared row to add no height, got %d", b.Height)
	}
	if b.Lines[0] != "xq" {
		t.Errorf("expected below-right script on the shared row, got %q", b.Lines[0])
	}
}

func TestSqrt(t *testing.T) {
	b := render(t, `\sqrt{4}`)
	checkInvariants(t, "sqrt", b)
	if b.Height != 2 {
		t.Fatalf("expected 2 rows, got %d", b.Height)
	}
	if b.Lines[0] != "  ▁▁" {
		t.Errorf("expected lowered bar row, got %q", b.Lines[0])
	}
	if b.Lines[1] != "╲╱ 4" {
		t.Errorf("expected radical prefix row, got %q", b.Lines[1])
	}
}

func TestSqrtIndexNotRendered(t *testing.T) {
	indexed := render(t, `\sqrt[3]{8}`).String()
	plain := render(t, `\sqrt{8}`).String()
	if indexed != plain {
		t.Errorf("expected the index to be dropped: %q vs %q", indexed, plain)
	}
}

func TestSumWithLimits(t *testing.T) {
	b := render(t, `\sum_{i=1}^{n} x_i`)
	checkInvariants(t, "sum", b)
	out := b.String()
	for _, want := range []string{"⎲", "⎳", "n", "i = 1", "xᵢ"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q:\n%s", want, out)
		}
	}
	// The upper limit is centered above the glyph, the lower below.
	if !strings.Contains(b.Lines[0], "n") {
		t.Errorf("expected n on the top row, got %q", b.Lines[0])
	}
	if !strings.Contains(b.Lines[b.Height-1], "i = 1") {
		t.Errorf("expected i = 1 on the bottom row, got %q", b.Lines[b.Height-1])
	}
}

func TestIntegralShiftsUpperLimit(t *testing.T) {
	b := render(t, `\int_0^1`)
	checkInvariants(t, "int", b)
	if b.Height != 5 {
		t.Fatalf("expected 5 rows, got %d", b.Height)
	}
	if b.Lines[0] != " 1" {
		t.Errorf("expected the upper limit shifted past the glyph, got %q", b.Lines[0])
	}
	if !strings.HasPrefix(b.Lines[1], "⌠") {
		t.Errorf("expected integral top, got %q", b.Lines[1])
	}
	if b.Baseline != 2 {
		t.Errorf("expected the middle glyph row as baseline, got %d", b.Baseline)
	}
}

func TestScaledParens(t *testing.T) {
	b := render(t, `\left( \frac{1}{2} \right)`)
	checkInvariants(t, "scaled parens", b)
	want := []string{"⎛1⎞", "⎜━⎟", "⎝2⎠"}
	if b.Height != 3 {
		t.Fatalf("expected 3 rows, got %d", b.Height)
	}
	for i, w := range want {
		if b.Lines[i] != w {
			t.Errorf("row %d: expected %q, got %q", i, w, b.Lines[i])
		}
	}
}

func TestScaledPipes(t *testing.T) {
	b := render(t, `\left| \frac{1}{2} \right|`)
	checkInvariants(t, "scaled pipes", b)
	want := []string{"│1│", "│━│", "│2│"}
	if b.Height != 3 {
		t.Fatalf("expected 3 rows, got %d", b.Height)
	}
	for i, w := range want {
		if b.Lines[i] != w {
			t.Errorf("row %d: expected %q, got %q", i, w, b.Lines[i])
		}
	}
}

func TestFlatPipes(t *testing.T) {
	b := render(t, `\left| x \right|`)
	checkInvariants(t, "flat pipes", b)
	if got := b.String(); got != "|x|" {
		t.Errorf("expected %q, got %q", "|x|", got)
	}
}

func TestFlatParensStayFlat(t *testing.T) {
	b := render(t, "(x)")
	if b.Height != 1 || b.Lines[0] != "(x)" {
		t.Errorf("expected plain parens, got %q", b.String())
	}
}

func TestUnknownCommandRenders(t *testing.T) {
	b := render(t, `\zzz`)
	if b.Lines[0] != `\zzz` {
		t.Errorf("expected literal text, got %q", b.Lines[0])
	}
}

func TestMissingBraceStillRenders(t *testing.T) {
	b := render(t, `\frac{1}{2`)
	checkInvariants(t, "unbalanced frac", b)
	if b.Height != 3 {
		t.Errorf("expected a complete fraction box, got %d rows", b.Height)
	}
}

func TestNegation(t *testing.T) {
	b := render(t, "-x")
	if b.Lines[0] != "−x" {
		t.Errorf("expected minus prefix, got %q", b.Lines[0])
	}
}

func TestQuadraticFormula(t *testing.T) {
	b := render(t, `\frac{-b+\sqrt{b^2-4ac}}{2a}`)
	checkInvariants(t, "quadratic", b)
	out := b.String()
	for _, want := range []string{"━", "╲╱", "▁", "²"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q:\n%s", want, out)
		}
	}
	if b.Height < 4 {
		t.Errorf("expected a tall nested box, got %d rows", b.Height)
	}
}

func TestHandBuiltNestingBounded(t *testing.T) {
	// Trees that never went through the parser have no depth limit of
	// their own; the walk must still terminate.
	var n ast.Node = ast.Var{Name: "x"}
	for range 1000 {
		n = ast.Neg{Operand: n}
	}
	b := Render(n)
	checkInvariants(t, "deep negation", b)
	if b.Width > maxNesting+1 {
		t.Errorf("expected the walk to cut off, got width %d", b.Width)
	}
}
