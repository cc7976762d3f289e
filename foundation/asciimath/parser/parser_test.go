package parser

import (
	"strings"
	"testing"

	"github.com/mathemascii/mathemascii/foundation/asciimath/ast"
	"github.com/mathemascii/mathemascii/foundation/asciimath/diag"
	"github.com/mathemascii/mathemascii/foundation/asciimath/keywords"
	"github.com/mathemascii/mathemascii/foundation/asciimath/scanner"
)

func parseOne(t *testing.T, input string) *ast.Expression {
	t.Helper()
	exprs := Parse(input)
	if len(exprs) != 1 {
		t.Fatalf("Parse(%q) returned %d expressions, want 1", input, len(exprs))
	}
	return exprs[0]
}

func codes(warnings []diag.Warning) []diag.Code {
	out := make([]diag.Code, len(warnings))
	for i, w := range warnings {
		out[i] = w.Code
	}
	return out
}

func hasCode(warnings []diag.Warning, code diag.Code) bool {
	for _, w := range warnings {
		if w.Code == code {
			return true
		}
	}
	return false
}

func TestParseSequence(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"   ", nil},
		{"alpha + beta", []string{"Greek(Alpha)", "Operator(Plus)", "Greek(Beta)"}},
		{"x = 1.5", []string{"Variable(x)", "Relation(Eq)", "Number(1.5)"}},
		{`"hi" text(you)`, []string{"Text(hi)", "Text(you)"}},
		{"a , b", []string{"Variable(a)", "Other(Comma)", "Variable(b)"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			exprs := Parse(tt.input)
			if len(exprs) != len(tt.want) {
				t.Fatalf("Parse() returned %d expressions, want %d", len(exprs), len(tt.want))
			}
			for i, e := range exprs {
				if got := e.Base.String(); got != tt.want[i] {
					t.Errorf("expression %d = %s, want %s", i, got, tt.want[i])
				}
			}
		})
	}
}

func TestImplicitFractionIsRightAssociative(t *testing.T) {
	e := parseOne(t, "a/b/c")

	outer, ok := e.Base.(*ast.Binary)
	if !ok || outer.Kind != ast.BinaryFraction {
		t.Fatalf("base = %s, want a fraction", e.Base)
	}
	if outer.Span() != scanner.NewSpan(0, 5) {
		t.Errorf("outer span = %v, want 0..5", outer.Span())
	}
	if v, ok := outer.First.(*ast.Var); !ok || v.Text() != "a" {
		t.Errorf("numerator = %s, want a", outer.First)
	}

	inner, ok := outer.Second.(*ast.Binary)
	if !ok || inner.Kind != ast.BinaryFraction {
		t.Fatalf("denominator = %s, want a fraction", outer.Second)
	}
	if inner.Span() != scanner.NewSpan(2, 5) {
		t.Errorf("inner span = %v, want 2..5", inner.Span())
	}
}

func TestFractionOperands(t *testing.T) {
	t.Run("scripted numerator is kept whole", func(t *testing.T) {
		frac := parseOne(t, "a^2/b").Base.(*ast.Binary)
		interm, ok := frac.First.(*ast.Interm)
		if !ok {
			t.Fatalf("numerator = %T, want *ast.Interm", frac.First)
		}
		if interm.Expr.Sup == nil {
			t.Error("numerator lost its superscript")
		}
	})

	t.Run("grouping operands lose their delimiters", func(t *testing.T) {
		frac := parseOne(t, "(a+b)/(c)").Base.(*ast.Binary)
		for i, op := range []ast.SimpleExpr{frac.First, frac.Second} {
			g, ok := op.(*ast.Grouping)
			if !ok {
				t.Fatalf("operand %d = %T, want *ast.Grouping", i, op)
			}
			if !g.IsIgnored() {
				t.Errorf("operand %d delimiters = %s %s, want ignored", i, g.Open, g.Close)
			}
		}
	})

	t.Run("plain operands are used as they are", func(t *testing.T) {
		frac := parseOne(t, "1/x").Base.(*ast.Binary)
		if _, ok := frac.First.(*ast.Var); !ok {
			t.Errorf("numerator = %T, want *ast.Var", frac.First)
		}
	})
}

func TestScripts(t *testing.T) {
	e := parseOne(t, "x_i^2")
	if e.Sub == nil || e.Sup == nil {
		t.Fatalf("x_i^2 = %s, want both scripts", e)
	}
	if e.Span() != scanner.NewSpan(0, 5) {
		t.Errorf("span = %v, want 0..5", e.Span())
	}

	e = parseOne(t, "x^2")
	if e.Sub != nil || e.Sup == nil {
		t.Errorf("x^2 = %s, want only a superscript", e)
	}

	// a superscript cannot be followed by a subscript
	exprs := Parse("x^2_i")
	if len(exprs) != 1 {
		t.Errorf("x^2_i returned %d expressions, want 1", len(exprs))
	}
}

func TestMissingScript(t *testing.T) {
	p := New("x_")
	exprs := p.Parse()
	if len(exprs) != 1 {
		t.Fatalf("returned %d expressions, want 1", len(exprs))
	}
	if exprs[0].IsScripted() {
		t.Error("expression should keep only its base")
	}
	if !hasCode(p.Warnings(), diag.CodeMissingScript) {
		t.Errorf("warnings = %v, want missing-script", codes(p.Warnings()))
	}
}

func TestGroupingCompatibility(t *testing.T) {
	tests := []struct {
		input string
		open  keywords.Grouping
		close keywords.Grouping
	}{
		{"(x)", keywords.GroupOpenParen, keywords.GroupCloseParen},
		{"[x]", keywords.GroupOpenBracket, keywords.GroupCloseBracket},
		{"{x}", keywords.GroupOpenBrace, keywords.GroupCloseBrace},
		{"(:x:)", keywords.GroupLeftAngled, keywords.GroupRightAngled},
		{"{:x:}", keywords.GroupOpenIgnored, keywords.GroupCloseIgnored},
		{"{:x)", keywords.GroupOpenIgnored, keywords.GroupCloseParen},
		{"{:x]", keywords.GroupOpenIgnored, keywords.GroupCloseBracket},
		{"{:x}", keywords.GroupOpenIgnored, keywords.GroupCloseBrace},
		{"{:x:)", keywords.GroupOpenIgnored, keywords.GroupRightAngled},
		{"(x:}", keywords.GroupOpenParen, keywords.GroupCloseIgnored},
		{"[x:}", keywords.GroupOpenBracket, keywords.GroupCloseIgnored},
		{")x(", keywords.GroupCloseParen, keywords.GroupOpenParen},
		{"]x[", keywords.GroupCloseBracket, keywords.GroupOpenBracket},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := New(tt.input)
			exprs := p.Parse()
			if len(exprs) != 1 {
				t.Fatalf("returned %d expressions, want 1", len(exprs))
			}
			g, ok := exprs[0].Base.(*ast.Grouping)
			if !ok {
				t.Fatalf("base = %T, want *ast.Grouping", exprs[0].Base)
			}
			if g.Open != tt.open || g.Close != tt.close {
				t.Errorf("delimiters = %s %s, want %s %s", g.Open, g.Close, tt.open, tt.close)
			}
			if len(g.Exprs) != 1 {
				t.Errorf("grouping has %d children, want 1", len(g.Exprs))
			}
			if g.Span() != scanner.NewSpan(0, len([]rune(tt.input))) {
				t.Errorf("span = %v, want the whole input", g.Span())
			}
			if w := p.Warnings(); len(w) != 0 {
				t.Errorf("unexpected warnings %v", codes(w))
			}
		})
	}
}

func TestUnclosedGrouping(t *testing.T) {
	p := New("(a+b")
	e := p.Parse()
	if len(e) != 1 {
		t.Fatalf("returned %d expressions, want 1", len(e))
	}
	g := e[0].Base.(*ast.Grouping)
	if g.Close != keywords.GroupCloseIgnored {
		t.Errorf("closer = %s, want CloseIgnored", g.Close)
	}
	if len(g.Exprs) != 3 {
		t.Errorf("grouping has %d children, want 3", len(g.Exprs))
	}
	if g.Span() != scanner.NewSpan(0, 4) {
		t.Errorf("span = %v, want 0..4", g.Span())
	}
	if !hasCode(p.Warnings(), diag.CodeUnclosedGrouping) {
		t.Errorf("warnings = %v, want unclosed-grouping", codes(p.Warnings()))
	}
}

func TestEnclosingCloserEndsInnerGrouping(t *testing.T) {
	p := New("(a]b)")
	e := p.Parse()
	if len(e) != 1 {
		t.Fatalf("returned %d expressions, want 1", len(e))
	}
	outer := e[0].Base.(*ast.Grouping)
	if outer.Close != keywords.GroupCloseParen {
		t.Errorf("outer closer = %s, want CloseParen", outer.Close)
	}
	if len(outer.Exprs) != 2 {
		t.Fatalf("outer has %d children, want 2", len(outer.Exprs))
	}
	inner, ok := outer.Exprs[1].Base.(*ast.Grouping)
	if !ok || inner.Open != keywords.GroupCloseBracket || inner.Close != keywords.GroupCloseIgnored {
		t.Errorf("inner = %s, want an implicitly closed ] grouping", outer.Exprs[1].Base)
	}
}

func TestUnary(t *testing.T) {
	tests := []struct {
		input string
		kind  ast.UnaryKind
	}{
		{"sqrt x", ast.UnarySqrt},
		{"abs(x)", ast.UnaryAbs},
		{"floor(x)", ast.UnaryFloor},
		{"hat a", ast.UnaryHat},
		{"ubrace(x)", ast.UnaryUnderbrace},
		{"bb A", ast.UnaryBold},
		{"cancel(x)", ast.UnaryCancel},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			u, ok := parseOne(t, tt.input).Base.(*ast.Unary)
			if !ok {
				t.Fatal("base is not unary")
			}
			if u.Kind != tt.kind {
				t.Errorf("kind = %s, want %s", u.Kind, tt.kind)
			}
			if u.Span().End != len(tt.input) {
				t.Errorf("span = %v, want to end at %d", u.Span(), len(tt.input))
			}
		})
	}
}

func TestUnaryPlaceholder(t *testing.T) {
	p := New("sqrt")
	e := p.Parse()
	if len(e) != 1 {
		t.Fatalf("returned %d expressions, want 1", len(e))
	}
	u := e[0].Base.(*ast.Unary)
	v, ok := u.Operand.(*ast.Var)
	if !ok || v.Kind != ast.VarUnknown {
		t.Fatalf("operand = %s, want an unknown placeholder", u.Operand)
	}
	if v.Span() != scanner.NewSpan(4, 4) {
		t.Errorf("placeholder span = %v, want 4..4", v.Span())
	}
	if u.Span() != scanner.NewSpan(0, 4) {
		t.Errorf("unary span = %v, want 0..4", u.Span())
	}
	if !hasCode(p.Warnings(), diag.CodeMissingOperand) {
		t.Errorf("warnings = %v, want missing-operand", codes(p.Warnings()))
	}

	// an enclosing closer is not taken as the operand
	g := parseOne(t, "(sqrt)").Base.(*ast.Grouping)
	if g.Close != keywords.GroupCloseParen || len(g.Exprs) != 1 {
		t.Errorf("(sqrt) = %s, want one child closed by )", g)
	}
}

func TestBinary(t *testing.T) {
	tests := []struct {
		input string
		kind  ast.BinaryKind
	}{
		{"frac(a)(b)", ast.BinaryFraction},
		{"root(3)(x)", ast.BinaryRoot},
		{"overset(a)(=)", ast.BinaryOverset},
		{"underset(a)(b)", ast.BinaryUnderset},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			b, ok := parseOne(t, tt.input).Base.(*ast.Binary)
			if !ok {
				t.Fatal("base is not binary")
			}
			if b.Kind != tt.kind {
				t.Errorf("kind = %s, want %s", b.Kind, tt.kind)
			}
			if b.Span() != scanner.NewSpan(0, len(tt.input)) {
				t.Errorf("span = %v, want the whole input", b.Span())
			}
		})
	}
}

func TestColor(t *testing.T) {
	b, ok := parseOne(t, "color(red)(x+1)").Base.(*ast.Binary)
	if !ok || b.Kind != ast.BinaryColor {
		t.Fatal("expected a color binary")
	}
	name, ok := b.First.(*ast.Var)
	if !ok || name.Kind != ast.VarText || name.Text() != "red" {
		t.Errorf("first operand = %s, want Text(red)", b.First)
	}
	if name.Span() != scanner.NewSpan(5, 10) {
		t.Errorf("color name span = %v, want 5..10", name.Span())
	}
	if g, ok := b.Second.(*ast.Grouping); !ok || len(g.Exprs) != 3 {
		t.Errorf("second operand = %s, want a grouping of 3", b.Second)
	}

	// keyword spellings inside the colour name are not tokenized
	b = parseOne(t, "color(sin)(x)").Base.(*ast.Binary)
	if b.First.(*ast.Var).Text() != "sin" {
		t.Errorf("color name = %s, want sin", b.First)
	}
}

func TestBinaryTruncation(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"x + frac(a)", 2},
		{"x + root", 2},
		{"x color y", 1},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := New(tt.input)
			if got := len(p.Parse()); got != tt.want {
				t.Errorf("returned %d expressions, want %d", got, tt.want)
			}
			if !hasCode(p.Warnings(), diag.CodeMissingOperand) {
				t.Errorf("warnings = %v, want missing-operand", codes(p.Warnings()))
			}
		})
	}
}

func TestMissingDenominator(t *testing.T) {
	p := New("x + a/")
	if got := len(p.Parse()); got != 2 {
		t.Errorf("returned %d expressions, want 2", got)
	}
	if !hasCode(p.Warnings(), diag.CodeMissingDenominator) {
		t.Errorf("warnings = %v, want missing-denominator", codes(p.Warnings()))
	}
}

func TestUnexpectedScriptMarker(t *testing.T) {
	p := New("x ^y")
	p2 := New("^x")

	if got := len(p.Parse()); got != 1 {
		t.Errorf("x ^y returned %d expressions, want 1", got)
	}
	if got := len(p2.Parse()); got != 0 {
		t.Errorf("^x returned %d expressions, want 0", got)
	}

	w := p2.Warnings()
	if !hasCode(w, diag.CodeUnexpectedToken) || !hasCode(w, diag.CodeTrailingInput) {
		t.Errorf("warnings = %v, want unexpected-token and trailing-input", codes(w))
	}
}

func TestUnrecognizedSymbolStopsParsing(t *testing.T) {
	p := New("a ? b")
	if got := len(p.Parse()); got != 1 {
		t.Errorf("returned %d expressions, want 1", got)
	}
	w := p.Warnings()
	if len(w) != 1 || w[0].Code != diag.CodeUnrecognizedSymbol {
		t.Errorf("warnings = %v, want one unrecognized-symbol", codes(w))
	}
}

func TestMatrices(t *testing.T) {
	tests := []struct {
		input string
		rows  int
		cols  int
	}{
		{"[[a,b],[c,d]]", 2, 2},
		{"((a),(b))", 2, 1},
		{"[[a,b,|,c],[d,e,|,f]]", 2, 4},
		{"{(2x,+,17y,=,23),(x,-,y,=,5):}", 2, 5},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			g, ok := parseOne(t, tt.input).Matrix()
			if !ok {
				t.Fatal("expected a matrix")
			}
			rows := g.Rows()
			if len(rows) != tt.rows {
				t.Fatalf("rows = %d, want %d", len(rows), tt.rows)
			}
			for i, r := range rows {
				if r.Len() != tt.cols {
					t.Errorf("row %d has %d cells, want %d", i, r.Len(), tt.cols)
				}
			}
		})
	}

	for _, input := range []string{"((a))", "[[a,b],[c]]", "(a,b)", "[(a)(b)]"} {
		if parseOne(t, input).IsMatrix() {
			t.Errorf("%s should not be a matrix", input)
		}
	}
}

func TestWorkedExamples(t *testing.T) {
	t.Run("derivative", func(t *testing.T) {
		exprs := Parse("f'(x) = dy/dx")
		if len(exprs) != 7 {
			t.Fatalf("returned %d expressions, want 7", len(exprs))
		}
		if b, ok := exprs[5].Base.(*ast.Binary); !ok || b.Kind != ast.BinaryFraction {
			t.Errorf("expression 5 = %s, want y/d", exprs[5])
		}
	})

	t.Run("limit and sum", func(t *testing.T) {
		exprs := Parse("lim_(N->oo) sum_(i=0)^N")
		if len(exprs) != 2 {
			t.Fatalf("returned %d expressions, want 2", len(exprs))
		}
		for _, e := range exprs {
			if !ast.IsUnderOver(e.Base) {
				t.Errorf("%s should place its scripts under and over", e.Base)
			}
		}
		if exprs[0].Sub == nil || exprs[1].Sub == nil || exprs[1].Sup == nil {
			t.Error("scripts are missing")
		}
	})

	t.Run("integral", func(t *testing.T) {
		exprs := Parse("int_0^1 f(x)dx")
		if len(exprs) != 5 {
			t.Fatalf("returned %d expressions, want 5", len(exprs))
		}
		if exprs[0].Sub == nil || exprs[0].Sup == nil {
			t.Error("integral bounds are missing")
		}
	})

	t.Run("underbrace", func(t *testing.T) {
		e := parseOne(t, "ubrace(1+2+3)_(=6)")
		if !ast.IsUnderOver(e.Base) || e.Sub == nil {
			t.Errorf("%s should carry an under script", e)
		}
	})
}

func TestSpansAreConsistent(t *testing.T) {
	inputs := []string{
		"alpha + beta",
		"a/b/c",
		"x_i^2/(y+1)",
		"sum_(i=1)^n i = (n(n+1))/2",
		"color(red)(x) + sqrt",
		"[[a,b,|,c],[d,e,|,f]]",
		"(a",
		"f'(x) = dy/dx",
		`text(hello world) "quoted"`,
		"lim_(N->oo) sum_(i=0)^N",
		"αβ + γ",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			total := scanner.New(input).Len()
			prevEnd := 0
			for _, e := range Parse(input) {
				sp := e.Span()
				if sp.Start < prevEnd || sp.End > total {
					t.Errorf("%s span %v out of order or bounds", e, sp)
				}
				prevEnd = sp.End
				for _, err := range ast.CheckSpans(e) {
					t.Error(err)
				}
			}
		})
	}
}

func TestNextAfterEnd(t *testing.T) {
	p := New("a")
	if _, ok := p.Next(); !ok {
		t.Fatal("expected one expression")
	}
	for i := 0; i < 3; i++ {
		if _, ok := p.Next(); ok {
			t.Fatal("Next() should stay exhausted")
		}
	}
}

func BenchmarkParse(b *testing.B) {
	input := strings.Repeat("x_i^2 + ", 2500)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if n := len(Parse(input)); n != 5000 {
			b.Fatalf("parsed %d expressions, want 5000", n)
		}
	}
}
