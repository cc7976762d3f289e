package keywords

import (
	"strings"
	"sync"
	"testing"
	"unicode/utf8"
)

func TestGet(t *testing.T) {
	tests := []struct {
		text string
		want Greek
	}{
		{"alpha", GreekAlpha},
		{"gamma", GreekGamma},
		{"Gamma", GreekBigGamma},
		{"Omega", GreekBigOmega},
	}
	for _, tt := range tests {
		got, ok := Greeks.Get(tt.text)
		if !ok || got != tt.want {
			t.Errorf("Greeks.Get(%q) = %v, %v; want %v", tt.text, got, ok, tt.want)
		}
	}

	if _, ok := Greeks.Get("gam"); ok {
		t.Error("Greeks.Get(\"gam\") should not match")
	}
	if k, ok := Arrows.Get("to"); !ok || k != ArrowRight {
		t.Errorf("Arrows.Get(\"to\") = %v, %v", k, ok)
	}
	if k, ok := Operators.Get(`\`); !ok || k != OpBackslash {
		t.Errorf(`Operators.Get("\") = %v, %v`, k, ok)
	}
	if k, ok := Others.Get(`/_\`); !ok || k != OtherTriangle {
		t.Errorf(`Others.Get("/_\") = %v, %v`, k, ok)
	}
}

func TestLengthBounds(t *testing.T) {
	tests := []struct {
		table    Keyword
		min, max int
	}{
		{Greeks, 2, 10},
		{Arrows, 2, 21},
		{Functions, 1, 6},
		{Operators, 1, 9},
		{Groupings, 1, 6},
		{FontCommands, 2, 8},
	}
	for _, tt := range tests {
		if got := tt.table.MinLen(); got != tt.min {
			t.Errorf("%s MinLen() = %d, want %d", tt.table.Category(), got, tt.min)
		}
		if got := tt.table.MaxLen(); got != tt.max {
			t.Errorf("%s MaxLen() = %d, want %d", tt.table.Category(), got, tt.max)
		}
	}
}

func TestStartsWith(t *testing.T) {
	if !Greeks.StartsWith("g") {
		t.Error("Greeks should start with g")
	}
	if Greeks.StartsWith("q") {
		t.Error("Greeks should not start with q")
	}
	if !Arrows.StartsWith("|") || !Arrows.StartsWith(">") {
		t.Error("Arrows should start with | and >")
	}
	if !Others.StartsWith(`"`) {
		t.Error("Others should start with a quote")
	}
}

func TestPrefixOf(t *testing.T) {
	tests := []struct {
		name   string
		got    func() (int, bool)
		want   int
		wantOK bool
	}{
		{"arrow right", func() (int, bool) { return Arrows.PrefixOf(ArrowRight) }, 14, true},
		{"arrow tail", func() (int, bool) { return Arrows.PrefixOf(ArrowRightTail) }, 4, true},
		{"arrow two head", func() (int, bool) { return Arrows.PrefixOf(ArrowTwoHeadRight) }, 21, true},
		{"arrow up", func() (int, bool) { return Arrows.PrefixOf(ArrowUp) }, 0, false},
		{"function sin", func() (int, bool) { return Functions.PrefixOf(FuncSin) }, 4, true},
		{"function g", func() (int, bool) { return Functions.PrefixOf(FuncG) }, 3, true},
		{"function sinh", func() (int, bool) { return Functions.PrefixOf(FuncSinh) }, 0, false},
		{"operator dot", func() (int, bool) { return Operators.PrefixOf(OpDot) }, 3, true},
		{"operator minus", func() (int, bool) { return Operators.PrefixOf(OpMinus) }, 2, true},
		{"relation less", func() (int, bool) { return Relations.PrefixOf(RelLessThan) }, 2, true},
		{"relation subset", func() (int, bool) { return Relations.PrefixOf(RelSubset) }, 8, true},
		{"relation prop", func() (int, bool) { return Relations.PrefixOf(RelProp) }, 6, true},
		{"logical if", func() (int, bool) { return Logicals.PrefixOf(LogicIf) }, 3, true},
		{"other bar", func() (int, bool) { return Others.PrefixOf(OtherVerticalBar) }, 6, true},
		{"other angle", func() (int, bool) { return Others.PrefixOf(OtherAngle) }, 3, true},
		{"font bold", func() (int, bool) { return FontCommands.PrefixOf(FontBold) }, 3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.got()
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("PrefixOf() = %d, %v; want %d, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

// Every literal that strictly extends another literal of the same table
// must be reachable through the prefix map of the shorter literal's kind.
func TestPrefixMapCoversEveryExtension(t *testing.T) {
	for _, kw := range Ordered() {
		var literals []string
		for _, e := range kw.Entries() {
			literals = append(literals, e.Literals...)
		}
		for _, short := range literals {
			code, _ := kw.Lookup(short)
			for _, long := range literals {
				if len(long) <= len(short) || !strings.HasPrefix(long, short) {
					continue
				}
				ext, ok := kw.LongestExtension(code)
				if !ok || ext < utf8.RuneCountInString(long) {
					t.Errorf("%s: %q extends %q but PrefixOf = %d, %v", kw.Category(), long, short, ext, ok)
				}
			}
		}
	}
}

func TestLiteralsAreUnique(t *testing.T) {
	for _, kw := range Ordered() {
		seen := make(map[string]string)
		for _, e := range kw.Entries() {
			for _, lit := range e.Literals {
				if prev, dup := seen[lit]; dup {
					t.Errorf("%s: literal %q used by %s and %s", kw.Category(), lit, prev, e.Name)
				}
				seen[lit] = e.Name
			}
		}
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{GreekGamma.String(), "Gamma"},
		{GreekBigGamma.String(), "BigGamma"},
		{ArrowMapsTo.String(), "MapsTo"},
		{FuncLim.String(), "Lim"},
		{OpBigCup.String(), "BigCup"},
		{RelNotIn.String(), "NotIn"},
		{LogicModels.String(), "Models"},
		{GroupCloseIgnored.String(), "CloseIgnored"},
		{OtherQuote.String(), "Quote"},
		{AccentColor.String(), "Color"},
		{FontGothic.String(), "Gothic"},
		{Greek(250).String(), ""},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}

func TestCanonical(t *testing.T) {
	if got := Arrows.Canonical(ArrowRight); got != "->" {
		t.Errorf("Canonical(Right) = %q", got)
	}
	if got := Relations.Literals(RelNotEq); len(got) != 2 || got[1] != "ne" {
		t.Errorf("Literals(NotEq) = %v", got)
	}
}

func TestGroupingCloses(t *testing.T) {
	tests := []struct {
		open, close Grouping
		want        bool
	}{
		{GroupOpenParen, GroupCloseParen, true},
		{GroupOpenParen, GroupCloseIgnored, true},
		{GroupOpenParen, GroupCloseBracket, false},
		{GroupOpenBracket, GroupCloseBracket, true},
		{GroupOpenBrace, GroupCloseBrace, true},
		{GroupLeftAngled, GroupRightAngled, true},
		{GroupOpenIgnored, GroupCloseParen, true},
		{GroupOpenIgnored, GroupCloseBracket, true},
		{GroupOpenIgnored, GroupCloseBrace, true},
		{GroupOpenIgnored, GroupRightAngled, true},
		{GroupOpenIgnored, GroupCloseIgnored, true},
		{GroupOpenIgnored, GroupOpenParen, false},
		{GroupCloseParen, GroupOpenParen, true},
		{GroupCloseParen, GroupOpenIgnored, true},
		{GroupCloseIgnored, GroupOpenBracket, true},
		{GroupCloseIgnored, GroupCloseParen, false},
		{GroupAbsolute, GroupAbsolute, true},
		{GroupNorm, GroupFloor, false},
	}
	for _, tt := range tests {
		if got := tt.open.Closes(tt.close); got != tt.want {
			t.Errorf("%v.Closes(%v) = %v, want %v", tt.open, tt.close, got, tt.want)
		}
	}
}

func TestGroupingClasses(t *testing.T) {
	if !GroupAbsolute.IsPrefix() || GroupOpenParen.IsPrefix() {
		t.Error("IsPrefix() misclassified")
	}
	if !GroupOpenIgnored.IsIgnored() || GroupCloseBrace.IsIgnored() {
		t.Error("IsIgnored() misclassified")
	}
	if !GroupLeftAngled.IsOpening() || GroupRightAngled.IsOpening() {
		t.Error("IsOpening() misclassified")
	}
}

func TestCategory(t *testing.T) {
	c, ok := ParseCategory(" Font ")
	if !ok || c != CategoryFontCommand {
		t.Errorf("ParseCategory(font) = %v, %v", c, ok)
	}
	if _, ok := ParseCategory("nope"); ok {
		t.Error("ParseCategory(nope) should fail")
	}
	kw, ok := ByCategory(CategoryLogical)
	if !ok || kw.Category() != CategoryLogical {
		t.Error("ByCategory(logical) failed")
	}
	if len(Ordered()) != 10 {
		t.Errorf("Ordered() has %d tables", len(Ordered()))
	}
	text, _ := CategoryArrow.MarshalText()
	if string(text) != "arrow" {
		t.Errorf("MarshalText() = %q", text)
	}
}

func TestConcurrentFirstUse(t *testing.T) {
	table := newTable(CategoryOther,
		Spelling[Other]{OtherComma, "Comma", []string{","}},
		Spelling[Other]{OtherFraction, "Fraction", []string{"frac"}},
	)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if k, ok := table.Get("frac"); !ok || k != OtherFraction {
				t.Error("concurrent Get failed")
			}
		}()
	}
	wg.Wait()
}
