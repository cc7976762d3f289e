package scanner

import "testing"

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"ascii", "a+b", []string{"a", "+", "b"}},
		{"unicode", "α≤β", []string{"α", "≤", "β"}},
		{"whitespace", " x\t", []string{" ", "x", "\t"}},
		{"invalid utf8", "a\xffb", []string{"a", "\xff", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := New(tt.input)
			if src.Len() != len(tt.want) {
				t.Fatalf("Len() = %d, want %d", src.Len(), len(tt.want))
			}
			for i, want := range tt.want {
				sym, ok := src.At(i)
				if !ok {
					t.Fatalf("At(%d) not found", i)
				}
				if sym.Content != want {
					t.Errorf("At(%d).Content = %q, want %q", i, sym.Content, want)
				}
				if sym.Offset != i {
					t.Errorf("At(%d).Offset = %d", i, sym.Offset)
				}
			}
		})
	}
}

func TestSourceSlice(t *testing.T) {
	src := New("αβγ+1")

	tests := []struct {
		start, end int
		want       string
	}{
		{0, 1, "α"},
		{1, 3, "βγ"},
		{3, 5, "+1"},
		{0, 5, "αβγ+1"},
		{4, 9, "1"},
		{-2, 1, "α"},
		{3, 3, ""},
		{4, 2, ""},
	}

	for _, tt := range tests {
		if got := src.Slice(tt.start, tt.end); got != tt.want {
			t.Errorf("Slice(%d, %d) = %q, want %q", tt.start, tt.end, got, tt.want)
		}
	}
}

func TestSourceAtOutOfRange(t *testing.T) {
	src := New("x")
	if _, ok := src.At(1); ok {
		t.Error("At(1) should be out of range")
	}
	if _, ok := src.At(-1); ok {
		t.Error("At(-1) should be out of range")
	}
}

func TestSymbolClasses(t *testing.T) {
	src := New("7.a λ")
	checks := []struct {
		index                   int
		digit, dot, letter, spc bool
	}{
		{0, true, false, false, false},
		{1, false, true, false, false},
		{2, false, false, true, false},
		{3, false, false, false, true},
		{4, false, false, true, false},
	}
	for _, c := range checks {
		sym, _ := src.At(c.index)
		if sym.IsDigit() != c.digit || sym.IsDot() != c.dot || sym.IsLetter() != c.letter || sym.IsWhitespace() != c.spc {
			t.Errorf("symbol %q classified wrong", sym.Content)
		}
	}
}

func TestSpan(t *testing.T) {
	a := NewSpan(2, 5)
	b := NewSpan(4, 9)

	if a.Len() != 3 {
		t.Errorf("Len() = %d, want 3", a.Len())
	}
	if got := a.Cover(b); got != NewSpan(2, 9) {
		t.Errorf("Cover() = %v", got)
	}
	if !NewSpan(0, 10).Contains(a) {
		t.Error("Contains() = false, want true")
	}
	if a.Contains(b) {
		t.Error("Contains() = true, want false")
	}
	if !NewSpan(3, 3).IsEmpty() || !NewSpan(3, 3).IsValid() {
		t.Error("zero-width span should be empty and valid")
	}
	if NewSpan(4, 3).IsValid() {
		t.Error("reversed span should be invalid")
	}
	if a.String() != "2..5" {
		t.Errorf("String() = %q", a.String())
	}
}
