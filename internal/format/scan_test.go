package format

import (
	"math"
	"reflect"
	"testing"
)

func TestLanguageFrom(t *testing.T) {
	tests := []struct {
		keyword string
		want    Language
	}{
		{"c", LangC},
		{"python", LangPython},
		{"python-brace", LangPythonBrace},
		{"", LangNull},
		{"unknown", LangNull},
	}
	for _, tt := range tests {
		if got := LanguageFrom(tt.keyword); got != tt.want {
			t.Errorf("LanguageFrom(%q): expected %v, got %v", tt.keyword, tt.want, got)
		}
	}
}

func TestSortIndex(t *testing.T) {
	tests := []struct {
		fmt  string
		want int
	}{
		{"", math.MaxInt},
		{"test", math.MaxInt},
		{"%d", math.MaxInt},
		{"%$d", math.MaxInt},
		{"%a$d", math.MaxInt},
		{"%3$d", 3},
		{"%42$05s", 42},
	}
	for _, tt := range tests {
		if got := SortIndex(tt.fmt); got != tt.want {
			t.Errorf("SortIndex(%q): expected %d, got %d", tt.fmt, tt.want, got)
		}
	}
}

func TestStripIndex(t *testing.T) {
	tests := []struct {
		fmt  string
		want string
	}{
		{"", ""},
		{"test", "test"},
		{"%d", "%d"},
		{"%$d", "%$d"},
		{"%a$d", "%a$d"},
		{"%3$d", "%d"},
		{"%42$05s", "%05s"},
	}
	for _, tt := range tests {
		if got := StripIndex(tt.fmt); got != tt.want {
			t.Errorf("StripIndex(%q): expected %q, got %q", tt.fmt, tt.want, got)
		}
	}
}

func TestFormatsC(t *testing.T) {
	if got := Formats("Hello, world!", LangC); len(got) != 0 {
		t.Fatalf("expected no formats, got %v", got)
	}
	got := Formats("name: %s, age: %05d", LangC)
	want := []Match{
		{Text: "%s", Start: 6, End: 8},
		{Text: "%05d", Start: 15, End: 19},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	// doubled percent is an escape, not a format
	if got := Formats("100%% done", LangC); len(got) != 0 {
		t.Fatalf("expected no formats for %%%%, got %v", got)
	}
	// bare percent at end of string
	if got := Formats("rate: %", LangC); len(got) != 0 {
		t.Fatalf("expected no formats for trailing %%, got %v", got)
	}
	// length modifiers
	got = Formats("%llu and %3$d", LangC)
	want = []Match{
		{Text: "%llu", Start: 0, End: 4},
		{Text: "%3$d", Start: 9, End: 13},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFormatsPython(t *testing.T) {
	got := Formats("%(name)s is %d", LangPython)
	want := []Match{
		{Text: "%(name)s", Start: 0, End: 8},
		{Text: "%d", Start: 12, End: 14},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	// unterminated key extends to the end
	got = Formats("%(test", LangPython)
	want = []Match{{Text: "%(test", Start: 0, End: 6}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFormatsPythonBrace(t *testing.T) {
	got := Formats("{name} has {count:>3} items", LangPythonBrace)
	want := []Match{
		{Text: "{name}", Start: 0, End: 6},
		{Text: "{count:>3}", Start: 11, End: 21},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	// doubled brace is an escape
	if got := Formats("{{literal}}", LangPythonBrace); len(got) != 0 {
		t.Fatalf("expected no formats, got %v", got)
	}
	// nested braces
	got = Formats("{a{b}c}", LangPythonBrace)
	want = []Match{{Text: "{a{b}c}", Start: 0, End: 7}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestWords(t *testing.T) {
	if got := Words("", LangNull); len(got) != 0 {
		t.Fatalf("expected no words, got %v", got)
	}
	if got := Words(" ,.!? ", LangNull); len(got) != 0 {
		t.Fatalf("expected no words, got %v", got)
	}

	s := "Hello, world! %llu test-word 42."
	got := Words(s, LangNull)
	want := []Match{
		{Text: "Hello", Start: 0, End: 5},
		{Text: "world", Start: 7, End: 12},
		{Text: "llu", Start: 15, End: 18},
		{Text: "test-word", Start: 19, End: 28},
		{Text: "42", Start: 29, End: 31},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	// C format strings are skipped
	got = Words(s, LangC)
	want = []Match{
		{Text: "Hello", Start: 0, End: 5},
		{Text: "world", Start: 7, End: 12},
		{Text: "test-word", Start: 19, End: 28},
		{Text: "42", Start: 29, End: 31},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestWordsUnicode(t *testing.T) {
	s := "héllo, мир! %lld 你好"
	got := Words(s, LangNull)
	want := []Match{
		{Text: "héllo", Start: 0, End: 6},
		{Text: "мир", Start: 8, End: 14},
		{Text: "lld", Start: 17, End: 20},
		{Text: "你好", Start: 21, End: 27},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	got = Words(s, LangC)
	want = []Match{
		{Text: "héllo", Start: 0, End: 6},
		{Text: "мир", Start: 8, End: 14},
		{Text: "你好", Start: 21, End: 27},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestChars(t *testing.T) {
	if got := Chars("", LangNull); len(got) != 0 {
		t.Fatalf("expected no chars, got %v", got)
	}

	got := Chars("%05d", LangNull)
	want := []Match{
		{Text: "0", Start: 1, End: 2},
		{Text: "5", Start: 2, End: 3},
		{Text: "d", Start: 3, End: 4},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	if got := Chars("%05d", LangC); len(got) != 0 {
		t.Fatalf("expected no chars with C format skip, got %v", got)
	}

	got = Chars("Hé, w!", LangNull)
	want = []Match{
		{Text: "H", Start: 0, End: 1},
		{Text: "é", Start: 1, End: 3},
		{Text: "w", Start: 5, End: 6},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
