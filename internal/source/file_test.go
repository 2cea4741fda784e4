package source

import (
	"bytes"
	"testing"
)

func TestNewBuildsLineIndex(t *testing.T) {
	f := New("test.po", []byte("msgid \"a\"\nmsgstr \"b\"\n"))
	if f.Path != "test.po" {
		t.Errorf("path = %q", f.Path)
	}
	want := []uint32{9, 20}
	if len(f.LineIdx) != len(want) {
		t.Fatalf("line index %v, want %v", f.LineIdx, want)
	}
	for i := range want {
		if f.LineIdx[i] != want[i] {
			t.Errorf("LineIdx[%d] = %d, want %d", i, f.LineIdx[i], want[i])
		}
	}
}

func TestNewNormalizesBOMAndCRLF(t *testing.T) {
	raw := []byte("\xEF\xBB\xBFmsgid \"a\"\r\nmsgstr \"b\"\r\n")
	f := New("test.po", raw)
	want := []byte("msgid \"a\"\nmsgstr \"b\"\n")
	if !bytes.Equal(f.Content, want) {
		t.Fatalf("content = %q, want %q", f.Content, want)
	}
}

func TestGetLine(t *testing.T) {
	f := New("test.po", []byte("first\nsecond\nthird"))
	tests := []struct {
		num  uint32
		want string
	}{
		{0, ""},
		{1, "first"},
		{2, "second"},
		{3, "third"}, // no trailing newline
		{4, ""},
		{100, ""},
	}
	for _, tt := range tests {
		if got := string(f.GetLine(tt.num)); got != tt.want {
			t.Errorf("GetLine(%d) = %q, want %q", tt.num, got, tt.want)
		}
	}
}

func TestGetLineEmptyFile(t *testing.T) {
	f := New("empty.po", nil)
	if got := f.GetLine(1); got != nil {
		t.Errorf("GetLine(1) on empty file = %q", got)
	}
}

func TestNormalizeCRLFKeepsLoneCR(t *testing.T) {
	out, changed := normalizeCRLF([]byte("a\rb\r\nc"))
	if !changed {
		t.Fatal("expected a change")
	}
	if string(out) != "a\rb\nc" {
		t.Errorf("got %q", out)
	}
}
