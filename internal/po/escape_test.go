package po

import "testing"

func TestEscape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"plain", "plain"},
		{"line1\nline2", `line1\nline2`},
		{"tab\there", `tab\there`},
		{"cr\rhere", `cr\rhere`},
		{`say "hi"`, `say \"hi\"`},
		{`back\slash`, `back\\slash`},
	}
	for _, tt := range tests {
		if got := Escape(tt.in); got != tt.want {
			t.Errorf("Escape(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestUnescape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"plain", "plain"},
		{`line1\nline2`, "line1\nline2"},
		{`tab\there`, "tab\there"},
		{`say \"hi\"`, `say "hi"`},
		{`back\\slash`, `back\slash`},
		// unknown escape sequences are kept as-is
		{`\x`, `\x`},
		{`\q test`, `\q test`},
		// trailing backslash is kept
		{`end\`, `end\`},
	}
	for _, tt := range tests {
		if got := Unescape(tt.in); got != tt.want {
			t.Errorf("Unescape(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestEscapeRoundTrip(t *testing.T) {
	in := "test\nline \"2\"\twith \\ backslash"
	if got := Unescape(Escape(in)); got != in {
		t.Fatalf("round trip changed value: %q", got)
	}
}
