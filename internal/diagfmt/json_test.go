package diagfmt_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"polint/internal/diag"
	"polint/internal/diagfmt"
)

func TestBuildDiagnosticsOutputCharOffsets(t *testing.T) {
	// "é" занимает два байта: подсветка в байтах (8, 11) должна
	// стать (8, 10) в символах.
	d := diag.New(diag.SevInfo, "double-quotes", "fr.po", `missing double quotes (0 / 2)`)
	d = d.WithLine(diag.Line{
		Number:     7,
		Message:    `msgstr "été"`,
		Highlights: []diag.Span{{Start: 8, End: 11}},
	})

	out := diagfmt.BuildDiagnosticsOutput([]diag.Diagnostic{d})
	if len(out) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(out))
	}
	got := out[0]
	if got.Path != "fr.po" || got.Rule != "double-quotes" || got.Severity != "Info" {
		t.Fatalf("header fields = %+v", got)
	}
	if len(got.Lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(got.Lines))
	}
	line := got.Lines[0]
	if line.LineNumber != 7 {
		t.Errorf("line number = %d, want 7", line.LineNumber)
	}
	if len(line.Highlights) != 1 || line.Highlights[0] != [2]int{8, 10} {
		t.Errorf("highlights = %v, want [[8 10]]", line.Highlights)
	}
}

func TestWriteJSON(t *testing.T) {
	d := diag.New(diag.SevWarning, "long", "de.po", "translation too long (2 / 40)")
	d = d.WithLine(diag.Line{Number: 3, Message: `msgid "ab"`})

	var buf strings.Builder
	diagfmt.WriteJSON(&buf, []diag.Diagnostic{d})
	if !strings.HasSuffix(buf.String(), "\n") {
		t.Fatalf("output not newline terminated: %q", buf.String())
	}

	var decoded []diagfmt.DiagnosticJSON
	if err := json.Unmarshal([]byte(buf.String()), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(decoded))
	}
	if decoded[0].Severity != "Warning" {
		t.Errorf("severity = %q, want %q", decoded[0].Severity, "Warning")
	}
	if decoded[0].Lines[0].Highlights == nil {
		t.Errorf("highlights must serialize as an empty list, not null")
	}
}

func TestWriteMsgpack(t *testing.T) {
	d := diag.New(diag.SevError, "tabs", "fr.po", "missing tabs '\\t' (0 / 1)")
	d = d.WithLine(diag.Line{Number: 9, Message: `msgstr "a"`})

	var buf strings.Builder
	diagfmt.WriteMsgpack(&buf, []diag.Diagnostic{d})

	var decoded []diagfmt.DiagnosticJSON
	if err := msgpack.Unmarshal([]byte(buf.String()), &decoded); err != nil {
		t.Fatalf("invalid msgpack: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(decoded))
	}
	if decoded[0].Rule != "tabs" || decoded[0].Severity != "Error" {
		t.Errorf("decoded = %+v", decoded[0])
	}
	if decoded[0].Lines[0].LineNumber != 9 {
		t.Errorf("line number = %d, want 9", decoded[0].Lines[0].LineNumber)
	}
}
